package command

type LoginUserCommand struct {
	Email string `json:"email"`
}

type LoginUserCommandResult struct {
	Message string `json:"message"`
	OtpId   string `json:"otpId"`
}
