package command

type CreateUserCommand struct {
	Name    string `json:"name"`
	Age     int    `json:"age"`
	Gender  string `json:"gender"`
	Email   string `json:"email"`
	Contact string `json:"contact"`

	PermanentLocation string `json:"permanentLocation"`
}

type CreateUserCommandResult struct {
	Message string `json:"message"`
	OtpId   string `json:"otpId"`
}
