package command

import "demcare-service/internal/application/common"

type VerifyOTPCommand struct {
	OtpId      string `json:"otpId"`
	OtpEntered string `json:"otpEntered"`
}

type VerifyOTPCommandResult struct {
	User  *common.UserResult `json:"user"`
	Token string             `json:"token"`
}
