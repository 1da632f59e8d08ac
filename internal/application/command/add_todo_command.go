package command

import "demcare-service/internal/application/common"

type AddTodoCommand struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	ScheduledFor string `json:"scheduledFor"`
}

type AddTodoCommandResult struct {
	User *common.UserResult `json:"user"`
}
