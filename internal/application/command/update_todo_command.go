package command

import "demcare-service/internal/application/common"

type UpdateTodoCommand struct {
	// Pointer so a missing or non-boolean field is distinguishable from false.
	IsDone *bool `json:"isDone"`
}

type UpdateTodoCommandResult struct {
	Todo *common.TodoResult `json:"todo"`
}
