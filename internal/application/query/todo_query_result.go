package query

import "demcare-service/internal/application/common"

type TodoListResult struct {
	Todos []common.TodoResult `json:"todos"`
}
