package mapper

import (
	"demcare-service/internal/application/common"
	"demcare-service/internal/domain/entities"
)

func NewUserResultFromEntity(user *entities.User) *common.UserResult {
	contacts := make([]common.EmergencyContactResult, 0, len(user.EmergencyContacts))
	for _, contact := range user.EmergencyContacts {
		contacts = append(contacts, NewEmergencyContactResult(contact))
	}

	todos := make([]common.TodoResult, 0, len(user.Todos))
	for _, todo := range user.Todos {
		todos = append(todos, NewTodoResultFromEntity(todo))
	}

	return &common.UserResult{
		Id:                user.Id,
		CreatedAt:         user.CreatedAt,
		Name:              user.Name,
		Age:               user.Age,
		Gender:            string(user.Gender),
		Email:             user.Email,
		Contact:           user.Contact,
		PermanentLocation: user.PermanentLocation,
		Verified:          user.IsVerified,
		EmergencyContacts: contacts,
		Todos:             todos,
	}
}

func NewEmergencyContactResult(contact entities.EmergencyContact) common.EmergencyContactResult {
	return common.EmergencyContactResult{
		ContactName:   contact.ContactName,
		ContactNumber: contact.ContactNumber,
		ContactEmail:  contact.ContactEmail,
	}
}

func NewTodoResultFromEntity(todo entities.TodoItem) common.TodoResult {
	return common.TodoResult{
		Id:           todo.Id,
		Title:        todo.Title,
		Description:  todo.Description,
		IsDone:       todo.IsDone,
		ScheduledFor: todo.ScheduledFor,
	}
}
