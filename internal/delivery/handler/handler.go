package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"demcare-service/internal/application/command"
	"demcare-service/internal/application/interfaces"
	"demcare-service/internal/delivery/middleware"
	"demcare-service/internal/domain"
)

// Response status values. Logical failures are reported inside the body with
// HTTP 200; only malformed input and dependency failures use 4xx/5xx. This
// mirrors the contract existing clients depend on.
const (
	statusSuccessful = "Successful"
	statusFailed     = "Failed"
)

type Handler struct {
	userService  interfaces.UserService
	todoService  interfaces.TodoService
	alertService interfaces.AlertService
}

func NewHandler(userService interfaces.UserService, todoService interfaces.TodoService, alertService interfaces.AlertService) *Handler {
	return &Handler{
		userService:  userService,
		todoService:  todoService,
		alertService: alertService,
	}
}

func (h *Handler) Root(c echo.Context) error {
	return c.String(http.StatusOK, "API Running")
}

func (h *Handler) Welcome(c echo.Context) error {
	return c.JSON(http.StatusCreated, echo.Map{"message": "Welcome to DemCare"})
}

func (h *Handler) Signup(c echo.Context) error {
	var createCommand command.CreateUserCommand
	if err := c.Bind(&createCommand); err != nil {
		return failed(c, http.StatusBadRequest, "Invalid input")
	}

	result, err := h.userService.Signup(c.Request().Context(), &createCommand)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEmailRegistered):
			return failed(c, http.StatusOK, "Email already registered")
		case errors.Is(err, domain.ErrMailDelivery):
			return failed(c, http.StatusOK, "Failed to send OTP")
		default:
			return failed(c, http.StatusInternalServerError, err.Error())
		}
	}

	return c.JSON(http.StatusOK, echo.Map{
		"status":  statusSuccessful,
		"message": result.Message,
		"otpId":   result.OtpId,
	})
}

func (h *Handler) Login(c echo.Context) error {
	var loginCommand command.LoginUserCommand
	if err := c.Bind(&loginCommand); err != nil {
		return failed(c, http.StatusBadRequest, "Invalid input")
	}

	result, err := h.userService.Login(c.Request().Context(), &loginCommand)
	if err != nil {
		var ve *domain.ValidationError
		switch {
		case errors.As(err, &ve):
			return failed(c, http.StatusOK, ve.Message)
		case errors.Is(err, domain.ErrUserNotFound):
			return failed(c, http.StatusOK, "No user found")
		case errors.Is(err, domain.ErrMailDelivery):
			return failed(c, http.StatusOK, "Failed to send OTP")
		default:
			return failed(c, http.StatusOK, err.Error())
		}
	}

	return c.JSON(http.StatusOK, echo.Map{
		"status":  statusSuccessful,
		"message": result.Message,
		"otpId":   result.OtpId,
	})
}

func (h *Handler) VerifyOTP(c echo.Context) error {
	var verifyCommand command.VerifyOTPCommand
	if err := c.Bind(&verifyCommand); err != nil {
		return failed(c, http.StatusBadRequest, "Invalid input")
	}

	result, err := h.userService.VerifyOTP(c.Request().Context(), &verifyCommand)
	if err != nil {
		// Expired, mismatched and unknown handles are deliberately
		// indistinguishable to the caller.
		switch {
		case errors.Is(err, domain.ErrOtpNotFound),
			errors.Is(err, domain.ErrOtpExpired),
			errors.Is(err, domain.ErrOtpMismatch),
			errors.Is(err, domain.ErrUserNotFound):
			return failed(c, http.StatusOK, "Wrong OTP entered")
		default:
			return failed(c, http.StatusInternalServerError, err.Error())
		}
	}

	return c.JSON(http.StatusOK, echo.Map{
		"status": statusSuccessful,
		"user":   result.User,
		"token":  result.Token,
	})
}

func (h *Handler) UpdateEmergencyContacts(c echo.Context) error {
	var updateCommand command.UpdateEmergencyContactsCommand
	if err := c.Bind(&updateCommand); err != nil {
		return failed(c, http.StatusBadRequest, "Invalid emergency contacts data")
	}

	result, err := h.userService.UpdateEmergencyContacts(c.Request().Context(), middleware.UserID(c), &updateCommand)
	if err != nil {
		var ve *domain.ValidationError
		switch {
		case errors.As(err, &ve):
			return failed(c, http.StatusBadRequest, ve.Message)
		case errors.Is(err, domain.ErrUserNotFound):
			return failed(c, http.StatusNotFound, "User not found")
		default:
			return failed(c, http.StatusInternalServerError, "Server error")
		}
	}

	return c.JSON(http.StatusOK, echo.Map{
		"status":  statusSuccessful,
		"message": "Emergency contacts updated successfully",
		"user":    result.User,
	})
}

func (h *Handler) GetLocation(c echo.Context) error {
	result, err := h.userService.GetLocation(c.Request().Context(), middleware.UserID(c))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return failed(c, http.StatusOK, "User not found")
		}
		return failed(c, http.StatusInternalServerError, "Server error, could not fetch location")
	}

	return c.JSON(http.StatusOK, echo.Map{
		"status":            statusSuccessful,
		"permanentLocation": result.PermanentLocation,
	})
}

func (h *Handler) AddTodo(c echo.Context) error {
	var addCommand command.AddTodoCommand
	if err := c.Bind(&addCommand); err != nil {
		return failed(c, http.StatusBadRequest, "Invalid input")
	}

	result, err := h.todoService.AddTodo(c.Request().Context(), middleware.UserID(c), &addCommand)
	if err != nil {
		var ve *domain.ValidationError
		switch {
		case errors.As(err, &ve):
			return failed(c, http.StatusOK, ve.Message)
		case errors.Is(err, domain.ErrUserNotFound):
			return failed(c, http.StatusOK, "User not found")
		default:
			return failed(c, http.StatusInternalServerError, "Server error, could not add to-do")
		}
	}

	return c.JSON(http.StatusOK, echo.Map{
		"status":  statusSuccessful,
		"message": "To-do added",
		"user":    result.User,
	})
}

func (h *Handler) GetAllTodos(c echo.Context) error {
	result, err := h.todoService.GetTodos(c.Request().Context(), middleware.UserID(c))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return failed(c, http.StatusOK, "User not found")
		}
		return failed(c, http.StatusInternalServerError, "Server error, could not retrieve to-dos")
	}

	return c.JSON(http.StatusOK, echo.Map{
		"status": statusSuccessful,
		"todos":  result.Todos,
	})
}

func (h *Handler) UpdateTodo(c echo.Context) error {
	var updateCommand command.UpdateTodoCommand
	if err := c.Bind(&updateCommand); err != nil {
		return failed(c, http.StatusOK, "isDone must be a boolean value")
	}

	result, err := h.todoService.UpdateTodo(c.Request().Context(), middleware.UserID(c), c.Param("todoId"), &updateCommand)
	if err != nil {
		var ve *domain.ValidationError
		switch {
		case errors.As(err, &ve):
			return failed(c, http.StatusOK, ve.Message)
		case errors.Is(err, domain.ErrUserNotFound):
			return failed(c, http.StatusOK, "User not found")
		case errors.Is(err, domain.ErrTodoNotFound):
			return failed(c, http.StatusOK, "To-do item not found")
		default:
			return failed(c, http.StatusInternalServerError, "Server error, could not update to-do")
		}
	}

	return c.JSON(http.StatusOK, echo.Map{
		"status": statusSuccessful,
		"todo":   result.Todo,
	})
}

func (h *Handler) DeleteTodo(c echo.Context) error {
	err := h.todoService.DeleteTodo(c.Request().Context(), middleware.UserID(c), c.Param("todoId"))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			return failed(c, http.StatusOK, "User not found")
		case errors.Is(err, domain.ErrTodoNotFound):
			return failed(c, http.StatusOK, "To-do item not found")
		default:
			return failed(c, http.StatusInternalServerError, "Server error, could not delete to-do")
		}
	}

	return c.JSON(http.StatusOK, echo.Map{
		"status":  statusSuccessful,
		"message": "To-do item deleted successfully",
	})
}

func (h *Handler) SendAlert(c echo.Context) error {
	var alertCommand command.SendAlertCommand
	if err := c.Bind(&alertCommand); err != nil {
		return failed(c, http.StatusBadRequest, "Invalid input")
	}

	result, err := h.alertService.SendAlert(c.Request().Context(), middleware.UserID(c), &alertCommand)
	if err != nil {
		var ve *domain.ValidationError
		switch {
		case errors.As(err, &ve):
			return failed(c, http.StatusOK, ve.Message)
		case errors.Is(err, domain.ErrUserNotFound):
			return failed(c, http.StatusOK, "User not found")
		case errors.Is(err, domain.ErrNoEmergencyContacts):
			return failed(c, http.StatusOK, "No emergency contacts found")
		default:
			return failed(c, http.StatusInternalServerError, "Server error while sending emergency alert")
		}
	}

	return c.JSON(http.StatusOK, echo.Map{
		"status":            statusSuccessful,
		"message":           "Alert sent to emergency contacts",
		"emergencyContacts": result.EmergencyContacts,
	})
}

func failed(c echo.Context, code int, message string) error {
	return c.JSON(code, echo.Map{
		"status":  statusFailed,
		"message": message,
	})
}
