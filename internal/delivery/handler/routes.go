package handler

import "github.com/labstack/echo/v4"

// RegisterRoutes wires every endpoint. Paths are kept identical to the
// original deployment so existing clients keep working.
func RegisterRoutes(e *echo.Echo, h *Handler, auth echo.MiddlewareFunc) {
	e.GET("/", h.Root)

	api := e.Group("/api")
	api.GET("/welcome", h.Welcome)
	api.POST("/signup", h.Signup)
	api.POST("/login", h.Login)
	api.POST("/otp-verify", h.VerifyOTP)
	api.POST("/update-emergency-contacts", h.UpdateEmergencyContacts, auth)

	user := api.Group("/user", auth)
	user.GET("/location", h.GetLocation)
	user.POST("/todo/addTodo", h.AddTodo)
	user.GET("/todo/getAllTodo", h.GetAllTodos)
	user.PATCH("/todo/updateTodo/:todoId", h.UpdateTodo)
	user.DELETE("/todo/deleteTodo/:todoId", h.DeleteTodo)
	user.POST("/emergency/sendAlert", h.SendAlert)
}
