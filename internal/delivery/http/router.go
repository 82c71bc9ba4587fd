package http

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"eventgate/internal/delivery/http/controllers"
	"eventgate/internal/delivery/http/middleware"
	"eventgate/internal/domain"
)

// NewRouter initializes the HTTP router with all application routes
func NewRouter(eventController *controllers.EventController, authController *controllers.AuthController, verifier domain.TokenVerifier) *http.ServeMux {
	mux := http.NewServeMux()
	auth := middleware.RequireAuth(verifier)

	// Events
	mux.HandleFunc("POST /create-event", auth(eventController.CreateEvent))
	mux.HandleFunc("GET /all-events", auth(eventController.ListAllEvents))
	mux.HandleFunc("GET /event/{id}", auth(eventController.GetEvent))
	mux.HandleFunc("GET /my-events", auth(eventController.ListMyEvents))
	mux.HandleFunc("PUT /update-event/{id}", auth(eventController.UpdateEvent))
	mux.HandleFunc("DELETE /event/{id}", auth(eventController.DeleteEvent))

	// Auth
	mux.HandleFunc("POST /auth/signup", authController.SignUp)
	mux.HandleFunc("POST /auth/login", authController.Login)

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
