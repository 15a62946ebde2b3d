package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/hospital-staff-service/internal/api/http/handlers"
	"github.com/spec-kit/hospital-staff-service/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Hospitals      *handlers.HospitalHandler
	Sessions       *handlers.SessionHandler
	Staff          *handlers.StaffHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	api := app.Group("/api")
	api.Post("/hospital/register", cfg.Hospitals.Register)
	api.Post("/login", cfg.Sessions.Login)
	api.Post("/logout", cfg.Sessions.Logout)

	admin := api.Group("/admin", cfg.AuthMiddleware.Handle, auth.RequireAdmin())
	admin.Get("/profile", cfg.Hospitals.Profile)
	admin.Post("/add-staff", cfg.Staff.Add)
	admin.Get("/staff", cfg.Staff.List)
	admin.Delete("/delete-staff/:id", cfg.Staff.Remove)

	staff := api.Group("/staff", cfg.AuthMiddleware.Handle, auth.RequireStaff())
	staff.Post("/change-password", cfg.Staff.ChangePassword)
}
