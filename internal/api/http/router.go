package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/viet-college/department-cms/internal/api/http/handlers"
	"github.com/viet-college/department-cms/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health     *handlers.HealthHandler
	Auth       *handlers.AuthHandler
	HeroSlides *handlers.HeroSlidesHandler
	Faculty    *handlers.FacultyHandler
	News       *handlers.NewsHandler
	Events     *handlers.EventsHandler
	Notes      *handlers.NotesHandler
	Media      *handlers.MediaHandler
	Contacts   *handlers.ContactsHandler
	AuthMW     *auth.Middleware
}

// RegisterRoutes wires HTTP routes. Reads are public; every write except the
// contact form goes through the auth middleware plus the admin gate.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	api := app.Group("/api")

	authGroup := api.Group("/auth")
	authGroup.Post("/login", cfg.Auth.Login)
	authGroup.Post("/register", cfg.Auth.Register)
	authGroup.Post("/refresh", cfg.Auth.Refresh)
	authGroup.Get("/verify", cfg.AuthMW.Authenticate, cfg.Auth.Verify)

	admin := []fiber.Handler{cfg.AuthMW.Authenticate, cfg.AuthMW.RequireAdmin}

	api.Get("/hero-slides", cfg.HeroSlides.List)
	api.Post("/hero-slides", append(admin, cfg.HeroSlides.Create)...)
	api.Put("/hero-slides/:id", append(admin, cfg.HeroSlides.Update)...)
	api.Delete("/hero-slides/:id", append(admin, cfg.HeroSlides.Delete)...)

	api.Get("/faculty", cfg.Faculty.List)
	api.Post("/faculty", append(admin, cfg.Faculty.Create)...)
	api.Put("/faculty/:id", append(admin, cfg.Faculty.Update)...)
	api.Delete("/faculty/:id", append(admin, cfg.Faculty.Delete)...)

	api.Get("/news", cfg.News.List)
	api.Get("/news/:id", cfg.News.Get)
	api.Post("/news", append(admin, cfg.News.Create)...)
	api.Put("/news/:id", append(admin, cfg.News.Update)...)
	api.Delete("/news/:id", append(admin, cfg.News.Delete)...)

	api.Get("/events", cfg.Events.List)
	api.Get("/events/:id", cfg.Events.Get)
	api.Post("/events", append(admin, cfg.Events.Create)...)
	api.Put("/events/:id", append(admin, cfg.Events.Update)...)
	api.Delete("/events/:id", append(admin, cfg.Events.Delete)...)

	api.Get("/notes", cfg.Notes.List)
	api.Post("/notes", append(admin, cfg.Notes.Create)...)
	api.Put("/notes/:id", append(admin, cfg.Notes.Update)...)
	api.Delete("/notes/:id", append(admin, cfg.Notes.Delete)...)

	api.Get("/media", cfg.Media.List)
	api.Post("/media", append(admin, cfg.Media.Create)...)
	api.Put("/media/:id", append(admin, cfg.Media.Update)...)
	api.Delete("/media/:id", append(admin, cfg.Media.Delete)...)

	api.Post("/contacts", cfg.Contacts.Create)
	api.Get("/contacts", append(admin, cfg.Contacts.List)...)
	api.Put("/contacts/:id/status", append(admin, cfg.Contacts.UpdateStatus)...)
}
