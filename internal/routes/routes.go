package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"github.com/witoldp/petcare-backend/internal/config"
	"github.com/witoldp/petcare-backend/internal/handlers"
	"github.com/witoldp/petcare-backend/internal/middleware"
	"github.com/witoldp/petcare-backend/internal/models"
	"github.com/witoldp/petcare-backend/internal/principal"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	jwtKey []byte,
	resolver *principal.Resolver,
	authHandler *handlers.AuthHandler,
	userHandler *handlers.UserHandler,
	petHandler *handlers.PetHandler,
	vetHandler *handlers.VetHandler,
	visitHandler *handlers.VisitHandler,
	recordHandler *handlers.RecordHandler,
	healthHandler *handlers.HealthHandler,
) {
	api := app.Group(cfg.APIPrefix)

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", healthHandler.Check)

	// Auth is public, with a stricter limit: 10 req/min per IP
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)

	// Everything below requires a verified token and a resolved
	// principal.
	authed := api.Group("", middleware.JWTProtected(jwtKey), resolver.Attach())

	authed.Get("/auth/me", authHandler.Me)

	// Admin user management
	users := authed.Group("/users", middleware.RoleRequired(models.RoleAdmin))
	users.Get("/", userHandler.List)
	users.Post("/", userHandler.Create)
	users.Get("/:id", userHandler.Get)
	users.Patch("/:id", userHandler.Update)
	users.Delete("/:id", userHandler.Delete)

	// Pet access is scoped inside the service layer. The export and
	// import routes must be registered before the :id routes so "me"
	// is not parsed as an id.
	pets := authed.Group("/pets")
	pets.Get("/me/export", middleware.RoleRequired(models.RoleOwner), petHandler.Export)
	pets.Post("/me/import", middleware.RoleRequired(models.RoleOwner), petHandler.Import)
	pets.Get("/", petHandler.List)
	pets.Post("/", petHandler.Create)
	pets.Get("/:id", petHandler.Get)
	pets.Put("/:id", petHandler.Update)
	pets.Delete("/:id", petHandler.Delete)

	// Vet directory and self-service
	vets := authed.Group("/vets")
	me := vets.Group("/me", middleware.RoleRequired(models.RoleVet))
	me.Get("/profile", vetHandler.GetMyProfile)
	me.Put("/profile", vetHandler.UpdateMyProfile)
	me.Get("/schedule", vetHandler.GetMySchedule)
	me.Put("/schedule", vetHandler.ReplaceMySchedule)
	me.Get("/time-off", vetHandler.ListMyTimeOff)
	me.Post("/time-off", vetHandler.AddMyTimeOff)
	me.Delete("/time-off/:id", vetHandler.DeleteMyTimeOff)
	vets.Get("/", vetHandler.List)
	vets.Get("/:id", vetHandler.Get)
	vets.Get("/:id/schedule", vetHandler.GetSchedule)
	vets.Get("/:id/time-off", vetHandler.GetTimeOff)

	// Visit booking and state
	visits := authed.Group("/visits")
	visits.Get("/me", middleware.RoleRequired(models.RoleVet), visitHandler.ListMine)
	visits.Get("/by-pet/:petId", visitHandler.ListByPet)
	visits.Get("/by-vet/:vetId", middleware.RoleRequired(models.RoleAdmin, models.RoleVet), visitHandler.ListByVet)
	visits.Post("/", visitHandler.Create)
	visits.Get("/:id", visitHandler.Get)
	visits.Patch("/:id/status", visitHandler.UpdateStatus)
	visits.Patch("/:id", visitHandler.UpdateFields)
	visits.Delete("/:id", visitHandler.Delete)

	// Medical records
	records := authed.Group("/medical-records")
	records.Get("/me", middleware.RoleRequired(models.RoleVet), recordHandler.ListMine)
	records.Get("/by-pet/:petId", recordHandler.ListByPet)
	records.Get("/by-visit/:visitId", recordHandler.GetByVisit)
	records.Get("/", middleware.RoleRequired(models.RoleAdmin), recordHandler.ListAll)
	records.Post("/", middleware.RoleRequired(models.RoleAdmin, models.RoleVet), recordHandler.Create)
	records.Patch("/:id", recordHandler.Update)
	records.Delete("/:id", recordHandler.Delete)
}
