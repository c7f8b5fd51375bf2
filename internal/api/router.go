package api

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/patitas/shelter-api/internal/api/handler"
	"github.com/patitas/shelter-api/internal/api/middleware"
	"github.com/patitas/shelter-api/internal/core/ports"
	"github.com/patitas/shelter-api/internal/core/service"
	"github.com/patitas/shelter-api/internal/infrastructure/config"
	shelterdb "github.com/patitas/shelter-api/internal/infrastructure/db/mongo"
	"github.com/patitas/shelter-api/internal/infrastructure/hash"
	"github.com/patitas/shelter-api/internal/infrastructure/http/handlers"

	"github.com/patitas/shelter-api/internal/core/domain"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, db *mongo.Database, rdb *redis.Client, sessions ports.SessionStore, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("shelter_http"))
	e.Use(middleware.Session(sessions))

	// --- Dependencies ---
	hasher := hash.NewBcryptHasher(cfg.Session.BcryptCost)
	userRepo := shelterdb.NewUserRepository(db)
	adminRepo := shelterdb.NewAdminRepository(db)
	dogRepo := shelterdb.NewDogRepository(db)
	adoptionRepo := shelterdb.NewAdoptionRepository(db)
	reportRepo := shelterdb.NewReportRepository(db)
	donationRepo := shelterdb.NewDonationRepository(db)

	authService := service.NewAuthService(userRepo, adminRepo, hasher, log)
	dogService := service.NewDogService(dogRepo, log)
	adoptionService := service.NewAdoptionService(adoptionRepo, dogRepo, log)
	reportService := service.NewReportService(reportRepo, log)
	donationService := service.NewDonationService(donationRepo, log)
	accountService := service.NewAccountService(userRepo, log)

	authHandler := handler.NewAuthHandler(authService, sessions, cfg.Session.TTL)
	dogHandler := handler.NewDogHandler(dogService)
	adoptionHandler := handler.NewAdoptionHandler(adoptionService)
	reportHandler := handler.NewReportHandler(reportService)
	donationHandler := handler.NewDonationHandler(donationService)
	accountHandler := handler.NewAccountHandler(accountService)

	requireLogin := middleware.RequireLogin()
	requireAdmin := middleware.RequireRole(domain.RoleAdmin)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.GET("/auth/me", authHandler.Me, requireLogin)
	e.GET("/logout", authHandler.Logout)

	// Redirect target for unauthenticated requests. The UI lives elsewhere;
	// this just tells callers how to authenticate.
	e.GET("/login", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"message": "authenticate via POST /auth/login",
			"error":   c.QueryParam("error"),
		})
	})

	// --- Dog catalog ---
	e.GET("/dogs", dogHandler.List, requireLogin)
	e.GET("/dogs/:id", dogHandler.Get, requireLogin)
	e.POST("/dogs", dogHandler.Create, requireAdmin)
	e.PUT("/dogs/:id", dogHandler.Update, requireAdmin)

	// --- Adoption requests ---
	e.POST("/dogs/:id/adoptions", adoptionHandler.Submit, requireLogin)
	e.GET("/adoptions", adoptionHandler.List, requireAdmin)
	e.PATCH("/adoptions/:id/state", adoptionHandler.Decide, requireAdmin)

	// --- Reports and donations ---
	e.POST("/reports", reportHandler.Submit, requireLogin)
	e.GET("/reports", reportHandler.List, requireAdmin)
	e.POST("/donations", donationHandler.Submit, requireLogin)
	e.GET("/donations", donationHandler.List, requireAdmin)

	// --- User management (admin) ---
	e.GET("/users", accountHandler.List, requireAdmin)
	e.PUT("/users/:id", accountHandler.Update, requireAdmin)
	e.PATCH("/users/:id/state", accountHandler.SetState, requireAdmin)

	// --- Observability (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	return e
}
