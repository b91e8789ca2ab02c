package api

import (
	echoprometheus "github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/dangonz2277-glitch/Veterinaria-FInal/docs"
	"github.com/dangonz2277-glitch/Veterinaria-FInal/internal/api/handler"
	"github.com/dangonz2277-glitch/Veterinaria-FInal/internal/api/middleware"
	"github.com/dangonz2277-glitch/Veterinaria-FInal/internal/core/ports"
	"github.com/dangonz2277-glitch/Veterinaria-FInal/internal/core/service"
	mongodb "github.com/dangonz2277-glitch/Veterinaria-FInal/internal/infrastructure/db/mongo"
)

// Deps carries the process-wide collaborators the router wires into
// handlers. The audit sink/service pair is built in main so the dispatcher
// lifecycle stays with the process, not the router.
type Deps struct {
	Mongo        *mongo.Database
	Redis        *redis.Client
	Logger       zerolog.Logger
	JWTSecret    string
	BcryptCost   int
	LoginLimiter ports.AttemptLimiter
	AuditSink    ports.AuditSink
	AuditService ports.AuditService
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("vetclinic"))

	// --- Dependencies ---
	accountRepo := mongodb.NewAccountRepository(deps.Mongo)
	ownerRepo := mongodb.NewOwnerRepository(deps.Mongo)
	petRepo := mongodb.NewPetRepository(deps.Mongo)
	recordRepo := mongodb.NewRecordRepository(deps.Mongo)

	hasher := service.NewBcryptHasher(deps.BcryptCost)
	tokens := service.NewTokenService(deps.JWTSecret)

	authService := service.NewAuthService(accountRepo, hasher, tokens, deps.LoginLimiter)
	accountService := service.NewAccountService(accountRepo)
	ownerService := service.NewOwnerService(ownerRepo)
	petService := service.NewPetService(petRepo, ownerRepo, recordRepo)
	recordService := service.NewRecordService(recordRepo, petRepo)

	authHandler := handler.NewAuthHandler(authService, deps.AuditSink)
	accountHandler := handler.NewAccountHandler(accountService)
	ownerHandler := handler.NewOwnerHandler(ownerService)
	petHandler := handler.NewPetHandler(petService)
	recordHandler := handler.NewRecordHandler(recordService)
	auditHandler := handler.NewAuditHandler(deps.AuditService)

	session := middleware.Session(tokens)
	admin := middleware.RequireAdministrator()

	// --- Auth (public) ---
	auth := e.Group("/api/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)

	// --- Staff accounts (admin) ---
	users := e.Group("/api/users", session, admin)
	users.GET("", accountHandler.List)
	users.PUT("/:id", accountHandler.Update)

	// --- Owners (admin) ---
	owners := e.Group("/api/owners", session, admin)
	owners.POST("", ownerHandler.Create)
	owners.GET("", ownerHandler.List)
	owners.GET("/:id", ownerHandler.Get)
	owners.PUT("/:id", ownerHandler.Update)
	owners.GET("/:id/pets", petHandler.ListByOwner)

	// --- Pets (staff; historical views and status toggle are admin) ---
	pets := e.Group("/api/pets", session)
	pets.GET("", petHandler.List)
	pets.POST("", petHandler.Create)
	pets.GET("/inactive", petHandler.ListInactive, admin)
	pets.GET("/all", petHandler.ListAll, admin)
	pets.GET("/:id", petHandler.Get)
	pets.PUT("/:id", petHandler.Update)
	pets.PUT("/:id/status", petHandler.SetStatus, admin)

	// --- Medical records (staff) ---
	records := e.Group("/api/records", session)
	records.POST("", recordHandler.Create)
	records.GET("/pet/:petID", recordHandler.ListByPet)
	records.GET("/:id", recordHandler.Get)

	// --- Audit trail (admin) ---
	e.GET("/api/audit", auditHandler.List, session, admin)

	// --- Operational endpoints (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(deps.Mongo, deps.Redis)

	e.GET("/health", healthHandler.Liveness)          // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
