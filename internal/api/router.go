package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/courtflow/case-management/docs"
	"github.com/courtflow/case-management/internal/api/handler"
	"github.com/courtflow/case-management/internal/api/middleware"
	"github.com/courtflow/case-management/internal/core/domain"
	"github.com/courtflow/case-management/internal/core/service"
	mongodb "github.com/courtflow/case-management/internal/infrastructure/db/mongo"
	redisdb "github.com/courtflow/case-management/internal/infrastructure/db/redis"
	"github.com/courtflow/case-management/internal/infrastructure/storage"
	"github.com/courtflow/case-management/internal/pkg/clock"
	"github.com/courtflow/case-management/internal/pkg/config"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("casemgmt"))

	// --- Repositories ---
	caseRepo := mongodb.NewCaseRepository(db)
	userRepo := mongodb.NewUserRepository(db)
	notifRepo := mongodb.NewNotificationRepository(db)
	schedRepo := mongodb.NewScheduleRepository(db)
	judgRepo := mongodb.NewJudgmentRepository(db)
	docRepo := mongodb.NewDocumentRepository(db)

	fileStore, err := storage.NewFS(cfg.DocumentDir)
	if err != nil {
		return nil, err
	}
	endorseGuard := redisdb.NewEndorseGuard(rdb)

	// --- Services ---
	authService := service.NewAuthService(userRepo, cfg.JWTSecret, 24*time.Hour)
	caseService := service.NewCaseService(caseRepo, userRepo, notifRepo, endorseGuard, log)
	scheduleService := service.NewScheduleService(schedRepo, caseRepo, clock.System{}, log)
	notificationService := service.NewNotificationService(notifRepo, caseRepo, log)
	judgmentService := service.NewJudgmentService(judgRepo, caseRepo, log)
	userService := service.NewUserService(userRepo, log)
	documentService := service.NewDocumentService(docRepo, caseRepo, fileStore, log)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	caseHandler := handler.NewCaseHandler(caseService)
	scheduleHandler := handler.NewScheduleHandler(scheduleService)
	notificationHandler := handler.NewNotificationHandler(notificationService)
	judgmentHandler := handler.NewJudgmentHandler(judgmentService)
	userHandler := handler.NewUserHandler(userService)
	documentHandler := handler.NewDocumentHandler(documentService)

	auth := middleware.Auth(cfg.JWTSecret)
	clerks := middleware.RBAC(domain.RoleAdmin, domain.RoleClerk)
	registrars := middleware.RBAC(domain.RoleAdmin, domain.RoleRegistrar)
	judges := middleware.RBAC(domain.RoleAdmin, domain.RoleJudge)
	schedulers := middleware.RBAC(domain.RoleAdmin, domain.RoleRegistrar, domain.RoleJudge)
	admins := middleware.RBAC(domain.RoleAdmin)

	// --- Auth routes (public) ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	// --- Cases ---
	cases := e.Group("/v1/cases", auth)
	cases.POST("", caseHandler.Create, clerks)
	cases.GET("", caseHandler.List)
	cases.GET("/stats", caseHandler.Stats, registrars)
	cases.GET("/:id", caseHandler.Get)
	cases.DELETE("/:id", caseHandler.Delete, admins)
	cases.POST("/:id/register", caseHandler.Register, clerks)
	cases.PUT("/:id/submit", caseHandler.Submit, clerks)
	cases.POST("/:id/approve", caseHandler.Approve, registrars)
	cases.POST("/:id/disapprove", caseHandler.Disapprove, registrars)
	cases.POST("/:id/endorse", caseHandler.Endorse, registrars)

	// --- Schedules ---
	schedules := e.Group("/v1/schedules", auth)
	schedules.POST("", scheduleHandler.Create, schedulers)
	schedules.GET("", scheduleHandler.List)
	schedules.GET("/judge/:judgeId", scheduleHandler.ListByJudge)
	schedules.GET("/progress/:judgeId", scheduleHandler.Progress)

	// --- Judgments ---
	judgments := e.Group("/v1/judgments", auth)
	judgments.POST("", judgmentHandler.Record, judges)
	judgments.GET("/case/:caseId", judgmentHandler.ListByCase)

	// --- Notifications ---
	notifications := e.Group("/v1/notifications", auth)
	notifications.GET("/:userId", notificationHandler.List)
	notifications.PATCH("/read/:id", notificationHandler.MarkRead)
	notifications.POST("/sync/:judgeId", notificationHandler.Sync)

	// --- Users (admin surface) ---
	users := e.Group("/v1/users", auth)
	users.POST("", userHandler.Create, admins)
	users.GET("", userHandler.List, admins)
	users.GET("/stats", userHandler.Stats, admins)
	users.GET("/judges", userHandler.Judges, registrars)
	users.PUT("/:id", userHandler.Update, admins)
	users.DELETE("/:id", userHandler.Delete, admins)

	// --- Documents ---
	documents := e.Group("/v1/documents", auth)
	documents.POST("/upload/:caseId", documentHandler.Upload)
	documents.GET("/case/:caseId", documentHandler.ListByCase)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e, nil
}
