package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/exec"
	"os/signal"
	"syscall"
	"time"

	"casterdesk-backend/internal/config"
	"casterdesk-backend/internal/features/audit_logs"
	availability_controllers "casterdesk-backend/internal/features/availability/controllers"
	availability_models "casterdesk-backend/internal/features/availability/models"
	availability_services "casterdesk-backend/internal/features/availability/services"
	credits_controllers "casterdesk-backend/internal/features/credits/controllers"
	credits_models "casterdesk-backend/internal/features/credits/models"
	credits_services "casterdesk-backend/internal/features/credits/services"
	"casterdesk-backend/internal/features/realtime"
	spaces_controllers "casterdesk-backend/internal/features/spaces/controllers"
	spaces_models "casterdesk-backend/internal/features/spaces/models"
	spaces_services "casterdesk-backend/internal/features/spaces/services"
	staff_controllers "casterdesk-backend/internal/features/staff/controllers"
	staff_models "casterdesk-backend/internal/features/staff/models"
	staff_services "casterdesk-backend/internal/features/staff/services"
	streams_controllers "casterdesk-backend/internal/features/streams/controllers"
	streams_models "casterdesk-backend/internal/features/streams/models"
	streams_services "casterdesk-backend/internal/features/streams/services"
	system_healthcheck "casterdesk-backend/internal/features/system/healthcheck"
	users_controllers "casterdesk-backend/internal/features/users/controllers"
	users_middleware "casterdesk-backend/internal/features/users/middleware"
	users_models "casterdesk-backend/internal/features/users/models"
	users_services "casterdesk-backend/internal/features/users/services"
	webhooks_controllers "casterdesk-backend/internal/features/webhooks/controllers"
	webhooks_models "casterdesk-backend/internal/features/webhooks/models"
	webhooks_services "casterdesk-backend/internal/features/webhooks/services"
	"casterdesk-backend/internal/storage"
	env_utils "casterdesk-backend/internal/util/env"
	"casterdesk-backend/internal/util/logger"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title CasterDesk Backend API
// @version 1.0
// @description Scheduling and credit tracking for broadcast casters and observers

// @host localhost:4010
// @BasePath /api/v1
// @schemes http
func main() {
	log := logger.GetLogger()

	runMigrations(log)

	go generateSwaggerDocs(log)

	gin.SetMode(gin.ReleaseMode)
	ginApp := gin.Default()

	ginApp.Use(gzip.Gzip(
		gzip.DefaultCompression,
		gzip.WithExcludedExtensions(
			[]string{".png", ".gif", ".jpeg", ".jpg", ".ico", ".svg", ".pdf", ".mp4"},
		),
	))

	enableCors(ginApp)
	setUpDependencies()
	setUpRoutes(ginApp)
	runBackgroundTasks(log)

	startServerWithGracefulShutdown(log, ginApp)
}

func runMigrations(log *slog.Logger) {
	log.Info("Running database migrations...")

	err := storage.Migrate(
		&users_models.User{},
		&spaces_models.Space{},
		&spaces_models.SpaceMembership{},
		&spaces_models.JoinRequest{},
		&staff_models.StaffMember{},
		&availability_models.AvailabilitySlot{},
		&credits_models.CreditTransaction{},
		&credits_models.StaffCreditBalance{},
		&streams_models.StreamEvent{},
		&streams_models.StreamAssignment{},
		&streams_models.StreamRSVP{},
		&webhooks_models.DiscordWebhook{},
		&webhooks_models.StreamDiscordPost{},
		&audit_logs.AuditLog{},
	)
	if err != nil {
		log.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}

	log.Info("Database migrations completed successfully")
}

func setUpRoutes(r *gin.Engine) {
	v1 := r.Group("/api/v1")

	// Mount Swagger UI
	v1.GET("/docs/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Public routes (only user auth routes and healthcheck should be public)
	userController := users_controllers.GetUserController()
	userController.RegisterRoutes(v1)
	system_healthcheck.GetHealthcheckController().RegisterRoutes(v1)

	// WebSocket subscriptions authenticate via query token themselves
	realtime.GetRealtimeController().RegisterRoutes(v1)

	// Setup auth middleware
	userService := users_services.GetUserService()
	authMiddleware := users_middleware.AuthMiddleware(userService)

	// Protected routes
	protected := v1.Group("")
	protected.Use(authMiddleware)

	userController.RegisterProtectedRoutes(protected)
	spaces_controllers.GetSpaceController().RegisterRoutes(protected)
	spaces_controllers.GetMembershipController().RegisterRoutes(protected)
	spaces_controllers.GetJoinRequestController().RegisterRoutes(protected)
	staff_controllers.GetStaffController().RegisterRoutes(protected)
	availability_controllers.GetAvailabilityController().RegisterRoutes(protected)
	credits_controllers.GetCreditController().RegisterRoutes(protected)
	streams_controllers.GetStreamController().RegisterRoutes(protected)
	webhooks_controllers.GetWebhookController().RegisterRoutes(protected)
}

func setUpDependencies() {
	audit_logs.SetupDependencies()
	staff_services.SetupDependencies()
	availability_services.SetupDependencies()
	credits_services.SetupDependencies()
	streams_services.SetupDependencies()
	webhooks_services.SetupDependencies()

	realtime.GetRealtimeController().SetAccessChecker(
		func(spaceID uuid.UUID, user *users_models.User) (bool, error) {
			canAccess, _, err := spaces_services.GetSpaceService().CanUserAccessSpace(spaceID, user)
			return canAccess, err
		},
	)
}

func runBackgroundTasks(log *slog.Logger) {
	log.Info("Starting background tasks...")

	webhooks_services.GetReminderService().Start()
}

func startServerWithGracefulShutdown(log *slog.Logger, app *gin.Engine) {
	host := ""
	if config.GetEnv().EnvMode == env_utils.EnvModeDevelopment {
		// for dev we use localhost to avoid firewall
		// requests on each run for Windows
		host = "127.0.0.1"
	}

	srv := &http.Server{
		Addr:    host + ":" + config.GetEnv().HTTPPort,
		Handler: app,
	}

	go func() {
		log.Info("Starting HTTP server", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("listen:", "error", err)
		}
	}()

	log.Info("CasterDesk is running!", "http", "http://localhost:"+config.GetEnv().HTTPPort)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Info("Shutdown signal received")

	webhooks_services.GetReminderService().Stop()

	// The context is used to inform the server it has 10 seconds to finish
	// the request it is currently handling
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown:", "error", err)
	}

	log.Info("Server gracefully stopped")
}

// Keep in mind: docs appear after second launch, because Swagger
// is generated into Go files. So if we changed files, we generate
// new docs, but still need to restart the server to see them.
func generateSwaggerDocs(log *slog.Logger) {
	if config.GetEnv().EnvMode == env_utils.EnvModeProduction {
		return
	}

	currentDir, err := os.Getwd()
	if err != nil {
		log.Error("Failed to get current directory", "error", err)
		return
	}

	cmd := exec.Command("swag", "init", "-d", currentDir, "-g", "cmd/main.go", "-o", "swagger")

	output, err := cmd.CombinedOutput()
	if err != nil {
		log.Error("Failed to generate Swagger docs", "error", err, "output", string(output))
		return
	}

	log.Info("Swagger documentation generated successfully")
}

func enableCors(ginApp *gin.Engine) {
	if config.GetEnv().EnvMode == env_utils.EnvModeDevelopment {
		ginApp.Use(cors.New(cors.Config{
			AllowOrigins: []string{"*"},
			AllowMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
			AllowHeaders: []string{
				"Origin",
				"Content-Length",
				"Content-Type",
				"Authorization",
				"Accept",
				"Accept-Language",
				"Accept-Encoding",
				"Access-Control-Request-Method",
				"Access-Control-Request-Headers",
				"Access-Control-Allow-Methods",
				"Access-Control-Allow-Headers",
				"Access-Control-Allow-Origin",
			},
			AllowCredentials: true,
		}))
	}
}
