package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"time"

	_ "github.com/lib/pq"

	"eventgate/config"
	_ "eventgate/docs"
	authadapter "eventgate/internal/adapters/auth"
	"eventgate/internal/adapters/audit"
	emailadapter "eventgate/internal/adapters/email"
	httpdelivery "eventgate/internal/delivery/http"
	"eventgate/internal/delivery/http/controllers"
	"eventgate/internal/delivery/http/middleware"
	"eventgate/internal/repository/postgres"
	"eventgate/internal/services"
	"eventgate/migrations"
)

const (
	serviceTimeout = 10 * time.Second
	bcryptCost     = 10
)

// @title Eventgate API
// @version 1.0
// @description Event ticketing backend: event CRUD, bearer-token auth, organizer notifications, and admin-action audit relay.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	logger := config.NewLogger()

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load config", "err", err)
		os.Exit(1)
	}

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		logger.Error("failed to open database", "err", err)
		os.Exit(1)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		logger.Error("failed to reach database", "err", err)
		os.Exit(1)
	}

	migrateCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := migrations.Apply(migrateCtx, db); err != nil {
		cancel()
		logger.Error("failed to apply migrations", "err", err)
		os.Exit(1)
	}
	cancel()

	eventRepo := postgres.NewEventRepository(db)
	userRepo := postgres.NewUserRepository(db)

	jwtCodec := authadapter.NewJWTCodec(cfg.JWTSecret)
	hasher := authadapter.NewBcryptHasher(bcryptCost)

	mailer, err := emailadapter.NewMailer(emailadapter.MailerConfig{
		Provider:    cfg.EmailProvider,
		FromAddress: cfg.FromAddress,
		FromName:    cfg.FromName,
		SES: emailadapter.SESConfig{
			Region:          cfg.SES.Region,
			AccessKeyID:     cfg.SES.AccessKeyID,
			SecretAccessKey: cfg.SES.SecretAccessKey,
		},
	})
	if err != nil {
		logger.Error("failed to create mailer", "err", err)
		os.Exit(1)
	}
	emailService := services.NewEmailService(mailer, emailadapter.NewTemplateRenderer())

	auditRelay := audit.NewHTTPRelay(&http.Client{Timeout: serviceTimeout}, cfg.AuditServiceURL)

	eventService := services.NewEventService(eventRepo, userRepo, emailService, auditRelay, serviceTimeout)
	authService := services.NewAuthService(userRepo, hasher, jwtCodec, emailService, cfg.JWTExpiry)

	eventController := controllers.NewEventController(logger, eventService)
	authController := controllers.NewAuthController(logger, authService)

	mux := httpdelivery.NewRouter(eventController, authController, jwtCodec)

	var handler http.Handler = mux
	handler = middleware.LoggingMiddleware(logger, handler)
	handler = middleware.RequestID(handler)
	handler = middleware.CORS(cfg.CORSAllowedOrigins, handler)

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Info("server listening", "port", cfg.Port, "env", cfg.Environment)
	if err := server.ListenAndServe(); err != nil {
		logger.Error("server stopped", "err", err)
		os.Exit(1)
	}
}
