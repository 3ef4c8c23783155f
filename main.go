package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Gautam3767/Website_Onboarding_Backend/config"
	"github.com/Gautam3767/Website_Onboarding_Backend/database"
	"github.com/Gautam3767/Website_Onboarding_Backend/handlers"
	"github.com/Gautam3767/Website_Onboarding_Backend/logger"
	"github.com/Gautam3767/Website_Onboarding_Backend/metrics"
	"github.com/Gautam3767/Website_Onboarding_Backend/services"
)

const shutdownTimeout = 10 * time.Second

// @title Website Onboarding API
// @version 1.0
// @description Intake forms for website projects: stores submissions, emails proposals and collects branding details.
// @BasePath /api
func main() {
	// Load .env first. A missing file is fine in production where real env vars are used.
	dotenvErr := config.LoadDotEnv()

	cfg, err := config.Load()
	if err != nil {
		logger.Init(logger.Config{Env: os.Getenv("APP_ENV")})
		logger.L().Fatal("invalid configuration", logger.Err(err))
	}

	logger.Init(logger.Config{Env: cfg.AppEnv, Level: cfg.LogLevel, ServiceName: "onboarding"})
	defer logger.Sync()
	log := logger.L()

	if dotenvErr != nil {
		log.Warn("could not read .env, relying on system environment", logger.Err(dotenvErr))
	}
	log.Info("mail account configured",
		zap.String("user", cfg.EmailUser),
		logger.Email(cfg.EmailFrom),
		zap.Bool("password_set", cfg.EmailPass != ""),
		zap.String("smtp_host", cfg.SMTPHost),
	)
	if cfg.EmailTo == "" {
		log.Warn("EMAIL_TO is not set; internal notifications will fail")
	}

	// Store and mail client are initialized once, before any request is accepted.
	ctx := context.Background()
	if err := database.Connect(ctx, cfg.MongoURI, cfg.MongoDatabase); err != nil {
		log.Fatal("failed to connect to MongoDB", logger.Err(err))
	}
	coll := database.GetCollection(cfg.MongoCollection)
	database.EnsureIndexes(coll)
	store := database.NewSubmissionStore(coll)

	mailer := services.NewSMTPMailer(services.SMTPConfig{
		Host:    cfg.SMTPHost,
		Port:    cfg.SMTPPort,
		User:    cfg.EmailUser,
		Pass:    cfg.EmailPass,
		From:    cfg.EmailFrom,
		Timeout: cfg.SMTPTimeout,
	})
	if err := mailer.Verify(ctx); err != nil {
		log.Warn("SMTP verification failed; emails may not be delivered", logger.Err(err))
	}

	if err := metrics.Register(nil); err != nil {
		log.Fatal("failed to register metrics", logger.Err(err))
	}

	if cfg.AppEnv == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}

	h := &handlers.OnboardingHandler{
		Store:         store,
		Mailer:        mailer,
		From:          cfg.EmailFrom,
		InternalTo:    cfg.EmailTo,
		ClientAppURL:  cfg.ClientAppURL,
		PublicBaseURL: cfg.PublicBaseURL,
	}
	router := handlers.NewRouter(h, handlers.RouterConfig{
		CORSOrigins: cfg.CORSOrigins,
		PublicDir:   cfg.PublicDir,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("server running", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("failed to run server", logger.Err(err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server shutdown", logger.Err(err))
	}
	if err := database.Disconnect(shutdownCtx); err != nil {
		log.Error("mongo disconnect", logger.Err(err))
	}
}
