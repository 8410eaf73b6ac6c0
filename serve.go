package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"registrations/config"
	"registrations/database"
	_ "registrations/docs"
	"registrations/models"
	v1 "registrations/routes/v1"
	"registrations/services"
	"registrations/utils/credentials"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const shutdownTimeout = 10 * time.Second

func serveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API (default)",
		RunE:  serveRun,
	}
}

func serveRun(cmd *cobra.Command, _ []string) error {
	cfg := config.Env
	gin.SetMode(cfg.GinMode)

	if err := database.InitDB(); err != nil {
		return err
	}

	svc, err := newParticipantService(cfg)
	if err != nil {
		return err
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(cors.New(corsConfig(cfg)))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	v1.Register(r, svc)

	srv := &http.Server{
		Addr:              ":" + cfg.APIPort,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logrus.WithField("port", cfg.APIPort).Info("API listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logrus.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// corsConfig lets the registration frontend call the API with its auth cookie
func corsConfig(cfg config.Config) cors.Config {
	return cors.Config{
		AllowOrigins:     []string{cfg.ClientUrl},
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
}

// newParticipantService wires the store, issuer and delivery channel from cfg
func newParticipantService(cfg config.Config) (*services.ParticipantService, error) {
	university, err := models.ParseUniversity(cfg.DefaultUniversity)
	if err != nil {
		return nil, fmt.Errorf("DEFAULT_UNIVERSITY: %w", err)
	}
	if cfg.PasswordLength < credentials.MinPasswordLength {
		return nil, fmt.Errorf("PASSWORD_LENGTH must be at least %d", credentials.MinPasswordLength)
	}

	issuer := credentials.NewIssuer(nil, credentials.WithPasswordLength(cfg.PasswordLength))
	opts := []services.ServiceOption{services.WithLogger(logrus.StandardLogger())}
	if cfg.MailEnabled() {
		opts = append(opts, services.WithDelivery(services.NewEmailService(cfg)))
	} else {
		logrus.Warn("MAIL_HOST not set, one-time passwords are only returned to the creator")
	}

	return services.NewParticipantService(services.NewParticipantStore(database.DB), issuer, university, opts...), nil
}
