package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"courierdispatch/cmd"
	"courierdispatch/internal/adapters/out/jwtauth"
	"courierdispatch/internal/adapters/out/stripepay"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
	"github.com/spf13/cobra"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

func main() {
	rootCmd := &cobra.Command{
		Use:          "courierdispatch",
		Short:        "Courier dispatch service: parcels, riders, tracking and payments",
		SilenceUsage: true,
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(migrateCmd())

	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and the scheduled jobs",
		RunE: func(c *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(c.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return serve(ctx, getConfigs())
		},
	}
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(c *cobra.Command, _ []string) error {
			app, err := newApp(getConfigs())
			if err != nil {
				return err
			}
			if err := app.Store().Migrate(c.Context()); err != nil {
				return fmt.Errorf("migrate: %w", err)
			}
			fmt.Fprintln(c.OutOrStdout(), "schema is up to date")
			return nil
		},
	}
}

func serve(ctx context.Context, configs cmd.Config) error {
	app, err := newApp(configs)
	if err != nil {
		return err
	}
	if err := app.Store().Migrate(ctx); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		return err
	}
	defer jobManager.StopAll()

	e, err := app.CreateRouter()
	if err != nil {
		return fmt.Errorf("router: %w", err)
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort))
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}

func newApp(configs cmd.Config) (*cmd.CompositionRoot, error) {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB, err := gorm.Open(gorm_postgres.Open(configs.DSN()), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	provider, err := stripepay.NewProvider(configs.StripeSecretKey)
	if err != nil {
		return nil, err
	}
	verifier, err := jwtauth.NewVerifier(configs.JWTSecret)
	if err != nil {
		return nil, err
	}

	return cmd.NewCompositionRoot(configs, gormDB, provider, verifier, logger)
}

func getConfigs() cmd.Config {
	// .env is optional; real deployments set the environment directly.
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Fatalf("Error loading .env file: %v", err)
	}

	config := cmd.Config{
		HTTPPort:        os.Getenv("HTTP_PORT"),
		DBHost:          os.Getenv("DB_HOST"),
		DBPort:          os.Getenv("DB_PORT"),
		DBUser:          os.Getenv("DB_USER"),
		DBPassword:      os.Getenv("DB_PASSWORD"),
		DBName:          os.Getenv("DB_NAME"),
		DBSslMode:       os.Getenv("DB_SSLMODE"),
		StripeSecretKey: os.Getenv("STRIPE_SECRET_KEY"),
		SiteDomain:      os.Getenv("SITE_DOMAIN"),
		JWTSecret:       os.Getenv("JWT_SECRET"),
		AuditSchedule:   os.Getenv("AUDIT_SCHEDULE"),
		StatsSchedule:   os.Getenv("STATS_SCHEDULE"),
	}
	if config.HTTPPort == "" {
		config.HTTPPort = "8080"
	}
	return config
}
