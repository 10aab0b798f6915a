package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"nursing-ward-server/internal/config"
	"nursing-ward-server/internal/logging"
	"nursing-ward-server/internal/models"
	"nursing-ward-server/internal/routes"
	"nursing-ward-server/internal/services"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "nursing-ward-server",
		Short: "Nursing ward administration API",
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(rosterCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the ward API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}
}

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the ward tables",
		RunE: func(cmd *cobra.Command, args []string) error {
			seed, _ := cmd.Flags().GetBool("seed-roster")

			cfg, logger, db, err := bootstrap()
			if err != nil {
				return err
			}
			if err := models.AutoMigrate(db); err != nil {
				return fmt.Errorf("migrate: %w", err)
			}
			logger.Info().Str("driver", cfg.Database.Driver).Msg("migrations applied")

			if seed {
				seeded, err := models.SeedRoster(db, models.DefaultRoster())
				if err != nil {
					return fmt.Errorf("seed roster: %w", err)
				}
				logger.Info().Bool("seeded", seeded).Msg("roster seed finished")
			}
			return nil
		},
	}
	cmd.Flags().Bool("seed-roster", false, "load the built-in roster into an empty shift_assignments table")
	return cmd
}

func rosterCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "roster",
		Short: "Print the current shift roster grouped by shift",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, db, err := bootstrap()
			if err != nil {
				return err
			}
			provider, err := services.NewRosterProvider(cfg.RosterSource, db)
			if err != nil {
				return err
			}
			groups, err := services.GroupedRoster(cmd.Context(), provider)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, g := range groups {
				fmt.Fprintf(out, "%s (%s)\n", g.Shift, g.Color)
				for _, a := range g.Assignments {
					fmt.Fprintf(out, "  %-20s %v\n", a.NurseName, []string(a.Patients))
				}
			}
			return nil
		},
	}
}

// bootstrap loads configuration and opens the database.
func bootstrap() (*config.Config, zerolog.Logger, *gorm.DB, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, zerolog.Nop(), nil, fmt.Errorf("load config: %w", err)
	}

	logger, err := logging.New(cfg.LogLevel, cfg.Environment)
	if err != nil {
		return nil, zerolog.Nop(), nil, fmt.Errorf("init logger: %w", err)
	}

	db, err := models.InitDB(models.DatabaseConfig{
		Driver: cfg.Database.Driver,
		DSN:    cfg.Database.DSN,
		Logger: logging.Gorm(logger, cfg.Environment),
	})
	if err != nil {
		return nil, logger, nil, fmt.Errorf("connect database: %w", err)
	}
	return cfg, logger, db, nil
}

func runServer() error {
	cfg, logger, db, err := bootstrap()
	if err != nil {
		return err
	}

	if cfg.AutoMigrate {
		if err := models.AutoMigrate(db); err != nil {
			return fmt.Errorf("auto migrate: %w", err)
		}
		logger.Info().Msg("auto migration complete")
	}

	router, err := routes.NewRouter(cfg, db, logger)
	if err != nil {
		return fmt.Errorf("build router: %w", err)
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info().Str("port", cfg.Port).Str("env", cfg.Environment).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server: %w", err)
		}
	case <-ctx.Done():
	}

	logger.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.Close()
	}
	return nil
}
