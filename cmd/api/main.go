package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"remedios-api/internal/adapters/auth/passwords"
	"remedios-api/internal/adapters/postal/viacep"
	pg "remedios-api/internal/adapters/storage/postgres"
	"remedios-api/internal/adapters/throttle/redisthrottle"
	"remedios-api/internal/config"
	"remedios-api/internal/domain/users"
	"remedios-api/internal/platform/logger"
	"remedios-api/internal/router"
)

// @title Remedios API
// @version 1.0
// @description Medicamentos, pacientes, recetas y login del dispensario.
// @BasePath /
func main() {
	rootCmd := &cobra.Command{
		Use:   "remedios-api",
		Short: "API del dispensario: medicamentos, pacientes y recetas",
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(migrateCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			autoMigrate, _ := cmd.Flags().GetBool("migrate")
			return runServer(autoMigrate)
		},
	}
	cmd.Flags().Bool("migrate", false, "Apply pending migrations before serving (requires DB_DSN)")
	return cmd
}

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if cfg.DBDSN == "" {
				return errors.New("DB_DSN is required to run migrations")
			}

			ctx := context.Background()
			db, err := pg.Open(ctx, cfg.DBDSN)
			if err != nil {
				return fmt.Errorf("open db: %w", err)
			}
			defer db.Close()

			count, err := pg.NewMigrator(db).Up(ctx)
			if err != nil {
				return fmt.Errorf("migration failed: %w", err)
			}
			fmt.Printf("Applied %d migration(s) successfully.\n", count)
			return nil
		},
	})

	return cmd
}

func runServer(autoMigrate bool) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.LogLevel),
		Format: logger.ParseFormat(cfg.LogFormat),
		App:    cfg.AppName,
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var db *sql.DB
	if cfg.DBDSN != "" {
		db, err = pg.Open(ctx, cfg.DBDSN)
		if err != nil {
			return fmt.Errorf("open db: %w", err)
		}
		defer db.Close()

		if autoMigrate {
			n, err := pg.NewMigrator(db).Up(ctx)
			if err != nil {
				return fmt.Errorf("migrate: %w", err)
			}
			log.Info("migrations applied", map[string]any{"count": n})
		}
		log.Info("storage: postgres", nil)
	} else {
		log.Warn("storage: in-memory (DB_DSN not set); data is lost on restart", nil)
	}

	var throttle users.Throttle
	if cfg.RedisURL != "" {
		rdb, err := newRedis(ctx, cfg.RedisURL)
		if err != nil {
			return err
		}
		defer rdb.Close()

		th, err := redisthrottle.New(rdb, redisthrottle.Options{
			MaxAttempts: cfg.LoginMaxAttempts,
			Window:      cfg.LoginLockoutWindow,
			Prefix:      cfg.AppName,
		})
		if err != nil {
			return err
		}
		throttle = th
		log.Info("login throttle enabled", map[string]any{
			"max_attempts": cfg.LoginMaxAttempts,
			"window":       cfg.LoginLockoutWindow.String(),
		})
	}

	postalClient, err := viacep.NewClient(viacep.Config{
		BaseURL: cfg.PostalBaseURL,
		Timeout: cfg.PostalTimeout,
	})
	if err != nil {
		return err
	}

	handler := router.NewRouter(router.Options{
		DB:          db,
		Postal:      postalClient,
		Hasher:      passwords.NewHasher(cfg.BcryptCost),
		Throttle:    throttle,
		Logger:      log,
		CORSOrigins: cfg.CORSOrigins,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		// el save de pacientes puede esperar a ViaCEP hasta POSTAL_TIMEOUT
		WriteTimeout: 10*time.Second + cfg.PostalTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", map[string]any{"addr": cfg.Addr(), "env": cfg.Env})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down", nil)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func newRedis(ctx context.Context, redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse REDIS_URL: %w", err)
	}
	rdb := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return rdb, nil
}
