package cli

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

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"hoops-trivia/internal/app"
	"hoops-trivia/internal/catalog"
	"hoops-trivia/internal/config"
	"hoops-trivia/internal/devreload"
	"hoops-trivia/internal/infra/memory"
	pgcatalog "hoops-trivia/internal/infra/postgres"
	rediscache "hoops-trivia/internal/infra/redis"
	"hoops-trivia/internal/logging"
	"hoops-trivia/internal/metrics"
	transport "hoops-trivia/internal/transport/http"
)

const serviceName = "hoops-trivia"

// NewStartCmd builds the CLI subcommand to start the server.
func NewStartCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Start the trivia server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cmd.Context(), opts)
		},
	}
}

func loadConfig(opts *options) (config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return cfg, fmt.Errorf("load config %s: %w", opts.configPath, err)
	}
	config.ApplyEnv(&cfg)
	if opts.port != "" {
		cfg.Server.Port = opts.port
	}
	if opts.logLevel != "" {
		cfg.Log.Level = opts.logLevel
	}
	return cfg, nil
}

func newLogger(cfg config.Config) *slog.Logger {
	return logging.NewLogger(logging.Config{
		Format: cfg.Log.Format,
		Level:  cfg.Log.Level,
		Output: os.Stdout,
	}).With(logging.FieldService, serviceName)
}

func runServer(ctx context.Context, opts *options) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}
	logger := newLogger(cfg)

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var loader memory.CatalogLoader = memory.NewStaticCatalogLoader(catalog.Builtin())
	if cfg.Postgres.URL != "" {
		if err := prepareDatabase(ctx, cfg, logger); err != nil {
			return err
		}
		pool, err := pgxpool.Connect(ctx, cfg.Postgres.URL)
		if err != nil {
			return fmt.Errorf("connect postgres: %w", err)
		}
		defer pool.Close()
		loader = pgcatalog.NewCatalogLoader(pool)
	}

	var redisClient *redis.Client
	if cfg.Redis.Addr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()
	}

	catalogTTL := config.TTLDuration(cfg.Catalog.TTL, 10*time.Minute)
	var catalogs app.CatalogRepository
	var sessions app.SessionRepository
	if redisClient != nil {
		catalogs = rediscache.NewCatalogRepository(redisClient, loader, catalogTTL)
		sessions = rediscache.NewSessionStore(redisClient, config.TTLDuration(cfg.Redis.TTL, 30*time.Minute))
	} else {
		catalogs = memory.NewCatalogRepository(loader, catalogTTL)
		sessions = memory.NewSessionStore()
	}

	// fail fast on a bad catalog rather than on the first game
	if _, err := catalogs.GetCatalog(ctx); err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}

	var rec *metrics.Recorder
	if cfg.Metrics.Enabled {
		rec = metrics.NewRecorder()
	}

	service := app.NewGameService(sessions, catalogs, app.Options{
		AdvanceDelay: config.TTLDuration(cfg.Game.AdvanceDelay, 0),
		PlayerName:   cfg.Game.PlayerName,
		Logger:       logger,
		Metrics:      rec,
	})

	var reloader *devreload.Reloader
	routerCfg := transport.RouterConfig{
		Service:   service,
		Catalogs:  catalogs,
		Metrics:   rec,
		PublicURL: cfg.Server.PublicURL,
		StaticDir: cfg.Server.StaticDir,
		Logger:    logger,
	}
	if cfg.Server.Dev && cfg.Server.StaticDir != "" {
		reloader = devreload.New(cfg.Server.StaticDir, logger)
		routerCfg.Reload = reloader
	}

	server := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           transport.NewRouter(routerCfg),
		ReadHeaderTimeout: 15 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logging.Info(logger, "starting trivia server", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	if reloader != nil {
		g.Go(func() error { return reloader.Run(gctx) })
	}
	g.Go(func() error {
		<-gctx.Done()
		logging.Info(logger, "shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
