package cli

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"esl-arcade-service/internal/app"
	"esl-arcade-service/internal/arena"
	"esl-arcade-service/internal/config"
	"esl-arcade-service/internal/content"
	"esl-arcade-service/internal/gamify"
	"esl-arcade-service/internal/generator"
	"esl-arcade-service/internal/infra/memory"
	pgloader "esl-arcade-service/internal/infra/postgres"
	redisinfra "esl-arcade-service/internal/infra/redis"
	transport "esl-arcade-service/internal/transport/http"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
)

// NewStartCmd builds the CLI subcommand to start the server.
func NewStartCmd(configPath, port *string) *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Start the arcade server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cmd.Context(), *configPath, *port)
		},
	}
}

func runServer(ctx context.Context, configPath, portFlag string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	if cfg.Postgres.URL != "" {
		if err := runMigrationsWithConfig(ctx, cfg); err != nil {
			return err
		}
	}

	finalPort := portFlag
	if finalPort == "" {
		finalPort = cfg.Server.Port
	}
	if finalPort == "" {
		finalPort = "8080"
	}

	var redisClient *redis.Client
	if cfg.Redis.Addr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
	}

	var pool *pgxpool.Pool
	if cfg.Postgres.URL != "" {
		pool, err = pgxpool.Connect(ctx, cfg.Postgres.URL)
		if err != nil {
			return err
		}
	}

	// Without Postgres the menu is generated in-process on every boot.
	var loader memory.LevelLoader = memory.NewStaticLevelLoader(generator.New(nil).Levels())
	if pool != nil {
		loader = pgloader.NewLevelLoader(pool)
	}

	levelTTL := config.TTLDuration(cfg.Levels.TTL, 10*time.Minute)
	var levelRepo app.LevelRepository
	if redisClient != nil {
		levelRepo = redisinfra.NewLevelRepository(redisClient, loader, levelTTL)
	} else {
		levelRepo = memory.NewLevelRepository(loader, levelTTL)
	}

	var statsStore gamify.StatsStore
	if redisClient != nil {
		statsStore = redisinfra.NewStatsStore(redisClient)
	} else {
		statsStore = memory.NewStatsStore()
	}

	service := app.NewArcadeService(levelRepo, statsStore, arena.LogCuePlayer{})
	wsHandler := transport.NewWSHandler(service)

	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})
	mux.HandleFunc("/ws", wsHandler.ServeWS)
	content.NewHandler().Register(mux)

	server := &http.Server{
		Addr:         ":" + finalPort,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go func() {
		log.Printf("starting arcade service on :%s", finalPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("failed to start server: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-stop:
		log.Println("shutting down server...")
	case <-ctx.Done():
		log.Println("context canceled, shutting down server...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
