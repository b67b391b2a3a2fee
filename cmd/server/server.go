package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/arcforge/codex-api/internal/handlers/httpapi"
	"github.com/arcforge/codex-api/internal/orchestrators/builder"
	"github.com/arcforge/codex-api/internal/orchestrators/check"
	"github.com/arcforge/codex-api/internal/orchestrators/sheet"
	"github.com/arcforge/codex-api/internal/pkg/clock"
	"github.com/arcforge/codex-api/internal/pkg/idgen"
	"github.com/arcforge/codex-api/internal/redis"
	"github.com/arcforge/codex-api/internal/repositories/character"
	"github.com/arcforge/codex-api/internal/repositories/codex"
	"github.com/arcforge/codex-api/internal/repositories/library"
	"github.com/arcforge/codex-api/internal/repositories/rollsession"
)

var (
	httpPort  int
	redisAddr string
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the HTTP server",
	Long:  `Start the codex API HTTP server with all configured services.`,
	RunE:  runServer,
}

func init() {
	serverCmd.Flags().IntVar(&httpPort, "port", 8080, "HTTP server port")
	serverCmd.Flags().StringVar(&redisAddr, "redis-addr", envOr("REDIS_ADDR", "localhost:6379"), "Redis address")
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func runServer(cmd *cobra.Command, args []string) error {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		slog.Info("received shutdown signal, gracefully stopping")
		cancel()
	}()

	handler, err := buildHandler()
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", httpPort),
		Handler:           handler.Routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		slog.Info("HTTP server starting", "port", httpPort, "redis_addr", redisAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("failed to serve: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info("shutting down HTTP server")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Warn("graceful shutdown timeout exceeded, forcing stop", "error", err)
			return srv.Close()
		}
		slog.Info("server stopped gracefully")
		return nil
	case err := <-errChan:
		return err
	}
}

func buildHandler() (*httpapi.Handler, error) {
	redisClient, err := redis.NewClient(redisAddr, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create redis client: %w", err)
	}

	characterRepo, err := character.NewRedis(&character.RedisConfig{Client: redisClient})
	if err != nil {
		return nil, fmt.Errorf("failed to create character repository: %w", err)
	}

	libraryRepo, err := library.NewRedis(&library.RedisConfig{Client: redisClient})
	if err != nil {
		return nil, fmt.Errorf("failed to create library repository: %w", err)
	}

	codexRepo, err := codex.NewRedis(&codex.RedisConfig{Client: redisClient})
	if err != nil {
		return nil, fmt.Errorf("failed to create codex repository: %w", err)
	}

	rollSessionRepo, err := rollsession.NewRedisRepository(&rollsession.Config{
		Client: redisClient,
		Clock:  clock.New(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create roll session repository: %w", err)
	}

	sheetService, err := sheet.NewOrchestrator(&sheet.Config{
		CharacterRepo: characterRepo,
		LibraryRepo:   libraryRepo,
		CodexRepo:     codexRepo,
		IDGenerator:   idgen.NewUUID("char"),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create sheet orchestrator: %w", err)
	}

	builderService, err := builder.NewOrchestrator(&builder.Config{
		LibraryRepo: libraryRepo,
		CodexRepo:   codexRepo,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create builder orchestrator: %w", err)
	}

	checkService, err := check.NewOrchestrator(&check.Config{
		CharacterRepo:   characterRepo,
		RollSessionRepo: rollSessionRepo,
		IDGenerator:     idgen.NewUUID("roll"),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create check orchestrator: %w", err)
	}

	return httpapi.NewHandler(&httpapi.Config{
		SheetService:   sheetService,
		BuilderService: builderService,
		CheckService:   checkService,
	})
}
