package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"google.golang.org/api/option"

	"github.com/shinyyama/street-transform/internal/ai"
	"github.com/shinyyama/street-transform/internal/config"
	"github.com/shinyyama/street-transform/internal/handler"
	"github.com/shinyyama/street-transform/internal/knowledge"
	appmw "github.com/shinyyama/street-transform/internal/middleware"
	"github.com/shinyyama/street-transform/internal/preset"
	"github.com/shinyyama/street-transform/internal/server"
	"github.com/shinyyama/street-transform/internal/service"
	"github.com/shinyyama/street-transform/internal/storage"
)

func main() {
	_ = godotenv.Load()
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config load error: %v", err)
	}

	status := ai.Init(ctx, cfg)
	if client, err := status.Client(); err == nil {
		log.Printf("generative client ready backend=%v mode=%s", client.Backend(), cfg.TransformMode)
	} else {
		log.Printf("generative client unavailable, /api/transform will fail: %s", status.Reason())
	}
	defer func() {
		if err := status.Close(); err != nil {
			log.Printf("generative client close error: %v", err)
		}
	}()

	store, err := newStore(ctx, cfg, status)
	if err != nil {
		status.Close()
		log.Fatalf("storage init error: %v", err)
	}

	presets := preset.Default()
	svc := service.NewTransformService(presets, newKnowledge(cfg, status), status, store, cfg.TransformMode)

	var authMw *appmw.AuthMiddleware
	if cfg.AuthRequired {
		authMw, err = appmw.NewAuthMiddleware(ctx, cfg.FirebaseProjectID)
		if err != nil {
			status.Close()
			log.Fatalf("failed to init firebase auth: %v", err)
		}
	}

	srv := server.New(server.Deps{
		Config:    cfg,
		Transform: handler.NewTransformHandler(svc),
		Presets:   handler.NewPresetHandler(presets),
		Health:    handler.NewHealthHandler(status, cfg.TransformMode),
		Auth:      authMw,
	})

	addr := ":" + cfg.Port
	errCh := make(chan error, 1)
	go func() {
		log.Printf("starting server on %s mode=%s storage=%s presets=%d", addr, cfg.TransformMode, cfg.StorageBackend, len(presets.Listings()))
		errCh <- srv.Start(addr)
	}()

	sigCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("server stopped: %v", err)
		}
	case <-sigCtx.Done():
		log.Printf("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("server shutdown error: %v", err)
		}
	}
}

func newKnowledge(cfg *config.Config, status ai.Status) knowledge.Provider {
	if !cfg.KnowledgeEnabled {
		log.Printf("[knowledge] stage=disabled")
		return knowledge.Static("")
	}
	client, err := status.Client()
	if err != nil {
		return knowledge.Static("")
	}
	return knowledge.NewCache(knowledge.Options{
		Dir:        cfg.KnowledgeDir,
		Ingester:   client.Ingester(),
		Summarizer: client.Summarizer(),
		Poll: knowledge.PollPolicy{
			Interval:    cfg.KnowledgePollInterval,
			MaxAttempts: cfg.KnowledgePollMaxAttempts,
		},
	})
}

func newStore(ctx context.Context, cfg *config.Config, status ai.Status) (storage.Store, error) {
	if cfg.StorageBackend == config.StorageGCS {
		var opts []option.ClientOption
		if client, err := status.Client(); err == nil && client.CredentialsFile() != "" {
			opts = append(opts, option.WithCredentialsFile(client.CredentialsFile()))
		} else if cfg.CredentialsFile != "" {
			opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
		}
		return storage.NewGCSStore(ctx, cfg.StorageBucket, "transforms", opts...)
	}
	return storage.NewLocalStore(cfg.StaticDir, strings.TrimRight(cfg.PublicBaseURL, "/")+"/static")
}
