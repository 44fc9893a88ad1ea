package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/AlexXia007/comfyui-nodes/internal/config"
	"github.com/AlexXia007/comfyui-nodes/internal/fetch"
	"github.com/AlexXia007/comfyui-nodes/internal/graph"
	"github.com/AlexXia007/comfyui-nodes/internal/handler/api"
	"github.com/AlexXia007/comfyui-nodes/internal/logger"
	cMiddleware "github.com/AlexXia007/comfyui-nodes/internal/middleware"
	"github.com/AlexXia007/comfyui-nodes/internal/node"
	"github.com/AlexXia007/comfyui-nodes/internal/storage"
	"github.com/AlexXia007/comfyui-nodes/internal/usecase/match"
	"github.com/AlexXia007/comfyui-nodes/internal/usecase/upload"
	"github.com/AlexXia007/comfyui-nodes/internal/usecase/validate"
	"github.com/AlexXia007/comfyui-nodes/internal/uuid"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		logger.Errorf(ctx, "❌  Configuration error: %v", err)
		os.Exit(1)
	}

	logger.Init()

	reg := initRegistry(ctx, cfg)

	r := initRouter(ctx, cfg.JWTPublicKey)

	r.Get("/nodes", api.ListNodesHandler(reg))
	r.With(cMiddleware.WithNode(reg)).
		Post("/nodes/{id}/run", api.RunNodeHandler())

	listenRouter(ctx, r, cfg)
}

func initRegistry(ctx context.Context, cfg *config.Settings) *graph.Registry {
	logger.Info(ctx, "initialising node registry...")

	uploaderSvc := upload.NewUploader(storage.New, uuid.NewUUID)
	validatorSvc := validate.NewInputValidator(fetch.NewHTTPFetcher(cfg.FetchTimeout, cfg.FetchMaxBytes))
	matcherSvc := match.NewErrorMatcher()

	reg := graph.NewRegistry()
	reg.MustRegister(node.NewUpload(uploaderSvc))
	reg.MustRegister(node.NewValidator(validatorSvc))
	reg.MustRegister(node.NewMatcher(matcherSvc))

	return reg
}

func initRouter(ctx context.Context, jwtKey string) *chi.Mux {
	logger.Info(ctx, "initialising router...")

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		MaxAge:         300,
	}))
	r.Use(cMiddleware.WithHostAuth(jwtKey))

	r.NotFound(api.NotFoundHandler())
	r.MethodNotAllowed(api.MethodNotAllowedHandler())

	return r
}

func listenRouter(ctx context.Context, r *chi.Mux, cfg *config.Settings) {
	srv := &http.Server{Addr: ":" + strconv.Itoa(cfg.ServerPort), Handler: r}

	// start serving
	go func() {
		logger.Infof(ctx, "🚀 Node host listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			logger.Errorf(ctx, "❌  Listen error: %v", err)
			os.Exit(1)
		}
	}()

	// block until we get SIGINT/SIGTERM
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info(ctx, "🛑 Shutdown signal received, exiting…")

	// graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf(ctx, "❌  Server shutdown failed: %v", err)
		os.Exit(1)
	}
	logger.Info(ctx, "✅  Server gracefully stopped")
}
