package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	_ "github.com/danielgtaylor/huma/v2/formats/cbor"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/janisto/anima/internal/config"
	"github.com/janisto/anima/internal/http/routes"
	applog "github.com/janisto/anima/internal/platform/logging"
	appmiddleware "github.com/janisto/anima/internal/platform/middleware"
	"github.com/janisto/anima/internal/platform/respond"
)

// Version can be overridden at build time: -ldflags "-X main.Version=1.2.3"
var Version = "dev"

const docsPath = "/api-docs"

func main() {
	ctx := context.Background()
	if err := applog.Err(); err != nil {
		applog.LogError(ctx, "logger init error", err)
	}

	cfg, err := config.Load()
	if err != nil {
		exit(ctx, "invalid configuration", err)
	}

	sigCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(sigCtx, cfg, Version); err != nil {
		stop()
		exit(ctx, "server error", err, zap.String("addr", cfg.Addr()))
	}
	applog.LogInfo(ctx, "server exited")
	_ = applog.Sync()
}

// run binds cfg's address and serves until ctx is cancelled. Binding happens
// before serving so an occupied port fails at start.
func run(ctx context.Context, cfg config.Config, version string) error {
	ln, err := net.Listen("tcp", cfg.Addr())
	if err != nil {
		return fmt.Errorf("listen on %s: %w", cfg.Addr(), err)
	}
	applog.LogInfo(ctx, "server listening", zap.String("addr", ln.Addr().String()), zap.String("version", version))
	return serve(ctx, newServer(newRouter(version)), ln, cfg.ShutdownTimeout)
}

// newRouter assembles the middleware stack, the huma API and every route.
func newRouter(version string) http.Handler {
	router := chi.NewRouter()
	router.Use(
		appmiddleware.Security(docsPath),
		appmiddleware.Vary(),
		appmiddleware.CORS(),
		appmiddleware.RequestID(),
		// RealIP trusts X-Forwarded-For / X-Real-IP; deploy behind a trusted proxy only.
		chimiddleware.RealIP,
		chimiddleware.RequestSize(1<<20),
		chimiddleware.GetHead,
		applog.RequestLogger(),
		applog.AccessLogger(),
		respond.Recoverer(),
	)

	cfg := huma.DefaultConfig("Anima Prompt API", version)
	cfg.DocsPath = docsPath
	api := humachi.New(router, cfg)
	api.OpenAPI().OnAddOperation = append(api.OpenAPI().OnAddOperation, mirrorProblemAsCBOR)

	routes.Register(router, api, version)
	return router
}

// mirrorProblemAsCBOR documents the CBOR variant of every problem details response.
func mirrorProblemAsCBOR(_ *huma.OpenAPI, op *huma.Operation) {
	for _, resp := range op.Responses {
		if resp == nil || resp.Content == nil {
			continue
		}
		if mt, ok := resp.Content["application/problem+json"]; ok {
			resp.Content["application/problem+cbor"] = mt
		}
	}
}

func newServer(handler http.Handler) *http.Server {
	return &http.Server{
		Handler:           handler,
		ReadTimeout:       5 * time.Second,
		ReadHeaderTimeout: 2 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    64 << 10,
	}
}

// serve runs srv on ln until ctx is cancelled, then shuts down within timeout.
func serve(ctx context.Context, srv *http.Server, ln net.Listener, timeout time.Duration) error {
	serveErr := make(chan error, 1)
	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		return err
	case <-ctx.Done():
		applog.LogInfo(context.Background(), "shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-serveErr
}

func exit(ctx context.Context, msg string, err error, fields ...zap.Field) {
	applog.LogError(ctx, msg, err, fields...)
	_ = applog.Sync()
	os.Exit(1)
}
