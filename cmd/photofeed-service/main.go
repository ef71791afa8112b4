package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/pribylovaa/go-photo-feed/internal/config"
	"github.com/pribylovaa/go-photo-feed/internal/metrics"
	"github.com/pribylovaa/go-photo-feed/internal/service"
	"github.com/pribylovaa/go-photo-feed/internal/storage"
	"github.com/pribylovaa/go-photo-feed/internal/storage/postgres"
	feedhttp "github.com/pribylovaa/go-photo-feed/internal/transport/http"
	"github.com/pribylovaa/go-photo-feed/internal/tumblr"
	logctx "github.com/pribylovaa/go-photo-feed/pkg/log"
	"github.com/pribylovaa/go-photo-feed/pkg/redact"
)

// Константы для определения окружения.
const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

// pinger — хранилище, которое умеет проверять соединение (readiness).
type pinger interface {
	Ping(ctx context.Context) error
}

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "", "path to config file (overrides CONFIG_PATH env)")
	flag.Parse()

	cfg := config.MustLoad(configPath)

	log := setupLogger(cfg.Env)
	slog.SetDefault(log)
	log.Info("starting photofeed-service",
		slog.String("env", cfg.Env),
		slog.String("source", redact.URL(cfg.Tumblr.BaseURL)),
		slog.String("api_key", redact.APIKey(cfg.Tumblr.APIKey)),
		slog.String("offset_policy", cfg.Feed.OffsetPolicy),
	)

	rootCtx, rootCancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer rootCancel()
	rootCtx = logctx.Into(rootCtx, log)

	var store storage.Storage = storage.Nop{}
	if cfg.DB.URL != "" {
		dbCtx, dbCancel := context.WithTimeout(rootCtx, 10*time.Second)
		pg, err := postgres.New(dbCtx, cfg.DB.URL)
		dbCancel()
		if err != nil {
			log.Error("postgres_connect_failed", slog.String("err", err.Error()))
			rootCancel()
			os.Exit(1)
		}
		store = pg
		log.Info("postgres_connected")
	} else {
		log.Info("journal_disabled", slog.String("reason", "db.url is empty"))
	}
	defer store.Close()

	httpClient := &http.Client{Timeout: cfg.Timeouts.Fetch}
	source := tumblr.New(httpClient, cfg.Tumblr.BaseURL, cfg.Tumblr.APIKey, cfg.Tumblr.Limit)

	rec := metrics.New(nil)

	svc := service.New(source, store, rec, *cfg)
	log.Info("service_initialized")

	go func() {
		if err := svc.StartAutoRefresh(rootCtx); err != nil {
			log.Error("auto_refresh_failed", slog.String("err", err.Error()))
		}
	}()

	apiHandler := feedhttp.NewRouter(svc, feedhttp.Options{
		Logger:   log,
		Timeout:  cfg.Timeouts.Service,
		BasePath: "",
	})

	var ready int32 // 0 — not ready; 1 — ready

	mux := http.NewServeMux()
	mux.HandleFunc("/livez", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		if atomic.LoadInt32(&ready) != 1 {
			http.Error(w, "not ready", http.StatusServiceUnavailable)
			return
		}

		if p, ok := store.(pinger); ok {
			ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
			defer cancel()
			if err := p.Ping(ctx); err != nil {
				http.Error(w, "db not ready", http.StatusServiceUnavailable)
				return
			}
		}

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	mux.Handle("/metrics", promhttp.Handler())

	mux.Handle("/", apiHandler)

	httpAddr := cfg.HTTP.Addr()
	httpSrv := &http.Server{
		Addr:              httpAddr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ln, err := net.Listen("tcp", httpAddr)
	if err != nil {
		log.Error("http_listen_failed", slog.String("addr", httpAddr), slog.String("err", err.Error()))
		rootCancel()
		store.Close()
		os.Exit(1)
	}

	log.Info("http_listen_start", slog.String("addr", httpAddr))

	serveErrCh := make(chan error, 1)
	go func() {
		if err := httpSrv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErrCh <- err
		}
		close(serveErrCh)
	}()

	atomic.StoreInt32(&ready, 1)
	log.Info("service_ready")

	select {
	case <-rootCtx.Done():
		log.Info("shutdown_requested")
	case err := <-serveErrCh:
		if err != nil {
			log.Error("http_serve_failed", slog.String("err", err.Error()))
		}
	}

	atomic.StoreInt32(&ready, 0)
	rootCancel()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		log.Warn("http_shutdown_incomplete", slog.String("err", err.Error()))
	} else {
		log.Info("http_stopped")
	}

	log.Info("service_stopped")
}

// setupLogger настраивает slog по окружению.
func setupLogger(env string) *slog.Logger {
	switch env {
	case envLocal:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envDev:
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envProd:
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}
