package webserver

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/KotFed0t/crypto_dashboard/config"
)

type WebServer struct {
	srv             *http.Server
	shutdownTimeout time.Duration
}

func New(cfg *config.Config, handler http.Handler) *WebServer {
	return &WebServer{
		srv: &http.Server{
			Addr:              cfg.HTTP.Addr,
			Handler:           handler,
			ReadHeaderTimeout: 10 * time.Second,
		},
		shutdownTimeout: cfg.HTTP.ShutdownTimeout,
	}
}

func (s *WebServer) Start() {
	go func() {
		err := s.srv.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("web server stopped with error", slog.String("err", err.Error()))
		}
	}()
	slog.Info("web server started!", slog.String("addr", s.srv.Addr))
}

func (s *WebServer) Stop() {
	slog.Info("start stopping web server")

	ctx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	if err := s.srv.Shutdown(ctx); err != nil {
		slog.Error("web server shutdown error", slog.String("err", err.Error()))
	}
	slog.Info("web server stopped")
}
