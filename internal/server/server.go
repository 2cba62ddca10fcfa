package server

import (
	"context"
	"errors"
	"html/template"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sandeepkv93/noozes/internal/config"
	"github.com/sandeepkv93/noozes/internal/model"
)

const shutdownTimeout = 5 * time.Second

// Server exposes the calculator over HTTP. It keeps no per-request state, so
// one instance serves any number of concurrent requests.
type Server struct {
	calc     *model.Calculator
	logger   *slog.Logger
	format   model.ClockFormat
	defMode  model.Mode
	defTime  string
	shareURL string
	version  string
	router   *gin.Engine
}

func New(cfg config.RuntimeConfig, calc *model.Calculator, logger *slog.Logger, version string) *Server {
	if calc == nil {
		calc = model.NewCalculator(nil)
	}
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{
		calc:     calc,
		logger:   logger,
		format:   cfg.Clock(),
		defMode:  cfg.Mode(),
		defTime:  cfg.DefaultTime,
		shareURL: cfg.ShareURL,
		version:  version,
	}
	s.router = s.routes()
	return s
}

func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) routes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(s.logger))
	router.SetHTMLTemplate(template.Must(template.New("page").Parse(pageHTML)))

	router.GET("/", s.handlePage)
	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api")
	api.GET("/calculate", s.handleCalculateQuery)
	api.POST("/calculate", s.handleCalculateBody)
	api.POST("/calculate-from-now", s.handleFixedMode(model.ModeNow))
	api.POST("/calculate-wake-up", s.handleFixedMode(model.ModeBedtime))
	// Bedtimes for a wake-up target: four results, six cycles down to three,
	// and the target rolls to tomorrow once it has passed.
	api.POST("/calculate-bedtime", s.handleFixedMode(model.ModeWakeup))
	return router
}

// Run serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("http server listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		s.logger.Info("http server shutting down")
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return nil
	}
}

func requestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		status := c.Writer.Status()
		attrs := []any{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", status,
			"latency", time.Since(start),
			"remote_addr", c.ClientIP(),
		}
		if status >= http.StatusInternalServerError {
			logger.Error("request failed", attrs...)
			return
		}
		logger.Debug("request served", attrs...)
	}
}
