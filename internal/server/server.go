package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"NewsBridge/internal/config"
	"NewsBridge/internal/domain"
	"NewsBridge/internal/usecase"
)

// Server exposes the scrape trigger over HTTP. Runs stay sequential: the
// pipeline itself paces requests, the server only starts them.
type Server struct {
	runner *usecase.Runner
	secret string
	addr   string
	logger *slog.Logger
	engine *gin.Engine
}

// New builds the HTTP surface around the runner.
func New(runner *usecase.Runner, cfg config.ServerConfig, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())

	s := &Server{
		runner: runner,
		secret: cfg.SecretKey,
		addr:   cfg.Addr,
		logger: logger,
		engine: engine,
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.engine.GET("/healthz", s.health)

	api := s.engine.Group("/api/v1", s.authorize)
	api.POST("/scrape", s.scrape)
	api.GET("/preview", s.preview)
}

// Handler returns the underlying router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()
	s.logger.Info("http server listening", "addr", s.addr)

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// authorize checks the bearer secret. No configured secret means the
// endpoints are open, which matches local development.
func (s *Server) authorize(c *gin.Context) {
	if s.secret == "" {
		c.Next()
		return
	}
	header := c.GetHeader("Authorization")
	if header != "Bearer "+s.secret {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	c.Next()
}

type scrapeRequest struct {
	WPURL         string `json:"wp_url"`
	WPUsername    string `json:"wp_username"`
	WPAppPassword string `json:"wp_app_password"`
	PostStatus    string `json:"post_status"`
}

func (r scrapeRequest) empty() bool {
	return r.WPURL == "" && r.WPUsername == "" && r.WPAppPassword == ""
}

func (r scrapeRequest) complete() bool {
	return r.WPURL != "" && r.WPUsername != "" && r.WPAppPassword != ""
}

func (s *Server) scrape(c *gin.Context) {
	var req scrapeRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON body"})
			return
		}
	}

	// Credential overrides are all-or-nothing.
	if !req.empty() && !req.complete() {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "wp_url, wp_username and wp_app_password must be provided together",
		})
		return
	}

	creds := domain.Credentials{
		BaseURL:     req.WPURL,
		Username:    req.WPUsername,
		AppPassword: req.WPAppPassword,
		PostStatus:  req.PostStatus,
	}

	s.logger.Info("scrape run triggered", "sources", len(s.runner.Sources()))
	summaries := s.runner.RunAll(c.Request.Context(), creds)
	c.JSON(http.StatusOK, gin.H{"results": summaries})
}

func (s *Server) preview(c *gin.Context) {
	site := strings.TrimSpace(c.Query("site"))

	results, err := s.runner.PreviewAll(c.Request.Context(), site)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"preview": results, "total_sites": len(results)})
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
