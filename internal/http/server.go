package http

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/metric"

	adminHTTP "github.com/safework/safework/internal/admin/http"
	authHTTP "github.com/safework/safework/internal/auth/http"
	"github.com/safework/safework/internal/metrics"
	reportHTTP "github.com/safework/safework/internal/report/http"
)

// RouterConfig holds the dependencies needed to assemble the API router.
type RouterConfig struct {
	Logger         *slog.Logger
	SessionHandler *authHTTP.SessionHandler
	ReportHandler  *reportHTTP.ReportHandler
	AdminHandler   *adminHTTP.AdminHandler
	AccessVerifier authHTTP.AccessVerifier

	// MeterProvider enables HTTP request metrics when non-nil.
	MeterProvider    metric.MeterProvider
	MetricsNamespace string

	// Rate limiting for the unauthenticated auth endpoints.
	RateLimitEnabled bool
	RateLimitRPS     float64
	RateLimitBurst   int

	CORSEnabled      bool
	CORSAllowOrigins string
}

// NewRouter builds the Gin engine with all routes and middleware.
//
// Route groups:
//   - /auth: signup, login, auto-refresh, logout (no authentication, IP rate limited)
//   - /api: report endpoints (requires a valid access token)
//   - /api/admin: user administration and forced report deletion (admin role)
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestid.New())
	router.Use(CustomLoggerMiddleware(cfg.Logger))

	if corsMiddleware := createCORSMiddleware(cfg.CORSEnabled, cfg.CORSAllowOrigins, cfg.Logger); corsMiddleware != nil {
		router.Use(corsMiddleware)
	}

	if cfg.MeterProvider != nil {
		router.Use(metrics.HTTPMetricsMiddleware(cfg.MeterProvider, cfg.MetricsNamespace))
	}

	router.GET("/health", HealthHandler)

	auth := router.Group("/auth")
	if cfg.RateLimitEnabled {
		auth.Use(authHTTP.RateLimitMiddleware(cfg.RateLimitRPS, cfg.RateLimitBurst, cfg.Logger))
	}
	auth.POST("/signup", cfg.SessionHandler.SignupHandler)
	auth.POST("/login", cfg.SessionHandler.LoginHandler)
	auth.POST("/auto-refresh", cfg.SessionHandler.RefreshHandler)
	auth.POST("/logout", cfg.SessionHandler.LogoutHandler)

	api := router.Group("/api")
	api.Use(authHTTP.AuthenticationMiddleware(cfg.AccessVerifier, cfg.Logger))

	reports := api.Group("/reports")
	reports.GET("", cfg.ReportHandler.ListReportsHandler)
	reports.POST("", cfg.ReportHandler.CreateReportHandler)
	reports.GET("/:id", cfg.ReportHandler.GetReportHandler)
	reports.PUT("/:id", cfg.ReportHandler.UpdateReportHandler)
	reports.DELETE("/:id", cfg.ReportHandler.DeleteReportHandler)

	admin := api.Group("/admin")
	admin.Use(authHTTP.AdminMiddleware(cfg.Logger))
	admin.GET("/users", cfg.AdminHandler.ListUsersHandler)
	admin.GET("/users/:id", cfg.AdminHandler.GetUserHandler)
	admin.PUT("/users/:id/permission", cfg.AdminHandler.UpdatePermissionHandler)
	admin.DELETE("/users/:id", cfg.AdminHandler.DeleteUserHandler)
	admin.DELETE("/reports/:id", cfg.ReportHandler.AdminDeleteReportHandler)

	return router
}

// Server represents the API HTTP server.
type Server struct {
	server *http.Server
	logger *slog.Logger
}

// NewServer creates a new API HTTP server with the given router.
func NewServer(host string, port int, router *gin.Engine, logger *slog.Logger) *Server {
	return &Server{
		logger: logger,
		server: &http.Server{
			Addr:         fmt.Sprintf("%s:%d", host, port),
			Handler:      router,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
	}
}

// GetHandler returns the http.Handler for testing purposes.
func (s *Server) GetHandler() http.Handler {
	return s.server.Handler
}

// Start starts the HTTP server.
func (s *Server) Start(ctx context.Context) error {
	s.logger.Info("starting http server", slog.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down http server")
	return s.server.Shutdown(ctx)
}
