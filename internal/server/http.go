package server

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kolsense/kolsense/internal/conf"
	"github.com/kolsense/kolsense/internal/mcp"
	"github.com/kolsense/kolsense/internal/pkg/logger"
	"go.uber.org/zap"
)

// Version is reported by the health and ping endpoints
const Version = "1.0.0"

type HTTPServer struct {
	server *http.Server
	logger *logger.Logger
}

// NewHTTPServer wires the gin router around the action dispatcher.
// providerReady reports whether a Masa client was configured; the health
// endpoint exposes it so deployments catch a missing API key early.
func NewHTTPServer(
	config *conf.Config,
	log *logger.Logger,
	actions *mcp.Router,
	providerReady bool,
) *HTTPServer {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(LoggerMiddleware(log))

	// Health stays unthrottled so orchestrator probes never trip the limiter.
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":          "healthy",
			"version":         Version,
			"masa_api_client": providerReady,
		})
	})

	api := router.Group("/api/mcp")
	api.Use(RateLimitMiddleware(config.Server.RateLimitPerMinute))
	api.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "MCP server is running",
			"version": Version,
		})
	})
	api.POST("/query", queryHandler(actions))

	addr := fmt.Sprintf("%s:%d", config.Server.Host, config.Server.Port)

	return &HTTPServer{
		server: &http.Server{
			Addr:    addr,
			Handler: router,
		},
		logger: log,
	}
}

// queryHandler decodes one action request and maps the dispatch outcome to
// a status: protocol errors are 400, everything routed is 200 even when the
// action itself failed.
func queryHandler(actions *mcp.Router) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req mcp.Request
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Request body must be JSON",
			})
			return
		}

		resp := actions.Dispatch(c.Request.Context(), req)
		if resp.Error != nil {
			c.JSON(http.StatusBadRequest, resp)
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}

// Handler exposes the configured router, mainly for tests
func (s *HTTPServer) Handler() http.Handler {
	return s.server.Handler
}

func (s *HTTPServer) Start() error {
	s.logger.Info("starting HTTP server", zap.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}

	return nil
}

func (s *HTTPServer) Stop(ctx context.Context) error {
	s.logger.Info("stopping HTTP server")
	return s.server.Shutdown(ctx)
}
