// Package server wires the tool provider into an HTTP surface.
package server

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/MohamedElashri/ostap/internal/config"
	"github.com/MohamedElashri/ostap/internal/logging"
	"github.com/MohamedElashri/ostap/internal/monitoring"
	mathprovider "github.com/MohamedElashri/ostap/internal/providers/math"
	"github.com/MohamedElashri/ostap/internal/types"
)

// Server wraps the HTTP server and dependencies
type Server struct {
	router   *gin.Engine
	log      *logging.Logger
	metrics  *monitoring.Metrics
	provider *mathprovider.Provider
	http     *http.Server
}

// New creates a server over the given configuration.
func New(cfg *config.Config, log *logging.Logger, metrics *monitoring.Metrics) *Server {
	if !cfg.Logging.Development {
		gin.SetMode(gin.ReleaseMode)
	}

	s := &Server{
		router:   gin.New(),
		log:      log,
		metrics:  metrics,
		provider: mathprovider.NewProvider(),
	}

	s.router.Use(gin.Recovery())
	s.router.Use(s.observe())

	s.router.GET("/health", s.health)
	s.router.GET("/tools", s.listTools)
	s.router.POST("/tools/:id", s.executeTool)
	s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	s.http = &http.Server{
		Addr:    cfg.Server.Host + ":" + cfg.Server.Port,
		Handler: s.router,
	}
	return s
}

// Run starts the server and blocks until it stops.
func (s *Server) Run() error {
	s.log.Info("starting server", zap.String("addr", s.http.Addr))
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests and stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}

// Handler exposes the underlying router, mainly for tests.
func (s *Server) Handler() http.Handler { return s.router }

// observe records request metrics and access logs.
func (s *Server) observe() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		elapsed := time.Since(start)

		status := strconv.Itoa(c.Writer.Status())
		s.metrics.RecordRequest(c.Request.Method, c.FullPath(), status, elapsed)
		s.metrics.UpdateUptime()

		s.log.Debug("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("elapsed", elapsed),
		)
	}
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": s.provider.Definition().ID,
	})
}

func (s *Server) listTools(c *gin.Context) {
	c.JSON(http.StatusOK, s.provider.Definition())
}

// toolRequest is the execution payload: one parameter map per call.
type toolRequest struct {
	Params map[string]interface{} `json:"params"`
}

func (s *Server) executeTool(c *gin.Context) {
	toolID := c.Param("id")

	var req toolRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if req.Params == nil {
		req.Params = map[string]interface{}{}
	}

	start := time.Now()
	result, err := s.provider.Execute(c.Request.Context(), toolID, req.Params, &types.Context{})
	if err != nil {
		s.metrics.RecordToolCall(toolID, false, time.Since(start))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	s.metrics.RecordToolCall(toolID, result.Success, time.Since(start))

	if !result.Success {
		c.JSON(http.StatusUnprocessableEntity, result)
		return
	}
	c.JSON(http.StatusOK, result)
}
