// Package api provides the HTTP API server for the local collection daemon.
// This server exposes the preference ingestion pipeline via REST endpoints,
// allowing annotation tools and the CLI to submit comparisons and query
// pipeline state without talking to the remote store directly.
package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/zuup-ai/zuup-collect/internal/api/handlers"
	"github.com/zuup-ai/zuup-collect/internal/logging"
	"github.com/zuup-ai/zuup-collect/internal/netutil"
	"github.com/zuup-ai/zuup-collect/internal/version"
)

// Represents the collection API server
type Server struct {
	collector    handlers.Pipeline
	generator    handlers.PairGenerator
	httpServer   *http.Server
	bindAddr     string
	bindPort     int
	apiKey       string
	instanceName string
}

// NewServer creates a new collection API server instance
func NewServer(config *Config) *Server {
	// Set Gin to release mode for production
	gin.SetMode(gin.ReleaseMode)

	return &Server{
		collector:    config.Collector,
		generator:    config.Generator,
		bindAddr:     config.BindAddr,
		bindPort:     config.BindPort,
		apiKey:       config.APIKey,
		instanceName: config.InstanceName,
	}
}

// Start starts the collection API server
func (s *Server) Start() error {
	logging.Info("Starting HTTP API server on %s:%d", s.bindAddr, s.bindPort)

	// Create Gin router
	router := gin.New()

	// Configure Gin logging only if not already configured by CLI tools
	if !logging.IsConfiguredByCLI() {
		gin.DefaultWriter = logging.NewLevelWriter("INFO", "gin")
		gin.DefaultErrorWriter = logging.NewLevelWriter("ERROR", "gin")
	}

	// Add middleware
	router.Use(s.loggingMiddleware())
	router.Use(s.corsMiddleware())
	router.Use(gin.Recovery())

	// Setup routes
	s.setupRoutes(router)

	// Create HTTP server
	s.httpServer = &http.Server{
		Addr:    fmt.Sprintf("%s:%d", s.bindAddr, s.bindPort),
		Handler: router,
		// Timeouts for production
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Pre-bind the listener so the port is reserved before the server
	// goroutine starts, eliminating test-and-close race windows
	listener, err := netutil.NewPortBinder().BindTCP(s.bindAddr, s.bindPort)
	if err != nil {
		var addrInUse *netutil.AddressInUseError
		if errors.As(err, &addrInUse) {
			return fmt.Errorf("failed to start API server: %w (is another daemon running?)", err)
		}
		return fmt.Errorf("failed to bind to %s: %w", s.httpServer.Addr, err)
	}

	// Start server on the pre-bound listener
	go func() {
		if err := s.httpServer.Serve(listener); err != nil && err != http.ErrServerClosed {
			logging.Error("HTTP server failed: %v", err)
		}
	}()

	logging.Success("HTTP API server started successfully")
	return nil
}

// Shutdown gracefully shuts down the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	logging.Info("Shutting down HTTP API server...")

	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}

	return nil
}

// Track server start time for uptime calculation
var startTime = time.Now()

// handleHealth delegates to handlers.HandleHealth
func (s *Server) handleHealth(c *gin.Context) {
	handlers.HandleHealth(version.ZuupdVersion, startTime, s.collector)(c)
}

// handleSubmit delegates to handlers.HandleSubmit
func (s *Server) handleSubmit(c *gin.Context) {
	handlers.HandleSubmit(s.collector)(c)
}

// handleFlush delegates to handlers.HandleFlush
func (s *Server) handleFlush(c *gin.Context) {
	handlers.HandleFlush(s.collector)(c)
}

// handleStats delegates to handlers.HandleStats
func (s *Server) handleStats(c *gin.Context) {
	handlers.HandleStats(s.collector)(c)
}

// handleDomains delegates to handlers.HandleDomains
func (s *Server) handleDomains(c *gin.Context) {
	handlers.HandleDomains()(c)
}

// handleDomainByID delegates to handlers.HandleDomainByID
func (s *Server) handleDomainByID(c *gin.Context) {
	handlers.HandleDomainByID()(c)
}

// handleDomainPrompts delegates to handlers.HandleDomainPrompts
func (s *Server) handleDomainPrompts(c *gin.Context) {
	handlers.HandleDomainPrompts()(c)
}

// handleGeneratePair delegates to handlers.HandleGeneratePair
func (s *Server) handleGeneratePair(c *gin.Context) {
	handlers.HandleGeneratePair(s.generator)(c)
}

// handleRuntime delegates to handlers.HandleRuntime
func (s *Server) handleRuntime(c *gin.Context) {
	handlers.HandleRuntime(s.instanceName, startTime)(c)
}
