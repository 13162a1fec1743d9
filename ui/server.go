// Package ui is the gin HTTP surface of the tracker: the JSON API plus
// static file serving for the operator front end.
package ui

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"ajltrack/app"
	"ajltrack/internal/config"
)

// Server wraps the gin engine and the application service.
type Server struct {
	router  *gin.Engine
	service *app.Service
}

// NewServer creates the HTTP server and registers all routes.
func NewServer(cfg *config.Config, service *app.Service) *Server {
	if cfg.Server.GinMode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	s := &Server{
		router:  gin.Default(),
		service: service,
	}

	s.setupMiddleware()
	s.setupRoutes(cfg.Server.StaticDir)

	return s
}

func (s *Server) setupMiddleware() {
	s.router.Use(corsMiddleware())
	s.router.Use(requestIDMiddleware())
}

func (s *Server) setupRoutes(staticDir string) {
	api := s.router.Group("/api")
	{
		api.GET("/health", s.handleHealth)
		api.GET("/meta", s.handleMeta)
		api.POST("/login", s.handleLogin)
		api.POST("/search", s.handleSearch)
		api.POST("/update-status", s.handleUpdateStatus)
		api.GET("/status-summary", s.handleStatusSummary)
	}

	if staticDir != "" {
		s.router.NoRoute(staticHandler(staticDir))
	}
}

// staticHandler serves files from dir with an index.html fallback for
// client-side routes. API paths never fall through to it.
func staticHandler(dir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api/") {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}

		path := filepath.Join(dir, filepath.Clean("/"+c.Request.URL.Path))
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			c.File(path)
			return
		}

		index := filepath.Join(dir, "index.html")
		if _, err := os.Stat(index); err == nil {
			c.File(index)
			return
		}
		c.Status(http.StatusNotFound)
	}
}

// Run starts the server on the given address.
func (s *Server) Run(addr string) error {
	return s.router.Run(addr)
}

// Router exposes the gin engine (used by tests).
func (s *Server) Router() *gin.Engine {
	return s.router
}
