// Package api exposes fetched classroom data as a JSON API for the web
// dashboard.
package api

import (
	"github.com/gin-gonic/gin"

	"classroom-sync/internal/cache"
	"classroom-sync/internal/domain"
	"classroom-sync/internal/providers"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

type Server struct {
	provider providers.WorkProvider
	cache    *cache.Cache
	policies []domain.GradingPolicy
}

func NewServer(provider providers.WorkProvider, c *cache.Cache, policies []domain.GradingPolicy) *Server {
	return &Server{
		provider: provider,
		cache:    c,
		policies: policies,
	}
}

// Routes builds the gin engine with all endpoints registered. CORS is the
// caller's concern: cmd/serve wraps the returned handler.
func (s *Server) Routes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
			"source": s.provider.Name(),
		})
	})

	api := router.Group("/api")
	{
		api.GET("/courses", s.getCourses)
		api.GET("/courses/:id/works", s.getWorks)
		api.GET("/courses/:id/grades", s.getGrades)
		api.GET("/courses/:id/teachers", s.getTeachers)
		api.GET("/reminder", s.getReminder)

		api.POST("/cache/invalidate", s.invalidateCache)
	}
	return router
}
