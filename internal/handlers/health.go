package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tanakh-search-api/internal/index"
	"github.com/tanakh-search-api/pkg/schema/db"
)

// HealthHandler handles health check endpoints
type HealthHandler struct {
	index *index.Cache
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(idx *index.Cache) *HealthHandler {
	return &HealthHandler{index: idx}
}

// HealthResponse is the response for basic health check
type HealthResponse struct {
	Status string `json:"status"`
}

// DatabaseHealthResponse is the response for database health check
type DatabaseHealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}

// IndexHealthResponse is the response for search index health check
type IndexHealthResponse struct {
	Status string `json:"status"`
	Verses int    `json:"verses"`
}

// Health handles GET /health
func (h *HealthHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, HealthResponse{
		Status: "healthy",
	})
}

// DatabaseHealth handles GET /health/database
func (h *HealthHandler) DatabaseHealth(c echo.Context) error {
	if !db.DatabaseEnabled() {
		return c.JSON(http.StatusServiceUnavailable, map[string]string{
			"status": "not_configured",
			"error":  "Database is not configured",
		})
	}

	conn := db.GetDatabase()
	if conn == nil {
		return c.JSON(http.StatusServiceUnavailable, map[string]string{
			"status": "error",
			"error":  "Database connection not available",
		})
	}

	if err := conn.PingContext(c.Request().Context()); err != nil {
		return c.JSON(http.StatusServiceUnavailable, map[string]string{
			"status": "error",
			"error":  err.Error(),
		})
	}

	return c.JSON(http.StatusOK, DatabaseHealthResponse{
		Status:   "connected",
		Database: db.Driver(),
	})
}

// IndexHealth handles GET /health/index
func (h *HealthHandler) IndexHealth(c echo.Context) error {
	if h.index == nil || !h.index.Loaded() {
		return c.JSON(http.StatusServiceUnavailable, IndexHealthResponse{
			Status: "not_loaded",
		})
	}
	return c.JSON(http.StatusOK, IndexHealthResponse{
		Status: "loaded",
		Verses: h.index.Len(),
	})
}

// RegisterRoutes registers health check routes
func (h *HealthHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/health", h.Health)
	g.GET("/health/database", h.DatabaseHealth)
	g.GET("/health/index", h.IndexHealth)
}
