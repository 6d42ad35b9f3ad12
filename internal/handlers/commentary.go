package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/tanakh-search-api/internal/books"
	"github.com/tanakh-search-api/internal/models"
	"github.com/tanakh-search-api/internal/services"
)

// CommentaryHandler handles commentary endpoints
type CommentaryHandler struct {
	catalog    *books.Catalog
	commentary *services.CommentaryService
}

// NewCommentaryHandler creates a new commentary handler
func NewCommentaryHandler(catalog *books.Catalog, commentary *services.CommentaryService) *CommentaryHandler {
	return &CommentaryHandler{
		catalog:    catalog,
		commentary: commentary,
	}
}

// GetCommentary handles GET /commentary/:book/:chapter/:verse. The book may
// be given by key, English name or Hebrew name.
func (h *CommentaryHandler) GetCommentary(c echo.Context) error {
	book, ok := h.catalog.ByName(c.Param("book"))
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "Book not found")
	}

	chapter, err := strconv.Atoi(c.Param("chapter"))
	if err != nil || chapter < 1 {
		return echo.NewHTTPError(http.StatusBadRequest, "Chapter must be a positive number")
	}
	verse, err := strconv.Atoi(c.Param("verse"))
	if err != nil || verse < 1 {
		return echo.NewHTTPError(http.StatusBadRequest, "Verse must be a positive number")
	}
	if chapter > book.Chapters {
		return echo.NewHTTPError(http.StatusNotFound, "Chapter not found")
	}

	commentaries, err := h.commentary.GetCommentaries(c.Request().Context(), book.English, chapter, verse)
	if err != nil {
		if errors.Is(err, services.ErrCommentaryUnavailable) {
			return echo.NewHTTPError(http.StatusBadGateway, "Commentary service unavailable")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to load commentary: "+err.Error())
	}

	return c.JSON(http.StatusOK, models.CommentaryResponse{
		BookKey:      book.Key,
		Chapter:      chapter,
		Verse:        verse,
		Commentaries: commentaries,
	})
}

// RegisterRoutes registers commentary routes
func (h *CommentaryHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/commentary/:book/:chapter/:verse", h.GetCommentary)
}
