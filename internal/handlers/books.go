package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/tanakh-search-api/internal/books"
	"github.com/tanakh-search-api/internal/hebrew"
	"github.com/tanakh-search-api/internal/models"
	"github.com/tanakh-search-api/internal/repository"
)

// BooksHandler handles book catalog, chapter and reference endpoints
type BooksHandler struct {
	catalog  *books.Catalog
	chapters repository.ChapterRepository
}

// NewBooksHandler creates a new books handler
func NewBooksHandler(catalog *books.Catalog, chapters repository.ChapterRepository) *BooksHandler {
	return &BooksHandler{
		catalog:  catalog,
		chapters: chapters,
	}
}

// ListBooks handles GET /books
func (h *BooksHandler) ListBooks(c echo.Context) error {
	return c.JSON(http.StatusOK, h.catalog.Index())
}

// GetChapter handles GET /books/:key/chapters/:chapter. Maqaf is shown as a
// space unless keep_maqaf=true.
func (h *BooksHandler) GetChapter(c echo.Context) error {
	book, ok := h.catalog.ByKey(c.Param("key"))
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "Book not found")
	}

	n, err := strconv.Atoi(c.Param("chapter"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Chapter must be a number")
	}
	if n < 1 || n > book.Chapters {
		return echo.NewHTTPError(http.StatusNotFound, "Chapter not found")
	}

	keepMaqaf, _ := strconv.ParseBool(c.QueryParam("keep_maqaf"))

	chapter, err := h.chapters.GetChapter(c.Request().Context(), book.Key, n)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Chapter not found")
		}
		c.Logger().Errorf("Load chapter %s %d: %v", book.Key, n, err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to load chapter")
	}

	out := models.Chapter{
		Book:       book.English,
		BookHebrew: book.Hebrew,
		Chapter:    n,
		Verses:     make([]models.ChapterVerse, len(chapter.Verses)),
	}
	for i, v := range chapter.Verses {
		if !keepMaqaf {
			v.Hebrew = hebrew.ReplaceMaqaf(v.Hebrew)
		}
		out.Verses[i] = v
	}
	return c.JSON(http.StatusOK, out)
}

// ParseReference handles GET /reference?q=Genesis 1:1
func (h *BooksHandler) ParseReference(c echo.Context) error {
	q := c.QueryParam("q")
	if q == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Reference is required")
	}

	ref, ok := h.catalog.ParseReference(q)
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "Reference not recognised")
	}
	return c.JSON(http.StatusOK, ref)
}

// RegisterRoutes registers book routes
func (h *BooksHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/books", h.ListBooks)
	g.GET("/books/:key/chapters/:chapter", h.GetChapter)
	g.GET("/reference", h.ParseReference)
}
