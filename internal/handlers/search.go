package handlers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/tanakh-search-api/internal/books"
	"github.com/tanakh-search-api/internal/models"
	"github.com/tanakh-search-api/internal/services"
)

// SearchHandler handles search endpoints
type SearchHandler struct {
	search   *services.SearchService
	catalog  *books.Catalog
	maxLimit int
}

// NewSearchHandler creates a new search handler. maxLimit caps the page
// size; it is also the default when a request sets no limit.
func NewSearchHandler(search *services.SearchService, catalog *books.Catalog, maxLimit int) *SearchHandler {
	if maxLimit <= 0 {
		maxLimit = 500
	}
	return &SearchHandler{
		search:   search,
		catalog:  catalog,
		maxLimit: maxLimit,
	}
}

// SearchGet handles GET /search?q=&mode=&strip_prefixes=&books=&limit=&offset=
func (h *SearchHandler) SearchGet(c echo.Context) error {
	var req models.SearchRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid query parameters")
	}
	if list := c.QueryParam("books"); list != "" {
		req.Books = strings.Split(list, ",")
	}
	return h.run(c, req)
}

// SearchPost handles POST /search with a JSON body
func (h *SearchHandler) SearchPost(c echo.Context) error {
	var req models.SearchRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	return h.run(c, req)
}

func (h *SearchHandler) run(c echo.Context, req models.SearchRequest) error {
	ctx := c.Request().Context()

	if strings.TrimSpace(req.Query) == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Query is required")
	}

	mode, err := models.ParseMode(req.Mode)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Mode must be exact or fuzzy")
	}

	filter := make([]string, 0, len(req.Books))
	for _, k := range req.Books {
		k = strings.TrimSpace(k)
		if k == "" {
			continue
		}
		if _, ok := h.catalog.ByKey(k); !ok {
			return echo.NewHTTPError(http.StatusBadRequest, "Unknown book: "+k)
		}
		filter = append(filter, k)
	}

	if req.Offset < 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "Offset must not be negative")
	}
	limit := req.Limit
	if limit <= 0 || limit > h.maxLimit {
		limit = h.maxLimit
	}

	results, err := h.search.SearchAllBooks(ctx, models.Query{
		Term:          req.Query,
		Mode:          mode,
		StripPrefixes: req.StripPrefixes,
		BookFilter:    filter,
	})
	if err != nil {
		c.Logger().Errorf("Search failed: %v", err)
		return echo.NewHTTPError(http.StatusServiceUnavailable, "Search index unavailable")
	}

	total := len(results)
	start := min(req.Offset, total)
	end := min(start+limit, total)

	return c.JSON(http.StatusOK, models.SearchResponse{
		Query:         req.Query,
		Mode:          mode,
		StripPrefixes: req.StripPrefixes,
		Total:         total,
		Offset:        req.Offset,
		Results:       results[start:end],
	})
}

// RegisterRoutes registers search routes
func (h *SearchHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/search", h.SearchGet)
	g.POST("/search", h.SearchPost)
}
