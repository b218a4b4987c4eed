package handler

import (
	"errors"   // errors.Is comparisons against collaborator sentinels
	"net/http" // HTTP status codes
	"strings"  // query trimming

	"github.com/labstack/echo/v4" // Echo web framework

	"github.com/moviebook/movie-seat-booking/internal/movies"
)

// MovieHandler proxies the upstream movie catalog.  The booking flow
// only ever consumes the title; everything else in the payload is
// passed through for the caller to render.
type MovieHandler struct {
	Movies *movies.Client
}

// NewMovieHandler constructs a MovieHandler.  The client must be non-nil.
func NewMovieHandler(client *movies.Client) *MovieHandler {
	if client == nil {
		panic("nil movie client passed to NewMovieHandler")
	}
	return &MovieHandler{Movies: client}
}

// Search handles GET /v1/movies?s=.  It forwards the search term to the
// catalog and returns the matching summaries.  An empty term is a 400;
// a term with no matches is a 404 rather than an empty list, mirroring
// how the upstream API reports "Movie not found!".
func (h *MovieHandler) Search(c echo.Context) error {
	q := strings.TrimSpace(c.QueryParam("s"))
	if q == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "s query parameter is required"})
	}
	results, err := h.Movies.Search(c.Request().Context(), q)
	if err != nil {
		if errors.Is(err, movies.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "no movies found"})
		}
		return c.JSON(http.StatusBadGateway, echo.Map{"error": "movie catalog unavailable"})
	}
	return c.JSON(http.StatusOK, echo.Map{"results": results})
}

// Get handles GET /v1/movies/:id.  It returns the full catalog entry
// for one movie ID.
func (h *MovieHandler) Get(c echo.Context) error {
	id := c.Param("id")
	movie, err := h.Movies.Lookup(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, movies.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "movie not found"})
		}
		return c.JSON(http.StatusBadGateway, echo.Map{"error": "movie catalog unavailable"})
	}
	return c.JSON(http.StatusOK, movie)
}
