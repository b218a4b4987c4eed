package handler

import (
	"net/http" // HTTP status codes

	"github.com/labstack/echo/v4" // Echo web framework

	"github.com/moviebook/movie-seat-booking/internal/ledger"
)

// BookingHandler serves the persisted booking history.  Unlike the
// session endpoints these are unauthenticated: the ledger is a single
// shared history, the same one every page load of the original UI read.
type BookingHandler struct {
	Ledger *ledger.Ledger
}

// NewBookingHandler constructs a BookingHandler.  The ledger must be
// non-nil.
func NewBookingHandler(l *ledger.Ledger) *BookingHandler {
	if l == nil {
		panic("nil ledger passed to NewBookingHandler")
	}
	return &BookingHandler{Ledger: l}
}

// List handles GET /v1/bookings?search=&status=&sort=.  Unrecognized
// status or sort values fall back to "all" and "recent" inside the
// ledger query, so the endpoint never rejects a filter.
func (h *BookingHandler) List(c echo.Context) error {
	q := ledger.Query{
		Search: c.QueryParam("search"),
		Status: c.QueryParam("status"),
		SortBy: c.QueryParam("sort"),
	}
	records, err := h.Ledger.Query(c.Request().Context(), q)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to read bookings"})
	}
	return c.JSON(http.StatusOK, echo.Map{"bookings": records, "count": len(records)})
}

// Get handles GET /v1/bookings/:id.  It returns a single receipt by its
// bookingId.
func (h *BookingHandler) Get(c echo.Context) error {
	rec, found, err := h.Ledger.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to read bookings"})
	}
	if !found {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "booking not found"})
	}
	return c.JSON(http.StatusOK, rec)
}

// Delete handles DELETE /v1/bookings/:id.  Removing an unknown ID is
// still a 204: the end state is the same and callers retry deletes.
func (h *BookingHandler) Delete(c echo.Context) error {
	if err := h.Ledger.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to delete booking"})
	}
	return c.NoContent(http.StatusNoContent)
}
