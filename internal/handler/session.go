package handler

import (
	"errors"   // errors.Is comparisons against flow sentinels
	"net/http" // HTTP status codes
	"strings"  // trimming request fields

	"github.com/labstack/echo/v4" // Echo web framework

	"github.com/moviebook/movie-seat-booking/internal/booking"
	"github.com/moviebook/movie-seat-booking/internal/config"
	"github.com/moviebook/movie-seat-booking/internal/model"
	"github.com/moviebook/movie-seat-booking/internal/movies"
	"github.com/moviebook/movie-seat-booking/internal/seatmap"
	"github.com/moviebook/movie-seat-booking/internal/session"
	"github.com/moviebook/movie-seat-booking/internal/utils"
)

// SessionHandler drives the seat selection flow: starting a session,
// toggling seats, checking out and confirming the booking.  Except for
// Create, every method expects the SessionAuth middleware to have put
// the active session into the request context.
type SessionHandler struct {
	Store   *session.Store
	Movies  *movies.Client // optional; nil disables movie_id resolution
	Flow    *booking.Flow
	SeatMap config.SeatMapConfig
	Secret  string // session token signing secret
	TTLMin  int    // session token TTL in minutes
}

// NewSessionHandler constructs a SessionHandler.  Store and Flow must be
// non-nil; Movies may be nil when no catalog is configured.
func NewSessionHandler(store *session.Store, client *movies.Client, flow *booking.Flow, seatMap config.SeatMapConfig, secret string, ttlMin int) *SessionHandler {
	if store == nil || flow == nil {
		panic("nil dependency passed to NewSessionHandler")
	}
	return &SessionHandler{
		Store:   store,
		Movies:  client,
		Flow:    flow,
		SeatMap: seatMap,
		Secret:  secret,
		TTLMin:  ttlMin,
	}
}

// Create handles POST /v1/sessions.  The body must carry either a
// movie_id (resolved against the catalog) or an explicit movie_title.
// show_time and date are optional; unset values fall back to display
// defaults when rendered and are never persisted.  The response carries
// the signed session token, the generated seat map and the price
// legend.
func (h *SessionHandler) Create(c echo.Context) error {
	var body struct {
		MovieID    string `json:"movie_id"`
		MovieTitle string `json:"movie_title"`
		ShowTime   string `json:"show_time"`
		Date       string `json:"date"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}

	title := strings.TrimSpace(body.MovieTitle)
	if id := strings.TrimSpace(body.MovieID); id != "" {
		if h.Movies == nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "movie lookup is not configured"})
		}
		movie, err := h.Movies.Lookup(c.Request().Context(), id)
		if err != nil {
			if errors.Is(err, movies.ErrNotFound) {
				return c.JSON(http.StatusNotFound, echo.Map{"error": "movie not found"})
			}
			return c.JSON(http.StatusBadGateway, echo.Map{"error": "movie catalog unavailable"})
		}
		title = movie.Title
	}
	if title == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "movie_id or movie_title is required"})
	}

	grid, err := seatmap.Generate(h.SeatMap.Layout, h.SeatMap.Rules, h.SeatMap.BookedSeats)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "seat map generation failed"})
	}
	s := h.Store.Create(title, strings.TrimSpace(body.ShowTime), strings.TrimSpace(body.Date), grid)

	tok, err := utils.NewSessionToken(h.Secret, s.ID, h.TTLMin)
	if err != nil {
		h.Store.Delete(s.ID)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to sign session token"})
	}
	return c.JSON(http.StatusCreated, echo.Map{
		"session_token": tok.Token,
		"expires_at":    tok.Exp,
		"movie_title":   s.MovieTitle,
		"show_time":     displayShowTime(s.ShowTime),
		"date":          displayDate(s.Date),
		"seat_map":      s.Grid(),
		"legend":        h.SeatMap.Rules,
	})
}

// Seats handles GET /v1/sessions/seats.  It returns the current grid
// together with the selection summary.
func (h *SessionHandler) Seats(c echo.Context) error {
	s := sessionFromCtx(c)
	return c.JSON(http.StatusOK, seatState(s))
}

// Toggle handles POST /v1/sessions/seats/:seat/toggle.  An unknown seat
// ID is a 404.  A click on an already booked seat is swallowed: the
// grid state is simply returned unchanged, the same way the seat map UI
// ignores such clicks.
func (h *SessionHandler) Toggle(c echo.Context) error {
	s := sessionFromCtx(c)
	if err := s.Toggle(c.Param("seat")); err != nil {
		if errors.Is(err, session.ErrUnknownSeat) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "unknown seat"})
		}
		// session.ErrSeatBooked: fall through and report current state.
	}
	return c.JSON(http.StatusOK, seatState(s))
}

// ClearSelection handles DELETE /v1/sessions/selection.  It drops every
// selected seat, used when the caller abandons the flow mid-way.
func (h *SessionHandler) ClearSelection(c echo.Context) error {
	s := sessionFromCtx(c)
	s.Clear()
	return c.JSON(http.StatusOK, seatState(s))
}

// Checkout handles POST /v1/sessions/checkout.  It books the selected
// seats and returns the resulting ticket summary.  An empty selection
// is a 422.
func (h *SessionHandler) Checkout(c echo.Context) error {
	s := sessionFromCtx(c)
	intent, err := h.Flow.Checkout(s)
	if err != nil {
		if errors.Is(err, booking.ErrEmptySelection) {
			return c.JSON(http.StatusUnprocessableEntity, echo.Map{"error": "no seats selected"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "checkout failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"movie_title": intent.MovieTitle,
		"seats":       intent.Seats,
		"total_price": intent.TotalPrice,
		"show_time":   displayShowTime(intent.ShowTime),
		"date":        displayDate(intent.Date),
	})
}

// Confirm handles POST /v1/sessions/confirm.  It persists the pending
// ticket as a booking record and returns the receipt.  Confirming with
// no checkout in progress is a 409.
func (h *SessionHandler) Confirm(c echo.Context) error {
	s := sessionFromCtx(c)
	rec, err := h.Flow.Confirm(c.Request().Context(), s)
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrNoActiveBooking):
			return c.JSON(http.StatusConflict, echo.Map{"error": "no booking in progress"})
		case errors.Is(err, booking.ErrBookingIDCollision):
			return c.JSON(http.StatusServiceUnavailable, echo.Map{"error": "could not allocate booking id"})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to persist booking"})
		}
	}
	return c.JSON(http.StatusCreated, rec)
}

// sessionFromCtx pulls the session stored by the SessionAuth middleware.
func sessionFromCtx(c echo.Context) *session.Session {
	return c.Get("session").(*session.Session)
}

// seatState builds the common grid + selection response body.
func seatState(s *session.Session) echo.Map {
	return echo.Map{
		"movie_title": s.MovieTitle,
		"show_time":   displayShowTime(s.ShowTime),
		"date":        displayDate(s.Date),
		"seat_map":    s.Grid(),
		"selected":    s.Selected(),
		"total_price": s.Total(),
	}
}

func displayShowTime(v string) string {
	if v == "" {
		return model.DefaultShowTime
	}
	return v
}

func displayDate(v string) string {
	if v == "" {
		return model.DefaultDate
	}
	return v
}
