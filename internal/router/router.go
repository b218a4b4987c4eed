package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing

	"github.com/moviebook/movie-seat-booking/internal/handler"    // import the handlers that implement business logic
	"github.com/moviebook/movie-seat-booking/internal/middleware" // import middleware for session token authentication
	"github.com/moviebook/movie-seat-booking/internal/session"
)

// RegisterRoutes registers routes that do not require a session token on
// the provided Echo instance.  Currently it exposes only a health check.
func RegisterRoutes(e *echo.Echo) {
	// Map the GET request at path "/healthz" to the Health handler.  This
	// endpoint can be used by load balancers or monitoring systems to verify
	// that the service is up and running.
	e.GET("/healthz", handler.Health)
}

// RegisterMovies registers the movie catalog proxy endpoints.  These are
// unauthenticated browse routes; callers use them to pick a movie before
// opening a session.
func RegisterMovies(e *echo.Echo, m *handler.MovieHandler) {
	// Search the catalog by title fragment.
	e.GET("/v1/movies", m.Search)
	// Fetch the full catalog entry for one movie ID.
	e.GET("/v1/movies/:id", m.Get)
}

// RegisterSessions registers the seat selection flow.  Session creation
// is open; every other endpoint requires the Bearer session token issued
// at creation, validated by the SessionAuth middleware.
func RegisterSessions(e *echo.Echo, s *handler.SessionHandler, secret string, store *session.Store) {
	// Start a new booking session and receive a signed session token.
	e.POST("/v1/sessions", s.Create)

	// All remaining session routes operate on the caller's own session,
	// resolved from the token by the middleware.
	g := e.Group("/v1/sessions")
	g.Use(middleware.SessionAuth(secret, store))
	// Current grid with the selection summary.
	g.GET("/seats", s.Seats)
	// Toggle one seat in or out of the selection.
	g.POST("/seats/:seat/toggle", s.Toggle)
	// Abandon the current selection.
	g.DELETE("/selection", s.ClearSelection)
	// Book the selected seats and produce the ticket summary.
	g.POST("/checkout", s.Checkout)
	// Persist the pending ticket as a booking record.
	g.POST("/confirm", s.Confirm)
}

// RegisterBookings registers the booking history endpoints.  The history
// is a single shared ledger, so these routes carry no authentication.
func RegisterBookings(e *echo.Echo, b *handler.BookingHandler) {
	// Filtered, sorted history view.
	e.GET("/v1/bookings", b.List)
	// One receipt by bookingId.
	e.GET("/v1/bookings/:id", b.Get)
	// Remove a receipt.
	e.DELETE("/v1/bookings/:id", b.Delete)
}
