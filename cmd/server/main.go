package main // Entry point package

import (
	"context" // Context for startup-time backend calls
	"log"     // Logging library

	"github.com/joho/godotenv"    // Loads a local .env file when present
	"github.com/labstack/echo/v4" // Echo web framework

	"github.com/moviebook/movie-seat-booking/internal/booking"  // Booking flow controller
	"github.com/moviebook/movie-seat-booking/internal/config"   // Internal config loader
	"github.com/moviebook/movie-seat-booking/internal/database" // MySQL connector
	"github.com/moviebook/movie-seat-booking/internal/handler"  // HTTP handlers
	"github.com/moviebook/movie-seat-booking/internal/ledger"   // Durable booking ledger
	"github.com/moviebook/movie-seat-booking/internal/movies"   // Movie catalog client
	"github.com/moviebook/movie-seat-booking/internal/queue"    // Receipt-log consumer
	"github.com/moviebook/movie-seat-booking/internal/router"   // Internal router setup
	"github.com/moviebook/movie-seat-booking/internal/seatmap"  // Seat map validation
	qp "github.com/moviebook/movie-seat-booking/internal/service"
	"github.com/moviebook/movie-seat-booking/internal/session" // In-memory session store
)

func main() {
	_ = godotenv.Load() // Load .env if present; real env vars win

	cfg := config.Load() // Load environment config

	// Validate the seat map once at startup so a bad rule set fails fast
	// instead of failing every session creation.
	seatCfg := config.LoadSeatMapConfig()
	if err := seatmap.Validate(seatCfg.Layout, seatCfg.Rules); err != nil {
		log.Fatalf("invalid seat map configuration: %v", err)
	}

	rdb := config.NewRedisClient() // May be nil when Redis is unreachable

	// Pick the ledger backend.  The ledger is the only durable state the
	// service keeps, so a selected-but-unavailable backend is fatal.
	ledgerCfg := config.LoadLedgerConfig()
	var store ledger.Store
	switch ledgerCfg.Backend {
	case "mysql":
		db, err := database.Open(ledgerCfg.DBUser, ledgerCfg.DBPass, ledgerCfg.DBHost, ledgerCfg.DBPort, ledgerCfg.DBName)
		if err != nil {
			log.Fatalf("mysql ledger backend: %v", err)
		}
		ms := ledger.NewMySQLStore(db, ledger.Namespace)
		if err := ms.EnsureSchema(context.Background()); err != nil {
			log.Fatalf("mysql ledger schema: %v", err)
		}
		store = ms
	case "file":
		fs, err := ledger.NewFileStore(ledgerCfg.FilePath)
		if err != nil {
			log.Fatalf("file ledger backend: %v", err)
		}
		store = fs
	case "memory":
		store = ledger.NewMemoryStore()
	default: // redis
		if rdb == nil {
			log.Fatal("redis ledger backend selected but Redis is unavailable")
		}
		store = ledger.NewRedisStore(rdb, ledger.Namespace)
	}
	led := ledger.New(store)

	// The movie catalog is optional: without an API key, sessions must be
	// created with an explicit movie title.
	var catalog *movies.Client
	if apiCfg := config.LoadMovieAPIConfig(); apiCfg.APIKey != "" {
		catalog = movies.NewClient(apiCfg, config.LoadMovieCacheConfig(), rdb)
	}

	sessions := session.NewStore()

	var pub booking.Publisher
	if cfg.PublishEvents {
		pub = qp.AMQPPublisher{}
	}
	flow := booking.NewFlow(led, pub)

	// The receipt consumer drains booking.confirmed events into the
	// receipt log.  It reconnects on its own; a dead broker only stalls
	// the log, never the API.
	if cfg.ReceiptLogOn {
		go func() {
			if err := queue.StartBookingConsumer(); err != nil {
				log.Printf("receipt consumer stopped: %v", err)
			}
		}()
	}

	e := echo.New() // Create Echo instance
	router.RegisterRoutes(e)
	if catalog != nil {
		router.RegisterMovies(e, handler.NewMovieHandler(catalog))
	}
	router.RegisterSessions(e,
		handler.NewSessionHandler(sessions, catalog, flow, seatCfg, cfg.SessionSecret, cfg.SessionTTLMin),
		cfg.SessionSecret, sessions)
	router.RegisterBookings(e, handler.NewBookingHandler(led))

	addr := ":" + cfg.Port // Address string with port
	log.Printf("listening on %s (env=%s, ledger=%s)", addr, cfg.Env, ledgerCfg.Backend)

	if err := e.Start(addr); err != nil { // Start HTTP server
		log.Fatal(err)
	}
}
