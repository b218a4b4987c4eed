package config // package config loads application configuration from environment variables

import (
	"log"     // log is used to report configuration errors and halt execution
	"os"      // os provides access to environment variables
	"strconv" // strconv converts strings to other types
	"time"    // time parses duration values
)

// Config holds the core runtime configuration.  Each field corresponds
// to an environment variable.  Backend-specific settings (seat map,
// ledger, movie API, caching) live in their own loaders in this
// package.
type Config struct {
	Env           string // application environment (e.g. "dev", "prod")
	Port          string // HTTP port to listen on
	SessionSecret string // secret used to sign session tokens
	SessionTTLMin int    // session token time-to-live in minutes
	ReceiptLogOn  bool   // whether to run the booking.confirmed consumer
	PublishEvents bool   // whether to publish booking.confirmed events
}

// Load reads the core configuration.  Required variables are enforced
// by must() and missing values cause the program to exit with a fatal
// log message.
func Load() Config {
	return Config{
		Env:           must("APP_ENV"),                            // environment (dev/test/prod)
		Port:          must("APP_PORT"),                           // port to bind the HTTP server
		SessionSecret: must("SESSION_TOKEN_SECRET"),               // secret for signing session tokens
		SessionTTLMin: envInt("SESSION_TOKEN_TTL_MIN", 120),       // TTL for session tokens in minutes
		ReceiptLogOn:  envBool("RECEIPT_CONSUMER_ENABLED", false), // run the receipt-log consumer
		PublishEvents: envBool("BOOKING_EVENTS_ENABLED", false),   // publish confirmation events
	}
}

// must retrieves the value of a required environment variable.  If the
// variable is unset or empty, the application logs a fatal error and exits.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}

// Helper functions shared by the loaders in this package.
func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt(k string, d int) int {
	v := os.Getenv(k)
	if v == "" {
		return d
	}
	if n, err := strconv.Atoi(v); err == nil {
		return n
	}
	return d
}

func envBool(k string, d bool) bool {
	v := os.Getenv(k)
	if v == "" {
		return d
	}
	switch v {
	case "1", "true", "TRUE", "True", "yes", "YES", "on", "ON":
		return true
	case "0", "false", "FALSE", "False", "no", "NO", "off", "OFF":
		return false
	}
	return d
}

func envDur(k string, d time.Duration) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		return d
	}
	if dur, err := time.ParseDuration(v); err == nil {
		return dur
	}
	return d
}
