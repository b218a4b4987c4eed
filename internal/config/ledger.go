package config

// LedgerConfig selects and configures the booking ledger backend.  The
// ledger stores the whole booking history as one document, so any of the
// supported backends can serve it: Redis (default), MySQL, a local file,
// or process memory for tests and demos.
type LedgerConfig struct {
	Backend  string // "redis", "mysql", "file" or "memory"
	FilePath string // path for the file backend, empty means the user config dir

	// MySQL credentials, used only when Backend is "mysql".
	DBUser string
	DBPass string
	DBHost string
	DBPort string
	DBName string
}

// LoadLedgerConfig reads the ledger backend selection from the environment.
// MySQL credentials are required only when LEDGER_BACKEND=mysql.
func LoadLedgerConfig() LedgerConfig {
	cfg := LedgerConfig{
		Backend:  getenv("LEDGER_BACKEND", "redis"),
		FilePath: getenv("LEDGER_FILE_PATH", ""),
	}
	if cfg.Backend == "mysql" {
		cfg.DBUser = must("DB_USER")
		cfg.DBPass = getenv("DB_PASS", "")
		cfg.DBHost = must("DB_HOST")
		cfg.DBPort = must("DB_PORT")
		cfg.DBName = must("DB_NAME")
	}
	return cfg
}
