package config

import "time"

// MovieAPIConfig holds the settings for the upstream movie catalog API.
// An empty APIKey disables the catalog; sessions then require an
// explicit movie title instead of a movie ID.
type MovieAPIConfig struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// LoadMovieAPIConfig reads the movie API settings from the environment.
func LoadMovieAPIConfig() MovieAPIConfig {
	return MovieAPIConfig{
		BaseURL: getenv("MOVIE_API_BASE_URL", "https://www.omdbapi.com/"),
		APIKey:  getenv("MOVIE_API_KEY", ""),
		Timeout: envDur("MOVIE_API_TIMEOUT", 5*time.Second),
	}
}
