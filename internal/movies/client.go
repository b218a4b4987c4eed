// Package movies is the client for the external movie-metadata
// collaborator (an OMDb-style HTTP lookup).  The booking core only
// consumes the Title field as booking metadata; everything else is
// opaque display data passed through to the caller.  Successful
// lookups are cached in Redis so repeated browsing does not hammer the
// upstream API.
package movies

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/moviebook/movie-seat-booking/internal/config"
)

// ErrNotFound is returned when the collaborator has no movie for the
// given id or query.
var ErrNotFound = errors.New("movies: not found")

// Movie mirrors the collaborator's detail payload.  Field names follow
// the upstream JSON exactly.
type Movie struct {
	Title      string `json:"Title"`
	Year       string `json:"Year"`
	Released   string `json:"Released"`
	Genre      string `json:"Genre"`
	Plot       string `json:"Plot"`
	Actors     string `json:"Actors"`
	Poster     string `json:"Poster"`
	ImdbRating string `json:"imdbRating"`
	ImdbID     string `json:"imdbID"`
}

// Summary is one entry of a search result.
type Summary struct {
	Title  string `json:"Title"`
	Year   string `json:"Year"`
	ImdbID string `json:"imdbID"`
	Poster string `json:"Poster"`
}

// envelope captures the upstream response wrapper.  The API signals
// failure in-band with Response="False" and an Error message.
type envelope struct {
	Search   []Summary `json:"Search"`
	Response string    `json:"Response"`
	Error    string    `json:"Error"`
}

// Client performs lookups against the collaborator with an optional
// Redis read-through cache.  A nil Redis client disables caching.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
	rdb     *redis.Client
	cache   config.MovieCacheConfig
}

// NewClient builds a Client from config.  The Redis client may be nil.
func NewClient(cfg config.MovieAPIConfig, cache config.MovieCacheConfig, rdb *redis.Client) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 5 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		http:    &http.Client{Timeout: cfg.Timeout},
		rdb:     rdb,
		cache:   cache,
	}
}

// Lookup fetches one movie by its external id.
func (c *Client) Lookup(ctx context.Context, id string) (*Movie, error) {
	cacheKey := c.cache.Prefix + ":i:" + id
	var cached Movie
	if c.cacheGet(ctx, cacheKey, &cached) {
		return &cached, nil
	}

	var payload struct {
		Movie
		envelope
	}
	if err := c.fetch(ctx, url.Values{"i": {id}}, &payload); err != nil {
		return nil, err
	}
	if payload.Response == "False" {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, payload.Error)
	}
	c.cacheSet(ctx, cacheKey, payload.Movie)
	return &payload.Movie, nil
}

// Search returns summaries for a free-text query.  An empty result is
// ErrNotFound, matching the upstream's in-band error.
func (c *Client) Search(ctx context.Context, query string) ([]Summary, error) {
	cacheKey := c.cache.Prefix + ":s:" + strings.ToLower(strings.TrimSpace(query))
	var cached []Summary
	if c.cacheGet(ctx, cacheKey, &cached) {
		return cached, nil
	}

	var payload envelope
	if err := c.fetch(ctx, url.Values{"s": {query}}, &payload); err != nil {
		return nil, err
	}
	if payload.Response == "False" || len(payload.Search) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, payload.Error)
	}
	c.cacheSet(ctx, cacheKey, payload.Search)
	return payload.Search, nil
}

func (c *Client) fetch(ctx context.Context, params url.Values, out any) error {
	params.Set("apikey", c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/?"+params.Encode(), nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("movies: request failed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("movies: upstream returned %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("movies: decode response: %w", err)
	}
	return nil
}

// cacheGet loads a cached value.  Any cache failure degrades to a miss.
func (c *Client) cacheGet(ctx context.Context, key string, out any) bool {
	if c.rdb == nil || !c.cache.Enabled {
		return false
	}
	raw, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		return false
	}
	return json.Unmarshal(raw, out) == nil
}

// cacheSet stores a value with the configured TTL, best effort.
func (c *Client) cacheSet(ctx context.Context, key string, v any) {
	if c.rdb == nil || !c.cache.Enabled {
		return
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, key, raw, c.cache.TTL).Err(); err != nil {
		log.Printf("movies: cache write failed: %v", err)
	}
}
