package config

import (
	"encoding/json"
	"log"
	"os"
	"strings"

	"github.com/moviebook/movie-seat-booking/internal/model"
)

// SeatMapConfig describes the auditorium shape and pricing used for every
// new session.  The defaults match the standard house: 8 rows of 12 seats
// with an aisle after the fifth seat, priced in three tiers.
type SeatMapConfig struct {
	Layout      model.Layout
	Rules       []model.SeatTypeRule
	BookedSeats []string
}

// LoadSeatMapConfig builds a SeatMapConfig from environment variables.
// Supported variables are:
//
//	SEATMAP_ROWS, SEATMAP_SEATS_PER_ROW, SEATMAP_AISLE – layout overrides
//	SEATMAP_RULES – JSON array of seat type rules, replacing the defaults
//	SEATMAP_BOOKED – comma separated seat IDs marked booked at session start
func LoadSeatMapConfig() SeatMapConfig {
	cfg := SeatMapConfig{
		Layout: model.Layout{
			Rows:          envInt("SEATMAP_ROWS", 8),
			SeatsPerRow:   envInt("SEATMAP_SEATS_PER_ROW", 12),
			AislePosition: envInt("SEATMAP_AISLE", 5),
		},
		Rules: []model.SeatTypeRule{
			{Type: "regular", Name: "Regular", Price: 150, Rows: []int{0, 1, 2}},
			{Type: "premium", Name: "Premium", Price: 250, Rows: []int{3, 4, 5}},
			{Type: "vip", Name: "VIP", Price: 350, Rows: []int{6, 7}},
		},
	}
	if raw := os.Getenv("SEATMAP_RULES"); raw != "" {
		var rules []model.SeatTypeRule
		if err := json.Unmarshal([]byte(raw), &rules); err != nil {
			log.Fatalf("invalid SEATMAP_RULES: %v", err)
		}
		cfg.Rules = rules
	}
	if raw := os.Getenv("SEATMAP_BOOKED"); raw != "" {
		for _, id := range strings.Split(raw, ",") {
			if id = strings.TrimSpace(id); id != "" {
				cfg.BookedSeats = append(cfg.BookedSeats, id)
			}
		}
	}
	return cfg
}
