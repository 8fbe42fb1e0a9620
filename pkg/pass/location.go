package pass

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Location is a geofence at which the pass becomes relevant.
//
// Coordinates are carried as json.Number so the descriptor emits decimal
// text instead of a re-encoded float. Descriptor canonicalization still
// normalizes the number form (for example "47.6000" becomes 47.6), so the
// bytes are deterministic for a given numeric value, not for the exact
// input spelling.
type Location struct {
	Latitude  json.Number
	Longitude json.Number

	// Altitude in meters. Defaults to 0.
	Altitude json.Number

	// Distance is the maximum radius in meters at which the pass is
	// relevant. Zero means the wallet default.
	Distance float64

	// RelevantText is shown on the lock screen near the location.
	RelevantText string
}

// NewLocation creates a location from numeric coordinates.
func NewLocation(latitude, longitude float64) Location {
	return Location{
		Latitude:  formatCoordinate(latitude),
		Longitude: formatCoordinate(longitude),
		Altitude:  "0",
	}
}

// ParseLocation creates a location from textual coordinates. Invalid input
// is rejected rather than silently coerced to 0.
func ParseLocation(latitude, longitude string) (Location, error) {
	lat, err := parseCoordinate(latitude)
	if err != nil {
		return Location{}, fmt.Errorf("latitude: %w", err)
	}
	lng, err := parseCoordinate(longitude)
	if err != nil {
		return Location{}, fmt.Errorf("longitude: %w", err)
	}
	return Location{Latitude: lat, Longitude: lng, Altitude: "0"}, nil
}

func parseCoordinate(s string) (json.Number, error) {
	s = strings.TrimSpace(s)
	if _, err := strconv.ParseFloat(s, 64); err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidCoordinate, s)
	}
	return json.Number(s), nil
}

func formatCoordinate(v float64) json.Number {
	return json.Number(strconv.FormatFloat(v, 'f', -1, 64))
}

func (l Location) jsonMap() map[string]any {
	altitude := l.Altitude
	if altitude == "" {
		altitude = "0"
	}
	m := map[string]any{
		"latitude":  l.Latitude,
		"longitude": l.Longitude,
		"altitude":  altitude,
	}
	if l.Distance > 0 {
		m["distance"] = l.Distance
	}
	if l.RelevantText != "" {
		m["relevantText"] = l.RelevantText
	}
	return m
}
