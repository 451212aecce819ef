// Package geo abstracts the third-party mapping capability behind a small
// interface: the survey's location step needs address lookup both ways, and
// nothing else about the map SDK leaks into the rest of the app.
package geo

import (
	"context"
	"errors"

	"github.com/sspots/fitfinder/internal/domain"
)

// ErrProviderUnavailable indicates the mapping service could not be reached
// or is not configured. Callers fall back to domain.DefaultCoord.
var ErrProviderUnavailable = errors.New("map provider unavailable")

// ErrNoMatch indicates the query resolved to no known address or place.
var ErrNoMatch = errors.New("no matching address")

// MapProvider resolves between street addresses and coordinates.
type MapProvider interface {
	// Geocode resolves an address query to a coordinate.
	Geocode(ctx context.Context, address string) (domain.Coord, error)

	// ReverseGeocode resolves a coordinate to a human-readable address.
	ReverseGeocode(ctx context.Context, coord domain.Coord) (string, error)
}
