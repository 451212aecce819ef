package geo

import (
	"context"

	"github.com/sspots/fitfinder/internal/domain"
)

// StaticProvider is the fallback when no map service is configured or the
// real one is unreachable: every lookup resolves to the city-center default.
// Location features keep working, just without real geocoding.
type StaticProvider struct{}

func (StaticProvider) Geocode(ctx context.Context, address string) (domain.Coord, error) {
	return domain.DefaultCoord, nil
}

func (StaticProvider) ReverseGeocode(ctx context.Context, coord domain.Coord) (string, error) {
	return "서울특별시 중구 태평로1가", nil
}
