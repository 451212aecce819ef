package geo

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sspots/fitfinder/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func kakaoTestConfig(baseURL string) KakaoConfig {
	cfg := DefaultKakaoConfig()
	cfg.BaseURL = baseURL
	cfg.AppKey = "test-key"
	return cfg
}

func TestKakao_Geocode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/local/search/address.json", r.URL.Path)
		assert.Equal(t, "KakaoAK test-key", r.Header.Get("Authorization"))
		assert.Equal(t, "서울 중구 세종대로 110", r.URL.Query().Get("query"))

		w.Write([]byte(`{"documents":[{"address_name":"서울 중구 태평로1가 31","x":"126.9780","y":"37.5665"}]}`))
	}))
	defer srv.Close()

	p := NewKakaoProvider(kakaoTestConfig(srv.URL))
	coord, err := p.Geocode(context.Background(), "서울 중구 세종대로 110")
	require.NoError(t, err)
	assert.InDelta(t, 37.5665, coord.Lat, 1e-9)
	assert.InDelta(t, 126.9780, coord.Lng, 1e-9)
}

func TestKakao_GeocodeNoMatch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"documents":[]}`))
	}))
	defer srv.Close()

	p := NewKakaoProvider(kakaoTestConfig(srv.URL))
	_, err := p.Geocode(context.Background(), "존재하지 않는 주소")
	assert.ErrorIs(t, err, ErrNoMatch)
}

func TestKakao_ReverseGeocodePrefersLotAddress(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/local/geo/coord2address.json", r.URL.Path)
		assert.Equal(t, "126.978", r.URL.Query().Get("x"))
		assert.Equal(t, "37.5665", r.URL.Query().Get("y"))

		w.Write([]byte(`{"documents":[{"address":{"address_name":"서울 중구 태평로1가 31"},"road_address":{"address_name":"서울 중구 세종대로 110"}}]}`))
	}))
	defer srv.Close()

	p := NewKakaoProvider(kakaoTestConfig(srv.URL))
	addr, err := p.ReverseGeocode(context.Background(), domain.Coord{Lat: 37.5665, Lng: 126.978})
	require.NoError(t, err)
	assert.Equal(t, "서울 중구 태평로1가 31", addr)
}

func TestKakao_ReverseGeocodeRoadFallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"documents":[{"address":null,"road_address":{"address_name":"서울 중구 세종대로 110"}}]}`))
	}))
	defer srv.Close()

	p := NewKakaoProvider(kakaoTestConfig(srv.URL))
	addr, err := p.ReverseGeocode(context.Background(), domain.Coord{Lat: 37.5665, Lng: 126.978})
	require.NoError(t, err)
	assert.Equal(t, "서울 중구 세종대로 110", addr)
}

func TestKakao_MissingAppKeyUnavailable(t *testing.T) {
	cfg := DefaultKakaoConfig()
	p := NewKakaoProvider(cfg)

	_, err := p.Geocode(context.Background(), "서울")
	assert.ErrorIs(t, err, ErrProviderUnavailable)
}

func TestStaticProvider_AlwaysResolvesDefault(t *testing.T) {
	p := StaticProvider{}

	coord, err := p.Geocode(context.Background(), "아무 주소")
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultCoord, coord)

	addr, err := p.ReverseGeocode(context.Background(), domain.Coord{Lat: 1, Lng: 2})
	require.NoError(t, err)
	assert.NotEmpty(t, addr)
}
