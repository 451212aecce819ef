package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/sspots/fitfinder/internal/domain"
)

// KakaoConfig holds settings for the Kakao Local REST adapter.
type KakaoConfig struct {
	BaseURL   string
	AppKey    string
	TimeoutMs int
}

// DefaultKakaoConfig returns a KakaoConfig pointing at the public endpoint.
// The adapter is disabled until an app key is provided.
func DefaultKakaoConfig() KakaoConfig {
	return KakaoConfig{
		BaseURL:   "https://dapi.kakao.com",
		TimeoutMs: 5000,
	}
}

// LoadKakaoConfig reads the adapter configuration from environment variables.
func LoadKakaoConfig() KakaoConfig {
	cfg := DefaultKakaoConfig()
	if v := os.Getenv("FITFINDER_KAKAO_BASE"); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv("FITFINDER_KAKAO_APP_KEY"); v != "" {
		cfg.AppKey = v
	}
	if v := os.Getenv("FITFINDER_KAKAO_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}
	return cfg
}

// kakaoProvider implements MapProvider using the Kakao Local REST API.
type kakaoProvider struct {
	cfg  KakaoConfig
	http *http.Client
}

// NewKakaoProvider creates a MapProvider backed by Kakao Local.
func NewKakaoProvider(cfg KakaoConfig) MapProvider {
	return &kakaoProvider{
		cfg: cfg,
		http: &http.Client{
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: 3 * time.Second,
				}).DialContext,
			},
		},
	}
}

type kakaoAddressDoc struct {
	AddressName string `json:"address_name"`
	X           string `json:"x"` // longitude
	Y           string `json:"y"` // latitude
}

type kakaoSearchResponse struct {
	Documents []kakaoAddressDoc `json:"documents"`
}

type kakaoCoord2AddressResponse struct {
	Documents []struct {
		Address     *kakaoAddressDoc `json:"address"`
		RoadAddress *kakaoAddressDoc `json:"road_address"`
	} `json:"documents"`
}

func (p *kakaoProvider) Geocode(ctx context.Context, address string) (domain.Coord, error) {
	q := url.Values{}
	q.Set("query", address)

	var resp kakaoSearchResponse
	if err := p.get(ctx, "/v2/local/search/address.json?"+q.Encode(), &resp); err != nil {
		return domain.Coord{}, err
	}
	if len(resp.Documents) == 0 {
		return domain.Coord{}, ErrNoMatch
	}
	doc := resp.Documents[0]
	lat, errLat := strconv.ParseFloat(doc.Y, 64)
	lng, errLng := strconv.ParseFloat(doc.X, 64)
	if errLat != nil || errLng != nil {
		return domain.Coord{}, fmt.Errorf("parsing kakao coordinates: %q/%q", doc.Y, doc.X)
	}
	return domain.Coord{Lat: lat, Lng: lng}, nil
}

func (p *kakaoProvider) ReverseGeocode(ctx context.Context, coord domain.Coord) (string, error) {
	q := url.Values{}
	q.Set("x", strconv.FormatFloat(coord.Lng, 'f', -1, 64))
	q.Set("y", strconv.FormatFloat(coord.Lat, 'f', -1, 64))

	var resp kakaoCoord2AddressResponse
	if err := p.get(ctx, "/v2/local/geo/coord2address.json?"+q.Encode(), &resp); err != nil {
		return "", err
	}
	if len(resp.Documents) == 0 {
		return "", ErrNoMatch
	}
	// Prefer the lot-number address like the original; fall back to the road
	// address when only that exists.
	doc := resp.Documents[0]
	if doc.Address != nil && doc.Address.AddressName != "" {
		return doc.Address.AddressName, nil
	}
	if doc.RoadAddress != nil && doc.RoadAddress.AddressName != "" {
		return doc.RoadAddress.AddressName, nil
	}
	return "", ErrNoMatch
}

func (p *kakaoProvider) get(ctx context.Context, path string, out any) error {
	if p.cfg.AppKey == "" {
		return ErrProviderUnavailable
	}

	ctx, cancel := context.WithTimeout(ctx, time.Duration(p.cfg.TimeoutMs)*time.Millisecond)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.cfg.BaseURL+path, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Authorization", "KakaoAK "+p.cfg.AppKey)

	resp, err := p.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrProviderUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: kakao returned status %d", ErrProviderUnavailable, resp.StatusCode)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decoding kakao response: %w", err)
	}
	return nil
}
