package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/sspots/fitfinder/internal/contract"
)

// PageCursor identifies where the previous result page ended. Results are
// ordered by distance, which admits ties, so the last programId and the last
// distance are both required to disambiguate the next page.
type PageCursor struct {
	LastProgramID int
	LastDistance  float64
}

// Client provides access to the remote FitFinder service.
type Client interface {
	// SearchPrograms returns one page of programs matching the profile.
	// A nil cursor requests the first page. An empty page means the result
	// set is exhausted.
	SearchPrograms(ctx context.Context, req contract.SearchRequest, cursor *PageCursor) ([]contract.ProgramSummary, error)

	// ProgramDetail fetches the full record for a single program.
	ProgramDetail(ctx context.Context, programID int) (*contract.ProgramDetail, error)

	// GenerateRoutine asks the service for a weekly workout plan.
	GenerateRoutine(ctx context.Context, req contract.RoutineRequest) (*contract.Routine, error)
}

// httpClient implements Client against the FitFinder HTTP API.
type httpClient struct {
	cfg      Config
	http     *http.Client
	observer Observer
}

// NewClient creates a Client for the configured FitFinder endpoint.
func NewClient(cfg Config, observer Observer) Client {
	if observer == nil {
		observer = NoopObserver{}
	}
	return &httpClient{
		cfg: cfg,
		http: &http.Client{
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: 5 * time.Second,
				}).DialContext,
			},
		},
		observer: observer,
	}
}

func (c *httpClient) SearchPrograms(ctx context.Context, req contract.SearchRequest, cursor *PageCursor) ([]contract.ProgramSummary, error) {
	q := url.Values{}
	q.Set("pageSize", strconv.Itoa(c.cfg.PageSize))
	if cursor != nil {
		q.Set("lastProgramId", strconv.Itoa(cursor.LastProgramID))
		q.Set("lastDistance", strconv.FormatFloat(cursor.LastDistance, 'f', -1, 64))
	}

	var resp contract.SearchResponse
	err := c.call(ctx, "search_programs", http.MethodPost, "/api/v1/programs?"+q.Encode(), req, &resp)
	if err != nil {
		return nil, err
	}
	return resp.Data, nil
}

func (c *httpClient) ProgramDetail(ctx context.Context, programID int) (*contract.ProgramDetail, error) {
	var resp contract.DetailResponse
	path := fmt.Sprintf("/api/v1/programs/%d", programID)
	if err := c.call(ctx, "program_detail", http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

func (c *httpClient) GenerateRoutine(ctx context.Context, req contract.RoutineRequest) (*contract.Routine, error) {
	var resp contract.RoutineResponse
	if err := c.call(ctx, "generate_routine", http.MethodPost, "/api/v1/recommend", req, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// call performs one HTTP round trip and decodes the response envelope into
// out. There is no automatic retry: failed searches are terminal for the
// page and recovery is user-initiated.
func (c *httpClient) call(ctx context.Context, op, method, path string, body, out any) error {
	start := time.Now()
	err := c.doRequest(ctx, method, path, body, out)
	evt := CallEvent{
		Op:        op,
		LatencyMs: time.Since(start).Milliseconds(),
		Success:   err == nil,
		ErrorCode: errorCode(err),
	}
	c.observer.OnCallComplete(evt)
	return err
}

func (c *httpClient) doRequest(ctx context.Context, method, path string, body, out any) error {
	ctx, cancel := context.WithTimeout(ctx, time.Duration(c.cfg.TimeoutMs)*time.Millisecond)
	defer cancel()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshaling request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, c.cfg.BaseURL+path, reader)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	httpResp, err := c.http.Do(httpReq)
	if err != nil {
		if ctx.Err() != nil {
			return ErrTimeout
		}
		if isConnectionError(err) {
			return ErrUnavailable
		}
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}

	if httpResp.StatusCode < 200 || httpResp.StatusCode >= 300 {
		// The error envelope still carries a user-facing message when the
		// server produced one.
		var env contract.Envelope
		_ = json.Unmarshal(respBody, &env)
		return &StatusError{Code: httpResp.StatusCode, Message: env.Message}
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("%w: %v", ErrBadResponse, err)
	}
	return nil
}

func isConnectionError(err error) bool {
	if err == nil {
		return false
	}
	var netErr *net.OpError
	return errors.As(err, &netErr)
}

func errorCode(err error) string {
	var se *StatusError
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrTimeout):
		return "TIMEOUT"
	case errors.Is(err, ErrUnavailable):
		return "UNAVAILABLE"
	case errors.Is(err, ErrBadResponse):
		return "BAD_RESPONSE"
	case errors.As(err, &se):
		return "HTTP_" + strconv.Itoa(se.Code)
	default:
		return "UNKNOWN"
	}
}
