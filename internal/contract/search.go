package contract

import "github.com/sspots/fitfinder/internal/domain"

// SearchRequest is the body of POST /api/v1/programs. Weekday and StartTime
// are omitted entirely when no filter is set; an empty array would read as
// "match nothing" server-side.
type SearchRequest struct {
	Gender    string   `json:"gender"`
	Age       string   `json:"age"`
	Latitude  float64  `json:"latitude"`
	Longitude float64  `json:"longitude"`
	Favorites []string `json:"favorites"`
	Weekday   []string `json:"weekday,omitempty"`
	StartTime []string `json:"startTime,omitempty"`
}

// NewSearchRequest projects a survey profile into the search payload.
// Callers must check Profile.Complete first; an incomplete profile produces
// a payload the server would reject.
func NewSearchRequest(p *domain.Profile) SearchRequest {
	loc := p.Location()
	return SearchRequest{
		Gender:    string(p.Gender()),
		Age:       string(p.AgeGroup()),
		Latitude:  loc.Lat,
		Longitude: loc.Lng,
		Favorites: p.Favorites(),
		Weekday:   p.Weekday(),
		StartTime: p.StartTime(),
	}
}

// ProgramSummary is one row of the paginated search result, ordered by the
// server nominally distance-ascending.
type ProgramSummary struct {
	ProgramID   int      `json:"programId"`
	ProgramName string   `json:"programName"`
	Weekday     []string `json:"weekday"`
	StartTime   string   `json:"startTime"`
	Category    string   `json:"category"`
	SubCategory string   `json:"subCategory"`
	Facility    string   `json:"facility"`
	Distance    float64  `json:"distance"`
}

// SearchResponse is the full body of POST /api/v1/programs.
type SearchResponse struct {
	Envelope
	Data []ProgramSummary `json:"data"`
}
