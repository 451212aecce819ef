package contract

import "github.com/sspots/fitfinder/internal/domain"

// RoutineRequest is the body of POST /api/v1/recommend. Unlike the search
// payload, gender is sent in its display form (남성/여성) because the routine
// text weaves it into prose.
type RoutineRequest struct {
	Gender    string   `json:"gender"`
	Age       string   `json:"age"`
	Latitude  float64  `json:"latitude"`
	Longitude float64  `json:"longitude"`
	Favorites []string `json:"favorites"`
	Height    int      `json:"height"`
	Weight    int      `json:"weight"`
	Weekday   []string `json:"weekday,omitempty"`
	StartTime []string `json:"startTime,omitempty"`
}

// NewRoutineRequest builds the recommend payload from a committed profile
// plus the extra body measurements collected in the routine dialog.
func NewRoutineRequest(p *domain.Profile, height, weight int) RoutineRequest {
	loc := p.Location()
	return RoutineRequest{
		Gender:    p.Gender().DisplayName(),
		Age:       string(p.AgeGroup()),
		Latitude:  loc.Lat,
		Longitude: loc.Lng,
		Favorites: p.Favorites(),
		Height:    height,
		Weight:    weight,
		Weekday:   p.Weekday(),
		StartTime: p.StartTime(),
	}
}

// RoutineSlot is one scheduled workout in the weekly plan.
type RoutineSlot struct {
	DayKo        string `json:"dayKo"`
	DayEn        string `json:"dayEn"`
	Time         string `json:"time"`
	Place        string `json:"place"`
	Type         string `json:"type"`
	DistanceWalk string `json:"distanceWalk"`
	Tag          string `json:"tag"`
}

// Routine is the generated weekly workout plan.
type Routine struct {
	PlanRange         string        `json:"planRange"`
	Subtitle          string        `json:"subtitle"`
	Focus             string        `json:"focus"`
	TargetSessions    int           `json:"targetSessions"`
	TotalMinutes      int           `json:"totalMinutes"`
	EstimatedCalories int           `json:"estimatedCalories"`
	Schedule          []RoutineSlot `json:"schedule"`
}

// RoutineResponse is the full recommend response envelope.
type RoutineResponse struct {
	Envelope
	Data Routine `json:"data"`
}
