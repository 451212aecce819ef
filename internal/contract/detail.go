package contract

// Transport is one way of reaching the facility, e.g. bus/subway/walk with a
// line name and travel time in minutes.
type Transport struct {
	TransportType string `json:"transportType"`
	TransportName string `json:"transportName"`
	TransportTime int    `json:"transportTime"`
}

// ProgramDetail is the body of GET /api/v1/programs/{programId}.
type ProgramDetail struct {
	ProgramName     string      `json:"programName"`
	ProgramTarget   string      `json:"programTarget"`
	Weekday         []string    `json:"weekday"`
	StartTime       string      `json:"startTime"`
	Price           int         `json:"price"`
	ReservationURL  string      `json:"reservationUrl"`
	Category        string      `json:"category"`
	SubCategory     string      `json:"subCategory"`
	Facility        string      `json:"facility"`
	FacilityAddress string      `json:"facilityAddress"`
	TransportData   []Transport `json:"transportData"`
}

// DetailResponse is the full detail response envelope.
type DetailResponse struct {
	Envelope
	Data ProgramDetail `json:"data"`
}
