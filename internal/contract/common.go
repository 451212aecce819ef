package contract

// Envelope is the outer shape of every FitFinder API response.
// Status is "success" on the happy path; Message carries a user-facing
// explanation on failures and is preferred over generated fallbacks.
type Envelope struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// StatusSuccess is the Envelope.Status value for a successful call.
const StatusSuccess = "success"
