package endpoints

// Endpoints groups every endpoint served over HTTP.
type Endpoints struct {
	TimetableEndpoint TimetableEndpoint
}
