package errors

// ErrorResponse represents a standardized error response for endpoints that
// report through plain errors instead of the service envelope.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}
