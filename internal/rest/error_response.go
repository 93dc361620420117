package rest

// ErrorResponse is the JSON error body returned by handlers.
type ErrorResponse struct {
	Error string `json:"error"`
}
