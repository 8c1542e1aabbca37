package api

// Request and response bodies are the task module's service types; the
// HTTP layer only adds the error envelope.

// ErrorResponse is the JSON error envelope.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}
