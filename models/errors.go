// ABOUTME: Shared error response shape for all BFF endpoints

package models

// ErrorResponse is the uniform error body: a stable machine-readable
// kind plus a user-facing French message.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}
