package dto

// ErrorResponse is the uniform failure envelope: every non-2xx response
// carries at least a message.
type ErrorResponse struct {
	Message string `json:"message"`
	Detail  string `json:"detail,omitempty"`
}

// MessageResponse is the envelope for plain confirmation messages.
type MessageResponse struct {
	Message string `json:"message"`
}
