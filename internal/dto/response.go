package dto

// Envelope is the uniform response body every endpoint returns, success
// and failure alike.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// NewSuccessResponse wraps payload data in the uniform envelope.
func NewSuccessResponse(message string, data any) Envelope {
	return Envelope{Success: true, Message: message, Data: data}
}

// NewErrorResponse builds the uniform failure envelope. Failures never
// carry data.
func NewErrorResponse(message string) Envelope {
	return Envelope{Success: false, Message: message}
}
