package models

// MessageResponse is returned by endpoints that only report success,
// e.g. {"message": "Contact deleted"}.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the body of every non-2xx JSON response.
type ErrorResponse struct {
	Detail string `json:"detail"`
}
