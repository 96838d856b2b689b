package dto

// MessageResponse is the body of generic failures.
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
