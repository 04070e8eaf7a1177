package models

// MessageResponse is returned for every handled failure.
type MessageResponse struct {
	Message string `json:"message"`
}

type HealthResponse struct {
	It string `json:"it"`
}

func ErrorResponse(message string) MessageResponse {
	return MessageResponse{Message: message}
}
