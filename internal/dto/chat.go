package dto

// ChatRequest is a single free-text question to the farming assistant.
type ChatRequest struct {
	Message string `json:"message" binding:"required"`
}

// ChatResponse carries the assistant's reply.
type ChatResponse struct {
	Message string `json:"message"`
}
