package models

// ChatRequest is the payload coming from the frontend into /chat.
type ChatRequest struct {
	Message string `json:"message"` // user's message for one turn
}

// ChatResponse is what the chat handler returns to the frontend.
type ChatResponse struct {
	Response string `json:"response"` // natural-language reply
}
