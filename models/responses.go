package models

// MessageResponse carries a human-readable success message.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse carries a human-readable error message. Every non-2xx JSON
// response uses this shape.
type ErrorResponse struct {
	Error string `json:"error"`
}

// LoginResponse is the body of a successful POST /login.
type LoginResponse struct {
	Message  string `json:"message"`
	Token    string `json:"token"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// AnalyzeResponse is the body of a successful POST /analyze.
type AnalyzeResponse struct {
	Emotion string `json:"emotion"`
	Tip     string `json:"tip"`
}

// HistoryResponse is the body of a successful POST /history.
type HistoryResponse struct {
	History []HistoryEntry `json:"history"`
}
