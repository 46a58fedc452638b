package models

// RegisterRequest is the JSON body of POST /register.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the JSON body of POST /login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AnalyzeRequest is the JSON body of POST /analyze. Email is optional: when
// empty the authenticated token subject is used for history tracking.
type AnalyzeRequest struct {
	Text  string `json:"text"`
	Email string `json:"email,omitempty"`
}

// HistoryRequest is the JSON body of POST /history. Email is optional and
// defaults to the authenticated token subject. Emotion and Limit optionally
// narrow the lookup.
type HistoryRequest struct {
	Email   string `json:"email,omitempty"`
	Emotion string `json:"emotion,omitempty"`
	Limit   uint64 `json:"limit,omitempty"`
}
