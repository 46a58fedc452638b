package http

import (
	"net/http"
)

const liveMessage = "Mental Health Analyzer API is running with Gemini tips."

// live is a plain-text liveness check at the API root.
func (h *Handler) live(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte(liveMessage))
}
