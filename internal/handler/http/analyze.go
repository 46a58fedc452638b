package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/wellmind/wellmind/internal/logger"
	"github.com/wellmind/wellmind/internal/service"
	"github.com/wellmind/wellmind/internal/utils"
	"github.com/wellmind/wellmind/models"
)

func (h *Handler) analyze(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Error: "Invalid JSON was passed"}, http.StatusBadRequest)
		return
	}

	// the token is the authority on who is asking; the body email is kept
	// for older clients that still send it
	email := req.Email
	if tokenEmail, ok := utils.GetEmailFromContext(ctx); ok {
		email = tokenEmail
	}

	result, err := h.services.AnalyzerService.Analyze(ctx, email, req.Text)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyInput):
			log.Err(err).Msg("empty text submitted for analysis")
			utils.WriteJSON(w, models.ErrorResponse{Error: "Empty input!"}, http.StatusBadRequest)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during analysis")
			utils.WriteJSON(w, models.ErrorResponse{Error: http.StatusText(http.StatusInternalServerError)}, http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, result, http.StatusOK)
}
