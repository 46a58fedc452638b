package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/wellmind/wellmind/internal/logger"
	"github.com/wellmind/wellmind/internal/service"
	"github.com/wellmind/wellmind/internal/utils"
	"github.com/wellmind/wellmind/models"
)

func (h *Handler) history(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	// the request body is optional, an empty body means "everything"
	var req models.HistoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Error: "Invalid JSON was passed"}, http.StatusBadRequest)
		return
	}

	email := req.Email
	if tokenEmail, ok := utils.GetEmailFromContext(ctx); ok {
		email = tokenEmail
	}

	entries, err := h.services.AnalyzerService.History(ctx, email, models.HistoryFilter{
		Emotion: req.Emotion,
		Limit:   req.Limit,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("history requested without email")
			utils.WriteJSON(w, models.ErrorResponse{Error: "Email is required"}, http.StatusBadRequest)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during history lookup")
			utils.WriteJSON(w, models.ErrorResponse{Error: http.StatusText(http.StatusInternalServerError)}, http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, models.HistoryResponse{History: entries}, http.StatusOK)
}
