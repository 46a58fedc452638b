package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/wellmind/wellmind/internal/logger"
	"github.com/wellmind/wellmind/internal/service"
	"github.com/wellmind/wellmind/internal/store"
	"github.com/wellmind/wellmind/internal/utils"
	"github.com/wellmind/wellmind/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Error: "Invalid JSON was passed"}, http.StatusBadRequest)
		return
	}

	_, err := h.services.AuthService.RegisterUser(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("registration with missing fields")
			utils.WriteJSON(w, models.ErrorResponse{Error: "All fields are required"}, http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrEmailAlreadyExists):
			log.Err(err).Str("email", req.Email).Msg("email already registered")
			utils.WriteJSON(w, models.ErrorResponse{Error: "User already exists"}, http.StatusBadRequest)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user registration")
			utils.WriteJSON(w, models.ErrorResponse{Error: http.StatusText(http.StatusInternalServerError)}, http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, models.MessageResponse{Message: "User registered successfully"}, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Error: "Invalid JSON was passed"}, http.StatusBadRequest)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("login with missing fields")
			utils.WriteJSON(w, models.ErrorResponse{Error: "All fields are required"}, http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrNoUserWasFound):
			log.Err(err).Str("email", req.Email).Msg("no user was found")
			utils.WriteJSON(w, models.ErrorResponse{Error: "User not found"}, http.StatusNotFound)
			return
		case errors.Is(err, service.ErrWrongPassword):
			log.Err(err).Str("email", req.Email).Msg("wrong password")
			utils.WriteJSON(w, models.ErrorResponse{Error: "Incorrect password"}, http.StatusUnauthorized)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user login")
			utils.WriteJSON(w, models.ErrorResponse{Error: http.StatusText(http.StatusInternalServerError)}, http.StatusInternalServerError)
			return
		}
	}

	log.Debug().Int64("id", foundUser.UserID).Msg("user successfully logged in")

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		utils.WriteJSON(w, models.ErrorResponse{Error: http.StatusText(http.StatusInternalServerError)}, http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.LoginResponse{
		Message:  "Login successful",
		Token:    token.String(),
		Username: foundUser.Username,
		Email:    foundUser.Email,
	}, http.StatusOK)
}
