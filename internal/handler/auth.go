package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dinehall/dinehall/internal/logger"
	"github.com/dinehall/dinehall/internal/service"
	"github.com/dinehall/dinehall/internal/store"
	"github.com/dinehall/dinehall/internal/utils"
	"github.com/dinehall/dinehall/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSONError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	registeredUser, err := h.services.AuthService.Register(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			utils.WriteJSONError(w, "invalid data provided", http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrLoginAlreadyExists):
			log.Err(err).Msg("login already exists")
			utils.WriteJSONError(w, "login already exists", http.StatusConflict)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user registration")
			utils.WriteJSONError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	h.respondWithToken(w, r, registeredUser, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSONError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			utils.WriteJSONError(w, "invalid data provided", http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrNoUserWasFound) || errors.Is(err, service.ErrWrongPassword):
			log.Err(err).Msg("no user was found/wrong password")
			utils.WriteJSONError(w, "invalid login/password", http.StatusUnauthorized)
			return
		case errors.Is(err, service.ErrTooManyLoginAttempts):
			log.Err(err).Msg("login throttled")
			utils.WriteJSONError(w, service.ErrTooManyLoginAttempts.Error(), http.StatusTooManyRequests)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user login")
			utils.WriteJSONError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	log.Debug().Int64("id", foundUser.UserID).Msg("user successfully logged in")

	h.respondWithToken(w, r, foundUser, http.StatusOK)
}

// profile answers GET /api/user/profile with the caller's account record.
func (h *Handler) profile(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.callerID(w, r)
	if !ok {
		return
	}

	user, err := h.services.AuthService.Profile(r.Context(), userID)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	user.Password = ""
	utils.WriteJSON(w, user, http.StatusOK)
}

// respondWithToken issues a session token for the user and writes the auth
// response. The bearer token is duplicated into the "Authorization" header
// for clients that prefer header propagation over body parsing.
func (h *Handler) respondWithToken(w http.ResponseWriter, r *http.Request, user models.User, status int) {
	log := logger.FromRequest(r)

	token, err := h.services.AuthService.CreateToken(r.Context(), user)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		utils.WriteJSONError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	user.Password = ""
	w.Header().Set("Authorization", "Bearer "+token.SignedString)
	utils.WriteJSON(w, models.AuthResponse{Token: token.SignedString, User: user}, status)
}
