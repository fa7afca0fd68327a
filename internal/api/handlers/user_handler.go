package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/reddital/reddital-be/internal/auth"
	"github.com/reddital/reddital-be/internal/models"
	"github.com/reddital/reddital-be/internal/services"
	"github.com/rs/zerolog/log"
)

// UserHandler handles HTTP requests for user management.
type UserHandler struct {
	service  services.UserServiceProvider
	validate *validator.Validate
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(service services.UserServiceProvider) *UserHandler {
	return &UserHandler{
		service:  service,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// SignupPayload defines the structure for registration requests.
type SignupPayload struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginPayload defines the structure for login requests.
type LoginPayload struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Signup handles new user registration.
func (h *UserHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var payload SignupPayload
	if !h.decode(w, r, &payload) {
		return
	}

	cred, err := h.service.Signup(payload.Username, payload.Email, payload.Password)
	if err != nil {
		log.Warn().Err(err).Str("username", payload.Username).Msg("Failed to sign up user")
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, cred)
}

// Login handles user authentication.
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var payload LoginPayload
	if !h.decode(w, r, &payload) {
		return
	}

	cred, err := h.service.Login(payload.Username, payload.Password)
	if err != nil {
		log.Warn().Err(err).Str("username", payload.Username).Msg("Failed login attempt")
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, cred)
}

// GetMe returns the user resolved from the request's authentication key.
func (h *UserHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	cred, ok := auth.CurrentUser(r.Context())
	if !ok {
		log.Error().Msg("Could not retrieve current user from context")
		http.Error(w, "could not retrieve current user", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, cred)
}

// GetByUsername handles public lookup of a user by username.
func (h *UserHandler) GetByUsername(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")

	cred, err := h.service.FindUserByUsername(username)
	if err != nil {
		log.Warn().Err(err).Str("username", username).Msg("Failed to get user by username")
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, cred)
}

// UpdateProfile handles updating the authenticated user's email.
func (h *UserHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	cred, ok := auth.CurrentUser(r.Context())
	if !ok {
		http.Error(w, "could not retrieve current user", http.StatusInternalServerError)
		return
	}

	var payload struct {
		Email string `json:"email" validate:"required,email"`
	}
	if !h.decode(w, r, &payload) {
		return
	}

	updated, err := h.service.UpdateProfile(cred.Username, payload.Email)
	if err != nil {
		log.Error().Err(err).Str("username", cred.Username).Msg("Failed to update profile")
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

// ChangePassword handles changing the authenticated user's password.
func (h *UserHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	cred, ok := auth.CurrentUser(r.Context())
	if !ok {
		http.Error(w, "could not retrieve current user", http.StatusInternalServerError)
		return
	}

	var payload struct {
		NewPassword string `json:"newPassword" validate:"required"`
	}
	if !h.decode(w, r, &payload) {
		return
	}

	updated, err := h.service.ChangePassword(cred.Username, payload.NewPassword)
	if err != nil {
		log.Error().Err(err).Str("username", cred.Username).Msg("Failed to change password")
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

// decode parses and validates a JSON request body, answering 400 itself
// on failure.
func (h *UserHandler) decode(w http.ResponseWriter, r *http.Request, payload any) bool {
	if err := json.NewDecoder(r.Body).Decode(payload); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return false
	}
	if err := h.validate.Struct(payload); err != nil {
		http.Error(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return false
	}
	return true
}

// respondError translates an error kind into its HTTP status and writes
// the failure message as plain text. Unexpected errors become opaque
// 500s so internals never leak.
func respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, models.ErrDuplicateEntity):
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
	case errors.Is(err, models.ErrEntityNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, models.ErrUnauthorized):
		http.Error(w, err.Error(), http.StatusUnauthorized)
	case errors.Is(err, models.ErrBadParameters):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
