package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"climatewise/internal/model"
	"climatewise/internal/service"
	"climatewise/internal/transport/rest/middleware"
)

// ProfileHandler handles profile and account endpoints
type ProfileHandler struct {
	authSvc    *service.AuthService
	accountSvc *service.AccountService
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(authSvc *service.AuthService, accountSvc *service.AccountService) *ProfileHandler {
	return &ProfileHandler{authSvc: authSvc, accountSvc: accountSvc}
}

// Get handles GET /v1/profile
func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	profile, err := h.authSvc.GetProfile(r.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			writeError(w, http.StatusNotFound, "profile not found")
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, profile)
}

// Update handles PUT /v1/profile
func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	var update model.ProfileUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	profile, err := h.authSvc.UpdateProfile(r.Context(), userID, &update)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			writeError(w, http.StatusNotFound, "profile not found")
		case errors.Is(err, service.ErrInvalidProfile):
			writeError(w, http.StatusBadRequest, err.Error())
		default:
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	writeJSON(w, http.StatusOK, profile)
}

// DeleteAccount handles DELETE /v1/account
func (h *ProfileHandler) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	if err := h.accountSvc.Delete(r.Context(), userID); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
