package http

import (
	"net/http"

	"github.com/MKhiriev/go-recipe-catalog/internal/logger"
	"github.com/MKhiriev/go-recipe-catalog/internal/utils"
	"github.com/MKhiriev/go-recipe-catalog/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req registerRequest
	if !decodeBody(w, r, &req) {
		return
	}

	user, err := h.services.UserService.CreateUser(ctx, models.User{
		Email:    req.Email,
		Name:     req.Name,
		Password: req.Password,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Info().Int64("user_id", user.UserID).Msg("user registered")
	utils.WriteJSON(w, toUserResponse(user), http.StatusCreated)
}

func (h *Handler) obtainToken(w http.ResponseWriter, r *http.Request) {
	var req tokenRequest
	if !decodeBody(w, r, &req) {
		return
	}

	token, err := h.services.AuthService.IssueToken(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, tokenResponse{Token: token.Key}, http.StatusOK)
}

func (h *Handler) getProfile(w http.ResponseWriter, r *http.Request) {
	user, ok := utils.GetUserFromContext(r.Context())
	if !ok {
		writeDetail(w, msgNotAuthenticated, http.StatusUnauthorized)
		return
	}

	utils.WriteJSON(w, toUserResponse(user), http.StatusOK)
}

func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		writeDetail(w, msgNotAuthenticated, http.StatusUnauthorized)
		return
	}

	var update models.UserUpdate
	if !decodeBody(w, r, &update) {
		return
	}

	user, err := h.services.UserService.UpdateProfile(ctx, userID, update)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, toUserResponse(user), http.StatusOK)
}
