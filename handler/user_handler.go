package handler

import (
	"database/sql"
	"drone-spot-api/common"
	"drone-spot-api/model"
	"drone-spot-api/service"
	"encoding/json"
	"errors"
	"net/http"
)

type UserHandler struct {
	service *service.UserService
}

func NewUserHandler(service *service.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// Register godoc
// @Summary      Create a new user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        request body model.RegisterRequest true "Registration payload"
// @Success      201 {object} model.User
// @Failure      400 {object} common.AppError
// @Router       /register [post]
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) *common.AppError {
	var req model.RegisterRequest
	if !common.ValidateAndDecode(w, r, &req) {
		return nil
	}

	user, err := h.service.Register(&req)
	if err != nil {
		if errors.Is(err, service.ErrLoginIDTaken) {
			return common.NewAppError(http.StatusConflict, "This id is already taken", err)
		}
		return common.NewAppError(http.StatusInternalServerError, "Could not create user", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(user)

	return nil
}

// DeleteUser godoc
// @Summary      Delete a user account (self or admin)
// @Description  Removes the account and every session belonging to it
// @Tags         users
// @Security     BearerAuth
// @Param        uid path string true "User UID"
// @Success      204
// @Failure      403 {object} common.AppError
// @Router       /api/user/{uid} [delete]
func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) *common.AppError {
	uid := r.PathValue("uid")

	callerUID, ok := r.Context().Value(UserUIDKey).(string)
	if !ok {
		return common.NewAppError(http.StatusUnauthorized, "Invalid user identity in token", nil)
	}
	callerLevel, _ := r.Context().Value(UserLevelKey).(int)

	if err := h.service.DeleteUser(uid, callerUID, callerLevel); err != nil {
		if errors.Is(err, service.ErrNotAccountOwner) {
			return common.NewAppError(http.StatusForbidden, "You cannot delete this account", err)
		}
		if err == sql.ErrNoRows {
			return common.NewAppError(http.StatusNotFound, "User not found", nil)
		}
		return common.NewAppError(http.StatusInternalServerError, "Could not delete user", err)
	}

	w.WriteHeader(http.StatusNoContent)
	return nil
}

// GetProfile godoc
// @Summary      Get a user's public profile
// @Description  Anonymous callers are allowed; is_following is only filled for logged-in viewers
// @Tags         users
// @Produce      json
// @Param        uid path string true "User UID"
// @Success      200 {object} model.Profile
// @Failure      404 {object} common.AppError
// @Router       /profile/{uid} [get]
func (h *UserHandler) GetProfile(w http.ResponseWriter, r *http.Request) *common.AppError {
	uid := r.PathValue("uid")

	// Anonymous viewers simply get no is_following field.
	viewerUID, _ := r.Context().Value(UserUIDKey).(string)

	profile, err := h.service.GetProfile(uid, viewerUID)
	if err != nil {
		if err == sql.ErrNoRows {
			return common.NewAppError(http.StatusNotFound, "User not found", nil)
		}
		return common.NewAppError(http.StatusInternalServerError, "Could not retrieve profile", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(profile)

	return nil
}
