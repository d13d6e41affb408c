package handler

import (
	"drone-spot-api/common"
	"drone-spot-api/service"
	"encoding/json"
	"errors"
	"net/http"
)

type FollowHandler struct {
	service *service.FollowService
}

func NewFollowHandler(service *service.FollowService) *FollowHandler {
	return &FollowHandler{service: service}
}

// Follow godoc
// @Summary      Follow a user
// @Tags         follows
// @Security     BearerAuth
// @Param        uid path string true "UID of the user to follow"
// @Success      204
// @Router       /api/follows/{uid} [post]
func (h *FollowHandler) Follow(w http.ResponseWriter, r *http.Request) *common.AppError {
	followerUID, ok := r.Context().Value(UserUIDKey).(string)
	if !ok {
		return common.NewAppError(http.StatusUnauthorized, "Invalid user identity in token", nil)
	}

	if err := h.service.Follow(followerUID, r.PathValue("uid")); err != nil {
		if errors.Is(err, service.ErrSelfFollow) {
			return common.NewAppError(http.StatusBadRequest, "You cannot follow yourself", err)
		}
		return common.NewAppError(http.StatusInternalServerError, "Could not follow user", err)
	}

	w.WriteHeader(http.StatusNoContent)
	return nil
}

// Unfollow godoc
// @Summary      Unfollow a user
// @Tags         follows
// @Security     BearerAuth
// @Param        uid path string true "UID of the user to unfollow"
// @Success      204
// @Router       /api/follows/{uid} [delete]
func (h *FollowHandler) Unfollow(w http.ResponseWriter, r *http.Request) *common.AppError {
	followerUID, ok := r.Context().Value(UserUIDKey).(string)
	if !ok {
		return common.NewAppError(http.StatusUnauthorized, "Invalid user identity in token", nil)
	}

	if err := h.service.Unfollow(followerUID, r.PathValue("uid")); err != nil {
		return common.NewAppError(http.StatusInternalServerError, "Could not unfollow user", err)
	}

	w.WriteHeader(http.StatusNoContent)
	return nil
}

// ListFollowers godoc
// @Summary      List a user's followers
// @Tags         follows
// @Produce      json
// @Param        uid path string true "User UID"
// @Success      200 {array} model.Follow
// @Router       /profile/{uid}/followers [get]
func (h *FollowHandler) ListFollowers(w http.ResponseWriter, r *http.Request) *common.AppError {
	follows, err := h.service.ListFollowers(r.PathValue("uid"))
	if err != nil {
		return common.NewAppError(http.StatusInternalServerError, "Could not retrieve followers", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(follows)

	return nil
}

// ListFollowing godoc
// @Summary      List who a user follows
// @Tags         follows
// @Produce      json
// @Param        uid path string true "User UID"
// @Success      200 {array} model.Follow
// @Router       /profile/{uid}/following [get]
func (h *FollowHandler) ListFollowing(w http.ResponseWriter, r *http.Request) *common.AppError {
	follows, err := h.service.ListFollowing(r.PathValue("uid"))
	if err != nil {
		return common.NewAppError(http.StatusInternalServerError, "Could not retrieve following list", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(follows)

	return nil
}
