package handler

import (
	"drone-spot-api/common"
	"drone-spot-api/logger"
	"drone-spot-api/model"
	"drone-spot-api/service"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

type AuthHandler struct {
	auth *service.AuthService
}

func NewAuthHandler(auth *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// authErrorToAppError maps a service failure kind onto an HTTP response.
// Client-facing messages stay generic; the kind only reaches the logs.
func authErrorToAppError(err error) *common.AppError {
	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		return common.NewAppError(http.StatusUnauthorized, "Invalid id or password", err)
	case errors.Is(err, service.ErrInvalidToken),
		errors.Is(err, service.ErrTokenExpired),
		errors.Is(err, service.ErrSessionNotFound):
		return common.NewAppError(http.StatusUnauthorized, "Invalid or expired token", err)
	case errors.Is(err, service.ErrStoreUnavailable):
		return common.NewAppError(http.StatusServiceUnavailable, "Service temporarily unavailable", err)
	default:
		return common.NewAppError(http.StatusInternalServerError, "Internal server error", err)
	}
}

// Login godoc
// @Summary      Log in with id and password
// @Description  Verifies credentials and issues an access/refresh token pair for the device
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body model.LoginRequest true "Login payload"
// @Success      200 {object} service.TokenPair
// @Failure      401 {object} common.AppError
// @Router       /login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) *common.AppError {
	var req model.LoginRequest
	if !common.ValidateAndDecode(w, r, &req) {
		return nil
	}

	log := logger.Log.WithFields(logrus.Fields{
		"login_id":  req.LoginID,
		"device_id": req.DeviceID,
	})
	log.Info("Login request received")

	pair, user, err := h.auth.Login(req.LoginID, req.Password, req.DeviceID)
	if err != nil {
		return authErrorToAppError(err)
	}

	response := struct {
		*service.TokenPair
		User *model.User `json:"user"`
	}{pair, user}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(response)

	return nil
}

// Refresh godoc
// @Summary      Exchange a refresh token for a new access token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body model.RefreshRequest true "Refresh payload"
// @Success      200 {object} map[string]interface{}
// @Failure      401 {object} common.AppError
// @Router       /api/token/refresh [post]
func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) *common.AppError {
	var req model.RefreshRequest
	if !common.ValidateAndDecode(w, r, &req) {
		return nil
	}

	accessToken, expiresAt, err := h.auth.Refresh(req.RefreshToken, req.DeviceID)
	if err != nil {
		return authErrorToAppError(err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(struct {
		AccessToken  string    `json:"access_token"`
		AccessExpire time.Time `json:"access_token_expire"`
	}{accessToken, expiresAt})

	return nil
}

// Logout godoc
// @Summary      End the session on one device
// @Description  Deletes the refresh session for the calling user and device; idempotent
// @Tags         auth
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request body model.LogoutRequest true "Logout payload"
// @Success      204
// @Router       /api/logout [post]
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) *common.AppError {
	var req model.LogoutRequest
	if !common.ValidateAndDecode(w, r, &req) {
		return nil
	}

	userUID, ok := r.Context().Value(UserUIDKey).(string)
	if !ok {
		return common.NewAppError(http.StatusUnauthorized, "Invalid user identity in token", nil)
	}

	if err := h.auth.Logout(userUID, req.DeviceID); err != nil {
		return authErrorToAppError(err)
	}

	w.WriteHeader(http.StatusNoContent)
	return nil
}
