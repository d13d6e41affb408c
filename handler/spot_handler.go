package handler

import (
	"database/sql"
	"drone-spot-api/common"
	"drone-spot-api/logger"
	"drone-spot-api/model"
	"drone-spot-api/service"
	"encoding/json"
	"net/http"
	"strconv"
)

type SpotHandler struct {
	service *service.SpotService
}

func NewSpotHandler(service *service.SpotService) *SpotHandler {
	return &SpotHandler{service: service}
}

// CreateSpot godoc
// @Summary      Register a new drone spot (admin only)
// @Tags         spots
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request body model.CreateSpotRequest true "Spot payload"
// @Success      201 {object} model.Spot
// @Router       /api/spots [post]
func (h *SpotHandler) CreateSpot(w http.ResponseWriter, r *http.Request) *common.AppError {
	var req model.CreateSpotRequest
	if !common.ValidateAndDecode(w, r, &req) {
		return nil
	}

	logger.Log.WithField("name", req.Name).Info("Create spot request received")

	spot, err := h.service.CreateSpot(&req)
	if err != nil {
		return common.NewAppError(http.StatusInternalServerError, "Could not create spot", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(spot)

	return nil
}

// ListSpots godoc
// @Summary      List all drone spots
// @Tags         spots
// @Produce      json
// @Success      200 {array} model.Spot
// @Router       /spots [get]
func (h *SpotHandler) ListSpots(w http.ResponseWriter, r *http.Request) *common.AppError {
	spots, err := h.service.ListSpots()
	if err != nil {
		return common.NewAppError(http.StatusInternalServerError, "Could not retrieve spots", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(spots)

	return nil
}

// GetSpot godoc
// @Summary      Get one drone spot
// @Tags         spots
// @Produce      json
// @Param        id path int true "Spot ID"
// @Success      200 {object} model.Spot
// @Failure      404 {object} common.AppError
// @Router       /spots/{id} [get]
func (h *SpotHandler) GetSpot(w http.ResponseWriter, r *http.Request) *common.AppError {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		return common.NewAppError(http.StatusBadRequest, "Invalid spot id", err)
	}

	spot, err := h.service.GetSpot(id)
	if err != nil {
		if err == sql.ErrNoRows {
			return common.NewAppError(http.StatusNotFound, "Spot not found", nil)
		}
		return common.NewAppError(http.StatusInternalServerError, "Could not retrieve spot", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(spot)

	return nil
}

// LikeSpot godoc
// @Summary      Like a spot
// @Tags         spots
// @Security     BearerAuth
// @Param        id path int true "Spot ID"
// @Success      204
// @Router       /api/spots/{id}/like [post]
func (h *SpotHandler) LikeSpot(w http.ResponseWriter, r *http.Request) *common.AppError {
	return h.setLike(w, r, true)
}

// UnlikeSpot godoc
// @Summary      Remove a like from a spot
// @Tags         spots
// @Security     BearerAuth
// @Param        id path int true "Spot ID"
// @Success      204
// @Router       /api/spots/{id}/like [delete]
func (h *SpotHandler) UnlikeSpot(w http.ResponseWriter, r *http.Request) *common.AppError {
	return h.setLike(w, r, false)
}

func (h *SpotHandler) setLike(w http.ResponseWriter, r *http.Request, like bool) *common.AppError {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		return common.NewAppError(http.StatusBadRequest, "Invalid spot id", err)
	}

	userUID, ok := r.Context().Value(UserUIDKey).(string)
	if !ok {
		return common.NewAppError(http.StatusUnauthorized, "Invalid user identity in token", nil)
	}

	if like {
		err = h.service.LikeSpot(id, userUID)
	} else {
		err = h.service.UnlikeSpot(id, userUID)
	}
	if err != nil {
		return common.NewAppError(http.StatusInternalServerError, "Could not update like", err)
	}

	w.WriteHeader(http.StatusNoContent)
	return nil
}
