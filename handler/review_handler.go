package handler

import (
	"database/sql"
	"drone-spot-api/common"
	"drone-spot-api/model"
	"drone-spot-api/service"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
)

type ReviewHandler struct {
	service *service.ReviewService
}

func NewReviewHandler(service *service.ReviewService) *ReviewHandler {
	return &ReviewHandler{service: service}
}

// CreateReview godoc
// @Summary      Post a review on a spot
// @Tags         reviews
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request body model.CreateReviewRequest true "Review payload"
// @Success      201 {object} model.Review
// @Router       /api/reviews [post]
func (h *ReviewHandler) CreateReview(w http.ResponseWriter, r *http.Request) *common.AppError {
	var req model.CreateReviewRequest
	if !common.ValidateAndDecode(w, r, &req) {
		return nil
	}

	userUID, ok := r.Context().Value(UserUIDKey).(string)
	if !ok {
		return common.NewAppError(http.StatusUnauthorized, "Invalid user identity in token", nil)
	}

	review, err := h.service.CreateReview(userUID, &req)
	if err != nil {
		return common.NewAppError(http.StatusInternalServerError, "Could not create review", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(review)

	return nil
}

// ListReviews godoc
// @Summary      List reviews for a spot
// @Tags         reviews
// @Produce      json
// @Param        id path int true "Spot ID"
// @Success      200 {array} model.Review
// @Router       /spots/{id}/reviews [get]
func (h *ReviewHandler) ListReviews(w http.ResponseWriter, r *http.Request) *common.AppError {
	spotID, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		return common.NewAppError(http.StatusBadRequest, "Invalid spot id", err)
	}

	reviews, err := h.service.ListReviewsBySpot(spotID)
	if err != nil {
		return common.NewAppError(http.StatusInternalServerError, "Could not retrieve reviews", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(reviews)

	return nil
}

// DeleteReview godoc
// @Summary      Delete a review (writer or admin)
// @Tags         reviews
// @Security     BearerAuth
// @Param        id path int true "Review ID"
// @Success      204
// @Failure      403 {object} common.AppError
// @Router       /api/reviews/{id} [delete]
func (h *ReviewHandler) DeleteReview(w http.ResponseWriter, r *http.Request) *common.AppError {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		return common.NewAppError(http.StatusBadRequest, "Invalid review id", err)
	}

	userUID, ok := r.Context().Value(UserUIDKey).(string)
	if !ok {
		return common.NewAppError(http.StatusUnauthorized, "Invalid user identity in token", nil)
	}
	level, _ := r.Context().Value(UserLevelKey).(int)

	if err := h.service.DeleteReview(id, userUID, level); err != nil {
		if errors.Is(err, service.ErrNotReviewOwner) {
			return common.NewAppError(http.StatusForbidden, "You cannot delete this review", err)
		}
		if err == sql.ErrNoRows {
			return common.NewAppError(http.StatusNotFound, "Review not found", nil)
		}
		return common.NewAppError(http.StatusInternalServerError, "Could not delete review", err)
	}

	w.WriteHeader(http.StatusNoContent)
	return nil
}
