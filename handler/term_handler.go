package handler

import (
	"drone-spot-api/common"
	"drone-spot-api/model"
	"drone-spot-api/service"
	"encoding/json"
	"net/http"
)

type TermHandler struct {
	service *service.TermService
}

func NewTermHandler(service *service.TermService) *TermHandler {
	return &TermHandler{service: service}
}

// CreateTerm godoc
// @Summary      Publish a terms-of-service document (admin only)
// @Tags         terms
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request body model.CreateTermRequest true "Term payload"
// @Success      201 {object} model.Term
// @Failure      403 {object} common.AppError
// @Router       /api/terms [post]
func (h *TermHandler) CreateTerm(w http.ResponseWriter, r *http.Request) *common.AppError {
	var req model.CreateTermRequest
	if !common.ValidateAndDecode(w, r, &req) {
		return nil
	}

	term, err := h.service.CreateTerm(&req)
	if err != nil {
		return common.NewAppError(http.StatusInternalServerError, "Could not create term", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(term)

	return nil
}

// ListTerms godoc
// @Summary      List all terms-of-service documents
// @Tags         terms
// @Produce      json
// @Success      200 {array} model.Term
// @Router       /terms [get]
func (h *TermHandler) ListTerms(w http.ResponseWriter, r *http.Request) *common.AppError {
	terms, err := h.service.ListTerms()
	if err != nil {
		return common.NewAppError(http.StatusInternalServerError, "Could not retrieve terms", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(terms)

	return nil
}
