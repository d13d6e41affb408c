package handler

import (
	"database/sql"
	"drone-spot-api/common"
	"drone-spot-api/model"
	"drone-spot-api/service"
	"encoding/json"
	"net/http"
	"strconv"
)

type CourseHandler struct {
	service *service.CourseService
}

func NewCourseHandler(service *service.CourseService) *CourseHandler {
	return &CourseHandler{service: service}
}

// CreateCourse godoc
// @Summary      Publish a flight course (admin only)
// @Tags         courses
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request body model.CreateCourseRequest true "Course payload"
// @Success      201 {object} model.Course
// @Router       /api/courses [post]
func (h *CourseHandler) CreateCourse(w http.ResponseWriter, r *http.Request) *common.AppError {
	var req model.CreateCourseRequest
	if !common.ValidateAndDecode(w, r, &req) {
		return nil
	}

	course, err := h.service.CreateCourse(&req)
	if err != nil {
		return common.NewAppError(http.StatusInternalServerError, "Could not create course", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(course)

	return nil
}

// ListCourses godoc
// @Summary      List all flight courses
// @Tags         courses
// @Produce      json
// @Success      200 {array} model.Course
// @Router       /courses [get]
func (h *CourseHandler) ListCourses(w http.ResponseWriter, r *http.Request) *common.AppError {
	courses, err := h.service.ListCourses()
	if err != nil {
		return common.NewAppError(http.StatusInternalServerError, "Could not retrieve courses", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(courses)

	return nil
}

// GetCourse godoc
// @Summary      Get one flight course with its waypoints
// @Tags         courses
// @Produce      json
// @Param        id path int true "Course ID"
// @Success      200 {object} model.Course
// @Failure      404 {object} common.AppError
// @Router       /courses/{id} [get]
func (h *CourseHandler) GetCourse(w http.ResponseWriter, r *http.Request) *common.AppError {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		return common.NewAppError(http.StatusBadRequest, "Invalid course id", err)
	}

	course, err := h.service.GetCourse(id)
	if err != nil {
		if err == sql.ErrNoRows {
			return common.NewAppError(http.StatusNotFound, "Course not found", nil)
		}
		return common.NewAppError(http.StatusInternalServerError, "Could not retrieve course", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(course)

	return nil
}
