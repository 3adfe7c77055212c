package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/umd-esiea/umd-api/internal/api/metrics"
	"github.com/umd-esiea/umd-api/internal/core/domain"
	"github.com/umd-esiea/umd-api/internal/core/ports"
)

type CourseHandler struct {
	service ports.CourseService
}

func NewCourseHandler(service ports.CourseService) *CourseHandler {
	return &CourseHandler{service: service}
}

// List handles GET /courses.
//
// @Summary      List courses
// @Tags         courses
// @Produce      json
// @Security     ApiKeyAuth
// @Success      200  {array}   courseView
// @Failure      401  {object}  errorResponse
// @Router       /courses [get]
func (h *CourseHandler) List(c echo.Context) error {
	courses, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}

	out := make([]courseView, 0, len(courses))
	for _, course := range courses {
		out = append(out, toCourseView(course))
	}
	return c.JSON(http.StatusOK, out)
}

// Get handles GET /courses/:id.
//
// @Summary      Get a course
// @Tags         courses
// @Produce      json
// @Security     ApiKeyAuth
// @Param        id   path      string  true  "Course id"
// @Success      200  {object}  courseView
// @Failure      404  {object}  errorResponse
// @Router       /courses/{id} [get]
func (h *CourseHandler) Get(c echo.Context) error {
	course, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCourseView(course))
}

// Create handles POST /courses.
//
// @Summary      Create a course
// @Tags         courses
// @Accept       json
// @Produce      json
// @Security     ApiKeyAuth
// @Param        body  body      createCourseRequest  true  "Course"
// @Success      201   {object}  idResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /courses [post]
func (h *CourseHandler) Create(c echo.Context) error {
	var req createCourseRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	id, err := h.service.Create(c.Request().Context(), ports.CreateCourseInput{
		Name:        req.Name,
		Description: req.Description,
		Content:     req.Content,
		Tools:       req.Tools,
	})
	if err != nil {
		return err
	}

	metrics.ResourcesCreatedTotal.WithLabelValues(domain.ResourceCourse).Inc()
	return c.JSON(http.StatusCreated, idResponse{Success: true, ID: id})
}

// Update handles PUT /courses/:id.
//
// @Summary      Update a course
// @Tags         courses
// @Accept       json
// @Produce      json
// @Security     ApiKeyAuth
// @Param        id    path      string               true  "Course id"
// @Param        body  body      updateCourseRequest  true  "Fields to change"
// @Success      200   {object}  idResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /courses/{id} [put]
func (h *CourseHandler) Update(c echo.Context) error {
	var req updateCourseRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	course, err := h.service.Update(c.Request().Context(), c.Param("id"), domain.CoursePatch{
		Name:        req.Name,
		Description: req.Description,
		Content:     req.Content,
		Tools:       req.Tools,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, idResponse{Success: true, ID: course.ID})
}

// Delete handles DELETE /courses/:id.
//
// @Summary      Delete a course
// @Tags         courses
// @Produce      json
// @Security     ApiKeyAuth
// @Param        id   path      string  true  "Course id"
// @Success      200  {object}  successResponse
// @Failure      404  {object}  errorResponse
// @Router       /courses/{id} [delete]
func (h *CourseHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, successResponse{Success: true})
}
