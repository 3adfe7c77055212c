package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/umd-esiea/umd-api/internal/api/metrics"
	"github.com/umd-esiea/umd-api/internal/core/domain"
	"github.com/umd-esiea/umd-api/internal/core/ports"
)

type ImageHandler struct {
	service ports.ImageService
}

func NewImageHandler(service ports.ImageService) *ImageHandler {
	return &ImageHandler{service: service}
}

// List handles GET /images.
//
// @Summary      List images
// @Description  Paginated images of the caller, or of the given user.
// @Tags         images
// @Produce      json
// @Security     ApiKeyAuth
// @Param        page    query     int     false  "Page number (default 1)"
// @Param        limit   query     int     false  "Page size (default 10, at most 100)"
// @Param        sort    query     string  false  "Sort field (default createdAt)"
// @Param        order   query     string  false  "asc or desc (default desc)"
// @Param        select  query     string  false  "Comma-separated fields to return"
// @Param        search  query     string  false  "Case-insensitive text in name, description or url"
// @Param        user    query     string  false  "Owner id (default caller)"
// @Success      200     {object}  imagePageResponse
// @Failure      400     {object}  errorResponse
// @Failure      404     {object}  errorResponse
// @Router       /images [get]
func (h *ImageHandler) List(c echo.Context) error {
	caller, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var in ports.ListImagesInput
	if err := echo.QueryParamsBinder(c).
		Int("page", &in.Page).
		Int("limit", &in.Limit).
		String("sort", &in.Sort).
		String("order", &in.Order).
		String("search", &in.Search).
		String("user", &in.User).
		BindError(); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "page and limit must be integers")
	}
	if sel := c.QueryParam("select"); sel != "" {
		in.Select = strings.Split(sel, ",")
	}

	res, err := h.service.List(c.Request().Context(), caller, in)
	if err != nil {
		return err
	}

	items := make([]any, 0, len(res.Items))
	for _, img := range res.Items {
		items = append(items, projectImage(img, res.Select))
	}
	return c.JSON(http.StatusOK, imagePageResponse{pageMeta: toPageMeta(res.Page, len(items)), Items: items})
}

// Get handles GET /images/:id.
//
// @Summary      Get an image
// @Tags         images
// @Produce      json
// @Security     ApiKeyAuth
// @Param        id   path      string  true  "Image id"
// @Success      200  {object}  imageView
// @Failure      404  {object}  errorResponse
// @Router       /images/{id} [get]
func (h *ImageHandler) Get(c echo.Context) error {
	img, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toImageView(img))
}

// Create handles POST /images. The caller becomes the owner.
//
// @Summary      Create an image
// @Tags         images
// @Accept       json
// @Produce      json
// @Security     ApiKeyAuth
// @Param        body  body      createImageRequest  true  "Image"
// @Success      200   {object}  idResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /images [post]
func (h *ImageHandler) Create(c echo.Context) error {
	caller, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req createImageRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	id, err := h.service.Create(c.Request().Context(), caller, ports.CreateImageInput{
		Name:        req.Name,
		Description: req.Description,
		URL:         req.URL,
	})
	if err != nil {
		return err
	}

	metrics.ResourcesCreatedTotal.WithLabelValues(domain.ResourceImage).Inc()
	return c.JSON(http.StatusOK, idResponse{Success: true, ID: id})
}

// Update handles PUT /images/:id.
//
// @Summary      Update an image
// @Tags         images
// @Accept       json
// @Produce      json
// @Security     ApiKeyAuth
// @Param        id    path      string              true  "Image id"
// @Param        body  body      updateImageRequest  true  "Fields to change"
// @Success      200   {object}  idResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /images/{id} [put]
func (h *ImageHandler) Update(c echo.Context) error {
	var req updateImageRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	img, err := h.service.Update(c.Request().Context(), c.Param("id"), domain.ImagePatch{
		Name:        req.Name,
		Description: req.Description,
		URL:         req.URL,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, idResponse{Success: true, ID: img.ID})
}

// Delete handles DELETE /images/:id.
//
// @Summary      Delete an image
// @Tags         images
// @Produce      json
// @Security     ApiKeyAuth
// @Param        id   path      string  true  "Image id"
// @Success      200  {object}  successResponse
// @Failure      404  {object}  errorResponse
// @Router       /images/{id} [delete]
func (h *ImageHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, successResponse{Success: true})
}
