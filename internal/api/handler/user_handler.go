package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/umd-esiea/umd-api/internal/api/metrics"
	"github.com/umd-esiea/umd-api/internal/core/domain"
	"github.com/umd-esiea/umd-api/internal/core/ports"
)

const (
	defaultUserPage  = 1
	defaultUserLimit = 10
)

type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// Register creates a new user account.
//
// @Summary      Register a new user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "User registration details"
// @Success      200   {object}  registerResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      429   {object}  errorResponse
// @Router       /users/register [post]
func (h *UserHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	user, err := h.service.Register(c.Request().Context(), ports.RegisterInput{
		Firstname: req.Firstname,
		Lastname:  req.Lastname,
		Username:  req.Username,
		Email:     req.Email,
		Password:  req.Password,
	})
	if err != nil {
		return err
	}

	metrics.ResourcesCreatedTotal.WithLabelValues(domain.ResourceUser).Inc()
	return c.JSON(http.StatusOK, registerResponse{Message: "user registered successfully", ID: user.ID})
}

// Login authenticates a user by username or email and returns an access token.
//
// @Summary      Login
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      429   {object}  errorResponse
// @Router       /users/login [post]
func (h *UserHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	tkn, user, err := h.service.Login(c.Request().Context(), ports.LoginInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, loginResponse{Success: true, User: toUserView(user), AccessToken: tkn})
}

// Update applies a partial update to a user. Callers may update themselves;
// admins may update anyone.
//
// @Summary      Update a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     ApiKeyAuth
// @Param        id    path      string             true  "User id"
// @Param        body  body      updateUserRequest  true  "Fields to change"
// @Success      201   {object}  userResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /users/update/{id} [put]
func (h *UserHandler) Update(c echo.Context) error {
	caller, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req updateUserRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	user, err := h.service.Update(c.Request().Context(), caller, c.Param("id"), ports.UpdateUserInput{
		Firstname: req.Firstname,
		Lastname:  req.Lastname,
		Username:  req.Username,
		Email:     req.Email,
		Password:  req.Password,
		Role:      req.Role,
		Status:    req.Status,
	})
	if err != nil {
		// this route keeps its historical status codes
		switch {
		case errors.Is(err, domain.ErrForbidden):
			return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
		case errors.Is(err, domain.ErrNotFound):
			return echo.NewHTTPError(http.StatusConflict, "user does not exist")
		}
		return err
	}

	return c.JSON(http.StatusCreated, userResponse{Success: true, User: toUserView(user)})
}

// Get returns a user to itself or to an admin.
//
// @Summary      Get a user
// @Tags         users
// @Produce      json
// @Security     ApiKeyAuth
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  userResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /users/{id} [get]
func (h *UserHandler) Get(c echo.Context) error {
	caller, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	user, err := h.service.Get(c.Request().Context(), caller, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, userResponse{Success: true, User: toUserView(user)})
}

// List returns one page of users. Admin only.
//
// @Summary      List users
// @Tags         users
// @Produce      json
// @Security     ApiKeyAuth
// @Param        page   query     int  false  "Page number (default 1)"
// @Param        limit  query     int  false  "Page size (default 10)"
// @Success      200    {object}  userPageResponse
// @Failure      400    {object}  errorResponse
// @Failure      403    {object}  errorResponse
// @Failure      404    {object}  errorResponse
// @Router       /users [get]
func (h *UserHandler) List(c echo.Context) error {
	page, limit := defaultUserPage, defaultUserLimit
	if err := echo.QueryParamsBinder(c).
		Int("page", &page).
		Int("limit", &limit).
		BindError(); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "page and limit must be integers")
	}

	res, err := h.service.List(c.Request().Context(), page, limit)
	if err != nil {
		return err
	}

	items := make([]userView, 0, len(res.Items))
	for _, u := range res.Items {
		items = append(items, toUserView(u))
	}
	return c.JSON(http.StatusOK, userPageResponse{pageMeta: toPageMeta(res.Page, len(items)), Items: items})
}
