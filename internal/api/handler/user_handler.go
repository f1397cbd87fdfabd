package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/metaflowia/user-api/internal/api/metrics"
	"github.com/metaflowia/user-api/internal/api/middleware"
	"github.com/metaflowia/user-api/internal/core/ports"
)

type UserHandler struct {
	registration ports.RegistrationService
	users        ports.UserService
}

func NewUserHandler(registration ports.RegistrationService, users ports.UserService) *UserHandler {
	return &UserHandler{registration: registration, users: users}
}

// Register creates a new user account.
//
// @Summary      Register a new user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "User registration details"
// @Success      201   {object}  userResponse
// @Failure      400   {object}  map[string]string
// @Router       /register [post]
func (h *UserHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.registration.Register(c.Request().Context(), ports.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		FullName: req.FullName,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		return err
	}

	metrics.RegistrationsTotal.WithLabelValues("standard").Inc()
	return c.JSON(http.StatusCreated, toUserResponse(user))
}

// RegisterGuest provisions a numbered guest account with placeholder
// credentials.
//
// @Summary      Register a guest account
// @Tags         users
// @Produce      json
// @Success      201  {object}  userResponse
// @Router       /register_guest [post]
func (h *UserHandler) RegisterGuest(c echo.Context) error {
	user, err := h.registration.RegisterGuest(c.Request().Context())
	if err != nil {
		return err
	}

	metrics.RegistrationsTotal.WithLabelValues("guest").Inc()
	return c.JSON(http.StatusCreated, toUserResponse(user))
}

// Me returns the account behind the presented bearer token.
//
// @Summary      Current user
// @Tags         users
// @Produce      json
// @Success      200  {object}  userResponse
// @Failure      401  {object}  map[string]string
// @Router       /me [get]
func (h *UserHandler) Me(c echo.Context) error {
	user := middleware.UserFromContext(c)
	if user == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
	}
	return c.JSON(http.StatusOK, toUserResponse(user))
}

// List returns users in insertion order. Admin only.
//
// @Summary      List users
// @Tags         users
// @Produce      json
// @Param        offset  query     int  false  "Pagination offset"
// @Param        limit   query     int  false  "Page size (default 20, max 100)"
// @Success      200  {array}   userResponse
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /users [get]
func (h *UserHandler) List(c echo.Context) error {
	offset := parseQueryInt(c, "offset", 0)
	limit := parseQueryInt(c, "limit", 0)

	ctx := c.Request().Context()
	users, err := h.users.List(ctx, offset, limit)
	if err != nil {
		return err
	}

	total, err := h.users.Count(ctx)
	if err != nil {
		return err
	}
	c.Response().Header().Set("X-Total-Count", strconv.FormatInt(total, 10))

	return c.JSON(http.StatusOK, toUserResponses(users))
}

func parseQueryInt(c echo.Context, name string, fallback int64) int64 {
	raw := c.QueryParam(name)
	if raw == "" {
		return fallback
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return fallback
	}
	return n
}
