package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/metaflowia/user-api/internal/api/metrics"
	"github.com/metaflowia/user-api/internal/core/domain"
	"github.com/metaflowia/user-api/internal/core/ports"
)

const bearerTokenType = "bearer"

type AuthHandler struct {
	auth ports.AuthService
}

func NewAuthHandler(auth ports.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Login authenticates a user and returns a bearer token.
//
// @Summary      Login with username or email
// @Tags         auth
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        username  formData  string  true  "Username or email"
// @Param        password  formData  string  true  "Password"
// @Success      200  {object}  tokenResponse
// @Failure      401  {object}  map[string]string
// @Router       /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	// OAuth2 password-form shape: the "username" field carries either the
	// username or the email address.
	identifier := c.FormValue("username")
	password := c.FormValue("password")

	token, err := h.auth.Login(c.Request().Context(), identifier, password)
	if err != nil {
		if err == domain.ErrInvalidCredentials {
			metrics.LoginsTotal.WithLabelValues("invalid").Inc()
		} else {
			metrics.LoginsTotal.WithLabelValues("error").Inc()
		}
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, tokenResponse{AccessToken: token, TokenType: bearerTokenType})
}

// LoginAsGuest issues a token for the shared guest subject. No user record
// is created or consulted.
//
// @Summary      Anonymous guest login
// @Tags         auth
// @Produce      json
// @Success      200  {object}  tokenResponse
// @Router       /guest [post]
func (h *AuthHandler) LoginAsGuest(c echo.Context) error {
	token, err := h.auth.LoginAsGuest(c.Request().Context())
	if err != nil {
		return err
	}

	metrics.GuestTokensTotal.Inc()
	return c.JSON(http.StatusOK, tokenResponse{AccessToken: token, TokenType: bearerTokenType})
}
