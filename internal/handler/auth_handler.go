package handler

import (
	"errors"
	"log/slog"
	"time"

	"github.com/EnmaSantos/office-snack-app/internal/service"
	"github.com/EnmaSantos/office-snack-app/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	authService service.AuthService
	secret      []byte
	cookieName  string
	log         *slog.Logger
}

func NewAuthHandler(authService service.AuthService, secret []byte, cookieName string, log *slog.Logger) *AuthHandler {
	return &AuthHandler{authService: authService, secret: secret, cookieName: cookieName, log: log}
}

type ValidateTokenRequest struct {
	Token string `json:"token"`
}

// ValidateToken reports who a session token belongs to.
//
// @Summary Validate a session token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body handler.ValidateTokenRequest true "Token"
// @Success 200 {object} model.Identity
// @Failure 400 {object} handler.ErrorResponse
// @Failure 401 {object} handler.ErrorResponse
// @Router /api/v1/auth/validate-token [post]
func (h *AuthHandler) ValidateToken(c *fiber.Ctx) error {
	var req ValidateTokenRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "invalid request body")
	}
	if req.Token == "" {
		return fail(c, fiber.StatusBadRequest, "token is required")
	}

	claims, err := jwt.ValidateToken(h.secret, req.Token)
	if err != nil {
		return fail(c, fiber.StatusUnauthorized, err.Error())
	}
	id, err := h.authService.ResolveIdentity(claims.UserID)
	if err != nil {
		if errors.Is(err, service.ErrUnauthenticated) {
			return fail(c, fiber.StatusUnauthorized, err.Error())
		}
		return respondError(c, h.log, err)
	}
	return c.JSON(id)
}

// SignOut expires the session cookie.
//
// @Summary Sign out
// @Tags auth
// @Success 204
// @Router /api/v1/auth/signout [post]
func (h *AuthHandler) SignOut(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     h.cookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return c.SendStatus(fiber.StatusNoContent)
}
