package middleware

import (
	"errors"

	"github.com/EnmaSantos/office-snack-app/internal/model"
	"github.com/EnmaSantos/office-snack-app/internal/service"
	appjwt "github.com/EnmaSantos/office-snack-app/pkg/jwt"

	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	tokenKey    = "jwt"
	identityKey = "identity"
)

// IdentityResolver turns a verified token subject into the current caller.
type IdentityResolver interface {
	ResolveIdentity(userID uuid.UUID) (model.Identity, error)
}

type AuthConfig struct {
	Secret     []byte
	CookieName string
}

// RequireAuth verifies the session token from the Authorization header or the
// session cookie, loads the user and stores a model.Identity for handlers.
func RequireAuth(cfg AuthConfig, resolver IdentityResolver) fiber.Handler {
	lookup := "header:" + fiber.HeaderAuthorization
	if cfg.CookieName != "" {
		lookup += ",cookie:" + cfg.CookieName
	}

	return jwtware.New(jwtware.Config{
		SigningKey:  jwtware.SigningKey{JWTAlg: jwtware.HS256, Key: cfg.Secret},
		ContextKey:  tokenKey,
		Claims:      &appjwt.Claims{},
		TokenLookup: lookup,
		AuthScheme:  "Bearer",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if errors.Is(err, jwtware.ErrJWTMissingOrMalformed) {
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Missing or malformed session token"})
			}
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Invalid or expired session token"})
		},
		SuccessHandler: func(c *fiber.Ctx) error {
			token, ok := c.Locals(tokenKey).(*jwt.Token)
			if !ok {
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Invalid session token"})
			}
			claims, ok := token.Claims.(*appjwt.Claims)
			if !ok || claims.UserID == uuid.Nil {
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Invalid session token"})
			}

			identity, err := resolver.ResolveIdentity(claims.UserID)
			if err != nil {
				if errors.Is(err, service.ErrUnauthenticated) {
					return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "User not found"})
				}
				return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to resolve session"})
			}

			c.Locals(identityKey, identity)
			return c.Next()
		},
	})
}

// RequireAdmin rejects authenticated callers without the admin flag.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		identity, ok := CurrentIdentity(c)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Authentication required"})
		}
		if !identity.IsAdmin {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"message": "Forbidden: admin access required"})
		}
		return c.Next()
	}
}

// CurrentIdentity returns the caller stored by RequireAuth.
func CurrentIdentity(c *fiber.Ctx) (model.Identity, bool) {
	identity, ok := c.Locals(identityKey).(model.Identity)
	return identity, ok
}
