package middleware

import (
	"errors"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/EnmaSantos/office-snack-app/internal/model"
	"github.com/EnmaSantos/office-snack-app/internal/service"
	appjwt "github.com/EnmaSantos/office-snack-app/pkg/jwt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("middleware-secret")

type stubResolver map[uuid.UUID]model.Identity

func (s stubResolver) ResolveIdentity(id uuid.UUID) (model.Identity, error) {
	if identity, ok := s[id]; ok {
		return identity, nil
	}
	return model.Identity{}, service.ErrUnauthenticated
}

type failingResolver struct{}

func (failingResolver) ResolveIdentity(uuid.UUID) (model.Identity, error) {
	return model.Identity{}, errors.New("db down")
}

func newApp(resolver IdentityResolver) *fiber.App {
	app := fiber.New()
	auth := RequireAuth(AuthConfig{Secret: testSecret, CookieName: "snack_session"}, resolver)
	app.Get("/me", auth, func(c *fiber.Ctx) error {
		identity, _ := CurrentIdentity(c)
		return c.JSON(identity)
	})
	app.Get("/admin", auth, RequireAdmin(), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusNoContent)
	})
	return app
}

func token(t *testing.T, id uuid.UUID, ttl time.Duration) string {
	tok, err := appjwt.GenerateToken(testSecret, id, "x@byui.edu", ttl)
	require.NoError(t, err)
	return tok
}

func TestRequireAuth(t *testing.T) {
	member := model.Identity{UserID: uuid.New(), Email: "m@byui.edu"}
	admin := model.Identity{UserID: uuid.New(), Email: "a@byui.edu", IsAdmin: true}
	app := newApp(stubResolver{member.UserID: member, admin.UserID: admin})

	cases := []struct {
		name   string
		path   string
		header string
		cookie string
		want   int
	}{
		{name: "missing token", path: "/me", want: fiber.StatusUnauthorized},
		{name: "wrong scheme", path: "/me", header: "Token " + token(t, member.UserID, time.Hour), want: fiber.StatusUnauthorized},
		{name: "expired", path: "/me", header: "Bearer " + token(t, member.UserID, -time.Minute), want: fiber.StatusUnauthorized},
		{name: "unknown user", path: "/me", header: "Bearer " + token(t, uuid.New(), time.Hour), want: fiber.StatusUnauthorized},
		{name: "bearer header", path: "/me", header: "Bearer " + token(t, member.UserID, time.Hour), want: fiber.StatusOK},
		{name: "session cookie", path: "/me", cookie: token(t, member.UserID, time.Hour), want: fiber.StatusOK},
		{name: "member on admin route", path: "/admin", header: "Bearer " + token(t, member.UserID, time.Hour), want: fiber.StatusForbidden},
		{name: "admin on admin route", path: "/admin", header: "Bearer " + token(t, admin.UserID, time.Hour), want: fiber.StatusNoContent},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", tc.path, nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			if tc.cookie != "" {
				req.Header.Set("Cookie", "snack_session="+tc.cookie)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)
			defer resp.Body.Close() //nolint: errcheck
			assert.Equal(t, tc.want, resp.StatusCode)
		})
	}
}

func TestRequireAuth_ForeignSignature(t *testing.T) {
	app := newApp(stubResolver{})
	tok, err := appjwt.GenerateToken([]byte("someone-else"), uuid.New(), "x@byui.edu", time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/me", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close() //nolint: errcheck
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestRequireAuth_ResolverFailure(t *testing.T) {
	app := newApp(failingResolver{})
	req := httptest.NewRequest("GET", "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token(t, uuid.New(), time.Hour))
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close() //nolint: errcheck
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
}
