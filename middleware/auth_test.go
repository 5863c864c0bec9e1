package middleware

import (
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

func memberClaims(isAdmin, isAprovado bool) jwt.MapClaims {
	return jwt.MapClaims{
		"profile_id":  float64(42),
		"name":        "João",
		"is_admin":    isAdmin,
		"is_aprovado": isAprovado,
		"exp":         time.Now().Add(time.Hour).Unix(),
	}
}

func newProtectedApp(handler fiber.Handler) *fiber.App {
	app := fiber.New()
	app.Get("/protected", handler, func(c *fiber.Ctx) error {
		profileID, err := GetProfileID(c)
		if err != nil {
			return err
		}
		return c.JSON(fiber.Map{"profile_id": profileID, "is_admin": IsAdmin(c)})
	})
	return app
}

func TestAuthMiddleware(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)

	t.Run("approved member passes", func(t *testing.T) {
		app := newProtectedApp(AuthMiddleware)

		req := httptest.NewRequest("GET", "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, memberClaims(false, true)))

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	})

	t.Run("unapproved member is forbidden", func(t *testing.T) {
		app := newProtectedApp(AuthMiddleware)

		req := httptest.NewRequest("GET", "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, memberClaims(false, false)))

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, 403, resp.StatusCode)
	})

	t.Run("missing header is unauthorized", func(t *testing.T) {
		app := newProtectedApp(AuthMiddleware)

		resp, err := app.Test(httptest.NewRequest("GET", "/protected", nil))
		require.NoError(t, err)
		assert.Equal(t, 401, resp.StatusCode)
	})

	t.Run("malformed header is unauthorized", func(t *testing.T) {
		app := newProtectedApp(AuthMiddleware)

		req := httptest.NewRequest("GET", "/protected", nil)
		req.Header.Set("Authorization", "Token abc")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, 401, resp.StatusCode)
	})

	t.Run("expired token is unauthorized", func(t *testing.T) {
		app := newProtectedApp(AuthMiddleware)

		claims := memberClaims(false, true)
		claims["exp"] = time.Now().Add(-time.Hour).Unix()

		req := httptest.NewRequest("GET", "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, claims))

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, 401, resp.StatusCode)
	})

	t.Run("token signed with another secret is rejected", func(t *testing.T) {
		app := newProtectedApp(AuthMiddleware)

		token := jwt.NewWithClaims(jwt.SigningMethodHS256, memberClaims(false, true))
		signed, err := token.SignedString([]byte("wrong-secret"))
		require.NoError(t, err)

		req := httptest.NewRequest("GET", "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+signed)

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, 401, resp.StatusCode)
	})
}

func TestOptionalAuthMiddleware(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)

	newListingApp := func() *fiber.App {
		app := fiber.New()
		app.Get("/games", OptionalAuthMiddleware, func(c *fiber.Ctx) error {
			return c.JSON(fiber.Map{"is_admin": IsAdmin(c)})
		})
		return app
	}

	t.Run("anonymous request passes without claims", func(t *testing.T) {
		app := newListingApp()

		resp, err := app.Test(httptest.NewRequest("GET", "/games", nil))
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		var body struct {
			IsAdmin bool `json:"is_admin"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.False(t, body.IsAdmin)
	})

	t.Run("admin token widens the listing", func(t *testing.T) {
		app := newListingApp()

		req := httptest.NewRequest("GET", "/games", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, memberClaims(true, true)))

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		var body struct {
			IsAdmin bool `json:"is_admin"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.True(t, body.IsAdmin)
	})

	t.Run("garbage token never rejects", func(t *testing.T) {
		app := newListingApp()

		req := httptest.NewRequest("GET", "/games", nil)
		req.Header.Set("Authorization", "Bearer not-a-token")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		var body struct {
			IsAdmin bool `json:"is_admin"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.False(t, body.IsAdmin)
	})
}

func TestAdminAuthMiddleware(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)

	t.Run("admin passes", func(t *testing.T) {
		app := newProtectedApp(AdminAuthMiddleware)

		req := httptest.NewRequest("GET", "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, memberClaims(true, true)))

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	})

	t.Run("regular member is forbidden", func(t *testing.T) {
		app := newProtectedApp(AdminAuthMiddleware)

		req := httptest.NewRequest("GET", "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, memberClaims(false, true)))

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, 403, resp.StatusCode)
	})
}

// Auth attached per route must not bleed into routes registered afterwards.
// In particular the admin login has to stay reachable without a member token.
func TestAuthIsRouteScoped(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)

	ok := func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"success": true})
	}

	app := fiber.New()
	api := app.Group("/api")
	api.Get("/profiles/me", AuthMiddleware, ok)
	api.Put("/games/:id", AdminAuthMiddleware, ok)
	api.Post("/admin/login", ok)

	t.Run("admin login needs no token", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("POST", "/api/admin/login", nil))
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	})

	t.Run("protected route still rejects", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/api/profiles/me", nil))
		require.NoError(t, err)
		assert.Equal(t, 401, resp.StatusCode)
	})
}
