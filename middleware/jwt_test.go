package middleware

import (
	"net/http/httptest"
	"testing"

	"codelearn/config"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func protectedApp() *fiber.App {
	app := fiber.New()
	app.Get("/protected", JWTMiddleware, func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"userId": c.Locals("userId")})
	})
	app.Get("/open", OptionalJWTMiddleware, func(c *fiber.Ctx) error {
		_, signedIn := c.Locals("userId").(uint)
		return c.JSON(fiber.Map{"signed_in": signedIn})
	})
	return app
}

func TestJWTRoundTrip(t *testing.T) {
	config.AppConfig = &config.Config{JWTKey: "test-secret"}

	token, err := GenerateJWT(42, "Jane Doe", "STUDENT", "jane@example.com")
	require.NoError(t, err)

	app := protectedApp()

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestJWTMissingToken(t *testing.T) {
	config.AppConfig = &config.Config{JWTKey: "test-secret"}

	app := protectedApp()

	resp, err := app.Test(httptest.NewRequest("GET", "/protected", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestJWTWrongSigningKey(t *testing.T) {
	config.AppConfig = &config.Config{JWTKey: "other-secret"}
	token, err := GenerateJWT(42, "Jane Doe", "STUDENT", "jane@example.com")
	require.NoError(t, err)

	config.AppConfig = &config.Config{JWTKey: "test-secret"}
	app := protectedApp()

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestOptionalJWTAllowsAnonymous(t *testing.T) {
	config.AppConfig = &config.Config{JWTKey: "test-secret"}

	app := protectedApp()

	resp, err := app.Test(httptest.NewRequest("GET", "/open", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
