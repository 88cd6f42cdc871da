package auth

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupApp(apiKey string) *fiber.App {
	app := fiber.New()
	app.Use(New(Config{ApiKey: apiKey}))
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	return app
}

func TestAuth(t *testing.T) {
	t.Run("ValidKey", func(t *testing.T) {
		app := setupApp("secret")
		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set(HeaderName, "secret")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	})

	t.Run("WrongKey", func(t *testing.T) {
		app := setupApp("secret")
		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set(HeaderName, "wrong")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, 401, resp.StatusCode)
	})

	t.Run("MissingKey", func(t *testing.T) {
		app := setupApp("secret")
		req := httptest.NewRequest("GET", "/", nil)

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, 401, resp.StatusCode)
	})

	t.Run("EmptyKeyDisablesAuth", func(t *testing.T) {
		app := setupApp("")
		req := httptest.NewRequest("GET", "/", nil)

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	})
}
