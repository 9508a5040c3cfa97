package session

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupApp() *fiber.App {
	app := fiber.New()
	app.Use(New())
	app.Get("/whoami", func(c *fiber.Ctx) error {
		return c.SendString(ID(c))
	})
	return app
}

func TestMiddleware_KeepsValidID(t *testing.T) {
	app := setupApp()

	req := httptest.NewRequest("GET", "/whoami", nil)
	req.Header.Set(Header, "session-abc-123")
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, "session-abc-123", resp.Header.Get(Header))
}

func TestMiddleware_MintsIDWhenMissing(t *testing.T) {
	app := setupApp()

	resp, err := app.Test(httptest.NewRequest("GET", "/whoami", nil))
	require.NoError(t, err)

	_, parseErr := uuid.Parse(resp.Header.Get(Header))
	assert.NoError(t, parseErr)
}

func TestMiddleware_ReplacesMalformedID(t *testing.T) {
	app := setupApp()

	req := httptest.NewRequest("GET", "/whoami", nil)
	req.Header.Set(Header, "bad id with spaces")
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.NotEqual(t, "bad id with spaces", resp.Header.Get(Header))
}

func TestMiddleware_IDSurvivesLaterRequests(t *testing.T) {
	var seen []string
	app := fiber.New()
	app.Use(New())
	app.Get("/whoami", func(c *fiber.Ctx) error {
		seen = append(seen, ID(c), UserID(c))
		return nil
	})

	first := httptest.NewRequest("GET", "/whoami", nil)
	first.Header.Set(Header, "session-aaaaaaaa")
	first.Header.Set(UserHeader, "user-1")

	second := httptest.NewRequest("GET", "/whoami?page=2", nil)
	second.Header.Set("Accept-Language", "es-CO,es;q=0.9,en;q=0.8")
	second.Header.Set("X-Forwarded-For", "203.0.113.7, 198.51.100.2")
	second.Header.Set(Header, "session-bbbbbbbbbbbbbbbb")
	second.Header.Set(UserHeader, "user-22222")

	third := httptest.NewRequest("GET", "/whoami", nil)
	third.Header.Set(Header, "zzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzz")

	for _, req := range []*http.Request{first, second, third} {
		_, err := app.Test(req)
		require.NoError(t, err)
	}

	assert.Equal(t, []string{
		"session-aaaaaaaa", "user-1",
		"session-bbbbbbbbbbbbbbbb", "user-22222",
		"zzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzz", "",
	}, seen)
}
