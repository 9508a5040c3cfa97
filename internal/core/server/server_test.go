package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"storefront/internal/core/config"
	"storefront/internal/core/logger"
	"storefront/internal/core/session"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePinger struct{ err error }

func (f fakePinger) Ping(ctx context.Context) error { return f.err }

// TestNew verifies that New creates a Server with the correct configuration.
func TestNew(t *testing.T) {
	cfg := &config.AppConfig{ServerPort: 8080}

	logger.Init("development", "debug")
	srv := New(cfg, fakePinger{})

	require.NotNil(t, srv)
	assert.NotNil(t, srv.App)
	assert.Equal(t, cfg, srv.cfg)
	assert.True(t, srv.App.Config().Immutable, "request values are kept as session keys")
}

func TestHealth(t *testing.T) {
	t.Run("Healthy", func(t *testing.T) {
		srv := New(&config.AppConfig{}, fakePinger{})
		resp, err := srv.App.Test(httptest.NewRequest("GET", "/health", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("StorageDown", func(t *testing.T) {
		srv := New(&config.AppConfig{}, fakePinger{err: errors.New("connection refused")})
		resp, err := srv.App.Test(httptest.NewRequest("GET", "/health", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)

		var body ErrorResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "Storage unavailable", body.Message)
		assert.NotEqual(t, "unknown", body.RayID)
	})
}

func TestSessionHeaderIsEchoed(t *testing.T) {
	srv := New(&config.AppConfig{}, fakePinger{})
	srv.App.Get("/probe", func(c *fiber.Ctx) error { return c.SendString(session.ID(c)) })

	resp, err := srv.App.Test(httptest.NewRequest("GET", "/probe", nil))
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Header.Get(session.Header))
}

func TestErrorHandler_FiberError(t *testing.T) {
	srv := New(&config.AppConfig{}, fakePinger{})
	resp, err := srv.App.Test(httptest.NewRequest("GET", "/does-not-exist", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

// TestServer_Run_Error verifies that Run returns an error when binding fails (e.g., privileged port).
func TestServer_Run_Error(t *testing.T) {
	cfg := &config.AppConfig{ServerPort: 1}
	logger.Init("development", "error")

	srv := New(cfg, fakePinger{})

	errCh := make(chan error)
	go func() {
		errCh <- srv.Run()
	}()

	select {
	case err := <-errCh:
		assert.Error(t, err)
	case <-time.After(1 * time.Second):
		srv.App.Shutdown()
		t.Log("Server unexpectedly started or timed out on Error test")
	}
}
