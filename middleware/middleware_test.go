package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"deeper-dungeons/middleware"
)

func newTestApp(token string) *fiber.App {
	app := fiber.New()
	app.Use(middleware.RequestLogMiddleware())
	app.Use(middleware.AccessTokenMiddleware(token))
	app.Get("/ping", func(c *fiber.Ctx) error {
		return c.SendString("pong")
	})
	return app
}

func TestAccessTokenDisabledWhenEmpty(t *testing.T) {
	resp, err := newTestApp("").Test(httptest.NewRequest(http.MethodGet, "/ping", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestAccessToken(t *testing.T) {
	app := newTestApp("s3cret")

	cases := []struct {
		name   string
		header string
		want   int
	}{
		{"missing", "", http.StatusUnauthorized},
		{"wrong", "Bearer nope", http.StatusUnauthorized},
		{"bearer", "Bearer s3cret", http.StatusOK},
		{"raw", "s3cret", http.StatusOK},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/ping", nil)
			if tc.header != "" {
				req.Header.Set(fiber.HeaderAuthorization, tc.header)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tc.want, resp.StatusCode)
		})
	}
}

func TestRequestIDIsGenerated(t *testing.T) {
	resp, err := newTestApp("").Test(httptest.NewRequest(http.MethodGet, "/ping", nil))
	require.NoError(t, err)
	assert.Len(t, resp.Header.Get(middleware.RequestIDHeader), 36)
}

func TestRequestIDIsReused(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(middleware.RequestIDHeader, "abc-123")

	resp, err := newTestApp("").Test(req)
	require.NoError(t, err)
	assert.Equal(t, "abc-123", resp.Header.Get(middleware.RequestIDHeader))
}

func TestRequestLogRendersErrors(t *testing.T) {
	app := newTestApp("")
	app.Get("/teapot", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusTeapot, "short and stout")
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/teapot", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusTeapot, resp.StatusCode)
}
