package handlers_test

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"deeper-dungeons/handlers"
	"deeper-dungeons/services"
)

func TestErrorHandlerStatuses(t *testing.T) {
	cases := []struct {
		err    error
		code   int
		status string
	}{
		{fmt.Errorf("lookup: %w", services.ErrMonsterNotFound), http.StatusNotFound, "NOT_FOUND"},
		{services.ErrImageDownload, http.StatusBadRequest, "BAD_REQUEST"},
		{fmt.Errorf("%w: limit is 8 bytes", services.ErrImageTooLarge), http.StatusRequestEntityTooLarge, "REQUEST_ENTITY_TOO_LARGE"},
		{fiber.NewError(http.StatusUnauthorized, "invalid access token"), http.StatusUnauthorized, "UNAUTHORIZED"},
		{fmt.Errorf("disk full"), http.StatusInternalServerError, "INTERNAL_SERVER_ERROR"},
	}
	for _, tc := range cases {
		t.Run(tc.status, func(t *testing.T) {
			app := fiber.New(fiber.Config{ErrorHandler: handlers.ErrorHandler})
			app.Get("/", func(c *fiber.Ctx) error { return tc.err })

			resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
			require.NoError(t, err)
			assert.Equal(t, tc.code, resp.StatusCode)

			raw, err := io.ReadAll(resp.Body)
			require.NoError(t, err)
			var body handlers.ErrorResponse
			require.NoError(t, json.Unmarshal(raw, &body))
			assert.Equal(t, tc.status, body.Status)
		})
	}
}
