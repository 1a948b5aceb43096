package middleware

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubVerifier map[string]string

func (s stubVerifier) VerifyToken(token string) (string, error) {
	if id, ok := s[token]; ok {
		return id, nil
	}
	return "", errors.New("unknown token")
}

func newApp(log *logrus.Logger) *fiber.App {
	app := fiber.New()
	app.Use(Preflight())
	app.Use(CORS())
	app.Use(RequestLogger(log))
	app.Post("/private", RequireUser(stubVerifier{"good": "user-1"}, log), func(c *fiber.Ctx) error {
		return c.SendString(UserID(c))
	})
	app.Post("/boom", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusInternalServerError)
	})
	return app
}

func TestPreflight(t *testing.T) {
	log, _ := test.NewNullLogger()
	app := newApp(log)

	req := httptest.NewRequest(http.MethodOptions, "/private", nil)
	req.Header.Set("Origin", "https://app.example.com")
	req.Header.Set("Access-Control-Request-Method", "POST")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
	assert.Contains(t, resp.Header.Get("Access-Control-Allow-Headers"), "authorization")

	body, _ := io.ReadAll(resp.Body)
	assert.Empty(t, body)
}

func TestRequireUser(t *testing.T) {
	log, _ := test.NewNullLogger()
	app := newApp(log)

	tests := []struct {
		name   string
		header string
		status int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic good", http.StatusUnauthorized},
		{"bad token", "Bearer nope", http.StatusUnauthorized},
		{"good token", "Bearer good", http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/private", nil)
			req.Header.Set("Origin", "https://app.example.com")
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.status, resp.StatusCode)
			assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
			if tt.status == http.StatusOK {
				body, _ := io.ReadAll(resp.Body)
				assert.Equal(t, "user-1", string(body))
			}
		})
	}
}

func TestRequestLogger_LevelsByStatus(t *testing.T) {
	log, hook := test.NewNullLogger()
	app := newApp(log)

	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/boom", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("X-Request-Id"))

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.ErrorLevel, entry.Level)
	assert.Equal(t, 500, entry.Data["status_code"])
	assert.Equal(t, resp.Header.Get("X-Request-Id"), entry.Data["request_id"])

	resp, err = app.Test(httptest.NewRequest(http.MethodPost, "/private", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)
}
