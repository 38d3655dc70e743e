package app

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/metinatakli/novaflix/api"
	"github.com/metinatakli/novaflix/internal/admin"
	"github.com/metinatakli/novaflix/internal/auth"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2025, time.March, 1, 12, 0, 0, 0, time.UTC)

func newTestApplication(t *testing.T, opts ...func(*Application)) *Application {
	t.Helper()

	cfg := Config{
		Env: "test",
		Admin: AdminConfig{
			Username: auth.DefaultUsername,
			Password: auth.DefaultPassword,
		},
		Session: SessionConfig{
			IdleTimeout: 20 * time.Minute,
			Lifetime:    time.Hour,
		},
	}

	app, err := NewApp(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)), nil)
	require.NoError(t, err)

	app.admin = admin.NewManager(admin.WithClock(func() time.Time { return fixedNow }))

	for _, opt := range opts {
		opt(app)
	}

	return app
}

// testClient drives the full router and carries the session cookie from one
// request to the next like a browser would.
type testClient struct {
	t       *testing.T
	handler http.Handler
	cookies map[string]*http.Cookie
}

func newTestClient(t *testing.T, app *Application) *testClient {
	return &testClient{
		t:       t,
		handler: app.Routes(),
		cookies: make(map[string]*http.Cookie),
	}
}

// do sends body as JSON. A string body is sent verbatim.
func (c *testClient) do(method, url string, body any) *httptest.ResponseRecorder {
	c.t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = strings.NewReader(b)
	default:
		jsonData, err := json.Marshal(b)
		require.NoError(c.t, err)
		reader = bytes.NewReader(jsonData)
	}

	r := httptest.NewRequest(method, url, reader)
	if reader != nil {
		r.Header.Set("Content-Type", "application/json")
	}

	for _, cookie := range c.cookies {
		r.AddCookie(cookie)
	}

	w := httptest.NewRecorder()
	c.handler.ServeHTTP(w, r)

	for _, cookie := range w.Result().Cookies() {
		c.cookies[cookie.Name] = cookie
	}

	return w
}

func (c *testClient) loginAdmin() {
	c.t.Helper()

	w := c.do(http.MethodPost, "/admin/login", api.AdminLoginRequest{
		Username: auth.DefaultUsername,
		Password: auth.DefaultPassword,
	})
	require.Equal(c.t, http.StatusNoContent, w.Code)
}

func decodeResponse[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()

	var resp T
	err := json.NewDecoder(w.Body).Decode(&resp)
	require.NoError(t, err, "failed to decode response")

	return resp
}

func checkErrorResponse(t *testing.T, w *httptest.ResponseRecorder, tt struct {
	wantStatus     int
	wantErrMessage string
}) {
	t.Helper()

	if tt.wantStatus >= 200 && tt.wantStatus < 300 {
		return
	}

	switch tt.wantStatus {
	case http.StatusUnprocessableEntity:
		var validationResp api.ValidationErrorResponse
		if err := json.NewDecoder(w.Body).Decode(&validationResp); err != nil {
			t.Fatalf("Failed to decode validation error response: %v", err)
		}

		errorSet := make(map[string]bool)
		for _, vErr := range validationResp.ValidationErrors {
			errorSet[vErr.Issue] = true
		}

		if !errorSet[tt.wantErrMessage] {
			t.Errorf("Expected validation error message '%s' not found in response", tt.wantErrMessage)
		}

	default:
		var errorResp api.ErrorResponse
		if err := json.NewDecoder(w.Body).Decode(&errorResp); err != nil {
			t.Fatalf("Failed to decode error response: %v", err)
		}

		if tt.wantErrMessage != "" && errorResp.Message != tt.wantErrMessage {
			t.Errorf("Error message = %v, want %v", errorResp.Message, tt.wantErrMessage)
		}
	}
}

func ptr[T any](v T) *T {
	return &v
}
