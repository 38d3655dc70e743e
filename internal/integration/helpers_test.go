package integration_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/metinatakli/novaflix/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var keysToIgnore = map[string]struct{}{
	"timestamp": {},
	"requestId": {},
}

func prepareRequest(method, path string, body io.Reader, headers map[string]string, cookies []*http.Cookie) (*http.Request, error) {
	req := httptest.NewRequest(method, path, body)

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}

	return req, nil
}

func compareResponse(t testing.TB, body io.Reader, expectedResponse string) {
	var actual map[string]any
	require.NoError(t, json.NewDecoder(body).Decode(&actual))

	cleanMap(actual)

	var expected map[string]any
	require.NoError(t, json.Unmarshal([]byte(expectedResponse), &expected))

	// ignore indetermistic fields while comparing
	opts := cmpopts.IgnoreMapEntries(func(k string, _ any) bool {
		_, ok := keysToIgnore[k]
		return ok
	})

	if diff := cmp.Diff(expected, actual, opts); diff != "" {
		t.Errorf("response mismatch (-want +got):\n%s", diff)
	}
}

func cleanMap(m map[string]any) {
	for k := range m {
		if _, ok := keysToIgnore[k]; ok {
			delete(m, k)
			continue
		}
		if nested, ok := m[k].(map[string]any); ok {
			cleanMap(nested)
		}
	}
}

// do sends a request through the application router and returns the
// recorded response.
func (app *TestApp) do(t testing.TB, method, path, body string, cookies []*http.Cookie) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req, err := prepareRequest(method, path, reader, nil, cookies)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	app.App.Routes().ServeHTTP(rec, req)

	return rec.Result()
}

// viewerCookies starts a fresh session and returns its cookie.
func (app *TestApp) viewerCookies(t testing.TB) []*http.Cookie {
	t.Helper()

	res := app.do(t, http.MethodGet, "/cart", "", nil)
	defer res.Body.Close()

	require.Equal(t, http.StatusOK, res.StatusCode)

	cookies := res.Cookies()
	require.NotEmpty(t, cookies, "no session cookie set")

	return cookies
}

// adminCookies starts a fresh session and logs it in as admin.
func (app *TestApp) adminCookies(t testing.TB) []*http.Cookie {
	t.Helper()

	body := `{"username": "` + TestAdminUsername + `", "password": "` + TestAdminPassword + `"}`

	res := app.do(t, http.MethodPost, "/admin/login", body, app.viewerCookies(t))
	defer res.Body.Close()

	require.Equal(t, http.StatusNoContent, res.StatusCode)

	cookies := res.Cookies()
	require.NotEmpty(t, cookies, "session token was not renewed")

	return cookies
}

func (app *TestApp) addToCart(t testing.TB, cookies []*http.Cookie, movieIds ...string) {
	t.Helper()

	for _, id := range movieIds {
		res := app.do(t, http.MethodPost, "/cart", `{"movieId": "`+id+`"}`, cookies)
		res.Body.Close()

		require.Equal(t, http.StatusOK, res.StatusCode)
	}
}

func cartKeys(t testing.TB, app *TestApp) []string {
	t.Helper()

	keys, err := app.RedisClient.Keys(context.Background(), "cart:*").Result()
	require.NoError(t, err)

	return keys
}

func decodeBody(t testing.TB, res *http.Response, dst any) {
	t.Helper()

	require.NoError(t, json.NewDecoder(res.Body).Decode(dst))
}

func assertUnfiltered(t testing.TB, res *http.Response) {
	t.Helper()

	var view api.BrowseResponse
	decodeBody(t, res, &view)

	assert.Nil(t, view.SelectedGenre)
	assert.Nil(t, view.Results)
	require.NotNil(t, view.Rows)
	assert.Len(t, *view.Rows, 3)
}
