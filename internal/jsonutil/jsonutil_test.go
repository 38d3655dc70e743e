package jsonutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestReadJSON(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    payload
		wantErr string
	}{
		{
			name: "valid body",
			body: `{"name": "Dark", "count": 2}`,
			want: payload{Name: "Dark", Count: 2},
		},
		{
			name:    "empty body",
			body:    ``,
			wantErr: "body must not be empty",
		},
		{
			name:    "badly formed",
			body:    `{"name": }`,
			wantErr: "body contains badly-formed JSON (at character",
		},
		{
			name:    "truncated",
			body:    `{"name": "Dark"`,
			wantErr: "body contains badly-formed JSON",
		},
		{
			name:    "wrong type",
			body:    `{"count": "two"}`,
			wantErr: `body contains incorrect JSON type for field "count"`,
		},
		{
			name:    "unknown key",
			body:    `{"genre": "Crime"}`,
			wantErr: `body contains unknown key "genre"`,
		},
		{
			name:    "two values",
			body:    `{"name": "a"}{"name": "b"}`,
			wantErr: "body must only contain a single JSON value",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			w := httptest.NewRecorder()

			var got payload
			err := ReadJSON(w, r, &got)

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWriteJSON(t *testing.T) {
	w := httptest.NewRecorder()

	err := WriteJSON(w, http.StatusCreated, payload{Name: "Dark"}, http.Header{"X-Test": []string{"1"}})
	require.NoError(t, err)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.Equal(t, "1", w.Header().Get("X-Test"))

	var got payload
	require.NoError(t, json.NewDecoder(w.Body).Decode(&got))
	assert.Equal(t, "Dark", got.Name)
}
