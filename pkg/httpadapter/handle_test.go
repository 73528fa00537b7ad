package httpadapter

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSON(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()

	JSON(w, r, http.StatusAccepted, map[string]string{"status": "queued"})

	assert.Equal(t, http.StatusAccepted, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"status":"queued"}`, w.Body.String())
}

func TestError(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()

	Error(w, r, http.StatusInternalServerError, "Failed to fetch trends", errors.New("boom"))

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Failed to fetch trends", body.Error)
}

func TestDecode(t *testing.T) {
	var v struct {
		Action string `json:"action"`
	}

	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"action":"refresh"}`))
	require.NoError(t, Decode(httptest.NewRecorder(), r, &v))
	assert.Equal(t, "refresh", v.Action)

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{`))
	assert.Error(t, Decode(httptest.NewRecorder(), r, &v))
}
