package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MohamedElashri/ostap/internal/config"
	"github.com/MohamedElashri/ostap/internal/logging"
	"github.com/MohamedElashri/ostap/internal/monitoring"
	"github.com/MohamedElashri/ostap/internal/types"
)

var testMetrics = monitoring.NewMetrics()

func newTestServer() *Server {
	cfg := config.Default()
	return New(cfg, logging.NewDefault(), testMetrics)
}

func TestHealth(t *testing.T) {
	s := newTestServer()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	s.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ok")
}

func TestListTools(t *testing.T) {
	s := newTestServer()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/tools", nil)
	s.Handler().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var svc types.Service
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &svc))
	assert.Equal(t, "ostap-math", svc.ID)
	assert.NotEmpty(t, svc.Tools)
}

func postTool(t *testing.T, s *Server, toolID string, params map[string]interface{}) (*httptest.ResponseRecorder, types.Result) {
	t.Helper()
	body, err := json.Marshal(map[string]interface{}{"params": params})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/tools/"+toolID, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	s.Handler().ServeHTTP(w, req)

	var result types.Result
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	return w, result
}

func TestExecuteTool(t *testing.T) {
	s := newTestServer()

	w, result := postTool(t, s, "elliptic.complete_k", map[string]interface{}{"k": 0.5})
	assert.Equal(t, http.StatusOK, w.Code)
	require.True(t, result.Success)
	assert.Greater(t, result.Data["result"].(float64), 1.5)

	// domain failure maps to 422
	w, result = postTool(t, s, "elliptic.complete_k", map[string]interface{}{"k": 2.0})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.False(t, result.Success)

	// unknown tool id
	w, result = postTool(t, s, "nope", map[string]interface{}{})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	require.NotNil(t, result.Error)
	assert.Contains(t, *result.Error, "unknown tool")
}

func TestExecuteToolBadBody(t *testing.T) {
	s := newTestServer()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/tools/special.erfcx",
		bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	s.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
