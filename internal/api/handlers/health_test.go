package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/rishav-del/ai-career-path-simulator/pkg/models"
)

type stubHealthChecker struct {
	err error
}

func (s *stubHealthChecker) CheckHealth(ctx context.Context) error { return s.err }

func readiness(t *testing.T, h echo.HandlerFunc) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)
	rec := httptest.NewRecorder()
	require.NoError(t, h(e.NewContext(req, rec)))
	return rec
}

func TestReadinessReprobesProvider(t *testing.T) {
	_, st := setupHandlerTest(t, &stubProvider{})
	checker := &stubHealthChecker{err: errors.New("API key not configured")}
	h := ReadinessHandler(st, checker)

	rec := readiness(t, h)
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var resp models.HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "not ready", resp.Status)
	require.Equal(t, "unavailable", resp.Checks["llm"])
	require.Equal(t, "ok", resp.Checks["database"])

	// The probe is live, so readiness recovers without a restart
	checker.err = nil
	rec = readiness(t, h)
	require.Equal(t, http.StatusOK, rec.Code)

	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "ready", resp.Status)
	require.Equal(t, "ok", resp.Checks["llm"])
}
