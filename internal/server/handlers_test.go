package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhatmailaanh/bat-dong-san-seo-pro/internal/orchestrator"
	"github.com/nhatmailaanh/bat-dong-san-seo-pro/internal/types"
)

// stubGenerator returns canned content immediately.
type stubGenerator struct {
	content *types.GeneratedContent
	err     error
}

func (g *stubGenerator) Generate(context.Context, *types.PropertyData) (*types.GeneratedContent, error) {
	return g.content, g.err
}

// stubAnalyzer returns a fixed analysis result.
type stubAnalyzer struct {
	result *types.HFAnalysisResult
}

func (a *stubAnalyzer) Analyze(context.Context, string, string) *types.HFAnalysisResult {
	return a.result
}

// okPinger always reports the inference service reachable.
type okPinger struct{}

func (okPinger) Ping(context.Context, string) error { return nil }

func newTestServer(t *testing.T) (*Server, *orchestrator.Controller) {
	t.Helper()
	controller := orchestrator.New(
		&stubGenerator{content: &types.GeneratedContent{
			HookTitles:     []types.StrategyTitle{{Strategy: "Urgency", Title: "Bán gấp"}},
			HotDescription: "🔥 Căn hộ đẹp.",
		}},
		&stubAnalyzer{result: &types.HFAnalysisResult{}},
	)
	t.Cleanup(controller.Close)

	return New(Config{Port: 0, Controller: controller, Pinger: okPinger{}}), controller
}

func TestHandleGenerateAccepted(t *testing.T) {
	srv, _ := newTestServer(t)

	body := `{"type":"Căn hộ","price":"3 tỷ","location":"Quận 7"}`
	req := httptest.NewRequest(http.MethodPost, "/api/generate", strings.NewReader(body))
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)

	require.Equal(t, http.StatusAccepted, w.Code)

	var resp GenerateResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, "accepted", resp.Status)
	assert.NotEmpty(t, resp.SubmissionID)
}

func TestHandleGenerateMissingRequiredFields(t *testing.T) {
	srv, _ := newTestServer(t)

	body := `{"type":"Căn hộ"}`
	req := httptest.NewRequest(http.MethodPost, "/api/generate", strings.NewReader(body))
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)

	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var resp map[string]string
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, orchestrator.MsgMissingFields, resp["error"])
}

func TestHandleGenerateInvalidBody(t *testing.T) {
	srv, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/generate", strings.NewReader("{broken"))
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleStateReflectsSubmission(t *testing.T) {
	srv, controller := newTestServer(t)

	_, err := controller.Submit(types.PropertyData{Type: "Căn hộ", Price: "3 tỷ", Location: "Quận 7"})
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		state := controller.Snapshot()
		return state.LoadingState == types.StateSuccess && !state.HFLoading
	}, 2*time.Second, 5*time.Millisecond)

	req := httptest.NewRequest(http.MethodGet, "/api/state", nil)
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var state orchestrator.State
	require.NoError(t, json.NewDecoder(w.Body).Decode(&state))
	assert.Equal(t, types.StateSuccess, state.LoadingState)
	require.NotNil(t, state.Result)
	assert.Equal(t, "Bán gấp", state.Result.PrimaryTitle())
	assert.NotNil(t, state.HFAnalysis)
}

func TestHandleHealth(t *testing.T) {
	srv, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var health map[string]string
	require.NoError(t, json.NewDecoder(w.Body).Decode(&health))
	assert.Equal(t, "ok", health["status"])
	assert.Equal(t, "ok", health["inference"])
}

func TestHandleGenerateStream(t *testing.T) {
	srv, _ := newTestServer(t)

	body := `{"type":"Căn hộ","price":"3 tỷ","location":"Quận 7"}`
	req := httptest.NewRequest(http.MethodPost, "/api/generate/stream", strings.NewReader(body))
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/event-stream", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Body.String(), "event: state")
	assert.Contains(t, w.Body.String(), "event: complete")
	assert.Contains(t, w.Body.String(), `"status":"SUCCESS"`)
}

func TestCORSPreflight(t *testing.T) {
	srv, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/generate", nil)
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}
