package healthcheck

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MyelinBots/matchbot-go/config"
	"github.com/MyelinBots/matchbot-go/internal/services/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStats struct {
	counts store.Counts
}

func (f *fakeStats) Counts() store.Counts { return f.counts }

func testHandler() http.Handler {
	cfg := config.AppConfig{APPName: "gbi-match-maker", Version: "1.2.3"}
	stats := &fakeStats{counts: store.Counts{Users: 12, CompleteProfiles: 9, Matches: 4}}
	return Handler(cfg, stats)
}

func TestRootPage(t *testing.T) {
	rec := httptest.NewRecorder()
	testHandler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "GBI Match Maker Bot is running!", rec.Body.String())
}

func TestStatusPage(t *testing.T) {
	rec := httptest.NewRecorder()
	testHandler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/status", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body statusResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "running", body.Status)
	assert.Equal(t, "gbi-match-maker", body.App)
	assert.Equal(t, "1.2.3", body.Version)
	assert.Equal(t, 12, body.Users)
	assert.Equal(t, 9, body.CompleteProfiles)
	assert.Equal(t, 4, body.Matches)
}

func TestHealthEndpoint(t *testing.T) {
	rec := httptest.NewRecorder()
	testHandler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())
}

func TestUnknownPathIs404(t *testing.T) {
	rec := httptest.NewRecorder()
	testHandler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
