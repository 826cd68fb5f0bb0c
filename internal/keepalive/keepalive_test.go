package keepalive

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MyelinBots/matchbot-go/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPingURL(t *testing.T) {
	t.Run("explicit url wins", func(t *testing.T) {
		cfg := config.AppConfig{PingURL: "https://example.com/ping", ServiceName: "gbi-match-maker"}
		assert.Equal(t, "https://example.com/ping", pingURL(cfg))
	})

	t.Run("falls back to render hostname", func(t *testing.T) {
		cfg := config.AppConfig{ServiceName: "gbi-match-maker"}
		assert.Equal(t, "https://gbi-match-maker.onrender.com", pingURL(cfg))
	})
}

func TestRunPingsUntilCancelled(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		run(ctx, srv.Client(), srv.URL, 10*time.Millisecond)
		close(done)
	}()

	require.Eventually(t, func() bool {
		return atomic.LoadInt32(&hits) >= 2
	}, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("keepalive loop did not stop on cancel")
	}
}

func TestPingSurvivesDeadServer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	// Must not panic and must return so the loop can try again.
	ping(context.Background(), &http.Client{Timeout: 100 * time.Millisecond}, srv.URL)
}
