package keepalive

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/MyelinBots/matchbot-go/config"
)

const defaultInterval = 13 * time.Minute

// Start pings the public app URL on an interval so free-tier hosting never
// idles the service out. The loop stops when ctx is cancelled.
func Start(ctx context.Context, cfg config.AppConfig) {
	interval := time.Duration(cfg.KeepAliveMinutes) * time.Minute
	if interval <= 0 {
		interval = defaultInterval
	}

	client := &http.Client{Timeout: 30 * time.Second}
	go run(ctx, client, pingURL(cfg), interval)
}

// pingURL prefers the explicit APP_URL and falls back to the render
// service hostname.
func pingURL(cfg config.AppConfig) string {
	if cfg.PingURL != "" {
		return cfg.PingURL
	}
	return fmt.Sprintf("https://%s.onrender.com", cfg.ServiceName)
}

func run(ctx context.Context, client *http.Client, url string, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			ping(ctx, client, url)
		case <-ctx.Done():
			return
		}
	}
}

// ping fires one GET. Failures are logged and swallowed; the next tick tries
// again.
func ping(ctx context.Context, client *http.Client, url string) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		log.Printf("keepalive: building request for %s: %v", url, err)
		return
	}
	resp, err := client.Do(req)
	if err != nil {
		log.Printf("keepalive: ping %s failed: %v", url, err)
		return
	}
	resp.Body.Close()
	log.Printf("keepalive: pinged %s (%s)", url, resp.Status)
}
