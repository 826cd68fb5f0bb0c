package healthcheck

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/MyelinBots/matchbot-go/config"
	"github.com/MyelinBots/matchbot-go/internal/services/store"
)

// Stats is what the status page reads from the running store.
type Stats interface {
	Counts() store.Counts
}

type statusResponse struct {
	Status           string `json:"status"`
	App              string `json:"app"`
	Version          string `json:"version"`
	Users            int    `json:"users"`
	CompleteProfiles int    `json:"complete_profiles"`
	Matches          int    `json:"matches"`
}

// StartHealthcheck serves the status page in the background and shuts the
// server down when ctx is cancelled.
func StartHealthcheck(ctx context.Context, cfg config.AppConfig, stats Stats) {
	server := &http.Server{
		Addr:    ":" + strconv.Itoa(cfg.Port),
		Handler: Handler(cfg, stats),
	}

	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("healthcheck server error: %v", err)
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Printf("healthcheck shutdown error: %v", err)
		}
	}()
}

func Handler(cfg config.AppConfig, stats Stats) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("GBI Match Maker Bot is running!"))
	})

	mux.HandleFunc("/status", func(w http.ResponseWriter, r *http.Request) {
		counts := stats.Counts()
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(statusResponse{
			Status:           "running",
			App:              cfg.APPName,
			Version:          cfg.Version,
			Users:            counts.Users,
			CompleteProfiles: counts.CompleteProfiles,
			Matches:          counts.Matches,
		})
	})

	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return mux
}
