package server

import (
	"encoding/json"
	"github.com/cwkr/famous-people/internal/httputil"
	"github.com/cwkr/famous-people/internal/people"
	"log"
	"net/http"
)

type healthStatus struct {
	Status string `json:"status"`
}

// HealthHandler reports UP while the directory answers Ping, 503 otherwise.
func HealthHandler(peopleStore people.Store) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var code, status = http.StatusOK, healthStatus{Status: "UP"}
		if err := peopleStore.Ping(); err != nil {
			log.Printf("!!! %s %s - directory unavailable: %v", r.Method, r.URL, err)
			code, status.Status = http.StatusServiceUnavailable, err.Error()
		}

		var bytes, _ = json.Marshal(status)
		httputil.NoCache(w)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(code)
		w.Write(bytes)
	})
}
