package server

import (
	"encoding/json"
	"github.com/cwkr/famous-people/internal/httputil"
	"github.com/cwkr/famous-people/internal/people"
	"net/http"
)

func InfoHandler(version, runtimeVersion string, peopleStore people.Store) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

		var info = struct {
			Version   string `json:"version"`
			GoVersion string `json:"go_version"`
			People    int    `json:"people"`
		}{version, runtimeVersion, len(peopleStore.List())}

		httputil.NoCache(w)
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("X-Content-Type-Options", "nosniff")

		var bytes, _ = json.Marshal(info)
		w.Write(bytes)
	})
}
