package server

import (
	"github.com/cwkr/famous-people/internal/fileutil"
	"github.com/cwkr/famous-people/internal/httputil"
	"github.com/gorilla/mux"
	"log"
	"net/http"
	"time"
)

func StaticFileExists(publicFS http.FileSystem) mux.MatcherFunc {
	return func(r *http.Request, _ *mux.RouteMatch) bool {
		return fileutil.ServableFile(publicFS, r.URL.Path)
	}
}

func StaticHandler(publicFS http.FileSystem) http.Handler {
	var fileServer = http.FileServer(publicFS)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.Printf("%s %s", r.Method, r.URL)
		httputil.Cache(w, 120*time.Hour)
		fileServer.ServeHTTP(w, r)
	})
}
