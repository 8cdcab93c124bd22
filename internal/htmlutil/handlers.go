package htmlutil

import (
	"bytes"
	"github.com/cwkr/famous-people/internal/httputil"
	"github.com/cwkr/famous-people/internal/views"
	"log"
	"net/http"
)

// Render executes page with data and writes it with the given status code.
// Nothing but the fallback error page is written if rendering fails.
func Render(w http.ResponseWriter, renderer *views.Renderer, page string, data map[string]any, code int) {
	var timing = httputil.NewTiming()
	var buf bytes.Buffer

	timing.Start("render")
	var err = renderer.Render(&buf, page, data)
	timing.Stop("render")
	if err != nil {
		Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	timing.Report(w)
	w.Header().Set("Content-Type", "text/html;charset=UTF-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(code)
	buf.WriteTo(w)
}

func NotFoundHandler(renderer *views.Renderer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.Printf("%s %s", r.Method, r.URL)
		httputil.NoCache(w)
		Render(w, renderer, views.PageNotFound, map[string]any{
			"page_title": "404",
		}, http.StatusNotFound)
	})
}

// MethodNotAllowedHandler answers GET and HEAD requests for paths that only
// exist under another method with the 404 page, everything else with 405.
func MethodNotAllowedHandler(renderer *views.Renderer) http.Handler {
	var notFound = NotFoundHandler(renderer)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet || r.Method == http.MethodHead {
			notFound.ServeHTTP(w, r)
			return
		}
		log.Printf("%s %s", r.Method, r.URL)
		PlainError(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
	})
}
