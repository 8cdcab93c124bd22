package server

import (
	"github.com/cwkr/famous-people/internal/htmlutil"
	"github.com/cwkr/famous-people/internal/views"
	"log"
	"net/http"
)

type indexHandler struct {
	renderer *views.Renderer
}

func (i *indexHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	log.Printf("%s %s", r.Method, r.URL)

	htmlutil.Render(w, i.renderer, views.PageIndex, map[string]any{
		"page_title": "Welcome!",
	}, http.StatusOK)
}

func IndexHandler(renderer *views.Renderer) http.Handler {
	return &indexHandler{
		renderer: renderer,
	}
}
