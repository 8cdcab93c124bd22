package server

import (
	"github.com/cwkr/famous-people/internal/htmlutil"
	"github.com/cwkr/famous-people/internal/httputil"
	"github.com/cwkr/famous-people/internal/people"
	"github.com/cwkr/famous-people/internal/views"
	"log"
	"net/http"
)

type peopleHandler struct {
	peopleStore people.Store
	renderer    *views.Renderer
}

func (p *peopleHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	log.Printf("%s %s", r.Method, r.URL)

	httputil.NoCache(w)
	htmlutil.Render(w, p.renderer, views.PagePeople, map[string]any{
		"page_title": "Famous People",
		"people":     p.peopleStore.List(),
	}, http.StatusOK)
}

func PeopleHandler(peopleStore people.Store, renderer *views.Renderer) http.Handler {
	return &peopleHandler{
		peopleStore: peopleStore,
		renderer:    renderer,
	}
}
