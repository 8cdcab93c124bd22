package server

import (
	"errors"
	"github.com/cwkr/famous-people/internal/htmlutil"
	"github.com/cwkr/famous-people/internal/httputil"
	"github.com/cwkr/famous-people/internal/people"
	"github.com/cwkr/famous-people/internal/views"
	"github.com/gorilla/mux"
	"log"
	"net/http"
	"strings"
)

// PersonExists matches /people/{key}/... only while key is in the directory.
// mux fills in path variables after all matchers ran, so the key is read from
// the path directly.
func PersonExists(peopleStore people.Store) mux.MatcherFunc {
	return func(r *http.Request, _ *mux.RouteMatch) bool {
		var segments = strings.Split(strings.Trim(r.URL.Path, "/"), "/")
		return len(segments) >= 2 && segments[0] == "people" && peopleStore.Exists(segments[1])
	}
}

type personHandler struct {
	peopleStore people.Store
	renderer    *views.Renderer
	notFound    http.Handler
}

func (p *personHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var key = mux.Vars(r)["key"]

	var person, err = p.peopleStore.Lookup(key)
	if err != nil {
		if errors.Is(err, people.ErrPersonNotFound) {
			p.notFound.ServeHTTP(w, r)
		} else {
			log.Printf("%s %s", r.Method, r.URL)
			htmlutil.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	log.Printf("%s %s", r.Method, r.URL)
	httputil.NoCache(w)
	htmlutil.Render(w, p.renderer, views.PagePerson, map[string]any{
		"page_title": person.Name,
		"person":     person,
	}, http.StatusOK)
}

func PersonHandler(peopleStore people.Store, renderer *views.Renderer, notFound http.Handler) http.Handler {
	return &personHandler{
		peopleStore: peopleStore,
		renderer:    renderer,
		notFound:    notFound,
	}
}
