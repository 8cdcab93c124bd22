package server

import (
	"github.com/cwkr/famous-people/internal/htmlutil"
	"github.com/cwkr/famous-people/internal/people"
	"github.com/cwkr/famous-people/internal/views"
	"github.com/gorilla/mux"
	"net/http"
	"runtime"
)

type RouterOptions struct {
	PublicDir string
	Version   string
}

// NewRouter registers routes in resolution order: static files first, then
// the dynamic pages, with the rendered 404 page as the final fallback.
// Person routes only match keys present in peopleStore at request time.
// Paths with a trailing slash are redirected to the route without it.
func NewRouter(peopleStore people.Store, renderer *views.Renderer, options RouterOptions) *mux.Router {
	var router = mux.NewRouter().StrictSlash(true)
	var notFound = htmlutil.NotFoundHandler(renderer)
	var publicFS = http.Dir(options.PublicDir)

	router.NotFoundHandler = notFound
	router.MethodNotAllowedHandler = htmlutil.MethodNotAllowedHandler(renderer)

	router.MatcherFunc(StaticFileExists(publicFS)).
		Methods(http.MethodGet, http.MethodHead).
		Handler(StaticHandler(publicFS))
	router.Handle("/", IndexHandler(renderer)).
		Methods(http.MethodGet, http.MethodHead)
	router.Handle("/people", PeopleHandler(peopleStore, renderer)).
		Methods(http.MethodGet, http.MethodHead)
	router.Handle("/people/{key}", PersonHandler(peopleStore, renderer, notFound)).
		Methods(http.MethodGet, http.MethodHead).
		MatcherFunc(PersonExists(peopleStore))
	router.Handle("/people/{key}/add-photo", AddPhotoHandler(peopleStore, notFound)).
		Methods(http.MethodPost).
		MatcherFunc(PersonExists(peopleStore))
	router.Handle("/health", HealthHandler(peopleStore)).
		Methods(http.MethodGet)
	router.Handle("/info", InfoHandler(options.Version, runtime.Version(), peopleStore)).
		Methods(http.MethodGet)

	return router
}
