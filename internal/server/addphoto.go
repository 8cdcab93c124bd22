package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"github.com/cwkr/famous-people/internal/htmlutil"
	"github.com/cwkr/famous-people/internal/httputil"
	"github.com/cwkr/famous-people/internal/people"
	"github.com/gorilla/mux"
	"io"
	"log"
	"net/http"
)

const (
	MessagePhotoURLRequired = "Person photo must have a URL."

	maxPhotoRequestBytes = 100 << 10
)

// readPhoto extracts the exact "url" and "caption" keys of a JSON object body.
// Bodies that are not JSON, empty, or not an object yield an empty photo.
func readPhoto(w http.ResponseWriter, r *http.Request) (people.Photo, error) {
	var photo people.Photo
	if !httputil.IsJSON(r) {
		return photo, nil
	}

	var body, err = io.ReadAll(http.MaxBytesReader(w, r.Body, maxPhotoRequestBytes))
	if err != nil {
		return photo, err
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return photo, nil
	}

	var value any
	if err := json.Unmarshal(body, &value); err != nil {
		return photo, err
	}

	var fields, isObject = value.(map[string]any)
	if !isObject {
		return photo, nil
	}
	if url, isString := fields["url"].(string); isString {
		photo.URL = url
	}
	switch caption := fields["caption"].(type) {
	case string:
		photo.Caption = caption
	case float64, bool:
		photo.Caption = fmt.Sprint(caption)
	}
	return photo, nil
}

type addPhotoHandler struct {
	peopleStore people.Store
	notFound    http.Handler
}

func (a *addPhotoHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var key = mux.Vars(r)["key"]

	log.Printf("%s %s", r.Method, r.URL)

	var request, err = readPhoto(w, r)
	if err != nil {
		htmlutil.PlainError(w, err.Error(), http.StatusBadRequest)
		return
	}

	photo, err := a.peopleStore.AddPhoto(key, request)
	if err != nil {
		switch {
		case errors.Is(err, people.ErrPersonNotFound):
			a.notFound.ServeHTTP(w, r)
		case errors.Is(err, people.ErrPhotoURLRequired):
			htmlutil.PlainError(w, MessagePhotoURLRequired, http.StatusBadRequest)
		default:
			htmlutil.PlainError(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	log.Printf("key=%s photo_id=%s", key, photo.ID)
	httputil.NoCache(w)
	w.WriteHeader(http.StatusOK)
}

func AddPhotoHandler(peopleStore people.Store, notFound http.Handler) http.Handler {
	return &addPhotoHandler{
		peopleStore: peopleStore,
		notFound:    notFound,
	}
}
