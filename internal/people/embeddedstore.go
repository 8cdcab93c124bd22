package people

import (
	"crypto/rand"
	"fmt"
	"github.com/oklog/ulid/v2"
	"sync"
	"time"
)

const SeniorAge = 65

type embeddedStore struct {
	mu     sync.RWMutex
	keys   []string
	people map[string]*Person
}

// NewEmbeddedStore builds the in-memory directory from persons, keeping their
// order, and marks everyone aged 65 or older. The flag is not recomputed later.
func NewEmbeddedStore(persons []Person) (Store, error) {
	var e = &embeddedStore{
		keys:   make([]string, 0, len(persons)),
		people: make(map[string]*Person, len(persons)),
	}
	for _, p := range persons {
		if p.Key == "" {
			return nil, fmt.Errorf("%w (name %q)", ErrMissingKey, p.Name)
		}
		if _, found := e.people[p.Key]; found {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateKey, p.Key)
		}
		if p.Age < 0 {
			return nil, fmt.Errorf("%w: %s", ErrNegativeAge, p.Key)
		}
		var person = p.clone()
		e.keys = append(e.keys, person.Key)
		e.people[person.Key] = &person
	}

	for _, person := range e.people {
		person.IsSenior = person.Age >= SeniorAge
	}

	return e, nil
}

func (e *embeddedStore) Lookup(key string) (*Person, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	if person, found := e.people[key]; found {
		var snapshot = person.clone()
		return &snapshot, nil
	}

	return nil, ErrPersonNotFound
}

func (e *embeddedStore) Exists(key string) bool {
	e.mu.RLock()
	defer e.mu.RUnlock()

	var _, found = e.people[key]
	return found
}

func (e *embeddedStore) List() []Person {
	e.mu.RLock()
	defer e.mu.RUnlock()

	var persons = make([]Person, 0, len(e.keys))
	for _, key := range e.keys {
		persons = append(persons, e.people[key].clone())
	}
	return persons
}

func (e *embeddedStore) AddPhoto(key string, photo Photo) (*Photo, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	var person, found = e.people[key]
	if !found {
		return nil, ErrPersonNotFound
	}

	if photo.URL == "" {
		return nil, ErrPhotoURLRequired
	}

	id, err := ulid.New(ulid.Timestamp(time.Now()), rand.Reader)
	if err != nil {
		return nil, err
	}
	photo.ID = id.String()
	person.Photos = append(person.Photos, photo)

	return &photo, nil
}

func (e *embeddedStore) Ping() error {
	return nil
}
