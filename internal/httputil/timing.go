package httputil

import (
	"fmt"
	"net/http"
	"sort"
	"strings"
	"time"
)

// Timing collects named durations for the Server-Timing response header.
type Timing struct {
	started   map[string]time.Time
	durations map[string]time.Duration
}

func NewTiming() *Timing {
	return &Timing{
		started:   map[string]time.Time{},
		durations: map[string]time.Duration{},
	}
}

func (t *Timing) Start(name string) {
	t.started[name] = time.Now()
}

func (t *Timing) Stop(name string) {
	if start, found := t.started[name]; found {
		t.durations[name] += time.Since(start)
		delete(t.started, name)
	}
}

func (t *Timing) Report(w http.ResponseWriter) {
	if len(t.durations) == 0 {
		return
	}
	var values = make([]string, 0, len(t.durations))
	for name, duration := range t.durations {
		values = append(values, fmt.Sprintf("%s;dur=%.01f", name, float64(duration.Microseconds())/1000))
	}
	sort.Strings(values)
	w.Header().Set("Server-Timing", strings.Join(values, ","))
}
