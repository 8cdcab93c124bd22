package htmlutil

import (
	"fmt"
	"html"
	"log"
	"net/http"
)

// Error writes a bare HTML error page. It is used when the page templates
// themselves cannot be rendered.
func Error(w http.ResponseWriter, error string, code int) {
	var statusText = http.StatusText(code)
	log.Printf("!!! %d %s - %s", code, statusText, error)
	w.Header().Set("Content-Type", "text/html;charset=UTF-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(code)
	fmt.Fprintf(w, "<!DOCTYPE html><meta charset=\"UTF-8\"><link rel=\"stylesheet\" href=\"/style.css\"><h1>%d %s</h1><p>%s</p>", code, statusText, html.EscapeString(error))
}

// PlainError writes message verbatim as text/plain, without a trailing newline.
func PlainError(w http.ResponseWriter, message string, code int) {
	log.Printf("!!! %d %s - %s", code, http.StatusText(code), message)
	w.Header().Set("Content-Type", "text/plain;charset=UTF-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(code)
	fmt.Fprint(w, message)
}
