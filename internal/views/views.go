package views

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"github.com/tdewolff/minify/v2"
	mincss "github.com/tdewolff/minify/v2/css"
	minhtml "github.com/tdewolff/minify/v2/html"
	minjs "github.com/tdewolff/minify/v2/js"
	"html/template"
	"io"
	"io/fs"
	"path"
	"sort"
	"strings"
)

const (
	PageIndex    = "index-page"
	PagePeople   = "people-page"
	PagePerson   = "person-page"
	PageNotFound = "404-page"

	layoutName = "main"
)

var ErrUnknownPage = errors.New("unknown page template")

//go:embed templates
var templateFS embed.FS

// Renderer executes a named page inside the shared main layout. All templates
// are parsed once; rendering never touches the filesystem.
type Renderer struct {
	siteTitle string
	pages     map[string]*template.Template
	minifier  *minify.M
}

func New(siteTitle string, minifyHTML bool) (*Renderer, error) {
	var base, err = template.New(layoutName).ParseFS(templateFS, "templates/layouts/*.gohtml", "templates/partials/*.gohtml")
	if err != nil {
		return nil, err
	}

	pageFiles, err := fs.Glob(templateFS, "templates/pages/*.gohtml")
	if err != nil {
		return nil, err
	}

	var r = &Renderer{
		siteTitle: siteTitle,
		pages:     make(map[string]*template.Template, len(pageFiles)),
	}
	for _, pageFile := range pageFiles {
		var name = strings.TrimSuffix(path.Base(pageFile), path.Ext(pageFile))
		var tpl, err = base.Clone()
		if err != nil {
			return nil, err
		}
		if r.pages[name], err = tpl.ParseFS(templateFS, pageFile); err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
	}

	for _, name := range []string{PageIndex, PagePeople, PagePerson, PageNotFound} {
		if _, found := r.pages[name]; !found {
			return nil, fmt.Errorf("%w: %s", ErrUnknownPage, name)
		}
	}

	if minifyHTML {
		r.minifier = minify.New()
		r.minifier.AddFunc("text/html", minhtml.Minify)
		r.minifier.AddFunc("text/css", mincss.Minify)
		r.minifier.AddFunc("application/javascript", minjs.Minify)
	}

	return r, nil
}

func Must(r *Renderer, err error) *Renderer {
	if err != nil {
		panic(err)
	}
	return r
}

func (r *Renderer) Pages() []string {
	var names = make([]string, 0, len(r.pages))
	for name := range r.pages {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Render writes page wrapped in the layout to w. The layout receives the site
// title as site_title next to data. Output is buffered so nothing reaches w
// when execution fails.
func (r *Renderer) Render(w io.Writer, page string, data map[string]any) error {
	var tpl, found = r.pages[page]
	if !found {
		return fmt.Errorf("%w: %s", ErrUnknownPage, page)
	}

	var context = make(map[string]any, len(data)+1)
	context["site_title"] = r.siteTitle
	for name, value := range data {
		context[name] = value
	}

	var buf bytes.Buffer
	if err := tpl.ExecuteTemplate(&buf, layoutName, context); err != nil {
		return err
	}

	if r.minifier != nil {
		return r.minifier.Minify("text/html", w, &buf)
	}

	_, err := buf.WriteTo(w)
	return err
}
