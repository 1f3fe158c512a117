// Package reform declares HTML forms once and clones them per request: bind
// the submitted data, validate every field and render the form again with
// inline errors.
//
// The root package re-exports the pieces most callers need:
//
//	survey := reform.MustNew(
//		reform.F("firstName", field.NewText()),
//		reform.F("email", field.NewEmail(field.Optional())),
//	)
//
//	inst := reform.Clone(survey, reform.Data{"firstName": "Ada"}, "")
//	if inst.Validate() {
//		save(inst.CleanedData())
//	}
//	markup := inst.Render("li")
package reform

import (
	"context"
	"net/http"

	"github.com/goliatone/go-reform/pkg/form"
	"github.com/goliatone/go-reform/pkg/render"
	"github.com/goliatone/go-reform/pkg/renderers/html"
	"github.com/goliatone/go-reform/pkg/renderers/page"
)

// Definition is an immutable, ordered set of named fields.
type Definition = form.Definition

// Instance is a per-request copy of a Definition.
type Instance = form.Instance

// Entry pairs a field name with its field for New.
type Entry = form.Entry

// Data is the raw submitted mapping keyed by (prefixed) field name.
type Data = form.Data

// RenderOptions describes per-request presentation choices for renderers.
type RenderOptions = render.RenderOptions

// New builds a Definition from ordered entries.
var New = form.New

// MustNew is New that panics on error.
var MustNew = form.MustNew

// F pairs a name with a field.
var F = form.F

// Clone copies src into a new Instance, bound when data is non-nil.
func Clone(src form.Source, data Data, prefix string) *Instance {
	return form.Clone(src, data, prefix)
}

// CloneHTTP clones src for r: bound to the POST body for submissions and
// unbound for everything else.
func CloneHTTP(src form.Source, r *http.Request, prefix string) (*Instance, error) {
	req, err := form.FromHTTP(r)
	if err != nil {
		return nil, err
	}
	return form.CloneRequest(src, req, prefix), nil
}

// Renderers returns a registry holding the built-in markup renderers: "html"
// for bare <form> fragments and "page" for standalone documents.
func Renderers(options ...page.Option) (*render.Registry, error) {
	registry := render.NewRegistry()
	if err := registry.Register(html.New()); err != nil {
		return nil, err
	}
	pageRenderer, err := page.New(options...)
	if err != nil {
		return nil, err
	}
	if err := registry.Register(pageRenderer); err != nil {
		return nil, err
	}
	return registry, nil
}

// RenderHTML renders inst with the named built-in renderer.
func RenderHTML(ctx context.Context, inst *Instance, rendererName string, options RenderOptions) ([]byte, error) {
	registry, err := Renderers()
	if err != nil {
		return nil, err
	}
	renderer, err := registry.Get(rendererName)
	if err != nil {
		return nil, err
	}
	return renderer.Render(ctx, inst, options)
}
