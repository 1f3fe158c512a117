// Package html renders a form instance as a bare <form> fragment suitable for
// embedding in an existing page.
package html

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-reform/pkg/form"
	"github.com/goliatone/go-reform/pkg/render"
	"github.com/goliatone/go-reform/pkg/render/template"
)

const (
	formTemplate = `<form method="((method))" action="((action))"((class))>
((messages))<((container))>
((fields))
</((container))>
</form>`
	messageTemplate = `<p class="message">((message))</p>
`
)

// Option configures the fragment renderer.
type Option func(*Renderer)

// WithFormClass sets the class attribute on the <form> element.
func WithFormClass(class string) Option {
	return func(r *Renderer) {
		r.formClass = strings.TrimSpace(class)
	}
}

// Renderer writes `<form>` + container + field markup.
type Renderer struct {
	formClass string
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the fragment renderer.
func New(options ...Option) *Renderer {
	r := &Renderer{}
	for _, opt := range options {
		if opt != nil {
			opt(r)
		}
	}
	return r
}

func (r *Renderer) Name() string {
	return "html"
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render validates bound instances (through Instance.Render) and wraps the
// field markup. Messages render above the container, one paragraph each.
func (r *Renderer) Render(_ context.Context, inst *form.Instance, options render.RenderOptions) ([]byte, error) {
	if inst == nil {
		return nil, errors.New("html renderer: form instance is nil")
	}
	return []byte(Fragment(inst, options, r.formClass)), nil
}

// Fragment builds the <form> markup without going through a Renderer. Page
// layouts reuse it to embed the form.
func Fragment(inst *form.Instance, options render.RenderOptions, formClass string) string {
	opts := options.Normalize()

	var messages strings.Builder
	for _, message := range opts.Messages {
		messages.WriteString(template.Substitute(messageTemplate, template.Context{"message": message}))
	}

	class := ""
	if formClass != "" {
		class = fmt.Sprintf(` class="%s"`, formClass)
	}

	return template.Substitute(formTemplate, template.Context{
		"method":    opts.Method,
		"action":    opts.Action,
		"class":     class,
		"messages":  messages.String(),
		"container": render.ContainerTag(opts.TagStyle),
		"fields":    inst.Render(opts.TagStyle),
	})
}
