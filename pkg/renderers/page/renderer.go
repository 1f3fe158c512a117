// Package page renders a form instance as a complete HTML document: a pongo2
// layout around the html fragment, styled with go-theme tokens.
package page

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-reform/pkg/form"
	"github.com/goliatone/go-reform/pkg/render"
	rendertemplate "github.com/goliatone/go-reform/pkg/render/template"
	"github.com/goliatone/go-reform/pkg/render/template/pongo"
	"github.com/goliatone/go-reform/pkg/renderers/html"
)

// DefaultTitle heads pages rendered without RenderOptions.Title.
const DefaultTitle = "Form"

const layoutTemplate = "templates/page.tpl"

type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
	selector         theme.ThemeSelector
	themeName        string
	themeVariant     string
	stylesheet       *string
	formClass        string
}

// WithTemplatesFS supplies an alternate layout bundle. It must contain
// templates/page.tpl.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads the layout bundle from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// WithThemeSelector resolves name/variant through selector on every render
// and exposes the resulting tokens as CSS custom properties.
func WithThemeSelector(selector theme.ThemeSelector, name, variant string) Option {
	return func(cfg *config) {
		cfg.selector = selector
		cfg.themeName = strings.TrimSpace(name)
		cfg.themeVariant = strings.TrimSpace(variant)
	}
}

// WithStylesheet replaces the embedded stylesheet. An empty string disables it.
func WithStylesheet(css string) Option {
	return func(cfg *config) {
		cfg.stylesheet = &css
	}
}

// WithFormClass sets the class attribute of the embedded <form>.
func WithFormClass(class string) Option {
	return func(cfg *config) {
		cfg.formClass = strings.TrimSpace(class)
	}
}

type Renderer struct {
	templates    rendertemplate.TemplateRenderer
	selector     theme.ThemeSelector
	themeName    string
	themeVariant string
	stylesheet   string
	formClass    string
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the page renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{templateFS: TemplatesFS()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		engine, err := pongo.New(pongo.WithFS(cfg.templateFS))
		if err != nil {
			return nil, fmt.Errorf("page renderer: configure template renderer: %w", err)
		}
		renderer = engine
	}

	stylesheet := defaultStylesheet()
	if cfg.stylesheet != nil {
		stylesheet = *cfg.stylesheet
	}

	return &Renderer{
		templates:    renderer,
		selector:     cfg.selector,
		themeName:    cfg.themeName,
		themeVariant: cfg.themeVariant,
		stylesheet:   stylesheet,
		formClass:    cfg.formClass,
	}, nil
}

func (r *Renderer) Name() string {
	return "page"
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

func (r *Renderer) Render(_ context.Context, inst *form.Instance, options render.RenderOptions) ([]byte, error) {
	if r.templates == nil {
		return nil, errors.New("page renderer: template renderer is nil")
	}
	if inst == nil {
		return nil, errors.New("page renderer: form instance is nil")
	}

	opts := options.Normalize()
	messages := opts.Messages
	opts.Messages = nil

	title := strings.TrimSpace(opts.Title)
	if title == "" {
		title = DefaultTitle
	}

	themeCtx, err := r.resolveTheme()
	if err != nil {
		return nil, err
	}

	result, err := r.templates.RenderTemplate(layoutTemplate, map[string]any{
		"title":          title,
		"messages":       messages,
		"form":           html.Fragment(inst, opts, r.formClass),
		"stylesheet":     r.stylesheet,
		"theme":          themeCtx.templateData(),
		"css_vars_style": themeCtx.CSSVarsStyle,
	})
	if err != nil {
		return nil, fmt.Errorf("page renderer: render template: %w", err)
	}
	return []byte(result), nil
}

func (r *Renderer) resolveTheme() (themeContext, error) {
	if r.selector == nil {
		return themeContext{}, nil
	}
	selection, err := r.selector.Select(r.themeName, r.themeVariant)
	if err != nil {
		return themeContext{}, fmt.Errorf("page renderer: select theme %q: %w", r.themeName, err)
	}
	return buildThemeContext(RendererConfig(selection)), nil
}
