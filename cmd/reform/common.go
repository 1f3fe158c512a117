package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"strings"

	"github.com/spf13/viper"

	reform "github.com/goliatone/go-reform"
	"github.com/goliatone/go-reform/internal/demo"
	"github.com/goliatone/go-reform/pkg/form"
	"github.com/goliatone/go-reform/pkg/openapi"
	"github.com/goliatone/go-reform/pkg/render"
	"github.com/goliatone/go-reform/pkg/renderers/page"
	"github.com/goliatone/go-reform/pkg/sanitize"
	"github.com/goliatone/go-reform/pkg/schema"
)

// sourceConfig says where the form definition comes from. At most one of
// Schema and OpenAPI is set; neither means the built-in survey.
type sourceConfig struct {
	Schema    string
	Form      string
	OpenAPI   string
	Operation string
}

func sourceFromViper() sourceConfig {
	return sourceConfig{
		Schema:    viper.GetString("schema"),
		Form:      viper.GetString("form"),
		OpenAPI:   viper.GetString("openapi"),
		Operation: viper.GetString("operation"),
	}
}

// loadedForm is a resolved definition plus the title to show above it.
type loadedForm struct {
	Title      string
	Definition *form.Definition
}

func loadForm(ctx context.Context, cfg sourceConfig) (loadedForm, error) {
	switch {
	case cfg.Schema != "" && cfg.OpenAPI != "":
		return loadedForm{}, errors.New("--schema and --openapi are mutually exclusive")
	case cfg.Schema != "":
		return loadSchemaForm(cfg)
	case cfg.OpenAPI != "":
		return loadOpenAPIForm(ctx, cfg)
	default:
		slog.Debug("no schema given, using the survey form")
		return loadedForm{Title: demo.SurveyTitle, Definition: demo.Survey()}, nil
	}
}

func loadSchemaForm(cfg sourceConfig) (loadedForm, error) {
	store, err := schema.LoadFile(cfg.Schema, schema.WithSanitizer(sanitize.StrictText))
	if err != nil {
		return loadedForm{}, fmt.Errorf("load schema: %w", err)
	}
	ids := store.IDs()

	id := strings.TrimSpace(cfg.Form)
	if id == "" {
		if len(ids) != 1 {
			return loadedForm{}, fmt.Errorf("schema %s defines %d forms, pick one with --form (available: %s)",
				cfg.Schema, len(ids), strings.Join(ids, ", "))
		}
		id = ids[0]
	}

	loaded, ok := store.Form(id)
	if !ok {
		return loadedForm{}, fmt.Errorf("form %q not found (available: %s)", id, strings.Join(ids, ", "))
	}
	slog.Debug("loaded schema form", "id", loaded.ID, "source", loaded.Source)

	title := loaded.Title
	if title == "" {
		title = loaded.ID
	}
	return loadedForm{Title: title, Definition: loaded.Definition}, nil
}

func loadOpenAPIForm(ctx context.Context, cfg sourceConfig) (loadedForm, error) {
	raw, err := os.ReadFile(cfg.OpenAPI)
	if err != nil {
		return loadedForm{}, fmt.Errorf("read openapi document: %w", err)
	}

	operation := strings.TrimSpace(cfg.Operation)
	if operation == "" {
		ops, err := openapi.Operations(ctx, raw)
		if err != nil {
			return loadedForm{}, err
		}
		if len(ops) != 1 {
			return loadedForm{}, fmt.Errorf("document defines %d operations, pick one with --operation (available: %s)",
				len(ops), strings.Join(ops, ", "))
		}
		operation = ops[0]
	}

	def, err := openapi.Build(ctx, raw, operation, openapi.WithSubmit("Submit"))
	if err != nil {
		return loadedForm{}, err
	}
	return loadedForm{Title: operation, Definition: def}, nil
}

// renderers lists the markup renderers selectable with --renderer.
func renderers(pageOptions ...page.Option) (*render.Registry, error) {
	return reform.Renderers(pageOptions...)
}

// themeOptions loads a theme manifest file for the page renderer.
func themeOptions(path, variant string) ([]page.Option, error) {
	if strings.TrimSpace(path) == "" {
		return nil, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open theme: %w", err)
	}
	defer f.Close()

	manifest, err := page.LoadManifest(f)
	if err != nil {
		return nil, fmt.Errorf("theme %s: %w", path, err)
	}
	return []page.Option{page.WithThemeSelector(page.ManifestSelector(manifest), manifest.Name, variant)}, nil
}

// parseData reads a url-encoded submission such as "firstName=Ada&age=36".
// An empty string means no submission.
func parseData(raw string) (form.Data, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	values, err := url.ParseQuery(raw)
	if err != nil {
		return nil, fmt.Errorf("parse --data: %w", err)
	}
	return form.FromValues(values), nil
}
