package page_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"
	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-reform/pkg/field"
	"github.com/goliatone/go-reform/pkg/form"
	"github.com/goliatone/go-reform/pkg/render"
	"github.com/goliatone/go-reform/pkg/renderers/page"
	"github.com/goliatone/go-reform/pkg/testsupport"
)

func surveyInstance(t *testing.T, data form.Data) *form.Instance {
	t.Helper()
	def := testsupport.MustDefinition(t,
		form.F("firstName", field.NewText()),
		form.F("submit", field.NewButton(field.WithLabel("Send"))),
	)
	return def.Clone(data, "")
}

func acmeManifest() *theme.Manifest {
	return &theme.Manifest{
		Name:    "acme",
		Version: "1.0.0",
		Tokens: map[string]string{
			"brand":  "#123456",
			"radius": "2px",
		},
		Variants: map[string]theme.Variant{
			"dark": {Tokens: map[string]string{"brand": "#654321"}},
		},
	}
}

func TestRenderPageDefaults(t *testing.T) {
	r, err := page.New()
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	out, err := r.Render(context.Background(), surveyInstance(t, nil), render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	got := string(out)

	for _, want := range []string{
		"<!DOCTYPE html>",
		"<title>Form</title>",
		`<form method="POST" action="">`,
		`<label for="id_firstName">First Name</label>`,
		`<button type="submit"`,
		"--brand: #2f5d8a;",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("expected %q in page:\n%s", want, got)
		}
	}
	if strings.Contains(got, "&lt;form") {
		t.Fatalf("form markup was escaped:\n%s", got)
	}
	if strings.Contains(got, "data-theme=") {
		t.Fatalf("no theme configured, expected no theme style block:\n%s", got)
	}
}

func TestRenderPageMessagesEscaped(t *testing.T) {
	r, err := page.New(page.WithStylesheet(""))
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	inst := surveyInstance(t, form.Data{"firstName": ""})
	out, err := r.Render(context.Background(), inst, render.RenderOptions{
		Title:    "Survey <1>",
		Messages: []string{"The form is not valid!", "The form is not valid!"},
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	got := string(out)

	if strings.Count(got, `<p class="message">The form is not valid!</p>`) != 1 {
		t.Fatalf("expected exactly one banner message:\n%s", got)
	}
	if !strings.Contains(got, "<title>Survey &lt;1&gt;</title>") {
		t.Fatalf("expected escaped title:\n%s", got)
	}
	if !strings.Contains(got, `<p class="error">`+field.MessageRequired+`</p>`) {
		t.Fatalf("expected inline error:\n%s", got)
	}
}

func TestRenderPageTheme(t *testing.T) {
	r, err := page.New(page.WithThemeSelector(page.ManifestSelector(acmeManifest()), "acme", "dark"))
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	out, err := r.Render(context.Background(), surveyInstance(t, nil), render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	got := string(out)

	want := `<style data-theme="acme" data-variant="dark">:root { --brand: #654321; --radius: 2px; }</style>`
	if !strings.Contains(got, want) {
		t.Fatalf("expected %q in page:\n%s", want, got)
	}
}

func TestRenderPageThemeSelectionError(t *testing.T) {
	r, err := page.New(page.WithThemeSelector(page.ManifestSelector(acmeManifest()), "other", ""))
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	_, err = r.Render(context.Background(), surveyInstance(t, nil), render.RenderOptions{})
	if !errors.Is(err, page.ErrUnknownTheme) {
		t.Fatalf("expected ErrUnknownTheme, got %v", err)
	}
}

func TestRenderPageCustomTemplates(t *testing.T) {
	files := fstest.MapFS{
		"templates/page.tpl": {Data: []byte(`[{{ title }}]{{ form|safe }}`)},
	}
	r, err := page.New(page.WithTemplatesFS(files))
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	out, err := r.Render(context.Background(), surveyInstance(t, nil), render.RenderOptions{Title: "T", TagStyle: "p"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.HasPrefix(string(out), `[T]<form method="POST" action="">`+"\n<div>\n<p>") {
		t.Fatalf("unexpected output:\n%s", out)
	}
}

func TestManifestSelector(t *testing.T) {
	selector := page.ManifestSelector(acmeManifest())

	selection, err := selector.Select("", "missing")
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	if selection.Theme != "acme" || selection.Variant != "" {
		t.Fatalf("unexpected selection %+v", selection)
	}

	cfg := page.RendererConfig(selection)
	if diff := cmp.Diff(map[string]string{"--brand": "#123456", "--radius": "2px"}, cfg.CSSVars); diff != "" {
		t.Fatalf("css vars mismatch (-want +got):\n%s", diff)
	}

	if _, err := page.ManifestSelector(nil).Select("", ""); !errors.Is(err, page.ErrUnknownTheme) {
		t.Fatalf("expected ErrUnknownTheme for nil manifest, got %v", err)
	}
}

func TestLoadManifest(t *testing.T) {
	manifest, err := page.LoadManifest(strings.NewReader(`
name: acme
version: 1.0.0
tokens:
  brand: "#123456"
variants:
  dark:
    tokens:
      brand: "#000000"
`))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if manifest.Name != "acme" || manifest.Tokens["brand"] != "#123456" {
		t.Fatalf("unexpected manifest %+v", manifest)
	}
	if manifest.Variants["dark"].Tokens["brand"] != "#000000" {
		t.Fatalf("variant tokens not decoded: %+v", manifest.Variants)
	}

	if _, err := page.LoadManifest(strings.NewReader("version: 1\n")); err == nil {
		t.Fatalf("expected error for manifest without name")
	}
}
