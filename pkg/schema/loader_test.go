package schema_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-reform/pkg/field"
	"github.com/goliatone/go-reform/pkg/form"
	"github.com/goliatone/go-reform/pkg/schema"
)

const surveyYAML = `
forms:
  survey:
    title: Tell us about yourself
    fields:
      - name: firstName
      - name: age
        type: integer
      - name: email
        type: email
        required: false
        helpText: We never share it.
      - name: season
        type: dropdown
        initial: w
        choices: [[su, Summer], [w, Winter]]
      - name: random
        type: textarea
        label: About me.
      - name: submit
        type: button
`

const contactJSON = `{
  "forms": {
    "contact": {
      "fields": [
        {"name": "name", "type": "text", "inputType": "tel"},
        {"name": "topic", "type": "radio", "choices": [["a", "Alpha"], ["b"]]}
      ]
    }
  }
}`

func TestLoadFS(t *testing.T) {
	files := fstest.MapFS{
		"forms/survey.yaml":  {Data: []byte(surveyYAML)},
		"forms/contact.json": {Data: []byte(contactJSON)},
		"forms/README.md":    {Data: []byte("ignored")},
	}

	store, err := schema.LoadFS(files)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if diff := cmp.Diff([]string{"contact", "survey"}, store.IDs()); diff != "" {
		t.Fatalf("ids mismatch (-want +got):\n%s", diff)
	}

	survey, ok := store.Form("survey")
	if !ok {
		t.Fatalf("survey missing")
	}
	if survey.Title != "Tell us about yourself" || survey.Source != "forms/survey.yaml" {
		t.Fatalf("unexpected form metadata %+v", survey)
	}

	def := survey.Definition
	if diff := cmp.Diff([]string{"firstName", "age", "email", "season", "random", "submit"}, def.Names()); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}

	first, _ := def.Field("firstName")
	if first.Kind() != field.KindText || first.Attrs().Label != "First Name" || !first.Attrs().Required {
		t.Fatalf("unexpected firstName field %+v", first.Attrs())
	}
	email, _ := def.Field("email")
	if email.Attrs().Required || email.Attrs().HelpText != "We never share it." {
		t.Fatalf("unexpected email field %+v", email.Attrs())
	}
	season, _ := def.Field("season")
	if diff := cmp.Diff(field.Pairs([]string{"su", "Summer"}, []string{"w", "Winter"}), season.Attrs().Choices); diff != "" {
		t.Fatalf("choices mismatch (-want +got):\n%s", diff)
	}
	if season.Attrs().Initial != "w" {
		t.Fatalf("unexpected initial %#v", season.Attrs().Initial)
	}
	random, _ := def.Field("random")
	if random.Attrs().Label != "About me." {
		t.Fatalf("explicit label lost: %q", random.Attrs().Label)
	}

	inst := def.Clone(form.Data{"firstName": "Ada", "age": "36", "season": "su", "random": "hi"}, "")
	if !inst.Validate() {
		t.Fatalf("expected loaded survey to validate, errors %v", inst.Errors())
	}

	contact, _ := store.Definition("contact")
	name, _ := contact.Field("name")
	if name.Attrs().InputType != "tel" {
		t.Fatalf("input type not applied: %q", name.Attrs().InputType)
	}
	topic, _ := contact.Field("topic")
	if topic.Kind() != field.KindRadioChoice || topic.Attrs().Choices[1] != (field.Choice{Value: "b", Label: "b"}) {
		t.Fatalf("unexpected topic field %+v", topic.Attrs())
	}
}

func TestLoadFSNil(t *testing.T) {
	store, err := schema.LoadFS(nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !store.Empty() {
		t.Fatalf("expected empty store")
	}
	if _, ok := store.Definition("survey"); ok {
		t.Fatalf("empty store returned a definition")
	}
}

func TestLoadErrors(t *testing.T) {
	cases := []struct {
		name  string
		files fstest.MapFS
		want  error
		text  string
	}{
		{
			name: "duplicate form",
			files: fstest.MapFS{
				"a.yaml": {Data: []byte(surveyYAML)},
				"b.yaml": {Data: []byte(surveyYAML)},
			},
			want: schema.ErrDuplicateForm,
		},
		{
			name: "unknown type",
			files: fstest.MapFS{
				"a.yaml": {Data: []byte("forms:\n  x:\n    fields:\n      - name: when\n        type: date\n")},
			},
			want: schema.ErrUnknownType,
		},
		{
			name: "duplicate field",
			files: fstest.MapFS{
				"a.yaml": {Data: []byte("forms:\n  x:\n    fields:\n      - name: a\n      - name: a\n")},
			},
			want: form.ErrDuplicateField,
		},
		{
			name:  "empty file",
			files: fstest.MapFS{"a.json": {Data: []byte("  ")}},
			text:  "is empty",
		},
		{
			name:  "invalid syntax",
			files: fstest.MapFS{"a.yaml": {Data: []byte("forms: [")}},
			text:  "invalid JSON or YAML",
		},
		{
			name:  "no fields",
			files: fstest.MapFS{"a.yaml": {Data: []byte("forms:\n  x:\n    title: Empty\n")}},
			text:  "no fields defined",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := schema.LoadFS(tc.files)
			if err == nil {
				t.Fatalf("expected error")
			}
			if tc.want != nil && !errors.Is(err, tc.want) {
				t.Fatalf("want %v, got %v", tc.want, err)
			}
			if tc.text != "" && !strings.Contains(err.Error(), tc.text) {
				t.Fatalf("expected %q in %v", tc.text, err)
			}
		})
	}
}

func TestParseWithSanitizer(t *testing.T) {
	doc := []byte(`
forms:
  x:
    title: "<b>Hi</b>"
    fields:
      - name: pick
        type: dropdown
        label: "<i>Pick</i>"
        helpText: "<script>alert(1)</script>help"
        choices: [[a, "<em>A</em>"]]
`)
	strip := func(s string) string {
		s = strings.NewReplacer("<b>", "", "</b>", "", "<i>", "", "</i>", "", "<em>", "", "</em>", "").Replace(s)
		return strings.ReplaceAll(strings.ReplaceAll(s, "<script>alert(1)</script>", ""), "<", "")
	}

	store, err := schema.Parse(doc, schema.SourceFromBytes("inline"), schema.WithSanitizer(strip))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	f, _ := store.Form("x")
	if f.Title != "Hi" || f.Source != "inline" {
		t.Fatalf("unexpected form %+v", f)
	}
	pick, _ := f.Definition.Field("pick")
	attrs := pick.Attrs()
	if attrs.Label != "Pick" || attrs.HelpText != "help" || attrs.Choices[0].Label != "A" || attrs.Choices[0].Value != "a" {
		t.Fatalf("sanitizer not applied: %+v", attrs)
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "survey.yml")
	if err := os.WriteFile(path, []byte(surveyYAML), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	store, err := schema.LoadFile(path)
	if err != nil {
		t.Fatalf("load file: %v", err)
	}
	if f, _ := store.Form("survey"); f.Source != path {
		t.Fatalf("unexpected source %q", f.Source)
	}

	byDir, err := schema.LoadFile(dir)
	if err != nil {
		t.Fatalf("load dir: %v", err)
	}
	if diff := cmp.Diff([]string{"survey"}, byDir.IDs()); diff != "" {
		t.Fatalf("ids mismatch (-want +got):\n%s", diff)
	}

	if _, err := schema.LoadFile(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
