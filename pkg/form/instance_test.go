package form_test

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-reform/pkg/field"
	"github.com/goliatone/go-reform/pkg/form"
)

func personDefinition(t *testing.T) *form.Definition {
	t.Helper()
	def, err := form.New(
		form.F("name", field.NewText(field.Required(true))),
		form.F("age", field.NewInteger()),
	)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	return def
}

func TestValidateEndToEnd(t *testing.T) {
	inst := personDefinition(t).Clone(form.Data{"name": "", "age": "12"}, "")

	if inst.Validate() {
		t.Fatalf("expected invalid form")
	}
	if diff := cmp.Diff(map[string]string{"name": field.MessageRequired}, inst.Errors()); diff != "" {
		t.Fatalf("errors mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(map[string]any{"age": 12}, inst.CleanedData()); diff != "" {
		t.Fatalf("cleaned data mismatch (-want +got):\n%s", diff)
	}
}

func TestValidateAttemptsEveryField(t *testing.T) {
	def := form.MustNew(
		form.F("name", field.NewText()),
		form.F("email", field.NewEmail()),
		form.F("age", field.NewInteger()),
		form.F("nick", field.NewText(field.Optional())),
	)
	inst := def.Clone(form.Data{"email": "nope", "age": "x1"}, "")

	if inst.Validate() {
		t.Fatalf("expected invalid form")
	}
	want := map[string]string{
		"name":  field.MessageRequired,
		"email": field.MessageInvalidEmail,
		"age":   field.MessageInvalidInt,
	}
	if diff := cmp.Diff(want, inst.Errors()); diff != "" {
		t.Fatalf("errors mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(map[string]any{"nick": nil}, inst.CleanedData()); diff != "" {
		t.Fatalf("cleaned data mismatch (-want +got):\n%s", diff)
	}

	f, _ := inst.Field("email")
	if f.Attrs().Error != field.MessageInvalidEmail {
		t.Fatalf("expected inline error on field, got %q", f.Attrs().Error)
	}
}

func TestValidateSuccess(t *testing.T) {
	inst := personDefinition(t).Clone(form.Data{"name": " Ada ", "age": " 36 "}, "")
	if !inst.Validate() {
		t.Fatalf("expected valid form, errors: %v", inst.Errors())
	}
	if diff := cmp.Diff(map[string]any{"name": "Ada", "age": 36}, inst.CleanedData()); diff != "" {
		t.Fatalf("cleaned data mismatch (-want +got):\n%s", diff)
	}
	if len(inst.Errors()) != 0 {
		t.Fatalf("expected no errors, got %v", inst.Errors())
	}
}

func TestValidateIsIdempotent(t *testing.T) {
	inst := personDefinition(t).Clone(form.Data{"name": "", "age": "7"}, "")

	first := inst.Validate()
	firstErrors, firstCleaned := inst.Errors(), inst.CleanedData()
	second := inst.Validate()

	if first != second {
		t.Fatalf("validate result changed: %v then %v", first, second)
	}
	if diff := cmp.Diff(firstErrors, inst.Errors()); diff != "" {
		t.Fatalf("errors changed (-first +second):\n%s", diff)
	}
	if diff := cmp.Diff(firstCleaned, inst.CleanedData()); diff != "" {
		t.Fatalf("cleaned data changed (-first +second):\n%s", diff)
	}

	inst.Render("li")
	if diff := cmp.Diff(firstErrors, inst.Errors()); diff != "" {
		t.Fatalf("render changed errors (-first +second):\n%s", diff)
	}
}

func TestUnboundInstance(t *testing.T) {
	inst := personDefinition(t).Clone(nil, "")

	if inst.IsBound() {
		t.Fatalf("expected unbound instance")
	}
	if inst.Validate() {
		t.Fatalf("unbound instance must not validate")
	}

	html := inst.Render("")
	if inst.Errors() != nil || inst.CleanedData() != nil || inst.Data() != nil {
		t.Fatalf("unbound render populated state: errors=%v cleaned=%v", inst.Errors(), inst.CleanedData())
	}
	if strings.Contains(html, `class="error"`) {
		t.Fatalf("unbound render contains errors:\n%s", html)
	}
	if strings.Count(html, "<li>") != 2 {
		t.Fatalf("expected two list items, got:\n%s", html)
	}
}

func TestEmptyDataStillBinds(t *testing.T) {
	inst := personDefinition(t).Clone(form.Data{}, "")
	if !inst.IsBound() {
		t.Fatalf("expected empty non-nil data to bind")
	}
	if inst.Validate() {
		t.Fatalf("expected required fields to fail on empty data")
	}
}

func TestBindSetsDisplayedValues(t *testing.T) {
	inst := personDefinition(t).Clone(nil, "")
	inst.Bind(form.Data{"name": "Grace", "unknown": "ignored"})

	f, _ := inst.Field("name")
	if f.Attrs().Initial != "Grace" {
		t.Fatalf("expected bound value displayed, got %#v", f.Attrs().Initial)
	}
	if _, ok := inst.Field("unknown"); ok {
		t.Fatalf("unknown keys must not create fields")
	}
	if diff := cmp.Diff(form.Data{"name": "Grace", "unknown": "ignored"}, inst.Data()); diff != "" {
		t.Fatalf("data mismatch (-want +got):\n%s", diff)
	}
	if inst.Errors() != nil {
		t.Fatalf("bind must not validate")
	}
}

func TestRenderReflectsErrorsAndOrder(t *testing.T) {
	inst := personDefinition(t).Clone(form.Data{"name": "", "age": "abc"}, "")
	html := inst.Render("div")

	if strings.Count(html, `<p class="error">`) != 2 {
		t.Fatalf("expected two inline errors:\n%s", html)
	}
	if strings.Index(html, `name="name"`) > strings.Index(html, `name="age"`) {
		t.Fatalf("fields rendered out of order:\n%s", html)
	}
	if !strings.Contains(html, `value="abc"`) {
		t.Fatalf("expected submitted value to be redisplayed:\n%s", html)
	}
	if !strings.Contains(html, "</div>\n<div>") {
		t.Fatalf("expected fields separated by newlines:\n%s", html)
	}
}

func TestInstancesAreIndependent(t *testing.T) {
	def := personDefinition(t)

	a := def.Clone(form.Data{"name": "", "age": "1"}, "")
	b := def.Clone(form.Data{"name": "Bea", "age": "2"}, "")

	if a.Validate() {
		t.Fatalf("expected a to be invalid")
	}
	if !b.Validate() {
		t.Fatalf("expected b to be valid, errors %v", b.Errors())
	}

	if diff := cmp.Diff(map[string]any{"name": "Bea", "age": 2}, b.CleanedData()); diff != "" {
		t.Fatalf("b cleaned data mismatch (-want +got):\n%s", diff)
	}
	if len(b.Errors()) != 0 {
		t.Fatalf("errors from a leaked into b: %v", b.Errors())
	}

	bName, _ := b.Field("name")
	if bName.Attrs().Error != "" {
		t.Fatalf("inline error leaked into sibling: %q", bName.Attrs().Error)
	}
	defName, _ := def.Field("name")
	if defName.Attrs().Error != "" || defName.Attrs().Initial != "" {
		t.Fatalf("definition mutated by instances: %+v", defName.Attrs())
	}

	c := def.Clone(nil, "")
	if strings.Contains(c.Render("li"), "Bea") {
		t.Fatalf("fresh clone observed another instance's bound value")
	}
}

func TestConcurrentClonesShareNothing(t *testing.T) {
	def := personDefinition(t)

	var wg sync.WaitGroup
	failures := make(chan string, 64)
	for n := 0; n < 64; n++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			name := fmt.Sprintf("user-%d", n)
			data := form.Data{"name": name, "age": fmt.Sprint(n)}
			if n%2 == 0 {
				data["name"] = ""
			}
			inst := def.Clone(data, "")
			valid := inst.Validate()
			switch {
			case n%2 == 0 && valid:
				failures <- fmt.Sprintf("%d: expected invalid", n)
			case n%2 == 1 && !valid:
				failures <- fmt.Sprintf("%d: expected valid", n)
			case n%2 == 1 && inst.CleanedData()["name"] != name:
				failures <- fmt.Sprintf("%d: cleaned name %v", n, inst.CleanedData()["name"])
			case inst.CleanedData()["age"] != n:
				failures <- fmt.Sprintf("%d: cleaned age %v", n, inst.CleanedData()["age"])
			}
			_ = inst.Render("li")
		}(n)
	}
	wg.Wait()
	close(failures)

	for failure := range failures {
		t.Fatal(failure)
	}
}

func TestPrefixNamespacesFields(t *testing.T) {
	def := personDefinition(t)
	data := form.Data{
		"a-name": "Ann", "a-age": "30",
		"b-name": "", "b-age": "40",
	}

	a := def.Clone(data, "a-")
	b := def.Clone(data, "b-")

	if !a.Validate() {
		t.Fatalf("expected a valid, errors %v", a.Errors())
	}
	if diff := cmp.Diff(map[string]any{"name": "Ann", "age": 30}, a.CleanedData()); diff != "" {
		t.Fatalf("a cleaned mismatch (-want +got):\n%s", diff)
	}
	if b.Validate() {
		t.Fatalf("expected b invalid")
	}
	if diff := cmp.Diff(map[string]string{"name": field.MessageRequired}, b.Errors()); diff != "" {
		t.Fatalf("b errors mismatch (-want +got):\n%s", diff)
	}

	html := a.Render("li")
	if !strings.Contains(html, `name="a-name"`) || !strings.Contains(html, `id="id_a-age"`) {
		t.Fatalf("expected prefixed names:\n%s", html)
	}
	if !strings.Contains(html, `value="Ann"`) || strings.Contains(html, `value="40"`) {
		t.Fatalf("bind must only consider keys with the instance prefix:\n%s", html)
	}
	if a.Prefix() != "a-" {
		t.Fatalf("unexpected prefix %q", a.Prefix())
	}
}

func TestCloneFromInstance(t *testing.T) {
	def := personDefinition(t)
	first := def.Clone(form.Data{"p-name": "Zed"}, "p-")

	second := first.Clone(nil, "")
	if second.IsBound() {
		t.Fatalf("clone of instance must not inherit bound state")
	}
	if second.Prefix() != "p-" {
		t.Fatalf("expected prefix carried over, got %q", second.Prefix())
	}
	f, _ := second.Field("name")
	if f.Attrs().Initial != "Zed" {
		t.Fatalf("expected displayed value carried over, got %#v", f.Attrs().Initial)
	}

	f.Attrs().Initial = "changed"
	orig, _ := first.Field("name")
	if orig.Attrs().Initial != "Zed" {
		t.Fatalf("clone shares storage with source instance")
	}
}

type brokenField struct {
	field.Attributes
}

func (b *brokenField) Kind() field.Kind          { return "broken" }
func (b *brokenField) Clean(string) (any, error) { return nil, errors.New("not implemented") }
func (b *brokenField) Render(string) string      { return "" }
func (b *brokenField) Clone() field.Field        { return &brokenField{Attributes: b.Attributes} }

func TestValidatePanicsOnProgrammingErrors(t *testing.T) {
	def := form.MustNew(form.F("broken", &brokenField{}))
	inst := def.Clone(form.Data{}, "")

	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for non-validation error")
		}
	}()
	inst.Validate()
}
