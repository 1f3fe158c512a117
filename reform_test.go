package reform_test

import (
	"context"
	"io/fs"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	reform "github.com/goliatone/go-reform"
	"github.com/goliatone/go-reform/pkg/field"
)

func contactForm() *reform.Definition {
	return reform.MustNew(
		reform.F("name", field.NewText()),
		reform.F("email", field.NewEmail(field.Optional())),
	)
}

func TestCloneValidateRender(t *testing.T) {
	inst := reform.Clone(contactForm(), reform.Data{"name": "Ada", "email": "nope"}, "")
	if inst.Validate() {
		t.Fatalf("expected invalid email to fail")
	}
	if diff := cmp.Diff(map[string]string{"email": field.MessageInvalidEmail}, inst.Errors()); diff != "" {
		t.Fatalf("errors mismatch (-want +got):\n%s", diff)
	}

	out, err := reform.RenderHTML(context.Background(), inst, "html", reform.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(string(out), field.MessageInvalidEmail) {
		t.Fatalf("expected inline error:\n%s", out)
	}

	if _, err := reform.RenderHTML(context.Background(), inst, "pdf", reform.RenderOptions{}); err == nil {
		t.Fatalf("expected unknown renderer error")
	}
}

func TestCloneHTTP(t *testing.T) {
	body := url.Values{"c-name": {"Grace"}}.Encode()
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	inst, err := reform.CloneHTTP(contactForm(), r, "c-")
	if err != nil {
		t.Fatalf("clone: %v", err)
	}
	if !inst.Validate() {
		t.Fatalf("expected valid submission, errors %v", inst.Errors())
	}
	if diff := cmp.Diff(map[string]any{"name": "Grace", "email": nil}, inst.CleanedData()); diff != "" {
		t.Fatalf("cleaned mismatch (-want +got):\n%s", diff)
	}

	inst, err = reform.CloneHTTP(contactForm(), httptest.NewRequest(http.MethodGet, "/", nil), "")
	if err != nil || inst.IsBound() {
		t.Fatalf("expected unbound instance for GET, err %v", err)
	}
}

func TestEmbeddedFiles(t *testing.T) {
	if _, err := fs.ReadFile(reform.EmbeddedTemplates(), "templates/page.tpl"); err != nil {
		t.Fatalf("expected page layout: %v", err)
	}
	if _, err := fs.ReadFile(reform.AssetsFS(), "reform.css"); err != nil {
		t.Fatalf("expected stylesheet: %v", err)
	}
}
