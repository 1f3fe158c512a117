package form_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-reform/pkg/field"
	"github.com/goliatone/go-reform/pkg/form"
)

func TestFromHTTPGet(t *testing.T) {
	req, err := form.FromHTTP(httptest.NewRequest(http.MethodGet, "/?name=ignored", nil))
	if err != nil {
		t.Fatalf("from http: %v", err)
	}
	if req.IsPost() {
		t.Fatalf("GET must not be treated as a submission")
	}
	if req.PostData() != nil {
		t.Fatalf("expected nil data for GET, got %v", req.PostData())
	}

	def := form.MustNew(form.F("name", field.NewText()))
	if form.CloneRequest(def, req, "").IsBound() {
		t.Fatalf("GET request produced a bound instance")
	}
}

func TestFromHTTPPost(t *testing.T) {
	body := url.Values{
		"name": {"Ada", "second value ignored"},
		"age":  {"36"},
	}.Encode()
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	req, err := form.FromHTTP(r)
	if err != nil {
		t.Fatalf("from http: %v", err)
	}
	if !req.IsPost() {
		t.Fatalf("expected POST")
	}
	if diff := cmp.Diff(form.Data{"name": "Ada", "age": "36"}, req.PostData()); diff != "" {
		t.Fatalf("post data mismatch (-want +got):\n%s", diff)
	}

	def := form.MustNew(
		form.F("name", field.NewText()),
		form.F("age", field.NewInteger()),
	)
	inst := form.CloneRequest(def, req, "")
	if !inst.IsBound() || !inst.Validate() {
		t.Fatalf("expected bound valid instance, errors %v", inst.Errors())
	}
}

func TestFromHTTPNil(t *testing.T) {
	if _, err := form.FromHTTP(nil); err == nil {
		t.Fatalf("expected error for nil request")
	}
}

type stubRequest struct {
	post bool
	data form.Data
}

func (s stubRequest) IsPost() bool        { return s.post }
func (s stubRequest) PostData() form.Data { return s.data }

func TestCloneRequestWithCustomCollaborator(t *testing.T) {
	def := form.MustNew(form.F("name", field.NewText()))

	inst := form.CloneRequest(def, stubRequest{post: true}, "")
	if !inst.IsBound() {
		t.Fatalf("a POST without data must still bind")
	}
	if inst.Validate() {
		t.Fatalf("expected required field to fail")
	}

	if form.CloneRequest(def, nil, "").IsBound() {
		t.Fatalf("nil request must produce an unbound instance")
	}
}
