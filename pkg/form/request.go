package form

import (
	"fmt"
	"net/http"
	"net/url"
)

// Request is the contract a request-handling collaborator satisfies: it says
// whether the request submits data and, when it does, exposes that data.
type Request interface {
	IsPost() bool
	PostData() Data
}

type httpRequest struct {
	post bool
	data Data
}

// FromHTTP adapts an *http.Request. POST bodies are parsed eagerly so parse
// failures surface here rather than during validation.
func FromHTTP(r *http.Request) (Request, error) {
	if r == nil {
		return nil, fmt.Errorf("form: http request is nil")
	}
	if r.Method != http.MethodPost {
		return httpRequest{}, nil
	}
	if err := r.ParseForm(); err != nil {
		return nil, fmt.Errorf("form: parse request body: %w", err)
	}
	return httpRequest{post: true, data: FromValues(r.PostForm)}, nil
}

func (r httpRequest) IsPost() bool { return r.post }

func (r httpRequest) PostData() Data {
	if !r.post {
		return nil
	}
	return r.data
}

// FromValues keeps the first value submitted for every key.
func FromValues(values url.Values) Data {
	data := make(Data, len(values))
	for key, list := range values {
		if len(list) == 0 {
			data[key] = ""
			continue
		}
		data[key] = list[0]
	}
	return data
}

// CloneRequest clones src bound to the submitted data when req is a POST and
// unbound otherwise.
func CloneRequest(src Source, req Request, prefix string) *Instance {
	if req == nil || !req.IsPost() {
		return Clone(src, nil, prefix)
	}
	data := req.PostData()
	if data == nil {
		data = Data{}
	}
	return Clone(src, data, prefix)
}
