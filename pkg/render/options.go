package render

import (
	"net/http"
	"strings"

	"github.com/goliatone/go-reform/pkg/field"
)

// RenderOptions describe per-request presentation choices. They never change
// what the form instance validates.
type RenderOptions struct {
	// TagStyle wraps every field; defaults to field.DefaultTagStyle.
	TagStyle string
	// Action is the form action URL. Empty posts back to the current URL.
	Action string
	// Method defaults to POST.
	Method string
	// Title is used by page-level renderers.
	Title string
	// Messages are banner lines shown above the form, e.g. "The form is
	// valid!".
	Messages []string
}

// Normalize fills defaults and cleans up messages.
func (o RenderOptions) Normalize() RenderOptions {
	out := o
	out.TagStyle = strings.TrimSpace(out.TagStyle)
	if out.TagStyle == "" {
		out.TagStyle = field.DefaultTagStyle
	}
	out.Method = strings.ToUpper(strings.TrimSpace(out.Method))
	if out.Method == "" {
		out.Method = http.MethodPost
	}
	out.Messages = MergeMessages(nil, o.Messages...)
	return out
}

// ContainerTag returns the element that should enclose fields rendered with
// tagStyle: list items need a list, anything else gets a div.
func ContainerTag(tagStyle string) string {
	if strings.TrimSpace(tagStyle) == "li" || strings.TrimSpace(tagStyle) == "" {
		return "ul"
	}
	return "div"
}
