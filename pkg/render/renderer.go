package render

import (
	"context"

	"github.com/goliatone/go-reform/pkg/form"
)

// Renderer converts a form instance into a byte representation (an HTML
// fragment, a full page, serialised terminal answers).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, inst *form.Instance, options RenderOptions) ([]byte, error)
}
