package reform

import (
	"io/fs"

	"github.com/goliatone/go-reform/pkg/renderers/page"
)

// EmbeddedTemplates exposes the built-in page layout so callers can copy or
// extend it and pass the result back through page.WithTemplatesFS.
func EmbeddedTemplates() fs.FS {
	return page.TemplatesFS()
}

// AssetsFS exposes the default stylesheet served next to rendered pages.
//
// Typical mount:
//
//	mux.Handle("/assets/",
//	  http.StripPrefix("/assets/",
//	    http.FileServerFS(reform.AssetsFS()),
//	  ),
//	)
func AssetsFS() fs.FS {
	return page.AssetsFS()
}
