// Package template holds the markup substitution used by every field type and
// the TemplateRenderer seam that page-level renderers plug named template
// engines into.
//
// Substitute replaces ((word)) tokens with values from a context map and
// nothing else. It performs no escaping; values must be sanitised before they
// enter the context.
package template
