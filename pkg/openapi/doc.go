// Package openapi builds form definitions from the request body of an OpenAPI
// 3 operation. Only top-level scalar properties become fields.
package openapi
