package openapi

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-reform/pkg/field"
	"github.com/goliatone/go-reform/pkg/form"
)

// WidgetExtension overrides the field variant chosen for a string property.
// The only recognised value is "textarea".
const WidgetExtension = "x-reform-widget"

// LongTextThreshold is the maxLength above which strings render as textareas.
const LongTextThreshold = 255

var (
	// ErrOperationNotFound is returned when no operation carries the id.
	ErrOperationNotFound = errors.New("openapi: operation not found")
	// ErrNoRequestBody is returned when the operation has no object body to
	// turn into fields.
	ErrNoRequestBody = errors.New("openapi: operation has no object request body")
)

// Preferred request media types, in order.
var mediaTypes = []string{
	"application/x-www-form-urlencoded",
	"application/json",
}

// Option configures Build.
type Option func(*config)

type config struct {
	order        []string
	submitLabel  string
	externalRefs bool
	validate     bool
}

// WithFieldOrder lists property names that come first, in the given order.
// Remaining properties follow alphabetically.
func WithFieldOrder(names ...string) Option {
	return func(cfg *config) {
		cfg.order = append([]string(nil), names...)
	}
}

// WithSubmit appends a Button named "submit" carrying label.
func WithSubmit(label string) Option {
	return func(cfg *config) {
		cfg.submitLabel = strings.TrimSpace(label)
	}
}

// WithExternalRefs lets the loader follow $ref values into other documents.
func WithExternalRefs(allowed bool) Option {
	return func(cfg *config) {
		cfg.externalRefs = allowed
	}
}

// WithValidation validates the whole document before building.
func WithValidation() Option {
	return func(cfg *config) {
		cfg.validate = true
	}
}

// Operations lists the operation ids of a document in sorted order. Operations
// without an id are listed as "<method>:<path>".
func Operations(ctx context.Context, raw []byte) ([]string, error) {
	spec, err := load(ctx, raw, config{})
	if err != nil {
		return nil, err
	}
	var ids []string
	eachOperation(spec, func(id string, _ *openapi3.Operation) bool {
		ids = append(ids, id)
		return true
	})
	sort.Strings(ids)
	return ids, nil
}

// Build loads raw (JSON or YAML), finds operationID and maps the properties
// of its request body schema to fields.
func Build(ctx context.Context, raw []byte, operationID string, options ...Option) (*form.Definition, error) {
	cfg := config{}
	for _, opt := range options {
		if opt != nil {
			opt(&cfg)
		}
	}

	spec, err := load(ctx, raw, cfg)
	if err != nil {
		return nil, err
	}

	var operation *openapi3.Operation
	eachOperation(spec, func(id string, op *openapi3.Operation) bool {
		if id == operationID {
			operation = op
			return false
		}
		return true
	})
	if operation == nil {
		return nil, fmt.Errorf("%w: %q", ErrOperationNotFound, operationID)
	}

	schema := requestSchema(operation.RequestBody)
	if schema == nil || len(schema.Properties) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrNoRequestBody, operationID)
	}

	required := make(map[string]bool, len(schema.Required))
	for _, name := range schema.Required {
		required[name] = true
	}

	var entries []form.Entry
	for _, name := range orderedProperties(schema.Properties, cfg.order) {
		prop := schema.Properties[name]
		if prop == nil || prop.Value == nil {
			continue
		}
		f := fieldFor(prop.Value, required[name])
		if f == nil {
			continue
		}
		entries = append(entries, form.F(name, f))
	}
	if cfg.submitLabel != "" {
		entries = append(entries, form.F("submit", field.NewButton(field.WithLabel(cfg.submitLabel))))
	}

	def, err := form.New(entries...)
	if err != nil {
		return nil, fmt.Errorf("openapi: build %q: %w", operationID, err)
	}
	return def, nil
}

func load(ctx context.Context, raw []byte, cfg config) (*openapi3.T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, errors.New("openapi: document payload is empty")
	}

	loader := &openapi3.Loader{
		Context:               ctx,
		IsExternalRefsAllowed: cfg.externalRefs,
	}
	spec, err := loader.LoadFromData(raw)
	if err != nil {
		return nil, fmt.Errorf("openapi: load document: %w", err)
	}
	if cfg.validate {
		if err := spec.Validate(ctx, openapi3.DisableExamplesValidation()); err != nil {
			return nil, fmt.Errorf("openapi: validate: %w", err)
		}
	}
	return spec, nil
}

// eachOperation visits operations in path order until visit returns false.
func eachOperation(spec *openapi3.T, visit func(id string, op *openapi3.Operation) bool) {
	if spec.Paths == nil {
		return
	}
	items := spec.Paths.Map()
	paths := make([]string, 0, len(items))
	for path := range items {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	for _, path := range paths {
		item := items[path]
		if item == nil {
			continue
		}
		for _, entry := range []struct {
			method string
			op     *openapi3.Operation
		}{
			{"GET", item.Get}, {"PUT", item.Put}, {"POST", item.Post},
			{"DELETE", item.Delete}, {"PATCH", item.Patch},
		} {
			if entry.op == nil {
				continue
			}
			id := entry.op.OperationID
			if id == "" {
				id = strings.ToLower(entry.method) + ":" + path
			}
			if !visit(id, entry.op) {
				return
			}
		}
	}
}

func requestSchema(body *openapi3.RequestBodyRef) *openapi3.Schema {
	if body == nil || body.Value == nil {
		return nil
	}
	content := body.Value.Content
	for _, mediaType := range mediaTypes {
		if mt, ok := content[mediaType]; ok && mt.Schema != nil && mt.Schema.Value != nil {
			return mt.Schema.Value
		}
	}
	keys := make([]string, 0, len(content))
	for key := range content {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		if mt := content[key]; mt.Schema != nil && mt.Schema.Value != nil {
			return mt.Schema.Value
		}
	}
	return nil
}

func orderedProperties(props openapi3.Schemas, order []string) []string {
	out := make([]string, 0, len(props))
	seen := make(map[string]bool, len(props))
	for _, name := range order {
		if _, ok := props[name]; ok && !seen[name] {
			out = append(out, name)
			seen[name] = true
		}
	}
	rest := make([]string, 0, len(props))
	for name := range props {
		if !seen[name] {
			rest = append(rest, name)
		}
	}
	sort.Strings(rest)
	return append(out, rest...)
}

// fieldFor maps a property schema to a field variant. Objects and arrays have
// no flat representation and yield nil.
func fieldFor(schema *openapi3.Schema, required bool) field.Field {
	opts := []field.Option{
		field.Required(required),
		field.WithLabel(strings.TrimSpace(schema.Title)),
		field.WithHelpText(strings.TrimSpace(schema.Description)),
	}

	switch firstSchemaType(schema.Type) {
	case openapi3.TypeInteger:
		return field.NewInteger(append(opts, initialOption(schema.Default)...)...)
	case openapi3.TypeNumber:
		return field.NewText(append(opts, initialOption(schema.Default)...)...)
	case openapi3.TypeBoolean:
		opts = append(opts, field.WithChoices(field.Pairs([]string{"true", "Yes"}, []string{"false", "No"})...))
		return field.NewRadioChoice(append(opts, initialOption(schema.Default)...)...)
	case openapi3.TypeString, "":
		if len(schema.Enum) > 0 {
			choices := make([]field.Choice, 0, len(schema.Enum))
			for _, value := range schema.Enum {
				s := fmt.Sprint(value)
				choices = append(choices, field.Choice{Value: s, Label: s})
			}
			opts = append(opts, field.WithChoices(choices...))
			return field.NewDropdown(append(opts, initialOption(schema.Default)...)...)
		}
		opts = append(opts, initialOption(schema.Default)...)
		switch {
		case schema.Format == "email":
			return field.NewEmail(opts...)
		case schema.Format == "password":
			return field.NewPassword(opts...)
		case isLongText(schema):
			return field.NewTextArea(opts...)
		default:
			return field.NewText(opts...)
		}
	default:
		return nil
	}
}

func isLongText(schema *openapi3.Schema) bool {
	if widget, ok := schema.Extensions[WidgetExtension].(string); ok && widget == "textarea" {
		return true
	}
	return schema.MaxLength != nil && *schema.MaxLength > LongTextThreshold
}

// initialOption renders a schema default the way it would be submitted.
// Whole JSON numbers lose their fractional part.
func initialOption(value any) []field.Option {
	switch v := value.(type) {
	case nil:
		return nil
	case float64:
		if v == math.Trunc(v) && math.Abs(v) < 1<<53 {
			return []field.Option{field.WithInitial(int64(v))}
		}
		return []field.Option{field.WithInitial(v)}
	case bool:
		if v {
			return []field.Option{field.WithInitial("true")}
		}
		return []field.Option{field.WithInitial("false")}
	default:
		return []field.Option{field.WithInitial(v)}
	}
}

func firstSchemaType(types *openapi3.Types) string {
	if types == nil {
		return ""
	}
	values := types.Slice()
	if len(values) == 0 {
		return ""
	}
	return values[0]
}
