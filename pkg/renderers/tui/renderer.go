// Package tui collects form values in a terminal. Every non-button field is
// prompted with its own Clean as the validator, the answers are bound to the
// instance, and the cleaned data is serialised as the render output.
package tui

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/goliatone/go-reform/pkg/field"
	"github.com/goliatone/go-reform/pkg/form"
	"github.com/goliatone/go-reform/pkg/render"
)

// NoneOption is offered first by select prompts for optional choice fields.
const NoneOption = "(none)"

// Renderer implements render.Renderer for terminal-driven sessions.
type Renderer struct {
	driver            PromptDriver
	outputFormat      OutputFormat
	submitTransformer SubmitTransformer
	theme             Theme
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs a TUI renderer with defaults (survey driver, JSON output).
func New(options ...Option) *Renderer {
	r := &Renderer{
		outputFormat: OutputFormatJSON,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	if r.driver == nil {
		r.driver = NewSurveyDriver(nil)
	}
	return r
}

// Name reports the renderer identifier.
func (r *Renderer) Name() string {
	return "tui"
}

// ContentType reports the serialization format used by Render.
func (r *Renderer) ContentType() string {
	switch r.outputFormat {
	case OutputFormatFormURLEncoded:
		return "application/x-www-form-urlencoded"
	case OutputFormatPrettyText:
		return "text/plain; charset=utf-8"
	default:
		return "application/json"
	}
}

// Render prompts for every field, binds the answers to inst and returns the
// serialised cleaned data. inst is left bound and validated.
func (r *Renderer) Render(ctx context.Context, inst *form.Instance, opts render.RenderOptions) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("tui: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r.driver == nil {
		return nil, errors.New("tui: prompt driver is nil")
	}
	if inst == nil {
		return nil, errors.New("tui: form instance is nil")
	}

	opts = opts.Normalize()
	if title := strings.TrimSpace(opts.Title); title != "" {
		if err := r.info(ctx, title); err != nil {
			return nil, err
		}
	}
	for _, message := range opts.Messages {
		if err := r.info(ctx, message); err != nil {
			return nil, err
		}
	}

	data := form.Data{}
	for _, f := range inst.Fields() {
		if f.Kind() == field.KindButton {
			continue
		}
		raw, err := r.promptField(ctx, f)
		if err != nil {
			return nil, fmt.Errorf("tui: prompt %q: %w", f.Attrs().Name, err)
		}
		data[f.Attrs().FullName()] = raw
	}

	inst.Bind(data)
	if !inst.Validate() {
		summary := render.ErrorSummary(inst)
		for _, fe := range summary {
			_ = r.info(ctx, r.theme.ErrorPrefix+fe.Label+": "+fe.Message)
		}
		return nil, fmt.Errorf("%w: %d field(s) failed", ErrInvalid, len(summary))
	}

	values := inst.CleanedData()
	if r.submitTransformer != nil {
		var err error
		values, err = r.submitTransformer(values)
		if err != nil {
			return nil, fmt.Errorf("tui: submit transformer: %w", err)
		}
	}

	return r.serialize(inst.Names(), values)
}

func (r *Renderer) promptField(ctx context.Context, f field.Field) (string, error) {
	attrs := f.Attrs()
	validate := cleanValidator(f)

	switch f.Kind() {
	case field.KindPassword:
		return r.driver.Password(ctx, InputConfig{
			Message:   displayLabel(attrs),
			Help:      attrs.HelpText,
			Validator: validate,
		})
	case field.KindTextArea:
		return r.driver.TextArea(ctx, TextAreaConfig{
			Message:   displayLabel(attrs),
			Default:   displayValue(attrs.Initial),
			Help:      attrs.HelpText,
			Validator: validate,
		})
	case field.KindDropdown, field.KindRadioChoice:
		return r.promptChoice(ctx, attrs)
	default:
		return r.driver.Input(ctx, InputConfig{
			Message:   displayLabel(attrs),
			Default:   displayValue(attrs.Initial),
			Help:      attrs.HelpText,
			Validator: validate,
		})
	}
}

// promptChoice maps choice labels to the select prompt and the picked index
// back to a choice value. Optional fields get NoneOption first, which maps to
// an empty submission.
func (r *Renderer) promptChoice(ctx context.Context, attrs *field.Attributes) (string, error) {
	values := make([]string, 0, len(attrs.Choices)+1)
	labels := make([]string, 0, len(attrs.Choices)+1)
	if !attrs.Required {
		values = append(values, "")
		labels = append(labels, NoneOption)
	}
	for _, choice := range attrs.Choices {
		values = append(values, choice.Value)
		labels = append(labels, choice.Label)
	}

	idx, err := r.driver.Select(ctx, SelectConfig{
		Message:      displayLabel(attrs),
		Options:      labels,
		DefaultIndex: indexOf(values, displayValue(attrs.Initial)),
		Help:         attrs.HelpText,
	})
	if err != nil {
		return "", err
	}
	if idx < 0 || idx >= len(values) {
		return "", nil
	}
	return values[idx], nil
}

func (r *Renderer) info(ctx context.Context, msg string) error {
	return r.driver.Info(ctx, r.theme.InfoPrefix+msg)
}

func (r *Renderer) serialize(order []string, values map[string]any) ([]byte, error) {
	switch r.outputFormat {
	case OutputFormatFormURLEncoded:
		return []byte(flattenForm(values)), nil
	case OutputFormatPrettyText:
		return []byte(prettyPrint(order, values)), nil
	default:
		return json.Marshal(values)
	}
}

// cleanValidator reuses the field's own cleaning so prompts reject exactly
// what form validation would.
func cleanValidator(f field.Field) func(string) error {
	return func(raw string) error {
		_, err := f.Clean(raw)
		if err == nil {
			return nil
		}
		if vErr, ok := field.AsValidationError(err); ok {
			return errors.New(vErr.Message)
		}
		return err
	}
}

func displayLabel(attrs *field.Attributes) string {
	if attrs.Label != "" {
		return attrs.Label
	}
	return attrs.Name
}

func displayValue(value any) string {
	if value == nil {
		return ""
	}
	return fmt.Sprint(value)
}

func flattenForm(values map[string]any) string {
	out := url.Values{}
	for key, value := range values {
		out.Set(key, displayValue(value))
	}
	return out.Encode()
}

// prettyPrint writes one key=value line per field in definition order; keys
// the transformer added follow in no particular order.
func prettyPrint(order []string, values map[string]any) string {
	var b strings.Builder
	seen := make(map[string]struct{}, len(values))
	for _, key := range order {
		value, ok := values[key]
		if !ok {
			continue
		}
		seen[key] = struct{}{}
		fmt.Fprintf(&b, "%s=%s\n", key, displayValue(value))
	}
	for key, value := range values {
		if _, ok := seen[key]; ok {
			continue
		}
		fmt.Fprintf(&b, "%s=%s\n", key, displayValue(value))
	}
	return b.String()
}
