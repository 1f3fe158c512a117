package page

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	theme "github.com/goliatone/go-theme"
	"gopkg.in/yaml.v3"
)

// ErrUnknownTheme is returned by ManifestSelector for a name other than the
// manifest's own.
var ErrUnknownTheme = errors.New("page renderer: unknown theme")

type manifestSelector struct {
	manifest *theme.Manifest
}

// ManifestSelector serves a single manifest. An empty name selects it; an
// unknown variant falls back to the base tokens.
func ManifestSelector(manifest *theme.Manifest) theme.ThemeSelector {
	return manifestSelector{manifest: manifest}
}

func (s manifestSelector) Select(name, variant string, _ ...theme.QueryOption) (*theme.Selection, error) {
	if s.manifest == nil {
		return nil, fmt.Errorf("%w: no manifest configured", ErrUnknownTheme)
	}
	name = strings.TrimSpace(name)
	if name != "" && name != s.manifest.Name {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTheme, name)
	}
	variant = strings.TrimSpace(variant)
	if _, ok := s.manifest.Variants[variant]; !ok {
		variant = ""
	}
	return &theme.Selection{
		Theme:    s.manifest.Name,
		Variant:  variant,
		Manifest: s.manifest,
	}, nil
}

// RendererConfig flattens a selection into tokens and CSS variables: the
// manifest tokens overlaid with the selected variant's tokens, each exposed
// as --<token>.
func RendererConfig(selection *theme.Selection) *theme.RendererConfig {
	if selection == nil {
		return nil
	}
	tokens := map[string]string{}
	if selection.Manifest != nil {
		for key, value := range selection.Manifest.Tokens {
			tokens[key] = value
		}
		if variant, ok := selection.Manifest.Variants[selection.Variant]; ok {
			for key, value := range variant.Tokens {
				tokens[key] = value
			}
		}
	}

	cssVars := make(map[string]string, len(tokens))
	for key, value := range tokens {
		cssVars["--"+strings.TrimPrefix(key, "--")] = value
	}

	return &theme.RendererConfig{
		Theme:   selection.Theme,
		Variant: selection.Variant,
		Tokens:  tokens,
		CSSVars: cssVars,
	}
}

type themeContext struct {
	Name         string
	Variant      string
	Tokens       map[string]string
	CSSVars      map[string]string
	CSSVarsStyle string
}

func buildThemeContext(cfg *theme.RendererConfig) themeContext {
	if cfg == nil {
		return themeContext{}
	}
	ctx := themeContext{
		Name:    cfg.Theme,
		Variant: cfg.Variant,
		Tokens:  copyStringMap(cfg.Tokens),
		CSSVars: copyStringMap(cfg.CSSVars),
	}
	ctx.CSSVarsStyle = cssVarsStyle(ctx.CSSVars)
	return ctx
}

func (c themeContext) templateData() map[string]any {
	return map[string]any{
		"name":    c.Name,
		"variant": c.Variant,
		"tokens":  c.Tokens,
	}
}

// cssVarsStyle renders declarations in key order so output is stable.
func cssVarsStyle(vars map[string]string) string {
	if len(vars) == 0 {
		return ""
	}
	keys := make([]string, 0, len(vars))
	for key := range vars {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, key := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s;", key, vars[key]))
	}
	return strings.Join(parts, " ")
}

func copyStringMap(in map[string]string) map[string]string {
	if len(in) == 0 {
		return nil
	}
	out := make(map[string]string, len(in))
	for key, value := range in {
		out[key] = value
	}
	return out
}

type manifestFile struct {
	Name     string            `yaml:"name"`
	Version  string            `yaml:"version"`
	Tokens   map[string]string `yaml:"tokens"`
	Variants map[string]struct {
		Tokens map[string]string `yaml:"tokens"`
	} `yaml:"variants"`
}

// LoadManifest decodes a YAML (or JSON) theme file:
//
//	name: acme
//	version: 1.0.0
//	tokens: {brand: "#2f5d8a"}
//	variants:
//	  dark: {tokens: {brand: "#0b1d2e"}}
func LoadManifest(r io.Reader) (*theme.Manifest, error) {
	var file manifestFile
	if err := yaml.NewDecoder(r).Decode(&file); err != nil {
		return nil, fmt.Errorf("page renderer: decode theme manifest: %w", err)
	}
	if strings.TrimSpace(file.Name) == "" {
		return nil, errors.New("page renderer: theme manifest name is required")
	}

	manifest := &theme.Manifest{
		Name:    file.Name,
		Version: file.Version,
		Tokens:  file.Tokens,
	}
	if len(file.Variants) > 0 {
		manifest.Variants = make(map[string]theme.Variant, len(file.Variants))
		for name, variant := range file.Variants {
			manifest.Variants[name] = theme.Variant{Tokens: variant.Tokens}
		}
	}
	return manifest, nil
}
