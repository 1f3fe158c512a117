package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/goliatone/go-reform/internal/server"
	"github.com/goliatone/go-reform/pkg/form"
	"github.com/goliatone/go-reform/pkg/render"
)

var renderOutput string

// renderCmd prints the form markup, optionally bound to a submission.
var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a form as HTML",
	Long: `Render writes the form markup to stdout or --output. With --data the
form is bound to the url-encoded submission and rendered with inline errors.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		loaded, err := loadForm(ctx, sourceFromViper())
		if err != nil {
			return err
		}
		data, err := parseData(viper.GetString("data"))
		if err != nil {
			return err
		}

		pageOptions, err := themeOptions(viper.GetString("theme"), viper.GetString("variant"))
		if err != nil {
			return err
		}
		registry, err := renderers(pageOptions...)
		if err != nil {
			return err
		}
		renderer, err := registry.Get(viper.GetString("renderer"))
		if err != nil {
			return err
		}

		out, err := renderForm(ctx, renderer, loaded, data, renderSettings{
			Prefix:   viper.GetString("prefix"),
			TagStyle: viper.GetString("tag"),
		})
		if err != nil {
			return err
		}

		if renderOutput == "" {
			_, err = cmd.OutOrStdout().Write(out)
			return err
		}
		if err := os.WriteFile(renderOutput, out, 0o644); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Form written to %s\n", renderOutput)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(renderCmd)

	renderCmd.Flags().StringVarP(&renderOutput, "output", "o", "", "output file (default: stdout)")
	renderCmd.Flags().String("data", "", "url-encoded submission to bind, e.g. \"firstName=Ada&age=36\"")
	renderCmd.Flags().String("renderer", "html", "renderer: html, page")
	renderCmd.Flags().String("tag", "li", "element wrapping each field")
	renderCmd.Flags().String("theme", "", "theme manifest file (YAML)")
	renderCmd.Flags().String("variant", "", "theme variant")
	// Shared keys are bound again in PreRun so the running command's flags win.
	renderCmd.PreRun = func(cmd *cobra.Command, _ []string) {
		for _, name := range []string{"data", "renderer", "tag", "theme", "variant"} {
			_ = viper.BindPFlag(name, cmd.Flags().Lookup(name))
		}
	}
}

type renderSettings struct {
	Prefix   string
	TagStyle string
}

// renderForm clones the definition, binds data when present and renders it
// with the same validity banner the server shows.
func renderForm(ctx context.Context, renderer render.Renderer, loaded loadedForm, data form.Data, settings renderSettings) ([]byte, error) {
	inst := form.Clone(loaded.Definition, data, settings.Prefix)

	var messages []string
	if inst.IsBound() {
		if inst.Validate() {
			messages = append(messages, server.MessageValid)
		} else {
			messages = append(messages, server.MessageInvalid)
		}
	}

	return renderer.Render(ctx, inst, render.RenderOptions{
		TagStyle: settings.TagStyle,
		Title:    loaded.Title,
		Messages: messages,
	})
}
