package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/goliatone/go-reform/pkg/form"
	"github.com/goliatone/go-reform/pkg/render"
	"github.com/goliatone/go-reform/pkg/renderers/tui"
)

// promptCmd fills the form in interactively and prints the cleaned data.
var promptCmd = &cobra.Command{
	Use:   "prompt",
	Short: "Fill a form in from the terminal",
	Long: `Prompt asks for every field, validating each answer with the field's own
rules, and prints the cleaned data as json, form or pretty text.`,
	Args: cobra.NoArgs,
	PreRun: func(cmd *cobra.Command, _ []string) {
		_ = viper.BindPFlag("format", cmd.Flags().Lookup("format"))
	},
	RunE: func(cmd *cobra.Command, _ []string) error {
		format, ok := tui.ParseOutputFormat(viper.GetString("format"))
		if !ok {
			return fmt.Errorf("unknown --format %q (want json, form or pretty)", viper.GetString("format"))
		}

		ctx := cmd.Context()
		loaded, err := loadForm(ctx, sourceFromViper())
		if err != nil {
			return err
		}

		renderer := tui.New(
			tui.WithPromptDriver(tui.NewSurveyDriver(os.Stderr)),
			tui.WithOutputFormat(format),
		)
		inst := form.Clone(loaded.Definition, nil, viper.GetString("prefix"))
		out, err := renderer.Render(ctx, inst, render.RenderOptions{Title: loaded.Title})
		switch {
		case errors.Is(err, tui.ErrAborted):
			return errors.New("aborted")
		case err != nil:
			return err
		}

		_, err = fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return err
	},
}

func init() {
	rootCmd.AddCommand(promptCmd)

	promptCmd.Flags().String("format", string(tui.OutputFormatJSON), "output format: json, form, pretty")
}
