package main

import (
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/goliatone/go-reform/internal/server"
)

// serveCmd serves the selected form over HTTP.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve a form over HTTP",
	Long: `Serve renders the form on GET and validates it on POST, reporting
"The form is valid!" or "The form is not valid!" above the re-rendered form.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		loaded, err := loadForm(ctx, sourceFromViper())
		if err != nil {
			return err
		}
		handler, err := newFormHandler(loaded, serveSettings{
			Prefix:   viper.GetString("prefix"),
			TagStyle: viper.GetString("tag"),
			Renderer: viper.GetString("renderer"),
			Theme:    viper.GetString("theme"),
			Variant:  viper.GetString("variant"),
		})
		if err != nil {
			return err
		}

		return server.ListenAndServe(ctx, viper.GetString("addr"), server.NewMux(handler),
			viper.GetDuration("shutdown-timeout"), slog.Default())
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().String("addr", ":8080", "listen address")
	serveCmd.Flags().String("tag", "div", "element wrapping each field")
	serveCmd.Flags().String("renderer", "page", "renderer: page, html")
	serveCmd.Flags().String("theme", "", "theme manifest file (YAML)")
	serveCmd.Flags().String("variant", "", "theme variant")
	serveCmd.Flags().Duration("shutdown-timeout", 5*time.Second, "grace period for in-flight requests")
	serveCmd.PreRun = func(cmd *cobra.Command, _ []string) {
		for _, name := range []string{"addr", "tag", "renderer", "theme", "variant", "shutdown-timeout"} {
			_ = viper.BindPFlag(name, cmd.Flags().Lookup(name))
		}
	}
}

type serveSettings struct {
	Prefix   string
	TagStyle string
	Renderer string
	Theme    string
	Variant  string
}

func newFormHandler(loaded loadedForm, settings serveSettings) (*server.Handler, error) {
	pageOptions, err := themeOptions(settings.Theme, settings.Variant)
	if err != nil {
		return nil, err
	}
	registry, err := renderers(pageOptions...)
	if err != nil {
		return nil, err
	}
	rendererName := settings.Renderer
	if rendererName == "" {
		rendererName = "page"
	}
	renderer, err := registry.Get(rendererName)
	if err != nil {
		return nil, err
	}

	return server.New(loaded.Definition,
		server.WithLogger(slog.Default()),
		server.WithRenderer(renderer),
		server.WithPrefix(settings.Prefix),
		server.WithTagStyle(settings.TagStyle),
		server.WithTitle(loaded.Title),
		server.WithOnValid(logSubmission),
	), nil
}

func logSubmission(r *http.Request, cleaned map[string]any) {
	slog.Info("valid submission", "path", r.URL.Path, "fields", len(cleaned))
	slog.Debug("cleaned data", "data", cleaned)
}
