package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/CTAG07/Sitewright/pkg/preview"
	"github.com/CTAG07/Sitewright/pkg/templating"
	"github.com/CTAG07/Sitewright/pkg/wizard"
	"github.com/spf13/cobra"
)

// siteFlags are the builder fields accepted on the command line.
type siteFlags struct {
	name         string
	businessType string
	services     string
	description  string
	colorScheme  string
	overrideDir  string
}

var renderFlags siteFlags

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Renders a generated site to stdout",
	Long: `The render command runs the builder with the given answers, skipping the
generation delay, and prints the full HTML page of the resulting site.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return renderSite(cmd.Context(), cmd.OutOrStdout(), renderFlags)
	},
}

var snippetCmd = &cobra.Command{
	Use:   "snippet",
	Short: "Prints the HTML code snippet for a site",
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := generate(cmd.Context(), renderFlags)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), preview.Snippet(preview.Build(data)))
		return err
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Prints build information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "sitewright %s (commit %s, built %s)\n", Version, Commit, BuildDate)
	},
}

func init() {
	for _, c := range []*cobra.Command{renderCmd, snippetCmd} {
		f := c.Flags()
		f.StringVar(&renderFlags.name, "name", "", "business name")
		f.StringVar(&renderFlags.businessType, "type", "", "business type, e.g. bakery")
		f.StringVar(&renderFlags.services, "services", "", "comma separated services")
		f.StringVar(&renderFlags.description, "description", "", "business description")
		f.StringVar(&renderFlags.colorScheme, "scheme", "", "color scheme, e.g. warm")
	}
	renderCmd.Flags().StringVar(&renderFlags.overrideDir, "templates", "", "directory with template overrides")
	rootCmd.AddCommand(renderCmd, snippetCmd, versionCmd)
}

// generate drives a wizard through both steps with no generation delay.
func generate(ctx context.Context, flags siteFlags) (wizard.WebsiteData, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	w := wizard.New(wizard.WithGenerator(wizard.NewDelayGenerator(0)))
	err := w.SetAll(map[wizard.Field]string{
		wizard.FieldBusinessName: wizard.Clean(flags.name),
		wizard.FieldBusinessType: wizard.Clean(flags.businessType),
		wizard.FieldServices:     wizard.Clean(flags.services),
		wizard.FieldDescription:  wizard.Clean(flags.description),
		wizard.FieldColorScheme:  wizard.Clean(flags.colorScheme),
	})
	if err != nil {
		return wizard.WebsiteData{}, err
	}
	if err = w.Next(); err != nil {
		return wizard.WebsiteData{}, fmt.Errorf("--name and --type are required: %w", err)
	}
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	return w.Generate(ctx)
}

func renderSite(ctx context.Context, out io.Writer, flags siteFlags) error {
	data, err := generate(ctx, flags)
	if err != nil {
		return err
	}
	cfg := templating.DefaultConfig()
	cfg.OverrideDir = flags.overrideDir
	tm, err := templating.NewTemplateManager(slog.New(slog.NewTextHandler(io.Discard, nil)), cfg)
	if err != nil {
		return err
	}
	return tm.Execute(out, "site.tmpl.html", preview.Build(data))
}
