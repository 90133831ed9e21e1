package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/stack4devs/stack4devs/internal/adapters/catalog"
	"github.com/stack4devs/stack4devs/internal/app"
	"github.com/stack4devs/stack4devs/internal/platform/logging"
)

type cliOptions struct {
	catalogDir string
	logLevel   string
	jsonOutput bool
	logger     *slog.Logger
}

func newRootCommand() *cobra.Command {
	opts := &cliOptions{logLevel: "warn"}

	root := &cobra.Command{
		Use:           "stackctl",
		Short:         "Recommend tech stacks from the stack4devs catalog",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			opts.logger = logging.NewWithWriter(&logging.Config{
				Level:   opts.logLevel,
				Format:  "pretty",
				Service: "stackctl",
			}, cmd.ErrOrStderr())
		},
	}

	root.PersistentFlags().StringVar(&opts.catalogDir, "catalog", "", "catalog directory (defaults to the bundled catalog)")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", opts.logLevel, "trace, debug, info, warn or error")
	root.PersistentFlags().BoolVar(&opts.jsonOutput, "json", false, "output JSON")

	root.AddCommand(
		newRecommendCmd(opts),
		newAlternativesCmd(opts),
		newTiersCmd(opts),
		newRoadmapCmd(opts),
		newUseCasesCmd(opts),
		newCatalogCmd(opts),
	)

	return root
}

// service loads the selected catalog and wraps it for queries.
func (o *cliOptions) service() (*app.RecommendService, error) {
	var (
		cat *catalog.Static
		err error
	)

	if o.catalogDir == "" {
		cat, err = catalog.LoadEmbedded()
	} else {
		cat, err = catalog.LoadDir(o.catalogDir)
	}

	if err != nil {
		return nil, fmt.Errorf("loading catalog: %w", err)
	}

	return app.NewRecommendService(app.RecommendServiceConfig{Catalog: cat, Logger: o.logger}), nil
}
