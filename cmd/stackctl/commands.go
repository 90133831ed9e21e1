package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/stack4devs/stack4devs/internal/adapters/catalog"
	"github.com/stack4devs/stack4devs/internal/app"
	"github.com/stack4devs/stack4devs/internal/domain"
	"github.com/stack4devs/stack4devs/internal/platform/logging"
)

func newRecommendCmd(opts *cliOptions) *cobra.Command {
	var (
		field  string
		budget int
		pref   string
	)

	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Recommend a stack for a field and monthly budget",
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := opts.service()
			if err != nil {
				return err
			}

			ctx := logging.WithContext(cmd.Context(), opts.logger)

			rec, err := svc.Recommend(ctx, app.RecommendationRequest{
				Field:        field,
				Budget:       budget,
				AIPreference: domain.AIPreference(pref),
			})
			if err != nil {
				return err
			}

			if opts.jsonOutput {
				return writeJSON(cmd.OutOrStdout(), rec)
			}

			return printRecommendation(cmd.OutOrStdout(), rec)
		},
	}

	cmd.Flags().StringVar(&field, "field", "", "field, e.g. SaaS or Blog")
	cmd.Flags().IntVar(&budget, "budget", 0, "monthly budget in USD")
	cmd.Flags().StringVar(&pref, "ai-preference", string(domain.AIPreferenceManual), "manual, ai or hybrid")
	_ = cmd.MarkFlagRequired("field")

	return cmd
}

func newAlternativesCmd(opts *cliOptions) *cobra.Command {
	var stackID, tool string

	cmd := &cobra.Command{
		Use:   "alternatives",
		Short: "List alternatives for a tool of a stack",
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := opts.service()
			if err != nil {
				return err
			}

			alts, err := svc.Alternatives(stackID, tool)
			if err != nil {
				return err
			}

			if opts.jsonOutput {
				return writeJSON(cmd.OutOrStdout(), alts)
			}

			return printTools(cmd.OutOrStdout(), alts)
		},
	}

	cmd.Flags().StringVar(&stackID, "stack", "", "stack id")
	cmd.Flags().StringVar(&tool, "tool", "", "tool name within the stack")
	_ = cmd.MarkFlagRequired("stack")
	_ = cmd.MarkFlagRequired("tool")

	return cmd
}

func newTiersCmd(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "tiers",
		Short: "List the budget tiers",
		RunE: func(cmd *cobra.Command, _ []string) error {
			tiers := domain.Tiers()

			if opts.jsonOutput {
				return writeJSON(cmd.OutOrStdout(), tiers)
			}

			for _, t := range tiers {
				fmt.Fprintf(cmd.OutOrStdout(), "$%d\n", t)
			}

			return nil
		},
	}
}

func newRoadmapCmd(opts *cliOptions) *cobra.Command {
	var field string

	cmd := &cobra.Command{
		Use:   "roadmap",
		Short: "Print the starter roadmap for a field",
		RunE: func(cmd *cobra.Command, _ []string) error {
			tasks := domain.GenerateRoadmap(field)

			if opts.jsonOutput {
				return writeJSON(cmd.OutOrStdout(), tasks)
			}

			return printRoadmap(cmd.OutOrStdout(), tasks)
		},
	}

	cmd.Flags().StringVar(&field, "field", "", "field, e.g. SaaS or Blog")
	_ = cmd.MarkFlagRequired("field")

	return cmd
}

func newUseCasesCmd(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "usecases",
		Short: "List the curated use cases",
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := opts.service()
			if err != nil {
				return err
			}

			ucs := svc.UseCases()

			if opts.jsonOutput {
				return writeJSON(cmd.OutOrStdout(), ucs)
			}

			return printUseCases(cmd.OutOrStdout(), ucs)
		},
	}
}

func newCatalogCmd(opts *cliOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Work with catalog documents",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "validate <dir>",
		Short: "Schema-validate a catalog directory and report lint warnings",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			docs, err := catalog.ReadDir(args[0])
			if err != nil {
				return err
			}

			if _, err := catalog.New(docs); err != nil {
				return err
			}

			warnings := catalog.Lint(docs)
			for _, w := range warnings {
				opts.logger.Warn("catalog lint", slog.String("warning", w))
			}

			fmt.Fprintf(cmd.OutOrStdout(), "ok: %d stacks, %d tools, %d use cases, %d warnings\n",
				len(docs.Stacks), len(docs.Tools), len(docs.UseCases), len(warnings))

			return nil
		},
	})

	return cmd
}
