package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/stack4devs/stack4devs/internal/app"
	"github.com/stack4devs/stack4devs/internal/domain"
)

func writeJSON(w io.Writer, value any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(value)
}

func printRecommendation(w io.Writer, rec *app.Recommendation) error {
	fmt.Fprintf(w, "%s stack for $%d/month (tier $%d, %s match)\n\n", rec.Stack.Field, rec.Budget, rec.Tier, rec.Pass)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "TOOL\tPURPOSE\tPRICE\tACTION\tALTERNATIVES")

	for _, t := range rec.Tools {
		alts := make([]string, 0, len(t.Alternatives))
		for _, a := range t.Alternatives {
			alts = append(alts, a.Name)
		}

		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", t.Tool.Name, t.Tool.Purpose, t.Tool.Price, t.Action, strings.Join(alts, ", "))
	}

	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(w)

	return printRoadmap(w, rec.Roadmap)
}

func printTools(w io.Writer, tools []domain.Tool) error {
	if len(tools) == 0 {
		fmt.Fprintln(w, "no alternatives")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "TOOL\tPURPOSE\tPRICE")

	for _, t := range tools {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", t.Name, t.Purpose, t.Price)
	}

	return tw.Flush()
}

func printRoadmap(w io.Writer, tasks []domain.RoadmapTask) error {
	for i, t := range tasks {
		fmt.Fprintf(w, "%d. %s\n", i+1, t.Title)
	}

	return nil
}

func printUseCases(w io.Writer, ucs []domain.UseCase) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tBUDGET")

	for _, u := range ucs {
		fmt.Fprintf(tw, "%s\t%s\t$%d\n", u.ID, u.Title, u.DefaultBudget)
	}

	return tw.Flush()
}
