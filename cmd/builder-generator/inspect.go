package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"builder-generator/internal/pipeline"
)

func newInspectCommand(_ *app) *cobra.Command {
	var patterns []string

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "List the named types of a package and whether they can have a builder",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			summaries, err := pipeline.Inspect(cmd.Context(), pipeline.Request{Patterns: patterns})
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "TYPE\tKIND\tSHAPE\tBUILDER\tFIELDS")

			for _, s := range summaries {
				builder := "-"
				if s.Builder != "" {
					builder = s.Builder
				}

				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
					s.ID, s.Kind, shapeLabel(s.Shape), builder, strings.Join(s.Fields, ", "))
			}

			return w.Flush()
		},
	}

	cmd.Flags().StringSliceVar(&patterns, "pkg", []string{"."}, "Package patterns to load")

	return cmd
}
