package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"builder-generator/internal/gen"
	"builder-generator/internal/pipeline"
)

func newGenCommand(a *app) *cobra.Command {
	var (
		flags  selectionFlags
		stdout bool
	)

	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate builders",
		Long: `Generate a builder for each selected struct.

Types are selected with --type, with the patterns of a --config file, or,
when run by go generate without either, from the type declared under the
go:generate directive.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, err := pipeline.Run(cmd.Context(), flags.request(), a.logger)
			if res != nil && res.Plan != nil {
				printDiagnostics(cmd.ErrOrStderr(), res.Plan.Diagnostics)
			}

			if err != nil {
				return err
			}

			if stdout {
				for _, f := range res.Files {
					if _, err := cmd.OutOrStdout().Write(f.Content); err != nil {
						return fmt.Errorf("writing %s: %w", f.Filename, err)
					}
				}

				return nil
			}

			if err := gen.WriteFiles(res.Files); err != nil {
				return err
			}

			for _, f := range res.Files {
				a.logger.Infow("wrote builder", "record", f.Record, "path", f.Path())
			}

			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&stdout, "stdout", false, "Print generated code instead of writing files")

	return cmd
}

func newCheckCommand(a *app) *cobra.Command {
	var flags selectionFlags

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check that generated builders are up to date",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			checks, err := pipeline.Check(cmd.Context(), flags.request(), a.logger)
			for _, c := range checks {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", statusLabel(c.Status), c.File.Path())
			}

			if errors.Is(err, pipeline.ErrStale) {
				return fmt.Errorf("%w; run builder-generator gen", err)
			}

			return err
		},
	}

	flags.register(cmd)

	return cmd
}
