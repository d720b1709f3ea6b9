package main

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// app holds state shared by all subcommands.
type app struct {
	verbose bool
	noColor bool
	logger  *zap.SugaredLogger
}

func newRootCommand() *cobra.Command {
	a := &app{logger: zap.NewNop().Sugar()}

	root := &cobra.Command{
		Use:   "builder-generator",
		Short: "Generate builder types for Go structs",
		Long: `builder-generator generates, for a struct with named fields, a companion
builder type with one chainable setter per field and a Build method that
fails with an error naming the first field that was never set.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if a.noColor {
				color.NoColor = true
			}

			logger, err := newLogger(a.verbose)
			if err != nil {
				return err
			}

			a.logger = logger

			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			_ = a.logger.Sync()
		},
	}

	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging")
	root.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "Disable colored output")

	root.AddCommand(
		newGenCommand(a),
		newCheckCommand(a),
		newInspectCommand(a),
		newInitCommand(a),
	)

	return root
}
