package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"builder-generator/internal/config"
	"builder-generator/internal/plan"
)

func newInitCommand(a *app) *cobra.Command {
	var (
		output string
		force  bool
	)

	cmd := &cobra.Command{
		Use:   "init [type-pattern...]",
		Short: "Write a builders.yaml configuration file",
		Long: `Write a builders.yaml configuration selecting the given type names or
doublestar patterns, with the default naming options spelled out.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !force {
				if _, err := os.Stat(output); err == nil {
					return fmt.Errorf("%s already exists, use --force to overwrite", output)
				} else if !errors.Is(err, fs.ErrNotExist) {
					return err
				}
			}

			f := &config.File{
				Version:  config.CurrentVersion,
				Defaults: config.FromPlan(plan.DefaultOptions()),
			}
			if len(args) > 0 {
				f.Builders = []config.Target{{Types: config.StringOrList(args)}}
			}

			if err := config.Validate(f); err != nil {
				return err
			}

			data, err := config.Marshal(f)
			if err != nil {
				return fmt.Errorf("encoding config: %w", err)
			}

			if err := os.WriteFile(output, data, 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", output, err)
			}

			a.logger.Infow("wrote config", "path", output, "targets", len(f.Builders))

			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "builders.yaml", "Path of the configuration file to write")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing file")

	return cmd
}
