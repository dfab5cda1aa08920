package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/hhplan/household-planner/internal/config"
)

const defaultPlanFile = "household_plan.yaml"

func initCmd(a *app) *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init [file]",
		Short: "Write an example household plan with two scenarios",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target := defaultPlanFile
			if len(args) == 1 {
				target = args[0]
			}
			if !force {
				if _, err := os.Stat(target); err == nil {
					return fmt.Errorf("%s already exists (use --force to overwrite)", target)
				} else if !errors.Is(err, fs.ErrNotExist) {
					return err
				}
			}

			parser := config.NewInputParser()
			if err := parser.SaveToFile(parser.CreateExampleConfiguration(), target); err != nil {
				return err
			}
			fmt.Fprintf(a.out, "Example plan written to %s\n", target)
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	return cmd
}
