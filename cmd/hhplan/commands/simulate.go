package commands

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/hhplan/household-planner/internal/calculation"
	"github.com/hhplan/household-planner/internal/config"
	"github.com/hhplan/household-planner/internal/output"
)

func simulateCmd(a *app) *cobra.Command {
	var random bool
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Project one scenario year by year at the mean return",
		Long: "Project one scenario year by year. Without --random every year earns the mean\n" +
			"return; with --random a single path draws returns from --seed.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, err := a.loadPlan()
			if err != nil {
				return err
			}
			scenario, err := config.SelectScenario(plan, a.settings.Scenario)
			if err != nil {
				return err
			}

			var src calculation.UniformSource
			if random {
				seed := a.seed()
				a.logger.Info("random path", zap.Int64("seed", seed))
				src = calculation.NewSeededSource(seed)
			}

			path := a.engine.SimulatePath(scenario.Household, src)
			return a.render(&output.Report{
				Scenario:  scenario.Name,
				Household: &scenario.Household,
				Path:      path,
			})
		},
	}
	addPlanFlags(cmd)
	cmd.Flags().String("scenario", "", "scenario name (default: first in the plan)")
	cmd.Flags().Int64("seed", 0, "random seed for --random (0 picks one)")
	cmd.Flags().BoolVar(&random, "random", false, "draw returns instead of using the mean")
	return cmd
}
