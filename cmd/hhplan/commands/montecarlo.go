package commands

import (
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/hhplan/household-planner/internal/config"
	"github.com/hhplan/household-planner/internal/output"
)

func monteCarloCmd(a *app) *cobra.Command {
	var includePaths bool
	cmd := &cobra.Command{
		Use:     "montecarlo",
		Aliases: []string{"mc"},
		Short:   "Run randomized paths for one scenario and report percentile bands",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, err := a.loadPlan()
			if err != nil {
				return err
			}
			scenario, err := config.SelectScenario(plan, a.settings.Scenario)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			result, err := a.engine.RunMonteCarlo(ctx, scenario.Household, a.monteCarloOptions())
			if err != nil {
				return err
			}
			a.logger.Info("monte carlo complete",
				zap.String("run_id", result.RunID),
				zap.String("scenario", scenario.Name),
				zap.Int64("seed", result.Seed),
				zap.String("success_rate", result.SuccessRate.StringFixed(4)))

			if !includePaths {
				result.Paths = nil
			}
			return a.render(&output.Report{
				Scenario:   scenario.Name,
				Household:  &scenario.Household,
				MonteCarlo: result,
			})
		},
	}
	addPlanFlags(cmd)
	addMonteCarloFlags(cmd)
	cmd.Flags().String("scenario", "", "scenario name (default: first in the plan)")
	cmd.Flags().BoolVar(&includePaths, "include-paths", false, "keep every simulated path in JSON output")
	return cmd
}
