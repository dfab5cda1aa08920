package commands

import (
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/hhplan/household-planner/internal/output"
)

func compareCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Rank every scenario in a plan by Monte Carlo success rate",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, err := a.loadPlan()
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			comparison, err := a.engine.Compare(ctx, plan, a.monteCarloOptions())
			if err != nil {
				return err
			}
			a.logger.Info("comparison complete",
				zap.Int("scenarios", len(comparison.Scenarios)),
				zap.String("recommended", comparison.Recommended))

			return a.render(&output.Report{Comparison: comparison})
		},
	}
	addPlanFlags(cmd)
	addMonteCarloFlags(cmd)
	return cmd
}
