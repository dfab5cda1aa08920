package commands

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/hhplan/household-planner/internal/calculation"
	"github.com/hhplan/household-planner/internal/config"
	"github.com/hhplan/household-planner/internal/domain"
	"github.com/hhplan/household-planner/internal/logging"
	"github.com/hhplan/household-planner/internal/metrics"
	"github.com/hhplan/household-planner/internal/output"
)

// seedFunc picks the seed of a run when --seed is zero.
var seedFunc = func() int64 { return time.Now().UnixNano() }

// app is the dependency graph shared by subcommands of one invocation.
type app struct {
	v        *viper.Viper
	out      io.Writer
	settings *config.Settings
	logger   *zap.Logger
	engine   *calculation.CalculationEngine
	recorder *metrics.Recorder
}

func Execute() error {
	return NewRootCmd(os.Stdout).Execute()
}

// NewRootCmd builds the command tree writing reports to out.
func NewRootCmd(out io.Writer) *cobra.Command {
	a := &app{v: config.NewViper(), out: out}

	root := &cobra.Command{
		Use:          "hhplan",
		Short:        "Household retirement projection and Monte Carlo planner",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return a.teardown()
		},
	}
	root.SetOut(out)

	pf := root.PersistentFlags()
	pf.String("log-level", "info", "log level (debug, info, warn, error)")
	pf.String("log-format", "console", "log encoding (console or json)")
	pf.String("metrics-file", "", "write Prometheus metrics to this textfile after the run")
	pf.StringP("output", "o", "", "write the report to a file instead of stdout")

	root.AddCommand(initCmd(a), simulateCmd(a), monteCarloCmd(a), compareCmd(a))
	return root
}

// addPlanFlags registers the flags shared by commands that read a plan file.
func addPlanFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("file", "f", "", "household plan file (YAML)")
	cmd.Flags().String("format", "console", fmt.Sprintf("output format (%s, or all)", strings.Join(output.AvailableFormatterNames(), ", ")))
}

func addMonteCarloFlags(cmd *cobra.Command) {
	cmd.Flags().Int("sims", 0, fmt.Sprintf("number of simulations (%d-%d, default %d)",
		calculation.MinSimulations, calculation.MaxSimulations, calculation.DefaultSimulations))
	cmd.Flags().Int64("seed", 0, "random seed (0 picks one and reports it)")
	cmd.Flags().Int("workers", 0, "concurrent simulations (0 uses all CPUs)")
}

func (a *app) setup(cmd *cobra.Command) error {
	if err := a.v.BindPFlags(cmd.Flags()); err != nil {
		return fmt.Errorf("failed to bind flags: %w", err)
	}
	settings, err := config.LoadSettings(a.v)
	if err != nil {
		return err
	}
	a.settings = settings

	logger, err := logging.New(settings.LogLevel, settings.LogFormat)
	if err != nil {
		return err
	}
	a.logger = logger

	a.engine = calculation.NewCalculationEngine()
	a.engine.SetLogger(logger.Sugar())
	a.engine.Workers = settings.Workers
	if settings.MetricsFile != "" {
		a.recorder = metrics.NewRecorder()
		a.engine.SetObserver(a.recorder)
	}
	return nil
}

func (a *app) teardown() error {
	if a.logger != nil {
		defer a.logger.Sync() //nolint:errcheck
	}
	if a.recorder == nil {
		return nil
	}
	if err := a.recorder.WriteTextfile(a.settings.MetricsFile); err != nil {
		return err
	}
	a.logger.Debug("metrics written", zap.String("file", a.settings.MetricsFile))
	return nil
}

// loadPlan reads and validates the plan file named by --file.
func (a *app) loadPlan() (*domain.Configuration, error) {
	if a.settings.PlanFile == "" {
		return nil, fmt.Errorf("plan file required (-f)")
	}
	plan, err := config.NewInputParser().LoadFromFile(a.settings.PlanFile)
	if err != nil {
		return nil, err
	}
	a.logger.Debug("plan loaded",
		zap.String("file", a.settings.PlanFile),
		zap.Int("scenarios", len(plan.Scenarios)))
	return plan, nil
}

func (a *app) render(report *output.Report) error {
	if err := output.GenerateReport(a.out, report, a.settings.Format, a.settings.Output); err != nil {
		return err
	}
	if a.settings.Output != "" {
		a.logger.Info("report written", zap.String("file", a.settings.Output), zap.String("format", a.settings.Format))
	}
	return nil
}

// seed returns --seed, or a fresh one when it is zero.
func (a *app) seed() int64 {
	if a.settings.Seed != 0 {
		return a.settings.Seed
	}
	return seedFunc()
}

func (a *app) monteCarloOptions() calculation.MonteCarloOptions {
	return calculation.MonteCarloOptions{
		Simulations: a.settings.Simulations,
		Seed:        a.seed(),
	}
}
