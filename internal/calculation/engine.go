package calculation

import (
	"time"

	"github.com/hhplan/household-planner/internal/domain"
)

// Logger is the logging interface of the calculation engine. A
// *zap.SugaredLogger satisfies it; the default discards everything.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// NopLogger implements Logger with no output.
type NopLogger struct{}

func (NopLogger) Debugf(string, ...any) {}
func (NopLogger) Infof(string, ...any)  {}
func (NopLogger) Warnf(string, ...any)  {}
func (NopLogger) Errorf(string, ...any) {}

// Observer receives notifications about simulation progress. PathCompleted
// may be called concurrently from Monte Carlo workers.
type Observer interface {
	PathCompleted(path domain.SimulationPath)
	RunCompleted(result *domain.MonteCarloResult, elapsed time.Duration)
}

// NopObserver implements Observer and ignores every notification.
type NopObserver struct{}

func (NopObserver) PathCompleted(domain.SimulationPath)                  {}
func (NopObserver) RunCompleted(*domain.MonteCarloResult, time.Duration) {}

// CalculationEngine orchestrates household projections and Monte Carlo runs
type CalculationEngine struct {
	Logger   Logger
	Observer Observer
	Workers  int // concurrent Monte Carlo paths; 0 uses runtime.NumCPU()
}

// NewCalculationEngine creates a new calculation engine
func NewCalculationEngine() *CalculationEngine {
	return &CalculationEngine{
		Logger:   NopLogger{},
		Observer: NopObserver{},
	}
}

// SetLogger sets the logger for the calculation engine. If nil is provided, a no-op logger is used.
func (ce *CalculationEngine) SetLogger(l Logger) {
	if l == nil {
		ce.Logger = NopLogger{}
		return
	}
	ce.Logger = l
}

// SetObserver sets the run observer. If nil is provided, notifications are dropped.
func (ce *CalculationEngine) SetObserver(o Observer) {
	if o == nil {
		ce.Observer = NopObserver{}
		return
	}
	ce.Observer = o
}

// SimulatePath runs a single path starting today. A nil source runs the
// mean-return path.
func (ce *CalculationEngine) SimulatePath(params domain.HouseholdParameters, src UniformSource) domain.SimulationPath {
	path := SimulatePath(params, src, nowFunc())
	if last := path.Final(); last != nil {
		ce.Logger.Debugf("path of %d years ends %d with liquid assets %s", len(path), last.Year, last.TotalLiquid.StringFixed(2))
	} else {
		ce.Logger.Warnf("empty path: both current ages exceed end age %d", params.EndAge)
	}
	return path
}
