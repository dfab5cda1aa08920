package commands

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hhplan/household-planner/internal/config"
	"github.com/hhplan/household-planner/internal/output"
)

const testPlan = "testdata/plan.yaml"

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := NewRootCmd(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(append(args, "--log-level", "error"))
	err := root.Execute()
	return out.String(), err
}

func TestSimulate_Console(t *testing.T) {
	out, err := run(t, "simulate", "-f", testPlan)
	require.NoError(t, err)
	assert.Contains(t, out, "HOUSEHOLD PROJECTION: Baseline")
	assert.Contains(t, out, "SUMMARY:")
}

func TestSimulate_CSVScenario(t *testing.T) {
	out, err := run(t, "simulate", "-f", testPlan, "--scenario", "lean spending", "--format", "csv")
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	require.NoError(t, err)
	// the older member goes from 60 through 70
	assert.Len(t, records, 12)
	assert.Equal(t, "year", records[0][0])
	assert.Equal(t, "60", records[1][1])
	assert.Equal(t, "70", records[11][1])
}

func TestSimulate_RandomIsReproducible(t *testing.T) {
	first, err := run(t, "simulate", "-f", testPlan, "--random", "--seed", "99", "--format", "csv")
	require.NoError(t, err)
	second, err := run(t, "simulate", "-f", testPlan, "--random", "--seed", "99", "--format", "csv")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestSimulate_Errors(t *testing.T) {
	_, err := run(t, "simulate")
	assert.ErrorContains(t, err, "plan file required")

	_, err = run(t, "simulate", "-f", testPlan, "--scenario", "Nope")
	assert.ErrorContains(t, err, "scenario not found")

	_, err = run(t, "simulate", "-f", testPlan, "--format", "pdf")
	assert.ErrorIs(t, err, output.ErrUnsupportedFormat)

	_, err = run(t, "simulate", "-f", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "failed to read file")
}

func TestMonteCarlo_JSON(t *testing.T) {
	out, err := run(t, "montecarlo", "-f", testPlan, "--sims", "60", "--seed", "7", "--format", "json")
	require.NoError(t, err)

	var report struct {
		Scenario   string `json:"scenario"`
		MonteCarlo struct {
			Seed           int64             `json:"seed"`
			NumSimulations int               `json:"num_simulations"`
			Paths          []json.RawMessage `json:"paths"`
			PerYear        []json.RawMessage `json:"per_year"`
		} `json:"monte_carlo"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, "Baseline", report.Scenario)
	assert.Equal(t, int64(7), report.MonteCarlo.Seed)
	assert.Equal(t, 60, report.MonteCarlo.NumSimulations)
	assert.Empty(t, report.MonteCarlo.Paths)
	assert.Len(t, report.MonteCarlo.PerYear, 11)
}

func TestMonteCarlo_ZeroSeedPicksOne(t *testing.T) {
	defer func(f func() int64) { seedFunc = f }(seedFunc)
	seedFunc = func() int64 { return 1234 }

	out, err := run(t, "mc", "-f", testPlan, "--format", "json")
	require.NoError(t, err)

	var report struct {
		MonteCarlo struct {
			Seed int64 `json:"seed"`
		} `json:"monte_carlo"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, int64(1234), report.MonteCarlo.Seed)
}

func TestMonteCarlo_MetricsFile(t *testing.T) {
	metricsFile := filepath.Join(t.TempDir(), "hhplan.prom")
	_, err := run(t, "mc", "-f", testPlan, "--seed", "3", "--workers", "2", "--metrics-file", metricsFile)
	require.NoError(t, err)

	data, err := os.ReadFile(metricsFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hhplan_paths_simulated_total 50")
	assert.Contains(t, string(data), "hhplan_runs_completed_total 1")
}

func TestCompare_OutputFile(t *testing.T) {
	target := filepath.Join(t.TempDir(), "compare.csv")
	out, err := run(t, "compare", "-f", testPlan, "--seed", "11", "--format", "csv", "-o", target)
	require.NoError(t, err)
	assert.Empty(t, out)

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	// spending less can only help under common random numbers
	assert.Equal(t, "Lean Spending", records[1][0])
	assert.Equal(t, "true", records[1][1])
}

func TestInit(t *testing.T) {
	target := filepath.Join(t.TempDir(), "plan.yaml")
	out, err := run(t, "init", target)
	require.NoError(t, err)
	assert.Contains(t, out, "Example plan written to")

	plan, err := config.NewInputParser().LoadFromFile(target)
	require.NoError(t, err)
	assert.Len(t, plan.Scenarios, 2)

	_, err = run(t, "init", target)
	assert.ErrorContains(t, err, "already exists")

	_, err = run(t, "init", target, "--force")
	assert.NoError(t, err)
}

func TestSettingsFromEnvironment(t *testing.T) {
	t.Setenv("HHPLAN_FORMAT", "csv")
	out, err := run(t, "simulate", "-f", testPlan)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "year,ageSelf"))
}
