package output

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/hhplan/household-planner/internal/domain"
)

var (
	// ErrUnsupportedFormat is returned for a format name with no registered formatter.
	ErrUnsupportedFormat = errors.New("unsupported output format")
	// ErrEmptyReport is returned when a report carries nothing to render.
	ErrEmptyReport = errors.New("report has no path, monte carlo result or comparison")
)

// Report is the value handed to formatters. One of Path, MonteCarlo or
// Comparison is set; Household, when present, feeds the assumptions block.
type Report struct {
	Scenario   string                      `json:"scenario,omitempty"`
	Household  *domain.HouseholdParameters `json:"-"`
	Path       domain.SimulationPath       `json:"path,omitempty"`
	MonteCarlo *domain.MonteCarloResult    `json:"monte_carlo,omitempty"`
	Comparison *domain.ScenarioComparison  `json:"comparison,omitempty"`
}

func (r *Report) validate() error {
	if r == nil || (len(r.Path) == 0 && r.MonteCarlo == nil && r.Comparison == nil) {
		return ErrEmptyReport
	}
	return nil
}

// Formatter defines a pluggable output formatter that returns a byte slice.
// Implementations should be pure (no side effects besides deterministic formatting).
type Formatter interface {
	Format(report *Report) ([]byte, error)
	// Name returns a short identifier for logging / debugging.
	Name() string
	// Extension is the file extension used when the output is written to disk.
	Extension() string
}

// FormatterFunc adapter to allow ordinary functions to act as a Formatter.
type FormatterFunc struct {
	ID  string
	Ext string
	F   func(*Report) ([]byte, error)
}

func (ff FormatterFunc) Format(r *Report) ([]byte, error) { return ff.F(r) }
func (ff FormatterFunc) Name() string                     { return ff.ID }
func (ff FormatterFunc) Extension() string                { return ff.Ext }

var builtInFormatters = []Formatter{
	ConsoleFormatter{},
	CSVFormatter{},
	JSONFormatter{},
}

// aliasMap provides user-friendly synonyms for format names.
var aliasMap = map[string]string{
	"text":         "console",
	"table":        "console",
	"csv-detailed": "csv",
	"detailed-csv": "csv",
	"json-pretty":  "json",
}

// NormalizeFormatName lowers and resolves aliases.
func NormalizeFormatName(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	if mapped, ok := aliasMap[n]; ok {
		return mapped
	}
	return n
}

// GetFormatterByName fetches a registered formatter, or nil.
func GetFormatterByName(name string) Formatter {
	n := NormalizeFormatName(name)
	for _, f := range builtInFormatters {
		if f.Name() == n {
			return f
		}
	}
	return nil
}

// AvailableFormatterNames returns the canonical formatter names.
func AvailableFormatterNames() []string {
	names := make([]string, 0, len(builtInFormatters))
	for _, f := range builtInFormatters {
		names = append(names, f.Name())
	}
	sort.Strings(names)
	return names
}

// AvailableFormatAliases returns the supported alias keys.
func AvailableFormatAliases() []string {
	keys := make([]string, 0, len(aliasMap))
	for k := range aliasMap {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Lookup is GetFormatterByName returning ErrUnsupportedFormat, enriched with
// the available names, when nothing matches.
func Lookup(name string) (Formatter, error) {
	if f := GetFormatterByName(name); f != nil {
		return f, nil
	}
	return nil, fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)", ErrUnsupportedFormat, name,
		strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
}

// Render formats the report with the named formatter.
func Render(report *Report, format string) ([]byte, error) {
	f, err := Lookup(format)
	if err != nil {
		return nil, err
	}
	return f.Format(report)
}

// WriteFormatted runs a formatter and writes its output to filename. An empty
// filename selects a timestamped name in the working directory.
func WriteFormatted(f Formatter, report *Report, filename string) (string, error) {
	data, err := f.Format(report)
	if err != nil {
		return "", err
	}
	if filename == "" {
		filename = fmt.Sprintf("household_report_%s.%s", time.Now().Format("20060102_150405"), f.Extension())
	}
	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", filename, err)
	}
	return filename, nil
}
