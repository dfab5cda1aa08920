// Package commands defines the hhplan CLI and wires dependencies for subcommands.
//
// Commands
//
//   - init        Write an example household plan
//   - simulate    Project one scenario year by year
//   - montecarlo  Run randomized paths and report percentile bands
//   - compare     Rank every scenario in a plan by success rate
//
// # Implementation
//
// The root command resolves settings (flags, HHPLAN_* environment variables
// and an optional hhplan.yaml), then builds the logger, the calculation
// engine and, when --metrics-file is set, a Prometheus recorder before any
// subcommand runs. The recorder is flushed to its textfile after the
// subcommand returns.
package commands
