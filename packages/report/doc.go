// Package report renders accumulated check failures.
//
// Supported output formats:
//   - Console: Human-readable colored terminal output
//   - JSON: Machine-readable JSON output
//
// Both formatters write to a caller-supplied io.Writer and never exit
// the process.
package report
