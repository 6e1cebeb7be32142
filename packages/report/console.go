package report

import (
	"fmt"
	"io"
	"os"

	"github.com/abdul-hamid-achik/docspec/packages/expect"
	"github.com/fatih/color"
)

// formatValue formats a value for display, truncating or summarizing large values
func formatValue(v any, maxLen int) string {
	switch val := v.(type) {
	case nil:
		return "null"
	case []any:
		return fmt.Sprintf("[array with %d items]", len(val))
	case map[string]any:
		return fmt.Sprintf("{object with %d keys}", len(val))
	}
	str := fmt.Sprintf("%v", v)
	if len(str) > maxLen {
		return str[:maxLen] + "..."
	}
	return str
}

type ConsoleFormatter struct {
	writer  io.Writer
	verbose bool
	noColor bool
}

type ConsoleOption func(*ConsoleFormatter)

func NewConsoleFormatter(opts ...ConsoleOption) *ConsoleFormatter {
	f := &ConsoleFormatter{
		writer: os.Stdout,
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.noColor {
		color.NoColor = true
	}
	return f
}

func WithWriter(w io.Writer) ConsoleOption {
	return func(f *ConsoleFormatter) {
		f.writer = w
	}
}

func WithVerbose(v bool) ConsoleOption {
	return func(f *ConsoleFormatter) {
		f.verbose = v
	}
}

func WithNoColor(nc bool) ConsoleOption {
	return func(f *ConsoleFormatter) {
		f.noColor = nc
	}
}

// FormatFailures prints one block per failure followed by a summary
// line with the failure count.
func (f *ConsoleFormatter) FormatFailures(failures []expect.Failure) {
	green := color.New(color.FgGreen).SprintFunc()
	red := color.New(color.FgRed).SprintFunc()
	cyan := color.New(color.FgCyan).SprintFunc()
	bold := color.New(color.Bold).SprintFunc()

	if len(failures) == 0 {
		fmt.Fprintf(f.writer, "Checks: %s\n", green("all passed"))
		return
	}

	for _, fail := range failures {
		check := fail.Check
		if fail.Negated {
			check = "not " + check
		}
		fmt.Fprintf(f.writer, "  %s %s %s\n", red("✗"), bold(fail.Path), cyan(check))
		fmt.Fprintf(f.writer, "      %s\n", fail.Message)
		if f.verbose {
			fmt.Fprintf(f.writer, "      Expected: %s\n", formatValue(fail.Expected, 100))
			fmt.Fprintf(f.writer, "      Actual:   %s\n", formatValue(fail.Actual, 100))
		}
	}

	fmt.Fprintf(f.writer, "\nChecks: %s\n", red(fmt.Sprintf("%d failed", len(failures))))
}

func (f *ConsoleFormatter) FormatError(err error) {
	red := color.New(color.FgRed).SprintFunc()
	fmt.Fprintf(f.writer, "%s %v\n", red("Error:"), err)
}
