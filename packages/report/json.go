package report

import (
	"encoding/json"
	"io"
	"os"
	"time"

	"github.com/abdul-hamid-achik/docspec/packages/expect"
)

// JSONOutput represents the complete JSON report structure
type JSONOutput struct {
	Summary  JSONSummary   `json:"summary"`
	Failures []JSONFailure `json:"failures"`
	Time     string        `json:"time"`
}

// JSONSummary counts the reported failures
type JSONSummary struct {
	Failed int `json:"failed"`
}

// JSONFailure represents a single failed check
type JSONFailure struct {
	Path     string `json:"path"`
	Check    string `json:"check"`
	Expected any    `json:"expected"`
	Actual   any    `json:"actual"`
	Negated  bool   `json:"negated,omitempty"`
	Message  string `json:"message"`
}

// JSONFormatter formats failures as JSON
type JSONFormatter struct {
	writer io.Writer
}

type JSONOption func(*JSONFormatter)

func NewJSONFormatter(opts ...JSONOption) *JSONFormatter {
	f := &JSONFormatter{
		writer: os.Stdout,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func JSONWithWriter(w io.Writer) JSONOption {
	return func(f *JSONFormatter) {
		f.writer = w
	}
}

// Flush writes the failures as one indented JSON document
func (f *JSONFormatter) Flush(failures []expect.Failure) error {
	output := JSONOutput{
		Summary:  JSONSummary{Failed: len(failures)},
		Failures: make([]JSONFailure, len(failures)),
		Time:     time.Now().Format(time.RFC3339),
	}

	for i, fail := range failures {
		output.Failures[i] = JSONFailure{
			Path:     fail.Path,
			Check:    fail.Check,
			Expected: fail.Expected,
			Actual:   fail.Actual,
			Negated:  fail.Negated,
			Message:  fail.Message,
		}
	}

	encoder := json.NewEncoder(f.writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
