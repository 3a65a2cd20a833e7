// Package report renders validation results for humans and machines and
// maps them to process exit codes.
package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/domenicocinque/hooklint-go/internal/validator"
)

// Exit codes
const (
	ExitOK         = 0
	ExitViolations = 1
	ExitParseError = 2
)

// Output formats
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Result is the outcome of validating one manifest
type Result struct {
	Path       string                `json:"path"`
	Repos      int                   `json:"repos"`
	Hooks      int                   `json:"hooks"`
	Violations []validator.Violation `json:"violations"`
}

// Valid reports whether the manifest passed validation
func (r *Result) Valid() bool {
	return len(r.Violations) == 0
}

// ExitCode returns the process exit status for the result
func (r *Result) ExitCode() int {
	if r.Valid() {
		return ExitOK
	}
	return ExitViolations
}

// Reporter writes validation results to an output stream
type Reporter struct {
	out    io.Writer
	format string
}

// NewReporter creates a reporter for the given format ("text" or "json").
// Unknown formats fall back to text.
func NewReporter(out io.Writer, format string) *Reporter {
	if format != FormatJSON {
		format = FormatText
	}
	return &Reporter{out: out, format: format}
}

// Write renders the result
func (r *Reporter) Write(result *Result) error {
	if r.format == FormatJSON {
		return r.writeJSON(result)
	}
	return r.writeText(result)
}

func (r *Reporter) writeJSON(result *Result) error {
	enc := json.NewEncoder(r.out)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

func (r *Reporter) writeText(result *Result) error {
	for _, v := range result.Violations {
		if _, err := fmt.Fprintf(r.out, "%s: %s\n", result.Path, v); err != nil {
			return err
		}
	}

	status := "ok"
	if !result.Valid() {
		status = fmt.Sprintf("%d violation(s)", len(result.Violations))
	}
	_, err := fmt.Fprintf(r.out, "%s: %d repo(s), %d hook(s): %s\n",
		result.Path, result.Repos, result.Hooks, status)
	return err
}
