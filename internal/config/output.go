package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/oxhq/unreach/internal/graphmodel"
	"github.com/oxhq/unreach/internal/result"
)

// PrintResults prints the §6 result-record sequence, grounded on the
// teacher's PrintResultCLI plain/JSON split.
func PrintResults(records []result.Record, cfg *Config) {
	if cfg.JSONOutput {
		b, err := json.Marshal(records)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error converting results to JSON: %v\n", err)
			return
		}
		fmt.Println(string(b))
		return
	}

	if len(records) == 0 {
		fmt.Println("✓ No unused declarations found")
		return
	}

	for _, r := range records {
		loc := r.Location
		if loc.Line > 0 {
			fmt.Printf("%s:%d:%d: %s %q is unused (%s, %s)\n", loc.File, loc.Line, loc.Column, r.Kind, r.Name, r.Category, r.Confidence)
		} else {
			fmt.Printf("%s: %q is unused (%s, %s)\n", loc.File, r.Name, r.Category, r.Confidence)
		}
		if cfg.Verbose && r.Detail != "" {
			fmt.Printf("    %s\n", r.Detail)
		}
	}
}

// PrintFatal prints a run-ending error, plain or JSON depending on cfg.
func PrintFatal(err error, jsonOut bool) {
	if jsonOut {
		var ae graphmodel.AnalysisError
		if errors.As(err, &ae) {
			fmt.Println(ae.JSON())
		} else {
			fmt.Println(graphmodel.AnalysisError{Code: "ERR_UNKNOWN", Message: err.Error()}.JSON())
		}
		return
	}
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
}

// PrintSummary prints a one-line run summary to stderr, suppressed in JSON
// mode so piped output stays clean.
func PrintSummary(records []result.Record, cfg *Config) {
	if cfg.JSONOutput {
		return
	}
	fmt.Fprintf(os.Stderr, "\n%d unused declaration(s) found\n", len(records))
}
