package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fatih/color"

	"clarion/grammar"
	"clarion/internal/analysis"
	"clarion/internal/errors"
	"clarion/internal/types"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: clarion <file.clar> [more files...]")
		os.Exit(1)
	}

	startTime := time.Now()

	// Files are analyzed in argument order against one shared database,
	// so a later contract can implement traits an earlier one defines.
	db := analysis.NewMemoryDatabase()
	hasErrors := false

	for _, path := range os.Args[1:] {
		source, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to read file: %v\n", err)
			os.Exit(1)
		}

		expressions, err := grammar.ParseContract(path, string(source))
		if err != nil {
			grammar.ReportParseError(string(source), err)
			hasErrors = true
			continue
		}

		contractID := contractIDForPath(path)
		_, checkErr := analysis.Run(contractID, expressions, db, analysis.DefaultCostBudget)
		if checkErr != nil {
			reporter := errors.NewReporter(path, string(source))
			fmt.Print(reporter.Format(checkErr.Diagnostic()))
			hasErrors = true
		}
	}

	duration := formatDuration(time.Since(startTime))
	if hasErrors {
		color.Red("Analysis failed after %s", duration)
		os.Exit(1)
	}
	color.Green("Successfully analyzed %d contract(s) in %s", len(os.Args)-1, duration)
}

// contractIDForPath derives the contract identity from the file name:
// counters.clar becomes the local contract "counters".
func contractIDForPath(path string) types.ContractIdentifier {
	base := filepath.Base(path)
	return types.LocalContract(strings.TrimSuffix(base, filepath.Ext(base)))
}

func formatDuration(d time.Duration) string {
	switch {
	case d >= time.Minute:
		return fmt.Sprintf("%.2fmin", d.Minutes())
	case d >= time.Second:
		return fmt.Sprintf("%.2fs", d.Seconds())
	case d >= time.Millisecond:
		return fmt.Sprintf("%.1fms", float64(d.Nanoseconds())/1000000.0)
	case d >= time.Microsecond:
		return fmt.Sprintf("%.1fμs", float64(d.Nanoseconds())/1000.0)
	default:
		return fmt.Sprintf("%dns", d.Nanoseconds())
	}
}
