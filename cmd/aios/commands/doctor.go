package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/aios/internal/doctor"
	"github.com/thoreinstein/aios/internal/errors"
	"github.com/thoreinstein/aios/internal/paths"
)

var (
	doctorTarget string
	doctorJSON   bool
	doctorAll    bool
)

func init() {
	doctorCmd.Flags().StringVarP(&doctorTarget, "target", "t", ".",
		"project directory to check")
	doctorCmd.Flags().BoolVar(&doctorJSON, "json", false,
		"output results as JSON")
	doctorCmd.Flags().BoolVar(&doctorAll, "all", false,
		"show passed checks too")
	doctorCmd.MarkFlagsMutuallyExclusive("json", "all")
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Diagnose a project's core configuration",
	Long: `Check that .aios-core/core-config.yaml exists, parses and carries the
keys the installer writes.

A configuration written before the language key existed is reported as a
warning; it still works and is read as English.

Exit codes:
  0 - No errors or warnings
  1 - Warnings present, no errors
  2 - Errors present`,
	Args: cobra.NoArgs,
	RunE: runDoctor,
}

// errDoctorWarnings and errDoctorErrors carry doctor's exit codes.
var (
	errDoctorWarnings = errors.New("warnings found")
	errDoctorErrors   = errors.New("errors found")
)

func runDoctor(c *cobra.Command, _ []string) error {
	target, err := paths.ResolveTarget(doctorTarget)
	if err != nil {
		return errors.NewUserError(err, "pass an existing directory with --target")
	}

	runner := doctor.NewRunner()
	for _, check := range doctor.NewTarget(projectFs, target).Checks() {
		runner.AddCheck(check)
	}
	report := runner.Run()
	report.Target = target

	w := c.OutOrStdout()
	if doctorJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			return errors.Wrap(err, "encoding JSON")
		}
	} else if !quiet {
		printDoctorText(w, report, doctorAll)
	}

	switch {
	case report.HasErrors():
		return errors.NewExitError(errDoctorErrors, errors.ExitSystem)
	case report.HasWarnings():
		return errors.NewExitError(errDoctorWarnings, errors.ExitUser)
	}
	return nil
}

func printDoctorText(w io.Writer, report *doctor.Report, showAll bool) {
	for _, result := range report.Results {
		problem := result.Status == doctor.SeverityError || result.Status == doctor.SeverityWarning
		if !showAll && !problem && result.Status != doctor.SeverityInfo {
			continue
		}

		statusColor(result.Status).Fprint(w, statusIcon(result.Status))
		fmt.Fprintf(w, " [%s] %s: %s\n", result.Category, result.Name, result.Message)
		if result.FixHint != "" && problem {
			fmt.Fprintf(w, "  hint: %s\n", result.FixHint)
		}
	}

	fmt.Fprintf(w, "\nSummary: %d passed, %d info, %d warnings, %d errors\n",
		report.Summary.Passed, report.Summary.Info, report.Summary.Warnings, report.Summary.Errors)
}

func statusIcon(s doctor.Severity) string {
	switch s {
	case doctor.SeverityPass:
		return "✓"
	case doctor.SeverityInfo:
		return "ℹ"
	case doctor.SeverityWarning:
		return "⚠"
	case doctor.SeverityError:
		return "✗"
	default:
		return "?"
	}
}

func statusColor(s doctor.Severity) *color.Color {
	switch s {
	case doctor.SeverityPass:
		return color.New(color.FgGreen)
	case doctor.SeverityWarning:
		return color.New(color.FgYellow)
	case doctor.SeverityError:
		return color.New(color.FgRed, color.Bold)
	default:
		return color.New(color.FgCyan)
	}
}
