package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"

	"github.com/rileyhilliard/kmon/internal/config"
	"github.com/rileyhilliard/kmon/internal/doctor"
	"github.com/rileyhilliard/kmon/internal/sysfs"
	"github.com/rileyhilliard/kmon/internal/ui"
)

// DoctorOutput is the machine-readable doctor report.
type DoctorOutput struct {
	Checks  []doctor.CheckResult `json:"checks"`
	Summary DoctorSummary        `json:"summary"`
}

// DoctorSummary counts check results by status.
type DoctorSummary struct {
	Pass     int  `json:"pass"`
	Warn     int  `json:"warn"`
	Fail     int  `json:"fail"`
	AllClear bool `json:"all_clear"`
}

// doctorCommand runs every diagnostic check and renders the report.
// The report is the output: a failing check does not make the command
// itself fail.
func doctorCommand(asJSON bool) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	checks := doctor.NewChecks(sysfs.NewOS(), cfg.SysfsRoot)
	results := doctor.RunAll(checks)

	if asJSON {
		return outputDoctorJSON(results)
	}
	return outputDoctorText(results)
}

// buildDoctorOutput shapes the results for the JSON envelope.
func buildDoctorOutput(results []doctor.CheckResult) DoctorOutput {
	counts := doctor.CountByStatus(results)
	return DoctorOutput{
		Checks: results,
		Summary: DoctorSummary{
			Pass:     counts[doctor.StatusPass],
			Warn:     counts[doctor.StatusWarn],
			Fail:     counts[doctor.StatusFail],
			AllClear: !doctor.HasIssues(results),
		},
	}
}

// checkRows converts results into display rows for the check table.
func checkRows(results []doctor.CheckResult) []ui.CheckRow {
	rows := make([]ui.CheckRow, len(results))
	for i, r := range results {
		rows[i] = ui.CheckRow{
			Status:     r.Status.String(),
			Category:   r.Category,
			Message:    r.Message,
			Suggestion: r.Suggestion,
		}
	}
	return rows
}

// outputDoctorJSON emits the results inside the standard envelope.
func outputDoctorJSON(results []doctor.CheckResult) error {
	return WriteJSONSuccess(os.Stdout, buildDoctorOutput(results))
}

// outputDoctorText renders the grouped check table and a summary line.
func outputDoctorText(results []doctor.CheckResult) error {
	headerStyle := lipgloss.NewStyle().Bold(true)

	rows := checkRows(results)

	fmt.Println()
	fmt.Println(headerStyle.Render("kmon Diagnostic Report"))
	fmt.Println()
	fmt.Print(ui.RenderCheckTable(rows))

	if doctor.HasIssues(results) {
		fmt.Printf("%s %s\n", ui.ErrorStyle().Render(ui.SymbolFail), doctor.Summary(results))
	} else {
		fmt.Printf("%s %s\n", ui.SuccessStyle().Render(ui.SymbolSuccess), doctor.Summary(results))
	}
	fmt.Println()

	return nil
}
