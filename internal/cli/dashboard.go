package cli

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rileyhilliard/kmon/internal/config"
	"github.com/rileyhilliard/kmon/internal/dash"
	"github.com/rileyhilliard/kmon/internal/errors"
	"github.com/rileyhilliard/kmon/internal/sysfs"
)

// dashboardCommand starts the interactive dashboard. Missing category
// roots are not an error here: the model lists a sentinel entry for
// them, so the dashboard comes up on any system.
func dashboardCommand() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	model := dash.NewModel(sysfs.NewOS(), cfg.SysfsRoot, cfg.Interval)

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return errors.WrapWithCode(err, errors.ErrRender,
			"Dashboard terminated unexpectedly",
			"Run 'kmon show' for non-interactive output, or 'kmon doctor' to check the terminal.")
	}
	return nil
}
