package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"golang.org/x/term"

	"github.com/rileyhilliard/kmon/internal/catalog"
	"github.com/rileyhilliard/kmon/internal/config"
	"github.com/rileyhilliard/kmon/internal/errors"
	"github.com/rileyhilliard/kmon/internal/metric"
	"github.com/rileyhilliard/kmon/internal/output"
	"github.com/rileyhilliard/kmon/internal/sysfs"
	"github.com/rileyhilliard/kmon/internal/ui"
	"github.com/rileyhilliard/kmon/internal/util"
)

// showCommand resolves a category and device, reads the device once,
// and prints its summary in the selected format.
func showCommand(args []string, asJSON, asYAML bool) error {
	if asJSON && asYAML {
		return errors.New(errors.ErrUsage,
			"--json and --yaml are mutually exclusive",
			"Pick one output format.")
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fs := sysfs.NewOS()
	engine := metric.NewEngine(fs)
	categories := catalog.Categories(cfg.SysfsRoot)

	category, err := resolveCategory(categories, args)
	if err != nil {
		return err
	}

	device, err := resolveDevice(fs, engine, category, args)
	if err != nil {
		return err
	}

	path := device.Path(category.Root)
	summary := engine.Summarize(path)
	report := output.NewReport(category.Label, device.Name, path, summary)

	switch {
	case asJSON:
		return WriteJSONSuccess(os.Stdout, report)
	case asYAML:
		raw, err := output.MarshalYAML(report)
		if err != nil {
			return errors.WrapWithCode(err, errors.ErrRender,
				"Failed to serialize the report as YAML", "")
		}
		fmt.Print(string(raw))
		return nil
	default:
		fmt.Print(output.RenderText(report, summary))
		return nil
	}
}

// resolveCategory returns the category named by args, or asks for one
// when args carry none. Scripts without a terminal must always pass
// the category explicitly.
func resolveCategory(categories []catalog.Category, args []string) (catalog.Category, error) {
	if len(args) >= 1 {
		category, ok := catalog.FindCategory(categories, args[0])
		if !ok {
			return catalog.Category{}, unknownCategoryError(categories, args[0])
		}
		return category, nil
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return catalog.Category{}, errors.New(errors.ErrUsage,
			"No category given",
			"Pass it explicitly in scripts: kmon show thermal <device>")
	}

	return pickCategory(categories)
}

// pickCategory asks for a category with an arrow-key menu.
func pickCategory(categories []catalog.Category) (catalog.Category, error) {
	options := make([]huh.Option[string], len(categories))
	for i, c := range categories {
		options[i] = huh.NewOption(fmt.Sprintf("%s (%s)", c.Label, c.Base()), c.Base())
	}

	var selected string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Which category?").
				Options(options...).
				Value(&selected),
		),
	)

	if err := form.Run(); err != nil {
		return catalog.Category{}, errors.WrapWithCode(err, errors.ErrUsage,
			"Category selection cancelled",
			"Pass it directly: kmon show thermal")
	}

	category, _ := catalog.FindCategory(categories, selected)
	return category, nil
}

// resolveDevice returns the device named by args, or runs the picker
// when args carry none. An absent category root fails before either
// path: the sentinel entry is a menu artifact, never a real device.
func resolveDevice(fs sysfs.FS, engine *metric.Engine, category catalog.Category, args []string) (catalog.Device, error) {
	devices := catalog.ListDevices(fs, category.Root)

	if len(devices) == 1 && devices[0].Sentinel {
		return catalog.Device{}, errors.New(errors.ErrSysfs,
			fmt.Sprintf("Category %s not found on this system", category.Label),
			fmt.Sprintf("Nothing exists at %s. Run 'kmon doctor' to see what this system exposes.", category.Root))
	}

	if len(args) >= 2 {
		for _, d := range devices {
			if d.Name == args[1] {
				return d, nil
			}
		}
		return catalog.Device{}, unknownDeviceError(devices, category, args[1])
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return catalog.Device{}, errors.New(errors.ErrUsage,
			"No device given",
			fmt.Sprintf("Pass it explicitly in scripts: kmon show %s <device>", category.Base()))
	}

	items := make([]ui.DeviceItem, 0, len(devices))
	for _, d := range devices {
		item := ui.DeviceItem{Name: d.Name}
		summary := engine.Summarize(d.Path(category.Root))
		item.Driver = summary.Kind
		if len(summary.Lines) > 0 {
			item.Preview = summary.Lines[0].Display()
		}
		items = append(items, item)
	}

	picked, err := ui.PickDevice(category.Label, items)
	if err != nil {
		return catalog.Device{}, err
	}
	if picked == nil {
		return catalog.Device{}, errors.New(errors.ErrUsage,
			"Selection cancelled",
			fmt.Sprintf("Pass the name directly: kmon show %s <device>", category.Base()))
	}

	for _, d := range devices {
		if d.Name == picked.Name {
			return d, nil
		}
	}
	return catalog.Device{Name: picked.Name}, nil
}

// unknownCategoryError builds the unknown-category error, suggesting
// close matches against both labels and base names.
func unknownCategoryError(categories []catalog.Category, name string) error {
	candidates := make([]string, 0, len(categories)*2)
	bases := make([]string, 0, len(categories))
	for _, c := range categories {
		candidates = append(candidates, c.Label, c.Base())
		bases = append(bases, c.Base())
	}

	suggestion := "Valid categories: " + util.JoinOrNone(bases)
	if similar := util.SuggestSimilar(name, candidates, 2); len(similar) > 0 {
		suggestion = fmt.Sprintf("Did you mean '%s'? %s", similar[0], suggestion)
	}

	return errors.New(errors.ErrUsage,
		fmt.Sprintf("Unknown category: %s", name),
		suggestion)
}

// unknownDeviceError builds the missing-device error, suggesting close
// matches from the enumerated devices.
func unknownDeviceError(devices []catalog.Device, category catalog.Category, name string) error {
	candidates := make([]string, 0, len(devices))
	for _, d := range devices {
		candidates = append(candidates, d.Name)
	}

	suggestion := fmt.Sprintf("Run 'kmon list %s' to see what exists.", category.Base())
	if similar := util.SuggestSimilar(name, candidates, 2); len(similar) > 0 {
		suggestion = fmt.Sprintf("Did you mean '%s'? %s", similar[0], suggestion)
	}

	return errors.New(errors.ErrUsage,
		fmt.Sprintf("No device named %s under %s", name, category.Root),
		suggestion)
}
