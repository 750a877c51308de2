package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/rileyhilliard/kmon/internal/catalog"
	"github.com/rileyhilliard/kmon/internal/config"
	"github.com/rileyhilliard/kmon/internal/metric"
	"github.com/rileyhilliard/kmon/internal/sysfs"
	"github.com/rileyhilliard/kmon/internal/ui"
)

// CategoryListing is one category in machine-readable list output.
type CategoryListing struct {
	Label   string `json:"label"`
	Name    string `json:"name"`
	Root    string `json:"root"`
	Present bool   `json:"present"`
	Devices int    `json:"devices"`
}

// DeviceListing is one device in machine-readable list output.
type DeviceListing struct {
	Name     string `json:"name"`
	Path     string `json:"path,omitempty"`
	Driver   string `json:"driver,omitempty"`
	Preview  string `json:"preview,omitempty"`
	Sentinel bool   `json:"sentinel,omitempty"`
}

// CategoryDevices is the machine-readable device list of one category.
type CategoryDevices struct {
	Category string          `json:"category"`
	Root     string          `json:"root"`
	Devices  []DeviceListing `json:"devices"`
}

// listCommand lists the categories, or the devices of the category
// named in args.
func listCommand(args []string, asJSON bool) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fs := sysfs.NewOS()
	categories := catalog.Categories(cfg.SysfsRoot)

	if len(args) == 0 {
		return listCategories(fs, categories, asJSON)
	}

	category, ok := catalog.FindCategory(categories, args[0])
	if !ok {
		return unknownCategoryError(categories, args[0])
	}
	return listDevices(fs, category, asJSON)
}

// buildCategoryListings enumerates every category once and records its
// presence and device count. An absent root lists as not present with
// zero devices.
func buildCategoryListings(fs sysfs.FS, categories []catalog.Category) []CategoryListing {
	listings := make([]CategoryListing, 0, len(categories))
	for _, c := range categories {
		listing := CategoryListing{
			Label: c.Label,
			Name:  c.Base(),
			Root:  c.Root,
		}

		devices := catalog.ListDevices(fs, c.Root)
		if len(devices) != 1 || !devices[0].Sentinel {
			listing.Present = true
			listing.Devices = len(devices)
		}
		listings = append(listings, listing)
	}
	return listings
}

// listCategories prints the fixed category table with device counts.
func listCategories(fs sysfs.FS, categories []catalog.Category, asJSON bool) error {
	listings := buildCategoryListings(fs, categories)

	if asJSON {
		return WriteJSONSuccess(os.Stdout, listings)
	}

	columns := []ui.TableColumn{
		{Title: "Category", Width: 10},
		{Title: "Name", Width: 14},
		{Title: "Devices", Width: 8},
		{Title: "Root", Width: 32},
	}

	rows := make([][]string, 0, len(listings))
	for _, l := range listings {
		count := "-"
		if l.Present {
			count = strconv.Itoa(l.Devices)
		}
		rows = append(rows, []string{l.Label, l.Name, count, l.Root})
	}

	fmt.Println(ui.RenderSimpleTable(columns, rows))
	return nil
}

// buildDeviceListings enumerates and classifies one category's devices,
// producing both the machine-readable listings and the table rows.
// Sentinels pass through unclassified.
func buildDeviceListings(fs sysfs.FS, engine *metric.Engine, category catalog.Category) ([]DeviceListing, []ui.DeviceTableRow) {
	devices := catalog.ListDevices(fs, category.Root)

	listings := make([]DeviceListing, 0, len(devices))
	tableRows := make([]ui.DeviceTableRow, 0, len(devices))

	for _, d := range devices {
		if d.Sentinel {
			listings = append(listings, DeviceListing{Name: d.Name, Sentinel: true})
			tableRows = append(tableRows, ui.DeviceTableRow{Name: d.Name, Sentinel: true})
			continue
		}

		path := d.Path(category.Root)
		summary := engine.Summarize(path)

		var preview string
		var alert bool
		if len(summary.Lines) > 0 {
			preview = summary.Lines[0].Display()
			alert = summary.Lines[0].Severity == metric.SeverityAlert
		}

		listings = append(listings, DeviceListing{
			Name:    d.Name,
			Path:    path,
			Driver:  summary.Kind,
			Preview: preview,
		})
		tableRows = append(tableRows, ui.DeviceTableRow{
			Name:    d.Name,
			Driver:  summary.Kind,
			Preview: preview,
			Alert:   alert,
		})
	}

	return listings, tableRows
}

// listDevices prints one category's devices with their claiming driver
// and first summary line.
func listDevices(fs sysfs.FS, category catalog.Category, asJSON bool) error {
	engine := metric.NewEngine(fs)
	listings, tableRows := buildDeviceListings(fs, engine, category)

	if asJSON {
		return WriteJSONSuccess(os.Stdout, CategoryDevices{
			Category: category.Label,
			Root:     category.Root,
			Devices:  listings,
		})
	}

	fmt.Println(ui.InfoStyle().Bold(true).Render(category.Label) + "  " + ui.MutedStyle().Render(category.Root))
	fmt.Print(ui.RenderDeviceTable(tableRows))
	return nil
}
