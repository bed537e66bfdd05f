package commands

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/term"

	"cudactl/internal/switcher"
	"cudactl/internal/tui"
	"cudactl/internal/ui"
)

// RunSwitch points both alternatives link groups at the selected toolkit.
// With no index on a terminal it opens the interactive picker; without a
// terminal it prints usage plus the available toolkits and exits nonzero.
func RunSwitch(args []string) {
	mgr, err := loadManager()
	if err != nil {
		ui.ShowError("Failed to load toolkit table", err)
		os.Exit(1)
	}

	index := ""
	if len(args) > 0 {
		index = args[0]
	}

	if index == "" {
		if term.IsTerminal(int(os.Stdin.Fd())) {
			runPicker(mgr)
			return
		}
		ui.ShowWarning("usage: cudactl switch <index>")
		showAvailable(mgr)
		os.Exit(1)
	}

	applySwitch(mgr, index)
}

func runPicker(mgr *switcher.Manager) {
	primary, _ := mgr.Groups()
	current, _ := mgr.Current(primary)

	entry, ok, err := tui.Pick(mgr.Table(), current, mgr.Installed)
	if err != nil {
		ui.ShowError("Picker failed", err)
		os.Exit(1)
	}
	if !ok {
		return
	}
	applySwitch(mgr, entry.Index)
}

func applySwitch(mgr *switcher.Manager, index string) {
	entry, err := mgr.Switch(index)
	if err != nil {
		var notFound *switcher.NotFoundError
		var missing *switcher.PathMissingError
		var opErr *switcher.OperationError
		switch {
		case errors.As(err, &notFound):
			ui.ShowError(err.Error(), nil)
			showAvailable(mgr)
		case errors.As(err, &missing):
			ui.ShowError(err.Error(), nil)
			ui.ShowInfo("Install CUDA %s or remove it from the table", missing.Version)
		case errors.As(err, &opErr):
			ui.ShowError("Failed to update alternatives", opErr.Err)
			ui.ShowInfo("Privileged alternatives updates may need sudo")
		default:
			ui.ShowError("Switch failed", err)
		}
		os.Exit(1)
	}

	primary, secondary := mgr.Groups()
	ui.ShowSuccess("Switched to CUDA %s", entry.Version)
	ui.ShowInfo("%s -> %s", primary.Link, entry.Root)
	ui.ShowInfo("%s -> %s", secondary.Link, entry.Root)
}

func showAvailable(mgr *switcher.Manager) {
	fmt.Println()
	fmt.Println("Available toolkits:")
	for _, entry := range mgr.Table().Entries() {
		ui.ShowChoice(entry.Index, entry.Version)
	}
}
