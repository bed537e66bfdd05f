package commands

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"cudactl/internal/alternatives"
	"cudactl/internal/config"
	"cudactl/internal/switcher"
	"cudactl/internal/ui"
)

// RunDoctor performs diagnostic checks on the system.
func RunDoctor() {
	ui.ShowHeader("Running System Diagnostics")
	fmt.Println()

	passCount := 0
	failCount := 0
	warnCount := 0

	// 1. Check the alternatives utility
	fmt.Println("1. Checking update-alternatives...")
	altPath, err := exec.LookPath("update-alternatives")
	if err != nil {
		ui.ShowError("update-alternatives not found in PATH", err)
		ui.ShowInfo("cudactl drives the OS alternatives registry and cannot work without it")
		failCount++
	} else {
		ui.ShowSuccess("update-alternatives found: %s", altPath)
		passCount++
	}
	fmt.Println()

	// 2. Check the toolkit table
	fmt.Println("2. Checking toolkit table...")
	table, err := config.Load()
	if err != nil {
		ui.ShowError("Failed to load toolkit table", err)
		ui.ShowInfo("Fix or remove %s", config.OverridePath)
		failCount++
	} else {
		if _, statErr := os.Stat(config.OverridePath); statErr == nil {
			ui.ShowSuccess("Table loaded from %s", config.OverridePath)
		} else {
			ui.ShowSuccess("Built-in table loaded (no %s)", config.OverridePath)
		}
		ui.ShowSuccess("%d toolkit(s) configured", table.Len())
		passCount++
	}
	fmt.Println()

	mgr := switcher.New(table, alternatives.NewExec())

	// 3. Check install roots
	fmt.Println("3. Checking install roots...")
	installed := 0
	for _, entry := range table.Entries() {
		if mgr.Installed(entry) {
			ui.ShowSuccess("CUDA %s at %s", entry.Version, entry.Root)
			installed++
		} else {
			ui.ShowWarning("CUDA %s missing at %s", entry.Version, entry.Root)
			warnCount++
		}
	}
	if installed == 0 && table.Len() > 0 {
		ui.ShowError("No configured toolkit is installed", nil)
		failCount++
	} else {
		passCount++
	}
	fmt.Println()

	// 4. Check link groups
	fmt.Println("4. Checking alternatives links...")
	primary, secondary := mgr.Groups()
	for _, group := range []alternatives.Group{primary, secondary} {
		current, err := mgr.Current(group)
		if err != nil {
			ui.ShowWarning("Group %s has no active candidate", group.Name)
			ui.ShowInfo("Run 'cudactl register' then 'cudactl switch <index>'")
			warnCount++
			continue
		}
		ui.ShowSuccess("%s -> %s", group.Link, current)
		if _, statErr := os.Stat(current); statErr != nil {
			ui.ShowWarning("Target %s does not exist", current)
			warnCount++
		}
		passCount++
	}
	fmt.Println()

	// 5. Check shell environment
	fmt.Println("5. Checking shell environment...")
	binPath := filepath.Join(primary.Link, "bin")
	onPath := false
	for _, dir := range filepath.SplitList(os.Getenv("PATH")) {
		if dir == binPath {
			onPath = true
			break
		}
	}
	if onPath {
		ui.ShowSuccess("%s is on PATH", binPath)
		passCount++
	} else {
		ui.ShowWarning("%s is not on PATH", binPath)
		ui.ShowInfo(`Add 'eval "$(cudactl env)"' to your shell rc`)
		warnCount++
	}
	libPath := filepath.Join(primary.Link, "lib64")
	if strings.Contains(os.Getenv("LD_LIBRARY_PATH"), libPath) {
		ui.ShowSuccess("%s is on LD_LIBRARY_PATH", libPath)
		passCount++
	} else {
		ui.ShowWarning("%s is not on LD_LIBRARY_PATH", libPath)
		warnCount++
	}
	fmt.Println()

	// 6. Check registry write access
	fmt.Println("6. Checking registry write access...")
	registryDir := filepath.Dir(primary.AdminLink())
	if ui.CanWriteTo(registryDir) {
		ui.ShowSuccess("%s is writable", registryDir)
		passCount++
	} else {
		ui.ShowWarning("%s is not writable", registryDir)
		ui.ShowInfo("Run 'cudactl register' and 'cudactl switch' with sudo")
		warnCount++
	}
	fmt.Println()

	// Summary
	ui.ShowHeader("Diagnostics Summary")
	ui.ShowInfo("%d passed, %d warning(s), %d failed", passCount, warnCount, failCount)
	if failCount > 0 {
		os.Exit(1)
	}
}
