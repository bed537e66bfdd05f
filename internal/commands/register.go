package commands

import (
	"fmt"
	"os"

	"cudactl/internal/ui"
)

// RunRegister registers every installed toolkit from the table as an
// alternatives candidate. Missing installs are skipped with a warning;
// failed privileged calls are reported and make the exit code nonzero.
func RunRegister() {
	ui.ShowHeader("Registering CUDA Alternatives")
	fmt.Println()

	mgr, err := loadManager()
	if err != nil {
		ui.ShowError("Failed to load toolkit table", err)
		os.Exit(1)
	}

	results, err := mgr.Register()
	for _, r := range results {
		switch {
		case r.SkippedMissing:
			ui.ShowWarning("CUDA %s not found at %s, skipping", r.Entry.Version, r.Entry.Root)
		case r.Err != nil:
			ui.ShowError(fmt.Sprintf("CUDA %s", r.Entry.Version), r.Err)
		default:
			ui.ShowSuccess("Registered CUDA %s (priority %d)", r.Entry.Version, r.Entry.Priority)
			if !r.Secondary {
				ui.ShowInfo("CUDA %s is outside the cuda-12 group, primary link only", r.Entry.Version)
			}
		}
	}

	if err != nil {
		fmt.Println()
		ui.ShowError("Some registrations failed", nil)
		ui.ShowInfo("Privileged alternatives updates may need sudo")
		os.Exit(1)
	}
}
