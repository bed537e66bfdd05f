package commands

import (
	"os"

	"cudactl/internal/output"
	"cudactl/internal/ui"
)

type currentState struct {
	Primary   string `json:"primary,omitempty"`
	Secondary string `json:"secondary,omitempty"`
}

// RunCurrent shows the install root each link group points at.
func RunCurrent() {
	mgr, err := loadManager()
	if err != nil {
		output.PrintError(err)
		os.Exit(1)
	}

	primary, secondary := mgr.Groups()
	var state currentState
	state.Primary, _ = mgr.Current(primary)
	state.Secondary, _ = mgr.Current(secondary)

	output.Print(state, func() {
		if state.Primary == "" {
			ui.ShowWarning("%s has no active candidate", primary.Name)
			ui.ShowInfo("Run 'cudactl register' then 'cudactl switch <index>'")
		} else {
			ui.ShowInfo("%s -> %s", primary.Link, state.Primary)
		}
		if state.Secondary == "" {
			ui.ShowWarning("%s has no active candidate", secondary.Name)
		} else {
			ui.ShowInfo("%s -> %s", secondary.Link, state.Secondary)
		}
	})
}
