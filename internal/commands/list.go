package commands

import (
	"fmt"

	"cudactl/internal/alternatives"
	"cudactl/internal/config"
	"cudactl/internal/output"
	"cudactl/internal/switcher"
	"cudactl/internal/ui"
)

type toolkitRow struct {
	Index     string `json:"index"`
	Version   string `json:"version"`
	Root      string `json:"root"`
	Priority  int    `json:"priority"`
	Installed bool   `json:"installed"`
	Current   bool   `json:"current"`
}

// RunList prints every toolkit in the table. Always exits zero: a broken
// override file is reported and the built-in table is listed instead.
func RunList() {
	table, err := config.Load()
	if err != nil {
		if !output.JSONMode {
			ui.ShowWarning("Ignoring toolkit table at %s: %v", config.OverridePath, err)
		}
		table = config.Defaults()
	}
	mgr := switcher.New(table, alternatives.NewExec())

	primary, _ := mgr.Groups()
	current, _ := mgr.Current(primary)

	rows := make([]toolkitRow, 0, mgr.Table().Len())
	for _, entry := range mgr.Table().Entries() {
		rows = append(rows, toolkitRow{
			Index:     entry.Index,
			Version:   entry.Version,
			Root:      entry.Root,
			Priority:  entry.Priority,
			Installed: mgr.Installed(entry),
			Current:   entry.Root == current,
		})
	}

	output.Print(rows, func() {
		ui.ShowHeader("Available CUDA Toolkits")
		fmt.Println()
		for _, row := range rows {
			ui.ShowToolkit(row.Index, row.Version, row.Root, row.Current, row.Installed)
		}
		if current == "" {
			fmt.Println()
			ui.ShowInfo("No toolkit is active. Run 'cudactl register' then 'cudactl switch <index>'")
		}
	})
}
