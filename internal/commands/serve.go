package commands

import (
	"os"

	mcpserver "cudactl/internal/mcp"
	"cudactl/internal/ui"
)

// RunServe starts the MCP server over stdio.
func RunServe() {
	mgr, err := loadManager()
	if err != nil {
		ui.ShowError("Failed to load toolkit table", err)
		os.Exit(1)
	}
	if err := mcpserver.RunServer(Version, mgr); err != nil {
		ui.ShowError("MCP server failed", err)
		os.Exit(1)
	}
}
