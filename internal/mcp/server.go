package mcpserver

import (
	"context"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"cudactl/internal/switcher"
)

// RunServer starts the MCP server over stdio transport, exposing the toolkit
// table and the register/switch operations as tools.
func RunServer(version string, mgr *switcher.Manager) error {
	server := mcpsdk.NewServer(
		&mcpsdk.Implementation{
			Name:    "cudactl",
			Version: version,
		},
		nil,
	)

	h := &handlers{mgr: mgr}

	mcpsdk.AddTool(server, &mcpsdk.Tool{
		Name:        "list_toolkits",
		Description: "List all registered CUDA toolkit versions with their install roots and install state",
	}, h.listToolkits)

	mcpsdk.AddTool(server, &mcpsdk.Tool{
		Name:        "current_toolkit",
		Description: "Report the install root each alternatives link group currently points at",
	}, h.currentToolkit)

	mcpsdk.AddTool(server, &mcpsdk.Tool{
		Name:        "switch_toolkit",
		Description: "Point both alternatives link groups at the toolkit with the given table index",
	}, h.switchToolkit)

	mcpsdk.AddTool(server, &mcpsdk.Tool{
		Name:        "register_toolkits",
		Description: "Register every installed toolkit from the table as an alternatives candidate",
	}, h.registerToolkits)

	return server.Run(context.Background(), &mcpsdk.StdioTransport{})
}
