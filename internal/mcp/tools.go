package mcpserver

import (
	"context"
	"fmt"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"cudactl/internal/switcher"
)

type handlers struct {
	mgr *switcher.Manager
}

// list_toolkits

type toolkitInfo struct {
	Index     string `json:"index"`
	Version   string `json:"version"`
	Root      string `json:"root"`
	Priority  int    `json:"priority"`
	Installed bool   `json:"installed"`
}

type listToolkitsInput struct{}

type listToolkitsOutput struct {
	Toolkits []toolkitInfo `json:"toolkits"`
}

func (h *handlers) listToolkits(ctx context.Context, req *mcpsdk.CallToolRequest, input listToolkitsInput) (*mcpsdk.CallToolResult, listToolkitsOutput, error) {
	entries := h.mgr.Table().Entries()
	infos := make([]toolkitInfo, 0, len(entries))
	for _, entry := range entries {
		infos = append(infos, toolkitInfo{
			Index:     entry.Index,
			Version:   entry.Version,
			Root:      entry.Root,
			Priority:  entry.Priority,
			Installed: h.mgr.Installed(entry),
		})
	}
	return nil, listToolkitsOutput{Toolkits: infos}, nil
}

// current_toolkit

type currentToolkitInput struct{}

type currentToolkitOutput struct {
	Primary   string `json:"primary,omitempty"`
	Secondary string `json:"secondary,omitempty"`
}

func (h *handlers) currentToolkit(ctx context.Context, req *mcpsdk.CallToolRequest, input currentToolkitInput) (*mcpsdk.CallToolResult, currentToolkitOutput, error) {
	primary, secondary := h.mgr.Groups()
	var out currentToolkitOutput
	// A group with no active candidate is reported as empty, not an error.
	out.Primary, _ = h.mgr.Current(primary)
	out.Secondary, _ = h.mgr.Current(secondary)
	return nil, out, nil
}

// switch_toolkit

type switchToolkitInput struct {
	Index string `json:"index" jsonschema:"Table index of the toolkit to activate"`
}

type switchToolkitOutput struct {
	Index   string `json:"index"`
	Version string `json:"version"`
	Root    string `json:"root"`
}

func (h *handlers) switchToolkit(ctx context.Context, req *mcpsdk.CallToolRequest, input switchToolkitInput) (*mcpsdk.CallToolResult, switchToolkitOutput, error) {
	entry, err := h.mgr.Switch(input.Index)
	if err != nil {
		return nil, switchToolkitOutput{}, fmt.Errorf("failed to switch toolkit: %w", err)
	}
	return nil, switchToolkitOutput{Index: entry.Index, Version: entry.Version, Root: entry.Root}, nil
}

// register_toolkits

type registerToolkitsInput struct{}

type registerInfo struct {
	Index          string `json:"index"`
	Version        string `json:"version"`
	Primary        bool   `json:"primary"`
	Secondary      bool   `json:"secondary"`
	SkippedMissing bool   `json:"skippedMissing"`
	Error          string `json:"error,omitempty"`
}

type registerToolkitsOutput struct {
	Results []registerInfo `json:"results"`
}

func (h *handlers) registerToolkits(ctx context.Context, req *mcpsdk.CallToolRequest, input registerToolkitsInput) (*mcpsdk.CallToolResult, registerToolkitsOutput, error) {
	results, err := h.mgr.Register()
	infos := make([]registerInfo, 0, len(results))
	for _, r := range results {
		info := registerInfo{
			Index:          r.Entry.Index,
			Version:        r.Entry.Version,
			Primary:        r.Primary,
			Secondary:      r.Secondary,
			SkippedMissing: r.SkippedMissing,
		}
		if r.Err != nil {
			info.Error = r.Err.Error()
		}
		infos = append(infos, info)
	}
	if err != nil {
		return nil, registerToolkitsOutput{Results: infos}, fmt.Errorf("some registrations failed: %w", err)
	}
	return nil, registerToolkitsOutput{Results: infos}, nil
}
