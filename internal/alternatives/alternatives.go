// Package alternatives wraps the OS update-alternatives registry behind a
// small interface so the toolkit logic can be tested without root.
package alternatives

import "path/filepath"

// Group names one alternatives link managed by the OS registry.
type Group struct {
	Name string // registry name, e.g. "cuda"
	Link string // managed symlink, e.g. "/usr/local/cuda"
}

// The two link groups cudactl manages. The primary link is what shell
// environments point at; the secondary pins the latest 12.x install.
var (
	Primary   = Group{Name: "cuda", Link: "/usr/local/cuda"}
	Secondary = Group{Name: "cuda-12", Link: "/usr/local/cuda-12"}
)

// adminDir is where the registry keeps its indirection symlinks.
const adminDir = "/etc/alternatives"

// AdminLink returns the registry-side symlink for a group.
func (g Group) AdminLink() string {
	return filepath.Join(adminDir, g.Name)
}

// Alternatives is the contract with the OS registry. Both mutating calls are
// privileged and may fail with permission errors.
type Alternatives interface {
	// InstallCandidate registers path as a candidate for the group at the
	// given priority.
	InstallCandidate(group Group, path string, priority int) error
	// SetActive points the group's link at path.
	SetActive(group Group, path string) error
	// Current reports the path the group currently resolves to.
	Current(group Group) (string, error)
}
