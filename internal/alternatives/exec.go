package alternatives

import (
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"
)

// updateAlternatives is the system utility that owns the registry.
const updateAlternatives = "update-alternatives"

// Exec drives the real update-alternatives binary.
type Exec struct {
	command string
}

// NewExec returns an Exec bound to the system update-alternatives.
func NewExec() *Exec {
	return &Exec{command: updateAlternatives}
}

func (e *Exec) InstallCandidate(group Group, path string, priority int) error {
	return e.run(installArgs(group, path, priority))
}

func (e *Exec) SetActive(group Group, path string) error {
	return e.run(setArgs(group, path))
}

// Current resolves the registry's own symlink rather than the managed link,
// so a manually clobbered /usr/local link does not hide the registry state.
func (e *Exec) Current(group Group) (string, error) {
	target, err := os.Readlink(group.AdminLink())
	if err != nil {
		return "", fmt.Errorf("group %s has no active candidate: %w", group.Name, err)
	}
	return target, nil
}

func (e *Exec) run(args []string) error {
	cmd := exec.Command(e.command, args...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		detail := strings.TrimSpace(string(output))
		if detail == "" {
			return fmt.Errorf("%s %s: %w", e.command, strings.Join(args, " "), err)
		}
		return fmt.Errorf("%s %s: %w: %s", e.command, strings.Join(args, " "), err, detail)
	}
	return nil
}

func installArgs(group Group, path string, priority int) []string {
	return []string{"--install", group.Link, group.Name, path, strconv.Itoa(priority)}
}

func setArgs(group Group, path string) []string {
	return []string{"--set", group.Name, path}
}
