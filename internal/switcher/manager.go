package switcher

import (
	"errors"
	"os"
	"strings"

	"cudactl/internal/alternatives"
	"cudactl/internal/config"
)

// secondaryPrefix selects which version labels are also registered under the
// secondary (major-version pinned) link group.
const secondaryPrefix = "12."

// Manager runs the register and switch operations against one toolkit table
// and one alternatives registry.
type Manager struct {
	table     config.Table
	alts      alternatives.Alternatives
	primary   alternatives.Group
	secondary alternatives.Group

	exists func(path string) bool
}

// New builds a Manager over the standard cuda link groups.
func New(table config.Table, alts alternatives.Alternatives) *Manager {
	return &Manager{
		table:     table,
		alts:      alts,
		primary:   alternatives.Primary,
		secondary: alternatives.Secondary,
		exists:    dirExists,
	}
}

// Table returns the toolkit table the manager operates on.
func (m *Manager) Table() config.Table {
	return m.table
}

// Groups returns the primary and secondary link groups.
func (m *Manager) Groups() (alternatives.Group, alternatives.Group) {
	return m.primary, m.secondary
}

// RegisterResult records what happened to one table entry during Register.
type RegisterResult struct {
	Entry          config.Entry
	SkippedMissing bool // install root absent, nothing registered
	Primary        bool // registered for the primary group
	Secondary      bool // registered for the secondary group
	Err            error
}

// Register walks the table in order and registers every toolkit whose
// install root exists as a candidate for the primary group, and for the
// secondary group when the version matches its major-version prefix. A
// missing root skips the entry; a failed privileged call is recorded and the
// walk continues. The returned error joins all operation failures.
func (m *Manager) Register() ([]RegisterResult, error) {
	results := make([]RegisterResult, 0, m.table.Len())
	var failures []error

	for _, entry := range m.table.Entries() {
		result := RegisterResult{Entry: entry}

		if !m.exists(entry.Root) {
			result.SkippedMissing = true
			results = append(results, result)
			continue
		}

		if err := m.alts.InstallCandidate(m.primary, entry.Root, entry.Priority); err != nil {
			result.Err = &OperationError{Group: m.primary.Name, Err: err}
			failures = append(failures, result.Err)
			results = append(results, result)
			continue
		}
		result.Primary = true

		if strings.HasPrefix(entry.Version, secondaryPrefix) {
			if err := m.alts.InstallCandidate(m.secondary, entry.Root, entry.Priority); err != nil {
				result.Err = &OperationError{Group: m.secondary.Name, Err: err}
				failures = append(failures, result.Err)
				results = append(results, result)
				continue
			}
			result.Secondary = true
		}

		results = append(results, result)
	}

	return results, errors.Join(failures...)
}

// Switch points both link groups at the toolkit with the given index. The
// install root is checked once up front so a failure can never leave one
// group updated and the other not for precondition reasons.
func (m *Manager) Switch(index string) (config.Entry, error) {
	if strings.TrimSpace(index) == "" {
		return config.Entry{}, &UsageError{}
	}

	entry, ok := m.table.Lookup(index)
	if !ok {
		return config.Entry{}, &NotFoundError{Index: index}
	}

	if !m.exists(entry.Root) {
		return config.Entry{}, &PathMissingError{Index: entry.Index, Version: entry.Version, Root: entry.Root}
	}

	if err := m.alts.SetActive(m.primary, entry.Root); err != nil {
		return config.Entry{}, &OperationError{Group: m.primary.Name, Err: err}
	}
	if err := m.alts.SetActive(m.secondary, entry.Root); err != nil {
		return config.Entry{}, &OperationError{Group: m.secondary.Name, Err: err}
	}

	return entry, nil
}

// Current reports the path a link group currently resolves to.
func (m *Manager) Current(group alternatives.Group) (string, error) {
	return m.alts.Current(group)
}

// Installed reports whether the entry's install root exists right now.
func (m *Manager) Installed(entry config.Entry) bool {
	return m.exists(entry.Root)
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
