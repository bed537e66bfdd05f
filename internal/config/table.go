package config

import (
	"fmt"
	"strings"
)

// Entry describes one installed CUDA toolkit version.
type Entry struct {
	Index    string // user-facing selector, unique within the table
	Version  string // display label, e.g. "12.6"
	Root     string // absolute install root, existence checked at use time
	Priority int    // alternatives priority derived from Version
}

// Table is the ordered set of selectable toolkits. It is built once at
// startup and never mutated afterwards.
type Table struct {
	entries []Entry
}

// ParseError reports a toolkit table row that failed validation.
type ParseError struct {
	Row    string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid toolkit entry %q: %s", e.Row, e.Reason)
}

// ParseTable parses rows of the form "index:version:root" into a Table.
// Malformed rows, duplicate indexes, and version labels that do not yield a
// valid priority are all rejected.
func ParseTable(rows []string) (Table, error) {
	entries := make([]Entry, 0, len(rows))
	seen := make(map[string]bool, len(rows))

	for _, row := range rows {
		trimmed := strings.TrimSpace(row)
		if trimmed == "" {
			continue
		}

		fields := strings.Split(trimmed, ":")
		if len(fields) != 3 {
			return Table{}, &ParseError{Row: row, Reason: fmt.Sprintf("expected 3 fields, got %d", len(fields))}
		}

		entry, err := finishEntry(Entry{Index: fields[0], Version: fields[1], Root: fields[2]}, seen)
		if err != nil {
			return Table{}, &ParseError{Row: row, Reason: err.Error()}
		}

		seen[entry.Index] = true
		entries = append(entries, entry)
	}

	return Table{entries: entries}, nil
}

// FromEntries validates entries built from a structured source, such as the
// YAML override file, and returns them as a Table. Field values are taken
// as-is, so roots containing any character the colon format could not carry
// are fine here.
func FromEntries(raw []Entry) (Table, error) {
	entries := make([]Entry, 0, len(raw))
	seen := make(map[string]bool, len(raw))

	for _, candidate := range raw {
		entry, err := finishEntry(candidate, seen)
		if err != nil {
			row := fmt.Sprintf("index %q (CUDA %s)", candidate.Index, candidate.Version)
			return Table{}, &ParseError{Row: row, Reason: err.Error()}
		}
		seen[entry.Index] = true
		entries = append(entries, entry)
	}

	return Table{entries: entries}, nil
}

// finishEntry trims, validates, and derives the priority for one entry.
func finishEntry(entry Entry, seen map[string]bool) (Entry, error) {
	entry.Index = strings.TrimSpace(entry.Index)
	entry.Version = strings.TrimSpace(entry.Version)
	entry.Root = strings.TrimSpace(entry.Root)

	if err := validate(entry, seen); err != nil {
		return Entry{}, err
	}

	priority, err := DerivePriority(entry.Version)
	if err != nil {
		return Entry{}, err
	}
	entry.Priority = priority
	return entry, nil
}

func validate(entry Entry, seen map[string]bool) error {
	if entry.Index == "" {
		return fmt.Errorf("empty index")
	}
	if seen[entry.Index] {
		return fmt.Errorf("duplicate index %q", entry.Index)
	}
	if entry.Version == "" {
		return fmt.Errorf("empty version label")
	}
	if !strings.HasPrefix(entry.Root, "/") {
		return fmt.Errorf("install root %q is not an absolute path", entry.Root)
	}
	return nil
}

// Entries returns the table rows in declaration order.
func (t Table) Entries() []Entry {
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)
	return out
}

// Len returns the number of toolkits in the table.
func (t Table) Len() int {
	return len(t.entries)
}

// Lookup finds the entry with the given index.
func (t Table) Lookup(index string) (Entry, bool) {
	for _, entry := range t.entries {
		if entry.Index == index {
			return entry, true
		}
	}
	return Entry{}, false
}
