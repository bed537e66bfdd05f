package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// defaultRows is the built-in toolkit table, one "index:version:root" triple
// per row.
var defaultRows = []string{
	"0:12.6:/usr/local/cuda-12.6",
	"1:12.9:/usr/local/cuda-12.9",
	"2:11.8:/usr/local/cuda-11.8",
}

// OverridePath points at the optional user toolkit table. When the file
// exists it replaces the built-in table entirely.
var OverridePath string

func init() {
	homeDir, _ := os.UserHomeDir()
	OverridePath = filepath.Join(homeDir, ".cudactl", "toolkits.yaml")
}

type overrideFile struct {
	Toolkits []overrideEntry `yaml:"toolkits"`
}

type overrideEntry struct {
	Index   string `yaml:"index"`
	Version string `yaml:"version"`
	Root    string `yaml:"root"`
}

// Load returns the toolkit table, preferring the user override file over the
// built-in defaults. Both sources pass the same validation.
func Load() (Table, error) {
	data, err := os.ReadFile(OverridePath)
	if os.IsNotExist(err) {
		return ParseTable(defaultRows)
	}
	if err != nil {
		return Table{}, fmt.Errorf("read %s: %w", OverridePath, err)
	}

	var file overrideFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return Table{}, fmt.Errorf("parse %s: %w", OverridePath, err)
	}
	if len(file.Toolkits) == 0 {
		return Table{}, fmt.Errorf("%s defines no toolkits", OverridePath)
	}

	entries := make([]Entry, 0, len(file.Toolkits))
	for _, tk := range file.Toolkits {
		entries = append(entries, Entry{Index: tk.Index, Version: tk.Version, Root: tk.Root})
	}
	return FromEntries(entries)
}

// Defaults returns the built-in toolkit table. The built-in rows are
// compile-time constants covered by tests, so the parse cannot fail.
func Defaults() Table {
	table, _ := ParseTable(defaultRows)
	return table
}
