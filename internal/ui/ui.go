package ui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

func ShowHeader(title string) {
	fmt.Printf(" %s\n", strings.Repeat("─", len(title)+2))
	fmt.Printf(" %s\n", title)
	fmt.Printf(" %s\n", strings.Repeat("─", len(title)+2))
}

// ShowToolkit prints one selectable toolkit row.
func ShowToolkit(index, version, root string, current, installed bool) {
	marker := " "
	if current {
		marker = "*"
	}
	note := ""
	if !installed {
		note = " (not installed)"
	}
	fmt.Printf("  %s %s: CUDA %s%s\n", marker, index, version, note)
	fmt.Printf("      %s\n", root)
}

// ShowChoice prints an (index, version) pair for selection lists.
func ShowChoice(index, version string) {
	fmt.Printf("  %s: CUDA %s\n", index, version)
}

func ShowSuccess(format string, args ...interface{}) {
	fmt.Printf(" ✓ %s\n", fmt.Sprintf(format, args...))
}

func ShowError(msg string, err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, " ✗ %s: %v\n", msg, err)
	} else {
		fmt.Fprintf(os.Stderr, " ✗ %s\n", msg)
	}
}

func ShowWarning(format string, args ...interface{}) {
	fmt.Printf(" ! %s\n", fmt.Sprintf(format, args...))
}

func ShowInfo(format string, args ...interface{}) {
	fmt.Printf(" ℹ %s\n", fmt.Sprintf(format, args...))
}

func CanWriteTo(dir string) bool {
	testFile := filepath.Join(dir, ".test_write")
	f, err := os.Create(testFile)
	if err != nil {
		return false
	}
	f.Close()
	os.Remove(testFile)
	return true
}
