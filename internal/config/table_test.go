package config

import (
	"errors"
	"strings"
	"testing"
)

func TestParseTable(t *testing.T) {
	tests := []struct {
		name    string
		rows    []string
		wantErr string
		wantLen int
	}{
		{
			name:    "valid table",
			rows:    []string{"0:12.6:/usr/local/cuda-12.6", "1:12.9:/usr/local/cuda-12.9"},
			wantLen: 2,
		},
		{
			name:    "blank rows are skipped",
			rows:    []string{"", "0:12.6:/usr/local/cuda-12.6", "   "},
			wantLen: 1,
		},
		{
			name:    "too few fields",
			rows:    []string{"0:12.6"},
			wantErr: "expected 3 fields, got 2",
		},
		{
			name:    "too many fields",
			rows:    []string{"0:12.6:/usr/local/cuda-12.6:extra"},
			wantErr: "expected 3 fields, got 4",
		},
		{
			name:    "duplicate index",
			rows:    []string{"0:12.6:/usr/local/cuda-12.6", "0:12.9:/usr/local/cuda-12.9"},
			wantErr: `duplicate index "0"`,
		},
		{
			name:    "empty index",
			rows:    []string{" :12.6:/usr/local/cuda-12.6"},
			wantErr: "empty index",
		},
		{
			name:    "relative install root",
			rows:    []string{"0:12.6:cuda-12.6"},
			wantErr: "not an absolute path",
		},
		{
			name:    "version label too short for a priority",
			rows:    []string{"0:9:/usr/local/cuda-9"},
			wantErr: "need at least 3",
		},
		{
			name:    "version label not numeric",
			rows:    []string{"0:dev:/usr/local/cuda-dev"},
			wantErr: "not numeric",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, err := ParseTable(tt.rows)
			if tt.wantErr != "" {
				if err == nil {
					t.Fatalf("ParseTable succeeded, want error containing %q", tt.wantErr)
				}
				var parseErr *ParseError
				if !errors.As(err, &parseErr) {
					t.Fatalf("error type = %T, want *ParseError", err)
				}
				if !strings.Contains(err.Error(), tt.wantErr) {
					t.Errorf("error = %q, want it to contain %q", err.Error(), tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseTable failed: %v", err)
			}
			if table.Len() != tt.wantLen {
				t.Errorf("Len() = %d, want %d", table.Len(), tt.wantLen)
			}
		})
	}
}

func TestParseTable_DerivesPriorities(t *testing.T) {
	table, err := ParseTable([]string{"0:12.6:/usr/local/cuda-12.6", "1:11.8:/usr/local/cuda-11.8"})
	if err != nil {
		t.Fatalf("ParseTable failed: %v", err)
	}

	entries := table.Entries()
	if entries[0].Priority != 126 {
		t.Errorf("Priority for 12.6 = %d, want 126", entries[0].Priority)
	}
	if entries[1].Priority != 118 {
		t.Errorf("Priority for 11.8 = %d, want 118", entries[1].Priority)
	}
}

func TestFromEntries(t *testing.T) {
	tests := []struct {
		name    string
		entries []Entry
		wantErr string
		wantLen int
	}{
		{
			name: "valid entries",
			entries: []Entry{
				{Index: "0", Version: "12.6", Root: "/usr/local/cuda-12.6"},
				{Index: "1", Version: "12.9", Root: "/usr/local/cuda-12.9"},
			},
			wantLen: 2,
		},
		{
			name: "root containing a colon",
			entries: []Entry{
				{Index: "0", Version: "12.6", Root: "/mnt/cuda:archive/12.6"},
			},
			wantLen: 1,
		},
		{
			name: "duplicate index",
			entries: []Entry{
				{Index: "0", Version: "12.6", Root: "/opt/a"},
				{Index: "0", Version: "12.9", Root: "/opt/b"},
			},
			wantErr: `duplicate index "0"`,
		},
		{
			name:    "bad version label",
			entries: []Entry{{Index: "0", Version: "beta", Root: "/opt/a"}},
			wantErr: "not numeric",
		},
		{
			name:    "relative root",
			entries: []Entry{{Index: "0", Version: "12.6", Root: "opt/a"}},
			wantErr: "not an absolute path",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, err := FromEntries(tt.entries)
			if tt.wantErr != "" {
				var parseErr *ParseError
				if !errors.As(err, &parseErr) {
					t.Fatalf("error = %v (%T), want *ParseError", err, err)
				}
				if !strings.Contains(err.Error(), tt.wantErr) {
					t.Errorf("error = %q, want it to contain %q", err.Error(), tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("FromEntries failed: %v", err)
			}
			if table.Len() != tt.wantLen {
				t.Errorf("Len() = %d, want %d", table.Len(), tt.wantLen)
			}
		})
	}
}

func TestFromEntries_PreservesColonRoot(t *testing.T) {
	table, err := FromEntries([]Entry{{Index: "0", Version: "12.6", Root: "/mnt/cuda:archive/12.6"}})
	if err != nil {
		t.Fatalf("FromEntries failed: %v", err)
	}
	entry, ok := table.Lookup("0")
	if !ok {
		t.Fatal("Lookup(0) not found")
	}
	if entry.Root != "/mnt/cuda:archive/12.6" {
		t.Errorf("Root = %q, want /mnt/cuda:archive/12.6", entry.Root)
	}
}

func TestTable_Lookup(t *testing.T) {
	table, err := ParseTable([]string{"0:12.6:/usr/local/cuda-12.6", "1:12.9:/usr/local/cuda-12.9"})
	if err != nil {
		t.Fatalf("ParseTable failed: %v", err)
	}

	entry, ok := table.Lookup("1")
	if !ok {
		t.Fatal("Lookup(1) not found")
	}
	if entry.Version != "12.9" || entry.Root != "/usr/local/cuda-12.9" {
		t.Errorf("Lookup(1) = %+v, want version 12.9 at /usr/local/cuda-12.9", entry)
	}

	if _, ok := table.Lookup("9"); ok {
		t.Error("Lookup(9) found an entry, want miss")
	}
}

func TestTable_EntriesIsACopy(t *testing.T) {
	table, err := ParseTable([]string{"0:12.6:/usr/local/cuda-12.6"})
	if err != nil {
		t.Fatalf("ParseTable failed: %v", err)
	}

	table.Entries()[0].Root = "/tmp/clobbered"

	entry, _ := table.Lookup("0")
	if entry.Root != "/usr/local/cuda-12.6" {
		t.Errorf("table mutated through Entries(): Root = %q", entry.Root)
	}
}
