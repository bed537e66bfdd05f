package config

import "testing"

func TestDerivePriority(t *testing.T) {
	tests := []struct {
		version string
		want    int
		wantErr bool
	}{
		{version: "12.6", want: 126},
		{version: "12.9", want: 129},
		{version: "11.8", want: 118},
		{version: "12.6.3", want: 126}, // extra digits truncated
		{version: "12-6", want: 126},
		{version: "12_6", want: 126},
		{version: "9.0", wantErr: true},  // only two digits
		{version: "9", wantErr: true},    // single digit
		{version: "dev", wantErr: true},  // not numeric
		{version: "12.x", wantErr: true}, // mixed
		{version: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.version, func(t *testing.T) {
			got, err := DerivePriority(tt.version)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("DerivePriority(%q) = %d, want error", tt.version, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("DerivePriority(%q) failed: %v", tt.version, err)
			}
			if got != tt.want {
				t.Errorf("DerivePriority(%q) = %d, want %d", tt.version, got, tt.want)
			}
		})
	}
}

func TestDerivePriority_Deterministic(t *testing.T) {
	first, err := DerivePriority("12.6")
	if err != nil {
		t.Fatalf("DerivePriority failed: %v", err)
	}
	for i := 0; i < 100; i++ {
		got, err := DerivePriority("12.6")
		if err != nil {
			t.Fatalf("DerivePriority failed on call %d: %v", i, err)
		}
		if got != first {
			t.Fatalf("DerivePriority unstable: call %d = %d, first = %d", i, got, first)
		}
	}
}
