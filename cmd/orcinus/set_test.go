package main

import "testing"

func TestSplitAssignment(t *testing.T) {
	tests := []struct {
		name     string
		arg      string
		wantName string
		wantVal  string
		wantOK   bool
	}{
		{
			name:     "plain assignment",
			arg:      "charge=-1",
			wantName: "charge",
			wantVal:  "-1",
			wantOK:   true,
		},
		{
			name:     "value keeps later equals signs",
			arg:      "comment=energy=done",
			wantName: "comment",
			wantVal:  "energy=done",
			wantOK:   true,
		},
		{
			name:     "empty value",
			arg:      "dispersion=",
			wantName: "dispersion",
			wantVal:  "",
			wantOK:   true,
		},
		{
			name:   "missing equals",
			arg:    "noequals",
			wantOK: false,
		},
		{
			name:   "empty name",
			arg:    "=value",
			wantOK: false,
		},
		{
			name:   "empty string",
			arg:    "",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			name, val, ok := splitAssignment(tt.arg)
			if ok != tt.wantOK {
				t.Fatalf("splitAssignment(%q) ok = %v, want %v", tt.arg, ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if name != tt.wantName || val != tt.wantVal {
				t.Errorf("splitAssignment(%q) = (%q, %q), want (%q, %q)",
					tt.arg, name, val, tt.wantName, tt.wantVal)
			}
		})
	}
}
