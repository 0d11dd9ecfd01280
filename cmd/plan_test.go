package cmd

import "testing"

func TestParseDay(t *testing.T) {
	tests := []struct {
		arg     string
		want    int
		wantErr bool
	}{
		{"0", 0, false},
		{"6", 6, false},
		{"3", 3, false},
		{"7", 0, true},
		{"-1", 0, true},
		{"monday", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		got, err := parseDay(tt.arg)
		if tt.wantErr {
			if err == nil {
				t.Errorf("parseDay(%q): expected error, got %d", tt.arg, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseDay(%q): unexpected error: %v", tt.arg, err)
			continue
		}
		if got != tt.want {
			t.Errorf("parseDay(%q) = %d, want %d", tt.arg, got, tt.want)
		}
	}
}
