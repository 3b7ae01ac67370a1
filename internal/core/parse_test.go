package core

import "testing"

func TestParseDate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string // YYYY-MM-DD, empty means nil expected
	}{
		{"iso date", "2024-01-15", "2024-01-15"},
		{"iso datetime", "2024-01-15 09:30:00", "2024-01-15"},
		{"rfc3339", "2024-01-15T09:30:00Z", "2024-01-15"},
		{"slash format", "15/01/2024", "2024-01-15"},
		{"whitespace", "  2024-01-15  ", "2024-01-15"},
		{"empty", "", ""},
		{"garbage", "not-a-date", ""},
		{"month overflow", "2024-13-40", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseDate(tt.input)
			if tt.want == "" {
				if got != nil {
					t.Fatalf("ParseDate(%q) = %v, want nil", tt.input, got)
				}
				return
			}
			if got == nil {
				t.Fatalf("ParseDate(%q) = nil, want %s", tt.input, tt.want)
			}
			if got.String() != tt.want {
				t.Errorf("ParseDate(%q) = %s, want %s", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantNil bool
	}{
		{"datetime", "2024-01-15 09:30:00", false},
		{"rfc3339", "2024-01-15T09:30:00Z", false},
		{"fractional seconds", "2024-01-15 09:30:00.123456", false},
		{"date only", "2024-01-15", false},
		{"empty", "", true},
		{"garbage", "yesterday", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseTimestamp(tt.input)
			if (got == nil) != tt.wantNil {
				t.Errorf("ParseTimestamp(%q) = %v, wantNil=%v", tt.input, got, tt.wantNil)
			}
		})
	}
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"plain", "12.34", "12.34", false},
		{"comma separator", "12,34", "12.34", false},
		{"negative", "-5.50", "-5.5", false},
		{"integer", "100", "100", false},
		{"empty", "", "", true},
		{"garbage", "ten euros", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAmount(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseAmount(%q) expected error, got %s", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseAmount(%q) unexpected error: %v", tt.input, err)
			}
			if got.String() != tt.want {
				t.Errorf("ParseAmount(%q) = %s, want %s", tt.input, got, tt.want)
			}
		})
	}
}
