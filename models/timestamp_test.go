package models

import "testing"

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantDay string
		wantErr bool
	}{
		{"canonical format", "2024-03-05 10:00:00", "2024-03-05", false},
		{"ISO-8601 with zone", "2024-03-05T10:00:00Z", "2024-03-05", false},
		{"ISO-8601 without zone", "2024-03-05T10:00:00", "2024-03-05", false},
		{"legacy platform format", "Tue Mar 05 10:00:00 +0000 2024", "2024-03-05", false},
		{"garbage", "not-a-date", "", true},
		{"empty", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts, err := ParseTimestamp(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseTimestamp(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if got := DayKey(ts); got != tt.wantDay {
				t.Errorf("DayKey() = %q, want %q", got, tt.wantDay)
			}
		})
	}
}

func TestMonthKey(t *testing.T) {
	ts, err := ParseTimestamp("2024-03-05 10:00:00")
	if err != nil {
		t.Fatalf("ParseTimestamp() error = %v", err)
	}
	if got := MonthKey(ts); got != "2024-03" {
		t.Errorf("MonthKey() = %q, want %q", got, "2024-03")
	}
}
