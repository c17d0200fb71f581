package ingest

import "testing"

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"3723", 3723, true},
		{"3723.5", 3723.5, true},
		{"5,4", 5.4, true},
		{"1:02:03", 3723, true},
		{"62:03", 3723, true},
		{"90:00", 5400, true},
		{" 01:30 ", 90, true},
		{"0:00", 0, true},
		{"1:75", 0, false},
		{"1:02:75", 0, false},
		{"-5", 0, false},
		{"1:-2", 0, false},
		{"", 0, false},
		{"   ", 0, false},
		{"abc", 0, false},
		{"1:02:03:04", 0, false},
		{"::", 0, false},
	}

	for _, tt := range tests {
		got, ok := ParseTimestamp(tt.in)
		if ok != tt.ok {
			t.Errorf("ParseTimestamp(%q) ok = %v, want %v", tt.in, ok, tt.ok)
			continue
		}
		if ok && got != tt.want {
			t.Errorf("ParseTimestamp(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
