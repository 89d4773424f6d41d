package tui

import "testing"

func TestFormatRunTime(t *testing.T) {
	tests := []struct {
		name     string
		ticks    int
		tickRate int
		want     string
	}{
		{"minute at 60 tps", 3600, 60, "1:00"},
		{"same run at 30 tps", 3600, 30, "2:00"},
		{"90 seconds at 120 tps", 10800, 120, "1:30"},
		{"sub-minute", 330, 60, "0:05"},
		{"zero ticks", 0, 60, "0:00"},
		{"invalid rate falls back to 60", 600, 0, "0:10"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatRunTime(tt.ticks, tt.tickRate); got != tt.want {
				t.Errorf("FormatRunTime(%d, %d) = %q, want %q", tt.ticks, tt.tickRate, got, tt.want)
			}
		})
	}
}
