package hours

import "testing"

func TestFormatClockTime(t *testing.T) {
	tests := []struct {
		hour   int
		minute int
		want   string
	}{
		{0, 0, "12 AM"},
		{12, 0, "12 PM"},
		{13, 30, "1:30 PM"},
		{9, 0, "9 AM"},
		{9, 5, "9:05 AM"},
		{23, 59, "11:59 PM"},
		{11, 0, "11 AM"},
	}
	for _, test := range tests {
		if got := formatClockTime(test.hour, test.minute); got != test.want {
			t.Errorf("formatClockTime(%d, %d) = %q; want %q", test.hour, test.minute, got, test.want)
		}
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		minutes int
		want    string
	}{
		{10, "10 min"},
		{59, "59 min"},
		{60, "1 hour"},
		{61, "1h 1m"},
		{120, "2h"},
		{135, "2h 15m"},
	}
	for _, test := range tests {
		if got := formatDuration(test.minutes); got != test.want {
			t.Errorf("formatDuration(%d) = %q; want %q", test.minutes, got, test.want)
		}
	}
}
