package hours

import (
	"testing"
	"time"
)

func TestParse_TwentyFourSeven(t *testing.T) {
	inputs := []string{"24/7", "Open 24 hours", "Always open", "open 24/7 including holidays"}
	for _, input := range inputs {
		result := Parse(input)
		if result.Kind != KindTwentyFourSeven {
			t.Errorf("Parse(%q): expected KindTwentyFourSeven, got %v", input, result.Kind)
		}
	}
}

func TestParse_ExplicitlyClosed(t *testing.T) {
	inputs := []string{"Temporarily closed", "PERMANENTLY CLOSED", "temporarily closed for renovations"}
	for _, input := range inputs {
		result := Parse(input)
		if result.Kind != KindExplicitlyClosed {
			t.Errorf("Parse(%q): expected KindExplicitlyClosed, got %v", input, result.Kind)
		}
	}
}

func TestParse_MealSchedule(t *testing.T) {
	result := Parse("Breakfast 8am, Lunch 12pm, Dinner 5pm daily")
	if result.Kind != KindMealSchedule {
		t.Fatalf("Expected KindMealSchedule, got %v", result.Kind)
	}

	// Meal markers without the daily token fall through to the generic
	// time-range matcher or unrecognized; they must not match here.
	result = Parse("Lunch 12pm only")
	if result.Kind == KindMealSchedule {
		t.Errorf("Expected meal text without 'daily' not to parse as meal schedule")
	}
}

func TestParse_DailyWindow(t *testing.T) {
	result := Parse("Daily 9am - 5pm")
	if result.Kind != KindWindow {
		t.Fatalf("Expected KindWindow, got %v", result.Kind)
	}
	if result.Days != EveryDay {
		t.Errorf("Expected EveryDay applicability, got %v", result.Days)
	}
	if result.Window.Open != 9*60 || result.Window.Close != 17*60 {
		t.Errorf("Expected window 540-1020, got %d-%d", result.Window.Open, result.Window.Close)
	}
}

func TestParse_GenericWindow(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantOpen  int
		wantClose int
		wantDays  Applicability
		wantDay   time.Weekday
	}{
		{"no day tokens defaults to every day", "9am-5pm", 540, 1020, EveryDay, time.Sunday},
		{"minutes and meridiem", "9:30am - 5:15pm", 570, 1035, EveryDay, time.Sunday},
		{"noon boundary", "12pm-5pm", 720, 1020, EveryDay, time.Sunday},
		{"midnight boundary", "12am-6am", 0, 360, EveryDay, time.Sunday},
		{"24 hour clock without meridiem", "9:00 - 17:00", 540, 1020, EveryDay, time.Sunday},
		{"weekday range", "Mon-Fri 9am-5pm", 540, 1020, Weekdays, time.Sunday},
		{"long weekday range", "monday-friday 8am-4pm", 480, 960, Weekdays, time.Sunday},
		{"weekday keyword", "weekdays 9am-5pm", 540, 1020, Weekdays, time.Sunday},
		{"exact day name", "Saturday 10am-2pm", 600, 840, SpecificDay, time.Saturday},
		{"sat abbreviation", "Sat 10am-2pm", 600, 840, SpecificDay, time.Saturday},
		{"sun abbreviation", "Sun 11am-3pm", 660, 900, SpecificDay, time.Sunday},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			result := Parse(test.input)
			if result.Kind != KindWindow {
				t.Fatalf("Parse(%q): expected KindWindow, got %v", test.input, result.Kind)
			}
			if result.Window.Open != test.wantOpen || result.Window.Close != test.wantClose {
				t.Errorf("Parse(%q): expected window %d-%d, got %d-%d",
					test.input, test.wantOpen, test.wantClose, result.Window.Open, result.Window.Close)
			}
			if result.Days != test.wantDays {
				t.Errorf("Parse(%q): expected applicability %v, got %v", test.input, test.wantDays, result.Days)
			}
			if result.Days == SpecificDay && result.Day != test.wantDay {
				t.Errorf("Parse(%q): expected day %v, got %v", test.input, test.wantDay, result.Day)
			}
		})
	}
}

func TestParse_DayOnly(t *testing.T) {
	inputs := []string{"Mon-Fri", "monday-friday", "Weekdays only"}
	for _, input := range inputs {
		result := Parse(input)
		if result.Kind != KindDayOnly {
			t.Errorf("Parse(%q): expected KindDayOnly, got %v", input, result.Kind)
		}
		if result.Days != Weekdays {
			t.Errorf("Parse(%q): expected Weekdays applicability, got %v", input, result.Days)
		}
	}
}

func TestParse_Unrecognized(t *testing.T) {
	inputs := []string{
		"",
		"   ",
		"call for hours",
		"varies by season",
		"13am-5pm",   // hour out of range for a meridiem marker
		"9am-25pm",   // close hour out of range
		"10pm-2am",   // overnight range crossing midnight is rejected
		"5pm-9am",    // close before open
		"Saturday",   // bare specific day has no matcher
	}
	for _, input := range inputs {
		result := Parse(input)
		if result.Kind != KindUnrecognized {
			t.Errorf("Parse(%q): expected KindUnrecognized, got %v", input, result.Kind)
		}
	}
}

func TestParse_MeridiemConversion(t *testing.T) {
	tests := []struct {
		input    string
		wantOpen int
	}{
		{"12am-6am", 0},     // 12am is minute 0
		{"12pm-5pm", 720},   // 12pm is minute 720
		{"1pm-5pm", 780},    // pm adds 12 hours
		{"1am-5am", 60},     // am leaves the hour unchanged
		{"11:45pm - 11:59pm", 1425},
	}
	for _, test := range tests {
		result := Parse(test.input)
		if result.Kind != KindWindow {
			t.Fatalf("Parse(%q): expected KindWindow, got %v", test.input, result.Kind)
		}
		if result.Window.Open != test.wantOpen {
			t.Errorf("Parse(%q): expected open minute %d, got %d", test.input, test.wantOpen, result.Window.Open)
		}
	}
}
