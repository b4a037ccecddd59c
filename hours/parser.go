package hours

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ParseKind tags the outcome of scanning an hours string.
type ParseKind int

const (
	KindUnrecognized ParseKind = iota
	KindTwentyFourSeven
	KindExplicitlyClosed
	KindMealSchedule
	KindWindow
	KindDayOnly
)

// Applicability is the set of weekdays a parsed window applies to. Text with
// no day keyword at all defaults to EveryDay.
type Applicability int

const (
	EveryDay Applicability = iota
	Weekdays
	SpecificDay
)

// TimeWindow is a same-day open/close pair in minutes since midnight.
// Close < Open (an overnight range crossing midnight) is not modeled; the
// parser rejects such text instead of mis-evaluating it.
type TimeWindow struct {
	Open  int
	Close int
}

// ParseResult is the structured form of one hours string. Window is only
// meaningful for KindWindow, Days for KindWindow and KindDayOnly, and Day
// only when Days == SpecificDay.
type ParseResult struct {
	Kind   ParseKind
	Window TimeWindow
	Days   Applicability
	Day    time.Weekday
}

// timeRangeRe matches "HH[:MM][am|pm] - HH[:MM][am|pm]" anywhere in the text.
var timeRangeRe = regexp.MustCompile(`(\d{1,2})(?::(\d{2}))?\s*(am|pm)?\s*-\s*(\d{1,2})(?::(\d{2}))?\s*(am|pm)?`)

// mealRe matches a meal marker followed by a time ("lunch 11:30am").
var mealRe = regexp.MustCompile(`(breakfast|lunch|dinner)\s*:?\s*\d{1,2}(?::\d{2})?\s*(am|pm)?`)

// weekdayTokens is scanned in a fixed order so parsing stays deterministic
// when more than one day name appears.
var weekdayTokens = []struct {
	token string
	day   time.Weekday
}{
	{"sunday", time.Sunday},
	{"monday", time.Monday},
	{"tuesday", time.Tuesday},
	{"wednesday", time.Wednesday},
	{"thursday", time.Thursday},
	{"friday", time.Friday},
	{"saturday", time.Saturday},
}

// Parse applies the ordered matchers to operator-entered hours text. The
// first matcher that succeeds wins; anything that matches nothing comes back
// as KindUnrecognized rather than an error, because listing text is noisy
// and a bad entry must degrade gracefully.
func Parse(text string) ParseResult {
	normalized := strings.ToLower(strings.TrimSpace(text))
	if normalized == "" {
		return ParseResult{Kind: KindUnrecognized}
	}

	if strings.Contains(normalized, "24/7") ||
		strings.Contains(normalized, "24 hours") ||
		strings.Contains(normalized, "always open") {
		return ParseResult{Kind: KindTwentyFourSeven}
	}

	if strings.Contains(normalized, "temporarily closed") ||
		strings.Contains(normalized, "permanently closed") {
		return ParseResult{Kind: KindExplicitlyClosed}
	}

	// Meal schedules ("breakfast 8am, lunch 12pm ... daily") carry several
	// times rather than one range; they only get a coarse open-daily result.
	if strings.Contains(normalized, "daily") && mealRe.MatchString(normalized) {
		return ParseResult{Kind: KindMealSchedule}
	}

	if m := timeRangeRe.FindStringSubmatch(normalized); m != nil {
		window, ok := windowFromMatch(m)
		if !ok {
			return ParseResult{Kind: KindUnrecognized}
		}
		if strings.Contains(normalized, "daily") {
			return ParseResult{Kind: KindWindow, Window: window, Days: EveryDay}
		}
		days, day := scanApplicability(normalized)
		return ParseResult{Kind: KindWindow, Window: window, Days: days, Day: day}
	}

	// A bare day-range keyword with no adjoining time range.
	if hasWeekdayRangeToken(normalized) {
		return ParseResult{Kind: KindDayOnly, Days: Weekdays}
	}

	return ParseResult{Kind: KindUnrecognized}
}

func windowFromMatch(m []string) (TimeWindow, bool) {
	open, ok := toMinuteOfDay(m[1], m[2], m[3])
	if !ok {
		return TimeWindow{}, false
	}
	close, ok := toMinuteOfDay(m[4], m[5], m[6])
	if !ok {
		return TimeWindow{}, false
	}
	if close < open {
		// Overnight range; not modeled.
		return TimeWindow{}, false
	}
	return TimeWindow{Open: open, Close: close}, true
}

// toMinuteOfDay converts an hour token, optional minute token and optional
// meridiem marker into a minute of day. With a meridiem the hour must lie in
// [1,12]; without one it is taken as already being on the 24-hour clock.
func toMinuteOfDay(hourTok, minuteTok, meridiem string) (int, bool) {
	hour, err := strconv.Atoi(hourTok)
	if err != nil {
		return 0, false
	}
	minute := 0
	if minuteTok != "" {
		minute, err = strconv.Atoi(minuteTok)
		if err != nil {
			return 0, false
		}
	}
	if minute < 0 || minute > 59 {
		return 0, false
	}

	switch meridiem {
	case "am":
		if hour < 1 || hour > 12 {
			return 0, false
		}
		if hour == 12 {
			hour = 0
		}
	case "pm":
		if hour < 1 || hour > 12 {
			return 0, false
		}
		if hour != 12 {
			hour += 12
		}
	}

	total := hour*60 + minute
	if total < 0 || total > 1439 {
		return 0, false
	}
	return total, true
}

func hasWeekdayRangeToken(s string) bool {
	return strings.Contains(s, "mon-fri") ||
		strings.Contains(s, "monday-friday") ||
		strings.Contains(s, "weekday")
}

// scanApplicability derives the day scope of a time range from keywords
// around it. Range tokens are checked before individual day names so that
// "monday-friday" is not read as a bare Monday.
func scanApplicability(s string) (Applicability, time.Weekday) {
	if hasWeekdayRangeToken(s) {
		return Weekdays, time.Sunday
	}
	for _, wt := range weekdayTokens {
		if strings.Contains(s, wt.token) {
			return SpecificDay, wt.day
		}
	}
	if strings.Contains(s, "sat") {
		return SpecificDay, time.Saturday
	}
	if strings.Contains(s, "sun") {
		return SpecificDay, time.Sunday
	}
	return EveryDay, time.Sunday
}
