package hours

import (
	"fmt"
	"time"
)

// OpenStatus is the computed open/closed state for a single listing at a
// given instant. It is the only artifact this package exposes to the rest of
// the application; it never references the input text.
type OpenStatus struct {
	IsOpen        bool   `json:"is_open"`
	Status        string `json:"status"`
	TimeUntilOpen string `json:"time_until_open,omitempty"`
	NextOpenTime  string `json:"next_open_time,omitempty"`
}

// Evaluator interprets free-text hours against the current civil time.
type Evaluator struct {
	clock Clock
}

// NewEvaluator constructs an Evaluator with an injected clock.
func NewEvaluator(clock Clock) *Evaluator {
	return &Evaluator{clock: clock}
}

// Evaluate parses the hours text and evaluates it at the current instant.
// Empty, whitespace-only or unrecognized text yields nil. Callers must treat
// nil as "unknown", not as "closed".
func (e *Evaluator) Evaluate(hoursText string) *OpenStatus {
	return EvaluateAt(Parse(hoursText), e.clock.Now())
}

// EvaluateAt evaluates an already-parsed result against an explicit civil
// time. It is a pure function: identical inputs always produce identical
// output, so it is safe to call concurrently and re-call at high frequency.
func EvaluateAt(parsed ParseResult, now CivilTime) *OpenStatus {
	switch parsed.Kind {
	case KindTwentyFourSeven:
		return &OpenStatus{IsOpen: true, Status: "Open 24/7"}
	case KindExplicitlyClosed:
		return &OpenStatus{IsOpen: false, Status: "Closed"}
	case KindMealSchedule:
		return &OpenStatus{IsOpen: true, Status: "Open daily"}
	case KindWindow:
		return evaluateWindow(parsed, now)
	case KindDayOnly:
		return evaluateDayOnly(parsed, now)
	default:
		return nil
	}
}

func evaluateWindow(parsed ParseResult, now CivilTime) *OpenStatus {
	if !appliesOn(parsed, now.Weekday) {
		return opensOnNextApplicableDay(parsed, now, true)
	}

	w := parsed.Window
	switch {
	case now.Minutes >= w.Open && now.Minutes < w.Close:
		remaining := w.Close - now.Minutes
		if remaining <= 30 {
			return &OpenStatus{IsOpen: true, Status: fmt.Sprintf("Closes in %d min", remaining)}
		}
		return &OpenStatus{IsOpen: true, Status: "Open for " + formatDuration(remaining)}

	case now.Minutes < w.Open:
		return &OpenStatus{
			IsOpen:        false,
			Status:        "Closed",
			TimeUntilOpen: "Opens in " + formatDuration(w.Open-now.Minutes),
			NextOpenTime:  formatMinuteOfDay(w.Open),
		}

	default:
		return afterClose(parsed, now)
	}
}

// afterClose handles the "today is over" case: the window applied today but
// the current time is at or past closing.
func afterClose(parsed ParseResult, now CivilTime) *OpenStatus {
	openText := formatMinuteOfDay(parsed.Window.Open)
	switch parsed.Days {
	case EveryDay:
		return &OpenStatus{IsOpen: false, Status: "Closed", NextOpenTime: "Tomorrow at " + openText}
	case Weekdays:
		// Friday evenings also resolve to tomorrow.
		return &OpenStatus{IsOpen: false, Status: "Closed", NextOpenTime: "Tomorrow at " + openText}
	default:
		return &OpenStatus{
			IsOpen:       false,
			Status:       "Closed",
			NextOpenTime: parsed.Day.String() + " at " + openText,
		}
	}
}

func evaluateDayOnly(parsed ParseResult, now CivilTime) *OpenStatus {
	if !appliesOn(parsed, now.Weekday) {
		return opensOnNextApplicableDay(parsed, now, false)
	}
	switch parsed.Days {
	case Weekdays:
		return &OpenStatus{IsOpen: true, Status: "Open weekdays"}
	case SpecificDay:
		return &OpenStatus{IsOpen: true, Status: "Open " + parsed.Day.String() + "s"}
	default:
		return &OpenStatus{IsOpen: true, Status: "Open daily"}
	}
}

// opensOnNextApplicableDay covers windows whose day scope excludes today,
// e.g. a weekday-only window evaluated on the weekend. hasTime controls
// whether NextOpenTime carries a clock time or just the day name.
func opensOnNextApplicableDay(parsed ParseResult, now CivilTime, hasTime bool) *OpenStatus {
	var days int
	var nextDay string
	switch parsed.Days {
	case Weekdays:
		if now.Weekday == time.Sunday {
			days = 1
		} else {
			days = 8 - int(now.Weekday)
		}
		nextDay = time.Monday.String()
	case SpecificDay:
		days = (int(parsed.Day) - int(now.Weekday) + 7) % 7
		if days == 0 {
			days = 7
		}
		nextDay = parsed.Day.String()
	default:
		// EveryDay always applies; this branch is unreachable.
		days = 1
		nextDay = now.Weekday.String()
	}

	status := fmt.Sprintf("Opens in %d days", days)
	if days == 1 {
		status = "Opens tomorrow"
	}

	nextOpen := nextDay
	if hasTime {
		nextOpen = nextDay + " at " + formatMinuteOfDay(parsed.Window.Open)
	}
	return &OpenStatus{IsOpen: false, Status: status, NextOpenTime: nextOpen}
}

func appliesOn(parsed ParseResult, day time.Weekday) bool {
	switch parsed.Days {
	case Weekdays:
		return day >= time.Monday && day <= time.Friday
	case SpecificDay:
		return day == parsed.Day
	default:
		return true
	}
}
