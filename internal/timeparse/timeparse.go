// Package timeparse converts user-entered preference strings into clock
// times and durations. Inputs come from free-form preference fields, so
// every parser tolerates casual formatting and reports failures with a
// typed error the caller can swap for a default.
package timeparse

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ParseError reports an input that could not be interpreted.
type ParseError struct {
	Input string
	Want  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse %q as %s", e.Input, e.Want)
}

// ClockTime is a wall-clock time of day without a date or zone.
type ClockTime struct {
	Hour   int
	Minute int
}

func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

// MinuteOfDay returns minutes since midnight, for ordering comparisons.
func (c ClockTime) MinuteOfDay() int {
	return c.Hour*60 + c.Minute
}

var clockRe = regexp.MustCompile(`^(\d{1,2}):(\d{2})(?:\s*([AaPp])\.?[Mm]\.?)?$`)

// ParseClock accepts "07:00", "7:00", "7:00 AM" and "7:00pm" style inputs.
func ParseClock(s string) (ClockTime, error) {
	trimmed := strings.TrimSpace(s)
	m := clockRe.FindStringSubmatch(trimmed)
	if m == nil {
		return ClockTime{}, &ParseError{Input: s, Want: "clock time"}
	}
	hour, _ := strconv.Atoi(m[1])
	minute, _ := strconv.Atoi(m[2])
	if minute > 59 {
		return ClockTime{}, &ParseError{Input: s, Want: "clock time"}
	}
	switch strings.ToLower(m[3]) {
	case "p":
		if hour > 12 {
			return ClockTime{}, &ParseError{Input: s, Want: "clock time"}
		}
		if hour != 12 {
			hour += 12
		}
	case "a":
		if hour > 12 {
			return ClockTime{}, &ParseError{Input: s, Want: "clock time"}
		}
		if hour == 12 {
			hour = 0
		}
	default:
		if hour > 23 {
			return ClockTime{}, &ParseError{Input: s, Want: "clock time"}
		}
	}
	return ClockTime{Hour: hour, Minute: minute}, nil
}

var (
	hourRe   = regexp.MustCompile(`(\d+)\s*h`)
	minuteRe = regexp.MustCompile(`(\d+)\s*m`)
)

// ParseMinutes accepts "1h 30m", "90m", "2h" and bare "90" style inputs and
// returns the total number of minutes.
func ParseMinutes(s string) (int, error) {
	trimmed := strings.ToLower(strings.TrimSpace(s))
	if trimmed == "" {
		return 0, &ParseError{Input: s, Want: "duration"}
	}
	if n, err := strconv.Atoi(trimmed); err == nil {
		if n <= 0 {
			return 0, &ParseError{Input: s, Want: "duration"}
		}
		return n, nil
	}
	total := 0
	matched := false
	if m := hourRe.FindStringSubmatch(trimmed); m != nil {
		h, _ := strconv.Atoi(m[1])
		total += h * 60
		matched = true
	}
	if m := minuteRe.FindStringSubmatch(trimmed); m != nil {
		n, _ := strconv.Atoi(m[1])
		total += n
		matched = true
	}
	if !matched || total <= 0 {
		return 0, &ParseError{Input: s, Want: "duration"}
	}
	return total, nil
}

// MinutesOr parses s and falls back to def when s is empty or malformed.
func MinutesOr(s string, def int) int {
	n, err := ParseMinutes(s)
	if err != nil {
		return def
	}
	return n
}

// ClockOr parses s and falls back to def when s is empty or malformed.
func ClockOr(s string, def ClockTime) ClockTime {
	c, err := ParseClock(s)
	if err != nil {
		return def
	}
	return c
}
