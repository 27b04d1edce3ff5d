// Package timeparse canonicalizes textual time-of-day and duration
// expressions. It never fails outward: malformed input degrades to a
// documented default, and the Normalized wrapper records when that happened.
package timeparse

import (
	"strconv"
	"strings"

	"github.com/de-tools/plan-atlas/pkg/models/domain"
)

// Defaults substituted for malformed input.
var (
	DefaultClock    = domain.ClockTime{Hour: 9, Minute: 0}
	DefaultDuration = 1.0 // hours
)

// Normalized carries a parsed value together with a flag telling whether
// the documented default was substituted for malformed input.
type Normalized[T any] struct {
	Value    T
	Fallback bool
}

func fallback[T any](v T) Normalized[T] {
	return Normalized[T]{Value: v, Fallback: true}
}

// Clock parses a 24-hour "HH:MM" time of day. Anything malformed or out of
// range yields 09:00 with Fallback set.
func Clock(s string) Normalized[domain.ClockTime] {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return fallback(DefaultClock)
	}

	hour, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return fallback(DefaultClock)
	}
	minute, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return fallback(DefaultClock)
	}

	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return fallback(DefaultClock)
	}

	return Normalized[domain.ClockTime]{Value: domain.ClockTime{Hour: hour, Minute: minute}}
}

// Duration parses a duration string ending in "h" (hours, fractional
// allowed) or "m" (minutes) into hours. Anything else yields 1.0 hour with
// Fallback set.
func Duration(s string) Normalized[float64] {
	s = strings.TrimSpace(s)

	switch {
	case strings.HasSuffix(s, "h"):
		hours, err := strconv.ParseFloat(strings.TrimSuffix(s, "h"), 64)
		if err != nil {
			return fallback(DefaultDuration)
		}
		return Normalized[float64]{Value: hours}
	case strings.HasSuffix(s, "m"):
		minutes, err := strconv.ParseFloat(strings.TrimSuffix(s, "m"), 64)
		if err != nil {
			return fallback(DefaultDuration)
		}
		return Normalized[float64]{Value: minutes / 60}
	default:
		return fallback(DefaultDuration)
	}
}
