// Package duration formats durations as phrases like "1 week, 2 days and 3 hours"
package duration

import (
	"math"
	"strings"
	"time"
)

// ValidationError lists every problem found with the arguments given to FormatTime
type ValidationError struct {
	Errors []string
}

func (v *ValidationError) Error() string {
	return strings.Join(v.Errors, "\n")
}

// FormatTime renders time (in options.InputUnit, seconds by default) as a phrase.
// Options and i18n are merged over DefaultOptions and DefaultI18n.
func FormatTime(time float64, options PartialOptions, i18n I18n) (string, error) {
	mergedOptions := MergeOptions(DefaultOptions, options)
	mergedI18n := MergeI18n(DefaultI18n, i18n)

	if errs := ValidateArguments(time, mergedOptions); len(errs) > 0 {
		return "", &ValidationError{Errors: errs}
	}

	seconds := ConvertTime(time, mergedOptions.InputUnit, Second)

	sign := ""
	if seconds < 0 {
		sign = "-"
		seconds = -seconds
	}

	components := getTimeComponents(seconds, mergedOptions)
	filtered := getFilteredTimeComponents(components, getBounds(components))

	if len(filtered) == 0 {
		words := mergedI18n.Words[zeroUnit(mergedOptions)]

		return Pluralise(0, words.Singular, words.Plural), nil
	}

	return sign + GetHumanReadableList(getFormattedTimeComponents(filtered, mergedI18n), mergedI18n.And), nil
}

// MustFormatTime is FormatTime for arguments known to be valid
func MustFormatTime(time float64, options PartialOptions, i18n I18n) string {
	formatted, err := FormatTime(time, options, i18n)
	if err != nil {
		panic(err)
	}

	return formatted
}

// FormatDuration is FormatTime for a time.Duration. options.InputUnit is ignored.
func FormatDuration(dur time.Duration, options PartialOptions, i18n I18n) (string, error) {
	options.InputUnit = Second

	return FormatTime(dur.Seconds(), options, i18n)
}

// "0 seconds" whenever seconds are rendered, otherwise zero of the finest rendered unit
func zeroUnit(options Options) Unit {
	for _, unit := range UnitsBetween(options.MaxUnit, options.MinUnit) {
		if unit == Second {
			return Second
		}
	}

	return options.MinUnit
}

// Humanize describes dur relative to now using the single most significant unit,
// like "3 hours ago" (positive) or "in 3 hours" (negative).
func Humanize(dur time.Duration) string {
	ms := float64(dur.Milliseconds())

	inPast := true
	if ms < 0 {
		ms *= -1
		inPast = false
	}

	unit := Millisecond
	for _, candidate := range Units[:len(Units)-2] { // week .. second
		if math.Round(ConvertTime(ms, Millisecond, candidate)) > 0 {
			unit = candidate
			break
		}
	}

	descr := MustFormatTime(ms, PartialOptions{
		Precision: Precision(0),
		InputUnit: Millisecond,
		MinUnit:   unit,
		MaxUnit:   unit,
	}, I18n{})

	if inPast {
		return descr + " ago"
	} else {
		return "in " + descr
	}
}
