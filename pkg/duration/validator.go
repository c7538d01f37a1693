package duration

import (
	"math"
)

// ValidateArguments returns every problem with time and options. Empty means valid.
func ValidateArguments(time float64, options Options) []string {
	return append(ValidateTime(time), ValidateOptions(options)...)
}

func ValidateTime(time float64) []string {
	if math.IsNaN(time) || math.IsInf(time, 0) {
		return []string{"time must be a number"}
	}

	return []string{}
}

func ValidateOptions(options Options) []string {
	errs := []string{}

	errs = append(errs, precisionErrors(options)...)
	errs = append(errs, unitErrors(options)...)
	errs = append(errs, unknownOptionErrors(options)...)

	return errs
}

func precisionErrors(options Options) []string {
	// a NaN can't be compared meaningfully, so the sign check only runs for numbers
	if math.IsNaN(options.Precision) {
		return []string{"options.precision must be a number"}
	}

	if options.Precision < 0 {
		return []string{"options.precision must be non-negative"}
	}

	return nil
}

func unitErrors(options Options) []string {
	quoted := []string{}
	for _, unit := range Units {
		quoted = append(quoted, "'"+string(unit)+"'")
	}
	allowed := GetHumanReadableList(quoted, "or")

	errs := []string{}

	if !options.InputUnit.Valid() {
		errs = append(errs, "options.inputUnit must be "+allowed)
	}
	if !options.MinUnit.Valid() {
		errs = append(errs, "options.minUnit must be "+allowed)
	}
	if !options.MaxUnit.Valid() {
		errs = append(errs, "options.maxUnit must be "+allowed)
	}

	if options.MinUnit.Valid() && options.MaxUnit.Valid() && options.MinUnit.index() < options.MaxUnit.index() {
		errs = append(errs, "options.maxUnit must be equal or greater than options.minUnit")
	}

	return errs
}

func unknownOptionErrors(options Options) []string {
	errs := []string{}

	for _, key := range options.UnknownKeys {
		if !isOptionKey(key) {
			errs = append(errs, "Unknown option '"+key+"'")
		}
	}

	return errs
}

func isOptionKey(key string) bool {
	for _, known := range OptionKeys {
		if known == key {
			return true
		}
	}

	return false
}
