package duration

import (
	"fmt"
	"strings"
)

// Unit is one of the granularities a duration can be broken into
type Unit string

const (
	Week        Unit = "week"
	Day         Unit = "day"
	Hour        Unit = "hour"
	Minute      Unit = "minute"
	Second      Unit = "second"
	Millisecond Unit = "millisecond"
	Microsecond Unit = "microsecond"
)

// Units lists every unit from coarsest to finest. Position in this slice is what
// "coarser" and "finer" mean, not the size in seconds.
var Units = []Unit{
	Week,
	Day,
	Hour,
	Minute,
	Second,
	Millisecond,
	Microsecond,
}

// UnitTimeMap is the size of each unit in seconds
var UnitTimeMap = map[Unit]float64{
	Week:        604800,
	Day:         86400,
	Hour:        3600,
	Minute:      60,
	Second:      1,
	Millisecond: 1e-3,
	Microsecond: 1e-6,
}

// Seconds returns the size of the unit in seconds. Zero for unknown units.
func (u Unit) Seconds() float64 {
	return UnitTimeMap[u]
}

// Valid reports whether u is one of Units
func (u Unit) Valid() bool {
	return u.index() != -1
}

func (u Unit) index() int {
	for idx, unit := range Units {
		if unit == u {
			return idx
		}
	}

	return -1
}

func ParseUnit(serialized string) (Unit, error) {
	unit := Unit(strings.ToLower(strings.TrimSpace(serialized)))
	if !unit.Valid() {
		return "", fmt.Errorf("unknown unit: %s", serialized)
	}

	return unit, nil
}

// ConvertTime scales a quantity expressed in one unit to another unit.
// Units are not validated.
func ConvertTime(time float64, from Unit, to Unit) float64 {
	return time * from.Seconds() / to.Seconds()
}

// UnitsBetween returns the units from maxUnit through minUnit (inclusive) in
// coarse-to-fine order, regardless of argument order. Nil if either unit is invalid.
func UnitsBetween(maxUnit Unit, minUnit Unit) []Unit {
	from, to := maxUnit.index(), minUnit.index()
	if from == -1 || to == -1 {
		return nil
	}
	if from > to {
		from, to = to, from
	}

	// copy so callers can't mutate Units
	return append([]Unit{}, Units[from:to+1]...)
}
