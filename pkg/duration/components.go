package duration

import (
	"math"
)

type TimeComponent struct {
	Unit  Unit
	Value float64
}

// TimeComponents are always in coarse-to-fine order
type TimeComponents []TimeComponent

// Bounds are positions of the first and last non-zero component. Min > Max means
// every component was zero.
type Bounds struct {
	Min int
	Max int
}

func (b Bounds) Empty() bool {
	return b.Min > b.Max
}

// getTimeComponents splits seconds (already converted from the input unit) over the
// units from options.MaxUnit to options.MinUnit. All but the last component are whole,
// the last one keeps the remainder rounded to options.Precision decimals.
func getTimeComponents(seconds float64, options Options) TimeComponents {
	units := UnitsBetween(options.MaxUnit, options.MinUnit)
	components := make(TimeComponents, 0, len(units))

	remaining := seconds

	for idx, unit := range units {
		if idx < len(units)-1 {
			value := math.Floor(remaining / unit.Seconds())
			// explicit conversion so the multiply-subtract is not fused
			remaining -= float64(value * unit.Seconds())

			components = append(components, TimeComponent{Unit: unit, Value: value})
		} else {
			components = append(components, TimeComponent{
				Unit:  unit,
				Value: RoundToDecimals(remaining/unit.Seconds(), options.Precision),
			})
		}
	}

	return components
}

func getBounds(components TimeComponents) Bounds {
	bounds := Bounds{Min: math.MaxInt32, Max: 0}

	for idx, component := range components {
		if component.Value == 0 {
			continue
		}

		if idx < bounds.Min {
			bounds.Min = idx
		}
		if idx > bounds.Max {
			bounds.Max = idx
		}
	}

	return bounds
}

// getFilteredTimeComponents drops leading and trailing zeros. Zeros between two
// non-zero components are kept.
func getFilteredTimeComponents(components TimeComponents, bounds Bounds) TimeComponents {
	if bounds.Empty() {
		return TimeComponents{}
	}

	return components[bounds.Min : bounds.Max+1]
}

func getFormattedTimeComponents(components TimeComponents, i18n I18n) []string {
	formatted := []string{}

	for _, component := range components {
		words := i18n.Words[component.Unit]

		formatted = append(formatted, Pluralise(component.Value, words.Singular, words.Plural))
	}

	return formatted
}
