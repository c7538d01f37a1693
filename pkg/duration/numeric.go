package duration

import (
	"math"
	"strconv"
	"strings"
)

// nudge added before rounding so that values like 1.005 (stored as 1.00499..) round up
const roundingEpsilon = 2.220446049250313e-16

// GetHumanReadableList joins items as "a, b and c". glue replaces the "and".
func GetHumanReadableList(list []string, glue string) string {
	switch len(list) {
	case 0:
		return ""
	case 1:
		return list[0]
	default:
		return strings.Join(list[:len(list)-1], ", ") + " " + glue + " " + list[len(list)-1]
	}
}

// Pluralise returns "1 day" or "2 days". An empty plural defaults to singular + "s".
func Pluralise(number float64, singular string, plural string) string {
	return formatNumber(number) + " " + PluraliseWord(number, singular, plural)
}

// PluraliseWord is like Pluralise but without the number
func PluraliseWord(number float64, singular string, plural string) string {
	if number == 1 {
		return singular
	}

	if plural == "" {
		return singular + "s"
	}

	return plural
}

// RoundToDecimals rounds half away from zero to the given amount of decimal places.
// decimals is itself rounded to the nearest whole number and clamped at zero.
func RoundToDecimals(number float64, decimals float64) float64 {
	places := int(math.Round(decimals))
	if places < 0 {
		places = 0
	}

	exponent := math.Pow10(places)

	return math.Round((number+roundingEpsilon)*exponent) / exponent
}

// shortest representation that round-trips, never in exponent form
func formatNumber(number float64) string {
	return strconv.FormatFloat(number, 'f', -1, 64)
}
