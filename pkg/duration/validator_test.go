package duration

import (
	"math"
	"strings"
	"testing"

	"github.com/function61/gokit/assert"
)

const allowedUnits = "'week', 'day', 'hour', 'minute', 'second', 'millisecond' or 'microsecond'"

func TestValidateArguments(t *testing.T) {
	assert.Assert(t, len(ValidateArguments(42, DefaultOptions)) == 0)

	options := DefaultOptions
	options.Precision = -1

	assert.EqualString(t, strings.Join(ValidateArguments(math.NaN(), options), "\n"), `time must be a number
options.precision must be non-negative`)
}

func TestValidateTime(t *testing.T) {
	assert.Assert(t, len(ValidateTime(42)) == 0)
	assert.Assert(t, len(ValidateTime(-42.5)) == 0)

	for _, notANumber := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		assert.EqualString(t, strings.Join(ValidateTime(notANumber), "\n"), "time must be a number")
	}
}

func TestValidateOptions(t *testing.T) {
	withDefaults := func(mutate func(o *Options)) Options {
		options := DefaultOptions
		mutate(&options)
		return options
	}

	tcs := []struct {
		title    string
		options  Options
		expected string
	}{
		{
			"defaults",
			DefaultOptions,
			"",
		},
		{
			"precision not a number",
			withDefaults(func(o *Options) { o.Precision = math.NaN() }),
			"options.precision must be a number",
		},
		{
			"negative precision",
			withDefaults(func(o *Options) { o.Precision = -4 }),
			"options.precision must be non-negative",
		},
		{
			"invalid inputUnit",
			withDefaults(func(o *Options) { o.InputUnit = "fortnight" }),
			"options.inputUnit must be " + allowedUnits,
		},
		{
			"invalid minUnit",
			withDefaults(func(o *Options) { o.MinUnit = "nanosecond" }),
			"options.minUnit must be " + allowedUnits,
		},
		{
			"invalid maxUnit",
			withDefaults(func(o *Options) { o.MaxUnit = "year" }),
			"options.maxUnit must be " + allowedUnits,
		},
		{
			"invalid minUnit and maxUnit skip the range check",
			withDefaults(func(o *Options) {
				o.MinUnit = "a"
				o.MaxUnit = "b"
			}),
			"options.minUnit must be " + allowedUnits + "\noptions.maxUnit must be " + allowedUnits,
		},
		{
			"inverted range",
			withDefaults(func(o *Options) {
				o.MinUnit = Hour
				o.MaxUnit = Minute
			}),
			"options.maxUnit must be equal or greater than options.minUnit",
		},
		{
			"equal units",
			withDefaults(func(o *Options) {
				o.MinUnit = Second
				o.MaxUnit = Second
			}),
			"",
		},
		{
			"unknown keys keep their order",
			withDefaults(func(o *Options) { o.UnknownKeys = []string{"foo", "precision", "bar"} }),
			"Unknown option 'foo'\nUnknown option 'bar'",
		},
	}

	for _, tc := range tcs {
		t.Run(tc.title, func(t *testing.T) {
			assert.EqualString(t, strings.Join(ValidateOptions(tc.options), "\n"), tc.expected)
		})
	}
}
