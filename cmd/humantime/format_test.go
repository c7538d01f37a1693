package main

import (
	"strings"
	"testing"

	"github.com/function61/gokit/assert"
	"github.com/function61/humantime/pkg/durationprofile"
	"github.com/spf13/pflag"
)

func resolveFromArgs(t *testing.T, args ...string) *durationprofile.Profile {
	t.Helper()

	flags := &formatFlags{}
	flagSet := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.register(flagSet)

	assert.Assert(t, flagSet.Parse(args) == nil)

	profile, err := flags.resolve(flagSet)
	assert.Assert(t, err == nil)

	return profile
}

func TestFormatWithDefaults(t *testing.T) {
	formatted, err := formatOne("694861", resolveFromArgs(t))
	assert.Assert(t, err == nil)
	assert.EqualString(t, formatted, "1 week, 1 day, 1 hour, 1 minute and 1 second")
}

func TestFlagsOverrideOnlyWhenGiven(t *testing.T) {
	profile := resolveFromArgs(t, "--min-unit=Hour", "--max-unit", "hour", "--and", "ja")

	assert.Assert(t, profile.Options.Precision == nil)

	formatted, err := formatOne("90061.001", profile)
	assert.Assert(t, err == nil)
	assert.EqualString(t, formatted, "25.017 hours")
}

func TestFlagsOverProfile(t *testing.T) {
	profile := resolveFromArgs(t, "--profile", "../../pkg/durationprofile/testdata/portuguese.yaml", "--precision", "0")

	assert.Assert(t, *profile.Options.Precision == 0)
	assert.Assert(t, profile.Options.MinUnit == "microsecond")

	formatted, err := formatOne("1.5", profile)
	assert.Assert(t, err == nil)
	assert.EqualString(t, formatted, "1 segundo e 500 milissegundos")
}

func TestFormatReportsAllErrors(t *testing.T) {
	_, err := formatOne("soon", resolveFromArgs(t, "--min-unit", "fortnight", "--precision=-1"))

	assert.EqualString(t, err.Error(), `time must be a number
options.precision must be non-negative
options.minUnit must be 'week', 'day', 'hour', 'minute', 'second', 'millisecond' or 'microsecond'`)
}

func TestFormatTable(t *testing.T) {
	rendered, err := formatTable([]string{"60", "3610"}, resolveFromArgs(t))
	assert.Assert(t, err == nil)
	assert.Assert(t, strings.Contains(rendered, "1 minute"))
	assert.Assert(t, strings.Contains(rendered, "1 hour, 0 minutes and 10 seconds"))

	_, err = formatTable([]string{"60", "x"}, resolveFromArgs(t))
	assert.EqualString(t, err.Error(), "x: time must be a number")
}

func TestUnitsTable(t *testing.T) {
	rendered := unitsTable(resolveFromArgs(t, "--profile", "../../pkg/durationprofile/testdata/abbreviated.hcl"))

	assert.Assert(t, strings.Contains(rendered, "microsecond"))
	assert.Assert(t, strings.Contains(rendered, "μs"))
	assert.Assert(t, strings.Contains(rendered, "604800"))
}

func TestCompareProfiles(t *testing.T) {
	english := resolveFromArgs(t)
	portuguese, err := durationprofile.Load("../../pkg/durationprofile/testdata/portuguese.yaml")
	assert.Assert(t, err == nil)

	diff, err := compareProfiles("60", english, portuguese)
	assert.Assert(t, err == nil)
	assert.Assert(t, strings.Contains(diff, "minut"))

	_, err = compareProfiles("NaN", english, portuguese)
	assert.EqualString(t, err.Error(), "time must be a number")
}
