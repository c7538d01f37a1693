package durationprofile

import (
	"math"
	"strings"
	"testing"

	"github.com/function61/gokit/assert"
	"github.com/function61/humantime/pkg/duration"
)

const oneOfEach = 604800 + 86400 + 3600 + 60 + 1 + 1e-3 + 64.128e-6

func TestYamlProfile(t *testing.T) {
	profile, err := Load("testdata/portuguese.yaml")
	assert.Assert(t, err == nil)

	assert.Assert(t, *profile.Options.Precision == 1)
	assert.Assert(t, profile.Options.MinUnit == duration.Microsecond)
	assert.Assert(t, profile.Options.MaxUnit == "")
	assert.EqualString(t, profile.I18n.And, "e")

	assert.EqualString(
		t,
		duration.MustFormatTime(oneOfEach, profile.Options, profile.I18n),
		"1 semana, 1 dia, 1 hora, 1 minuto, 1 segundo, 1 milissegundo e 64.1 microssegundos")
}

func TestHclProfile(t *testing.T) {
	profile, err := Load("testdata/abbreviated.hcl")
	assert.Assert(t, err == nil)

	assert.Assert(t, profile.Options.Precision == nil)
	assert.Assert(t, len(profile.I18n.Words) == 2)

	assert.EqualString(
		t,
		duration.MustFormatTime(oneOfEach, profile.Options, profile.I18n),
		"193 hours, 1 minute, 1 second, 1 ms and 64.128 μs")
}

func TestHclUnknownOptionsInDocumentOrder(t *testing.T) {
	profile, err := Load("testdata/unknownoptions.hcl")
	assert.Assert(t, err == nil)

	assert.Assert(t, *profile.Options.Precision == 2)
	assert.EqualString(t, strings.Join(profile.Options.UnknownKeys, ","), "zebra,apple")
}

func TestJsonProfileReportsEverything(t *testing.T) {
	profile, err := Load("testdata/unknownoptions.json")
	assert.Assert(t, err == nil)

	assert.Assert(t, math.IsNaN(*profile.Options.Precision))
	assert.EqualString(t, profile.I18n.And, "und")

	_, err = duration.FormatTime(1, profile.Options, profile.I18n)
	assert.EqualString(t, err.Error(), `options.precision must be a number
options.minUnit must be 'week', 'day', 'hour', 'minute', 'second', 'millisecond' or 'microsecond'
Unknown option 'zebra'
Unknown option 'useOnlyMillisWhenUnderOneSecond'`)
}

func TestUnknownI18nKeyIsAnError(t *testing.T) {
	_, err := Load("testdata/unknowni18n.yaml")
	assert.Assert(t, err != nil)
}

func TestUnsupportedFormat(t *testing.T) {
	_, err := Load("testdata/profile.toml")
	assert.EqualString(t, err.Error(), "unsupported profile format: testdata/profile.toml")
}

func TestOptionsFromRaw(t *testing.T) {
	options := OptionsFromRaw([]RawOption{
		{Key: "precision", Value: "2"},
		{Key: "inputUnit", Value: "millisecond"},
		{Key: "maxUnit", Value: 42},
		{Key: "colour", Value: "blue"},
	})

	assert.Assert(t, *options.Precision == 2)
	assert.Assert(t, options.InputUnit == duration.Millisecond)
	assert.Assert(t, options.MaxUnit == "42")
	assert.EqualString(t, strings.Join(options.UnknownKeys, ","), "colour")
}

func TestOverlayOptions(t *testing.T) {
	merged := OverlayOptions(duration.PartialOptions{
		Precision:   duration.Precision(1),
		MinUnit:     duration.Second,
		UnknownKeys: []string{"a"},
	}, duration.PartialOptions{
		MinUnit:     duration.Microsecond,
		MaxUnit:     duration.Day,
		UnknownKeys: []string{"b"},
	})

	assert.Assert(t, *merged.Precision == 1)
	assert.Assert(t, merged.MinUnit == duration.Microsecond)
	assert.Assert(t, merged.MaxUnit == duration.Day)
	assert.Assert(t, merged.InputUnit == "")
	assert.EqualString(t, strings.Join(merged.UnknownKeys, ","), "a,b")
}
