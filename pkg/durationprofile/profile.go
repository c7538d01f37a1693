// Package durationprofile loads formatting options and wording from YAML, HCL or JSON
// files, so that a CLI invocation or a server can be set up for e.g. a language
package durationprofile

import (
	"fmt"
	"math"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/function61/humantime/pkg/duration"
)

type Profile struct {
	Options duration.PartialOptions
	I18n    duration.I18n
}

// one option as found in a document. Value has whatever type the decoder produced.
type RawOption struct {
	Key   string
	Value interface{}
}

// the i18n part is the same in every format
type i18nDocument struct {
	And         string                   `json:"and" yaml:"and" hcl:"and,optional"`
	Week        *duration.SingularPlural `json:"week" yaml:"week" hcl:"week,block"`
	Day         *duration.SingularPlural `json:"day" yaml:"day" hcl:"day,block"`
	Hour        *duration.SingularPlural `json:"hour" yaml:"hour" hcl:"hour,block"`
	Minute      *duration.SingularPlural `json:"minute" yaml:"minute" hcl:"minute,block"`
	Second      *duration.SingularPlural `json:"second" yaml:"second" hcl:"second,block"`
	Millisecond *duration.SingularPlural `json:"millisecond" yaml:"millisecond" hcl:"millisecond,block"`
	Microsecond *duration.SingularPlural `json:"microsecond" yaml:"microsecond" hcl:"microsecond,block"`
}

// Load picks the format by file extension
func Load(path string) (*Profile, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return LoadYaml(path)
	case ".hcl":
		return LoadHcl(path)
	case ".json":
		return LoadJson(path)
	default:
		return nil, fmt.Errorf("unsupported profile format: %s", path)
	}
}

// OptionsFromRaw maps recognized keys onto PartialOptions. Unrecognized keys are kept
// in UnknownKeys for validation to report. Values of the wrong type are not rejected here
// either: a non-numeric precision becomes NaN and is reported by validation.
func OptionsFromRaw(raw []RawOption) duration.PartialOptions {
	options := duration.PartialOptions{}

	for _, option := range raw {
		switch option.Key {
		case "precision":
			options.Precision = duration.Precision(toNumber(option.Value))
		case "inputUnit":
			options.InputUnit = toUnit(option.Value)
		case "minUnit":
			options.MinUnit = toUnit(option.Value)
		case "maxUnit":
			options.MaxUnit = toUnit(option.Value)
		default:
			options.UnknownKeys = append(options.UnknownKeys, option.Key)
		}
	}

	return options
}

func toNumber(value interface{}) float64 {
	switch v := value.(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case uint64:
		return float64(v)
	case string:
		number, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return math.NaN()
		}
		return number
	default:
		return math.NaN()
	}
}

func toUnit(value interface{}) duration.Unit {
	if str, ok := value.(string); ok {
		return duration.Unit(str)
	}

	// invalid, but keeps the value visible for validation
	return duration.Unit(fmt.Sprintf("%v", value))
}

func (i *i18nDocument) toI18n() duration.I18n {
	result := duration.I18n{
		Words: map[duration.Unit]duration.SingularPlural{},
		And:   i.And,
	}

	add := func(unit duration.Unit, words *duration.SingularPlural) {
		if words != nil {
			result.Words[unit] = *words
		}
	}

	add(duration.Week, i.Week)
	add(duration.Day, i.Day)
	add(duration.Hour, i.Hour)
	add(duration.Minute, i.Minute)
	add(duration.Second, i.Second)
	add(duration.Millisecond, i.Millisecond)
	add(duration.Microsecond, i.Microsecond)

	return result
}

// OverlayOptions applies every given field of overrides on top of base
func OverlayOptions(base duration.PartialOptions, overrides duration.PartialOptions) duration.PartialOptions {
	merged := base

	if overrides.Precision != nil {
		merged.Precision = overrides.Precision
	}
	if overrides.InputUnit != "" {
		merged.InputUnit = overrides.InputUnit
	}
	if overrides.MinUnit != "" {
		merged.MinUnit = overrides.MinUnit
	}
	if overrides.MaxUnit != "" {
		merged.MaxUnit = overrides.MaxUnit
	}

	merged.UnknownKeys = append(append([]string{}, base.UnknownKeys...), overrides.UnknownKeys...)

	return merged
}
