package duration

type Options struct {
	// decimal places kept on the finest rendered unit. fractional values are rounded.
	Precision float64
	// unit of the value given to FormatTime
	InputUnit Unit
	// finest unit rendered. anything finer becomes a fraction of it.
	MinUnit Unit
	// coarsest unit rendered. anything coarser accumulates into it.
	MaxUnit Unit
	// option keys a decoder saw but did not recognize, in the order they were seen
	UnknownKeys []string
}

// PartialOptions overrides DefaultOptions field by field. Zero values mean "not given".
type PartialOptions struct {
	Precision   *float64
	InputUnit   Unit
	MinUnit     Unit
	MaxUnit     Unit
	UnknownKeys []string
}

// OptionKeys are the recognized option names, as they appear in profiles and query strings
var OptionKeys = []string{"precision", "inputUnit", "minUnit", "maxUnit"}

var DefaultOptions = Options{
	Precision: 3,
	InputUnit: Second,
	MinUnit:   Millisecond,
	MaxUnit:   Week,
}

type SingularPlural struct {
	Singular string `json:"singular" yaml:"singular" hcl:"singular"`
	Plural   string `json:"plural,omitempty" yaml:"plural,omitempty" hcl:"plural,optional"`
}

// I18n holds the words used for rendering. As an override, units missing from Words
// and an empty And keep their defaults.
type I18n struct {
	Words map[Unit]SingularPlural
	And   string
}

// DefaultI18n is English. Plurals are derived by appending "s".
var DefaultI18n = I18n{
	Words: map[Unit]SingularPlural{
		Week:        {Singular: "week"},
		Day:         {Singular: "day"},
		Hour:        {Singular: "hour"},
		Minute:      {Singular: "minute"},
		Second:      {Singular: "second"},
		Millisecond: {Singular: "millisecond"},
		Microsecond: {Singular: "microsecond"},
	},
	And: "and",
}

func Precision(precision float64) *float64 {
	return &precision
}

// MergeOptions returns defaults with every given field of overrides applied
func MergeOptions(defaults Options, overrides PartialOptions) Options {
	merged := defaults

	if overrides.Precision != nil {
		merged.Precision = *overrides.Precision
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

	merged.UnknownKeys = append(append([]string{}, defaults.UnknownKeys...), overrides.UnknownKeys...)

	return merged
}

// MergeI18n replaces each unit's word pair wholesale if overrides has it. The result
// never shares its Words map with either argument.
func MergeI18n(defaults I18n, overrides I18n) I18n {
	merged := I18n{
		Words: map[Unit]SingularPlural{},
		And:   defaults.And,
	}

	for unit, words := range defaults.Words {
		merged.Words[unit] = words
	}

	for unit, words := range overrides.Words {
		merged.Words[unit] = words
	}

	if overrides.And != "" {
		merged.And = overrides.And
	}

	return merged
}
