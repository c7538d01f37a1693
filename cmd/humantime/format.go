package main

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/function61/gokit/osutil"
	"github.com/function61/humantime/pkg/duration"
	"github.com/function61/humantime/pkg/durationprofile"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// flags shared by every command that formats something
type formatFlags struct {
	profile   string
	precision float64
	inputUnit string
	minUnit   string
	maxUnit   string
	and       string
}

func (f *formatFlags) register(flags *pflag.FlagSet) {
	flags.StringVarP(&f.profile, "profile", "p", "", "Options & wording from a .yaml, .hcl or .json file")
	flags.Float64Var(&f.precision, "precision", duration.DefaultOptions.Precision, "Decimals kept on the finest unit")
	flags.StringVar(&f.inputUnit, "input-unit", string(duration.DefaultOptions.InputUnit), "Unit of the given time")
	flags.StringVar(&f.minUnit, "min-unit", string(duration.DefaultOptions.MinUnit), "Finest unit to render")
	flags.StringVar(&f.maxUnit, "max-unit", string(duration.DefaultOptions.MaxUnit), "Coarsest unit to render")
	flags.StringVar(&f.and, "and", "", "Word joining the last two components")
}

// profile first, then flags the user explicitly gave
func (f *formatFlags) resolve(flags *pflag.FlagSet) (*durationprofile.Profile, error) {
	profile := &durationprofile.Profile{}
	if f.profile != "" {
		var err error
		profile, err = durationprofile.Load(f.profile)
		if err != nil {
			return nil, err
		}
	}

	overrides := duration.PartialOptions{}

	if flags.Changed("precision") {
		overrides.Precision = duration.Precision(f.precision)
	}
	if flags.Changed("input-unit") {
		overrides.InputUnit = unitFromFlag(f.inputUnit)
	}
	if flags.Changed("min-unit") {
		overrides.MinUnit = unitFromFlag(f.minUnit)
	}
	if flags.Changed("max-unit") {
		overrides.MaxUnit = unitFromFlag(f.maxUnit)
	}

	profile.Options = durationprofile.OverlayOptions(profile.Options, overrides)

	if f.and != "" {
		profile.I18n.And = f.and
	}

	return profile, nil
}

// unknown units pass through as-is so validation can list the valid ones
func unitFromFlag(serialized string) duration.Unit {
	unit, err := duration.ParseUnit(serialized)
	if err != nil {
		return duration.Unit(serialized)
	}

	return unit
}

// unparseable input becomes NaN, which validation reports as "time must be a number"
func parseTime(serialized string) float64 {
	time, err := strconv.ParseFloat(strings.TrimSpace(serialized), 64)
	if err != nil {
		return math.NaN()
	}

	return time
}

func formatOne(serialized string, profile *durationprofile.Profile) (string, error) {
	return duration.FormatTime(parseTime(serialized), profile.Options, profile.I18n)
}

func formatEntry() *cobra.Command {
	flags := &formatFlags{}

	cmd := &cobra.Command{
		Use:   "format [time]",
		Short: "Format a duration",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			profile, err := flags.resolve(cmd.Flags())
			osutil.ExitIfError(err)

			formatted, err := formatOne(args[0], profile)
			osutil.ExitIfError(err)

			fmt.Println(formatted)
		},
	}

	flags.register(cmd.Flags())

	return cmd
}
