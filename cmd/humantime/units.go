package main

import (
	"fmt"

	"github.com/function61/gokit/osutil"
	"github.com/function61/humantime/pkg/duration"
	"github.com/function61/humantime/pkg/durationprofile"
	"github.com/scylladb/termtables"
	"github.com/spf13/cobra"
)

func unitsTable(profile *durationprofile.Profile) string {
	i18n := duration.MergeI18n(duration.DefaultI18n, profile.I18n)
	options := duration.MergeOptions(duration.DefaultOptions, profile.Options)

	tbl := termtables.CreateTable()
	tbl.AddHeaders("Unit", "Seconds", "Singular", "Plural", "Rendered")

	for _, unit := range duration.Units {
		words := i18n.Words[unit]

		tbl.AddRow(
			string(unit),
			fmt.Sprintf("%g", unit.Seconds()),
			words.Singular,
			duration.PluraliseWord(2, words.Singular, words.Plural),
			boolToCheckmarkString(isRendered(unit, options)))
	}

	return tbl.Render()
}

func isRendered(unit duration.Unit, options duration.Options) bool {
	for _, rendered := range duration.UnitsBetween(options.MaxUnit, options.MinUnit) {
		if rendered == unit {
			return true
		}
	}

	return false
}

func unitsEntry() *cobra.Command {
	flags := &formatFlags{}

	cmd := &cobra.Command{
		Use:   "units",
		Short: "List units, their sizes & wording",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			profile, err := flags.resolve(cmd.Flags())
			osutil.ExitIfError(err)

			fmt.Println(unitsTable(profile))
		},
	}

	flags.register(cmd.Flags())

	return cmd
}

func boolToCheckmarkString(input bool) string {
	if input {
		return "✓"
	}
	return "✗"
}
