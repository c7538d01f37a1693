package main

import (
	"fmt"

	"github.com/apcera/termtables"
	"github.com/function61/gokit/osutil"
	"github.com/function61/humantime/pkg/durationprofile"
	"github.com/spf13/cobra"
)

func formatTable(times []string, profile *durationprofile.Profile) (string, error) {
	tbl := termtables.CreateTable()
	tbl.AddHeaders("Time", "Formatted")

	for _, time := range times {
		formatted, err := formatOne(time, profile)
		if err != nil {
			return "", fmt.Errorf("%s: %v", time, err)
		}

		tbl.AddRow(time, formatted)
	}

	return tbl.Render(), nil
}

func tableEntry() *cobra.Command {
	flags := &formatFlags{}

	cmd := &cobra.Command{
		Use:   "table [time] [time...]",
		Short: "Format many durations as a table",
		Args:  cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			profile, err := flags.resolve(cmd.Flags())
			osutil.ExitIfError(err)

			rendered, err := formatTable(args, profile)
			osutil.ExitIfError(err)

			fmt.Println(rendered)
		},
	}

	flags.register(cmd.Flags())

	return cmd
}
