package main

import (
	"fmt"

	"github.com/function61/gokit/osutil"
	"github.com/function61/humantime/pkg/durationprofile"
	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/spf13/cobra"
)

// returns colored character diff of the phrase rendered with each profile
func compareProfiles(time string, previous *durationprofile.Profile, next *durationprofile.Profile) (string, error) {
	previousFormatted, err := formatOne(time, previous)
	if err != nil {
		return "", err
	}

	nextFormatted, err := formatOne(time, next)
	if err != nil {
		return "", err
	}

	dmp := diffmatchpatch.New()

	diffs := dmp.DiffMain(previousFormatted, nextFormatted, false)
	diffs = dmp.DiffCleanupMerge(diffs)

	return dmp.DiffPrettyText(diffs), nil
}

func compareEntry() *cobra.Command {
	return &cobra.Command{
		Use:   "compare [time] [profile] [otherProfile]",
		Short: "Show how two profiles render the same duration differently",
		Args:  cobra.ExactArgs(3),
		Run: func(cmd *cobra.Command, args []string) {
			previous, err := durationprofile.Load(args[1])
			osutil.ExitIfError(err)

			next, err := durationprofile.Load(args[2])
			osutil.ExitIfError(err)

			diff, err := compareProfiles(args[0], previous, next)
			osutil.ExitIfError(err)

			fmt.Println(diff)
		},
	}
}
