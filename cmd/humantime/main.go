package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	app := &cobra.Command{
		Use:     os.Args[0],
		Short:   "Turns durations into phrases like \"1 week, 2 days and 3 hours\"",
		Version: version,
	}

	commands := []*cobra.Command{
		formatEntry(),
		tableEntry(),
		unitsEntry(),
		compareEntry(),
		serveEntry(),
	}

	for _, cmd := range commands {
		app.AddCommand(cmd)
	}

	if err := app.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
