package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/idilsaglam/packsmart/internal/cli"
	"github.com/idilsaglam/packsmart/internal/logging"
)

func main() {
	// Root flags (apply to every subcommand)
	groupTrips := flag.Bool("group", false, "group trips by upcoming/past")
	flag.Parse()

	logging.Setup()

	// Hand the remaining args to the CLI runner.
	args := flag.Args()
	if len(args) == 0 {
		cli.PrintHelp()
		os.Exit(2)
	}

	code := cli.Run(args, cli.Options{
		Group: *groupTrips,
	})
	if code != 0 {
		fmt.Fprintln(os.Stderr)
	}
	os.Exit(code)
}
