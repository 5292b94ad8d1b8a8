package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
)

const (
	tagline = "Charge-and-release bow in the terminal"
	version = "0.1.0"
)

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("sling"),
		kong.Description(tagline),
		kong.Vars{"version": version},
		kong.UsageOnError(),
	)

	err := ctx.Run(&cli)
	cli.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
