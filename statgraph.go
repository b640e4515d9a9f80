package main

import (
	"fmt"
	"os"

	"github.com/QiguangJiang/StatGraph/commands"
	"github.com/QiguangJiang/StatGraph/config"
	"github.com/urfave/cli"
)

// Entry point of statgraph
func main() {
	app := cli.NewApp()
	app.Name = "statgraph"
	app.Usage = "Turn CAN bus logs into graph feature tables."

	// Change the version string with updates so that a quick help command will
	// let the users know what version of statgraph they're on
	app.Version = config.Version

	// Define commands used with this application
	app.Commands = commands.Commands()

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
