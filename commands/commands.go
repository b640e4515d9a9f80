package commands

import (
	"github.com/urfave/cli"
)

var (
	allCommands []cli.Command

	configFlag = cli.StringFlag{
		Name:  "config, c",
		Usage: "Use a given `CONFIG_FILE` when running this command",
		Value: "",
	}

	humanFlag = cli.BoolFlag{
		Name:  "human-readable, H",
		Usage: "Print a report instead of csv",
	}

	jsonFlag = cli.BoolFlag{
		Name:  "json, j",
		Usage: "Print the results as JSON",
	}

	delimFlag = cli.StringFlag{
		Name:  "delimiter, d",
		Usage: "Use a given `DELIM` to split the output",
		Value: ",",
	}

	forceFlag = cli.BoolFlag{
		Name:  "force, f",
		Usage: "Do not ask for confirmation",
	}

	dirFlag = cli.StringFlag{
		Name:  "directory, d",
		Usage: "Write the report into `DIRECTORY`",
		Value: ".",
	}
)

// bootstrapCommands simply adds a given command to the allCommands array
func bootstrapCommands(commands ...cli.Command) {
	allCommands = append(allCommands, commands...)
}

// Commands provides all of the defined commands to the front end
func Commands() []cli.Command {
	return allCommands
}
