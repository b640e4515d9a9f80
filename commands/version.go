package commands

import (
	"fmt"

	"github.com/QiguangJiang/StatGraph/config"
	"github.com/urfave/cli"
)

func init() {
	command := cli.Command{
		Name:   "version",
		Usage:  "Show statgraph version",
		Action: showVersion,
	}

	bootstrapCommands(command)
}

func showVersion(c *cli.Context) error {
	fmt.Println(config.ExactVersion)
	return nil
}
