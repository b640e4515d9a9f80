package commands

import (
	"github.com/QiguangJiang/StatGraph/reporting"
	"github.com/QiguangJiang/StatGraph/resources"
	"github.com/urfave/cli"
)

func init() {
	command := cli.Command{

		Name:  "html-report",
		Usage: "Create an html report of the extracted feature tables",
		UsageText: "statgraph html-report [command-options] [variant...]\n\n" +
			"If no variant is specified, a report will be created for every variant.",
		Flags: []cli.Flag{
			configFlag,
			dirFlag,
		},
		Action: func(c *cli.Context) error {
			res := resources.InitResources(c.String("config"))
			defer res.Close()

			variants, err := res.Config.S.SelectVariants(c.Args())
			if err != nil {
				return cli.NewExitError(err.Error(), -1)
			}

			err = reporting.PrintHTML(variants, c.String("directory"), res)
			if err != nil {
				return cli.NewExitError(err.Error(), -1)
			}
			return nil
		},
	}
	bootstrapCommands(command)
}
