package commands

import (
	"fmt"
	"time"

	"github.com/QiguangJiang/StatGraph/parser"
	"github.com/QiguangJiang/StatGraph/resources"
	"github.com/QiguangJiang/StatGraph/util"
	"github.com/urfave/cli"
)

func init() {
	extractCommand := cli.Command{
		Name:  "extract",
		Usage: "Extract graph feature tables from the configured bus logs",
		UsageText: "statgraph extract [command-options] [variant...]\n\n" +
			"If no variant is specified, every configured variant is extracted. " +
			"The feature table of an extracted variant is replaced.",
		Flags: []cli.Flag{
			configFlag,
		},
		Action: func(c *cli.Context) error {
			res := resources.InitResources(c.String("config"))
			defer res.Close()

			variants, err := res.Config.S.SelectVariants(c.Args())
			if err != nil {
				return cli.NewExitError(err.Error(), -1)
			}
			if len(variants) == 0 {
				return cli.NewExitError("No variants are configured", -1)
			}

			start := time.Now()
			fmt.Printf("\n\t[+] Extracting features into %s\n", res.Config.S.Extraction.OutputDirectory)

			extractor := parser.NewFSExtractor(res)
			results, err := extractor.Run(variants)
			if err != nil {
				return cli.NewExitError("[!] "+err.Error(), -1)
			}

			windows := 0
			for _, result := range results {
				windows += result.Windows
			}
			fmt.Printf("\t[+] Finished extracting %d windows from %d variant(s) in %s\n",
				windows, len(results), util.FormatDuration(time.Since(start)))
			return nil
		},
	}

	bootstrapCommands(extractCommand)
}
