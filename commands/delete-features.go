package commands

import (
	"fmt"
	"os"

	"github.com/QiguangJiang/StatGraph/config"
	"github.com/QiguangJiang/StatGraph/pkg/features"
	"github.com/QiguangJiang/StatGraph/resources"
	"github.com/urfave/cli"
)

func init() {
	command := cli.Command{
		Name:      "delete-features",
		Usage:     "Delete extracted feature tables",
		ArgsUsage: "[variant...]",
		UsageText: "statgraph delete-features [command-options] [variant...]\n\n" +
			"If no variant is specified, the tables of every configured variant are deleted.",
		Flags: []cli.Flag{
			configFlag,
			forceFlag,
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

			if !c.Bool("force") {
				confirmed, err := confirmAction(os.Stdin, os.Stdout,
					fmt.Sprintf("Are you sure you want to delete the feature tables of %d variant(s)", len(variants)))
				if err != nil {
					return cli.NewExitError(err.Error(), -1)
				}
				if !confirmed {
					return cli.NewExitError("Feature tables were not deleted.", 0)
				}
			}

			return deleteFeatures(res, variants)
		},
	}

	bootstrapCommands(command)
}

func deleteFeatures(res *resources.Resources, variants []config.VariantStaticCfg) error {
	tables := res.Config.T.Features
	for _, variant := range variants {
		path := tables.TablePath(res.Config.S.Extraction.OutputDirectory, variant.Name)
		fmt.Println("\t[-] Deleting feature table:", path)

		err := features.DeleteTable(path)
		if err != nil {
			return cli.NewExitError("Error: could not delete feature table: "+err.Error(), -1)
		}

		if res.DB != nil {
			err = res.DB.DropCollection(tables.TableName(variant.Name))
			if err != nil {
				return cli.NewExitError("Error: could not delete feature collection: "+err.Error(), -1)
			}
		}
	}
	return nil
}
