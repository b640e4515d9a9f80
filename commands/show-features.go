package commands

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/QiguangJiang/StatGraph/pkg/features"
	"github.com/QiguangJiang/StatGraph/resources"
	jsoniter "github.com/json-iterator/go"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

var featureStatsHeader = []string{"Label", "Windows", "Field", "Min", "Max", "Mean"}

func init() {
	command := cli.Command{
		Name:      "show-features",
		Usage:     "Print per label statistics of a feature table",
		ArgsUsage: "<variant>",
		Flags: []cli.Flag{
			humanFlag,
			jsonFlag,
			configFlag,
			delimFlag,
		},
		Action: func(c *cli.Context) error {
			variant := c.Args().Get(0)
			if variant == "" {
				return cli.NewExitError("Specify a variant", -1)
			}

			res := resources.InitResources(c.String("config"))
			defer res.Close()

			if _, ok := res.Config.S.GetVariant(variant); !ok {
				return cli.NewExitError("Variant "+variant+" is not configured", -1)
			}

			path := res.Config.T.Features.TablePath(res.Config.S.Extraction.OutputDirectory, variant)
			rows, err := features.ReadTable(path)
			if err != nil {
				res.Log.Error(err)
				return cli.NewExitError(err.Error(), -1)
			}

			if len(rows) == 0 {
				return cli.NewExitError("No results were found for "+variant, -1)
			}

			stats := features.Describe(rows)

			switch {
			case c.Bool("json"):
				err = showFeaturesJSON(os.Stdout, stats)
			case c.Bool("human-readable"):
				err = showFeaturesHuman(os.Stdout, stats)
			default:
				err = showFeatures(os.Stdout, stats, c.String("delimiter"))
			}
			if err != nil {
				return cli.NewExitError(err.Error(), -1)
			}
			return nil
		},
	}
	bootstrapCommands(command)
}

// featureStatsRows flattens the statistics into one row per label and field
func featureStatsRows(stats []features.LabelStats) [][]string {
	var rows [][]string
	for _, group := range stats {
		label := string(group.Label)
		if label == "" {
			label = "-"
		}
		for _, field := range group.Fields {
			rows = append(rows, []string{
				label,
				i(int64(group.Windows)),
				field.Field,
				i(int64(field.Min)),
				i(int64(field.Max)),
				f(field.Mean),
			})
		}
	}
	return rows
}

func showFeatures(w io.Writer, stats []features.LabelStats, delim string) error {
	// Print the headers and analytic values, separated by a delimiter
	fmt.Fprintln(w, strings.Join(featureStatsHeader, delim))
	for _, row := range featureStatsRows(stats) {
		fmt.Fprintln(w, strings.Join(row, delim))
	}
	return nil
}

func showFeaturesHuman(w io.Writer, stats []features.LabelStats) error {
	table := tablewriter.NewWriter(w)
	table.SetHeader(featureStatsHeader)
	for _, row := range featureStatsRows(stats) {
		table.Append(row)
	}
	table.Render()
	return nil
}

func showFeaturesJSON(w io.Writer, stats []features.LabelStats) error {
	out, err := jsoniter.ConfigCompatibleWithStandardLibrary.MarshalIndent(stats, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(out))
	return err
}
