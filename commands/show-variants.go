package commands

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/QiguangJiang/StatGraph/config"
	"github.com/QiguangJiang/StatGraph/pkg/features"
	"github.com/QiguangJiang/StatGraph/resources"
	"github.com/QiguangJiang/StatGraph/util"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

var variantHeader = []string{"Variant", "ID Column", "Labeled", "Inputs", "Missing Inputs", "Table", "Rows"}

// variantView summarizes the configuration and output of one variant
type variantView struct {
	Name          string
	IDColumn      int
	Labeled       bool
	Inputs        int
	MissingInputs int
	Table         string
	Rows          int // -1 when the table has not been written
}

func init() {
	command := cli.Command{
		Name:  "show-variants",
		Usage: "Print the configured variants and the state of their feature tables",
		Flags: []cli.Flag{
			humanFlag,
			configFlag,
			delimFlag,
		},
		Action: func(c *cli.Context) error {
			res := resources.InitResources(c.String("config"))
			defer res.Close()

			if len(res.Config.S.Variants) == 0 {
				return cli.NewExitError("No variants are configured", -1)
			}

			views := getVariantViews(res.Config)

			if c.Bool("human-readable") {
				showVariantsHuman(os.Stdout, views)
				return nil
			}
			showVariants(os.Stdout, views, c.String("delimiter"))
			return nil
		},
	}
	bootstrapCommands(command)
}

func getVariantViews(conf *config.Config) []variantView {
	var views []variantView
	for _, variant := range conf.S.Variants {
		view := variantView{
			Name:     variant.Name,
			IDColumn: variant.IDColumn,
			Labeled:  variant.Labeled,
			Inputs:   len(variant.Files),
			Table:    conf.T.Features.TablePath(conf.S.Extraction.OutputDirectory, variant.Name),
			Rows:     -1,
		}

		for _, file := range variant.Files {
			if exists, err := util.Exists(file); err != nil || !exists {
				view.MissingInputs++
			}
		}

		if rows, err := features.ReadTable(view.Table); err == nil {
			view.Rows = len(rows)
		}
		views = append(views, view)
	}
	return views
}

func (v variantView) row() []string {
	rows := "-"
	if v.Rows >= 0 {
		rows = i(int64(v.Rows))
	}
	return []string{
		v.Name,
		i(int64(v.IDColumn)),
		fmt.Sprint(v.Labeled),
		i(int64(v.Inputs)),
		i(int64(v.MissingInputs)),
		v.Table,
		rows,
	}
}

func showVariants(w io.Writer, views []variantView, delim string) {
	fmt.Fprintln(w, strings.Join(variantHeader, delim))
	for _, view := range views {
		fmt.Fprintln(w, strings.Join(view.row(), delim))
	}
}

func showVariantsHuman(w io.Writer, views []variantView) {
	table := tablewriter.NewWriter(w)
	table.SetHeader(variantHeader)
	for _, view := range views {
		table.Append(view.row())
	}
	table.Render()
}
