package commands

import (
	"fmt"
	"os"

	"github.com/QiguangJiang/StatGraph/config"
	"github.com/QiguangJiang/StatGraph/resources"
	"github.com/pbnjay/memory"

	"github.com/urfave/cli"
	yaml "gopkg.in/yaml.v2"
)

func init() {
	command := cli.Command{
		Flags: []cli.Flag{
			configFlag,
		},
		Name:   "test-config",
		Usage:  "Check the configuration file for validity",
		Action: testConfiguration,
	}

	bootstrapCommands(command)
}

// testConfiguration prints out the result of parsing the config file
func testConfiguration(c *cli.Context) error {
	// First, print out the config as it was parsed
	conf, err := config.LoadConfig(c.String("config"))
	if err != nil {
		fmt.Fprintf(os.Stdout, "Failed to config: %s\n", err.Error())
		os.Exit(-1)
	}

	staticConfig, err := yaml.Marshal(conf.S)
	if err != nil {
		return err
	}

	tableConfig, err := yaml.Marshal(conf.T)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "\n%s\n", string(staticConfig))
	fmt.Fprintf(os.Stdout, "\n%s\n", string(tableConfig))

	// Then test initializing external resources like db connection and file handles
	res := resources.InitResources(c.String("config"))
	defer res.Close()

	for _, view := range getVariantViews(res.Config) {
		if view.MissingInputs > 0 {
			fmt.Printf("\t[!] Variant %s is missing %d of %d input(s)\n", view.Name, view.MissingInputs, view.Inputs)
		}
	}

	fmt.Printf("\t[-] System memory: %d MiB\n", memory.TotalMemory()/(1<<20))
	return nil
}
