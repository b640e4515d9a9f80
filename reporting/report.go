package reporting

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"io/ioutil"
	"os"
	"path/filepath"
	"strconv"

	"github.com/QiguangJiang/StatGraph/config"
	"github.com/QiguangJiang/StatGraph/pkg/features"
	"github.com/QiguangJiang/StatGraph/pkg/graph"
	htmlTempl "github.com/QiguangJiang/StatGraph/reporting/templates"
	"github.com/QiguangJiang/StatGraph/resources"
	"github.com/skratchdot/open-golang/open"
	log "github.com/sirupsen/logrus"
)

// openReport shows the finished report in the browser
var openReport = open.Run

// PrintHTML writes the per label feature statistics of the given variants
// into a new directory named statgraph-html-report (or the variant's name if
// only one was selected) within dir, then opens it in the browser. Variants
// without a feature table get a placeholder page.
func PrintHTML(variants []config.VariantStaticCfg, dir string, res *resources.Resources) error {
	if len(variants) == 0 {
		return errors.New("no variants to report on")
	}

	//create outFolder as our string builder
	var outFolder []byte
	if len(variants) == 1 {
		outFolder = []byte(filepath.Join(dir, "statgraph-"+variants[0].Name))
	} else {
		outFolder = []byte(filepath.Join(dir, "statgraph-html-report"))
	}
	outFolderBaseLen := len(outFolder)
	counter := 1

	//while the file exists, append the next counter
	for _, err := os.Stat(string(outFolder)); err == nil; _, err = os.Stat(string(outFolder)) {
		outFolder = outFolder[:outFolderBaseLen]
		outFolder = append(outFolder, []byte(strconv.Itoa(counter))...)
		counter++
	}
	outFolderString := string(outFolder)

	err := os.MkdirAll(outFolderString, 0755)
	if err != nil {
		return err
	}

	var names []string
	for _, variant := range variants {
		names = append(names, variant.Name)
	}

	// Write the homepage
	err = writeHomePage(outFolderString, names, res.Config.S.ExactVersion)
	if err != nil {
		return err
	}

	for _, variant := range variants {
		err = writeVariant(outFolderString, variant, res)
		if err != nil {
			return err
		}
	}

	fmt.Println("[-] Wrote outputs, check " + outFolderString + " for files")
	err = openReport(filepath.Join(outFolderString, "index.html"))
	if err != nil {
		res.Log.WithFields(log.Fields{
			"error": err.Error(),
		}).Warn("Could not open the html report")
	}
	return nil
}

func writeHomePage(outFolder string, variants []string, version string) error {
	f, err := os.Create(filepath.Join(outFolder, "index.html"))
	if err != nil {
		return err
	}
	defer f.Close()

	err = ioutil.WriteFile(filepath.Join(outFolder, "style.css"), htmlTempl.CSStempl, 0644)
	if err != nil {
		return err
	}

	out, err := template.New("home.html").Parse(htmlTempl.Hometempl)
	if err != nil {
		return err
	}
	return out.Execute(f, htmlTempl.HomeInfo{Version: version, Variants: variants})
}

func writeVariant(outFolder string, variant config.VariantStaticCfg, res *resources.Resources) error {
	tablePath := res.Config.T.Features.TablePath(res.Config.S.Extraction.OutputDirectory, variant.Name)
	info := htmlTempl.ReportingInfo{Variant: variant.Name, Table: tablePath}

	templ := htmlTempl.VariantTempl
	rows, err := features.ReadTable(tablePath)
	if err != nil || len(rows) == 0 {
		fmt.Println("[!] No feature table was found for variant " + variant.Name)
		templ = htmlTempl.VariantEmptyTempl
	} else {
		info.Windows = len(rows)
		info.Attack, info.Normal = features.CountLabels(rows)
		w, err := getStatsWriter(features.Describe(rows))
		if err != nil {
			return err
		}
		info.Writer = template.HTML(w)
	}

	fmt.Print("[-] Writing: " + variant.Name + ".html\n")
	f, err := os.Create(filepath.Join(outFolder, variant.Name+".html"))
	if err != nil {
		return err
	}
	defer f.Close()

	out, err := template.New(variant.Name + ".html").Parse(templ)
	if err != nil {
		return err
	}
	return out.Execute(f, info)
}

// getStatsWriter renders the table rows of the statistics
func getStatsWriter(stats []features.LabelStats) (string, error) {
	tmpl := "<tr{{if .Attack}} class=\"attack\"{{end}}><td>{{.Label}}</td><td>{{.Windows}}</td>" +
		"<td>{{.Field}}</td><td>{{.Min}}</td><td>{{.Max}}</td><td>{{printf \"%.2f\" .Mean}}</td></tr>\n"

	out, err := template.New("stats").Parse(tmpl)
	if err != nil {
		return "", err
	}

	type statsRow struct {
		Label   string
		Attack  bool
		Windows int
		features.FieldStats
	}

	w := new(bytes.Buffer)
	for _, group := range stats {
		label := string(group.Label)
		if label == "" {
			label = "-"
		}
		for _, field := range group.Fields {
			err := out.Execute(w, statsRow{
				Label:      label,
				Attack:     group.Label == graph.Attack,
				Windows:    group.Windows,
				FieldStats: field,
			})
			if err != nil {
				return "", err
			}
		}
	}
	return w.String(), nil
}
