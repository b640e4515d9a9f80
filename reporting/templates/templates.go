package templates

import "html/template"

//ReportingInfo fills the variant template
type ReportingInfo struct {
	Variant string
	Table   string
	Windows int
	Attack  int
	Normal  int
	Writer  template.HTML
}

//HomeInfo fills the home template
type HomeInfo struct {
	Version  string
	Variants []string
}

var variantHeader = `
<head>
<meta content="text/html;charset=utf-8" http-equiv="Content-Type">
<meta content="utf-8" http-equiv="encoding">
<link rel="stylesheet" type="text/css" href="./style.css">
<title>statgraph: {{.Variant}}</title>
</head>

<ul>
  <li><a href="index.html">statgraph</a></li>
  <li><a href="{{.Variant}}.html">Viewing: {{.Variant}}</a></li>
</ul>
`

var homeHeader = `
<head>
<meta content="text/html;charset=utf-8" http-equiv="Content-Type">
<meta content="utf-8" http-equiv="encoding">
<link rel="stylesheet" type="text/css" href="./style.css">
<title>statgraph</title>
</head>
<ul>
  <li><a href="./index.html">statgraph</a></li>
  <li style="float:right"><a>{{.Version}}</a></li>
</ul>
`

// Hometempl is our home template html
var Hometempl = homeHeader + `
<p>
  <div class="info">To view the feature statistics of a variant, click on any of the links below.</div>
  <div class="vertical-menu">
    {{range .Variants}}
      <a href="{{.}}.html">Variant {{.}}</a>
    {{end}}
  </div>
</p>
`

// VariantTempl is our feature statistics template html
var VariantTempl = variantHeader + `
<div class="info">
  {{.Table}} holds {{.Windows}} windows: {{.Attack}} attack (T), {{.Normal}} normal (R).
</div>
<div class="container">
  <table>
    <tr><th>Label</th><th>Windows</th><th>Field</th><th>Min</th><th>Max</th><th>Mean</th></tr>
      {{.Writer}}
  </table>
</div>
`

// VariantEmptyTempl is shown for variants without a feature table
var VariantEmptyTempl = variantHeader + `
<div class="info">
  No feature table was found for variant {{.Variant}}. Run statgraph extract {{.Variant}} to create it.
</div>
`
