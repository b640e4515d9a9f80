package templates

// CSStempl is our css template sheet
var CSStempl = []byte(`body {
  margin: 0;
  font-family: 'Lucida Sans', Arial, sans-serif;
}

ul {
  list-style-type: none;
  margin: 0;
  padding: 0;
  overflow: hidden;
  background-color: #1d2b36;
  font-family: "Arial", Helvetica, sans-serif;
}

li {
  float: left;
  border-right: 1px solid #53646f;
}

li:last-child {
  border-right: none;
}

li a {
  display: block;
  color: white;
  text-align: center;
  padding: 14px 16px;
  text-decoration: none;
}

li a:hover {
  background-color: #3a7ca5;
}

.vertical-menu a {
  background-color: #1d2b36;
  color: white;
  display: block;
  padding: 12px;
  text-decoration: none;
  text-align: center;
}

.vertical-menu a:hover {
  background-color: #3a7ca5;
}

.info {
  margin: 10px 0px;
  padding: 12px;
  color: white;
  background-color: #333;
}

.container {
  overflow-x: auto;
  white-space: nowrap;
}

table {
  border-collapse: collapse;
  width: 100%;
}

th, td {
  text-align: right;
  padding: 8px;
}

tr.attack td {
  color: #a4161a;
}

tr:nth-child(even) {
  background-color: #f2f2f2;
}
`)
