package document

import (
	"html/template"
	"io"
)

// The HTML proof is a printable one-pager; PDF generation runs against the
// same Summary structure outside this service.
var htmlTmpl = template.Must(template.New("summary").Parse(`<!DOCTYPE html>
<html lang="de">
<head>
<meta charset="utf-8">
<title>Bemusterungsprotokoll {{.ApartmentName}}</title>
<style>
body { font-family: sans-serif; margin: 2em; }
table { border-collapse: collapse; width: 100%; }
th, td { border: 1px solid #999; padding: 6px 10px; text-align: left; vertical-align: top; }
th { background: #eee; }
td.price { text-align: right; white-space: nowrap; }
tfoot td { font-weight: bold; }
</style>
</head>
<body>
<h1>Bemusterungsprotokoll</h1>
<p>
Projekt: {{.ProjectName}}<br>
Adresse: {{.ProjectAddress}}<br>
Wohnung: {{.ApartmentName}}<br>
{{if .CustomerName}}Kunde: {{.CustomerName}}<br>{{end}}
Zugangscode: {{.AccessCode}}<br>
{{if .CompletedAt}}Abgeschlossen am: {{.CompletedAt.Format "02.01.2006 15:04"}}{{end}}
</p>
<table>
<thead>
<tr><th>Kategorie</th><th>Auswahl</th><th>Beschreibung</th><th>Preis</th></tr>
</thead>
<tbody>
{{range .Rows}}
<tr>
<td>{{.CategoryName}}</td>
<td>{{.OptionName}}{{if .Custom}} (Sonderwunsch){{end}}</td>
<td>{{.Description}}{{if .InfoText}}<br><small>{{.InfoText}}</small>{{end}}</td>
<td class="price">{{.PriceLabel}}</td>
</tr>
{{end}}
</tbody>
<tfoot>
<tr><td colspan="3">Gesamt</td><td class="price">{{.TotalLabel}}</td></tr>
</tfoot>
</table>
</body>
</html>
`))

// WriteHTML renders the summary as the printable HTML proof.
func WriteHTML(w io.Writer, sum *Summary) error {
	return htmlTmpl.Execute(w, sum)
}
