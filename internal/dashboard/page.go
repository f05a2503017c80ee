package dashboard

import (
	"html/template"
	"io"

	"github.com/Alias1177/RateShift/models"
)

var pageTemplate = template.Must(template.New("dashboard").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: sans-serif; margin: 2rem auto; max-width: 1240px; color: #262730; }
.success { background: #e8f9ee; color: #177233; border-radius: 6px; padding: 1rem; }
.warning { background: #fffce7; color: #926c05; border-radius: 6px; padding: 1rem; margin-top: 1rem; }
img { max-width: 100%; margin-top: 1.5rem; }
footer { font-style: italic; color: #6b6f7a; }
</style>
</head>
<body>
<h1>{{.Title}}</h1>
<h3>{{.Current}}</h3>
<h3>{{.Forecast}}</h3>
<h3>Investment Strategy Recommendation</h3>
<div class="success" data-recommendation="{{.Code}}">{{.Advice}}</div>
{{if .Warning}}<div class="warning">{{.Warning}}</div>{{end}}
{{if .HasChart}}<img src="/chart.png" alt="{{.ChartAlt}}">{{end}}
<hr>
<footer>{{.Footer}}</footer>
</body>
</html>
`))

type pageData struct {
	Title    string
	Current  string
	Forecast string
	Code     string
	Advice   string
	Warning  string
	HasChart bool
	ChartAlt string
	Footer   string
}

// RenderHTML writes the dashboard page; the chart is referenced as /chart.png
func RenderHTML(w io.Writer, d models.Dashboard) error {
	return pageTemplate.Execute(w, pageData{
		Title:    PageTitle,
		Current:  CurrentLine(d),
		Forecast: ForecastLine(d),
		Code:     string(d.Recommendation),
		Advice:   d.Recommendation.Text(),
		Warning:  FreshnessNote(d),
		HasChart: len(d.History) > 0,
		ChartAlt: "Interest Rate vs Fund Performance",
		Footer:   FooterNote,
	})
}
