package output

import (
	"bytes"
	_ "embed"
	"html/template"

	"github.com/taxplan/planner/internal/domain"
)

// HTMLFormatter produces a standalone HTML report.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string { return "html" }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"curr": FormatCurrency,
	"pct":  FormatPercentage,
}).Parse(htmlTemplateSource))

func (h HTMLFormatter) Format(report *domain.TaxReport) ([]byte, error) {
	var buf bytes.Buffer
	data := struct {
		*domain.TaxReport
		Analysis    TaxAnalysis
		Assumptions []string
	}{report, AnalyzeReport(report), assumptionsFor(report)}
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
