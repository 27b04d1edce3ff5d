package export

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"text/template"

	"github.com/de-tools/plan-atlas/pkg/models/domain"
)

// Reporter outputs run reports to the console in a formatted text form
type Reporter struct {
	writer io.Writer
}

// NewReporter creates a new console reporter
func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{writer: writer}
}

func (c *Reporter) Handle(report domain.RunReport) error {
	funcMap := template.FuncMap{
		"breakdown": func(byCategory map[domain.EventCategory]int) string {
			parts := make([]string, 0, len(byCategory))
			for cat, n := range byCategory {
				parts = append(parts, fmt.Sprintf("%s: %d", cat, n))
			}
			sort.Strings(parts)
			return strings.Join(parts, ", ")
		},
	}

	tmpl := `
Calendar Plan: {{.Start.Format "2006-01-02"}} to {{.End.Format "2006-01-02"}}
Total Events: {{.TotalEvents}} over {{len .Days}} days
{{range .Days}}
  {{.Date.Format "Mon 2006-01-02"}}  {{printf "%2d" .Events}} events  ({{breakdown .ByCategory}})
{{- end}}
`

	t, err := template.New("report").Funcs(funcMap).Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(c.writer, report)
}
