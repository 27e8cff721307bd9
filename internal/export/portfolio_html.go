package export

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/mateenqamar1122/Hyperlans-sub002/internal/domain"
)

var portfolioTemplate = template.Must(template.New("portfolio").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: Helvetica, Arial, sans-serif; margin: 48px; color: #1a1a1a; }
h1 { margin-bottom: 4px; }
.headline { color: #555; margin-bottom: 32px; }
section { margin-bottom: 28px; page-break-inside: avoid; }
section h2 { border-bottom: 1px solid #ddd; padding-bottom: 6px; }
</style>
</head>
<body>
<h1>{{.Title}}</h1>
{{if .Headline}}<p class="headline">{{.Headline}}</p>{{end}}
{{range .Sections}}
<section>
<h2>{{.Title}}</h2>
<p>{{.Body}}</p>
</section>
{{end}}
</body>
</html>
`))

// PortfolioHTML renders the portfolio into the standalone HTML document that
// the PDF conversion service consumes.
func PortfolioHTML(portfolio domain.Portfolio) (string, error) {
	var b strings.Builder
	if err := portfolioTemplate.Execute(&b, portfolio); err != nil {
		return "", fmt.Errorf("failed to execute portfolio template: %w", err)
	}
	return b.String(), nil
}
