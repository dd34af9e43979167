// Package report renders a finished result for export: a printable HTML
// document (the product's "PDF" is the browser's print-to-PDF on this
// document) and an Excel workbook for coach review.
package report

import (
	"bytes"
	"fmt"
	"html/template"

	"edna/domain/profile"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
)

// HTMLRenderer renders the printable report document
type HTMLRenderer struct {
	tmpl *template.Template
}

// NewHTMLRenderer parses the report template
func NewHTMLRenderer() (*HTMLRenderer, error) {
	funcMap := template.FuncMap{
		"md": renderMarkdown,
	}
	tmpl, err := template.New("report").Funcs(funcMap).Parse(reportTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse report template: %w", err)
	}
	return &HTMLRenderer{tmpl: tmpl}, nil
}

// reportData is the template's view of a result
type reportData struct {
	Email  string
	Result profile.Result
}

// Render produces the complete printable document for a result
func (r *HTMLRenderer) Render(res profile.Result, email string) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, reportData{Email: email, Result: res}); err != nil {
		return nil, fmt.Errorf("failed to render report: %w", err)
	}
	return buf.Bytes(), nil
}

// renderMarkdown converts narrative copy (the core statement carries
// emphasis markers) into inline HTML.
func renderMarkdown(src string) template.HTML {
	p := parser.NewWithExtensions(parser.CommonExtensions)
	renderer := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags})
	return template.HTML(markdown.ToHTML([]byte(src), p, renderer))
}

const reportTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>E-DNA Report</title>
<style>
	body { font-family: Georgia, serif; max-width: 720px; margin: 2rem auto; color: #1a1a2e; }
	h1 { font-size: 1.6rem; border-bottom: 2px solid #1a1a2e; padding-bottom: .4rem; }
	h2 { font-size: 1.15rem; margin-top: 1.6rem; }
	.band { display: inline-block; padding: .1rem .6rem; border: 1px solid #1a1a2e; border-radius: 3px; }
	.line { font-style: italic; margin: 1rem 0; }
	ul { margin: .4rem 0; }
	footer { margin-top: 2.5rem; font-size: .8rem; color: #666; }
	@media print { body { margin: 0; } }
</style>
</head>
<body>
<h1>Your E-DNA Profile</h1>
{{with .Result.CoreIdentity}}
<h2>Core Identity: {{.Type}}</h2>
<p class="line">{{.ResultLine}}</p>
{{md .CoreStatement}}
<p>Architect signal {{.ArchitectCount}} · Alchemist signal {{.AlchemistCount}} · Asymmetry {{.Asymmetry}}</p>
<h2>Strengths</h2>
<ul>{{range .Strengths}}<li>{{.}}</li>{{end}}</ul>
<h2>Blind Spots</h2>
<ul>{{range .BlindSpots}}<li>{{.}}</li>{{end}}</ul>
{{end}}
{{with .Result.Subtype}}
<h2>Subtype: {{.Label}}</h2>
<p>{{.Summary}}</p>
{{end}}
{{with .Result.MirrorAwareness}}
<h2>Mirror Awareness</h2>
<p>Overall {{.OverallScore}}/100 &middot; <span class="band">{{.Band}}</span></p>
<ul>
	<li>Recognition: {{printf "%.0f" .Recognition.Score}} ({{.Recognition.Level}})</li>
	<li>Translation: {{printf "%.0f" .Translation.Score}} ({{.Translation.Level}})</li>
	<li>Integration: {{printf "%.0f" .Integration.Score}} ({{.Integration.Level}})</li>
	<li>Governance: {{printf "%.0f" .Governance.Score}} ({{.Governance.Level}})</li>
	<li>Conflict Recovery: {{printf "%.0f" .ConflictRecovery.Score}} ({{.ConflictRecovery.Level}})</li>
</ul>
<h2>Development Recommendations</h2>
<ul>{{range .Recommendations}}<li>{{.}}</li>{{end}}</ul>
{{end}}
{{with .Result.Neurodiversity}}
<h2>Capability Profile</h2>
<p>{{.PrimaryPattern}} · {{.Clarity}}</p>
<p>{{.Headline}}</p>
<h2>Next 7 Days</h2>
<ul>{{range .NextSevenDays}}<li>{{.}}</li>{{end}}</ul>
{{end}}
{{with .Result.Drive}}
<h2>Mindset / Risk / Energy</h2>
<ul>
	<li>Mindset: {{.MindsetOrientation.Type}} ({{.MindsetOrientation.Score}})</li>
	<li>Risk: {{.RiskStyle.Type}} ({{.RiskStyle.Score}})</li>
	<li>Energy: {{.EnergyModality.Type}} ({{.EnergyModality.Score}})</li>
</ul>
<ul>{{range .EDNAAdaptations}}<li>{{.}}</li>{{end}}</ul>
{{end}}
{{with .Result.MetaBeliefs}}
<h2>Meta Beliefs</h2>
{{range .Beliefs}}<h3>{{.Label}}</h3><p>{{.Narrative}}</p>{{end}}
{{end}}
<footer>Prepared for {{.Email}}. Print this page to save as PDF.</footer>
</body>
</html>`
