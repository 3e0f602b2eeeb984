package util

import (
	"bytes"
	"html/template"
	"sort"
)

// The page is intentionally minimal: the dashboard consumes the JSON feed,
// this rendering is for people who open the status URL directly.
const reportPageTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Translation status</title>
</head>
<body>
<h1>Translation status</h1>
{{- range .Entities}}
<h2>{{.Name}}</h2>
<p><i>{{.StateDescription}}</i></p>
{{- range .Languages}}
<p>{{.Lang}}:
{{- range $i, $s := .Scores}}{{if $i}},{{end}}
{{if $s.Path}}<a href="{{$s.Path}}">{{$s.Module}}</a>{{else}}{{$s.Module}}{{end}} ({{$s.Score}})
{{- end}}</p>
{{- end}}
<p>Templates: {{.Templates}}</p>
{{- end}}
<p><small>Generated {{.Generated}}</small></p>
</body>
</html>
`

type pageData struct {
	Generated string
	Entities  []pageEntity
}

type pageEntity struct {
	Name             string
	StateDescription string
	Languages        []pageLanguage
	Templates        string
}

type pageLanguage struct {
	Lang   string
	Scores []pageScore
}

type pageScore struct {
	Module string
	Score  string
	Path   string
}

var reportPage = template.Must(template.New("report").Parse(reportPageTemplate))

// RenderHTMLReport renders the report as a human-oriented status page: one
// section per entity, languages sorted, each module scored as "NN%" or
// "n/a", a templates line, and a generation footer.
func RenderHTMLReport(report *Report) ([]byte, error) {
	page := pageData{
		Generated: report.Generated.Format(TimeLayout),
	}
	for _, summary := range report.Versions {
		entity := pageEntity{
			Name:             summary.Name,
			StateDescription: summary.StateDescription,
		}
		scores := report.Data[summary.ID]
		for _, lang := range sortedKeys(scores) {
			language := pageLanguage{Lang: lang}
			modules := scores[lang]
			for _, module := range sortedModuleKeys(modules) {
				score := pageScore{
					Module: module,
					Score:  FormatScore(modules[module]),
				}
				if files := report.Files[summary.ID]; files != nil {
					score.Path = files[lang][module]
				}
				language.Scores = append(language.Scores, score)
			}
			entity.Languages = append(entity.Languages, language)
		}
		entity.Templates = templatesLine(report.Templates[summary.ID])
		page.Entities = append(page.Entities, entity)
	}

	var buf bytes.Buffer
	if err := reportPage.Execute(&buf, &page); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func templatesLine(templates map[string]string) string {
	if len(templates) == 0 {
		return "none"
	}
	var line string
	for i, module := range sortedTemplateKeys(templates) {
		if i > 0 {
			line += ", "
		}
		line += templates[module]
	}
	return line
}

func sortedKeys(m map[string]map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func sortedModuleKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func sortedTemplateKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
