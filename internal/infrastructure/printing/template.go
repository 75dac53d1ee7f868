// Package printing renders the organigram to PDF via headless Chrome.
package printing

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"github.com/carbyfah/backend/internal/domain/organization"
)

// organigramTemplate lays the tree out as nested boxes, one column per
// unit with its personnel listed grade first. Styles are inlined so the
// page renders without any external asset.
const organigramTemplate = `<!DOCTYPE html>
<html lang="es">
<head>
<meta charset="utf-8">
<style>
  body { font-family: "Helvetica Neue", Arial, sans-serif; font-size: 10px; color: #1a1a2e; margin: 0; }
  h1 { font-size: 16px; text-align: center; margin: 8px 0 2px; }
  .generated { text-align: center; color: #666; font-size: 9px; margin-bottom: 12px; }
  ul.tree { list-style: none; padding-left: 18px; margin: 0; }
  ul.tree.root { padding-left: 0; }
  .unit { border: 1px solid #2c3e70; border-radius: 3px; margin: 4px 0; padding: 4px 6px; page-break-inside: avoid; }
  .unit-name { font-weight: bold; font-size: 11px; }
  .unit-meta { color: #555; font-size: 9px; }
  table.personnel { width: 100%; border-collapse: collapse; margin-top: 3px; }
  table.personnel td { padding: 1px 4px; border-top: 1px dotted #ccc; }
  td.grade { width: 90px; font-weight: bold; white-space: nowrap; }
  td.service-number { width: 80px; color: #555; white-space: nowrap; }
  .command { color: #8a1c1c; font-weight: bold; }
  .empty { color: #999; font-style: italic; margin-top: 2px; }
</style>
</head>
<body>
<h1>Organigrama Institucional</h1>
<div class="generated">Generado el {{.GeneratedAt}}</div>
{{template "nodes" .Roots}}
{{define "nodes"}}
<ul class="tree{{if rootLevel .}} root{{end}}">
  {{range .}}
  <li>
    <div class="unit">
      <span class="unit-name">{{.Name}}</span>
      <span class="unit-meta">{{.Code}}{{with .StructureType}} &middot; {{.}}{{end}} &middot; Nivel {{.Level}}</span>
      {{if .Personnel}}
      <table class="personnel">
        {{range .Personnel}}
        <tr>
          <td class="grade">{{.GradeAbbreviation}}</td>
          <td>{{.FullName}}{{with .Position}} &mdash; {{.}}{{end}}{{if .IsCommand}} <span class="command">(Comando)</span>{{end}}</td>
          <td class="service-number">{{.ServiceNumber}}</td>
        </tr>
        {{end}}
      </table>
      {{else}}
      <div class="empty">Sin personal asignado</div>
      {{end}}
    </div>
    {{if .Children}}{{template "nodes" .Children}}{{end}}
  </li>
  {{end}}
</ul>
{{end}}
</body>
</html>`

var organigramTmpl = template.Must(template.New("organigram").
	Funcs(template.FuncMap{
		"rootLevel": func(nodes []*organization.OrganigramNode) bool {
			return len(nodes) > 0 && nodes[0].Level <= 1
		},
	}).
	Parse(organigramTemplate))

// RenderOrganigramHTML produces the printable HTML page for the tree
func RenderOrganigramHTML(tree []*organization.OrganigramNode, generatedAt time.Time) (string, error) {
	data := struct {
		GeneratedAt string
		Roots       []*organization.OrganigramNode
	}{
		GeneratedAt: generatedAt.Format("02/01/2006 15:04"),
		Roots:       tree,
	}

	var buf bytes.Buffer
	if err := organigramTmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render organigram template: %w", err)
	}
	return buf.String(), nil
}
