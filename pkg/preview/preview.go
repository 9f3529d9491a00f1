// Package preview renders a plain-text summary of the current row list,
// used by the CLI to echo state between prompts.
package preview

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/flosch/pongo2/v6"

	"github.com/goliatone/go-accountforms/pkg/rowengine"
	"github.com/goliatone/go-accountforms/pkg/schema"
)

//go:embed templates
var templatesFS embed.FS

// Renderer wraps the parsed summary template.
type Renderer struct {
	tmpl *pongo2.Template
}

// New parses the embedded templates.
func New() (*Renderer, error) {
	sub, err := fs.Sub(templatesFS, "templates")
	if err != nil {
		return nil, fmt.Errorf("preview: open templates: %w", err)
	}
	set := pongo2.NewSet("accountforms", pongo2.NewFSLoader(sub))
	tmpl, err := set.FromFile("summary.tpl")
	if err != nil {
		return nil, fmt.Errorf("preview: parse summary template: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

// Render produces the text summary of every row's visible, filled fields.
// Masked fields display with all but their last four characters hidden.
func (r *Renderer) Render(eng *rowengine.Engine) (string, error) {
	fs := eng.Schema()

	rows := make([]pongo2.Context, 0, eng.Len())
	for _, row := range eng.Rows() {
		var lines []pongo2.Context
		for _, field := range fs.Fields {
			if !field.Kind.Input() || !row.Visible(field.Name) {
				continue
			}
			value := row.Value(field.Name)
			if value == "" {
				continue
			}
			if field.Mask {
				value = schema.MaskAccountNumber(value)
			}
			lines = append(lines, pongo2.Context{
				"label": fieldLabel(field),
				"value": value,
			})
		}
		rows = append(rows, pongo2.Context{
			"index": row.Index,
			"lines": lines,
		})
	}

	out, err := r.tmpl.Execute(pongo2.Context{
		"accountType": eng.AccountType(),
		"rowLabel":    fs.UIText.RowLabel,
		"count":       eng.Len(),
		"rows":        rows,
	})
	if err != nil {
		return "", fmt.Errorf("preview: render summary: %w", err)
	}
	return out, nil
}

func fieldLabel(field schema.FieldDescriptor) string {
	if field.Placeholder != "" {
		return field.Placeholder
	}
	if field.Text != "" {
		return field.Text
	}
	return field.Name
}
