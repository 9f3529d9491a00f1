package rowengine

import (
	"strings"

	"github.com/goliatone/go-accountforms/pkg/schema"
)

// Row is one user-editable instance of the active schema. Index is the row's
// 1-based position in the engine's list and is recomputed whenever rows are
// added or removed. Values are keyed by base field name; radio-group name
// suffixes from the rendering layer are stripped before storage.
type Row struct {
	Index   int
	Values  map[string]string
	Hidden  map[string]bool
	Flagged map[string]bool
}

func newRow(fs schema.FieldSchema, index int) *Row {
	row := &Row{
		Index:   index,
		Values:  make(map[string]string, len(fs.Fields)),
		Hidden:  make(map[string]bool, len(fs.Fields)),
		Flagged: make(map[string]bool),
	}
	for _, field := range fs.Fields {
		if field.StaticallyHidden() {
			row.Hidden[field.Name] = true
		}
		// Fancy radios start with their "No" option selected.
		if field.Kind == schema.KindFancyRadio {
			row.Values[field.Name] = "No"
		}
	}
	return row
}

// Value returns the stored value for a base field name.
func (r *Row) Value(name string) string {
	if r == nil {
		return ""
	}
	return r.Values[name]
}

// Visible reports whether the named field is currently shown.
func (r *Row) Visible(name string) bool {
	return r != nil && !r.Hidden[name]
}

// BaseFieldName strips the "_<ordinal>" suffix the rendering layer appends to
// radio group names, returning the stable schema name.
func BaseFieldName(name string) string {
	idx := strings.LastIndexByte(name, '_')
	if idx < 0 || idx == len(name)-1 {
		return name
	}
	for _, r := range name[idx+1:] {
		if r < '0' || r > '9' {
			return name
		}
	}
	return name[:idx]
}
