package schema

import "strings"

// FieldKind is the closed set of form-control kinds a field descriptor can
// take. Kinds map onto controls the embedding host renders; the engine only
// cares about their value and validation semantics.
type FieldKind string

const (
	KindLabel      FieldKind = "label"
	KindText       FieldKind = "text"
	KindTel        FieldKind = "tel"
	KindSelect     FieldKind = "select"
	KindFancyRadio FieldKind = "fancy-radio"
	KindCheckbox   FieldKind = "checkbox"
)

// Input reports whether the kind carries a user-entered value. Labels are
// display-only and excluded from validation and serialization.
func (k FieldKind) Input() bool {
	return k != KindLabel
}

// FieldDescriptor describes one form control inside a row. Name is unique
// within a row and stable across renders; Layout is a free-form hint the host
// uses for column placement ("full-width", "half-width", optionally
// "hidden" for statically hidden controls).
type FieldDescriptor struct {
	Name          string    `json:"name"`
	Kind          FieldKind `json:"kind"`
	Placeholder   string    `json:"placeholder,omitempty"`
	Text          string    `json:"text,omitempty"`
	Layout        string    `json:"layout,omitempty"`
	Pattern       string    `json:"pattern,omitempty"`
	Title         string    `json:"title,omitempty"`
	Mask          bool      `json:"mask,omitempty"`
	Options       []string  `json:"options,omitempty"`
	OptionClasses []string  `json:"optionClasses,omitempty"`
}

// StaticallyHidden reports whether the descriptor's layout hint hides the
// control outright, as opposed to the conditional visibility the visibility
// package derives per row.
func (f FieldDescriptor) StaticallyHidden() bool {
	for _, token := range strings.Fields(f.Layout) {
		if token == "hidden" {
			return true
		}
	}
	return false
}

// UIText holds the human wording attached to a schema.
type UIText struct {
	RowLabel string `json:"rowLabel"`
}

// FieldSchema is the ordered field list plus UI wording for one category.
// Exactly one schema is active per widget instance.
type FieldSchema struct {
	Fields []FieldDescriptor `json:"fields"`
	UIText UIText            `json:"uiText"`
}

// Field returns the descriptor with the given name.
func (s FieldSchema) Field(name string) (FieldDescriptor, bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return FieldDescriptor{}, false
}

// WithoutFields returns a copy of the schema with the named fields removed.
func (s FieldSchema) WithoutFields(names ...string) FieldSchema {
	drop := make(map[string]struct{}, len(names))
	for _, name := range names {
		drop[name] = struct{}{}
	}
	out := FieldSchema{UIText: s.UIText}
	for _, f := range s.Fields {
		if _, skip := drop[f.Name]; skip {
			continue
		}
		out.Fields = append(out.Fields, f)
	}
	return out
}
