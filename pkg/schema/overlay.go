package schema

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-accountforms/pkg/category"
)

// Overlay holds per-category UI-text overrides loaded from JSON/YAML
// documents. Overlays adjust wording only; they can never add or remove
// fields, so the rule engine's field set stays fixed.
type Overlay struct {
	categories map[category.Category]overlayEntry
}

type overlayEntry struct {
	RowLabel     string
	Placeholders map[string]string
	Labels       map[string]string
}

type overlayFile struct {
	Categories map[string]overlayCategoryFile `json:"categories" yaml:"categories"`
}

type overlayCategoryFile struct {
	RowLabel     string            `json:"rowLabel" yaml:"rowLabel"`
	Placeholders map[string]string `json:"placeholders" yaml:"placeholders"`
	Labels       map[string]string `json:"labels" yaml:"labels"`
}

// LoadOverlayFS walks the provided filesystem and parses every JSON/YAML
// overlay document. A nil filesystem or one without overlay files yields an
// empty overlay. Unknown categories, unknown fields, and duplicate category
// entries are errors: a silently ignored override is worse than a loud one.
func LoadOverlayFS(fsys fs.FS) (*Overlay, error) {
	overlay := &Overlay{categories: make(map[category.Category]overlayEntry)}
	if fsys == nil {
		return overlay, nil
	}

	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isOverlayFile(path) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("schema: read overlay %s: %w", path, err)
		}

		var doc overlayFile
		if strings.HasSuffix(path, ".json") {
			err = json.Unmarshal(data, &doc)
		} else {
			err = yaml.Unmarshal(data, &doc)
		}
		if err != nil {
			return fmt.Errorf("schema: parse overlay %s: %w", path, err)
		}

		for rawLabel, fileEntry := range doc.Categories {
			cat, _ := category.Parse(rawLabel)
			if cat == category.Unknown {
				return fmt.Errorf("schema: overlay %s names unknown category %q", path, rawLabel)
			}
			if _, exists := overlay.categories[cat]; exists {
				return fmt.Errorf("schema: overlay %s duplicates category %q", path, rawLabel)
			}
			normalized, err := validateOverlayEntry(cat, fileEntry, path, rawLabel)
			if err != nil {
				return err
			}
			overlay.categories[cat] = normalized
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return overlay, nil
}

func validateOverlayEntry(cat category.Category, entry overlayCategoryFile, path, rawLabel string) (overlayEntry, error) {
	fields := ForCategory(cat)
	for name := range entry.Placeholders {
		if _, ok := fields.Field(name); !ok {
			return overlayEntry{}, fmt.Errorf("schema: overlay %s (%s): no field %q", path, rawLabel, name)
		}
	}
	for name := range entry.Labels {
		field, ok := fields.Field(name)
		if !ok {
			return overlayEntry{}, fmt.Errorf("schema: overlay %s (%s): no field %q", path, rawLabel, name)
		}
		if field.Kind != KindLabel && field.Kind != KindCheckbox {
			return overlayEntry{}, fmt.Errorf("schema: overlay %s (%s): field %q carries no label text", path, rawLabel, name)
		}
	}
	return overlayEntry{
		RowLabel:     strings.TrimSpace(entry.RowLabel),
		Placeholders: entry.Placeholders,
		Labels:       entry.Labels,
	}, nil
}

// Apply returns a copy of the schema with the overlay's wording applied.
func (o *Overlay) Apply(cat category.Category, fs FieldSchema) FieldSchema {
	if o == nil {
		return fs
	}
	entry, ok := o.categories[cat]
	if !ok {
		return fs
	}

	out := FieldSchema{UIText: fs.UIText}
	if entry.RowLabel != "" {
		out.UIText.RowLabel = entry.RowLabel
	}
	out.Fields = make([]FieldDescriptor, len(fs.Fields))
	copy(out.Fields, fs.Fields)
	for i := range out.Fields {
		if placeholder, ok := entry.Placeholders[out.Fields[i].Name]; ok {
			out.Fields[i].Placeholder = placeholder
		}
		if text, ok := entry.Labels[out.Fields[i].Name]; ok {
			out.Fields[i].Text = text
		}
	}
	return out
}

// Empty reports whether the overlay holds any overrides.
func (o *Overlay) Empty() bool {
	return o == nil || len(o.categories) == 0
}

func isOverlayFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}
