package schema

import (
	"github.com/goliatone/go-accountforms/pkg/category"
)

// Resolution reports how a category label resolved. The widget renders
// regardless of outcome; the branch is surfaced so callers can log fallbacks
// instead of failing.
type Resolution struct {
	Label    string
	Category category.Category
	Match    category.MatchKind
	Default  bool
}

// Resolver resolves free-text category labels into field schemas, applying
// any configured UI-text overlays on the way out.
type Resolver struct {
	overlay *Overlay
}

// ResolverOption customises a Resolver.
type ResolverOption func(*Resolver)

// WithOverlay attaches a UI-text overlay applied to every resolved schema.
func WithOverlay(overlay *Overlay) ResolverOption {
	return func(r *Resolver) {
		r.overlay = overlay
	}
}

// NewResolver constructs a Resolver.
func NewResolver(options ...ResolverOption) *Resolver {
	r := &Resolver{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	return r
}

// Resolve maps a category label to its field schema. Absence of any match
// still yields the generic account schema: the widget must always render
// something, so no error path reaches the caller.
func (r *Resolver) Resolve(label string) (FieldSchema, Resolution) {
	cat, match := category.Parse(label)
	res := Resolution{
		Label:    label,
		Category: cat,
		Match:    match,
		Default:  match == category.MatchNone,
	}
	fs := ForCategory(cat)
	if r != nil && r.overlay != nil {
		fs = r.overlay.Apply(cat, fs)
	}
	return fs, res
}

// Options resolves the label and returns the registration options for the
// matched category alongside its canonical label. No match yields an empty
// option list, never an error.
func (r *Resolver) Options(label string) (string, []category.RegistrationOption) {
	cat, _ := category.Parse(label)
	if cat == category.Unknown {
		return "", nil
	}
	return cat.Label(), category.Options(cat)
}
