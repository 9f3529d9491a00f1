// Package rowengine owns the ordered row list of one widget instance: the
// append/validate/remove lifecycle, the single-row validation policy, and the
// visibility bookkeeping every field change triggers. All mutations happen on
// one logical thread in response to discrete events; the engine needs no
// locking.
package rowengine

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-accountforms/pkg/category"
	"github.com/goliatone/go-accountforms/pkg/schema"
	"github.com/goliatone/go-accountforms/pkg/visibility"
)

// ErrCannotRemoveLastRow signals a refused removal: the row list is never
// empty after initialization. User-visible, non-fatal.
var ErrCannotRemoveLastRow = errors.New("rowengine: cannot remove the only remaining row")

// ConfirmFunc asks whether a destructive removal should proceed. The row
// label ("Account", "Policy", ...) is provided for prompt wording. A nil
// func on the engine means removals are always confirmed.
type ConfirmFunc func(rowLabel string) bool

// ValidationError reports why the last row blocked an append. Missing lists
// the empty required visible fields in schema order.
type ValidationError struct {
	RowLabel              string
	Missing               []string
	BeneficiaryUnanswered bool
}

func (e *ValidationError) Error() string {
	label := e.RowLabel
	if label == "" {
		label = "row"
	}
	return fmt.Sprintf("rowengine: fill all fields before adding another %s (missing %s)",
		label, strings.Join(e.Missing, ", "))
}

// Result is the outcome of validating the last row. Values collects the
// non-empty visible field values, mirroring what the host receives after
// every mutation.
type Result struct {
	Valid                 bool
	Values                map[string]string
	Missing               []string
	BeneficiaryUnanswered bool
}

// MarshalValues renders the collected field map as JSON, the shape older
// hosts expect on every data message.
func (r Result) MarshalValues() (string, error) {
	if r.Values == nil {
		return "{}", nil
	}
	data, err := json.Marshal(r.Values)
	if err != nil {
		return "", fmt.Errorf("rowengine: marshal row values: %w", err)
	}
	return string(data), nil
}

// Option customises an Engine.
type Option func(*Engine)

// WithAllFieldsRequired toggles the global required flag. It defaults to
// true; it is modelled as configuration rather than a constant because the
// host exposes it as a widget setting.
func WithAllFieldsRequired(required bool) Option {
	return func(e *Engine) {
		e.allRequired = required
	}
}

// WithConfirmFunc injects the removal confirmation dialog.
func WithConfirmFunc(fn ConfirmFunc) Option {
	return func(e *Engine) {
		e.confirm = fn
	}
}

// WithAccountType overrides the accountType echoed into every submission
// entry. It defaults to the category's canonical label; hosts configured
// with a variant spelling pass their exact setting through here.
func WithAccountType(label string) Option {
	return func(e *Engine) {
		if trimmed := strings.TrimSpace(label); trimmed != "" {
			e.accountType = trimmed
		}
	}
}

// Engine holds the ordered row list for one widget instance plus the active
// schema and category rules. Exactly one Engine exists per instance.
type Engine struct {
	cat         category.Category
	fs          schema.FieldSchema
	opts        []category.RegistrationOption
	accountType string
	allRequired bool
	confirm     ConfirmFunc
	rows        []*Row
}

// New constructs an Engine for the resolved category and schema. The row
// list starts empty; callers append the initial row (or restore saved rows)
// before handing the engine to users.
func New(cat category.Category, fs schema.FieldSchema, options ...Option) *Engine {
	e := &Engine{
		cat:         cat,
		fs:          fs,
		opts:        category.Options(cat),
		accountType: cat.Label(),
		allRequired: true,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(e)
	}
	return e
}

// Category returns the engine's category.
func (e *Engine) Category() category.Category { return e.cat }

// Schema returns the active field schema.
func (e *Engine) Schema() schema.FieldSchema { return e.fs }

// Options returns the category's registration options.
func (e *Engine) Options() []category.RegistrationOption { return e.opts }

// AccountType returns the label echoed into submissions.
func (e *Engine) AccountType() string { return e.accountType }

// Rows returns the ordered row list. Callers must not reorder it.
func (e *Engine) Rows() []*Row { return e.rows }

// Len returns the current row count.
func (e *Engine) Len() int { return len(e.rows) }

// LastRow returns the most recently appended row, or nil when empty.
func (e *Engine) LastRow() *Row {
	if len(e.rows) == 0 {
		return nil
	}
	return e.rows[len(e.rows)-1]
}

// Append validates the current last row and, when it passes (or the list is
// still empty), appends a fresh row and returns it. On validation failure it
// returns a *ValidationError, flags the offending fields, and performs no
// other mutation.
func (e *Engine) Append() (*Row, error) {
	if len(e.rows) > 0 {
		res := e.ValidateLast(true)
		if !res.Valid {
			return nil, &ValidationError{
				RowLabel:              e.fs.UIText.RowLabel,
				Missing:               res.Missing,
				BeneficiaryUnanswered: res.BeneficiaryUnanswered,
			}
		}
	}
	row := newRow(e.fs, len(e.rows)+1)
	e.applyVisibility(row)
	e.rows = append(e.rows, row)
	return row, nil
}

// Remove drops the last row after confirmation. Removing the sole remaining
// row is refused with ErrCannotRemoveLastRow; a declined confirmation is a
// silent no-op.
func (e *Engine) Remove() error {
	if len(e.rows) <= 1 {
		return ErrCannotRemoveLastRow
	}
	if e.confirm != nil && !e.confirm(e.fs.UIText.RowLabel) {
		return nil
	}
	e.rows = e.rows[:len(e.rows)-1]
	e.renumber()
	return nil
}

// SetField stores a field value on the given row (1-based index) and
// re-derives the row's conditional visibility. Suffixed radio names are
// reduced to their base name; phone fields are stored in display form.
func (e *Engine) SetField(rowIndex int, name, value string) error {
	row, err := e.row(rowIndex)
	if err != nil {
		return err
	}

	base := BaseFieldName(name)
	field, ok := e.fs.Field(base)
	if !ok {
		return fmt.Errorf("rowengine: row %d has no field %q", rowIndex, base)
	}
	if !field.Kind.Input() {
		return fmt.Errorf("rowengine: field %q accepts no value", base)
	}

	if field.Kind == schema.KindTel {
		value = schema.FormatPhone(value)
	}
	row.Values[base] = value
	delete(row.Flagged, base)

	e.applyVisibility(row)
	return nil
}

// ValidateLast checks the most recently appended row; earlier rows are never
// re-checked. A field counts as empty when it is a visible text, tel, or
// select control with no value (the select placeholder counts as no value).
// A visible beneficiary radio group must additionally be answered. When
// showErrors is set, offending fields are flagged for UI highlight.
func (e *Engine) ValidateLast(showErrors bool) Result {
	row := e.LastRow()
	if row == nil {
		return Result{}
	}

	res := Result{Valid: true, Values: make(map[string]string)}
	for _, field := range e.fs.Fields {
		if !field.Kind.Input() || row.Hidden[field.Name] {
			continue
		}

		value := row.Values[field.Name]
		if value != "" {
			res.Values[field.Name] = value
		}

		switch field.Kind {
		case schema.KindText, schema.KindTel, schema.KindSelect:
			if e.allRequired && value == "" {
				res.Valid = false
				res.Missing = append(res.Missing, field.Name)
				if showErrors {
					row.Flagged[field.Name] = true
				}
			} else if showErrors {
				delete(row.Flagged, field.Name)
			}
		case schema.KindFancyRadio:
			if value == "" {
				res.Valid = false
				res.BeneficiaryUnanswered = true
				if showErrors {
					row.Flagged[field.Name] = true
				}
			}
		}
	}
	return res
}

// Restore appends a row without validating the previous one, used when
// hydrating saved data. Values are assigned by base field name; unknown keys
// are ignored. Visibility is re-derived after assignment.
func (e *Engine) Restore(values map[string]string) *Row {
	row := newRow(e.fs, len(e.rows)+1)
	for name, value := range values {
		base := BaseFieldName(name)
		if _, ok := e.fs.Field(base); !ok {
			continue
		}
		row.Values[base] = value
	}
	e.applyVisibility(row)
	e.rows = append(e.rows, row)
	return row
}

func (e *Engine) applyVisibility(row *Row) {
	flags := visibility.Derive(
		e.cat, e.opts,
		row.Values[schema.FieldRegistration],
		row.Values[schema.FieldBeneficiaryYN],
	)
	for name, visible := range visibility.FieldVisibility(e.fs, flags) {
		row.Hidden[name] = !visible
		if !visible && visibility.ClearOnHide[name] {
			row.Values[name] = ""
		}
	}
}

func (e *Engine) row(index int) (*Row, error) {
	if index < 1 || index > len(e.rows) {
		return nil, fmt.Errorf("rowengine: no row %d (have %d)", index, len(e.rows))
	}
	return e.rows[index-1], nil
}

func (e *Engine) renumber() {
	for i, row := range e.rows {
		row.Index = i + 1
	}
}
