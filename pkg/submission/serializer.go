// Package submission converts the row engine's state into the canonical
// account-list payload exchanged with the host, and hydrates engine state
// back from previously saved payloads.
package submission

import (
	"encoding/json"
	"fmt"

	"github.com/goliatone/go-accountforms/pkg/category"
	"github.com/goliatone/go-accountforms/pkg/rowengine"
	"github.com/goliatone/go-accountforms/pkg/schema"
	"github.com/goliatone/go-accountforms/pkg/visibility"
)

// Baseline keys every serialized row carries. A row contributes to the
// output only when it holds more than these two.
const (
	KeyRowIndex    = "rowIndex"
	KeyAccountType = "accountType"
)

// NotApplicable is the wire sentinel for fields that carry no meaning for a
// row: a literal string, distinct from absence and from boolean false.
const NotApplicable = "N/A"

// RowPayload is one serialized account/policy/document entry.
type RowPayload map[string]any

// Payload is the canonical submission shape. A nil Accounts slice marshals
// to {"accounts":null}, the contract's "nothing to submit" form.
type Payload struct {
	Accounts []RowPayload `json:"accounts"`
}

// Empty reports whether any row qualified for submission.
func (p Payload) Empty() bool {
	return len(p.Accounts) == 0
}

// Marshal renders the payload to its wire form.
func Marshal(p Payload) (string, error) {
	data, err := json.Marshal(p)
	if err != nil {
		return "", fmt.Errorf("submission: marshal payload: %w", err)
	}
	return string(data), nil
}

// Build walks every row and emits the canonical payload. Untouched rows (no
// registration and no other-registration text) are skipped; surviving rows
// are renumbered densely from 1 regardless of gaps.
func Build(eng *rowengine.Engine) Payload {
	var payload Payload
	cat := eng.Category()
	fs := eng.Schema()

	for _, row := range eng.Rows() {
		entry := collectRow(fs, row)
		for _, name := range []string{schema.FieldValue, schema.FieldValue2} {
			if raw := entry[name]; raw != "" {
				entry[name] = schema.FormatCurrency(raw)
			}
		}

		registration := entry[schema.FieldRegistration]
		other := entry[schema.FieldOtherRegistration]
		if registration == "" && other == "" {
			continue
		}
		delete(entry, schema.FieldRegistration)
		delete(entry, schema.FieldOtherRegistration)

		out := RowPayload{
			KeyAccountType: eng.AccountType(),
		}
		for name, value := range entry {
			out[name] = value
		}
		// The free-text type replaces the literal "Other" on the wire; the
		// probate rule still sees the select value so Other rows follow the
		// beneficiary answer.
		if other != "" {
			out[schema.FieldRegistration] = other
		} else {
			out[schema.FieldRegistration] = registration
		}

		applyCategoryRules(cat, registration, entry, out)
		elideEmpty(out)

		if len(out) <= 2 {
			continue
		}
		out[KeyRowIndex] = len(payload.Accounts) + 1
		payload.Accounts = append(payload.Accounts, out)
	}
	return payload
}

// collectRow gathers the visible input values of one row, sanitised and
// keyed by base field name. Unanswered radio groups stay absent, matching a
// radio group with nothing checked.
func collectRow(fs schema.FieldSchema, row *rowengine.Row) map[string]string {
	values := make(map[string]string, len(fs.Fields))
	for _, field := range fs.Fields {
		if !field.Kind.Input() || !row.Visible(field.Name) {
			continue
		}
		value := row.Value(field.Name)
		switch field.Kind {
		case schema.KindCheckbox:
			// UI-only toggles never reach the wire.
			continue
		case schema.KindFancyRadio:
			if value == "" {
				continue
			}
		case schema.KindText:
			value = SanitizeText(value)
		}
		values[field.Name] = value
	}
	return values
}

// applyCategoryRules mutates the outgoing entry per the category decision
// table: sentinel back-filling for inapplicable beneficiary fields, the
// legal-document title rename, and the probate flag.
func applyCategoryRules(cat category.Category, selectValue string, collected map[string]string, out RowPayload) {
	switch cat {
	case category.LegalDocuments:
		if name, ok := out[schema.FieldDocumentName]; ok {
			out[schema.FieldTitle] = name
			delete(out, schema.FieldDocumentName)
		}
		out["bypassProbate"] = category.NotApplicable
		delete(out, schema.FieldBeneficiaryYN)
		delete(out, schema.FieldBeneficiaryName)
		delete(out, schema.FieldBeneficiaryPhone)

	case category.BusinessAndTrustAccounts:
		out["bypassProbate"] = category.Bypasses
		out[schema.FieldBeneficiaryYN] = NotApplicable
		out[schema.FieldBeneficiaryName] = NotApplicable
		out[schema.FieldBeneficiaryPhone] = NotApplicable

	default:
		answer, answered := collected[schema.FieldBeneficiaryYN]
		switch {
		case answered && answer == "No":
			out[schema.FieldBeneficiaryName] = NotApplicable
			out[schema.FieldBeneficiaryPhone] = NotApplicable
		case !answered:
			out[schema.FieldBeneficiaryYN] = NotApplicable
			out[schema.FieldBeneficiaryName] = NotApplicable
			out[schema.FieldBeneficiaryPhone] = NotApplicable
		}
		out["bypassProbate"] = category.Probate(cat, selectValue, answer == visibility.AnswerYes)
	}
}

// elideEmpty removes every key whose value is the empty string. Explicit
// "N/A" sentinels survive.
func elideEmpty(out RowPayload) {
	for key, value := range out {
		if s, ok := value.(string); ok && s == "" {
			delete(out, key)
		}
	}
}
