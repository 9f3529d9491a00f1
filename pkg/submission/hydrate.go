package submission

import (
	"encoding/json"
	"fmt"

	"github.com/goliatone/go-accountforms/pkg/category"
	"github.com/goliatone/go-accountforms/pkg/rowengine"
	"github.com/goliatone/go-accountforms/pkg/schema"
)

// savedPayload mirrors the wire shape loosely enough to accept entries that
// older revisions produced.
type savedPayload struct {
	Accounts []map[string]any `json:"accounts"`
}

// Hydrate restores engine rows from a previously submitted payload. The
// saved value may be the wire string, raw bytes, or an already-decoded
// document. A missing or null accounts list restores nothing. A payload
// that cannot be decoded restores nothing and returns the decode error so
// the caller can log it; the engine is left untouched either way.
func Hydrate(eng *rowengine.Engine, saved any) error {
	payload, err := decodeSaved(saved)
	if err != nil {
		return err
	}
	cat := eng.Category()
	fs := eng.Schema()
	for _, entry := range payload.Accounts {
		eng.Restore(rowValues(cat, fs, entry))
	}
	return nil
}

func decodeSaved(saved any) (savedPayload, error) {
	var payload savedPayload
	switch v := saved.(type) {
	case nil:
		return payload, nil
	case string:
		if v == "" {
			return payload, nil
		}
		if err := json.Unmarshal([]byte(v), &payload); err != nil {
			return savedPayload{}, fmt.Errorf("submission: decode saved payload: %w", err)
		}
	case []byte:
		if len(v) == 0 {
			return payload, nil
		}
		if err := json.Unmarshal(v, &payload); err != nil {
			return savedPayload{}, fmt.Errorf("submission: decode saved payload: %w", err)
		}
	case savedPayload:
		payload = v
	case Payload:
		for _, row := range v.Accounts {
			payload.Accounts = append(payload.Accounts, row)
		}
	case map[string]any:
		data, err := json.Marshal(v)
		if err != nil {
			return savedPayload{}, fmt.Errorf("submission: decode saved payload: %w", err)
		}
		if err := json.Unmarshal(data, &payload); err != nil {
			return savedPayload{}, fmt.Errorf("submission: decode saved payload: %w", err)
		}
	default:
		return savedPayload{}, fmt.Errorf("submission: decode saved payload: unsupported type %T", saved)
	}
	return payload, nil
}

// rowValues maps one saved entry back onto field names, undoing the wire
// transforms: the "Other" fold, the legal-document title rename, and the
// display formatting the inputs carry.
func rowValues(cat category.Category, fs schema.FieldSchema, entry map[string]any) map[string]string {
	values := make(map[string]string, len(entry))
	for key, raw := range entry {
		switch key {
		case KeyRowIndex, KeyAccountType, "bypassProbate":
			continue
		}
		value := stringify(raw)
		if value == "" || value == NotApplicable {
			continue
		}
		values[key] = value
	}

	if cat == category.LegalDocuments {
		if title, ok := values[schema.FieldTitle]; ok && values[schema.FieldDocumentName] == "" {
			values[schema.FieldDocumentName] = title
			delete(values, schema.FieldTitle)
		}
	}

	// A registration that is not one of the category's options was folded
	// from the free-text field; put it back there.
	if registration, ok := values[schema.FieldRegistration]; ok && registration != category.OtherOption {
		if _, known := category.FindOption(cat, registration); !known {
			values[schema.FieldRegistration] = category.OtherOption
			values[schema.FieldOtherRegistration] = registration
		}
	}

	for _, name := range []string{schema.FieldValue, schema.FieldValue2} {
		if raw, ok := values[name]; ok {
			if display := schema.FormatCurrency(raw); display != "" {
				values[name] = display
			}
		}
	}
	for _, field := range fs.Fields {
		if field.Kind != schema.KindTel {
			continue
		}
		if raw, ok := values[field.Name]; ok {
			values[field.Name] = schema.FormatPhone(raw)
		}
	}
	return values
}

func stringify(raw any) string {
	switch v := raw.(type) {
	case string:
		return v
	case bool:
		if v {
			return "true"
		}
		return "false"
	case float64:
		return fmt.Sprintf("%g", v)
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", v)
	}
}
