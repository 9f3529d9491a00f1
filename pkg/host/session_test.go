package host

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"testing"

	"github.com/goliatone/go-accountforms/pkg/rowengine"
	"github.com/goliatone/go-accountforms/pkg/schema"
)

// fakeHost records every outbound message and serves canned settings and
// field values.
type fakeHost struct {
	settings map[string]string
	fields   map[string]string
	fieldErr error

	data    []DataPayload
	submits []SubmitPayload
	resizes []int
}

func (f *fakeHost) WidgetSetting(name string) string { return f.settings[name] }

func (f *fakeHost) FieldValue(_ context.Context, id string) (string, error) {
	if f.fieldErr != nil {
		return "", f.fieldErr
	}
	return f.fields[id], nil
}

func (f *fakeHost) SendData(p DataPayload)     { f.data = append(f.data, p) }
func (f *fakeHost) SendSubmit(p SubmitPayload) { f.submits = append(f.submits, p) }
func (f *fakeHost) RequestFrameResize(h int)   { f.resizes = append(f.resizes, h) }

func newFakeHost(label string) *fakeHost {
	return &fakeHost{
		settings: map[string]string{SettingAccountLabel: label},
		fields: map[string]string{
			FieldFillerFirst: "Jane",
			FieldFillerLast:  "Doe",
		},
	}
}

func TestFrameHeight(t *testing.T) {
	tests := []struct {
		content int
		want    int
	}{
		{0, 450},
		{399, 450},
		{400, 450},
		{401, 451},
		{1200, 1250},
	}
	for _, tc := range tests {
		if got := FrameHeight(tc.content); got != tc.want {
			t.Errorf("FrameHeight(%d) = %d, want %d", tc.content, got, tc.want)
		}
	}
}

func TestSessionInit_SeedsRowAndReportsState(t *testing.T) {
	h := newFakeHost("Retirement")
	s := NewSession(h)
	if err := s.Init(context.Background(), nil); err != nil {
		t.Fatalf("Init() error: %v", err)
	}
	if got := s.Engine().Len(); got != 1 {
		t.Errorf("Len() = %d, want 1 seeded row", got)
	}
	if got := s.DefaultTitle(); got != "Jane Doe's Account" {
		t.Errorf("DefaultTitle() = %q, want %q", got, "Jane Doe's Account")
	}
	if len(h.data) != 1 {
		t.Fatalf("Init sent %d data payloads, want 1", len(h.data))
	}
	if h.data[0].Valid {
		t.Error("blank seeded row must not report valid")
	}
}

func TestSessionInit_MissingLabelFails(t *testing.T) {
	s := NewSession(&fakeHost{settings: map[string]string{}})
	err := s.Init(context.Background(), nil)
	if !errors.Is(err, ErrMissingAccountLabel) {
		t.Errorf("Init() error = %v, want ErrMissingAccountLabel", err)
	}
}

func TestSessionInit_SuffixJoinsWithComma(t *testing.T) {
	h := newFakeHost("Retirement")
	h.fields[FieldFillerSuffix] = "Jr."
	s := NewSession(h)
	if err := s.Init(context.Background(), nil); err != nil {
		t.Fatalf("Init() error: %v", err)
	}
	if got := s.DefaultTitle(); got != "Jane Doe, Jr.'s Account" {
		t.Errorf("DefaultTitle() = %q, want suffix joined with comma", got)
	}
}

func TestSessionInit_FieldLookupFailureIsRecoverable(t *testing.T) {
	h := newFakeHost("Retirement")
	h.fieldErr = errors.New("runtime unavailable")
	var logged strings.Builder
	s := NewSession(h, WithLogger(log.New(&logged, "", 0)))
	if err := s.Init(context.Background(), nil); err != nil {
		t.Fatalf("Init() error: %v", err)
	}
	if s.DefaultTitle() != "" {
		t.Errorf("DefaultTitle() = %q, want empty on lookup failure", s.DefaultTitle())
	}
	if !strings.Contains(logged.String(), "runtime unavailable") {
		t.Error("lookup failure should be logged")
	}
}

func TestSessionInit_MalformedSavedDataIsNoData(t *testing.T) {
	h := newFakeHost("Retirement")
	var logged strings.Builder
	s := NewSession(h, WithLogger(log.New(&logged, "", 0)))
	if err := s.Init(context.Background(), `{"accounts": [`); err != nil {
		t.Fatalf("Init() error: %v", err)
	}
	if got := s.Engine().Len(); got != 1 {
		t.Errorf("Len() = %d, want single blank row after decode failure", got)
	}
	if !strings.Contains(logged.String(), "decode saved payload") {
		t.Error("decode failure should be logged")
	}
}

func TestSessionInit_HydratesSavedRows(t *testing.T) {
	h := newFakeHost("Retirement")
	s := NewSession(h)
	saved := `{"accounts":[{"rowIndex":1,"accountType":"Retirement","registration":"Roth IRA","companyName":"Fidelity","beneficiaryYN":"No","beneficiaryName":"N/A","beneficiaryPhoneNumber":"N/A","bypassProbate":false}]}`
	if err := s.Init(context.Background(), saved); err != nil {
		t.Fatalf("Init() error: %v", err)
	}
	if got := s.Engine().Len(); got != 1 {
		t.Fatalf("Len() = %d, want 1 hydrated row", got)
	}
	row := s.Engine().LastRow()
	if got := row.Value(schema.FieldRegistration); got != "Roth IRA" {
		t.Errorf("registration = %q, want hydrated value", got)
	}
}

func TestSessionHandleChange_SameAsNameCopiesTitle(t *testing.T) {
	h := newFakeHost("Retirement")
	s := NewSession(h)
	if err := s.Init(context.Background(), nil); err != nil {
		t.Fatalf("Init() error: %v", err)
	}
	if err := s.HandleChange(1, schema.FieldSameAsName, "true"); err != nil {
		t.Fatalf("HandleChange() error: %v", err)
	}
	if got := s.Engine().LastRow().Value(schema.FieldTitle); got != "Jane Doe's Account" {
		t.Errorf("title = %q, want default title copied", got)
	}
}

func TestSessionHandleChange_SendsFullListPayload(t *testing.T) {
	h := newFakeHost("Retirement")
	s := NewSession(h)
	if err := s.Init(context.Background(), nil); err != nil {
		t.Fatalf("Init() error: %v", err)
	}
	if err := s.HandleChange(1, schema.FieldRegistration, "Roth IRA"); err != nil {
		t.Fatalf("HandleChange() error: %v", err)
	}
	last := h.data[len(h.data)-1]
	var decoded struct {
		Accounts []map[string]any `json:"accounts"`
	}
	if err := json.Unmarshal([]byte(last.Value), &decoded); err != nil {
		t.Fatalf("data payload is not a serialized list: %v", err)
	}
	if len(decoded.Accounts) != 1 {
		t.Fatalf("payload carries %d accounts, want 1", len(decoded.Accounts))
	}
	if decoded.Accounts[0]["registration"] != "Roth IRA" {
		t.Errorf("registration = %v, want latest edit reflected", decoded.Accounts[0]["registration"])
	}
}

func TestSessionHandleChange_LegacyPayloadIsRowMap(t *testing.T) {
	h := newFakeHost("Retirement")
	s := NewSession(h, WithLegacySendData())
	if err := s.Init(context.Background(), nil); err != nil {
		t.Fatalf("Init() error: %v", err)
	}
	if err := s.HandleChange(1, schema.FieldRegistration, "Roth IRA"); err != nil {
		t.Fatalf("HandleChange() error: %v", err)
	}
	last := h.data[len(h.data)-1]
	var decoded map[string]string
	if err := json.Unmarshal([]byte(last.Value), &decoded); err != nil {
		t.Fatalf("legacy payload is not a field map: %v", err)
	}
	if decoded[schema.FieldRegistration] != "Roth IRA" {
		t.Errorf("legacy payload registration = %q", decoded[schema.FieldRegistration])
	}
}

func TestSessionAddRow_BlockedByIncompleteRow(t *testing.T) {
	h := newFakeHost("Retirement")
	s := NewSession(h)
	if err := s.Init(context.Background(), nil); err != nil {
		t.Fatalf("Init() error: %v", err)
	}
	err := s.AddRow()
	var verr *rowengine.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("AddRow() error = %v, want *ValidationError", err)
	}
	if got := s.Engine().Len(); got != 1 {
		t.Errorf("Len() = %d, failed add must not mutate", got)
	}
}

func TestSessionRemoveRow_SoleRowRefused(t *testing.T) {
	h := newFakeHost("Retirement")
	s := NewSession(h)
	if err := s.Init(context.Background(), nil); err != nil {
		t.Fatalf("Init() error: %v", err)
	}
	if err := s.RemoveRow(); !errors.Is(err, rowengine.ErrCannotRemoveLastRow) {
		t.Errorf("RemoveRow() error = %v, want ErrCannotRemoveLastRow", err)
	}
}

func TestSessionSubmit_EmptyListSendsNull(t *testing.T) {
	h := newFakeHost("Retirement")
	s := NewSession(h)
	if err := s.Init(context.Background(), nil); err != nil {
		t.Fatalf("Init() error: %v", err)
	}
	if err := s.Submit(context.Background()); err != nil {
		t.Fatalf("Submit() error: %v", err)
	}
	if len(h.submits) != 1 {
		t.Fatalf("Submit sent %d payloads, want 1", len(h.submits))
	}
	got := h.submits[0]
	if !got.Valid || got.Value != nil {
		t.Errorf("Submit payload = %+v, want valid with nil value", got)
	}
}

func TestSessionSubmit_SendsCanonicalPayload(t *testing.T) {
	h := newFakeHost("Retirement")
	s := NewSession(h)
	if err := s.Init(context.Background(), nil); err != nil {
		t.Fatalf("Init() error: %v", err)
	}
	fill := []struct{ name, value string }{
		{schema.FieldRegistration, "Roth IRA"},
		{schema.FieldTitle, "Jane's IRA"},
		{schema.FieldCompanyName, "Fidelity"},
		{schema.FieldAccountNumber, "12345678"},
		{schema.FieldAdvisorName, "Pat Smith"},
		{schema.FieldAdvisorPhone, "5559876543"},
		{schema.FieldValue, "250000"},
		{schema.FieldBeneficiaryYN, "Yes"},
		{schema.FieldBeneficiaryName, "John Doe"},
		{schema.FieldBeneficiaryPhone, "5551234567"},
	}
	for _, f := range fill {
		if err := s.HandleChange(1, f.name, f.value); err != nil {
			t.Fatalf("HandleChange(%q) error: %v", f.name, err)
		}
	}
	if err := s.Submit(context.Background()); err != nil {
		t.Fatalf("Submit() error: %v", err)
	}
	got := h.submits[len(h.submits)-1]
	if got.Value == nil {
		t.Fatal("Submit payload value is nil, want serialized accounts")
	}
	var decoded struct {
		Accounts []map[string]any `json:"accounts"`
	}
	if err := json.Unmarshal([]byte(*got.Value), &decoded); err != nil {
		t.Fatalf("submit payload decode: %v", err)
	}
	if len(decoded.Accounts) != 1 {
		t.Fatalf("submit payload carries %d accounts, want 1", len(decoded.Accounts))
	}
	entry := decoded.Accounts[0]
	if entry["bypassProbate"] != true {
		t.Errorf("bypassProbate = %v, want true", entry["bypassProbate"])
	}
	if entry["value"] != "$250,000.00" {
		t.Errorf("value = %v, want formatted currency", entry["value"])
	}
}

func TestSessionNotifyContentHeight(t *testing.T) {
	h := newFakeHost("Retirement")
	s := NewSession(h)
	if err := s.Init(context.Background(), nil); err != nil {
		t.Fatalf("Init() error: %v", err)
	}
	s.NotifyContentHeight(300)
	s.NotifyContentHeight(1000)
	want := []int{450, 1050}
	if fmt.Sprint(h.resizes) != fmt.Sprint(want) {
		t.Errorf("resizes = %v, want %v", h.resizes, want)
	}
}
