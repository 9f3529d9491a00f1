package submission

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-accountforms/pkg/category"
	"github.com/goliatone/go-accountforms/pkg/rowengine"
	"github.com/goliatone/go-accountforms/pkg/schema"
)

func newEngine(t *testing.T, label string) *rowengine.Engine {
	t.Helper()
	resolver := schema.NewResolver()
	fs, res := resolver.Resolve(label)
	eng := rowengine.New(res.Category, fs,
		rowengine.WithAccountType(label),
		rowengine.WithAllFieldsRequired(false))
	if _, err := eng.Append(); err != nil {
		t.Fatalf("Append() initial row: %v", err)
	}
	return eng
}

func set(t *testing.T, eng *rowengine.Engine, row int, name, value string) {
	t.Helper()
	if err := eng.SetField(row, name, value); err != nil {
		t.Fatalf("SetField(%d, %q, %q): %v", row, name, value, err)
	}
}

func marshalEntry(t *testing.T, entry RowPayload) map[string]any {
	t.Helper()
	data, err := json.Marshal(entry)
	if err != nil {
		t.Fatalf("marshal entry: %v", err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal entry: %v", err)
	}
	return decoded
}

func TestBuild_RetirementWithBeneficiary(t *testing.T) {
	eng := newEngine(t, "Retirement")
	set(t, eng, 1, schema.FieldRegistration, "Roth IRA")
	set(t, eng, 1, schema.FieldCompanyName, "Fidelity")
	set(t, eng, 1, schema.FieldBeneficiaryYN, "Yes")
	set(t, eng, 1, schema.FieldBeneficiaryName, "Jane Doe")
	set(t, eng, 1, schema.FieldBeneficiaryPhone, "5551234567")

	payload := Build(eng)
	if len(payload.Accounts) != 1 {
		t.Fatalf("Build() produced %d accounts, want 1", len(payload.Accounts))
	}

	got := marshalEntry(t, payload.Accounts[0])
	want := map[string]any{
		"rowIndex":               float64(1),
		"accountType":            "Retirement",
		"registration":           "Roth IRA",
		"companyName":            "Fidelity",
		"beneficiaryYN":          "Yes",
		"beneficiaryName":        "Jane Doe",
		"beneficiaryPhoneNumber": "555-123-4567",
		"bypassProbate":          true,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("submission entry mismatch (-want +got):\n%s", diff)
	}
}

func TestBuild_HiddenBeneficiaryBackfillsSentinels(t *testing.T) {
	eng := newEngine(t, "Checking and Savings Accounts")
	set(t, eng, 1, schema.FieldRegistration, "Individual")
	set(t, eng, 1, schema.FieldCompanyName, "Ally Bank")

	payload := Build(eng)
	if len(payload.Accounts) != 1 {
		t.Fatalf("Build() produced %d accounts, want 1", len(payload.Accounts))
	}

	got := marshalEntry(t, payload.Accounts[0])
	want := map[string]any{
		"rowIndex":               float64(1),
		"accountType":            "Checking and Savings Accounts",
		"registration":           "Individual",
		"companyName":            "Ally Bank",
		"beneficiaryYN":          "N/A",
		"beneficiaryName":        "N/A",
		"beneficiaryPhoneNumber": "N/A",
		"bypassProbate":          false,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("submission entry mismatch (-want +got):\n%s", diff)
	}
}

func TestBuild_LegalDocumentRenamesTitle(t *testing.T) {
	eng := newEngine(t, "Important Legal Documents")
	set(t, eng, 1, schema.FieldRegistration, "Last Will and Testament")
	set(t, eng, 1, schema.FieldDocumentName, "Will")
	set(t, eng, 1, schema.FieldDocumentLocation, "Safe")

	payload := Build(eng)
	if len(payload.Accounts) != 1 {
		t.Fatalf("Build() produced %d accounts, want 1", len(payload.Accounts))
	}

	got := marshalEntry(t, payload.Accounts[0])
	if got["title"] != "Will" {
		t.Errorf("title = %v, want %q", got["title"], "Will")
	}
	if got["documentLocation"] != "Safe" {
		t.Errorf("documentLocation = %v, want %q", got["documentLocation"], "Safe")
	}
	if got["bypassProbate"] != "N/A" {
		t.Errorf("bypassProbate = %v, want %q", got["bypassProbate"], "N/A")
	}
	for _, key := range []string{"documentName", "beneficiaryYN", "beneficiaryName", "beneficiaryPhoneNumber"} {
		if _, ok := got[key]; ok {
			t.Errorf("entry unexpectedly contains %q", key)
		}
	}
}

func TestBuild_BusinessAndTrustAlwaysBypasses(t *testing.T) {
	eng := newEngine(t, "Business & Trust Accounts")
	set(t, eng, 1, schema.FieldRegistration, "Trust Under Agreement")

	payload := Build(eng)
	got := marshalEntry(t, payload.Accounts[0])
	if got["bypassProbate"] != true {
		t.Errorf("bypassProbate = %v, want true", got["bypassProbate"])
	}
	for _, key := range []string{"beneficiaryYN", "beneficiaryName", "beneficiaryPhoneNumber"} {
		if got[key] != "N/A" {
			t.Errorf("%s = %v, want %q", key, got[key], "N/A")
		}
	}
}

func TestBuild_OtherRegistrationFoldsFreeText(t *testing.T) {
	eng := newEngine(t, "Retirement")
	set(t, eng, 1, schema.FieldRegistration, category.OtherOption)
	set(t, eng, 1, schema.FieldOtherRegistration, "Crypto Custody")
	set(t, eng, 1, schema.FieldBeneficiaryYN, "Yes")
	set(t, eng, 1, schema.FieldBeneficiaryName, "Jane Doe")
	set(t, eng, 1, schema.FieldBeneficiaryPhone, "5551234567")

	payload := Build(eng)
	got := marshalEntry(t, payload.Accounts[0])
	if got["registration"] != "Crypto Custody" {
		t.Errorf("registration = %v, want folded free text", got["registration"])
	}
	if _, ok := got["otherRegistration"]; ok {
		t.Error("otherRegistration must not appear on the wire")
	}
	// Other rows take the beneficiary answer as the probate result.
	if got["bypassProbate"] != true {
		t.Errorf("bypassProbate = %v, want true", got["bypassProbate"])
	}
}

func TestBuild_SkipsUntouchedRows(t *testing.T) {
	eng := newEngine(t, "Retirement")
	set(t, eng, 1, schema.FieldRegistration, "Roth IRA")
	if _, err := eng.Append(); err != nil {
		t.Fatalf("Append() second row: %v", err)
	}

	payload := Build(eng)
	if len(payload.Accounts) != 1 {
		t.Fatalf("Build() produced %d accounts, want 1", len(payload.Accounts))
	}
	if idx := payload.Accounts[0][KeyRowIndex]; idx != 1 {
		t.Errorf("rowIndex = %v, want 1", idx)
	}
}

func TestBuild_RenumbersDensely(t *testing.T) {
	eng := newEngine(t, "Retirement")
	for row := 1; row <= 3; row++ {
		if row > 1 {
			if _, err := eng.Append(); err != nil {
				t.Fatalf("Append() row %d: %v", row, err)
			}
		}
		if row == 2 {
			// Middle row left untouched so it drops out of the payload.
			continue
		}
		set(t, eng, row, schema.FieldRegistration, "Roth IRA")
	}

	payload := Build(eng)
	if len(payload.Accounts) != 2 {
		t.Fatalf("Build() produced %d accounts, want 2", len(payload.Accounts))
	}
	for i, entry := range payload.Accounts {
		if entry[KeyRowIndex] != i+1 {
			t.Errorf("accounts[%d].rowIndex = %v, want %d", i, entry[KeyRowIndex], i+1)
		}
	}
}

func TestBuild_ElidesEmptyValuesButKeepsSentinels(t *testing.T) {
	eng := newEngine(t, "Checking and Savings Accounts")
	set(t, eng, 1, schema.FieldRegistration, "Individual")

	got := marshalEntry(t, Build(eng).Accounts[0])
	for _, key := range []string{"companyName", "accountNumber", "value"} {
		if _, ok := got[key]; ok {
			t.Errorf("empty field %q must be elided", key)
		}
	}
	if got["beneficiaryName"] != "N/A" {
		t.Errorf("beneficiaryName = %v, want sentinel kept", got["beneficiaryName"])
	}
}

func TestBuild_SanitizesFreeText(t *testing.T) {
	eng := newEngine(t, "Retirement")
	set(t, eng, 1, schema.FieldRegistration, "Roth IRA")
	set(t, eng, 1, schema.FieldCompanyName, `<script>alert(1)</script>Fidelity`)

	got := marshalEntry(t, Build(eng).Accounts[0])
	if got["companyName"] != "Fidelity" {
		t.Errorf("companyName = %v, want markup stripped", got["companyName"])
	}
}

func TestMarshal_EmptyPayloadIsNullAccounts(t *testing.T) {
	wire, err := Marshal(Payload{})
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	if wire != `{"accounts":null}` {
		t.Errorf("Marshal() = %s, want null accounts", wire)
	}
}
