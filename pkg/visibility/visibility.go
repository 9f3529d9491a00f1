// Package visibility derives which conditional controls of a row are shown
// for its current registration and beneficiary selections. Derivation is a
// pure function; applying the result to row state (including clearing stale
// values) is the row engine's job.
package visibility

import (
	"github.com/goliatone/go-accountforms/pkg/category"
	"github.com/goliatone/go-accountforms/pkg/schema"
)

// AnswerYes is the beneficiary radio value that reveals the contact fields.
const AnswerYes = "Yes"

// Flags captures the visibility of every conditional control in a row.
type Flags struct {
	// BeneficiaryLabel and BeneficiaryAnswer cover the "Is there a
	// beneficiary?" prompt and its Yes/No radio group.
	BeneficiaryLabel  bool
	BeneficiaryAnswer bool
	// BeneficiaryContacts covers the name and phone inputs, shown only once
	// the answer is an explicit Yes.
	BeneficiaryContacts bool
	// OtherRegistration is shown exactly while the registration select holds
	// the literal "Other".
	OtherRegistration bool
}

// Derive computes the flags for one row. opts must be the registration
// options of the row's category; registration and answer are the row's
// current selections (empty when unanswered).
//
// Business and trust accounts and legal documents never render the
// beneficiary block at all: it is excluded at schema level, and Derive keeps
// the flags false so callers need no special case.
func Derive(c category.Category, opts []category.RegistrationOption, registration, answer string) Flags {
	flags := Flags{
		OtherRegistration: registration == category.OtherOption,
	}
	if c == category.BusinessAndTrustAccounts || c == category.LegalDocuments {
		return flags
	}
	if registration == "" {
		return flags
	}
	if hideBeneficiary(opts, registration) {
		return flags
	}

	flags.BeneficiaryLabel = true
	flags.BeneficiaryAnswer = true
	flags.BeneficiaryContacts = answer == AnswerYes
	return flags
}

func hideBeneficiary(opts []category.RegistrationOption, registration string) bool {
	for _, opt := range opts {
		if opt.Text == registration {
			return opt.HideBeneficiary
		}
	}
	// A registration not in the list (stale saved data) keeps the block
	// hidden rather than prompting for a beneficiary that may not apply.
	return true
}

// FieldVisibility maps the derived flags onto the schema's conditional field
// names. Only fields present in the schema appear in the result; everything
// else keeps whatever visibility it already had.
func FieldVisibility(fs schema.FieldSchema, flags Flags) map[string]bool {
	out := make(map[string]bool, 5)
	assign := func(name string, visible bool) {
		if _, ok := fs.Field(name); ok {
			out[name] = visible
		}
	}
	assign(schema.FieldBeneficiaryLabel, flags.BeneficiaryLabel)
	assign(schema.FieldBeneficiaryYN, flags.BeneficiaryAnswer)
	assign(schema.FieldBeneficiaryName, flags.BeneficiaryContacts)
	assign(schema.FieldBeneficiaryPhone, flags.BeneficiaryContacts)
	assign(schema.FieldOtherRegistration, flags.OtherRegistration)
	return out
}

// ClearOnHide lists the fields whose stored value must be wiped when they
// become invisible, so stale values never resurface in a submission.
var ClearOnHide = map[string]bool{
	schema.FieldBeneficiaryName:   true,
	schema.FieldBeneficiaryPhone:  true,
	schema.FieldOtherRegistration: true,
}
