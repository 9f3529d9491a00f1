package schema

import "github.com/goliatone/go-accountforms/pkg/category"

// Well-known field names shared across the engine, visibility rules, and the
// serializer. Names are stable: the wire contract uses them verbatim.
const (
	FieldRegistration      = "registration"
	FieldOtherRegistration = "otherRegistration"
	FieldTitle             = "title"
	FieldCompanyName       = "companyName"
	FieldAccountNumber     = "accountNumber"
	FieldAdvisorName       = "advisorName"
	FieldAdvisorPhone      = "advisorPhoneNumber"
	FieldValue             = "value"
	FieldValue2            = "value2"
	FieldBeneficiaryLabel  = "beneficiaryLabel"
	FieldBeneficiaryYN     = "beneficiaryYN"
	FieldBeneficiaryName   = "beneficiaryName"
	FieldBeneficiaryPhone  = "beneficiaryPhoneNumber"
	FieldDocumentName      = "documentName"
	FieldDocumentLocation  = "documentLocation"
	FieldSameAsName        = "sameAsName"
)

// BeneficiaryFields lists the fields making up the beneficiary block, in
// schema order.
var BeneficiaryFields = []string{
	FieldBeneficiaryLabel,
	FieldBeneficiaryYN,
	FieldBeneficiaryName,
	FieldBeneficiaryPhone,
}

const (
	phonePattern = "[0-9]{3}-[0-9]{3}-[0-9]{4}"
	phoneTitle   = "XXX-XXX-XXXX"
)

// otherRegistrationPlaceholders customises the free-text fallback per
// category.
var otherRegistrationPlaceholders = map[category.Category]string{
	category.CheckingAndSavings:       "Other Checking or Savings Account Type",
	category.TaxableInvestment:        "Other Taxable Investment Account Type",
	category.Retirement:               "Other Retirement Account Type",
	category.AccountsForMinors:        "Other Account for Minors Type",
	category.BusinessAndTrustAccounts: "Other Business or Trust Account Type",
	category.Insurance:                "Other Insurance Policy Type",
	category.LegalDocuments:           "Other Legal Document Type",
}

// OtherRegistrationPlaceholder returns the category-specific placeholder for
// the "other registration" free-text field.
func OtherRegistrationPlaceholder(c category.Category) string {
	if p, ok := otherRegistrationPlaceholders[c]; ok {
		return p
	}
	return "Other Registration Type"
}

// baseSchema is the shared field layout every category variant starts from.
// Variants adjust placeholders, splice in extra fields, or trim the list.
func baseSchema() FieldSchema {
	return FieldSchema{
		Fields: []FieldDescriptor{
			{Name: FieldRegistration, Kind: KindSelect, Placeholder: "Select Registration Type", Layout: "full-width"},
			{Name: FieldOtherRegistration, Kind: KindText, Placeholder: "Other Registration Type", Layout: "full-width hidden"},
			{Name: FieldTitle, Kind: KindText, Placeholder: "Title", Layout: "full-width"},
			{Name: FieldCompanyName, Kind: KindText, Placeholder: "Company Name", Layout: "half-width"},
			{Name: FieldAccountNumber, Kind: KindText, Placeholder: "Last 4 Digits of Account Number", Layout: "half-width", Mask: true},
			{Name: FieldAdvisorName, Kind: KindText, Placeholder: "Advisor Name", Layout: "half-width"},
			{Name: FieldAdvisorPhone, Kind: KindTel, Placeholder: "Advisor Phone Number", Pattern: phonePattern, Title: phoneTitle, Layout: "half-width"},
			{Name: FieldValue, Kind: KindText, Placeholder: "Value", Layout: "full-width"},
			{Name: FieldBeneficiaryLabel, Kind: KindLabel, Text: "Is there a beneficiary?", Layout: "half-width beneficiaryLabel"},
			{Name: FieldBeneficiaryYN, Kind: KindFancyRadio, Options: []string{"Yes", "No"}, OptionClasses: []string{"yes-class", "no-class"}, Layout: "half-width"},
			{Name: FieldBeneficiaryName, Kind: KindText, Placeholder: "Beneficiary Name", Layout: "half-width hidden"},
			{Name: FieldBeneficiaryPhone, Kind: KindTel, Placeholder: "Beneficiary Phone Number", Pattern: phonePattern, Title: phoneTitle, Layout: "half-width hidden"},
		},
		UIText: UIText{RowLabel: "Document"},
	}
}

func (s *FieldSchema) set(name string, mutate func(*FieldDescriptor)) {
	for i := range s.Fields {
		if s.Fields[i].Name == name {
			mutate(&s.Fields[i])
			return
		}
	}
}

func (s *FieldSchema) setPlaceholder(name, placeholder string) {
	s.set(name, func(f *FieldDescriptor) { f.Placeholder = placeholder })
}

// accountSchema is the generic variant used for taxable investment,
// retirement, and business/trust accounts, and the fallback when no category
// resolves. Taxable and retirement instances also get the sameAsName
// checkbox that copies the form filler's name into the title.
func accountSchema(withSameAsName bool) FieldSchema {
	s := baseSchema()
	s.setPlaceholder(FieldTitle, "Account Title")
	s.setPlaceholder(FieldCompanyName, "Firm Name")
	s.setPlaceholder(FieldValue, "Account Value")
	s.setPlaceholder(FieldOtherRegistration, otherRegistrationPlaceholders[category.TaxableInvestment])
	s.UIText.RowLabel = "Account"
	if withSameAsName {
		fields := make([]FieldDescriptor, 0, len(s.Fields)+1)
		for _, f := range s.Fields {
			fields = append(fields, f)
			if f.Name == FieldRegistration {
				fields = append(fields, FieldDescriptor{
					Name: FieldSameAsName, Kind: KindCheckbox,
					Text: "Same as my name", Layout: "full-width",
				})
			}
		}
		s.Fields = fields
	}
	return s
}

func minorsSchema() FieldSchema {
	s := accountSchema(false)
	s.setPlaceholder(FieldTitle, "Account Title (Include Minor's Name)")
	s.set(FieldBeneficiaryLabel, func(f *FieldDescriptor) { f.Text = "Is there a Successor Custodian/Owner?" })
	s.setPlaceholder(FieldBeneficiaryName, "Successor Custodian/Owner Name")
	s.setPlaceholder(FieldBeneficiaryPhone, "Successor Custodian/Owner Phone Number")
	return s
}

func insuranceSchema() FieldSchema {
	s := baseSchema()
	s.setPlaceholder(FieldRegistration, "Select Policy Type")
	s.setPlaceholder(FieldOtherRegistration, otherRegistrationPlaceholders[category.Insurance])
	s.setPlaceholder(FieldTitle, "Policy Title")
	s.setPlaceholder(FieldCompanyName, "Insurance Company Name")
	s.setPlaceholder(FieldAccountNumber, "Last 4 Digits of Policy/Account Number")
	s.setPlaceholder(FieldAdvisorName, "Agent Name")
	s.setPlaceholder(FieldAdvisorPhone, "Agent Phone Number")
	s.setPlaceholder(FieldValue, "Policy Cash Value ($0 for Term Life)")
	s.UIText.RowLabel = "Policy"

	fields := make([]FieldDescriptor, 0, len(s.Fields)+1)
	for _, f := range s.Fields {
		fields = append(fields, f)
		if f.Name == FieldValue {
			fields = append(fields, FieldDescriptor{
				Name: FieldValue2, Kind: KindText,
				Placeholder: "Death Benefit", Layout: "full-width",
			})
		}
	}
	s.Fields = fields
	return s
}

// legalDocumentSchema repurposes the account layout for document tracking:
// the title slot becomes the document name, company/advisor slots become
// attorney and executor contacts, and the value plus beneficiary block drop
// out entirely (documents carry neither).
func legalDocumentSchema() FieldSchema {
	s := FieldSchema{
		Fields: []FieldDescriptor{
			{Name: FieldRegistration, Kind: KindSelect, Placeholder: "Select Document Type", Layout: "full-width"},
			{Name: FieldOtherRegistration, Kind: KindText, Placeholder: otherRegistrationPlaceholders[category.LegalDocuments], Layout: "full-width hidden"},
			{Name: FieldDocumentName, Kind: KindText, Placeholder: "Document Title", Layout: "half-width"},
			{Name: FieldDocumentLocation, Kind: KindText, Placeholder: "Document Location", Layout: "half-width"},
			{Name: FieldCompanyName, Kind: KindText, Placeholder: "Attorney/CPA Name", Layout: "half-width"},
			{Name: FieldAccountNumber, Kind: KindTel, Placeholder: "Attorney/CPA Phone Number", Pattern: phonePattern, Title: phoneTitle, Layout: "half-width"},
			{Name: FieldAdvisorName, Kind: KindText, Placeholder: "Executor/Trustee Name", Layout: "half-width"},
			{Name: FieldAdvisorPhone, Kind: KindTel, Placeholder: "Executor/Trustee Phone Number", Pattern: phonePattern, Title: phoneTitle, Layout: "half-width"},
		},
		UIText: UIText{RowLabel: "Important Legal Document"},
	}
	return s
}

func checkingSavingsSchema() FieldSchema {
	s := baseSchema()
	s = s.keepOnly(
		FieldRegistration, FieldOtherRegistration, FieldTitle,
		FieldCompanyName, FieldAccountNumber,
		FieldBeneficiaryLabel, FieldBeneficiaryYN,
		FieldBeneficiaryName, FieldBeneficiaryPhone,
	)
	s.setPlaceholder(FieldTitle, "Account Title")
	s.setPlaceholder(FieldCompanyName, "Bank Name")
	s.setPlaceholder(FieldOtherRegistration, otherRegistrationPlaceholders[category.CheckingAndSavings])
	s.UIText.RowLabel = "Checking/Savings Account"
	return s
}

func (s FieldSchema) keepOnly(names ...string) FieldSchema {
	keep := make(map[string]struct{}, len(names))
	for _, name := range names {
		keep[name] = struct{}{}
	}
	out := FieldSchema{UIText: s.UIText}
	for _, f := range s.Fields {
		if _, ok := keep[f.Name]; ok {
			out.Fields = append(out.Fields, f)
		}
	}
	return out
}

// ForCategory returns the field schema for a category. Business and trust
// accounts share the generic account layout minus the beneficiary block:
// trust assets name beneficiaries in the instrument itself, so the block is
// excluded at schema level rather than merely hidden.
func ForCategory(c category.Category) FieldSchema {
	switch c {
	case category.AccountsForMinors:
		return minorsSchema()
	case category.Insurance:
		return insuranceSchema()
	case category.LegalDocuments:
		return legalDocumentSchema()
	case category.CheckingAndSavings:
		return checkingSavingsSchema()
	case category.BusinessAndTrustAccounts:
		return accountSchema(false).WithoutFields(BeneficiaryFields...)
	case category.TaxableInvestment, category.Retirement:
		return accountSchema(true)
	default:
		return accountSchema(false)
	}
}
