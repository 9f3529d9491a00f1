package category

// OtherOption is the literal registration value appended to every category's
// option list. It carries no static metadata: its probate and beneficiary
// behaviour is decided from the paired free-text value and the beneficiary
// answer at serialization time.
const OtherOption = "Other"

// RegistrationOption describes one entry of a category's registration-type
// select. Text doubles as the display and submission value.
type RegistrationOption struct {
	Text            string
	HideBeneficiary bool
	BypassProbate   bool
}

var registrations = map[Category][]RegistrationOption{
	CheckingAndSavings: {
		{Text: "Individual", HideBeneficiary: true},
		{Text: "Joint Account with Rights of Survivorship (JTWRS)", HideBeneficiary: true, BypassProbate: true},
		{Text: "Payable on Death (POD)", BypassProbate: true},
		{Text: "Corporate", HideBeneficiary: true},
	},
	TaxableInvestment: {
		{Text: "Individual", HideBeneficiary: true},
		{Text: "Joint Tenants with Rights of Survivorship", HideBeneficiary: true, BypassProbate: true},
		{Text: "Joint Tenants in Common", HideBeneficiary: true},
		{Text: "Joint Tenants in Entirety", HideBeneficiary: true, BypassProbate: true},
		{Text: "Joint Community Property", HideBeneficiary: true},
		{Text: "Individual – Transfer on Death (TOD)", BypassProbate: true},
		{Text: "Joint Tenants with Rights of Survivorship – Transfer on Death (TOD)", BypassProbate: true},
		{Text: "Joint Tenants in Entirety – Transfer on Death (TOD)", BypassProbate: true},
	},
	Retirement: {
		{Text: "Traditional IRA"},
		{Text: "Roth IRA"},
		{Text: "Rollover IRA"},
		{Text: "SEP IRA"},
		{Text: "SIMPLE IRA"},
		{Text: "IRA BDA"},
		{Text: "Roth IRA BDA"},
		{Text: "401(k) Plan"},
		{Text: "Solo 401(k)/Individual 401(k)"},
		{Text: "Profit-Sharing Plan"},
		{Text: "Defined Benefit Plan"},
		{Text: "403(b) Plan"},
		{Text: "457 Plan"},
		{Text: "Thrift Savings Plan (TSP)"},
	},
	AccountsForMinors: {
		{Text: "Uniform Gifts to Minors Act (UGMA)"},
		{Text: "Uniform Transfers to Minors Act (UTMA)"},
		{Text: "529"},
	},
	BusinessAndTrustAccounts: {
		{Text: "Trust Under Agreement"},
		{Text: "Trust Under Will"},
		{Text: "Corporation"},
		{Text: "Limited Liability Company (LLC)"},
		{Text: "Non-Prototype"},
	},
	Insurance: {
		{Text: "Whole Life"},
		{Text: "Term Life"},
		{Text: "Universal Life"},
		{Text: "Variable Life"},
	},
	LegalDocuments: {
		{Text: "Last Will and Testament"},
		{Text: "Trust Agreement"},
		{Text: "Durable Power of Attorney"},
		{Text: "Healthcare Power of Attorney"},
		{Text: "Tax Returns"},
	},
}

// Options returns the ordered registration options for a category, with the
// literal "Other" entry appended last. Unknown categories yield an empty
// slice rather than an error so the widget can still render.
func Options(c Category) []RegistrationOption {
	base, ok := registrations[c]
	if !ok {
		return nil
	}
	out := make([]RegistrationOption, 0, len(base)+1)
	out = append(out, base...)
	out = append(out, RegistrationOption{Text: OtherOption})
	return out
}

// FindOption looks up a registration option by its submission text.
func FindOption(c Category, text string) (RegistrationOption, bool) {
	for _, opt := range registrations[c] {
		if opt.Text == text {
			return opt, true
		}
	}
	if text == OtherOption {
		return RegistrationOption{Text: OtherOption}, true
	}
	return RegistrationOption{}, false
}
