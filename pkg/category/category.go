package category

import "strings"

// Category identifies the configured account/document type governing which
// field schema and business rules apply to a widget instance. It is selected
// once per instance and never changes mid-session.
type Category string

const (
	Unknown                  Category = ""
	Retirement               Category = "retirement"
	Insurance                Category = "insurance"
	TaxableInvestment        Category = "taxable_investment"
	AccountsForMinors        Category = "accounts_for_minors"
	BusinessAndTrustAccounts Category = "business_and_trust_accounts"
	CheckingAndSavings       Category = "checking_and_savings_accounts"
	LegalDocuments           Category = "important_legal_documents"
)

// MatchKind reports which lookup branch resolved a label. Callers use it for
// logging; resolution itself never fails outward.
type MatchKind int

const (
	MatchNone MatchKind = iota
	MatchExact
	MatchPartial
)

func (k MatchKind) String() string {
	switch k {
	case MatchExact:
		return "exact"
	case MatchPartial:
		return "partial"
	default:
		return "none"
	}
}

// labelKeys maps normalised label keys onto categories. The "legal_document"
// alias covers an older spelling of the setting still present in live
// configurations.
var labelKeys = map[string]Category{
	"retirement":                    Retirement,
	"insurance":                     Insurance,
	"taxable_investment":            TaxableInvestment,
	"accounts_for_minors":           AccountsForMinors,
	"business_and_trust_accounts":   BusinessAndTrustAccounts,
	"business_trust_accounts":       BusinessAndTrustAccounts,
	"checking_and_savings_accounts": CheckingAndSavings,
	"checking_savings_accounts":     CheckingAndSavings,
	"important_legal_documents":     LegalDocuments,
	"legal_document":                LegalDocuments,
	"important_legal_document":      LegalDocuments,
}

// keyOrder fixes the iteration order for partial matching so resolution is
// deterministic regardless of map ordering.
var keyOrder = []string{
	"business_and_trust_accounts",
	"business_trust_accounts",
	"checking_and_savings_accounts",
	"checking_savings_accounts",
	"accounts_for_minors",
	"important_legal_documents",
	"important_legal_document",
	"legal_document",
	"taxable_investment",
	"retirement",
	"insurance",
}

// Normalize converts a display label to its internal key: lower-case, runs of
// whitespace collapsed to a single underscore, every other character outside
// [a-z0-9_] dropped.
func Normalize(label string) string {
	var b strings.Builder
	b.Grow(len(label))
	pendingSep := false
	for _, r := range strings.ToLower(strings.TrimSpace(label)) {
		switch {
		case r == ' ' || r == '\t' || r == '\n' || r == '\r':
			pendingSep = b.Len() > 0
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '_':
			if pendingSep {
				b.WriteByte('_')
				pendingSep = false
			}
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Parse resolves a free-text category label. Lookup order: exact key match,
// then the first registered key contained in the normalised label, then
// Unknown. Parse never returns an error so the caller can always fall back to
// a default schema.
func Parse(label string) (Category, MatchKind) {
	key := Normalize(label)
	if key == "" {
		return Unknown, MatchNone
	}
	if cat, ok := labelKeys[key]; ok {
		return cat, MatchExact
	}
	for _, candidate := range keyOrder {
		if strings.Contains(key, candidate) {
			return labelKeys[candidate], MatchPartial
		}
	}
	return Unknown, MatchNone
}

// Label returns the canonical display label for a category.
func (c Category) Label() string {
	switch c {
	case Retirement:
		return "Retirement"
	case Insurance:
		return "Insurance"
	case TaxableInvestment:
		return "Taxable Investment"
	case AccountsForMinors:
		return "Accounts for Minors"
	case BusinessAndTrustAccounts:
		return "Business and Trust Accounts"
	case CheckingAndSavings:
		return "Checking and Savings Accounts"
	case LegalDocuments:
		return "Important Legal Documents"
	default:
		return ""
	}
}
