package category

import "fmt"

// Decision is the three-valued outcome of the probate-bypass rule. It keeps
// the legacy wire contract (JSON true / false / "N/A") out of the type
// system: callers branch on the enum, only MarshalJSON produces the sentinel.
type Decision int

const (
	DoesNotBypass Decision = iota
	Bypasses
	NotApplicable
)

func (d Decision) String() string {
	switch d {
	case Bypasses:
		return "true"
	case NotApplicable:
		return "N/A"
	default:
		return "false"
	}
}

// MarshalJSON emits the wire form: a bare boolean, or the literal string
// "N/A" for categories where probate has no meaning.
func (d Decision) MarshalJSON() ([]byte, error) {
	switch d {
	case Bypasses:
		return []byte("true"), nil
	case NotApplicable:
		return []byte(`"N/A"`), nil
	case DoesNotBypass:
		return []byte("false"), nil
	default:
		return nil, fmt.Errorf("category: invalid probate decision %d", int(d))
	}
}

func decision(b bool) Decision {
	if b {
		return Bypasses
	}
	return DoesNotBypass
}

// Probate decides whether an asset passes to heirs outside probate court.
//
// "Other" registrations short-circuit on the beneficiary answer alone,
// independent of category. A registration not found in the category's option
// list never bypasses. Everything else branches per category: retirement,
// insurance, and minors accounts follow the beneficiary answer; business and
// trust assets always bypass; legal documents have no probate concept at all;
// taxable investment and checking/savings defer to the option's static flag.
func Probate(c Category, registration string, hasBeneficiary bool) Decision {
	if registration == OtherOption {
		return decision(hasBeneficiary)
	}

	opt, ok := FindOption(c, registration)
	if !ok {
		return DoesNotBypass
	}

	switch c {
	case Retirement, Insurance, AccountsForMinors:
		return decision(hasBeneficiary)
	case BusinessAndTrustAccounts:
		return Bypasses
	case LegalDocuments:
		return NotApplicable
	case TaxableInvestment, CheckingAndSavings:
		return decision(opt.BypassProbate)
	default:
		return DoesNotBypass
	}
}
