package schema

import (
	"strconv"
	"strings"
)

// FormatPhone progressively groups digits into the XXX-XXX-XXXX display form.
// Non-digits are dropped; anything past ten digits is truncated.
func FormatPhone(raw string) string {
	digits := onlyDigits(raw)
	switch {
	case len(digits) == 0:
		return ""
	case len(digits) <= 3:
		return digits
	case len(digits) <= 6:
		return digits[:3] + "-" + digits[3:]
	default:
		if len(digits) > 10 {
			digits = digits[:10]
		}
		return digits[:3] + "-" + digits[3:6] + "-" + digits[6:]
	}
}

// FormatCurrency renders a raw numeric string as a dollar amount with
// thousands separators and two decimals ("1234.5" -> "$1,234.50"). Values
// that do not parse render as the empty string, matching the clear-on-blur
// behaviour of the original control.
func FormatCurrency(raw string) string {
	amount, err := strconv.ParseFloat(stripCurrency(raw), 64)
	if err != nil {
		return ""
	}

	cents := strconv.FormatFloat(amount, 'f', 2, 64)
	whole, frac, _ := strings.Cut(cents, ".")

	var b strings.Builder
	b.WriteByte('$')
	for i, digit := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(digit)
	}
	b.WriteByte('.')
	b.WriteString(frac)
	return b.String()
}

// stripCurrency reduces a formatted display string back to its raw numeric
// form. Already-raw values pass through unchanged.
func stripCurrency(display string) string {
	return strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == '.' {
			return r
		}
		return -1
	}, display)
}

// MaskAccountNumber hides all but the last four characters behind asterisks.
// Four characters or fewer come back untouched.
func MaskAccountNumber(value string) string {
	if len(value) <= 4 {
		return value
	}
	return strings.Repeat("*", len(value)-4) + value[len(value)-4:]
}

func onlyDigits(raw string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, raw)
}
