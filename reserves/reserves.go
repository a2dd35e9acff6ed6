// Package reserves parses the free-text reserves ledger submitted with
// an inspection report.
//
// Input is one "Category: Amount" entry per line. Parsing is tolerant:
// a malformed line never fails the ledger, it is carried through as an
// unparsed entry and rendered with an invalid marker, so one bad line
// cannot block report generation.
package reserves

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Line is one entry of the reserves ledger. Exactly one concrete type
// applies per non-blank input line.
type Line interface {
	line()

	// Category returns the category text of the entry.
	Category() string
}

// ParsedLine is a ledger entry whose amount parsed as a decimal.
type ParsedLine struct {
	Name   string
	Amount decimal.Decimal
}

func (ParsedLine) line() {}

// Category returns the category text of the entry.
func (l ParsedLine) Category() string { return l.Name }

// UnparsedLine is a ledger entry that could not be parsed. Separated
// reports whether the input line contained a category separator; when
// it did, BadAmount holds the text that failed to parse as a number.
type UnparsedLine struct {
	Name      string
	BadAmount string
	Separated bool
}

func (UnparsedLine) line() {}

// Category returns the category text of the entry.
func (l UnparsedLine) Category() string { return l.Name }

// Marker returns the literal text rendered in place of an amount.
func (l UnparsedLine) Marker() string {
	if l.Separated {
		return "Invalid Amount (N/A)"
	}
	return "N/A"
}

// Ledger is the parsed reserves ledger: every non-blank input line in
// input order, plus the grand total over the parsed lines only.
type Ledger struct {
	Lines []Line
	Total decimal.Decimal
}

// Parse converts raw multi-line ledger text into a Ledger.
//
// Blank lines are ignored. Each remaining line is split on the first
// ':'; the right-hand side has currency symbols and thousands
// separators stripped and is parsed as a decimal. A line with no
// separator, or with a non-numeric amount, becomes an UnparsedLine and
// contributes nothing to the total. Parse never fails.
func Parse(raw string) Ledger {
	ledger := Ledger{Total: decimal.Zero}

	for _, text := range strings.Split(raw, "\n") {
		if strings.TrimSpace(text) == "" {
			continue
		}

		category, amountText, separated := strings.Cut(text, ":")
		category = strings.TrimSpace(category)
		if !separated {
			ledger.Lines = append(ledger.Lines, UnparsedLine{Name: category})
			continue
		}

		amountText = strings.TrimSpace(amountText)
		cleaned := strings.NewReplacer("$", "", ",", "").Replace(amountText)

		amount, err := decimal.NewFromString(cleaned)
		if err != nil {
			ledger.Lines = append(ledger.Lines, UnparsedLine{
				Name:      category,
				BadAmount: amountText,
				Separated: true,
			})
			continue
		}

		ledger.Lines = append(ledger.Lines, ParsedLine{Name: category, Amount: amount})
		ledger.Total = ledger.Total.Add(amount)
	}

	return ledger
}

// FormatUSD renders a decimal amount as a dollar string with two
// fractional digits and thousands separators, e.g. $18,500.00.
func FormatUSD(d decimal.Decimal) string {
	s := d.Abs().StringFixed(2)

	intPart, fracPart, _ := strings.Cut(s, ".")
	for i := len(intPart) - 3; i > 0; i -= 3 {
		intPart = intPart[:i] + "," + intPart[i:]
	}

	sign := ""
	if d.IsNegative() {
		sign = "-"
	}
	return sign + "$" + intPart + "." + fracPart
}
