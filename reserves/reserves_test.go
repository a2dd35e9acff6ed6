package reserves

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestParseWellFormedLines(t *testing.T) {
	ledger := Parse("Roof Repair: 15000.00\nInterior Repair: 3500.00")

	if len(ledger.Lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(ledger.Lines))
	}

	first, ok := ledger.Lines[0].(ParsedLine)
	if !ok {
		t.Fatalf("expected first line to parse, got %#v", ledger.Lines[0])
	}
	if first.Name != "Roof Repair" {
		t.Fatalf("unexpected category %q", first.Name)
	}
	if !first.Amount.Equal(decimal.RequireFromString("15000")) {
		t.Fatalf("unexpected amount %s", first.Amount)
	}

	if !ledger.Total.Equal(decimal.RequireFromString("18500")) {
		t.Fatalf("expected total 18500, got %s", ledger.Total)
	}
	if got := FormatUSD(ledger.Total); got != "$18,500.00" {
		t.Fatalf("expected $18,500.00, got %q", got)
	}
}

func TestParsePreservesInputOrder(t *testing.T) {
	ledger := Parse("B: 2\nA: 1\nC: 3")

	want := []string{"B", "A", "C"}
	for i, line := range ledger.Lines {
		if line.Category() != want[i] {
			t.Fatalf("line %d: expected category %q, got %q", i, want[i], line.Category())
		}
	}
}

func TestParseLineWithoutSeparator(t *testing.T) {
	ledger := Parse("Bad Line\nRoof: 100")

	if len(ledger.Lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(ledger.Lines))
	}

	bad, ok := ledger.Lines[0].(UnparsedLine)
	if !ok {
		t.Fatalf("expected first line to be unparsed, got %#v", ledger.Lines[0])
	}
	if bad.Name != "Bad Line" {
		t.Fatalf("unexpected category %q", bad.Name)
	}
	if bad.Marker() != "N/A" {
		t.Fatalf("expected N/A marker, got %q", bad.Marker())
	}

	if !ledger.Total.Equal(decimal.RequireFromString("100")) {
		t.Fatalf("expected total 100, got %s", ledger.Total)
	}
	if got := FormatUSD(ledger.Total); got != "$100.00" {
		t.Fatalf("expected $100.00, got %q", got)
	}
}

func TestParseNonNumericAmount(t *testing.T) {
	ledger := Parse("Roof: abc")

	if len(ledger.Lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(ledger.Lines))
	}

	bad, ok := ledger.Lines[0].(UnparsedLine)
	if !ok {
		t.Fatalf("expected unparsed line, got %#v", ledger.Lines[0])
	}
	if bad.Marker() != "Invalid Amount (N/A)" {
		t.Fatalf("unexpected marker %q", bad.Marker())
	}
	if bad.BadAmount != "abc" {
		t.Fatalf("unexpected raw amount %q", bad.BadAmount)
	}
	if !ledger.Total.IsZero() {
		t.Fatalf("expected zero total, got %s", ledger.Total)
	}
}

func TestParseEmptyInput(t *testing.T) {
	for _, raw := range []string{"", "\n\n", "   \n\t\n"} {
		ledger := Parse(raw)
		if len(ledger.Lines) != 0 {
			t.Fatalf("input %q: expected no lines, got %d", raw, len(ledger.Lines))
		}
		if got := FormatUSD(ledger.Total); got != "$0.00" {
			t.Fatalf("input %q: expected $0.00 total, got %q", raw, got)
		}
	}
}

func TestParseStripsCurrencyFormatting(t *testing.T) {
	ledger := Parse("Roof: $15,000.00")

	parsed, ok := ledger.Lines[0].(ParsedLine)
	if !ok {
		t.Fatalf("expected parsed line, got %#v", ledger.Lines[0])
	}
	if !parsed.Amount.Equal(decimal.RequireFromString("15000")) {
		t.Fatalf("unexpected amount %s", parsed.Amount)
	}
}

func TestParseLeadingColonMeansEmptyCategory(t *testing.T) {
	ledger := Parse(": 250")

	parsed, ok := ledger.Lines[0].(ParsedLine)
	if !ok {
		t.Fatalf("expected parsed line, got %#v", ledger.Lines[0])
	}
	if parsed.Name != "" {
		t.Fatalf("expected empty category, got %q", parsed.Name)
	}
	if !ledger.Total.Equal(decimal.RequireFromString("250")) {
		t.Fatalf("expected total 250, got %s", ledger.Total)
	}
}

func TestParseMixedValidAndInvalid(t *testing.T) {
	ledger := Parse("Roof: 100\nnot a ledger line\nContents: bad\nFence: 50.50")

	if len(ledger.Lines) != 4 {
		t.Fatalf("expected 4 lines, got %d", len(ledger.Lines))
	}
	if !ledger.Total.Equal(decimal.RequireFromString("150.50")) {
		t.Fatalf("expected total 150.50, got %s", ledger.Total)
	}
}

func TestFormatUSD(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"0", "$0.00"},
		{"3.5", "$3.50"},
		{"100", "$100.00"},
		{"1000", "$1,000.00"},
		{"18500", "$18,500.00"},
		{"1234567.89", "$1,234,567.89"},
		{"-2500", "-$2,500.00"},
	}
	for _, tc := range cases {
		got := FormatUSD(decimal.RequireFromString(tc.in))
		if got != tc.want {
			t.Fatalf("FormatUSD(%s): expected %q, got %q", tc.in, tc.want, got)
		}
	}
}
