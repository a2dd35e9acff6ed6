package report

import (
	"strings"

	"github.com/ledrew1407/report-generator/layout"
	"github.com/ledrew1407/report-generator/reserves"
	"github.com/ledrew1407/report-generator/table"
)

// Geometry in points.
const (
	sectionGap   = 14.4 // 0.2 in
	logoGap      = 7.2  // 0.1 in
	reservesGap  = 36.0 // 0.5 in
	logoWidth    = 144.0
	logoHeight   = 72.0
	barcodeWidth = 180.0
	barcodeHigh  = 36.0
)

var (
	detailWidths  = []float64{122.4, 309.6}
	reserveWidths = []float64{252, 144}

	boldLabel = table.FontSpec{Family: "Helvetica", Style: "B", Size: 10}

	headerShade = table.RGBColor{R: 224, G: 224, B: 224}
	totalShade  = table.RGBColor{R: 240, G: 240, B: 240}
	gridColor   = table.RGBColor{R: 204, G: 204, B: 204}
)

// Build composes the ordered block sequence for one report. The
// section order is fixed: logo, title, details table, Cause of Loss,
// Resulting Damages, Scope of Work, Recommendations, Reserves, then
// the disclaimer on its own trailing page. logoPath may be empty.
func Build(data Data, ledger reserves.Ledger, logoPath string) []layout.Block {
	var blocks []layout.Block

	if logoPath != "" {
		blocks = append(blocks,
			layout.Image{Path: logoPath, Width: logoWidth, Height: logoHeight, Align: "C"},
			layout.Spacer{Height: logoGap},
		)
	}

	blocks = append(blocks,
		layout.Heading{Text: data.Get(FieldReportTitle), Level: 1, Align: "C"},
		layout.Spacer{Height: sectionGap},
		detailsTable(data),
	)

	if claim := data.Get(FieldClaimNumber); claim != "" {
		blocks = append(blocks,
			layout.Spacer{Height: logoGap},
			layout.Barcode{Code: claim, Width: barcodeWidth, Height: barcodeHigh},
		)
	}
	blocks = append(blocks, layout.Spacer{Height: sectionGap})

	blocks = appendNarrative(blocks, data.Get(FieldCauseHeading), data.Get(FieldCause))
	blocks = appendNarrative(blocks, data.Get(FieldDamagesHeading), data.Get(FieldDamages))
	blocks = appendLineList(blocks, data.Get(FieldScopeHeading), data.Get(FieldScope))
	blocks = appendLineList(blocks, data.Get(FieldRecsHeading), data.Get(FieldRecs))

	blocks = append(blocks,
		layout.Heading{Text: data.Get(FieldReservesHeading), Level: 2},
		reservesTable(ledger),
		layout.Spacer{Height: reservesGap},
		layout.PageBreak{},
		layout.Heading{Text: data.Get(FieldDisclaimerHeading), Level: 2},
		layout.Paragraph{Text: data.Get(FieldDisclaimer), Style: layout.Disclaimer},
	)

	return blocks
}

// appendNarrative adds a heading and a single body paragraph.
func appendNarrative(blocks []layout.Block, heading, body string) []layout.Block {
	return append(blocks,
		layout.Heading{Text: heading, Level: 2},
		layout.Paragraph{Text: body},
		layout.Spacer{Height: sectionGap},
	)
}

// appendLineList adds a heading and one paragraph per non-blank input
// line, preserving line order.
func appendLineList(blocks []layout.Block, heading, body string) []layout.Block {
	blocks = append(blocks, layout.Heading{Text: heading, Level: 2})
	for _, line := range splitLines(body) {
		blocks = append(blocks, layout.Paragraph{Text: line})
	}
	return append(blocks, layout.Spacer{Height: sectionGap})
}

// splitLines splits on line breaks, trims, and drops blank lines.
func splitLines(s string) []string {
	var out []string
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}

// detailsTable builds the two-column identity table. It renders as a
// keep-together unit so it never splits across a page boundary.
func detailsTable(data Data) layout.Table {
	rows := []struct {
		label string
		field string
	}{
		{"Inspector:", FieldInspectorName},
		{"Inspector Address:", FieldInspectorAddress},
		{"Adjuster Name:", FieldAdjusterName},
		{"Adjuster Number:", FieldAdjusterNumber},
		{"Adjuster Email:", FieldAdjusterEmail},
		{"Report Date:", FieldReportDate},
		{"Claim Number:", FieldClaimNumber},
		{"Year Built:", FieldYearBuilt},
	}

	label := boldLabel
	t := layout.Table{
		Widths:       detailWidths,
		KeepTogether: true,
		Style: table.TableStyle{
			CellPadding: table.Padding{Bottom: 5},
		},
	}
	for _, r := range rows {
		t.Rows = append(t.Rows, layout.TableRow{Cells: []layout.TableCell{
			{Text: r.label, Style: &table.CellStyle{Font: &label}},
			{Text: data.Get(r.field)},
		}})
	}
	return t
}

// reservesTable builds the ledger table: shaded bold header row, one
// row per ledger line in input order, and a shaded bold total row.
func reservesTable(ledger reserves.Ledger) layout.Table {
	bold := boldLabel
	pad := table.Padding{Top: 8, Bottom: 8, Left: 4, Right: 4}

	t := layout.Table{
		Widths: reserveWidths,
		Style: table.TableStyle{
			Border: &table.BorderStyle{Width: 0.5, Color: gridColor},
			HeaderStyle: &table.CellStyle{
				FillColor: &headerShade,
				Font:      &bold,
				Padding:   &pad,
			},
			CellPadding: table.UniformPadding(4),
		},
	}

	t.Rows = append(t.Rows, layout.TableRow{
		Header: true,
		Cells: []layout.TableCell{
			{Text: "Category"},
			{Text: "Amount", Style: &table.CellStyle{Align: "R"}},
		},
	})

	for _, line := range ledger.Lines {
		amount := ""
		switch l := line.(type) {
		case reserves.ParsedLine:
			amount = reserves.FormatUSD(l.Amount)
		case reserves.UnparsedLine:
			amount = l.Marker()
		}
		t.Rows = append(t.Rows, layout.TableRow{Cells: []layout.TableCell{
			{Text: line.Category()},
			{Text: amount, Style: &table.CellStyle{Align: "R"}},
		}})
	}

	t.Rows = append(t.Rows, layout.TableRow{
		Style: &table.CellStyle{
			FillColor: &totalShade,
			Font:      &bold,
			Padding:   &pad,
		},
		Cells: []layout.TableCell{
			{Text: "Total Estimated Reserves"},
			{Text: reserves.FormatUSD(ledger.Total), Style: &table.CellStyle{Align: "R"}},
		},
	})

	return t
}

// Title derives the logical document title shown in the page
// decoration.
func Title(data Data) string {
	claim := data.Get(FieldClaimNumber)
	if claim == "" {
		claim = "N/A"
	}
	return "Claim #" + claim
}

// Filename derives the suggested download filename.
func Filename(data Data) string {
	claim := data.Get(FieldClaimNumber)
	if claim == "" {
		claim = "NoClaim"
	}
	return "Inspection_Report_" + claim + ".pdf"
}
