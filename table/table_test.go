package table

import (
	"bytes"
	"testing"

	"github.com/jung-kurt/gofpdf"
)

func newTestPDF() *gofpdf.Fpdf {
	pdf := gofpdf.New("P", "pt", "Letter", "")
	pdf.SetMargins(72, 72, 72)
	pdf.SetAutoPageBreak(true, 72)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "", 10)
	return pdf
}

func TestRenderBasicTable(t *testing.T) {
	pdf := newTestPDF()

	tbl := New(pdf).SetColumnWidths(252, 144)
	hr := tbl.AddHeaderRow()
	hr.AddCell("Category")
	hr.AddCell("Amount")
	tbl.AddRow().AddCell("Roof Repair")
	tbl.AddRow().AddCell("Interior Repair")

	if err := tbl.Render(); err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		t.Fatalf("Output failed: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF")) {
		t.Fatal("output does not start with %PDF header")
	}
}

func TestHeaderRowInsertedBeforeData(t *testing.T) {
	pdf := newTestPDF()

	tbl := New(pdf).SetColumnWidths(100, 100)
	tbl.AddRow().AddCell("data")
	tbl.AddHeaderRow().AddCell("header")

	if !tbl.rows[0].isHeader {
		t.Fatal("expected header row to be moved before data rows")
	}
	if tbl.rows[1].isHeader {
		t.Fatal("expected second row to be a data row")
	}
}

func TestHeightGrowsWithRows(t *testing.T) {
	pdf := newTestPDF()

	tbl := New(pdf).SetColumnWidths(252, 144)
	tbl.AddRow().AddCell("one")
	h1 := tbl.Height()

	tbl.AddRow().AddCell("two")
	h2 := tbl.Height()

	if h2 <= h1 {
		t.Fatalf("expected height to grow, got %f then %f", h1, h2)
	}
}

func TestHeightAccountsForWrappedText(t *testing.T) {
	pdf := newTestPDF()

	long := "A long cell value that certainly wraps across several lines " +
		"when confined to a narrow fixed-width column in the details table."

	narrow := New(pdf).SetColumnWidths(80)
	narrow.AddRow().AddCell(long)

	wide := New(pdf).SetColumnWidths(400)
	wide.AddRow().AddCell(long)

	if narrow.Height() <= wide.Height() {
		t.Fatalf("expected narrow column to be taller: %f vs %f",
			narrow.Height(), wide.Height())
	}
}

func TestRenderBreaksPageBetweenRows(t *testing.T) {
	pdf := newTestPDF()

	tbl := New(pdf).SetColumnWidths(252, 144)
	hr := tbl.AddHeaderRow()
	hr.AddCell("Category")
	hr.AddCell("Amount")
	for i := 0; i < 120; i++ {
		r := tbl.AddRow()
		r.AddCell("Row item")
		r.AddCell("$1.00")
	}

	if err := tbl.Render(); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if pdf.PageNo() < 2 {
		t.Fatalf("expected table to spill onto a second page, got %d pages", pdf.PageNo())
	}
}

func TestCellStyleOverridesRowStyle(t *testing.T) {
	pdf := newTestPDF()

	tbl := New(pdf).SetColumnWidths(100)
	row := tbl.AddRow().SetStyle(CellStyle{Align: "L"})
	cell := row.AddCell("x").SetAlign("R")

	resolved := tbl.resolveCellStyle(cell, row)
	if resolved.Align != "R" {
		t.Fatalf("expected cell alignment to win, got %q", resolved.Align)
	}
}

func TestHeaderStyleApplied(t *testing.T) {
	pdf := newTestPDF()

	shade := RGBColor{R: 224, G: 224, B: 224}
	tbl := New(pdf).SetColumnWidths(100)
	tbl.SetStyle(TableStyle{
		HeaderStyle: &CellStyle{FillColor: &shade},
	})
	hr := tbl.AddHeaderRow()
	cell := hr.AddCell("Category")

	resolved := tbl.resolveCellStyle(cell, hr)
	if resolved.FillColor == nil || *resolved.FillColor != shade {
		t.Fatal("expected header fill color from table style")
	}

	data := tbl.AddRow()
	dataCell := data.AddCell("value")
	if got := tbl.resolveCellStyle(dataCell, data); got.FillColor != nil {
		t.Fatal("expected data rows to stay unshaded")
	}
}
