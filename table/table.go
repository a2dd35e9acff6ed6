package table

import (
	"github.com/jung-kurt/gofpdf"
)

// Table is a fixed-width table builder bound to a gofpdf document.
//
// Column widths are explicit, not content-driven: callers set them with
// SetColumnWidths before adding rows. Rows wrap text within their
// column width and grow vertically to fit.
type Table struct {
	pdf    *gofpdf.Fpdf
	widths []float64
	rows   []*Row
	style  TableStyle
}

// New creates a new Table associated with the given PDF document.
func New(pdf *gofpdf.Fpdf) *Table {
	return &Table{
		pdf: pdf,
		style: TableStyle{
			CellPadding: UniformPadding(2),
		},
	}
}

// SetColumnWidths sets the fixed column widths, in document units.
func (t *Table) SetColumnWidths(widths ...float64) *Table {
	t.widths = widths
	return t
}

// SetStyle sets the table-wide style.
func (t *Table) SetStyle(s TableStyle) *Table {
	if s.CellPadding == (Padding{}) {
		s.CellPadding = t.style.CellPadding
	}
	t.style = s
	return t
}

// AddRow adds a new data row to the table and returns it for chaining.
func (t *Table) AddRow() *Row {
	r := &Row{}
	t.rows = append(t.rows, r)
	return r
}

// AddHeaderRow adds a header row. Header rows take the table's header
// style and are repeated at the top of each page the table spills onto.
func (t *Table) AddHeaderRow() *Row {
	r := &Row{isHeader: true}
	insertIdx := 0
	for i, existing := range t.rows {
		if !existing.isHeader {
			insertIdx = i
			break
		}
		insertIdx = i + 1
	}
	t.rows = append(t.rows, nil)
	copy(t.rows[insertIdx+1:], t.rows[insertIdx:])
	t.rows[insertIdx] = r
	return r
}

// Height returns the total vertical space the table needs, assuming no
// page break. Callers use it to keep a table together on one page.
func (t *Table) Height() float64 {
	total := 0.0
	for _, r := range t.rows {
		total += t.rowHeight(r)
	}
	return total
}

// Render draws the table at the current cursor position, breaking to a
// new page between rows when a row would cross the bottom margin.
func (t *Table) Render() error {
	if t.pdf.Err() {
		return t.pdf.Error()
	}

	startX := t.pdf.GetX()

	var headerRows, bodyRows []*Row
	for _, r := range t.rows {
		if r.isHeader {
			headerRows = append(headerRows, r)
		} else {
			bodyRows = append(bodyRows, r)
		}
	}

	for _, r := range headerRows {
		t.renderRow(r, startX)
	}

	_, pageH := t.pdf.GetPageSize()
	_, _, _, bMargin := t.pdf.GetMargins()

	for _, r := range bodyRows {
		if t.pdf.GetY()+t.rowHeight(r) > pageH-bMargin {
			t.pdf.AddPage()
			t.pdf.SetX(startX)
			for _, hr := range headerRows {
				t.renderRow(hr, startX)
			}
		}
		t.renderRow(r, startX)
	}

	return t.pdf.Error()
}

// rowHeight computes the height needed for a row from wrapped cell
// text, measured with the current document font.
func (t *Table) rowHeight(r *Row) float64 {
	maxH := 5.0
	padding := t.style.CellPadding

	for i, cell := range r.cells {
		if i >= len(t.widths) {
			break
		}

		contentW := t.widths[i] - padding.Left - padding.Right
		if contentW < 1 {
			contentW = 1
		}

		lines := t.pdf.SplitLines([]byte(cell.text), contentW)
		_, fontSize := t.pdf.GetFontSize()
		cellH := float64(len(lines))*fontSize*1.5 + padding.Top + padding.Bottom
		if cellH > maxH {
			maxH = cellH
		}
	}

	return maxH
}

// renderRow renders a single row at x, leaving the cursor on the next row.
func (t *Table) renderRow(r *Row, startX float64) {
	rowH := t.rowHeight(r)
	padding := t.style.CellPadding

	t.pdf.SetX(startX)
	y := t.pdf.GetY()
	x := startX

	for i, cell := range r.cells {
		if i >= len(t.widths) {
			break
		}
		cellW := t.widths[i]
		style := t.resolveCellStyle(cell, r)

		if style.FillColor != nil {
			t.pdf.SetFillColor(style.FillColor.R, style.FillColor.G, style.FillColor.B)
			t.pdf.Rect(x, y, cellW, rowH, "F")
		}

		if t.style.Border != nil {
			bc := t.style.Border.Color
			t.pdf.SetDrawColor(bc.R, bc.G, bc.B)
			if t.style.Border.Width > 0 {
				t.pdf.SetLineWidth(t.style.Border.Width)
			}
			t.pdf.Rect(x, y, cellW, rowH, "D")
		}

		if style.TextColor != nil {
			t.pdf.SetTextColor(style.TextColor.R, style.TextColor.G, style.TextColor.B)
		}
		t.applyFont(style)

		align := "L"
		if style.Align != "" {
			align = style.Align
		}

		pad := padding
		if style.Padding != nil {
			pad = *style.Padding
		}

		contentW := cellW - pad.Left - pad.Right
		t.pdf.SetXY(x+pad.Left, y+pad.Top)
		_, lineH := t.pdf.GetFontSize()
		t.pdf.MultiCell(contentW, lineH*1.5, cell.text, "", align, false)

		x += cellW
		t.pdf.SetXY(x, y)
	}

	t.pdf.SetDrawColor(0, 0, 0)
	t.pdf.SetTextColor(0, 0, 0)
	t.pdf.SetLineWidth(0.2)

	t.pdf.SetXY(startX, y+rowH)
}

func (t *Table) applyFont(style CellStyle) {
	f := t.style.CellFont
	if style.Font != nil {
		f = style.Font
	}
	if f != nil {
		t.pdf.SetFont(f.Family, f.Style, f.Size)
	}
}

// resolveCellStyle merges table, header, row, and cell-level styles,
// later levels taking priority.
func (t *Table) resolveCellStyle(cell *Cell, row *Row) CellStyle {
	var result CellStyle

	if t.style.CellFont != nil {
		result.Font = t.style.CellFont
	}
	if row.isHeader && t.style.HeaderStyle != nil {
		mergeStyle(&result, t.style.HeaderStyle)
	}
	if row.style != nil {
		mergeStyle(&result, row.style)
	}
	if cell.style != nil {
		mergeStyle(&result, cell.style)
	}

	return result
}

// mergeStyle copies set fields from src to dst.
func mergeStyle(dst, src *CellStyle) {
	if src.FillColor != nil {
		dst.FillColor = src.FillColor
	}
	if src.TextColor != nil {
		dst.TextColor = src.TextColor
	}
	if src.Font != nil {
		dst.Font = src.Font
	}
	if src.Align != "" {
		dst.Align = src.Align
	}
	if src.Padding != nil {
		dst.Padding = src.Padding
	}
}
