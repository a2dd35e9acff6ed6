package layout

import (
	"github.com/ledrew1407/report-generator/table"
)

// Block is one indivisible visual unit placed onto the paginated flow.
// The engine borrows blocks read-only; it never mutates them.
type Block interface {
	block()
}

// Heading is a section or title heading. Level 1 is the document
// title; level 2 is a section heading.
type Heading struct {
	Text  string
	Level int
	Align string // "L", "C", "R"; empty means left
}

func (Heading) block() {}

// ParagraphStyle selects one of the fixed text treatments.
type ParagraphStyle int

const (
	// Body is the default 10pt black text.
	Body ParagraphStyle = iota
	// Disclaimer is the smaller, muted, centered trailing-page text.
	Disclaimer
	// Notice is italic text used for inline resource-failure messages.
	Notice
)

// Paragraph is a wrapped run of text in one of the fixed styles.
type Paragraph struct {
	Text  string
	Style ParagraphStyle
}

func (Paragraph) block() {}

// TableCell is one cell of a table block.
type TableCell struct {
	Text  string
	Style *table.CellStyle // nil means inherit from row/table
}

// TableRow is one row of a table block.
type TableRow struct {
	Cells  []TableCell
	Style  *table.CellStyle
	Header bool
}

// Table is a fixed-column-width table. When KeepTogether is set the
// engine never splits it across a page boundary: if it does not fit in
// the remaining space the whole table moves to the next page.
type Table struct {
	Widths       []float64
	Rows         []TableRow
	Style        table.TableStyle
	KeepTogether bool
}

func (Table) block() {}

// Image places an image file at the given size. A missing or
// unreadable file degrades to an inline notice, never an error.
type Image struct {
	Path   string
	Width  float64
	Height float64
	Align  string // "L", "C", "R"; empty means left
}

func (Image) block() {}

// Barcode places a Code 128 barcode of the given text.
type Barcode struct {
	Code   string
	Width  float64
	Height float64
}

func (Barcode) block() {}

// PageBreak unconditionally starts a new page.
type PageBreak struct{}

func (PageBreak) block() {}

// Spacer consumes fixed vertical space.
type Spacer struct {
	Height float64
}

func (Spacer) block() {}
