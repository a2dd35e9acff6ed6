// Package table renders styled, fixed-width tables into a PDF document.
//
// It works directly against a gofpdf document and supports per-cell
// fill/text colors, fonts, alignment and padding, a distinct header row
// style repeated after mid-table page breaks, and height measurement so
// callers can place a whole table on one page.
package table

// RGBColor represents an RGB color value.
type RGBColor struct {
	R, G, B int
}

// FontSpec defines font properties for cell text.
type FontSpec struct {
	Family string
	Style  string  // "", "B", "I", "BI"
	Size   float64 // in points
}

// Padding defines spacing inside a cell.
type Padding struct {
	Top, Right, Bottom, Left float64
}

// UniformPadding creates a Padding with the same value on all sides.
func UniformPadding(v float64) Padding {
	return Padding{Top: v, Right: v, Bottom: v, Left: v}
}

// BorderStyle defines the appearance of cell borders.
type BorderStyle struct {
	Width float64
	Color RGBColor
}

// CellStyle defines the visual appearance of a cell.
type CellStyle struct {
	FillColor *RGBColor
	TextColor *RGBColor
	Font      *FontSpec
	Align     string // "L", "C", "R"
	Padding   *Padding
}

// TableStyle defines the overall appearance of a table.
type TableStyle struct {
	Border      *BorderStyle // nil means no cell borders
	HeaderStyle *CellStyle   // applied to header rows
	CellPadding Padding
	CellFont    *FontSpec
}
