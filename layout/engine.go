// Package layout lays out an ordered sequence of blocks onto US-Letter
// pages, with automatic pagination and per-page decoration.
//
// The engine is a pure consumer: it borrows a block sequence, renders
// the whole document, and only then writes the finished bytes. Nothing
// is streamed, so a failed render never leaves a partial artifact.
package layout

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"io"
	"os"
	"sync"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/code128"
	"github.com/jung-kurt/gofpdf"
	"github.com/jung-kurt/gofpdf/contrib/gofpdi"

	"github.com/ledrew1407/report-generator/table"
)

const (
	inch        = 72.0
	pageMargin  = inch
	decorInset  = 0.75 * inch
	bodySize    = 10.0
	mutedSize   = 8.0
	lineSpacing = 1.4
)

var headingSizes = []float64{24, 16, 12}

var headingColors = []table.RGBColor{
	{R: 0, G: 86, B: 179},
	{R: 0, G: 64, B: 133},
	{R: 0, G: 64, B: 133},
}

// DecorateFunc draws the fixed per-page decoration. It runs at the
// start of every page with the 1-based page number and document title.
type DecorateFunc func(pdf *gofpdf.Fpdf, pageNo int, title string)

// Engine paginates block sequences onto fixed-geometry pages.
// An Engine is immutable after construction and safe for concurrent
// use; every render works on its own document.
type Engine struct {
	company  string
	assets   Assets
	decorate DecorateFunc
}

// NewEngine creates an Engine with the given options.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		company: "Professional Inspection Services Inc.",
		assets:  Assets{FontFamily: builtinFamily},
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.decorate == nil {
		e.decorate = e.stampPage
	}
	return e
}

// Render lays the blocks out onto pages and writes the finished PDF to
// w. The title appears in the page decoration and document metadata.
// Nothing is written to w unless the whole document rendered.
func (e *Engine) Render(w io.Writer, title string, blocks []Block) error {
	pdf, err := e.render(title, blocks)
	if err != nil {
		return err
	}
	return pdf.Output(w)
}

func (e *Engine) render(title string, blocks []Block) (*gofpdf.Fpdf, error) {
	pdf := gofpdf.New("P", "pt", "Letter", "")
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(true, pageMargin)
	pdf.SetTitle(title, true)

	if e.assets.FontPath != "" {
		pdf.AddUTF8Font(e.assets.FontFamily, "", e.assets.FontPath)
	}

	letterhead := 0
	if e.assets.Letterhead != "" {
		letterhead = importLetterhead(pdf, e.assets.Letterhead)
	}

	pdf.SetHeaderFunc(func() {
		if letterhead != 0 {
			stampLetterhead(pdf, letterhead)
		}
		e.decorate(pdf, pdf.PageNo(), title)
	})

	pdf.AddPage()
	e.setBodyFont(pdf, bodySize)

	for i, b := range blocks {
		if err := e.renderBlock(pdf, b); err != nil {
			return nil, fmt.Errorf("layout: block %d: %w", i+1, err)
		}
	}

	if pdf.Err() {
		return nil, newRenderError("render", pdf.Error())
	}
	return pdf, nil
}

func (e *Engine) renderBlock(pdf *gofpdf.Fpdf, b Block) error {
	switch blk := b.(type) {
	case Heading:
		e.renderHeading(pdf, blk)
	case Paragraph:
		e.renderParagraph(pdf, blk)
	case Table:
		return e.renderTable(pdf, blk)
	case Image:
		e.renderImage(pdf, blk)
	case Barcode:
		e.renderBarcode(pdf, blk)
	case PageBreak:
		pdf.AddPage()
	case Spacer:
		pdf.Ln(blk.Height)
	default:
		return fmt.Errorf("%w %T", ErrUnknownBlock, b)
	}
	return nil
}

func (e *Engine) renderHeading(pdf *gofpdf.Fpdf, blk Heading) {
	level := blk.Level
	if level < 1 {
		level = 1
	}
	if level > len(headingSizes) {
		level = len(headingSizes)
	}
	size := headingSizes[level-1]
	color := headingColors[level-1]

	pdf.SetFont(builtinFamily, "B", size)
	pdf.SetTextColor(color.R, color.G, color.B)
	pdf.Ln(size * 0.4)

	align := blk.Align
	if align == "" {
		align = "L"
	}

	pdf.MultiCell(e.contentWidth(pdf), size*lineSpacing, blk.Text, "", align, false)
	pdf.Ln(size * 0.2)

	e.setBodyFont(pdf, bodySize)
	pdf.SetTextColor(0, 0, 0)
}

func (e *Engine) renderParagraph(pdf *gofpdf.Fpdf, blk Paragraph) {
	size := bodySize
	align := "L"

	switch blk.Style {
	case Disclaimer:
		size = mutedSize
		align = "C"
		e.setBodyFont(pdf, size)
		pdf.SetTextColor(85, 85, 85)
	case Notice:
		pdf.SetFont(builtinFamily, "I", size)
	default:
		e.setBodyFont(pdf, size)
	}

	pdf.MultiCell(e.contentWidth(pdf), size*lineSpacing, blk.Text, "", align, false)
	pdf.Ln(size * 0.3)

	e.setBodyFont(pdf, bodySize)
	pdf.SetTextColor(0, 0, 0)
}

func (e *Engine) renderTable(pdf *gofpdf.Fpdf, blk Table) error {
	style := blk.Style
	if style.CellFont == nil {
		style.CellFont = &table.FontSpec{Family: e.assets.FontFamily, Size: bodySize}
	}

	t := table.New(pdf).SetColumnWidths(blk.Widths...).SetStyle(style)
	for _, row := range blk.Rows {
		var r *table.Row
		if row.Header {
			r = t.AddHeaderRow()
		} else {
			r = t.AddRow()
		}
		if row.Style != nil {
			r.SetStyle(*row.Style)
		}
		for _, c := range row.Cells {
			cell := r.AddCell(c.Text)
			if c.Style != nil {
				cell.SetStyle(*c.Style)
			}
		}
	}

	e.setBodyFont(pdf, bodySize)

	if blk.KeepTogether {
		_, pageH := pdf.GetPageSize()
		_, _, _, bMargin := pdf.GetMargins()
		if pdf.GetY()+t.Height() > pageH-bMargin {
			pdf.AddPage()
		}
	}

	if err := t.Render(); err != nil {
		return newRenderError("table", err)
	}
	return nil
}

func (e *Engine) renderImage(pdf *gofpdf.Fpdf, blk Image) {
	if err := validateImage(blk.Path); err != nil {
		e.renderParagraph(pdf, Paragraph{
			Text:  fmt.Sprintf("Error loading image: %v", err),
			Style: Notice,
		})
		return
	}

	y := e.reserveHeight(pdf, blk.Height)
	x := e.alignX(pdf, blk.Width, blk.Align)

	pdf.ImageOptions(blk.Path, x, y, blk.Width, blk.Height, false, gofpdf.ImageOptions{}, 0, "")
	pdf.SetY(y + blk.Height)
}

func (e *Engine) renderBarcode(pdf *gofpdf.Fpdf, blk Barcode) {
	img, err := buildBarcode(blk.Code)
	if err != nil {
		e.renderParagraph(pdf, Paragraph{
			Text:  fmt.Sprintf("Error rendering barcode: %v", err),
			Style: Notice,
		})
		return
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		e.renderParagraph(pdf, Paragraph{
			Text:  fmt.Sprintf("Error rendering barcode: %v", err),
			Style: Notice,
		})
		return
	}

	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	name := "code128-" + blk.Code
	pdf.RegisterImageOptionsReader(name, opts, &buf)

	y := e.reserveHeight(pdf, blk.Height)
	x := e.alignX(pdf, blk.Width, "L")

	pdf.ImageOptions(name, x, y, blk.Width, blk.Height, false, opts, 0, "")
	pdf.SetY(y + blk.Height)
}

// stampPage is the default page decoration: company name top-left,
// document title top-right, page number bottom-center, all at fixed
// offsets from the page edges.
func (e *Engine) stampPage(pdf *gofpdf.Fpdf, pageNo int, title string) {
	pageW, pageH := pdf.GetPageSize()

	pdf.SetFont(builtinFamily, "", 9)
	pdf.SetTextColor(51, 51, 51)

	pdf.Text(inch, decorInset, e.company+" - Inspection Report")
	pdf.Text(pageW-2*inch, decorInset, title)

	footer := fmt.Sprintf("Page %d", pageNo)
	pdf.Text(pageW/2-pdf.GetStringWidth(footer)/2, pageH-decorInset, footer)

	pdf.SetTextColor(0, 0, 0)
}

// setBodyFont switches to the regular body face, which is the custom
// font family when one was loaded.
func (e *Engine) setBodyFont(pdf *gofpdf.Fpdf, size float64) {
	pdf.SetFont(e.assets.FontFamily, "", size)
}

func (e *Engine) contentWidth(pdf *gofpdf.Fpdf) float64 {
	pageW, _ := pdf.GetPageSize()
	lm, _, rm, _ := pdf.GetMargins()
	return pageW - lm - rm
}

// reserveHeight starts a new page when h does not fit in the remaining
// space, then returns the y position to draw at.
func (e *Engine) reserveHeight(pdf *gofpdf.Fpdf, h float64) float64 {
	_, pageH := pdf.GetPageSize()
	_, _, _, bMargin := pdf.GetMargins()
	if pdf.GetY()+h > pageH-bMargin {
		pdf.AddPage()
	}
	return pdf.GetY()
}

func (e *Engine) alignX(pdf *gofpdf.Fpdf, w float64, align string) float64 {
	lm, _, _, _ := pdf.GetMargins()
	switch align {
	case "C":
		return lm + (e.contentWidth(pdf)-w)/2
	case "R":
		return lm + e.contentWidth(pdf) - w
	default:
		return lm
	}
}

// validateImage confirms the file exists and decodes as an image, so a
// bad path degrades to a notice instead of poisoning the document.
func validateImage(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, _, err := image.DecodeConfig(f); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

// buildBarcode encodes text as a Code 128 barcode image.
func buildBarcode(code string) (image.Image, error) {
	bc, err := code128.Encode(code)
	if err != nil {
		return nil, err
	}
	return barcode.Scale(bc, 400, 60)
}

// The gofpdi contrib importer keeps package-level state, so template
// import and use are serialized across concurrent renders.
var fpdiMu sync.Mutex

// importLetterhead imports page 1 of the letterhead PDF as a template.
// Returns 0 when the file cannot be imported; the document proceeds
// without an underlay.
func importLetterhead(pdf *gofpdf.Fpdf, path string) (tpl int) {
	defer func() {
		if recover() != nil {
			tpl = 0
		}
	}()
	fpdiMu.Lock()
	defer fpdiMu.Unlock()
	return gofpdi.ImportPage(pdf, path, 1, "/MediaBox")
}

func stampLetterhead(pdf *gofpdf.Fpdf, tpl int) {
	defer func() {
		_ = recover()
	}()
	fpdiMu.Lock()
	defer fpdiMu.Unlock()
	pageW, _ := pdf.GetPageSize()
	gofpdi.UseImportedTemplate(pdf, tpl, 0, 0, pageW, 0)
}
