package report

import (
	"bytes"
	"fmt"

	"github.com/ledrew1407/report-generator/layout"
	"github.com/ledrew1407/report-generator/reserves"
)

// ContentType identifies the produced artifact.
const ContentType = "application/pdf"

// Artifact is the finished paginated document. Once produced it is
// handed to the delivery boundary, which owns it from then on.
type Artifact struct {
	Bytes    []byte
	Title    string
	Filename string
}

// Generator runs the assembly pipeline: parse reserves, compose
// blocks, and drive the layout engine. It is immutable and safe for
// concurrent use.
type Generator struct {
	engine *layout.Engine
	assets layout.Assets
}

// NewGenerator creates a Generator rendering with the given engine and
// startup assets.
func NewGenerator(engine *layout.Engine, assets layout.Assets) *Generator {
	return &Generator{engine: engine, assets: assets}
}

// Generate produces the finished artifact for one report. It either
// returns a complete document or an error, never a partial artifact.
func (g *Generator) Generate(data Data) (*Artifact, error) {
	ledger := reserves.Parse(data.Get(FieldReservesInput))
	blocks := Build(data, ledger, g.assets.CompanyLogo)

	title := Title(data)
	var buf bytes.Buffer
	if err := g.engine.Render(&buf, title, blocks); err != nil {
		return nil, fmt.Errorf("report: generating %q: %w", title, err)
	}

	return &Artifact{
		Bytes:    buf.Bytes(),
		Title:    title,
		Filename: Filename(data),
	}, nil
}
