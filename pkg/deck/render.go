package deck

import (
	"bytes"
	"fmt"

	ppt "github.com/VantageDataChat/GoPPT"

	"github.com/dmitrymomot/deckmail/pkg/table"
)

// MIMEType is the content type of a rendered deck.
const MIMEType = "application/vnd.openxmlformats-officedocument.presentationml.presentation"

const (
	emuPerInch = 914400
	creator    = "deckmail"
)

// Artifact is a rendered presentation held in memory.
type Artifact struct {
	Data     []byte
	Filename string
	MIMEType string
}

// Named returns a copy of the artifact with a different filename.
func (a Artifact) Named(filename string) Artifact {
	a.Filename = filename
	return a
}

// Size returns the artifact length in bytes.
func (a Artifact) Size() int {
	return len(a.Data)
}

// Render writes a Spec as a PPTX package into memory.
func Render(spec Spec) (Artifact, error) {
	if len(spec.Slides) == 0 {
		return Artifact{}, fmt.Errorf("%w: %w", ErrGeneration, ErrNoSlides)
	}

	p := ppt.New()
	p.GetDocumentProperties().Title = spec.Title
	p.GetDocumentProperties().Creator = creator

	for i, s := range spec.Slides {
		// A new presentation already holds one empty slide.
		slide := p.GetActiveSlide()
		if i > 0 {
			slide = p.CreateSlide()
		}
		renderSlide(slide, s)
	}

	w, err := ppt.NewWriter(p, ppt.WriterPowerPoint2007)
	if err != nil {
		return Artifact{}, fmt.Errorf("%w: create writer: %w", ErrGeneration, err)
	}
	pw, ok := w.(*ppt.PPTXWriter)
	if !ok {
		return Artifact{}, fmt.Errorf("%w: unexpected writer %T", ErrGeneration, w)
	}

	var buf bytes.Buffer
	if err := pw.WriteTo(&buf); err != nil {
		return Artifact{}, fmt.Errorf("%w: write pptx: %w", ErrGeneration, err)
	}

	return Artifact{
		Data:     buf.Bytes(),
		Filename: "deck.pptx",
		MIMEType: MIMEType,
	}, nil
}

func renderSlide(slide *ppt.Slide, s Slide) {
	if s.Background != "" {
		// The full-bleed rectangle goes first so everything else stacks on top.
		bg := slide.CreateRichTextShape()
		bg.SetOffsetX(0).SetOffsetY(0)
		bg.SetWidth(inches(SlideWidth)).SetHeight(inches(SlideHeight))
		bg.SetFill(solidFill(s.Background))
	}

	renderText(slide, s.Heading)
	if s.Body != nil {
		renderText(slide, *s.Body)
	}
	if s.Table != nil {
		renderGrid(slide, s.Table)
	}
}

func renderText(slide *ppt.Slide, tb TextBlock) {
	if len(tb.Paragraphs) == 0 {
		return
	}

	shape := slide.CreateRichTextShape()
	shape.SetOffsetX(inches(tb.Box.X)).SetOffsetY(inches(tb.Box.Y))
	shape.SetWidth(inches(tb.Box.W)).SetHeight(inches(tb.Box.H))

	for i, text := range tb.Paragraphs {
		if i > 0 {
			if tb.Spacing > 0 {
				shape.CreateParagraph()
				spacer := shape.CreateTextRun(" ")
				spacer.GetFont().SetSize(tb.Spacing)
			}
			shape.CreateParagraph()
		}
		run := shape.CreateTextRun(text)
		font := run.GetFont()
		if tb.Style.Size > 0 {
			font.SetSize(tb.Style.Size)
		}
		if tb.Style.Bold {
			font.SetBold(true)
		}
		if tb.Style.Color != "" {
			font.SetColor(ppt.NewColor(tb.Style.Color))
		}
		if tb.Style.Align == AlignCenter {
			alignCenter(shape.GetActiveParagraph())
		}
	}
}

func renderGrid(slide *ppt.Slide, g *Grid) {
	renderRow(slide, g, 0, g.Header)
	for i, row := range g.Rows {
		renderRow(slide, g, i+1, row)
	}
}

func renderRow(slide *ppt.Slide, g *Grid, index int, cells []Cell) {
	y := g.Box.Y + float64(index)*g.RowHeight
	for c, cell := range cells {
		x := g.Box.X + float64(c)*g.ColumnWidth
		renderCell(slide, Box{X: x, Y: y, W: g.ColumnWidth, H: g.RowHeight}, cell)
	}
}

func renderCell(slide *ppt.Slide, box Box, cell Cell) {
	shape := slide.CreateRichTextShape()
	shape.SetOffsetX(inches(box.X)).SetOffsetY(inches(box.Y))
	shape.SetWidth(inches(box.W)).SetHeight(inches(box.H))
	if cell.Fill != "" {
		shape.SetFill(solidFill(cell.Fill))
	}

	run := shape.CreateTextRun(cell.Text)
	font := run.GetFont()
	if cell.Style.Size > 0 {
		font.SetSize(cell.Style.Size)
	}
	if cell.Style.Bold {
		font.SetBold(true)
	}
	if cell.Style.Color != "" {
		font.SetColor(ppt.NewColor(cell.Style.Color))
	}
	if cell.Style.Align == AlignCenter {
		alignCenter(shape.GetActiveParagraph())
	}
}

func inches(v float64) int64 {
	return int64(v * emuPerInch)
}

func solidFill(argb string) *ppt.Fill {
	return ppt.NewFill().SetSolid(ppt.NewColor(argb))
}

func alignCenter(p *ppt.Paragraph) {
	p.SetAlignment(ppt.NewAlignment().SetHorizontal(ppt.HorizontalCenter))
}

// Builder turns report content straight into a rendered deck.
type Builder struct {
	opts []Option
}

// NewBuilder returns a Builder that applies opts to every Build call.
func NewBuilder(opts ...Option) *Builder {
	return &Builder{opts: opts}
}

// Generate builds and renders the deck in one step.
func (b *Builder) Generate(businessName string, bullets []string, rows []table.Row) (Artifact, error) {
	spec, err := Build(businessName, bullets, rows, b.opts...)
	if err != nil {
		return Artifact{}, err
	}
	return Render(spec)
}
