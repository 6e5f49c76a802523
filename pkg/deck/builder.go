package deck

import (
	"fmt"
	"math"

	"github.com/dmitrymomot/deckmail/pkg/table"
)

// Canvas is a 16:9 slide, in inches.
const (
	SlideWidth  = 10.0
	SlideHeight = 5.625
)

// Colours, ARGB.
const (
	ColorAccent     = "FF4F81BD"
	ColorWhite      = "FFFFFFFF"
	ColorHeaderFill = "FF003366"
	ColorNegative   = "FFFF0000"
	ColorStripe     = "FFF2F2F2"
)

// Font sizes, points.
const (
	FontDisplay = 60
	FontHeading = 32
	FontBody    = 14
	FontCell    = 12

	bulletSpacing = 8
)

const (
	SummaryHeading = "SUMMARY"
	DataHeading    = "DATA"
	ClosingText    = "THANK YOU"

	maxRowHeight = 0.4
)

var (
	titleBox   = Box{X: 0.5, Y: 1.8, W: 9.0, H: 2.0}
	headingBox = Box{X: 0.75, Y: 0.4, W: 8.5, H: 0.8}
	bulletsBox = Box{X: 0.75, Y: 1.3, W: 8.5, H: 3.9}
	tableBox   = Box{X: 0.5, Y: 1.3, W: 9.0, H: 3.9}
	closingBox = Box{X: 0.5, Y: 1.8, W: 9.0, H: 1.5}
)

// TitleText returns the heading of the title slide.
func TitleText(businessName string) string {
	return businessName + " - Analysis"
}

// Build lays out the deck: title, summary, an optional data table and a
// closing slide. The table slide is emitted only when rows is non-empty.
// Build is pure; it does not produce document bytes.
func Build(businessName string, bullets []string, rows []table.Row, opts ...Option) (Spec, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	cols, err := table.Schema(rows)
	if err != nil {
		return Spec{}, fmt.Errorf("%w: %w: %w", ErrGeneration, ErrEmptySchema, err)
	}

	spec := Spec{Title: TitleText(businessName)}
	spec.Slides = append(spec.Slides,
		o.titleSlide(spec.Title),
		o.summarySlide(bullets),
	)
	if len(rows) > 0 {
		spec.Slides = append(spec.Slides, o.tableSlide(cols, rows))
	}
	spec.Slides = append(spec.Slides, o.closingSlide())

	return spec, nil
}

// style drops every visual attribute when styling is off.
func (o *options) style(s TextStyle) TextStyle {
	if !o.styled {
		return TextStyle{}
	}
	return s
}

func (o *options) paint(argb string) string {
	if !o.styled {
		return ""
	}
	return argb
}

func (o *options) titleSlide(title string) Slide {
	return Slide{
		Kind: TitleSlide,
		Heading: TextBlock{
			Box:        titleBox,
			Paragraphs: []string{title},
			Style:      o.style(TextStyle{Size: FontDisplay, Bold: true, Color: ColorAccent, Align: AlignCenter}),
		},
	}
}

func (o *options) summarySlide(bullets []string) Slide {
	body := TextBlock{
		Box:        bulletsBox,
		Paragraphs: append([]string(nil), bullets...),
		Style:      o.style(TextStyle{Size: FontBody, Align: AlignLeft}),
	}
	if o.styled {
		body.Spacing = bulletSpacing
	}
	return Slide{
		Kind:       BulletSlide,
		Background: o.paint(ColorWhite),
		Heading:    o.sectionHeading(SummaryHeading),
		Body:       &body,
	}
}

func (o *options) tableSlide(cols []string, rows []table.Row) Slide {
	rowHeight := math.Min(maxRowHeight, tableBox.H/float64(len(rows)+1))
	grid := &Grid{
		Box:         Box{X: tableBox.X, Y: tableBox.Y, W: tableBox.W, H: rowHeight * float64(len(rows)+1)},
		Columns:     cols,
		ColumnWidth: tableBox.W / float64(len(cols)),
		RowHeight:   rowHeight,
		Header:      make([]Cell, len(cols)),
		Rows:        make([][]Cell, len(rows)),
	}

	for i, col := range cols {
		grid.Header[i] = Cell{
			Text:  col,
			Style: o.style(TextStyle{Size: FontCell, Bold: true, Color: ColorWhite, Align: AlignCenter}),
			Fill:  o.paint(ColorHeaderFill),
		}
	}

	for r, row := range rows {
		// Table row r+1 sits under the header; even table rows are striped.
		var fill string
		if (r+1)%2 == 0 {
			fill = o.paint(ColorStripe)
		}
		cells := make([]Cell, len(cols))
		for c, col := range cols {
			text := row.Text(col)
			style := TextStyle{Size: FontCell, Align: AlignCenter}
			negative := table.IsNegative(text)
			if negative {
				style.Color = ColorNegative
			}
			cells[c] = Cell{
				Text:     text,
				Style:    o.style(style),
				Fill:     fill,
				Negative: negative,
			}
		}
		grid.Rows[r] = cells
	}

	return Slide{
		Kind:       TableSlide,
		Background: o.paint(ColorWhite),
		Heading:    o.sectionHeading(DataHeading),
		Table:      grid,
	}
}

func (o *options) closingSlide() Slide {
	return Slide{
		Kind: ClosingSlide,
		Heading: TextBlock{
			Box:        closingBox,
			Paragraphs: []string{ClosingText},
			Style:      o.style(TextStyle{Size: FontDisplay, Bold: true, Align: AlignCenter}),
		},
	}
}

func (o *options) sectionHeading(text string) TextBlock {
	return TextBlock{
		Box:        headingBox,
		Paragraphs: []string{text},
		Style:      o.style(TextStyle{Size: FontHeading, Bold: true, Align: AlignLeft}),
	}
}
