package deck

// Kind tags what a slide is for.
type Kind int

const (
	TitleSlide Kind = iota
	BulletSlide
	TableSlide
	ClosingSlide
)

// String returns the string representation of the slide kind
func (k Kind) String() string {
	switch k {
	case TitleSlide:
		return "title"
	case BulletSlide:
		return "bullets"
	case TableSlide:
		return "table"
	case ClosingSlide:
		return "closing"
	default:
		return "unknown"
	}
}

// Align is horizontal paragraph alignment.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
)

// Box is a position and size on the slide, in inches.
type Box struct {
	X, Y, W, H float64
}

// TextStyle describes how a run of text is drawn.
// Zero Size and empty Color leave the template defaults in place.
type TextStyle struct {
	Size  int
	Bold  bool
	Color string // ARGB hex, e.g. "FF4F81BD"
	Align Align
}

// TextBlock is a text box holding one paragraph per entry.
type TextBlock struct {
	Box        Box
	Paragraphs []string
	Style      TextStyle
	// Spacing is the gap between paragraphs in points. Zero means no gap.
	Spacing int
}

// Cell is one table cell.
type Cell struct {
	Text  string
	Style TextStyle
	Fill  string // ARGB hex; empty means transparent
	// Negative is set when Text starts with '-'.
	Negative bool
}

// Grid is a table laid out as a header row followed by data rows.
type Grid struct {
	Box         Box
	Columns     []string
	ColumnWidth float64
	RowHeight   float64
	Header      []Cell
	Rows        [][]Cell
}

// Slide is a declarative description of one slide.
type Slide struct {
	Kind Kind
	// Background is an ARGB fill painted behind the slide content.
	// Empty keeps the template background.
	Background string
	Heading    TextBlock
	Body       *TextBlock
	Table      *Grid
}

// Spec is the full deck, in presentation order.
type Spec struct {
	Title  string
	Slides []Slide
}

// Kinds returns the kind of every slide in order.
func (s Spec) Kinds() []Kind {
	kinds := make([]Kind, len(s.Slides))
	for i, sl := range s.Slides {
		kinds[i] = sl.Kind
	}
	return kinds
}
