package entity

// RGB is a fill, stroke or text colour.
type RGB [3]int

// Point is a position in millimetres from the top-left corner of a page.
type Point struct {
	X float64
	Y float64
}

// Rect is an axis-aligned box in millimetres.
type Rect struct {
	X float64
	Y float64
	W float64
	H float64
}

// Bottom returns the lower edge of the rectangle.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Align controls how a text anchor is interpreted.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// TextStyle describes font and colour of a text run.
type TextStyle struct {
	Size  float64
	Bold  bool
	Color RGB
	Align Align
}

// Slot marks text whose content is only known after pagination.
type Slot int

const (
	SlotNone Slot = iota
	SlotPageNumber
)

// Column is one column of a drawn table.
type Column struct {
	Title string
	Width float64
	Align Align
}

// DrawOp is one drawing instruction on a page. The set of variants is closed.
type DrawOp interface {
	drawOp()
}

// TextBlock draws a single line of text with its baseline at Position.
type TextBlock struct {
	Text     string
	Position Point
	Style    TextStyle
	Slot     Slot
}

// FilledRect paints a solid rectangle.
type FilledRect struct {
	Bounds Rect
	Color  RGB
}

// Line strokes a straight segment.
type Line struct {
	From  Point
	To    Point
	Color RGB
	Width float64
}

// TableHeader draws the coloured title row of a table.
type TableHeader struct {
	Bounds    Rect
	Columns   []Column
	Fill      RGB
	TextStyle TextStyle
}

// TableRow draws one body row. Even ZebraIndex values get the stripe fill.
type TableRow struct {
	Bounds     Rect
	Columns    []Column
	Cells      []string
	ZebraIndex int
	Bordered   bool
	TextStyle  TextStyle
	LabelBold  bool
}

func (TextBlock) drawOp()   {}
func (FilledRect) drawOp()  {}
func (Line) drawOp()        {}
func (TableHeader) drawOp() {}
func (TableRow) drawOp()    {}

// PageSize is the physical size of every page.
type PageSize struct {
	Width  float64
	Height float64
}

// Page is an ordered list of drawing instructions.
type Page struct {
	Ops []DrawOp
}

// ReportDocument is the paginated output of the layout engine.
type ReportDocument struct {
	Size     PageSize
	Title    string
	Author   string
	Pages    []Page
	Finished bool
}

// PageCount returns the number of pages.
func (d *ReportDocument) PageCount() int {
	return len(d.Pages)
}
