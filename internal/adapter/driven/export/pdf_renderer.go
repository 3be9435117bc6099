package export

import (
	"fmt"
	"io"

	"github.com/diillson/usage-statement-go/internal/domain/entity"
	"github.com/diillson/usage-statement-go/internal/shared/types"
	"github.com/jung-kurt/gofpdf"
)

const fontFamily = "Arial"

var (
	stripeColor = entity.RGB{245, 245, 245}
	borderColor = entity.RGB{200, 200, 200}
)

// RenderPDF materializa um ReportDocument finalizado com o gofpdf.
func RenderPDF(doc *entity.ReportDocument) (*gofpdf.Fpdf, error) {
	if !doc.Finished {
		return nil, fmt.Errorf("%w: page numbers were not stamped", types.ErrRender)
	}

	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		Size:           gofpdf.SizeType{Wd: doc.Size.Width, Ht: doc.Size.Height},
	})
	pdf.SetTitle(doc.Title, true)
	pdf.SetAuthor(doc.Author, true)
	pdf.SetCreator("usage-statement", true)
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)

	r := &pdfRenderer{pdf: pdf, tr: pdf.UnicodeTranslatorFromDescriptor("")}
	for _, page := range doc.Pages {
		pdf.AddPage()
		for _, op := range page.Ops {
			r.draw(op)
		}
	}

	if pdf.Err() {
		return nil, fmt.Errorf("%w: %v", types.ErrRender, pdf.Error())
	}
	return pdf, nil
}

// WritePDF renders doc and writes the PDF bytes to w.
func WritePDF(doc *entity.ReportDocument, w io.Writer) error {
	pdf, err := RenderPDF(doc)
	if err != nil {
		return err
	}
	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("%w: %v", types.ErrRender, err)
	}
	return nil
}

type pdfRenderer struct {
	pdf *gofpdf.Fpdf
	tr  func(string) string
}

func (r *pdfRenderer) draw(op entity.DrawOp) {
	switch o := op.(type) {
	case entity.TextBlock:
		r.text(o.Text, o.Position.X, o.Position.Y, o.Style)
	case entity.FilledRect:
		r.fill(o.Color)
		r.pdf.Rect(o.Bounds.X, o.Bounds.Y, o.Bounds.W, o.Bounds.H, "F")
	case entity.Line:
		r.stroke(o.Color)
		r.pdf.SetLineWidth(o.Width)
		r.pdf.Line(o.From.X, o.From.Y, o.To.X, o.To.Y)
	case entity.TableHeader:
		r.fill(o.Fill)
		r.pdf.Rect(o.Bounds.X, o.Bounds.Y, o.Bounds.W, o.Bounds.H, "F")
		titles := make([]string, len(o.Columns))
		for i, c := range o.Columns {
			titles[i] = c.Title
		}
		r.cells(o.Bounds, o.Columns, titles, o.TextStyle, false, 2)
	case entity.TableRow:
		r.row(o)
	}
}

func (r *pdfRenderer) row(o entity.TableRow) {
	b := o.Bounds
	if o.ZebraIndex%2 == 0 {
		r.fill(stripeColor)
		r.pdf.Rect(b.X, b.Y, b.W, b.H, "F")
	}

	padding := 5.0
	if o.Bordered && len(o.Columns) > 0 {
		padding = 2
		r.stroke(borderColor)
		r.pdf.SetLineWidth(0.2)
		r.pdf.Rect(b.X, b.Y, b.W, b.H, "D")
		x := b.X
		for _, c := range o.Columns[:len(o.Columns)-1] {
			x += c.Width
			r.pdf.Line(x, b.Y, x, b.Bottom())
		}
	}

	r.cells(b, o.Columns, o.Cells, o.TextStyle, o.LabelBold, padding)
}

// cells writes one value per column, vertically centred in bounds. Font
// sizes are in points, 0.35 converts them to millimetres.
func (r *pdfRenderer) cells(b entity.Rect, cols []entity.Column, values []string, style entity.TextStyle, labelBold bool, padding float64) {
	baseline := b.Y + b.H/2 + style.Size*0.35/2
	x := b.X
	for i, c := range cols {
		if i < len(values) {
			s := style
			s.Bold = style.Bold || (labelBold && i == 0)
			s.Align = c.Align
			anchor := x + padding
			switch c.Align {
			case entity.AlignRight:
				anchor = x + c.Width - padding
			case entity.AlignCenter:
				anchor = x + c.Width/2
			}
			r.text(values[i], anchor, baseline, s)
		}
		x += c.Width
	}
}

func (r *pdfRenderer) text(text string, x, y float64, style entity.TextStyle) {
	if text == "" {
		return
	}
	fontStyle := ""
	if style.Bold {
		fontStyle = "B"
	}
	r.pdf.SetFont(fontFamily, fontStyle, style.Size)
	r.pdf.SetTextColor(style.Color[0], style.Color[1], style.Color[2])

	s := r.tr(text)
	switch style.Align {
	case entity.AlignRight:
		x -= r.pdf.GetStringWidth(s)
	case entity.AlignCenter:
		x -= r.pdf.GetStringWidth(s) / 2
	}
	r.pdf.Text(x, y, s)
}

func (r *pdfRenderer) fill(c entity.RGB) {
	r.pdf.SetFillColor(c[0], c[1], c[2])
}

func (r *pdfRenderer) stroke(c entity.RGB) {
	r.pdf.SetDrawColor(c[0], c[1], c[2])
}
