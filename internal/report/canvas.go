package report

import (
	"io"

	"github.com/go-pdf/fpdf"
)

// Canvas is the drawing surface the layout writes to. Text positions use a
// bottom-left origin.
type Canvas interface {
	AddPage()
	SetFont(family, style string, size float64)
	Text(x, y float64, s string)
	Output(w io.Writer) error
}

// pdfCanvas adapts fpdf, whose origin is the top-left corner.
type pdfCanvas struct {
	pdf        *fpdf.Fpdf
	pageHeight float64
	tr         func(string) string
}

func newPDFCanvas(opts Options) Canvas {
	pdf := fpdf.New("P", "pt", "Letter", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetCompression(opts.Compress)
	pdf.SetTitle(opts.Title, true)
	pdf.SetCreator("place-search-service", true)

	return &pdfCanvas{
		pdf:        pdf,
		pageHeight: opts.PageHeight,
		// core fonts are cp1252; translate so accented place names survive
		tr: pdf.UnicodeTranslatorFromDescriptor(""),
	}
}

func (c *pdfCanvas) AddPage() {
	c.pdf.AddPage()
}

func (c *pdfCanvas) SetFont(family, style string, size float64) {
	c.pdf.SetFont(family, style, size)
}

func (c *pdfCanvas) Text(x, y float64, s string) {
	c.pdf.Text(x, c.pageHeight-y, c.tr(s))
}

func (c *pdfCanvas) Output(w io.Writer) error {
	return c.pdf.Output(w)
}
