package report

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/place-search-service/internal/domain"
)

const (
	fontFamily = "Helvetica"
	ellipsis   = "..."
)

var (
	ErrEmptyInput = errors.New("report: no records to render")
	ErrOutput     = errors.New("report: failed to write document")
)

// Renderer lays out result records into a paginated PDF document.
type Renderer struct {
	opts      Options
	newCanvas func(Options) Canvas
}

func NewRenderer(opts Options) *Renderer {
	return &Renderer{opts: opts, newCanvas: newPDFCanvas}
}

// NewRendererWithCanvas renders onto canvases built by newCanvas.
func NewRendererWithCanvas(opts Options, newCanvas func(Options) Canvas) *Renderer {
	return &Renderer{opts: opts, newCanvas: newCanvas}
}

func (r *Renderer) Options() Options {
	return r.opts
}

// Render returns the document bytes. Empty input is rejected.
func (r *Renderer) Render(records []domain.ResultRecord) ([]byte, error) {
	if len(records) == 0 {
		return nil, ErrEmptyInput
	}

	l := &layout{
		canvas: r.newCanvas(r.opts),
		opts:   r.opts,
		total:  len(records),
	}

	l.newPage()
	for i, rec := range records {
		if l.cursorY-r.opts.recordHeight() < r.opts.BottomMargin {
			l.newPage()
		}
		l.writeRecord(i+1, rec)
	}

	var buf bytes.Buffer
	if err := l.canvas.Output(&buf); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOutput, err)
	}
	return buf.Bytes(), nil
}

type layout struct {
	canvas  Canvas
	opts    Options
	total   int
	cursorY float64
	pages   int
}

// newPage starts a page, prints the header block and resets the cursor.
func (l *layout) newPage() {
	l.canvas.AddPage()
	l.pages++

	l.canvas.SetFont(fontFamily, "B", 16)
	l.canvas.Text(l.opts.LeftMargin, l.opts.TitleY, l.opts.Title)

	l.canvas.SetFont(fontFamily, "", 12)
	l.canvas.Text(l.opts.LeftMargin, l.opts.SubtitleY, fmt.Sprintf(l.opts.CountLabel, l.total))

	if l.opts.Layout == LayoutTable {
		l.canvas.SetFont(fontFamily, "B", 10)
		for _, col := range tableColumns(l.opts) {
			l.canvas.Text(col.x, l.opts.ColumnHeaderY, col.title)
		}
	}

	l.cursorY = l.opts.ContentTopY
}

func (l *layout) writeRecord(n int, rec domain.ResultRecord) {
	if l.opts.Layout == LayoutTable {
		l.writeRow(n, rec)
		return
	}

	l.canvas.SetFont(fontFamily, "B", 12)
	l.canvas.Text(l.opts.LeftMargin, l.cursorY, fmt.Sprintf("%d. %s", n, truncate(rec.Name, l.opts.NameMaxChars)))
	l.cursorY -= l.opts.NameLineHeight

	l.canvas.SetFont(fontFamily, "", 10)
	if rec.Distance != nil {
		l.canvas.Text(l.opts.IndentX, l.cursorY, fmt.Sprintf("%s: %.1f km", l.opts.DistanceLabel, *rec.Distance))
	}
	l.cursorY -= l.opts.DistanceLineHeight

	if rec.Duration != nil {
		l.canvas.Text(l.opts.IndentX, l.cursorY, fmt.Sprintf("%s: %.1f min", l.opts.DurationLabel, *rec.Duration))
	}
	l.cursorY -= l.opts.DurationLineHeight
}

func (l *layout) writeRow(n int, rec domain.ResultRecord) {
	cols := tableColumns(l.opts)
	cells := []string{
		fmt.Sprintf("%d", n),
		truncate(rec.Name, l.opts.NameMaxChars),
		formatOptional(rec.Distance),
		formatOptional(rec.Duration),
		truncate(rec.Category, categoryMaxChars),
	}

	l.canvas.SetFont(fontFamily, "", 10)
	for i, cell := range cells {
		if cell == "" {
			continue
		}
		l.canvas.Text(cols[i].x, l.cursorY, cell)
	}
	l.cursorY -= l.opts.RowHeight
}

const categoryMaxChars = 15

type column struct {
	title string
	x     float64
}

func tableColumns(opts Options) []column {
	return []column{
		{title: "#", x: opts.LeftMargin},
		{title: "Name", x: opts.LeftMargin + 25},
		{title: opts.DistanceLabel + " (km)", x: opts.LeftMargin + 250},
		{title: opts.DurationLabel + " (min)", x: opts.LeftMargin + 340},
		{title: "Category", x: opts.LeftMargin + 430},
	}
}

func formatOptional(v *float64) string {
	if v == nil {
		return ""
	}
	return fmt.Sprintf("%.1f", *v)
}

// truncate keeps at most max runes of s and marks the cut with an ellipsis.
func truncate(s string, max int) string {
	if max <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + ellipsis
}
