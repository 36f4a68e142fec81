package report

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/place-search-service/internal/domain"
)

type textOp struct {
	x, y float64
	s    string
}

type recordingCanvas struct {
	pages     int
	texts     [][]textOp
	outputErr error
}

func (c *recordingCanvas) AddPage() {
	c.pages++
	c.texts = append(c.texts, nil)
}

func (c *recordingCanvas) SetFont(string, string, float64) {}

func (c *recordingCanvas) Text(x, y float64, s string) {
	c.texts[len(c.texts)-1] = append(c.texts[len(c.texts)-1], textOp{x: x, y: y, s: s})
}

func (c *recordingCanvas) Output(w io.Writer) error {
	if c.outputErr != nil {
		return c.outputErr
	}
	_, err := w.Write([]byte("recorded"))
	return err
}

func (c *recordingCanvas) count(page int, s string) int {
	n := 0
	for _, op := range c.texts[page] {
		if op.s == s {
			n++
		}
	}
	return n
}

func (c *recordingCanvas) all() []textOp {
	var ops []textOp
	for _, page := range c.texts {
		ops = append(ops, page...)
	}
	return ops
}

func newRecordingRenderer(opts Options) (*Renderer, *recordingCanvas) {
	cv := &recordingCanvas{}
	return NewRendererWithCanvas(opts, func(Options) Canvas { return cv }), cv
}

func ptr(v float64) *float64 { return &v }

func makeRecords(n int) []domain.ResultRecord {
	records := make([]domain.ResultRecord, n)
	for i := range records {
		records[i] = domain.ResultRecord{
			Name:     fmt.Sprintf("Place %d", i+1),
			Duration: ptr(float64(i) + 0.5),
			Distance: ptr(float64(i) + 0.1),
			Category: "cafe",
		}
	}
	return records
}

func TestRender_EmptyInput(t *testing.T) {
	r, cv := newRecordingRenderer(DefaultOptions())

	out, err := r.Render(nil)

	assert.ErrorIs(t, err, ErrEmptyInput)
	assert.Nil(t, out)
	assert.Zero(t, cv.pages)
}

func TestRender_OutputFailure(t *testing.T) {
	cv := &recordingCanvas{outputErr: errors.New("disk full")}
	r := NewRendererWithCanvas(DefaultOptions(), func(Options) Canvas { return cv })

	_, err := r.Render(makeRecords(1))

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrOutput)
	assert.Contains(t, err.Error(), "disk full")
}

func TestRender_ListLayout(t *testing.T) {
	r, cv := newRecordingRenderer(DefaultOptions())

	_, err := r.Render([]domain.ResultRecord{
		{Name: "Cafe A", Duration: ptr(12.3), Distance: ptr(1.0)},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, cv.pages)
	assert.Equal(t, []textOp{
		{x: 50, y: 750, s: "Search results"},
		{x: 50, y: 730, s: "Number of results: 1"},
		{x: 50, y: 700, s: "1. Cafe A"},
		{x: 70, y: 680, s: "Distance: 1.0 km"},
		{x: 70, y: 665, s: "Duration: 12.3 min"},
	}, cv.texts[0])
}

func TestRender_AbsentRouteLeavesBlankLines(t *testing.T) {
	r, cv := newRecordingRenderer(DefaultOptions())

	_, err := r.Render([]domain.ResultRecord{
		{Name: "Cafe B"},
		{Name: "Cafe C", Distance: ptr(2.5), Duration: ptr(30)},
	})
	require.NoError(t, err)

	for _, op := range cv.all() {
		assert.NotContains(t, op.s, "N/A")
		assert.NotContains(t, op.s, "null")
	}
	// the second record still starts below the space reserved for the first
	assert.Contains(t, cv.texts[0], textOp{x: 50, y: 640, s: "2. Cafe C"})
	assert.Contains(t, cv.texts[0], textOp{x: 70, y: 620, s: "Distance: 2.5 km"})
}

func TestRender_TruncatesLongNames(t *testing.T) {
	r, cv := newRecordingRenderer(DefaultOptions())

	_, err := r.Render([]domain.ResultRecord{
		{Name: "Abcdefghijklmnopqrstuvwxyz0123"},
		{Name: "Exactly twenty-five chars"},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, cv.count(0, "1. Abcdefghijklmnopqrstuvwxy..."))
	assert.Equal(t, 1, cv.count(0, "2. Exactly twenty-five chars"))
}

func TestRender_PaginationReprintsHeaderOnce(t *testing.T) {
	r, cv := newRecordingRenderer(DefaultOptions())

	// 10 list records fit between y=700 and the bottom margin
	_, err := r.Render(makeRecords(25))
	require.NoError(t, err)

	require.Equal(t, 3, cv.pages)
	for page := 0; page < cv.pages; page++ {
		assert.Equal(t, 1, cv.count(page, "Search results"), "page %d", page)
		assert.Equal(t, 1, cv.count(page, "Number of results: 25"), "page %d", page)
	}

	assert.Contains(t, cv.texts[0], textOp{x: 50, y: 160, s: "10. Place 10"})
	assert.Contains(t, cv.texts[1], textOp{x: 50, y: 700, s: "11. Place 11"})
	assert.Contains(t, cv.texts[2], textOp{x: 50, y: 700, s: "21. Place 21"})

	for _, op := range cv.all() {
		assert.GreaterOrEqual(t, op.y, 50.0, op.s)
	}
}

func TestRender_TableLayout(t *testing.T) {
	opts := DefaultOptions()
	opts.Layout = LayoutTable
	r, cv := newRecordingRenderer(opts)

	records := makeRecords(40)
	records[0].Duration = nil
	records[0].Distance = nil

	_, err := r.Render(records)
	require.NoError(t, err)

	require.Equal(t, 2, cv.pages)
	for page := 0; page < cv.pages; page++ {
		assert.Equal(t, 1, cv.count(page, "Name"), "page %d", page)
		assert.Equal(t, 1, cv.count(page, "Distance (km)"), "page %d", page)
		assert.Equal(t, 1, cv.count(page, "Search results"), "page %d", page)
	}

	assert.Contains(t, cv.texts[0], textOp{x: 75, y: 700, s: "Place 1"})
	assert.Contains(t, cv.texts[0], textOp{x: 300, y: 682, s: "1.1"})
	assert.Contains(t, cv.texts[1], textOp{x: 50, y: 700, s: "37"})

	for _, op := range cv.texts[0] {
		if op.y == 700 {
			assert.NotEqual(t, 300.0, op.x, "absent distance must stay blank")
		}
	}
}

func TestRender_PDF(t *testing.T) {
	opts := DefaultOptions()
	opts.Compress = false
	r := NewRenderer(opts)

	out, err := r.Render([]domain.ResultRecord{
		{Name: "Cafe A", Duration: ptr(12.3), Distance: ptr(1.0)},
		{Name: "Café Olimpico"},
	})
	require.NoError(t, err)

	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
	assert.Contains(t, string(out), "Cafe A")
	assert.True(t, strings.HasSuffix(strings.TrimSpace(string(out)), "%%EOF"))
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{name: "short", in: "Cafe", max: 25, want: "Cafe"},
		{name: "cut", in: "abcdef", max: 3, want: "abc..."},
		{name: "runes", in: "ééééé", max: 2, want: "éé..."},
		{name: "disabled", in: "abcdef", max: 0, want: "abcdef"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, truncate(tt.in, tt.max))
		})
	}
}
