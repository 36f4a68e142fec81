package report

import "github.com/place-search-service/internal/config"

// Layout selects how each record is laid out on the page.
type Layout string

const (
	// LayoutList writes each record as a numbered name line followed by a
	// distance line and a duration line.
	LayoutList Layout = "list"
	// LayoutTable writes one row per record under repeated column headers.
	LayoutTable Layout = "table"
)

// Options holds page geometry and labels. Vertical positions are PDF points
// measured from the bottom of the page.
type Options struct {
	Layout Layout

	Title         string
	CountLabel    string // fmt verb %d receives the record count
	DistanceLabel string
	DurationLabel string
	NameMaxChars  int

	PageHeight    float64
	LeftMargin    float64
	IndentX       float64
	TitleY        float64
	SubtitleY     float64
	ColumnHeaderY float64
	ContentTopY   float64
	BottomMargin  float64

	// list layout line heights
	NameLineHeight     float64
	DistanceLineHeight float64
	DurationLineHeight float64

	// table layout row height
	RowHeight float64

	Compress bool
}

// DefaultOptions is a US Letter page with the list layout.
func DefaultOptions() Options {
	return Options{
		Layout:        LayoutList,
		Title:         "Search results",
		CountLabel:    "Number of results: %d",
		DistanceLabel: "Distance",
		DurationLabel: "Duration",
		NameMaxChars:  25,

		PageHeight:    792,
		LeftMargin:    50,
		IndentX:       70,
		TitleY:        750,
		SubtitleY:     730,
		ColumnHeaderY: 712,
		ContentTopY:   700,
		BottomMargin:  50,

		NameLineHeight:     20,
		DistanceLineHeight: 15,
		DurationLineHeight: 25,

		RowHeight: 18,

		Compress: true,
	}
}

func (o Options) recordHeight() float64 {
	if o.Layout == LayoutTable {
		return o.RowHeight
	}
	return o.NameLineHeight + o.DistanceLineHeight + o.DurationLineHeight
}

// OptionsFromConfig applies the configured layout, title and name width on
// top of DefaultOptions.
func OptionsFromConfig(cfg *config.ReportConfig) Options {
	opts := DefaultOptions()
	if cfg.Layout != "" {
		opts.Layout = Layout(cfg.Layout)
	}
	if cfg.Title != "" {
		opts.Title = cfg.Title
	}
	if cfg.NameMaxChars > 0 {
		opts.NameMaxChars = cfg.NameMaxChars
	}
	return opts
}
