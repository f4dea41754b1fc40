package report

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/sartorproj/gonormal/simulate"
	"github.com/sartorproj/gonormal/stats"
)

var (
	genres  = []simulate.Genre{simulate.Lyric, simulate.Prose}
	formats = []simulate.Format{simulate.Small, simulate.Large}
)

// GroupMean is the mean of a field over one group of books. Genre or Format
// is empty when the group spans all of them.
type GroupMean struct {
	Genre  simulate.Genre  `json:"genre,omitempty" yaml:"genre,omitempty"`
	Format simulate.Format `json:"format,omitempty" yaml:"format,omitempty"`
	Count  int             `json:"count" yaml:"count"`
	Mean   float64         `json:"mean" yaml:"mean"`
}

// GroupMeans holds the averages of one book field over every grouping.
type GroupMeans struct {
	Field         string      `json:"field" yaml:"field"`
	Overall       GroupMean   `json:"overall" yaml:"overall"`
	ByGenre       []GroupMean `json:"by_genre" yaml:"by_genre"`
	ByFormat      []GroupMean `json:"by_format" yaml:"by_format"`
	ByGenreFormat []GroupMean `json:"by_genre_format" yaml:"by_genre_format"`
}

// Group averages field over the books by genre, by format and by both.
// Empty groups have a zero count and mean.
func Group(books []simulate.Book, field string) (*GroupMeans, error) {
	mean := func(keep func(simulate.Book) bool) (GroupMean, error) {
		var xs []float64
		for _, b := range books {
			if !keep(b) {
				continue
			}
			v, err := b.Field(field)
			if err != nil {
				return GroupMean{}, err
			}
			xs = append(xs, v)
		}
		m, err := stats.Mean(xs)
		return GroupMean{Count: len(xs), Mean: m}, err
	}

	g := &GroupMeans{Field: field}

	overall, err := mean(func(simulate.Book) bool { return true })
	if err != nil {
		return nil, err
	}
	g.Overall = overall

	for _, genre := range genres {
		gm, err := mean(func(b simulate.Book) bool { return b.Genre == genre })
		if err != nil {
			return nil, err
		}
		gm.Genre = genre
		g.ByGenre = append(g.ByGenre, gm)
	}

	for _, format := range formats {
		gm, err := mean(func(b simulate.Book) bool { return b.Format == format })
		if err != nil {
			return nil, err
		}
		gm.Format = format
		g.ByFormat = append(g.ByFormat, gm)
	}

	for _, genre := range genres {
		for _, format := range formats {
			gm, err := mean(func(b simulate.Book) bool { return b.Genre == genre && b.Format == format })
			if err != nil {
				return nil, err
			}
			gm.Genre, gm.Format = genre, format
			g.ByGenreFormat = append(g.ByGenreFormat, gm)
		}
	}

	return g, nil
}

// Cell returns the genre and format group.
func (g *GroupMeans) Cell(genre simulate.Genre, format simulate.Format) GroupMean {
	for _, gm := range g.ByGenreFormat {
		if gm.Genre == genre && gm.Format == format {
			return gm
		}
	}
	return GroupMean{Genre: genre, Format: format}
}

// Genre returns the group of all books of a genre.
func (g *GroupMeans) Genre(genre simulate.Genre) GroupMean {
	for _, gm := range g.ByGenre {
		if gm.Genre == genre {
			return gm
		}
	}
	return GroupMean{Genre: genre}
}

// SimpsonsParadox reports whether one genre has the higher mean in every
// format but the lower mean over all formats. Formats missing a genre do
// not take part.
func (g *GroupMeans) SimpsonsParadox() bool {
	lyricAhead, proseAhead := 0, 0
	for _, format := range formats {
		lyric, prose := g.Cell(simulate.Lyric, format), g.Cell(simulate.Prose, format)
		if lyric.Count == 0 || prose.Count == 0 {
			continue
		}
		switch {
		case lyric.Mean > prose.Mean:
			lyricAhead++
		case prose.Mean > lyric.Mean:
			proseAhead++
		default:
			return false
		}
	}

	lyric, prose := g.Genre(simulate.Lyric), g.Genre(simulate.Prose)
	switch {
	case lyricAhead > 0 && proseAhead == 0:
		return lyric.Mean < prose.Mean
	case proseAhead > 0 && lyricAhead == 0:
		return prose.Mean < lyric.Mean
	default:
		return false
	}
}

// Table renders the averages as a genre by format cross table with margins.
func (g *GroupMeans) Table() string {
	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	tbl.SetTitle("mean " + g.Field)

	header := table.Row{"genre"}
	for _, format := range formats {
		header = append(header, string(format))
	}
	header = append(header, "all")
	tbl.AppendHeader(header)

	for _, genre := range genres {
		row := table.Row{string(genre)}
		for _, format := range formats {
			row = append(row, cell(g.Cell(genre, format)))
		}
		row = append(row, cell(g.Genre(genre)))
		tbl.AppendRow(row)
	}

	footer := table.Row{"all"}
	for _, gm := range g.ByFormat {
		footer = append(footer, cell(gm))
	}
	footer = append(footer, cell(g.Overall))
	tbl.AppendFooter(footer)

	return tbl.Render()
}

func cell(gm GroupMean) string {
	return fmt.Sprintf("%.2f (n=%s)", gm.Mean, humanize.Comma(int64(gm.Count)))
}
