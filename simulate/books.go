package simulate

import (
	"encoding/csv"
	"io"
	"math"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strconv"

	"github.com/cockroachdb/errors"
	"gonum.org/v1/gonum/stat/distuv"
)

// Genre of a book.
type Genre string

// Format of a book's pages.
type Format string

const (
	Lyric Genre = "Lyric"
	Prose Genre = "Prose"

	Small Format = "Small"
	Large Format = "Large"
)

// Numeric fields of a book, as named in the CSV header.
const (
	FieldWhitespacePercentage = "whitespace_percentage"
	FieldPageArea             = "page_area"
	FieldWhitespaceCM2        = "whitespace_cm2"
)

var booksHeader = []string{"genre", "format_type", FieldWhitespacePercentage, FieldPageArea, FieldWhitespaceCM2}

// Book is one record of the synthetic margin dataset.
type Book struct {
	Genre                Genre
	Format               Format
	WhitespacePercentage float64 // Share of the page left blank, 0-100
	PageArea             float64 // cm²
	WhitespaceCM2        float64 // WhitespacePercentage/100 * PageArea
}

// NewBook creates a book and derives its whitespace area.
func NewBook(genre Genre, format Format, whitespacePercentage, pageArea float64) Book {
	return Book{
		Genre:                genre,
		Format:               format,
		WhitespacePercentage: whitespacePercentage,
		PageArea:             pageArea,
		WhitespaceCM2:        whitespacePercentage / 100 * pageArea,
	}
}

// Field returns the numeric field with the given CSV column name.
func (b Book) Field(name string) (float64, error) {
	switch name {
	case FieldWhitespacePercentage:
		return b.WhitespacePercentage, nil
	case FieldPageArea:
		return b.PageArea, nil
	case FieldWhitespaceCM2:
		return b.WhitespaceCM2, nil
	default:
		return 0, errors.Newf("unknown book field %q", name)
	}
}

// Column extracts one numeric field of every book as a sample.
func Column(books []Book, field string) ([]float64, error) {
	values := make([]float64, len(books))
	for i, b := range books {
		v, err := b.Field(field)
		if err != nil {
			return nil, err
		}
		values[i] = v
	}
	return values, nil
}

// BooksConfig holds the parameters of the book dataset. The defaults are
// chosen so that Simpson's paradox holds: lyric books have more whitespace
// than prose in each format, but less overall, because lyric books are
// mostly small.
type BooksConfig struct {
	Count         int
	SmallPageArea float64 // cm²
	LargePageArea float64 // cm²
	LyricMean     float64 // Mean whitespace percentage of lyric books
	ProseMean     float64 // Mean whitespace percentage of prose books
	StdDev        float64 // Standard deviation of the whitespace percentage
	LyricWeight   float64 // P(genre = Lyric)
	LyricSmall    float64 // P(format = Small | Lyric)
	ProseSmall    float64 // P(format = Small | Prose)
}

// DefaultBooksConfig returns the default dataset parameters.
func DefaultBooksConfig() BooksConfig {
	return BooksConfig{
		Count:         1000,
		SmallPageArea: 200,
		LargePageArea: 620,
		LyricMean:     33,
		ProseMean:     19,
		StdDev:        5,
		LyricWeight:   0.5,
		LyricSmall:    0.85,
		ProseSmall:    0.25,
	}
}

// Validate checks the configuration.
func (c BooksConfig) Validate() error {
	if c.Count < 0 {
		return errors.Wrapf(ErrInvalidParameter, "book count must not be negative, got %d", c.Count)
	}
	if !(c.SmallPageArea > 0) || !(c.LargePageArea > 0) {
		return errors.Wrapf(ErrInvalidParameter, "page areas must be positive, got %v and %v",
			c.SmallPageArea, c.LargePageArea)
	}
	if !(c.StdDev > 0) {
		return errors.Wrapf(ErrInvalidParameter, "std dev must be positive, got %v", c.StdDev)
	}
	for name, p := range map[string]float64{
		"lyric weight": c.LyricWeight,
		"lyric small":  c.LyricSmall,
		"prose small":  c.ProseSmall,
	} {
		if !(p >= 0 && p <= 1) {
			return errors.Wrapf(ErrInvalidParameter, "%s must be a probability, got %v", name, p)
		}
	}
	return nil
}

// Books generates cfg.Count books.
func Books(cfg BooksConfig, src rand.Source) ([]Book, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	genres := distuv.NewCategorical([]float64{cfg.LyricWeight, 1 - cfg.LyricWeight}, src)
	formats := map[Genre]distuv.Categorical{
		Lyric: distuv.NewCategorical([]float64{cfg.LyricSmall, 1 - cfg.LyricSmall}, src),
		Prose: distuv.NewCategorical([]float64{cfg.ProseSmall, 1 - cfg.ProseSmall}, src),
	}
	whitespace := map[Genre]distuv.Normal{
		Lyric: {Mu: cfg.LyricMean, Sigma: cfg.StdDev, Src: src},
		Prose: {Mu: cfg.ProseMean, Sigma: cfg.StdDev, Src: src},
	}

	books := make([]Book, 0, cfg.Count)
	for i := 0; i < cfg.Count; i++ {
		genre := Lyric
		if genres.Rand() == 1 {
			genre = Prose
		}

		format, area := Small, cfg.SmallPageArea
		formatDist := formats[genre]
		if formatDist.Rand() == 1 {
			format, area = Large, cfg.LargePageArea
		}

		whitespaceDist := whitespace[genre]
		pct := math.Max(0, math.Min(100, whitespaceDist.Rand()))
		books = append(books, NewBook(genre, format, pct, area))
	}
	return books, nil
}

// WriteBooksCSV writes books as CSV with a header row.
func WriteBooksCSV(w io.Writer, books []Book) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(booksHeader); err != nil {
		return errors.Wrap(err, "write header")
	}

	for _, b := range books {
		record := []string{
			string(b.Genre),
			string(b.Format),
			strconv.FormatFloat(b.WhitespacePercentage, 'f', -1, 64),
			strconv.FormatFloat(b.PageArea, 'f', -1, 64),
			strconv.FormatFloat(b.WhitespaceCM2, 'f', -1, 64),
		}
		if err := writer.Write(record); err != nil {
			return errors.Wrap(err, "write record")
		}
	}

	writer.Flush()
	return errors.Wrap(writer.Error(), "flush csv")
}

// SaveBooks writes books to path, creating parent directories.
func SaveBooks(path string, books []Book) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrap(err, "create output directory")
	}

	file, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create books csv")
	}
	if err := WriteBooksCSV(file, books); err != nil {
		file.Close()
		return err
	}
	return errors.Wrap(file.Close(), "close books csv")
}
