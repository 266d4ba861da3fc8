// Package tabular reads the shape of delimited data files.
package tabular

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
)

// Shape is the row/column count of a tabular file. Rows excludes the
// header line, matching the convention of dataframe readers.
type Shape struct {
	Rows int `json:"rows"`
	Cols int `json:"cols"`
}

func (s Shape) String() string {
	return fmt.Sprintf("(%d, %d)", s.Rows, s.Cols)
}

// ShapeReader reads the shape of a tabular file. A nil ShapeReader in a
// check context means the tabular-reading capability is unavailable.
type ShapeReader interface {
	ReadShape(path string) (Shape, error)
}

// Reader reads delimited files with a configurable separator.
type Reader struct {
	Comma rune
}

// NewReader returns a Reader for the given field separator.
func NewReader(comma rune) *Reader {
	return &Reader{Comma: comma}
}

// ReadShape counts rows and columns. Column count comes from the header
// line; ragged records do not abort the count, so shape drift surfaces as
// an out-of-tolerance shape rather than a parse failure.
func (r *Reader) ReadShape(path string) (Shape, error) {
	f, err := os.Open(path)
	if err != nil {
		return Shape{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	cr := csv.NewReader(f)
	cr.Comma = r.Comma
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err == io.EOF {
		return Shape{}, fmt.Errorf("%s is empty", path)
	}
	if err != nil {
		return Shape{}, fmt.Errorf("read %s: %w", path, err)
	}

	shape := Shape{Cols: len(header)}
	for {
		_, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return Shape{}, fmt.Errorf("read %s: %w", path, err)
		}
		shape.Rows++
	}
	return shape, nil
}
