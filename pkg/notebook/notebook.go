// Package notebook reads Jupyter notebook (.ipynb) documents.
//
// Only the structure the conformance checks consume is modeled: an ordered
// list of cells, each tagged markdown or code, carrying raw source text and
// (for code cells) output records keyed by media type. Output payloads are
// never decoded.
package notebook

import (
	"encoding/json"
	"fmt"
	"iter"
	"os"
	"regexp"
	"strings"
)

// CellType tags a notebook cell.
type CellType string

// Cell types the checker distinguishes. Other types (raw cells) are
// preserved in the document but never match a filter.
const (
	Markdown CellType = "markdown"
	Code     CellType = "code"
)

// Image media types recognized by CountImageOutputs.
var imageMediaTypes = []string{"image/png", "image/jpeg", "image/svg+xml"}

// Document is an ordered sequence of notebook cells.
type Document struct {
	Cells []Cell
}

// Cell is one unit of a notebook.
type Cell struct {
	Type    CellType
	Source  string
	Outputs []Output
}

// Output is one execution result of a code cell. Data maps media-type
// identifiers to payloads; only the key set is ever consulted.
type Output struct {
	Data map[string]json.RawMessage
}

// UnreadableError indicates a notebook file could not be opened or parsed.
type UnreadableError struct {
	Path string
	Err  error
}

func (e *UnreadableError) Error() string {
	return fmt.Sprintf("cannot open notebook %s: %v", e.Path, e.Err)
}

func (e *UnreadableError) Unwrap() error { return e.Err }

// Loader loads notebook documents. A nil Loader in a check context means
// the notebook-reading capability is unavailable.
type Loader interface {
	Load(path string) (*Document, error)
}

// Reader is the default Loader backed by the filesystem.
type Reader struct{}

// NewReader returns a filesystem-backed notebook reader.
func NewReader() *Reader { return &Reader{} }

// Load reads and parses a notebook. Failures are returned as
// *UnreadableError; the caller decides the severity.
func (r *Reader) Load(path string) (*Document, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, &UnreadableError{Path: path, Err: err}
	}
	doc, err := Parse(raw)
	if err != nil {
		return nil, &UnreadableError{Path: path, Err: err}
	}
	return doc, nil
}

// rawNotebook mirrors the nbformat v4 JSON layout. Source appears in the
// wild both as a single string and as a list of lines.
type rawNotebook struct {
	Cells []rawCell `json:"cells"`
}

type rawCell struct {
	CellType string          `json:"cell_type"`
	Source   multilineString `json:"source"`
	Outputs  []rawOutput     `json:"outputs"`
}

type rawOutput struct {
	Data map[string]json.RawMessage `json:"data"`
}

// multilineString unmarshals either a JSON string or a list of strings
// joined verbatim.
type multilineString string

func (m *multilineString) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*m = multilineString(s)
		return nil
	}
	var lines []string
	if err := json.Unmarshal(b, &lines); err != nil {
		return fmt.Errorf("source is neither string nor string list: %w", err)
	}
	*m = multilineString(strings.Join(lines, ""))
	return nil
}

// Parse decodes raw ipynb JSON into a Document.
func Parse(raw []byte) (*Document, error) {
	var nb rawNotebook
	if err := json.Unmarshal(raw, &nb); err != nil {
		return nil, fmt.Errorf("invalid notebook JSON: %w", err)
	}
	doc := &Document{Cells: make([]Cell, 0, len(nb.Cells))}
	for _, rc := range nb.Cells {
		cell := Cell{
			Type:   CellType(rc.CellType),
			Source: string(rc.Source),
		}
		for _, out := range rc.Outputs {
			cell.Outputs = append(cell.Outputs, Output{Data: out.Data})
		}
		doc.Cells = append(doc.Cells, cell)
	}
	return doc, nil
}

// CellsByType returns a restartable sequence of cells with the given type,
// in document order.
func (d *Document) CellsByType(t CellType) iter.Seq[Cell] {
	return func(yield func(Cell) bool) {
		for _, c := range d.Cells {
			if c.Type != t {
				continue
			}
			if !yield(c) {
				return
			}
		}
	}
}

// HasAnyOutput reports whether at least one code cell carries output.
func (d *Document) HasAnyOutput() bool {
	for c := range d.CellsByType(Code) {
		if len(c.Outputs) > 0 {
			return true
		}
	}
	return false
}

// CountImageOutputs counts output records across all code cells whose data
// includes an image media type.
func (d *Document) CountImageOutputs() int {
	n := 0
	for c := range d.CellsByType(Code) {
		for _, out := range c.Outputs {
			for _, mt := range imageMediaTypes {
				if _, ok := out.Data[mt]; ok {
					n++
					break
				}
			}
		}
	}
	return n
}

// Pattern is a named content marker searched for in cell source text.
type Pattern struct {
	Name string
	Re   *regexp.Regexp
}

// MustPattern compiles a case-insensitive pattern or panics. Intended for
// static catalogs.
func MustPattern(name, expr string) Pattern {
	return Pattern{Name: name, Re: regexp.MustCompile("(?i)" + expr)}
}

// FindPatterns scans the source of every cell whose type is in types and
// returns the set of pattern names that matched at least one cell.
// Multiple occurrences collapse to a single membership flag.
func (d *Document) FindPatterns(patterns []Pattern, types ...CellType) map[string]bool {
	found := make(map[string]bool)
	for _, t := range types {
		for c := range d.CellsByType(t) {
			for _, p := range patterns {
				if found[p.Name] {
					continue
				}
				if p.Re.MatchString(c.Source) {
					found[p.Name] = true
				}
			}
		}
	}
	return found
}

// SourceByType concatenates the source of every cell with the given type,
// newline-separated, in document order.
func (d *Document) SourceByType(t CellType) string {
	var b strings.Builder
	for c := range d.CellsByType(t) {
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(c.Source)
	}
	return b.String()
}
