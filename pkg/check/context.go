package check

import (
	"log/slog"
	"path/filepath"

	"github.com/leapstack-labs/nbcheck/pkg/notebook"
	"github.com/leapstack-labs/nbcheck/pkg/tabular"
)

// Context carries everything a check may read: the project root, the
// immutable catalog, and the optional reading capabilities. Checks never
// mutate it, so they are free to run in any order or in parallel.
//
// A nil Notebooks or Shapes field models a missing capability; checks
// degrade to a FAIL or WARN finding instead of crashing.
type Context struct {
	Root      string
	Catalog   *Catalog
	Notebooks notebook.Loader
	Shapes    tabular.ShapeReader
	Logger    *slog.Logger
}

// NewContext returns a Context with the default catalog and the
// filesystem-backed readers.
func NewContext(root string) *Context {
	return &Context{
		Root:      root,
		Catalog:   DefaultCatalog(),
		Notebooks: notebook.NewReader(),
		Shapes:    tabular.NewReader(';'),
		Logger:    slog.New(slog.DiscardHandler),
	}
}

// Path resolves a catalog-relative path against the project root.
func (c *Context) Path(rel string) string {
	return filepath.Join(c.Root, rel)
}
