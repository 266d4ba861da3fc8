package notebooks

import (
	"github.com/leapstack-labs/nbcheck/pkg/check"
	"github.com/leapstack-labs/nbcheck/pkg/notebook"
)

// loadNotebook loads a notebook through the context's reader. On any
// failure it returns a nil document and the FAIL finding to emit: a
// notebook that cannot be read (or a missing reader capability) blocks
// every downstream content check.
func loadNotebook(ctx *check.Context, checkID, label, rel string) (*notebook.Document, check.Finding) {
	if ctx.Notebooks == nil {
		return nil, check.Failf(checkID, label, "Cannot open: notebook reader unavailable")
	}
	doc, err := ctx.Notebooks.Load(ctx.Path(rel))
	if err != nil {
		return nil, check.Failf(checkID, label, "Cannot open: %v", err)
	}
	return doc, check.Finding{}
}

// missingNames returns the names of patterns absent from the found set,
// in catalog order.
func missingNames(patterns []notebook.Pattern, found map[string]bool) []string {
	var missing []string
	for _, p := range patterns {
		if !found[p.Name] {
			missing = append(missing, p.Name)
		}
	}
	return missing
}
