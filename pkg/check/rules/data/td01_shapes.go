package data

import (
	"github.com/leapstack-labs/nbcheck/pkg/check"
)

func init() {
	check.Register(check.CheckDef{
		ID:          "TD01",
		Name:        "data.shapes",
		Group:       "data",
		Description: "Wine CSVs match the reference dataset shapes",
		Run:         checkShapes,
	})
}

// checkShapes reads both wine CSVs and compares their shapes against the
// UCI tolerance bands. A missing reader capability is only a WARN (shapes
// cannot be verified); a read error is a FAIL with the underlying error.
func checkShapes(ctx *check.Context) []check.Finding {
	const label = "Data shapes (approx UCI)"

	if ctx.Shapes == nil {
		return []check.Finding{check.Warnf("TD01", "Data shapes (red/white)",
			"tabular reader not available; cannot verify shapes")}
	}

	red, err := ctx.Shapes.ReadShape(ctx.Path(check.RedWinePath))
	if err != nil {
		return []check.Finding{check.Failf("TD01", label, "Error reading CSVs: %v", err)}
	}
	white, err := ctx.Shapes.ReadShape(ctx.Path(check.WhiteWinePath))
	if err != nil {
		return []check.Finding{check.Failf("TD01", label, "Error reading CSVs: %v", err)}
	}

	cat := ctx.Catalog
	ok := cat.RedShape.Contains(red.Rows, red.Cols) && cat.WhiteShape.Contains(white.Rows, white.Cols)
	if !ok {
		return []check.Finding{check.Warnf("TD01", label, "red=%s, white=%s", red, white)}
	}
	return []check.Finding{check.Passf("TD01", label, "red=%s, white=%s", red, white)}
}
