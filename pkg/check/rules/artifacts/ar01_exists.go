package artifacts

import (
	"os"

	"github.com/leapstack-labs/nbcheck/pkg/check"
)

func init() {
	check.Register(check.CheckDef{
		ID:          "AR01",
		Name:        "artifacts.exists",
		Group:       "artifacts",
		Description: "Every required project file is present",
		Run:         checkExists,
	})
}

// checkExists emits one finding per required file, in catalog order.
// A missing file is a hard failure: the deliverable cannot be graded
// without it.
func checkExists(ctx *check.Context) []check.Finding {
	findings := make([]check.Finding, 0, len(ctx.Catalog.RequiredFiles))
	for _, rel := range ctx.Catalog.RequiredFiles {
		label := "Exists: " + rel
		if _, err := os.Stat(ctx.Path(rel)); err != nil {
			findings = append(findings, check.Failf("AR01", label, "Missing %s", rel))
			continue
		}
		findings = append(findings, check.Pass("AR01", label))
	}
	return findings
}
