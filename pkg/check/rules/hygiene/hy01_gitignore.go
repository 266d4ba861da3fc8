package hygiene

import (
	"os"
	"strings"

	"github.com/leapstack-labs/nbcheck/pkg/check"
)

func init() {
	check.Register(check.CheckDef{
		ID:          "HY01",
		Name:        "hygiene.gitignore",
		Group:       "hygiene",
		Description: ".gitignore covers checkpoints, caches, and future notebooks",
		Run:         checkGitignore,
	})
}

// checkGitignore verifies the required ignore rules appear in .gitignore.
// Missing rules are a hygiene gap, not a correctness blocker, so they
// surface as a single WARN listing what to add.
func checkGitignore(ctx *check.Context) []check.Finding {
	const label = "gitignore includes required rules"

	raw, err := os.ReadFile(ctx.Path(".gitignore"))
	if err != nil {
		return []check.Finding{check.Failf("HY01", label, ".gitignore not found")}
	}

	text := string(raw)
	var missing []string
	for _, pat := range ctx.Catalog.IgnorePatterns {
		if !pat.Re.MatchString(text) {
			missing = append(missing, pat.Name)
		}
	}
	if len(missing) > 0 {
		return []check.Finding{check.Warnf("HY01", label, "Add patterns: %s", strings.Join(missing, ", "))}
	}
	return []check.Finding{check.Pass("HY01", label)}
}
