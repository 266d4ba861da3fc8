package hygiene

import (
	"os"
	"regexp"
	"sort"
	"strings"

	"github.com/leapstack-labs/nbcheck/pkg/check"
)

func init() {
	check.Register(check.CheckDef{
		ID:          "HY02",
		Name:        "hygiene.requirements",
		Group:       "hygiene",
		Description: "requirements.txt declares the minimal dependency set",
		Run:         checkRequirements,
	})
}

// pinSeparator splits a requirement line into name and version pin.
// Covers ==, >=, <=, ~=, != and bare < / >.
var pinSeparator = regexp.MustCompile(`[=<>~!]`)

// checkRequirements parses requirements.txt and verifies the catalog's
// minimal dependencies are declared, case-insensitively and regardless of
// version pins.
func checkRequirements(ctx *check.Context) []check.Finding {
	const label = "requirements includes minimal deps"

	raw, err := os.ReadFile(ctx.Path("requirements.txt"))
	if err != nil {
		return []check.Finding{check.Failf("HY02", label, "requirements.txt not found")}
	}

	declared := make(map[string]bool)
	for _, line := range strings.Split(string(raw), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		name := line
		if loc := pinSeparator.FindStringIndex(line); loc != nil {
			name = line[:loc[0]]
		}
		declared[strings.ToLower(strings.TrimSpace(name))] = true
	}

	var missing []string
	for _, dep := range ctx.Catalog.MinRequirements {
		if !declared[strings.ToLower(dep)] {
			missing = append(missing, strings.ToLower(dep))
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return []check.Finding{check.Warnf("HY02", label, "Missing: %s", strings.Join(missing, ", "))}
	}
	return []check.Finding{check.Pass("HY02", label)}
}
