package notebooks

import (
	"strings"

	"github.com/leapstack-labs/nbcheck/pkg/check"
	"github.com/leapstack-labs/nbcheck/pkg/notebook"
)

func init() {
	check.Register(check.CheckDef{
		ID:          "NB02",
		Name:        "notebooks.understanding",
		Group:       "notebooks",
		Description: "Data-understanding notebook explores without training and renders figures",
		Run:         checkUnderstanding,
	})
}

// checkUnderstanding inspects the data-understanding notebook, in order:
// load markers, class-balance visualization evidence, figure richness,
// interpretation notes, the anti-scope-creep guard, and saved outputs.
//
// Two conditions are hard failures: training code in what must remain an
// exploration-only notebook, and a notebook saved without outputs (its
// deliverable value is the rendered figures).
func checkUnderstanding(ctx *check.Context) []check.Finding {
	doc, fail := loadNotebook(ctx, "NB02", "Notebook 02 loads", check.UnderstandingNotebookPath)
	if doc == nil {
		return []check.Finding{fail}
	}
	findings := []check.Finding{check.Pass("NB02", "Notebook 02 loads")}

	cat := ctx.Catalog

	// 1. Load + label + concat code markers.
	foundCode := doc.FindPatterns(cat.LoadMarkers, notebook.Code)
	if missing := missingNames(cat.LoadMarkers, foundCode); len(missing) > 0 {
		findings = append(findings, check.Warnf("NB02", "NB02: Data load + label (0/1) + concat",
			"Missing patterns: %s", strings.Join(missing, ", ")))
	} else {
		findings = append(findings, check.Pass("NB02", "NB02: Data load + label (0/1) + concat"))
	}

	// 2. Visualization evidence: a plotting call plus at least one
	// rendered image.
	foundVis := doc.FindPatterns(cat.VisMarkers, notebook.Code)
	imgCount := doc.CountImageOutputs()
	if len(foundVis) == 0 || imgCount < 1 {
		findings = append(findings, check.Warnf("NB02", "NB02: Class balance figure + output",
			"Add a bar/plot of class counts and ensure outputs are saved."))
	} else {
		findings = append(findings, check.Passf("NB02", "NB02: Class balance figure + output",
			"Detected %d image outputs.", imgCount))
	}

	// 3. Richness: the notebook should explore features, not just count
	// classes.
	if imgCount >= 2 {
		findings = append(findings, check.Passf("NB02", "NB02: >=2 feature visuals present",
			"Detected %d image outputs.", imgCount))
	} else {
		findings = append(findings, check.Warnf("NB02", "NB02: >=2 feature visuals present",
			"Add at least two feature plots (e.g., boxplots/hist by class)."))
	}

	// 4. Interpretation notes under figures.
	notes := countInterpretationNotes(doc, cat)
	if notes >= 2 {
		findings = append(findings, check.Passf("NB02", "NB02: Figure interpretations present",
			"%d interpretation notes found.", notes))
	} else {
		findings = append(findings, check.Warnf("NB02", "NB02: Figure interpretations present",
			"Add 2-3 line interpretations under figures (use the word 'Interpretation' to pass this check)."))
	}

	// 5. Anti-scope-creep: training must not leak into exploration.
	codeText := doc.SourceByType(notebook.Code)
	if hasTrainingCode(codeText, cat) {
		findings = append(findings, check.Failf("NB02", "NB02: No model training appears",
			"Detected model training patterns ('.fit(' or classifier names). Move training to the modeling notebook."))
	} else {
		findings = append(findings, check.Pass("NB02", "NB02: No model training appears"))
	}

	// 6. Outputs are the deliverable here, so absence is a hard failure.
	if doc.HasAnyOutput() {
		findings = append(findings, check.Pass("NB02", "NB02: Saved with outputs"))
	} else {
		findings = append(findings, check.Failf("NB02", "NB02: Saved with outputs",
			"Run all cells and save the notebook with outputs so figures render."))
	}

	return findings
}

// countInterpretationNotes counts markdown cells that mention an
// interpretation keyword and carry at least MinInterpWords words, plus
// code cells that mention a keyword at any length (printed
// interpretations).
func countInterpretationNotes(doc *notebook.Document, cat *check.Catalog) int {
	n := 0
	for c := range doc.CellsByType(notebook.Markdown) {
		text := strings.ToLower(c.Source)
		if containsAny(text, cat.InterpKeywords) && len(strings.Fields(text)) >= cat.MinInterpWords {
			n++
		}
	}
	for c := range doc.CellsByType(notebook.Code) {
		if containsAny(strings.ToLower(c.Source), cat.InterpKeywords) {
			n++
		}
	}
	return n
}

// hasTrainingCode reports whether the concatenated code text contains a
// model-fit call or any cataloged classifier name.
func hasTrainingCode(codeText string, cat *check.Catalog) bool {
	if cat.FitCall.MatchString(codeText) {
		return true
	}
	for _, name := range cat.ClassifierNames {
		if strings.Contains(codeText, name) {
			return true
		}
	}
	return false
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
