// Package check provides the conformance-checking framework.
//
// # Architecture
//
// The package has three layers:
//
//  1. Root package (pkg/check/): shared contracts — Status, Finding,
//     Catalog, Context, the registry, the Runner, and the Report.
//  2. Check packages (pkg/check/rules/...): one package per concern,
//     each registering its checks via init().
//  3. Readers (pkg/notebook, pkg/tabular): the document and tabular
//     capabilities checks consume through the Context.
//
// # Check Registration
//
// Checks register themselves when their package is imported:
//
//	import _ "github.com/leapstack-labs/nbcheck/pkg/check/rules"
//
// Check IDs sort into the report's evaluator order:
//
//   - AR (Artifacts): required files exist
//   - HY (Hygiene): .gitignore and requirements.txt coverage
//   - NB (Notebooks): notebook content and output markers
//   - TD (Tabular Data): dataset shapes
//
// # Severity policy
//
// FAIL is reserved for conditions that make the deliverable unusable or
// non-compliant: a missing required artifact, an unreadable document,
// training code in the exploration notebook, or a visualization notebook
// saved without outputs. WARN marks quality and completeness gaps the
// student can iterate on. WARN never affects the exit code.
//
// # Running checks
//
//	ctx := check.NewContext(root)
//	runner := check.NewRunner(nil)
//	report := check.Summarize(runner.Run(ctx))
//	fmt.Print(report.Render())
package check
