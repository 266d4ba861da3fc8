// Package rules registers all conformance checks.
// Import this package to register every check with the global registry.
package rules

import (
	// Blank imports trigger init() functions that register checks with the global registry.
	_ "github.com/leapstack-labs/nbcheck/pkg/check/rules/artifacts" // registers AR* checks
	_ "github.com/leapstack-labs/nbcheck/pkg/check/rules/data"      // registers TD* checks
	_ "github.com/leapstack-labs/nbcheck/pkg/check/rules/hygiene"   // registers HY* checks
	_ "github.com/leapstack-labs/nbcheck/pkg/check/rules/notebooks" // registers NB* checks
)
