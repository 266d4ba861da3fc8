package check

import (
	"sort"
	"sync"
)

// globalRegistry is the single global registry for conformance checks.
var globalRegistry = &Registry{
	checks: make(map[string]CheckDef),
}

// Registry stores registered checks for discovery.
type Registry struct {
	mu     sync.RWMutex
	checks map[string]CheckDef // keyed by ID
}

// CheckDef is a declarative check definition. Checks are stateless; all
// context comes via the Run function's parameter.
type CheckDef struct {
	ID          string // Unique identifier, e.g. "AR01"
	Name        string // Human-readable name, e.g. "artifacts.exists"
	Group       string // Category: "artifacts", "hygiene", "notebooks", "data"
	Description string // Human-readable description
	Run         Run    // The check function
}

// Run is the function signature for conformance checks. Implementations
// must be total: every failure mode is converted into a Finding, never an
// error or a panic past the check boundary.
type Run func(ctx *Context) []Finding

// Register adds a check to the global registry.
// Call this from init() functions in check packages.
func Register(def CheckDef) {
	globalRegistry.mu.Lock()
	defer globalRegistry.mu.Unlock()
	globalRegistry.checks[def.ID] = def
}

// All returns every registered check ordered by ID. Check IDs are chosen
// so this order matches the report's evaluator order.
func All() []CheckDef {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()

	checks := make([]CheckDef, 0, len(globalRegistry.checks))
	for _, def := range globalRegistry.checks {
		checks = append(checks, def)
	}
	sort.Slice(checks, func(i, j int) bool { return checks[i].ID < checks[j].ID })
	return checks
}

// ByID returns a check by its ID.
func ByID(id string) (CheckDef, bool) {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()
	def, ok := globalRegistry.checks[id]
	return def, ok
}

// ByGroup returns all checks in a group, ordered by ID.
func ByGroup(group string) []CheckDef {
	var checks []CheckDef
	for _, def := range All() {
		if def.Group == group {
			checks = append(checks, def)
		}
	}
	return checks
}

// Count returns the number of registered checks.
func Count() int {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()
	return len(globalRegistry.checks)
}

// Clear removes all registered checks. Used for testing.
func Clear() {
	globalRegistry.mu.Lock()
	defer globalRegistry.mu.Unlock()
	globalRegistry.checks = make(map[string]CheckDef)
}
