// Package hygiene provides repository hygiene checks: HY01 (.gitignore
// coverage) and HY02 (requirements.txt coverage). Gaps are warnings; only
// a missing file is a hard failure.
package hygiene
