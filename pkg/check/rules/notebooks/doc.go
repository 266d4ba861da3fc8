// Package notebooks provides notebook content checks.
//
// These checks search cell source text for required markers and inspect
// output records for rendered figures:
//
//   - NB01: Problem framing - topical markers, repro cell, saved outputs
//   - NB02: Data understanding - load/label/concat markers, figures,
//     interpretation notes, no training code, saved outputs
//
// Both operate on documents loaded through the Context's notebook reader;
// when the reader is unavailable they degrade to a FAIL finding.
package notebooks
