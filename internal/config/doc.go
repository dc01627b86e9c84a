// Package config defines the format-agnostic session model: the ordered
// scenario list, chain runs and soundness spec that one nightly session
// executes, plus the construction-time validation of its invariants.
package config
