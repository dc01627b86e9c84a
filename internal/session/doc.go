// Package session composes the sequencer, chain runner and soundness
// session into the full nightly run and defines its exit semantics: the
// first non-zero status wins, success is running to completion.
package session
