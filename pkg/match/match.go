// Package match pairs entries of two independently sourced name lists that
// refer to the same underlying individuals. A caller supplies a "base" list
// (names as they appear on a record) and an "enriching" list (candidate
// identity records), together with an ordered chain of strategies; the
// pipeline applies each strategy to shrinking pools of unmatched entries and
// returns every accepted pairing annotated with the strategy that produced it
// and a confidence score.
//
// Both entry types are opaque to the engine. Strategies read them only
// through caller-supplied extractor functions, and the pools track them by
// value identity, which is why both type parameters are constrained to
// comparable.
package match

// Match records one accepted pairing between a base entry and an enriching
// entry. Confidence is in [0, 1] and is set by the strategy that produced the
// match; Strategy is the name of that strategy, stamped by the pipeline
// before the match is exposed.
type Match[B, E comparable] struct {
	Base       B       `json:"base"       yaml:"base"`
	Enriching  E       `json:"enriching"  yaml:"enriching"`
	Strategy   string  `json:"strategy"   yaml:"strategy"`
	Confidence float64 `json:"confidence" yaml:"confidence"`
}

// NewMatch builds a match with a provisional empty strategy name. The
// pipeline overwrites the name with the owning strategy's own, so comparison
// functions never need to know which strategy they are plugged into.
func NewMatch[B, E comparable](base B, enriching E, confidence float64) Match[B, E] {
	return Match[B, E]{Base: base, Enriching: enriching, Confidence: confidence}
}

// WithStrategy returns a copy of the match carrying the given strategy name.
func (m Match[B, E]) WithStrategy(name string) Match[B, E] {
	m.Strategy = name
	return m
}
