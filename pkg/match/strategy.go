package match

import "strings"

// Extractor pulls a comparable string out of an opaque entry. Returning
// ok == false means the entry carries no value for this strategy, which is
// an expected outcome, not an error.
type Extractor[T any] func(T) (value string, ok bool)

// Func attempts to produce a match for one (base, enriching) pair. It must
// be a pure function of its two arguments.
type Func[B, E comparable] func(base B, enriching E) (Match[B, E], bool)

// Strategy is one named comparison technique applied pairwise between base
// and enriching entries. Strategies may additionally implement
// AmbiguityExcluder to veto ambiguous candidate sets.
type Strategy[B, E comparable] interface {
	// Name identifies the strategy in the matches it produces.
	Name() string

	// TryMatch attempts to produce a match for one pair.
	TryMatch(base B, enriching E) (Match[B, E], bool)
}

// AmbiguityExcluder is an optional Strategy extension. When a single
// enriching entry matched more than one base entry, the pipeline hands the
// whole candidate set (sorted by descending confidence) to ExcludeAmbiguous;
// returning true means "too ambiguous to trust" and discards the set. It is
// never consulted for a single candidate, and never across enriching entries.
type AmbiguityExcluder[B, E comparable] interface {
	ExcludeAmbiguous(candidates []Match[B, E]) bool
}

// strategy is the concrete implementation behind the constructor functions.
type strategy[B, E comparable] struct {
	name    string
	fn      Func[B, E]
	exclude func([]Match[B, E]) bool
}

// Option configures a strategy built by one of the constructors.
type Option[B, E comparable] func(*strategy[B, E])

// WithExclusion attaches an ambiguity-exclusion predicate to the strategy.
func WithExclusion[B, E comparable](pred func([]Match[B, E]) bool) Option[B, E] {
	return func(s *strategy[B, E]) {
		s.exclude = pred
	}
}

// New builds a strategy from an arbitrary pairwise comparison function. The
// strategy name is stamped onto every match the function produces, overriding
// whatever name the function set itself, so step identity is always
// attributable to the strategy, not to its implementation.
func New[B, E comparable](name string, fn Func[B, E], opts ...Option[B, E]) Strategy[B, E] {
	s := &strategy[B, E]{name: name, fn: fn}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// EqualFold builds a strategy that matches when the two extracted strings are
// equal under Unicode case folding (accent-sensitive), with confidence 1.0.
// Absent or empty extracted values never match.
func EqualFold[B, E comparable](name string, base Extractor[B], enriching Extractor[E], opts ...Option[B, E]) Strategy[B, E] {
	return New(name, func(b B, e E) (Match[B, E], bool) {
		s1, ok := base(b)
		if !ok || s1 == "" {
			return Match[B, E]{}, false
		}
		s2, ok := enriching(e)
		if !ok || s2 == "" {
			return Match[B, E]{}, false
		}
		if !strings.EqualFold(s1, s2) {
			return Match[B, E]{}, false
		}
		return NewMatch(b, e, 1.0), true
	}, opts...)
}

// Tokens builds a strategy that scores the two extracted strings with the
// token and abbreviation algorithm of Compare.
func Tokens[B, E comparable](name string, base Extractor[B], enriching Extractor[E], opts ...Option[B, E]) Strategy[B, E] {
	return New(name, func(b B, e E) (Match[B, E], bool) {
		s1, ok := base(b)
		if !ok {
			return Match[B, E]{}, false
		}
		s2, ok := enriching(e)
		if !ok {
			return Match[B, E]{}, false
		}
		confidence, ok := Compare(s1, s2)
		if !ok {
			return Match[B, E]{}, false
		}
		return NewMatch(b, e, confidence), true
	}, opts...)
}

// Name returns the strategy name.
func (s *strategy[B, E]) Name() string { return s.name }

// TryMatch runs the comparison function and stamps the strategy name on any
// match it produced.
func (s *strategy[B, E]) TryMatch(base B, enriching E) (Match[B, E], bool) {
	m, ok := s.fn(base, enriching)
	if !ok {
		return Match[B, E]{}, false
	}
	return m.WithStrategy(s.name), true
}

// ExcludeAmbiguous reports whether the candidate set should be discarded.
// Without a configured predicate nothing is ever excluded.
func (s *strategy[B, E]) ExcludeAmbiguous(candidates []Match[B, E]) bool {
	if s.exclude == nil {
		return false
	}
	return s.exclude(candidates)
}
