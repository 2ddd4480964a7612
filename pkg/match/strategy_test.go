package match_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scholarly/authormatch/pkg/match"
)

func identity(s string) (string, bool) { return s, s != "" }

func TestStrategyStampsName(t *testing.T) {
	// The comparison function sets its own strategy name; the strategy must
	// override it.
	s := match.New("outer", func(b, e string) (match.Match[string, string], bool) {
		if b != e {
			return match.Match[string, string]{}, false
		}
		return match.NewMatch(b, e, 0.5).WithStrategy("inner"), true
	})

	m, ok := s.TryMatch("x", "x")
	require.True(t, ok)
	assert.Equal(t, "outer", m.Strategy)
	assert.Equal(t, 0.5, m.Confidence)

	_, ok = s.TryMatch("x", "y")
	assert.False(t, ok)
}

func TestEqualFold(t *testing.T) {
	s := match.EqualFold("exact", identity, identity)

	m, ok := s.TryMatch("Otto, Philipp", "OTTO, PHILIPP")
	require.True(t, ok)
	assert.Equal(t, "exact", m.Strategy)
	assert.Equal(t, 1.0, m.Confidence)

	// Accent-sensitive: folding does not strip diacritics.
	_, ok = s.TryMatch("Michal Pilipczuk", "Michał Pilipczuk")
	assert.False(t, ok)

	// Absent values never match, not even against each other.
	_, ok = s.TryMatch("", "")
	assert.False(t, ok)
}

func TestTokensStrategy(t *testing.T) {
	s := match.Tokens("tokens", identity, identity)

	m, ok := s.TryMatch("Gabor L. Lövei", "Gabor Lovei")
	require.True(t, ok)
	assert.Equal(t, "tokens", m.Strategy)
	assert.InDelta(t, 2.0/3.0*0.95, m.Confidence, 1e-12)

	_, ok = s.TryMatch("Smith", "J Smith")
	assert.False(t, ok)
}

func TestWithExclusion(t *testing.T) {
	var seen []match.Match[string, string]
	s := match.EqualFold("exact", identity, identity,
		match.WithExclusion(func(candidates []match.Match[string, string]) bool {
			seen = candidates
			return true
		}))

	excluder, ok := s.(match.AmbiguityExcluder[string, string])
	require.True(t, ok)

	candidates := []match.Match[string, string]{
		match.NewMatch("a", "b", 1.0),
		match.NewMatch("c", "b", 1.0),
	}
	assert.True(t, excluder.ExcludeAmbiguous(candidates))
	assert.Len(t, seen, 2)
}
