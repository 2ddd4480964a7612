package match

import (
	"slices"
	"sort"
)

// FindMatches applies the strategies, in declaration order, to shrinking
// pools of unmatched entries and returns the union of every strategy's
// accepted matches. Entries claimed by one strategy are never seen by later
// ones, so each base entry and each enriching entry appears in at most one
// match across the whole run. Unmatched entries are simply absent from the
// result.
//
// All matches from strategy i precede all matches from strategy i+1. Within
// one strategy, matches are ordered by descending confidence; ties keep
// gathering order, i.e. enriching entries in pool order, then base entries in
// pool order. Nil input lists and a nil strategy list are treated as empty.
//
// The whole run is synchronous and deterministic given deterministic
// strategies; concurrent calls with disjoint inputs are independent.
func FindMatches[B, E comparable](base []B, enriching []E, strategies []Strategy[B, E]) []Match[B, E] {
	basePool := slices.Clone(base)
	enrichingPool := slices.Clone(enriching)

	var result []Match[B, E]
	for _, s := range strategies {
		if s == nil {
			continue
		}
		var accepted []Match[B, E]
		accepted, basePool, enrichingPool = evaluate(s, basePool, enrichingPool)
		result = append(result, accepted...)
	}
	return result
}

// evaluate runs a single strategy over the current pools. It is two-phase:
// gather candidates per enriching entry (applying the ambiguity rule), then
// resolve conflicts greedily by descending confidence so that no entry is
// claimed twice within the pass. Claimed entries are removed from the
// returned pools.
func evaluate[B, E comparable](
	s Strategy[B, E],
	basePool []B,
	enrichingPool []E,
) (accepted []Match[B, E], remainingBase []B, remainingEnriching []E) {
	if len(basePool) == 0 || len(enrichingPool) == 0 {
		return nil, basePool, enrichingPool
	}

	excluder, _ := s.(AmbiguityExcluder[B, E])

	var candidates []Match[B, E]
	for _, e := range enrichingPool {
		var forEntry []Match[B, E]
		for _, b := range basePool {
			if m, ok := s.TryMatch(b, e); ok {
				forEntry = append(forEntry, m)
			}
		}
		if len(forEntry) == 0 {
			continue
		}
		sort.SliceStable(forEntry, func(i, j int) bool {
			return forEntry[i].Confidence > forEntry[j].Confidence
		})
		// A lone candidate is accepted unconditionally. Multiple candidates
		// survive only if the strategy does not veto the set as a whole.
		if len(forEntry) == 1 || excluder == nil || !excluder.ExcludeAmbiguous(forEntry) {
			candidates = append(candidates, forEntry...)
		}
	}

	// Greedy global deduplication: highest confidence first, stable on ties,
	// each entry claimed at most once. Greedy is deliberate: a higher
	// confidence match can block a higher total-weight pairing elsewhere.
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Confidence > candidates[j].Confidence
	})

	claimedBase := make(map[B]struct{})
	claimedEnriching := make(map[E]struct{})
	for _, m := range candidates {
		if _, ok := claimedBase[m.Base]; ok {
			continue
		}
		if _, ok := claimedEnriching[m.Enriching]; ok {
			continue
		}
		claimedBase[m.Base] = struct{}{}
		claimedEnriching[m.Enriching] = struct{}{}
		accepted = append(accepted, m)
	}

	remainingBase = slices.DeleteFunc(basePool, func(b B) bool {
		_, ok := claimedBase[b]
		return ok
	})
	remainingEnriching = slices.DeleteFunc(enrichingPool, func(e E) bool {
		_, ok := claimedEnriching[e]
		return ok
	})
	return accepted, remainingBase, remainingEnriching
}
