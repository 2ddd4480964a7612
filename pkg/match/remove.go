package match

import "slices"

// RemoveMatches pairs off names across two plain string lists using the
// given equality predicate: each base name claims the first enriching name it
// matches, and both leave their lists. It returns the matched names as
// alternating base/enriching pairs plus whatever remains unmatched on either
// side. The inputs are not modified; nil lists are treated as empty.
//
// Typical predicate: strings.EqualFold.
func RemoveMatches(base, enriching []string, eq func(base, enriching string) bool) (matched, remainingBase, remainingEnriching []string) {
	remainingEnriching = slices.Clone(enriching)
	for _, b := range base {
		i := slices.IndexFunc(remainingEnriching, func(e string) bool {
			return eq(b, e)
		})
		if i < 0 {
			remainingBase = append(remainingBase, b)
			continue
		}
		matched = append(matched, b, remainingEnriching[i])
		remainingEnriching = slices.Delete(remainingEnriching, i, i+1)
	}
	return matched, remainingBase, remainingEnriching
}
