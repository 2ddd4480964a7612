package match

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const (
	// minTokens is the minimum number of tokens each name must have to be
	// comparable with the token algorithm.
	minTokens = 2

	// maxTokenCountDiff is the maximum allowed difference in token counts
	// between the two names.
	maxTokenCountDiff = 2

	// damping keeps token-based scores below 1.0, which is reserved for
	// exact full-string matches.
	damping = 0.95

	longWeight  = 1.0
	shortWeight = 0.75
	crossWeight = 0.5
)

// stripAccents decomposes characters and removes combining marks, so that
// e.g. "Lövei" and "Lovei" tokenize identically.
var stripAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// strokedLetters maps letters that carry their diacritic in the base
// character instead of a combining mark. Ł has no canonical decomposition,
// so the transform chain alone keeps the stroke.
var strokedLetters = strings.NewReplacer("Ł", "L", "ł", "l")

// tokenize normalizes a name into a sorted list of lower-case, accentless
// tokens, splitting on runs of whitespace, punctuation, symbols and dashes.
func tokenize(s string) []string {
	replaced := strokedLetters.Replace(s)
	folded, _, err := transform.String(stripAccents, replaced)
	if err != nil {
		folded = replaced
	}
	tokens := strings.FieldsFunc(strings.ToLower(folded), func(r rune) bool {
		return unicode.IsSpace(r) || unicode.IsPunct(r) || unicode.IsSymbol(r)
	})
	sort.Strings(tokens)
	return tokens
}

// Compare scores the similarity of two free-text names by token overlap and
// abbreviation compatibility, tolerating reordered, abbreviated, and
// accent-variant forms ("A. B. Smith" vs "Alice Barbara Smith").
//
// Whole-word agreements count as long matches, bare initials equal to bare
// initials as short matches, and an initial against a spelled-out token with
// the same first letter as cross matches. A match is declared only when at
// least one long match occurred and every token of the shorter name found a
// counterpart in the longer one.
//
// The returned confidence is in (0, 1); ok is false when the names are not
// comparable with this method (too few tokens, token counts too far apart)
// or no match was found. Compare(a, b) == Compare(b, a) for all inputs.
func Compare(a, b string) (confidence float64, ok bool) {
	t1 := tokenize(a)
	t2 := tokenize(b)

	n1 := len(t1)
	n2 := len(t2)

	if n1 < minTokens || n2 < minTokens {
		return 0, false
	}
	if diff := n1 - n2; diff > maxTokenCountDiff || -diff > maxTokenCountDiff {
		return 0, false
	}

	var longMatches, shortMatches, crossMatches int

	// First pass: whole-word matches only. Initial-like tokens are skipped
	// here and handled in the second pass. Matched tokens are removed so the
	// second pass only sees the leftovers.
	i, j := 0, 0
	for i < len(t1) && j < len(t2) {
		if utf8.RuneCountInString(t1[i]) < 2 {
			i++
			continue
		}
		if utf8.RuneCountInString(t2[j]) < 2 {
			j++
			continue
		}
		switch {
		case t1[i] < t2[j]:
			i++
		case t1[i] > t2[j]:
			j++
		default:
			longMatches++
			t1 = append(t1[:i], t1[i+1:]...)
			t2 = append(t2[:j], t2[j+1:]...)
		}
	}

	// Second pass: initials and abbreviations over the remaining tokens.
	// Both lists are still sorted, so cursors advance by leading character.
	i, j = 0, 0
	for i < len(t1) && j < len(t2) {
		c1, _ := utf8.DecodeRuneInString(t1[i])
		c2, _ := utf8.DecodeRuneInString(t2[j])

		switch {
		case c1 < c2:
			i++
		case c1 > c2:
			j++
		case t1[i] == t2[j]:
			if utf8.RuneCountInString(t1[i]) > 1 {
				longMatches++
			} else {
				shortMatches++
			}
			i++
			j++
		case utf8.RuneCountInString(t1[i]) == 1 || utf8.RuneCountInString(t2[j]) == 1:
			// One side is an initial of the other.
			crossMatches++
			i++
			j++
		case t1[i] < t2[j]:
			i++
		default:
			j++
		}
	}

	// Every token of the shorter name must have found a counterpart, and a
	// shared initial alone is never enough.
	if longMatches == 0 || longMatches+shortMatches+crossMatches != min(n1, n2) {
		return 0, false
	}

	score := (float64(longMatches)*longWeight +
		float64(shortMatches)*shortWeight +
		float64(crossMatches)*crossWeight) / float64(max(n1, n2))

	return score * damping, true
}
