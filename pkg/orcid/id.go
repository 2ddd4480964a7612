package orcid

import (
	"strings"

	"github.com/scholarly/authormatch/pkg/errors"
)

// URL prefixes accepted by Normalize.
var urlPrefixes = []string{
	"https://orcid.org/",
	"http://orcid.org/",
	"orcid.org/",
}

// Normalize converts an ORCID iD in any accepted form (bare, unhyphenated,
// or a registry URL) into the canonical 0000-0000-0000-000X representation,
// verifying the ISO 7064 mod 11-2 checksum. It returns an error satisfying
// errors.ErrInvalidID when the input is malformed or the checksum fails.
func Normalize(s string) (string, error) {
	id := strings.TrimSpace(s)
	for _, prefix := range urlPrefixes {
		if rest, ok := strings.CutPrefix(id, prefix); ok {
			id = rest
			break
		}
	}
	id = strings.ToUpper(strings.ReplaceAll(id, "-", ""))

	if len(id) != 16 {
		return "", errors.NewIDError("orcid", s, "expected 16 characters")
	}
	for i := 0; i < 15; i++ {
		if id[i] < '0' || id[i] > '9' {
			return "", errors.NewIDError("orcid", s, "non-digit character")
		}
	}
	last := id[15]
	if (last < '0' || last > '9') && last != 'X' {
		return "", errors.NewIDError("orcid", s, "invalid check character")
	}
	if checksum(id[:15]) != last {
		return "", errors.NewIDError("orcid", s, "checksum mismatch")
	}

	return id[0:4] + "-" + id[4:8] + "-" + id[8:12] + "-" + id[12:16], nil
}

// Valid reports whether s is a well-formed ORCID iD with a correct checksum.
func Valid(s string) bool {
	_, err := Normalize(s)
	return err == nil
}

// checksum computes the ISO 7064 mod 11-2 check character over the 15
// leading digits of an iD.
func checksum(digits string) byte {
	total := 0
	for i := 0; i < len(digits); i++ {
		total = (total + int(digits[i]-'0')) * 2
	}
	result := (12 - total%11) % 11
	if result == 10 {
		return 'X'
	}
	return byte('0' + result)
}
