// Package orcid carries the ORCID-side value objects used when enriching
// author lists with ORCID iDs: the candidate author record as it appears in
// an ORCID work summary, iD normalization and checksum validation, and the
// standard strategy chain for matching candidates against display names.
package orcid

import (
	"strings"

	"github.com/scholarly/authormatch/pkg/match"
)

// Author is one candidate identity record from ORCID. CreditName is the
// "published name" some researchers register, which often matches the byline
// when given/family names do not.
type Author struct {
	GivenName  string `json:"given_name"  yaml:"given_name"`
	FamilyName string `json:"family_name" yaml:"family_name"`
	CreditName string `json:"credit_name,omitempty" yaml:"credit_name,omitempty"`
	ID         string `json:"orcid"       yaml:"orcid"`
}

// FullName returns "Given Family", with either part omitted when empty.
func (a Author) FullName() string {
	return joinName(a.GivenName, a.FamilyName)
}

// InvertedFullName returns "Family Given", with either part omitted when
// empty. Bylines frequently invert name order, so the standard chain compares
// against both forms.
func (a Author) InvertedFullName() string {
	return joinName(a.FamilyName, a.GivenName)
}

func joinName(first, second string) string {
	first = strings.TrimSpace(first)
	second = strings.TrimSpace(second)
	switch {
	case first == "":
		return second
	case second == "":
		return first
	default:
		return first + " " + second
	}
}

// Extractors for the matching strategies. Empty fields report ok == false so
// a record without a credit name can never equal-match another such record.

func fullName(a Author) (string, bool) {
	s := a.FullName()
	return s, s != ""
}

func invertedFullName(a Author) (string, bool) {
	s := a.InvertedFullName()
	return s, s != ""
}

func creditName(a Author) (string, bool) {
	s := strings.TrimSpace(a.CreditName)
	return s, s != ""
}

// Standard strategy names.
const (
	StrategyFullName         = "fullName"
	StrategyInvertedFullName = "invertedFullName"
	StrategyOrderedTokens    = "orderedTokens"
	StrategyCreditName       = "creditName"
)

// Strategies returns the standard matching chain for pairing base entries
// with ORCID candidates, in the order it should run: exact full name, exact
// inverted full name, token/abbreviation similarity, exact credit name. The
// extractor yields the display name of a base entry.
func Strategies[B comparable](extract match.Extractor[B]) []match.Strategy[B, Author] {
	return []match.Strategy[B, Author]{
		match.EqualFold(StrategyFullName, extract, fullName),
		match.EqualFold(StrategyInvertedFullName, extract, invertedFullName),
		match.Tokens(StrategyOrderedTokens, extract, fullName),
		match.EqualFold(StrategyCreditName, extract, creditName),
	}
}
