package orcid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scholarly/authormatch/pkg/errors"
	"github.com/scholarly/authormatch/pkg/orcid"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"canonical form", "0000-0002-1825-0097", "0000-0002-1825-0097"},
		{"registry URL", "https://orcid.org/0000-0002-1825-0097", "0000-0002-1825-0097"},
		{"http URL", "http://orcid.org/0000-0002-1825-0097", "0000-0002-1825-0097"},
		{"bare host", "orcid.org/0000-0002-1825-0097", "0000-0002-1825-0097"},
		{"unhyphenated", "0000000218250097", "0000-0002-1825-0097"},
		{"lower-case check character", "0000-0003-2421-396x", "0000-0003-2421-396X"},
		{"surrounding whitespace", "  0000-0002-1825-0097\n", "0000-0002-1825-0097"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := orcid.Normalize(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeInvalid(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"empty", ""},
		{"too short", "0000-0002-1825"},
		{"too long", "0000-0002-1825-00971"},
		{"letters in body", "0000-00AB-1825-0097"},
		{"bad check character", "0000-0002-1825-009Y"},
		{"checksum mismatch", "0000-0002-1825-0098"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := orcid.Normalize(tt.in)
			require.Error(t, err)
			assert.True(t, errors.IsInvalidID(err))
		})
	}
}

func TestValid(t *testing.T) {
	assert.True(t, orcid.Valid("0000-0002-1825-0097"))
	assert.True(t, orcid.Valid("0000-0003-2421-396X"))
	assert.True(t, orcid.Valid("0000-0002-6467-9812"))
	assert.False(t, orcid.Valid("0000-0002-1825-0098"))
	assert.False(t, orcid.Valid("not an id"))
}
