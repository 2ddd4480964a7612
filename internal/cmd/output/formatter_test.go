package output_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scholarly/authormatch/internal/cmd/output"
)

func TestParseFormat(t *testing.T) {
	for _, valid := range []string{"table", "json", "yaml", "JSON", ""} {
		_, err := output.ParseFormat(valid)
		assert.NoError(t, err, "format %q", valid)
	}

	_, err := output.ParseFormat("xml")
	assert.Error(t, err)
}

func TestJSONFormatter(t *testing.T) {
	var buf bytes.Buffer
	f := output.NewFormatter(output.FormatJSON)

	err := f.Format(&buf, map[string]any{"confidence": 0.95})
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, 0.95, decoded["confidence"])
}

func TestYAMLFormatter(t *testing.T) {
	var buf bytes.Buffer
	f := output.NewFormatter(output.FormatYAML)

	err := f.Format(&buf, map[string]string{"author": "Marco Ferrante"})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "author: Marco Ferrante")
}

func TestTableFormatter(t *testing.T) {
	var buf bytes.Buffer
	f := output.NewFormatter(output.FormatTable)

	err := f.Format(&buf, output.Data{
		Headers: []string{"AUTHOR", "ORCID"},
		Rows: [][]string{
			{"Marco Ferrante", "0000-0003-2421-396X"},
		},
	})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Marco Ferrante")
	assert.Contains(t, buf.String(), "0000-0003-2421-396X")
}

func TestTableFormatterFallsBackToJSON(t *testing.T) {
	var buf bytes.Buffer
	f := output.NewFormatter(output.FormatTable)

	err := f.Format(&buf, map[string]int{"matches": 3})
	require.NoError(t, err)
	assert.JSONEq(t, `{"matches": 3}`, buf.String())
}
