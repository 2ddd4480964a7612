package cmd

import (
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/scholarly/authormatch/internal/cmd/output"
	"github.com/scholarly/authormatch/pkg/errors"
	"github.com/scholarly/authormatch/pkg/logging"
	"github.com/scholarly/authormatch/pkg/match"
	"github.com/scholarly/authormatch/pkg/orcid"
)

// document is the input format of the match command: the byline author names
// of one record plus candidate ORCID author records. YAML and JSON both parse.
type document struct {
	Authors    []string       `yaml:"authors"`
	Candidates []orcid.Author `yaml:"candidates"`
}

// matchResult is one row of the match command's output.
type matchResult struct {
	Author     string  `json:"author"         yaml:"author"`
	ORCID      string  `json:"orcid"          yaml:"orcid"`
	Candidate  string  `json:"candidate"      yaml:"candidate"`
	Strategy   string  `json:"strategy"       yaml:"strategy"`
	Confidence float64 `json:"confidence"     yaml:"confidence"`
}

// matchReport is the full output of the match command.
type matchReport struct {
	Matches             []matchResult  `json:"matches"              yaml:"matches"`
	UnmatchedAuthors    []string       `json:"unmatched_authors,omitempty"    yaml:"unmatched_authors,omitempty"`
	UnmatchedCandidates []orcid.Author `json:"unmatched_candidates,omitempty" yaml:"unmatched_candidates,omitempty"`
}

var matchCmd = &cobra.Command{
	Use:   "match [file]",
	Short: "Match author names against ORCID candidate records",
	Long: `Match reads a YAML or JSON document holding the author names of one
record and a list of candidate ORCID author records, runs the standard
strategy chain, and prints the accepted pairings.

Reads from stdin when no file is given or the file is "-".

Input document:

  authors:
    - Marco Ferrante
    - Gabor L. Lövei
  candidates:
    - given_name: Marco
      family_name: Ferrante
      orcid: 0000-0003-2421-396X`,
	Args: cobra.MaximumNArgs(1),
	RunE: runMatch,
}

func init() {
	rootCmd.AddCommand(matchCmd)
}

func runMatch(cmd *cobra.Command, args []string) error {
	log := logging.Default()

	doc, err := readDocument(args)
	if err != nil {
		return err
	}
	if len(doc.Authors) == 0 {
		return errors.NewValidationError("authors", nil, "document has no author names")
	}

	// Canonicalize iDs up front; malformed iDs are reported but the record
	// still participates in name matching.
	for i, c := range doc.Candidates {
		if c.ID == "" {
			continue
		}
		id, err := orcid.Normalize(c.ID)
		if err != nil {
			log.Warn().Err(err).Str("candidate", c.FullName()).Msg("Keeping unnormalized iD")
			continue
		}
		doc.Candidates[i].ID = id
	}

	extract := func(name string) (string, bool) { return name, name != "" }
	matches := match.FindMatches(doc.Authors, doc.Candidates, orcid.Strategies(extract))

	log.Debug().
		Int("authors", len(doc.Authors)).
		Int("candidates", len(doc.Candidates)).
		Int("matches", len(matches)).
		Msg("Matching complete")

	report := buildReport(doc, matches)

	format := output.DetectFormat(viper.GetString("output"))
	if _, err := output.ParseFormat(string(format)); err != nil {
		return err
	}
	if format == output.FormatTable {
		return output.NewFormatter(format).Format(cmd.OutOrStdout(), reportTable(report))
	}
	return output.NewFormatter(format).Format(cmd.OutOrStdout(), report)
}

// readDocument loads the input document from the file argument or stdin.
func readDocument(args []string) (*document, error) {
	path := "-"
	if len(args) > 0 {
		path = args[0]
	}

	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
		path = "stdin"
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, errors.WrapIO("read", path, err)
	}

	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.WrapParse("yaml", path, err)
	}
	return &doc, nil
}

// buildReport derives the unmatched remainders from the match list. The
// engine reports non-matches only by absence, so the CLI reconstructs them.
func buildReport(doc *document, matches []match.Match[string, orcid.Author]) matchReport {
	report := matchReport{Matches: make([]matchResult, 0, len(matches))}

	matchedAuthors := make(map[string]struct{}, len(matches))
	matchedCandidates := make(map[orcid.Author]struct{}, len(matches))
	for _, m := range matches {
		report.Matches = append(report.Matches, matchResult{
			Author:     m.Base,
			ORCID:      m.Enriching.ID,
			Candidate:  m.Enriching.FullName(),
			Strategy:   m.Strategy,
			Confidence: m.Confidence,
		})
		matchedAuthors[m.Base] = struct{}{}
		matchedCandidates[m.Enriching] = struct{}{}
	}

	for _, a := range doc.Authors {
		if _, ok := matchedAuthors[a]; !ok && !slices.Contains(report.UnmatchedAuthors, a) {
			report.UnmatchedAuthors = append(report.UnmatchedAuthors, a)
		}
	}
	for _, c := range doc.Candidates {
		if _, ok := matchedCandidates[c]; !ok {
			report.UnmatchedCandidates = append(report.UnmatchedCandidates, c)
		}
	}
	return report
}

// reportTable flattens a report for table output.
func reportTable(report matchReport) output.Data {
	data := output.Data{
		Headers: []string{"AUTHOR", "ORCID", "CANDIDATE", "STRATEGY", "CONFIDENCE"},
	}
	for _, m := range report.Matches {
		data.Rows = append(data.Rows, []string{
			m.Author, m.ORCID, m.Candidate, m.Strategy, fmt.Sprintf("%.3f", m.Confidence),
		})
	}
	for _, a := range report.UnmatchedAuthors {
		data.Rows = append(data.Rows, []string{a, "", "", "unmatched", ""})
	}
	return data
}
