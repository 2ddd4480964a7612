package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/scholarly/authormatch/pkg/errors"
	"github.com/scholarly/authormatch/pkg/match"
)

var compareCmd = &cobra.Command{
	Use:   "compare NAME1 NAME2",
	Short: "Score two names with the token and abbreviation algorithm",
	Long: `Compare tokenizes two free-text names and scores their similarity by
token overlap and abbreviation compatibility. Prints the confidence score on
a match; exits non-zero when the names do not match under this algorithm.

Examples:

  authormatch compare "Gabor L. Lövei" "Gabor Lovei"
  authormatch compare "A. B. Smith" "Alice Barbara Smith"`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		confidence, ok := match.Compare(args[0], args[1])
		if !ok {
			return errors.New("no match")
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%.4f\n", confidence)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(compareCmd)
}
