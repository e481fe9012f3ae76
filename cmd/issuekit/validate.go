// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Dexter626358/issuekit/internal/xmlgen"
)

var validateCmd = &cobra.Command{
	Use:   "validate <file.xml>...",
	Short: "Check delivery XML files structurally",
	Long: `Validate parses each delivery file and checks the journal and issue
skeleton plus every article against the structural rules of the
delivery format. Findings known to be accepted on ingest (empty volume,
empty references, empty authorCodes) are filtered out.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	failed := 0
	noted := false
	for _, path := range args {
		res := xmlgen.Validate(path)
		if res.Structural && !noted {
			fmt.Fprintln(out, "note: structural check only, not a full schema validation")
			noted = true
		}
		if res.Valid {
			fmt.Fprintf(out, "%s: ok\n", path)
			continue
		}
		failed++
		fmt.Fprintf(out, "%s: %d finding(s)\n", path, len(res.Errors))
		for _, msg := range res.Errors {
			fmt.Fprintf(out, "  - %s\n", msg)
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d file(s) had findings", failed)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
