// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Dexter626358/issuekit/internal/metadoc"
	"github.com/Dexter626358/issuekit/internal/xmlgen"
)

var statusCmd = &cobra.Command{
	Use:   "status <issue-folder>",
	Short: "Report the review state of an issue",
	Long: `Status lists the article documents of an issue folder with their
review state and any structural weaknesses that would surface as
warnings during build.`,
	Args: cobra.ExactArgs(1),
	RunE: runStatus,
}

func runStatus(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	store := metadoc.NewStore(filepath.Join(args[0], "json"))

	names, err := store.List()
	if err != nil {
		return err
	}
	if len(names) == 0 {
		return fmt.Errorf("no article documents in %s", store.Dir())
	}

	reviewed := 0
	for _, name := range names {
		doc, err := store.Load(name)
		if err != nil {
			fmt.Fprintf(out, "%-40s load error: %v\n", name, err)
			continue
		}
		state := "pending"
		if doc.Reviewed() {
			state = "reviewed"
			reviewed++
		}
		warnings := xmlgen.CheckDocument(doc)
		// The review flag has its own column; do not repeat it per line.
		warnings = dropWarning(warnings, "not marked as reviewed")
		if len(warnings) == 0 {
			fmt.Fprintf(out, "%-40s %s\n", name, state)
		} else {
			fmt.Fprintf(out, "%-40s %s  (%s)\n", name, state, strings.Join(warnings, "; "))
		}
	}
	fmt.Fprintf(out, "\n%d of %d article(s) reviewed\n", reviewed, len(names))
	return nil
}

func dropWarning(warnings []string, drop string) []string {
	out := warnings[:0]
	for _, w := range warnings {
		if w != drop {
			out = append(out, w)
		}
	}
	return out
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
