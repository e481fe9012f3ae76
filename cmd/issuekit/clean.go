// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Dexter626358/issuekit/internal/textnorm"
)

var fieldKinds = map[string]textnorm.FieldKind{
	"plain":    textnorm.KindPlain,
	"abstract": textnorm.KindAbstract,
	"funding":  textnorm.KindFunding,
	"keywords": textnorm.KindKeywords,
}

var cleanCmd = &cobra.Command{
	Use:   "clean [file]",
	Short: "Normalize pasted field text",
	Long: `Clean normalizes text pasted from a PDF or Word extraction: it removes
soft hyphens, rejoins hyphenated line wraps and broken words, strips a
leading field label (per --kind), and collapses whitespace.

With --strip-headers the repeated page headers and footers of a
whole-issue text are removed first.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runClean,
}

func runClean(cmd *cobra.Command, args []string) error {
	kindName, _ := cmd.Flags().GetString("kind")
	kind, ok := fieldKinds[strings.ToLower(kindName)]
	if !ok {
		return fmt.Errorf("unknown kind %q (known: plain, abstract, funding, keywords)", kindName)
	}

	text, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	if stripHeaders, _ := cmd.Flags().GetBool("strip-headers"); stripHeaders {
		minRepeats, _ := cmd.Flags().GetInt("min-repeats")
		text = textnorm.StripRepeatedLines(text, minRepeats, nil)
	}

	fmt.Fprintln(cmd.OutOrStdout(), textnorm.Normalize(text, kind))
	return nil
}

func init() {
	cleanCmd.Flags().String("kind", "plain", "field kind: plain, abstract, funding, or keywords")
	cleanCmd.Flags().Bool("strip-headers", false, "remove repeated page headers and footers first")
	cleanCmd.Flags().Int("min-repeats", textnorm.DefaultMinRepeats, "occurrences before a line counts as a running header")

	rootCmd.AddCommand(cleanCmd)
}
