// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Dexter626358/issuekit/internal/authors"
	"github.com/Dexter626358/issuekit/internal/metadoc"
)

var finalizeCmd = &cobra.Command{
	Use:   "finalize <document.json>",
	Short: "Finalize the author records of one article document",
	Long: `Finalize decides the corresponding author of a document from the
article text (--text), mirrors emails and identifier codes across the
RUS/ENG sub-records, renumbers the authors, and saves the document
back. With --reviewed the document is also marked as human-reviewed.`,
	Args: cobra.ExactArgs(1),
	RunE: runFinalize,
}

func runFinalize(cmd *cobra.Command, args []string) error {
	dir := filepath.Dir(args[0])
	name := strings.TrimSuffix(filepath.Base(args[0]), ".json")
	store := metadoc.NewStore(dir)

	doc, err := store.Load(name)
	if err != nil {
		return err
	}

	articleText := ""
	if textPath, _ := cmd.Flags().GetString("text"); textPath != "" {
		data, err := os.ReadFile(textPath)
		if err != nil {
			return fmt.Errorf("reading article text: %w", err)
		}
		articleText = string(data)
	}

	metadoc.EnsureAuthors(doc)
	authors.DetermineCorrespondence(doc.Authors, articleText)
	authors.MirrorEmail(doc.Authors)
	authors.MirrorCodes(doc.Authors)
	authors.Renumber(doc.Authors)

	if reviewed, _ := cmd.Flags().GetBool("reviewed"); reviewed {
		metadoc.MarkProcessed(doc)
	}

	if err := store.Save(name, doc); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "finalized %s: %d author(s)\n", args[0], len(doc.Authors))
	return nil
}

func init() {
	finalizeCmd.Flags().String("text", "", "file with the full article text used for correspondence detection")
	finalizeCmd.Flags().Bool("reviewed", false, "mark the document as human-reviewed")

	rootCmd.AddCommand(finalizeCmd)
}
