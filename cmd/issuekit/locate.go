// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Dexter626358/issuekit/internal/locate"
	"github.com/Dexter626358/issuekit/pkg/types"
)

var locateCmd = &cobra.Command{
	Use:   "locate <lines.json>",
	Short: "Find where an article starts in a whole-issue text",
	Long: `Locate reads the extracted line list of a whole-issue text (a JSON
array of {id, text, line_number} objects) and prints the 1-based line
on which the article appears to start, searching by the first author's
surname and then by title. The table of contents is skipped.`,
	Args: cobra.ExactArgs(1),
	RunE: runLocate,
}

func runLocate(cmd *cobra.Command, args []string) error {
	title, _ := cmd.Flags().GetString("title")
	surname, _ := cmd.Flags().GetString("surname")
	if title == "" && surname == "" {
		return fmt.Errorf("at least one of --title and --surname is required")
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading line list: %w", err)
	}
	var lines []types.Line
	if err := json.Unmarshal(data, &lines); err != nil {
		return fmt.Errorf("parsing line list %s: %w", args[0], err)
	}

	n, ok := locate.Locate(lines, title, surname)
	if !ok {
		return fmt.Errorf("article not found")
	}
	fmt.Fprintln(cmd.OutOrStdout(), n)
	return nil
}

func init() {
	locateCmd.Flags().String("title", "", "article title to search for")
	locateCmd.Flags().String("surname", "", "first author's surname to search for")

	rootCmd.AddCommand(locateCmd)
}
