// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Dexter626358/issuekit/internal/fields"
)

// extractors maps the --field value to its extractor.
var extractors = map[string]func(string) (string, bool){
	"doi":          fields.DOI,
	"email":        fields.Email,
	"orcid":        fields.ORCID,
	"scopusid":     fields.ScopusID,
	"researcherid": fields.ResearcherID,
	"spin":         fields.SPIN,
	"udc":          fields.UDC,
	"date":         fields.Date,
	"year":         fields.Year,
}

var extractCmd = &cobra.Command{
	Use:   "extract --field <name> [file]",
	Short: "Extract one bibliographic value from selected text",
	Long: `Extract scans text from a file or stdin for a single bibliographic
value (doi, email, orcid, scopusid, researcherid, spin, udc, date,
year) and prints the first match. A miss exits nonzero without output.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExtract,
}

func runExtract(cmd *cobra.Command, args []string) error {
	field, _ := cmd.Flags().GetString("field")
	extract, ok := extractors[strings.ToLower(field)]
	if !ok {
		return fmt.Errorf("unknown field %q (known: %s)", field, strings.Join(extractorNames(), ", "))
	}

	text, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	value, found := extract(text)
	if !found {
		return fmt.Errorf("%s not found", field)
	}
	fmt.Fprintln(cmd.OutOrStdout(), value)
	return nil
}

func extractorNames() []string {
	names := make([]string, 0, len(extractors))
	for name := range extractors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// readInput returns the contents of the optional file argument, or
// stdin when absent.
func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 1 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return string(data), nil
}

func init() {
	extractCmd.Flags().String("field", "", "which value to extract (required)")
	extractCmd.MarkFlagRequired("field")

	rootCmd.AddCommand(extractCmd)
}
