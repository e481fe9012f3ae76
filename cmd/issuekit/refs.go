// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Dexter626358/issuekit/internal/refs"
)

var refsCmd = &cobra.Command{
	Use:   "refs [file]",
	Short: "Normalize a pasted reference list",
	Long: `Refs reads reference fragments, one per line, from a file or stdin,
strips the leading numbering, and merges bare DOI/URL lines into the
entry above. The normalized list is printed one reference per line.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRefs,
}

func runRefs(cmd *cobra.Command, args []string) error {
	in := cmd.InOrStdin()
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	var fragments []string
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		fragments = append(fragments, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading references: %w", err)
	}

	for _, ref := range refs.Process(fragments) {
		fmt.Fprintln(cmd.OutOrStdout(), ref)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(refsCmd)
}
