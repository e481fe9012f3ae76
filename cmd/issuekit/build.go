// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Dexter626358/issuekit/internal/journalcfg"
	"github.com/Dexter626358/issuekit/internal/pipeline"
)

var buildCmd = &cobra.Command{
	Use:   "build [issue-folder...]",
	Short: "Produce the delivery XML for issue folders",
	Long: `Build reads the article documents of each issue folder (json/), derives
the issue configuration from the folder name and the journal registry,
and writes the delivery XML to xml/<folder>.xml.

Folders are named ISSN_YEAR_NUMBER or ISSN_YEAR_VOLUME_NUMBER. With no
arguments every issue folder under --issues-dir is built.`,
	RunE: runBuild,
}

func runBuild(cmd *cobra.Command, args []string) error {
	reg, err := journalcfg.LoadRegistry(flagOrConfig(cmd, "journals"))
	if err != nil {
		return err
	}
	if overrides := viper.GetStringMap("titleid"); len(overrides) > 0 {
		byISSN := make(map[string]int, len(overrides))
		for issn := range overrides {
			byISSN[issn] = viper.GetInt("titleid." + issn)
		}
		reg.OverrideTitleIDs(byISSN)
	}

	if len(args) == 0 {
		_, batch, err := pipeline.BuildAll(flagOrConfig(cmd, "issues-dir"), reg, log)
		if err != nil {
			return err
		}
		if batch.HasFailures() {
			return fmt.Errorf("%d issue(s) failed to build", batch.Failed)
		}
		return nil
	}

	failed := 0
	for _, dir := range args {
		res, err := pipeline.BuildIssue(dir, reg, log)
		if err != nil {
			log.WithField("issue", dir).WithError(err).Error("issue failed")
			failed++
			continue
		}
		fmt.Fprintf(cmd.OutOrStdout(), "built %s: %d article(s), pages %s\n", res.XMLPath, res.Articles, res.Pages)
	}
	if failed > 0 {
		return fmt.Errorf("%d issue(s) failed to build", failed)
	}
	return nil
}

func init() {
	buildCmd.Flags().String("issues-dir", "issues", "base directory holding issue folders")
	buildCmd.Flags().String("journals", "data/journals.yaml", "journal registry file")

	rootCmd.AddCommand(buildCmd)
}
