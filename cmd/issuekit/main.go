// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the issuekit CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// log is shared by all subcommands; build output goes through it.
var log = logrus.New()

// rootCmd is the base command for the issuekit CLI.
var rootCmd = &cobra.Command{
	Use:   "issuekit",
	Short: "Curate journal issue metadata and produce delivery XML",
	Long: `issuekit maintains the per-article metadata documents of scholarly
journal issues and projects them into the eLibrary delivery XML.

Each curation step is a subcommand: refs normalizes reference lists,
locate finds an article inside a whole-issue text, status reports the
review state of an issue, build produces the delivery file, and
validate checks one.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
			log.SetLevel(logrus.DebugLevel)
		}
		log.SetOutput(os.Stderr)
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./issuekit.yaml or ~/.config/issuekit/config.yaml)")
	rootCmd.PersistentFlags().Bool("verbose", false, "enable debug logging")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("issuekit")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "issuekit"))
		}
	}

	viper.SetEnvPrefix("ISSUEKIT")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// flagOrConfig resolves a string setting: an explicitly set flag wins,
// then the config file, then the flag default.
func flagOrConfig(cmd *cobra.Command, name string) string {
	if !cmd.Flags().Changed(name) && viper.IsSet(name) {
		return viper.GetString(name)
	}
	v, _ := cmd.Flags().GetString(name)
	return v
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
