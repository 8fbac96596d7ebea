// Package cmd contains all CLI commands for the Atlas pipeline.
package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	configDir  string
	corpusPath string
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "atlas",
	Short: "Extract a morphological lexicon from a Wiktionary dump",
	Long: `Atlas extracts stems and inflection paradigms from a Greek
Wiktionary XML export and writes the intermediate dictionary consumed by
the downstream compiler.

Paradigms are defined in YAML files under the config directory; each one
declares the triggers (template names, word suffixes) that recognize it
and the endings that extend a stem into each grammatical form.

Running 'atlas' without arguments builds the dictionary, falling back to
a small synthetic dataset when no dump is present.`,
	RunE: runBuild,
}

// Execute adds all child commands to the root command and sets flags
// appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&configDir, "config", "",
		"paradigm config directory (default is data/morphology)")
	rootCmd.PersistentFlags().StringVar(&corpusPath, "corpus", "",
		"Wiktionary XML dump (default is elwiktionary-latest-pages-articles.xml)")

	viper.BindPFlag("config_dir", rootCmd.PersistentFlags().Lookup("config"))
	viper.BindPFlag("corpus", rootCmd.PersistentFlags().Lookup("corpus"))
}

// initConfig wires defaults and ENV variables.
func initConfig() {
	viper.SetDefault("config_dir", "data/morphology")
	viper.SetDefault("corpus", "elwiktionary-latest-pages-articles.xml")

	viper.SetEnvPrefix("ATLAS")
	viper.AutomaticEnv()
}

// getConfigDir returns the paradigm configuration directory.
func getConfigDir() string {
	return viper.GetString("config_dir")
}

// getCorpusPath returns the corpus dump path.
func getCorpusPath() string {
	return viper.GetString("corpus")
}
