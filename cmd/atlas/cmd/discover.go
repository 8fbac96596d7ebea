package cmd

import (
	"fmt"
	"os"

	"github.com/logos-lang/atlas/internal/lexicon"
	"github.com/logos-lang/atlas/internal/report"
	"github.com/logos-lang/atlas/internal/wiki"
	"github.com/spf13/cobra"
)

var discoverCmd = &cobra.Command{
	Use:   "discover",
	Short: "Report inflection-template frequencies in the dump",
	Long: `Scan the Wiktionary dump and report how often each inflection
template occurs on classifiable entries.

The report is meant for configuration authoring: templates with high
counts are the ones worth mapping to paradigms in the config directory.`,
	RunE: runDiscover,
}

var discoverLimit int

func init() {
	rootCmd.AddCommand(discoverCmd)
	discoverCmd.Flags().IntVarP(&discoverLimit, "limit", "n", 50000, "max classifiable pages to scan (0 = all)")
}

func runDiscover(cmd *cobra.Command, args []string) error {
	corpus := getCorpusPath()
	if _, err := os.Stat(corpus); os.IsNotExist(err) {
		return fmt.Errorf("dump not found at %s", corpus)
	}

	reader, err := wiki.Open(corpus)
	if err != nil {
		return err
	}
	defer reader.Close()

	rows, err := lexicon.Discover(reader, discoverLimit)
	if err != nil {
		return fmt.Errorf("discovering templates: %w", err)
	}

	fmt.Print(report.Frequencies(rows))
	return nil
}
