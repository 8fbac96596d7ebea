package cmd

import (
	"fmt"
	"os"

	"github.com/logos-lang/atlas/internal/config"
	"github.com/logos-lang/atlas/internal/lexicon"
	"github.com/logos-lang/atlas/internal/morph"
	"github.com/logos-lang/atlas/internal/wiki"
	"github.com/spf13/cobra"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build the intermediate dictionary",
	Long: `Build the intermediate dictionary from the Wiktionary dump.

Each entry is classified by part of speech and gender, its inflection
templates are matched against the configured paradigms, and the stem is
derived from the matched paradigm's suffix triggers. Entries with no
recognizable part of speech or no matching template are skipped.

Without a dump file a small synthetic dictionary is emitted instead, so
downstream tooling always has a valid artifact.`,
	RunE: runBuild,
}

var (
	buildOutput string
	buildLimit  int
)

func init() {
	rootCmd.AddCommand(buildCmd)
	buildCmd.Flags().StringVarP(&buildOutput, "output", "o", "dictionary_intermediate.json", "output path")
	buildCmd.Flags().IntVarP(&buildLimit, "limit", "n", 0, "stop after this many lemmas (0 = no limit)")
}

func runBuild(cmd *cobra.Command, args []string) error {
	defs, err := config.LoadDir(getConfigDir())
	if err != nil {
		return fmt.Errorf("loading morphology config: %w", err)
	}
	idx := morph.NewIndex(defs)
	fmt.Fprintf(os.Stderr, "Loaded %d paradigms from %s\n", idx.Size(), getConfigDir())

	dict, err := buildDictionary(idx)
	if err != nil {
		return err
	}

	if err := lexicon.WriteFile(buildOutput, dict); err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "Exported %d lemmas and %d paradigms to %s\n",
		len(dict.Lemmas), len(dict.Paradigms), buildOutput)
	return nil
}

// buildDictionary runs the extraction pass, or substitutes the synthetic
// dataset when the dump is absent.
func buildDictionary(idx *morph.Index) (morph.Dictionary, error) {
	corpus := getCorpusPath()
	if _, err := os.Stat(corpus); os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "No dump at %s; emitting synthetic dictionary\n", corpus)
		return lexicon.Synthetic(), nil
	}

	reader, err := wiki.Open(corpus)
	if err != nil {
		return morph.Dictionary{}, err
	}
	defer reader.Close()

	builder := lexicon.NewBuilder(idx)
	builder.Limit = buildLimit
	builder.Progress = os.Stderr

	dict, err := builder.Build(reader)
	if err != nil {
		return morph.Dictionary{}, fmt.Errorf("building dictionary: %w", err)
	}
	return dict, nil
}
