package cmd

import (
	"fmt"
	"os"

	"github.com/logos-lang/atlas/internal/lexicon"
	"github.com/logos-lang/atlas/internal/store"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export [dictionary.json]",
	Short: "Export a built dictionary into a SQLite database",
	Long: `Load a dictionary artifact and write its lemmas, paradigms and
endings into a SQLite database, for inspection with ordinary SQL tools.

The JSON artifact remains the canonical format consumed by the compiler;
the database is a side view and is fully rewritten on every export.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExport,
}

var exportDB string

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVar(&exportDB, "db", "lexicon.db", "SQLite database path")
}

func runExport(cmd *cobra.Command, args []string) error {
	path := "dictionary_intermediate.json"
	if len(args) > 0 {
		path = args[0]
	}

	dict, err := lexicon.ReadFile(path)
	if err != nil {
		return err
	}

	conn, err := store.Open(exportDB)
	if err != nil {
		return err
	}
	defer conn.Close()

	if err := store.Export(conn, dict); err != nil {
		return fmt.Errorf("exporting to %s: %w", exportDB, err)
	}

	lemmas, paradigms, err := store.Counts(conn)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Exported %d lemmas and %d paradigms to %s\n", lemmas, paradigms, exportDB)
	return nil
}
