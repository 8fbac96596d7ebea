package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/logos-lang/atlas/internal/lexicon"
	"github.com/logos-lang/atlas/internal/tui"
	"github.com/spf13/cobra"
)

var browseCmd = &cobra.Command{
	Use:   "browse [dictionary.json]",
	Short: "Browse a built dictionary in the TUI",
	Long: `Load a dictionary artifact and browse its lemmas in an
interactive terminal UI.

Controls:
  ↑/↓ or j/k    Navigate lemmas
  /             Filter by stem
  p             Toggle paradigm view
  q or Esc      Quit`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBrowse,
}

func init() {
	rootCmd.AddCommand(browseCmd)
}

func runBrowse(cmd *cobra.Command, args []string) error {
	path := "dictionary_intermediate.json"
	if len(args) > 0 {
		path = args[0]
	}

	dict, err := lexicon.ReadFile(path)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "Loaded: %s (%d lemmas)\n", path, len(dict.Lemmas))

	p := tea.NewProgram(
		tui.NewBrowser(dict),
		tea.WithAltScreen(),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}
	return nil
}
