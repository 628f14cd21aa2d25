// root.go
//
// Cobra root command and the word-list resolution shared by all
// subcommands.
//
// Word list precedence: --file flag > WORDS_FILE env > ./words.txt if
// present > embedded default list. An explicitly configured file that
// fails to load is fatal; there is nothing useful to do without a
// word list.

package main

import (
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"wordler/internal/words"
)

const defaultWordsFile = "words.txt"

var wordsFileFlag string

var rootCmd = &cobra.Command{
	Use:   "wordler",
	Short: "Play Wordle in the terminal, or let information theory play it for you",
	Long: `wordler is an interactive terminal Wordle player and an
information-theoretic solver. "wordler play" hides a secret word and
scores your guesses; "wordler solve" is a REPL that recommends the
guesses with the highest expected information gain over the remaining
candidates.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&wordsFileFlag, "file", "f", "",
		"word list file, one 5-letter word per line (default: $WORDS_FILE, then ./words.txt, then a built-in list)")
}

// loadWordList resolves and loads the word list for a command run.
func loadWordList() (words.List, error) {
	path := wordsFileFlag
	if path == "" {
		path = os.Getenv("WORDS_FILE")
	}
	if path != "" {
		return words.Load(path)
	}
	if _, err := os.Stat(defaultWordsFile); err == nil {
		return words.Load(defaultWordsFile)
	}
	log.Debug().Msg("no word list configured, using embedded default")
	return words.Default(), nil
}
