// play.go
//
// `wordler play` — interactive game against a hidden secret word.
// The secret is drawn at random from the word list, or, with --daily,
// deterministically from the current date so everyone gets the same
// puzzle that day. Finished games are recorded in the local stats
// store; stats trouble is logged and never stops a game.

package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"wordler/internal/daily"
	"wordler/internal/game"
	"wordler/internal/stats"
	"wordler/internal/words"
)

var (
	playMode        string
	playMaxAttempts int
	playDaily       bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game against a hidden secret word",
	RunE: func(cmd *cobra.Command, args []string) error {
		if playMode != "easy" && playMode != "hard" {
			return fmt.Errorf("invalid --mode %q (want easy or hard)", playMode)
		}
		list, err := loadWordList()
		if err != nil {
			log.Fatal().Err(err).Msg("failed to load word list")
		}
		return runPlay(cmd.Context(), list)
	},
}

func init() {
	playCmd.Flags().StringVar(&playMode, "mode", "easy",
		"easy or hard; in hard mode, guesses ruled out by previous hints are rejected")
	playCmd.Flags().IntVar(&playMaxAttempts, "max-attempts", 6, "maximum number of guesses")
	playCmd.Flags().BoolVar(&playDaily, "daily", false, "play the deterministic word of the day")
	rootCmd.AddCommand(playCmd)
}

func runPlay(ctx context.Context, list words.List) error {
	secret, err := pickSecret(list)
	if err != nil {
		return err
	}
	hard := playMode == "hard"
	g := game.New(secret, playMaxAttempts, hard)
	set := list.Set()

	fmt.Printf("Welcome to Wordle! Guess the %d-letter word. You have %d attempts.\n\n",
		game.WordLength, playMaxAttempts)
	fmt.Println("Letters are marked grey if they don't appear in the word.")
	fmt.Printf("Letters are marked %s if they are in the wrong position.\n", misplacedWord.Render("yellow"))
	fmt.Printf("Letters are marked %s if they are in the correct position.\n\n", hitWord.Render("green"))
	if hard {
		fmt.Println("Hard mode: every guess must be consistent with the hints so far.")
	}

	in := bufio.NewScanner(os.Stdin)
	for !g.Finished() {
		fmt.Printf("You have %d attempts left.\n", g.Remaining())
		fmt.Print("Enter your guess: ")
		if !in.Scan() {
			fmt.Println()
			return in.Err()
		}

		guess, err := game.ParseWord(in.Text())
		if err != nil {
			fmt.Printf("Please enter a %d-letter word containing only letters.\n\n", game.WordLength)
			continue
		}
		if _, ok := set[guess]; !ok {
			fmt.Println("Not in the word list. Please try again.")
			fmt.Println()
			continue
		}

		hint, err := g.Guess(guess)
		if errors.Is(err, game.ErrHardModeViolation) {
			fmt.Println("Hard mode: that word was already ruled out by your hints.")
			fmt.Println()
			continue
		}
		if err != nil {
			return err
		}

		fmt.Println(renderHint(guess, hint))
		fmt.Println()
	}

	if g.Won() {
		fmt.Println(hitWord.Render("Congratulations! You guessed the word!"))
	} else {
		fmt.Printf("%s The correct word was: %s\n",
			lossWord.Render("Game Over!"), hitWord.Render(strings.ToUpper(string(secret))))
	}

	recordPlay(ctx, g)
	return nil
}

// pickSecret selects the secret word: date-deterministic with
// --daily, cryptographically random otherwise.
func pickSecret(list words.List) (game.Word, error) {
	if playDaily {
		idx := daily.WordIndex(time.Now(), getEnv("DAILY_SALT", "local_dev_salt"), len(list))
		fmt.Printf("Daily puzzle for %s.\n", daily.DateKey(time.Now()))
		return list[idx], nil
	}
	return list.Random()
}

// recordPlay stores the finished game in the stats database,
// best-effort.
func recordPlay(ctx context.Context, g *game.Game) {
	store, err := stats.Open(getEnv("STATS_DB", "data/wordler.db"))
	if err != nil {
		log.Warn().Err(err).Msg("stats store unavailable, result not recorded")
		return
	}
	defer store.Close()

	err = store.RecordPlay(ctx, stats.Play{
		Word:    string(g.Secret()),
		Won:     g.Won(),
		Guesses: len(g.Records()),
		Hard:    playMode == "hard",
		Daily:   playDaily,
	})
	if err != nil {
		log.Warn().Err(err).Msg("failed to record play result")
	}
}
