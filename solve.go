// solve.go
//
// `wordler solve` — the solver REPL. Reads one command per line,
// executes it against the session, prints the result. Every
// command-level error is reported and leaves the session untouched.

package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"wordler/internal/solver"
	"wordler/internal/words"
)

const solveHelp = `top <n> [strict]      Print the top n guesses ranked by expected
                      information gain (entropy, in bits) over the
                      remaining candidates, with the worst-case number
                      of candidates each guess could leave. By default
                      guesses are drawn from the whole word list; with
                      'strict', only remaining candidates are ranked.

score <word>          Print the entropy and worst-case candidate count
                      of a single word against the remaining candidates.

guessed <word> <hint> Record a guess you played and the feedback it got,
                      narrowing the candidates. For <word> retype the
                      guessed word. For <hint>:
                      - a correct (green) letter: retype the letter
                      - a misplaced (yellow) letter: type '*'
                      - an absent (grey) letter: type '_'
                      Example: 'guessed hello h*ll_'

history               Print the guesses recorded so far and how much
                      each one narrowed the candidates.

undo                  Forget the last recorded guess and restore the
                      candidate list.

help                  Print this message.

exit                  Leave the REPL.`

var solveStrict bool

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Run the solver REPL over a word list",
	RunE: func(cmd *cobra.Command, args []string) error {
		list, err := loadWordList()
		if err != nil {
			log.Fatal().Err(err).Msg("failed to load word list")
		}
		policy := solver.ProbeAll
		if solveStrict {
			policy = solver.PoolOnly
		}
		return runSolve(cmd.Context(), list, policy)
	},
}

func init() {
	solveCmd.Flags().BoolVar(&solveStrict, "strict", false,
		"rank only remaining candidates by default (same as the 'strict' REPL argument)")
	rootCmd.AddCommand(solveCmd)
}

func runSolve(ctx context.Context, list words.List, policy solver.Policy) error {
	sess := solver.NewSession(list, policy)
	fmt.Printf("Loaded %d unique words.\n", sess.InitialSize())
	fmt.Println("Starting Wordle solver REPL. Type 'help' for commands.")

	in := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !in.Scan() {
			fmt.Println()
			return in.Err()
		}
		line := in.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		cmd, err := parseCommand(line)
		if err != nil {
			fmt.Printf("%v. Type 'help' for commands.\n", err)
			continue
		}
		if cmd.kind == cmdExit {
			fmt.Println("Exiting solver...")
			return nil
		}
		runSolveCommand(ctx, sess, cmd)
	}
}

// runSolveCommand executes one parsed command against the session.
func runSolveCommand(ctx context.Context, sess *solver.Session, cmd command) {
	switch cmd.kind {
	case cmdTop:
		policy := sess.Policy()
		if cmd.strict {
			policy = solver.PoolOnly
		}
		top, err := sess.Top(ctx, cmd.n, policy)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		printTop(top)

	case cmdScore:
		res, err := sess.ScoreWord(cmd.word)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("Entropy: %.3f bits\n", res.Entropy)
		fmt.Printf("Worst-case candidates left: %d\n", res.WorstCase)

	case cmdGuessed:
		step, err := sess.SubmitGuess(cmd.word, cmd.hint)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Println(renderHint(step.Record.Guess, step.Record.Hint))
		fmt.Printf("Removed %d words.\n", step.PoolBefore-step.PoolAfter)
		fmt.Printf("%d possible answers remaining.\n", step.PoolAfter)

	case cmdHistory:
		steps := sess.History()
		fmt.Printf("Starting with %d words\n", sess.InitialSize())
		for i, step := range steps {
			removed := step.PoolBefore - step.PoolAfter
			pct := 0.0
			if step.PoolBefore > 0 {
				pct = float64(removed) * 100 / float64(step.PoolBefore)
			}
			fmt.Printf("%d: %s - Removed %d of %d (%.2f%%). %d remaining.\n",
				i+1, renderHint(step.Record.Guess, step.Record.Hint),
				removed, step.PoolBefore, pct, step.PoolAfter)
		}

	case cmdUndo:
		rec, err := sess.Undo()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("Undoing last guess: %s\n", renderHint(rec.Guess, rec.Hint))
		fmt.Printf("Restored word list to %d words.\n", sess.PoolSize())

	case cmdHelp:
		fmt.Println(solveHelp)
	}
}

// printTop renders the ranking table.
func printTop(top []solver.Scored) {
	fmt.Println("Rank | Word  | Entropy | Worst-Case")
	fmt.Println("-----|-------|---------|-----------")
	for i, s := range top {
		fmt.Printf("%4d | %s | %7.3f | %10d\n", i+1, s.Word, s.Entropy, s.WorstCase)
	}
}
