// internal/game/engine.go
//
// Feedback model and game engine for a single interactive game.
// Responsibilities:
//   - Score guesses against a secret using the classic two-pass
//     Wordle algorithm (correct duplicate-letter handling).
//   - Decide whether a hypothesized secret is consistent with an
//     observed guess/hint pair (the solver's filtering oracle).
//   - Track interactive-play state transitions: playing → won/lost,
//     including hard-mode guess admission.

package game

import "errors"

const defaultMaxAttempts = 6

// ErrHardModeViolation is returned when a hard-mode guess is ruled
// out by feedback already received.
var ErrHardModeViolation = errors.New("guess is inconsistent with previous hints")

// ErrGameOver is returned when a guess is submitted to a finished game.
var ErrGameOver = errors.New("game is already over")

// Score implements the standard Wordle two-pass scoring algorithm.
//
// Pass 1:
//   - Mark exact matches as Hit.
//   - Count remaining (non-hit) secret letters by letter index.
//
// Pass 2:
//   - For each non-hit guess letter: if there is remaining count for
//     that letter, mark Misplaced and decrement the count; otherwise
//     mark Miss.
//
// This ensures correct behavior with repeated letters in both secret
// and guess: each secret letter is consumed by at most one mark.
func Score(guess, secret Word) Hint {
	var h Hint

	// Letter frequency for the non-hit positions (a–z).
	var counts [26]int

	for i := 0; i < WordLength; i++ {
		if guess[i] == secret[i] {
			h[i] = MarkHit
		} else {
			counts[secret[i]-'a']++
		}
	}

	for i := 0; i < WordLength; i++ {
		if h[i] == MarkHit {
			continue
		}
		j := int(guess[i] - 'a')
		if j >= 0 && j < 26 && counts[j] > 0 {
			h[i] = MarkMisplaced
			counts[j]--
		} else {
			h[i] = MarkMiss
		}
	}
	return h
}

// Consistent reports whether candidate could be the secret given that
// guessing guess produced hint. The feedback model itself is the
// oracle: candidate is consistent iff it would have produced exactly
// the observed hint.
func Consistent(candidate, guess Word, hint Hint) bool {
	return Score(guess, candidate) == hint
}

// Record is one submitted guess together with the feedback it earned.
type Record struct {
	Guess Word
	Hint  Hint
}

// Game holds the state of a single interactive game.
type Game struct {
	secret      Word
	maxAttempts int
	hard        bool
	records     []Record
	finished    bool
	won         bool
}

// New constructs a game around a secret. maxAttempts <= 0 selects the
// default of six. In hard mode, guesses ruled out by earlier feedback
// are rejected.
func New(secret Word, maxAttempts int, hard bool) *Game {
	if maxAttempts <= 0 {
		maxAttempts = defaultMaxAttempts
	}
	return &Game{secret: secret, maxAttempts: maxAttempts, hard: hard}
}

// Guess validates and scores a guess, mutating the game state.
//
// Validation rules:
//   - Game must not be finished.
//   - In hard mode, the guess must be consistent with every hint
//     received so far.
//
// State transitions:
//   - All tiles Hit → finished, won.
//   - Attempt count reaches the maximum → finished (loss).
func (g *Game) Guess(w Word) (Hint, error) {
	if g.finished {
		return Hint{}, ErrGameOver
	}
	if g.hard {
		for _, rec := range g.records {
			if !Consistent(w, rec.Guess, rec.Hint) {
				return Hint{}, ErrHardModeViolation
			}
		}
	}

	h := Score(w, g.secret)
	g.records = append(g.records, Record{Guess: w, Hint: h})

	if h.AllHit() {
		g.finished, g.won = true, true
	} else if len(g.records) >= g.maxAttempts {
		g.finished = true
	}
	return h, nil
}

// Secret returns the game's secret word.
func (g *Game) Secret() Word { return g.secret }

// Records returns the guesses made so far, in order.
func (g *Game) Records() []Record { return g.records }

// Remaining returns how many attempts are left.
func (g *Game) Remaining() int { return g.maxAttempts - len(g.records) }

// Finished reports whether the game is over (won or lost).
func (g *Game) Finished() bool { return g.finished }

// Won reports whether the game ended with a correct guess.
func (g *Game) Won() bool { return g.won }
