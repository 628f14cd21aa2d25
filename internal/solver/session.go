// internal/solver/session.go
//
// Solver session: owns the candidate pool and the guess history for
// one solve run.
//
// The pool is a derived value — always equal to the loaded list
// filtered by every record in the history. Undo therefore never
// patches the pool incrementally: it drops the last record and
// replays the remainder from the original list, which keeps the pool
// bit-identical to a run where the undone guess never happened.

package solver

import (
	"context"
	"errors"
	"fmt"

	"wordler/internal/game"
	"wordler/internal/words"
)

// ErrNothingToUndo is returned when undo is requested on an empty
// history.
var ErrNothingToUndo = errors.New("nothing to undo")

// Policy selects the guess universe for Top queries.
type Policy uint8

const (
	// ProbeAll scores every word in the loaded list, including words
	// already ruled out as answers. A probe outside the pool can
	// split the remaining candidates better than any of them.
	ProbeAll Policy = iota
	// PoolOnly scores only the remaining candidates, so every
	// suggestion could itself be the answer.
	PoolOnly
)

// Step is one history entry together with the pool sizes around it,
// for display.
type Step struct {
	Record     game.Record
	PoolBefore int
	PoolAfter  int
}

// Session tracks a solve run. It is owned by a single REPL loop and
// is not safe for concurrent use.
type Session struct {
	list    words.List // loaded list, never mutated
	pool    []game.Word
	history []Step
	policy  Policy
}

// NewSession starts a session over a loaded list. The pool begins as
// the full list.
func NewSession(list words.List, policy Policy) *Session {
	return &Session{
		list:   list,
		pool:   list,
		policy: policy,
	}
}

// SubmitGuess parses and records a guess/hint pair and shrinks the
// pool accordingly. On any parse failure the session is left exactly
// as it was.
func (s *Session) SubmitGuess(word, hintText string) (Step, error) {
	guess, err := game.ParseWord(word)
	if err != nil {
		return Step{}, err
	}
	hint, err := game.ParseHint(hintText, guess)
	if err != nil {
		return Step{}, err
	}

	rec := game.Record{Guess: guess, Hint: hint}
	next := Filter(s.pool, rec)
	step := Step{Record: rec, PoolBefore: len(s.pool), PoolAfter: len(next)}
	s.history = append(s.history, step)
	s.pool = next
	return step, nil
}

// Undo removes the last record and rebuilds the pool by replaying the
// remaining history against the original list.
func (s *Session) Undo() (game.Record, error) {
	if len(s.history) == 0 {
		return game.Record{}, ErrNothingToUndo
	}
	last := s.history[len(s.history)-1].Record
	s.history = s.history[:len(s.history)-1]

	pool := []game.Word(s.list)
	for i := range s.history {
		pool = Filter(pool, s.history[i].Record)
		s.history[i].PoolAfter = len(pool)
	}
	s.pool = pool
	return last, nil
}

// History returns the ordered steps taken so far.
func (s *Session) History() []Step { return s.history }

// Candidates returns the current pool. Callers must not modify it.
func (s *Session) Candidates() []game.Word { return s.pool }

// PoolSize returns the current candidate count.
func (s *Session) PoolSize() int { return len(s.pool) }

// InitialSize returns the size of the loaded list.
func (s *Session) InitialSize() int { return len(s.list) }

// ScoreWord validates a word and scores it against the current pool.
func (s *Session) ScoreWord(word string) (Result, error) {
	w, err := game.ParseWord(word)
	if err != nil {
		return Result{}, err
	}
	return Score(w, s.pool), nil
}

// Top scores the policy-selected guess universe against the current
// pool and returns the n best guesses.
func (s *Session) Top(ctx context.Context, n int, policy Policy) ([]Scored, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: n must not be negative, got %d", ErrInvalidArgument, n)
	}

	universe := []game.Word(s.list)
	if policy == PoolOnly {
		universe = s.pool
	}
	scored, err := ScoreAll(ctx, universe, s.pool)
	if err != nil {
		return nil, err
	}
	return TopN(scored, n)
}

// Policy returns the session's default guess policy.
func (s *Session) Policy() Policy { return s.policy }
