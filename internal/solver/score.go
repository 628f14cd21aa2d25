// internal/solver/score.go
//
// Entropy scoring: rank guesses by how much they are expected to
// shrink the candidate pool.
//
// A guess partitions the pool into hint-equivalence classes (all the
// candidates that would answer it with the same feedback). Its score
// is the Shannon entropy of that partition in bits: the expected
// information gained by playing it, assuming every candidate is
// equally likely to be the secret. The largest class size is exposed
// alongside as the worst-case outcome.
//
// Scoring every guess against every candidate is the hot path
// (O(G·C) hint computations), so ScoreAll fans the guess list out
// across GOMAXPROCS workers. Each worker writes results by index, so
// output order — and therefore ranking and tie-breaks — stays
// deterministic.

package solver

import (
	"context"
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"

	"wordler/internal/game"
)

// Result is one guess's score against a candidate pool.
type Result struct {
	// Entropy is the expected information gain in bits.
	Entropy float64
	// WorstCase is the size of the largest hint-equivalence class:
	// the number of candidates left standing in the least favorable
	// outcome.
	WorstCase int
}

// Scored pairs a guess with its Result.
type Scored struct {
	Word game.Word
	Result
}

// Score computes the entropy and worst-case class size of one guess
// against a candidate pool. A pool of size <= 1 carries no
// uncertainty, so its entropy is 0.
func Score(guess game.Word, pool []game.Word) Result {
	n := len(pool)
	if n <= 1 {
		return Result{Entropy: 0, WorstCase: n}
	}

	classes := make(map[game.Hint]int)
	for _, w := range pool {
		classes[game.Score(guess, w)]++
	}

	var entropy float64
	worst := 0
	total := float64(n)
	for _, count := range classes {
		p := float64(count) / total
		entropy -= p * math.Log2(p)
		if count > worst {
			worst = count
		}
	}
	return Result{Entropy: entropy, WorstCase: worst}
}

// ScoreAll scores every guess against the pool in parallel. The
// returned slice is index-aligned with guesses.
func ScoreAll(ctx context.Context, guesses, pool []game.Word) ([]Scored, error) {
	out := make([]Scored, len(guesses))

	workers := runtime.GOMAXPROCS(0)
	if workers > len(guesses) {
		workers = len(guesses)
	}
	if workers < 1 {
		workers = 1
	}
	chunk := (len(guesses) + workers - 1) / workers

	g, ctx := errgroup.WithContext(ctx)
	for start := 0; start < len(guesses); start += chunk {
		end := start + chunk
		if end > len(guesses) {
			end = len(guesses)
		}
		start, end := start, end
		g.Go(func() error {
			for i := start; i < end; i++ {
				select {
				case <-ctx.Done():
					return ctx.Err()
				default:
				}
				out[i] = Scored{Word: guesses[i], Result: Score(guesses[i], pool)}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
