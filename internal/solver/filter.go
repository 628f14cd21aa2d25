// internal/solver/filter.go
//
// Candidate filtering: shrink a word pool to the words still
// consistent with observed feedback. The feedback model in
// internal/game is the oracle; a word stays in the pool iff it would
// have produced exactly the hint that was observed.

package solver

import (
	"github.com/samber/lo"

	"wordler/internal/game"
)

// Filter returns the order-preserving sub-sequence of pool consistent
// with rec. The input slice is never modified.
func Filter(pool []game.Word, rec game.Record) []game.Word {
	return lo.Filter(pool, func(w game.Word, _ int) bool {
		return game.Consistent(w, rec.Guess, rec.Hint)
	})
}

// FilterAll applies each record in sequence. Because every record is
// an independent conjunct, the result does not depend on the order
// the records are applied in.
func FilterAll(pool []game.Word, recs []game.Record) []game.Word {
	out := pool
	for _, rec := range recs {
		out = Filter(out, rec)
	}
	return out
}
