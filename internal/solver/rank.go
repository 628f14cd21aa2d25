// internal/solver/rank.go
//
// Ranking of scored guesses: descending by entropy, ties broken by
// ascending word order so results are reproducible run to run.

package solver

import (
	"errors"
	"fmt"
	"sort"
)

// ErrInvalidArgument is returned for out-of-range ranking arguments.
var ErrInvalidArgument = errors.New("invalid argument")

// TopN returns the n best guesses sorted descending by entropy, ties
// ascending lexicographically. The result has length min(n,
// len(scored)); n == 0 yields an empty slice, n < 0 is an error. The
// input is left unmodified.
func TopN(scored []Scored, n int) ([]Scored, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: n must not be negative, got %d", ErrInvalidArgument, n)
	}

	sorted := make([]Scored, len(scored))
	copy(sorted, scored)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Entropy != sorted[j].Entropy {
			return sorted[i].Entropy > sorted[j].Entropy
		}
		return sorted[i].Word < sorted[j].Word
	})

	if n > len(sorted) {
		n = len(sorted)
	}
	return sorted[:n], nil
}
