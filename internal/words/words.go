// internal/words/words.go
//
// Word list loading for the player and the solver.
//
// Responsibilities:
//   - Load a word list from a file (one word per line) or fall back
//     to a small embedded default list.
//   - Validate strictly: every non-blank line must be exactly 5
//     alphabetic characters after trimming; anything else fails the
//     whole load. A loaded list is never empty.
//   - Normalize to lowercase, drop duplicates (first occurrence wins,
//     order preserved), and expose set-style lookups.
//
// Constraints:
//   • Words are 5 alphabetic letters (a–z); see internal/game.
//   • A List is never mutated after load; filtering elsewhere always
//     produces a fresh slice, which is what makes undo-by-replay safe.

package words

import (
	"bufio"
	"crypto/rand"
	_ "embed"
	"errors"
	"fmt"
	"math/big"
	"os"
	"strings"

	"wordler/internal/game"
)

//go:embed default_words.txt
var embeddedWords string

// ErrEmptyList is returned when loading yields no usable words.
var ErrEmptyList = errors.New("words: word list is empty")

// List is an ordered, duplicate-free word list. Treat as immutable
// once loaded.
type List []game.Word

// Load reads one word per line from a file. Blank lines are ignored;
// any other malformed line aborts the load so a typo in the list is
// surfaced instead of silently shrinking the candidate pool.
func Load(path string) (List, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("words: open %s: %w", path, err)
	}
	defer f.Close()

	var out List
	seen := make(map[game.Word]struct{})
	sc := bufio.NewScanner(f)
	line := 0
	for sc.Scan() {
		line++
		raw := strings.TrimSpace(sc.Text())
		if raw == "" {
			continue
		}
		w, err := game.ParseWord(raw)
		if err != nil {
			return nil, fmt.Errorf("words: %s:%d: %w", path, line, err)
		}
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("words: read %s: %w", path, err)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyList, path)
	}
	return out, nil
}

// Default returns the embedded fallback list, used when no word file
// is configured anywhere.
func Default() List {
	var out List
	seen := make(map[game.Word]struct{})
	for _, line := range strings.Split(embeddedWords, "\n") {
		raw := strings.TrimSpace(line)
		if raw == "" {
			continue
		}
		w, err := game.ParseWord(raw)
		if err != nil {
			continue
		}
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	return out
}

// Set converts the list into a lookup set.
func (l List) Set() map[game.Word]struct{} {
	m := make(map[game.Word]struct{}, len(l))
	for _, w := range l {
		m[w] = struct{}{}
	}
	return m
}

// Contains reports whether w is in the list.
func (l List) Contains(w game.Word) bool {
	for _, x := range l {
		if x == w {
			return true
		}
	}
	return false
}

// Random returns a cryptographically random word from the list.
func (l List) Random() (game.Word, error) {
	if len(l) == 0 {
		return "", ErrEmptyList
	}
	nBig, err := rand.Int(rand.Reader, big.NewInt(int64(len(l))))
	if err != nil {
		return l[0], nil
	}
	return l[nBig.Int64()], nil
}
