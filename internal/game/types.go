// internal/game/types.go
//
// Core type definitions for the feedback model.
// Defines:
//   - Word: a validated 5-letter lowercase guess or secret.
//   - Mark: per-letter result of a guess (hit/misplaced/miss).
//   - Hint: the full 5-mark feedback for one guess, plus its textual
//     form ('_' = miss, '*' = misplaced, letter = hit).

package game

import (
	"errors"
	"fmt"
	"strings"
)

// WordLength is the only supported word size.
const WordLength = 5

var (
	// ErrInvalidWordFormat is returned when a word is not exactly
	// five alphabetic characters.
	ErrInvalidWordFormat = errors.New("word must be exactly 5 letters")

	// ErrInvalidHintFormat is returned when a hint string is not five
	// characters drawn from '_', '*', or the guessed letters.
	ErrInvalidHintFormat = errors.New("hint must be 5 characters of '_', '*', or the guessed letter")
)

// Word is a lowercase word of exactly WordLength ASCII letters.
// Construct via ParseWord; the zero value is not valid.
type Word string

// ParseWord trims, lowercases, and validates s.
func ParseWord(s string) (Word, error) {
	w := strings.ToLower(strings.TrimSpace(s))
	if len(w) != WordLength || !isAlpha(w) {
		return "", fmt.Errorf("%w: %q", ErrInvalidWordFormat, s)
	}
	return Word(w), nil
}

// isAlpha checks that a string consists only of lowercase a–z.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}

// Mark represents the evaluation result for a single letter in a guess.
type Mark uint8

const (
	// MarkMiss: the letter does not occur in the secret (beyond
	// occurrences already consumed by other marks).
	MarkMiss Mark = iota
	// MarkMisplaced: the letter occurs in the secret but at a
	// different position.
	MarkMisplaced
	// MarkHit: the letter is correct and in the correct position.
	MarkHit
)

// Hint is the positional feedback for one guess. It is comparable, so
// hints key maps directly; two hints are equal iff all five marks match.
type Hint [WordLength]Mark

// AllHit reports whether every position is a hit, i.e. the guess
// equals the secret.
func (h Hint) AllHit() bool {
	for _, m := range h {
		if m != MarkHit {
			return false
		}
	}
	return true
}

// ParseHint decodes the textual hint form against the guess it
// annotates: '_' is a miss, '*' is misplaced, and a letter (case
// insensitive, equal to the guessed letter at that position) is a hit.
func ParseHint(text string, guess Word) (Hint, error) {
	var h Hint
	if len(text) != WordLength {
		return h, fmt.Errorf("%w: %q", ErrInvalidHintFormat, text)
	}
	lower := strings.ToLower(text)
	for i := 0; i < WordLength; i++ {
		switch c := lower[i]; {
		case c == '_':
			h[i] = MarkMiss
		case c == '*':
			h[i] = MarkMisplaced
		case c == guess[i]:
			h[i] = MarkHit
		default:
			return Hint{}, fmt.Errorf("%w: %q", ErrInvalidHintFormat, text)
		}
	}
	return h, nil
}

// Format is the inverse of ParseHint, using the guess's own letters
// for hit positions.
func (h Hint) Format(guess Word) string {
	var b strings.Builder
	b.Grow(WordLength)
	for i, m := range h {
		switch m {
		case MarkHit:
			b.WriteByte(guess[i])
		case MarkMisplaced:
			b.WriteByte('*')
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}
