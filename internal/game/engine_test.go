package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWord(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		input string
		want  Word
		ok    bool
	}{
		{"lowercase", "crane", "crane", true},
		{"uppercase normalized", "CRANE", "crane", true},
		{"surrounding whitespace", "  crane\n", "crane", true},
		{"too short", "cran", "", false},
		{"too long", "cranes", "", false},
		{"digits", "cr4ne", "", false},
		{"empty", "", "", false},
		{"punctuation", "cr-ne", "", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseWord(tc.input)
			if !tc.ok {
				require.ErrorIs(t, err, ErrInvalidWordFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestScore(t *testing.T) {
	t.Parallel()

	hit, mis, miss := MarkHit, MarkMisplaced, MarkMiss
	cases := []struct {
		name   string
		guess  Word
		secret Word
		want   Hint
	}{
		{"identical words are all hits", "crane", "crane", Hint{hit, hit, hit, hit, hit}},
		{"no shared letters", "pupil", "crane", Hint{miss, miss, miss, miss, miss}},
		{"simple misplacements", "nacre", "crane", Hint{mis, mis, mis, mis, hit}},
		// The canonical duplicate-letter trap: alarm has only one l
		// and one m, so the second l must be a miss.
		{"llama vs alarm", "llama", "alarm", Hint{miss, hit, hit, mis, mis}},
		// apple has a single l; the second l in allee gets no credit,
		// and both e's can't match the single unused e.
		{"allee vs apple", "allee", "apple", Hint{hit, mis, miss, miss, hit}},
		{"robot vs motor", "robot", "motor", Hint{mis, hit, miss, hit, mis}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Score(tc.guess, tc.secret))
		})
	}
}

func TestScoreRoundTripConsistency(t *testing.T) {
	t.Parallel()

	pool := []Word{"crane", "alarm", "llama", "apple", "angle", "ankle", "motor", "robot"}
	for _, g := range pool {
		for _, s := range pool {
			assert.True(t, Consistent(s, g, Score(g, s)),
				"secret %q must be consistent with its own hint for guess %q", s, g)
		}
	}
}

func TestParseHint(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		text  string
		guess Word
		want  Hint
		ok    bool
	}{
		{"mixed marks", "h*ll_", "hello", Hint{MarkHit, MarkMisplaced, MarkHit, MarkHit, MarkMiss}, true},
		{"case insensitive hits", "H*LL_", "hello", Hint{MarkHit, MarkMisplaced, MarkHit, MarkHit, MarkMiss}, true},
		{"all misses", "_____", "hello", Hint{}, true},
		{"all hits", "hello", "hello", Hint{MarkHit, MarkHit, MarkHit, MarkHit, MarkHit}, true},
		{"too short", "h*ll", "hello", Hint{}, false},
		{"too long", "h*ll__", "hello", Hint{}, false},
		{"bad character", "h?ll_", "hello", Hint{}, false},
		{"hit letter not from guess", "x*ll_", "hello", Hint{}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseHint(tc.text, tc.guess)
			if !tc.ok {
				require.ErrorIs(t, err, ErrInvalidHintFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestHintFormatRoundTrip(t *testing.T) {
	t.Parallel()

	guess, secret := Word("llama"), Word("alarm")
	h := Score(guess, secret)
	text := h.Format(guess)
	assert.Equal(t, "_la**", text)

	parsed, err := ParseHint(text, guess)
	require.NoError(t, err)
	assert.Equal(t, h, parsed)
}

func TestGameWin(t *testing.T) {
	t.Parallel()

	g := New("crane", 6, false)
	h, err := g.Guess("slate")
	require.NoError(t, err)
	assert.False(t, h.AllHit())
	assert.False(t, g.Finished())
	assert.Equal(t, 5, g.Remaining())

	h, err = g.Guess("crane")
	require.NoError(t, err)
	assert.True(t, h.AllHit())
	assert.True(t, g.Finished())
	assert.True(t, g.Won())
	assert.Len(t, g.Records(), 2)

	_, err = g.Guess("crane")
	assert.ErrorIs(t, err, ErrGameOver)
}

func TestGameLoss(t *testing.T) {
	t.Parallel()

	g := New("crane", 2, false)
	_, err := g.Guess("slate")
	require.NoError(t, err)
	_, err = g.Guess("pupil")
	require.NoError(t, err)

	assert.True(t, g.Finished())
	assert.False(t, g.Won())
	assert.Equal(t, 0, g.Remaining())
}

func TestGameHardMode(t *testing.T) {
	t.Parallel()

	g := New("crane", 6, true)
	h, err := g.Guess("stone")
	require.NoError(t, err)
	assert.Equal(t, MarkHit, h[3]) // n
	assert.Equal(t, MarkHit, h[4]) // e

	// toast would not have produced the hints already seen.
	_, err = g.Guess("toast")
	assert.ErrorIs(t, err, ErrHardModeViolation)
	assert.Len(t, g.Records(), 1, "rejected guess must not be recorded")

	// crane itself is always consistent with its own feedback.
	_, err = g.Guess("crane")
	require.NoError(t, err)
	assert.True(t, g.Won())
}
