package acmatch_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coregx/acmatch"
)

// These scenario tests exercise the public surface end to end the way a
// caller would use it, rather than poking at builder/matcher internals.

func buildFrom(t *testing.T, needles ...string) *acmatch.PackedAutomaton[string] {
	t.Helper()
	builder := acmatch.NewBuilder[string]()
	for _, n := range needles {
		builder.AddPattern([]byte(n), n)
	}
	automaton, err := builder.Build()
	require.NoError(t, err)
	return automaton
}

func TestScenario_UshersDictionary(t *testing.T) {
	automaton := buildFrom(t, "he", "she", "his", "hers")
	matches := acmatch.FindAll(automaton, acmatch.NewText([]byte("ushers")), acmatch.CaseSensitive)

	require.Len(t, matches, 3)
	assert.Equal(t, acmatch.Match[string]{EndIndex: 4, Value: "she"}, matches[0])
	assert.Equal(t, acmatch.Match[string]{EndIndex: 4, Value: "he"}, matches[1])
	assert.Equal(t, acmatch.Match[string]{EndIndex: 6, Value: "hers"}, matches[2])
}

func TestScenario_NestedPrefixes(t *testing.T) {
	automaton := buildFrom(t, "a", "ab", "abc")
	matches := acmatch.FindAll(automaton, acmatch.NewText([]byte("abc")), acmatch.CaseSensitive)

	require.Len(t, matches, 3)
	// "a", "ab", and "abc" fail to root rather than to each other, so
	// each is entered at its own scan step and reported at its own
	// end index, in the order the scan reaches them.
	assert.Equal(t, acmatch.Match[string]{EndIndex: 1, Value: "a"}, matches[0])
	assert.Equal(t, acmatch.Match[string]{EndIndex: 2, Value: "ab"}, matches[1])
	assert.Equal(t, acmatch.Match[string]{EndIndex: 3, Value: "abc"}, matches[2])
}

func TestScenario_RepeatedNeedleOverlapping(t *testing.T) {
	automaton := buildFrom(t, "aa")
	matches := acmatch.FindAll(automaton, acmatch.NewText([]byte("aaaa")), acmatch.CaseSensitive)

	ends := make([]int, len(matches))
	for i, m := range matches {
		ends[i] = m.EndIndex
	}
	assert.Equal(t, []int{2, 3, 4}, ends)
}

func TestScenario_UnicodeNeedleOverMixedText(t *testing.T) {
	automaton := buildFrom(t, "café")
	matches := acmatch.FindAll(automaton, acmatch.NewText([]byte("a café au lait")), acmatch.CaseSensitive)

	require.Len(t, matches, 1)
	assert.Equal(t, "café", matches[0].Value)
}

func TestScenario_CaseInsensitiveUnicodeNeedle(t *testing.T) {
	automaton := buildFrom(t, "café")
	matches := acmatch.FindAll(automaton, acmatch.NewText([]byte("A CAFÉ")), acmatch.IgnoreCase)

	require.Len(t, matches, 1)
	assert.Equal(t, "café", matches[0].Value)
}

func TestScenario_DuplicateNeedlesBothReport(t *testing.T) {
	builder := acmatch.NewBuilder[int]()
	builder.AddPattern([]byte("dup"), 1)
	builder.AddPattern([]byte("dup"), 2)
	automaton, err := builder.Build()
	require.NoError(t, err)

	matches := acmatch.FindAll(automaton, acmatch.NewText([]byte("dup")), acmatch.CaseSensitive)
	require.Len(t, matches, 2)
	assert.Equal(t, 1, matches[0].Value)
	assert.Equal(t, 2, matches[1].Value)
}

func TestScenario_EarlyTerminationStopsTheScan(t *testing.T) {
	automaton := buildFrom(t, "he", "she", "his", "hers")

	var seen []acmatch.Match[string]
	result := acmatch.Run(automaton, acmatch.NewText([]byte("ushers")), 0, func(acc int, m acmatch.Match[string]) acmatch.Next[int] {
		seen = append(seen, m)
		if acc+1 == 2 {
			return acmatch.Done(acc + 1)
		}
		return acmatch.Step(acc + 1)
	})

	assert.Equal(t, 2, result)
	require.Len(t, seen, 2)
	assert.Equal(t, "he", seen[1].Value)
}
