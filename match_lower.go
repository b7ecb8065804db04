package acmatch

import (
	"github.com/segmentio/asm/ascii"

	"github.com/coregx/acmatch/internal/utf8fold"
)

// RunLower scans text case-insensitively: it folds each input code point
// to lowercase on the fly and feeds the folded UTF-8 encoding into the
// automaton byte by byte, without ever materializing a second lowercased
// buffer. automaton must have been built from needles that are already
// lowercased by the caller; needles containing uppercase code units will
// never match.
//
// The fold is single-code-point, not full Unicode case folding: a code
// point whose correct lowercase needs a combining mark (e.g. 'İ') loses
// the mark, because unicode.ToLower always returns exactly one code point.
func RunLower[A, V any](automaton *PackedAutomaton[V], text Text, seed A, reduce Reducer[A, V]) A {
	window := text.Bytes[text.Offset : text.Offset+text.Length]

	// When the whole remaining range is ASCII, folding never changes a
	// code point's length or count, so the general decode/fold/re-encode
	// machinery below degenerates to a plain byte-for-byte fold — take
	// that path directly instead of paying for UTF-8 decoding bytes that
	// are already known to need none.
	if ascii.Valid(window) {
		return runLowerASCII(automaton, text, seed, reduce)
	}
	return runLowerGeneral(automaton, text, seed, reduce)
}

func runLowerASCII[A, V any](automaton *PackedAutomaton[V], text Text, seed A, reduce Reducer[A, V]) A {
	acc := seed
	state := Root
	offset := text.Offset
	remaining := text.Length

	for remaining > 0 {
		cu := utf8fold.FoldASCIIByte(text.Bytes[offset])

		var tr Transition
		if state == Root {
			tr = automaton.rootAscii[cu]
		} else {
			tr = lookupTransition(automaton, state, cu)
		}

		if tr.IsWildcard() {
			state = Root
		} else {
			state = tr.Next()
		}

		offset++
		remaining--

		for _, v := range automaton.Values(state) {
			next := reduce(acc, Match[V]{EndIndex: offset - text.Offset, Value: v})
			acc = next.acc
			if next.tag == tagDone {
				return acc
			}
		}
	}

	return acc
}

func runLowerGeneral[A, V any](automaton *PackedAutomaton[V], text Text, seed A, reduce Reducer[A, V]) A {
	acc := seed
	state := Root
	offset := text.Offset
	remaining := text.Length

	var encoded [utf8fold.MaxEncoded]byte

	for remaining > 0 {
		r, consumed := utf8fold.Decode(text.Bytes[offset : offset+remaining])
		folded := utf8fold.Fold(r)
		n := utf8fold.Encode(folded, encoded[:])

		q := utf8fold.NewQueue(encoded[:n])
		for {
			b, rest, ok := q.Pop()
			if !ok {
				break
			}
			q = rest

			var tr Transition
			if state == Root && b < 128 {
				tr = automaton.rootAscii[b]
			} else {
				tr = lookupTransition(automaton, state, b)
			}

			if tr.IsWildcard() {
				state = Root
			} else {
				state = tr.Next()
			}
		}

		offset += consumed
		remaining -= consumed

		// Reports happen only between code points, once every byte of the
		// folded encoding has been fed through.
		for _, v := range automaton.Values(state) {
			next := reduce(acc, Match[V]{EndIndex: offset - text.Offset, Value: v})
			acc = next.acc
			if next.tag == tagDone {
				return acc
			}
		}
	}

	return acc
}
