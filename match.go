package acmatch

import "fmt"

// Match names one needle occurrence reported by Run or RunLower.
// EndIndex is the zero-based code-unit offset one past the last byte of
// text that was consumed to reach the match, relative to the scanned
// slice's logical start.
type Match[V any] struct {
	EndIndex int
	Value    V
}

// String renders m for debugging and test failure messages.
func (m Match[V]) String() string {
	return fmt.Sprintf("Match{end=%d, value=%v}", m.EndIndex, m.Value)
}

// nextTag is the tag of a Next value.
type nextTag uint8

const (
	tagStep nextTag = iota
	tagDone
)

// Next is the reducer's control signal: Step to keep scanning with an
// updated accumulator, or Done to stop immediately.
type Next[A any] struct {
	tag nextTag
	acc A
}

// Step continues scanning, threading acc through to the next match (or to
// the final return value if there are no more).
func Step[A any](acc A) Next[A] {
	return Next[A]{tag: tagStep, acc: acc}
}

// Done stops scanning immediately; acc becomes Run/RunLower's return
// value with no further input consumed.
func Done[A any](acc A) Next[A] {
	return Next[A]{tag: tagDone, acc: acc}
}

// Reducer is called once per reported match. It returns the next control
// signal and the (possibly updated) accumulator.
type Reducer[A, V any] func(acc A, m Match[V]) Next[A]

// Text is the (buffer, offset, length) triple Run and RunLower scan.
// Offset and Length describe the subrange of Bytes that must be
// well-formed UTF-8 for RunLower; Run makes no such assumption.
type Text struct {
	Bytes  []byte
	Offset int
	Length int
}

// NewText wraps an entire byte slice as a Text covering it completely.
func NewText(b []byte) Text {
	return Text{Bytes: b, Offset: 0, Length: len(b)}
}

// Run scans text case-sensitively, driving automaton byte by byte and
// invoking reduce for every match, in the order matches end in the input.
// It never reads outside [text.Offset, text.Offset+text.Length).
func Run[A, V any](automaton *PackedAutomaton[V], text Text, seed A, reduce Reducer[A, V]) A {
	acc := seed
	state := Root
	offset := text.Offset
	remaining := text.Length

	for remaining > 0 {
		cu := text.Bytes[offset]

		var tr Transition
		if state == Root && cu < 128 {
			tr = automaton.rootAscii[cu]
		} else {
			tr = lookupTransition(automaton, state, cu)
		}

		if tr.IsWildcard() {
			// At root this always means "no edge on cu; stay at root and
			// consume the byte" because lookupTransition/rootAscii only
			// ever hand back a root-targeting wildcard for state==Root.
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

// lookupTransition scans state's transition slice for a labeled edge on
// cu, chasing failure links through wildcard transitions until one is
// found or the root absorbs the byte.
func lookupTransition[V any](automaton *PackedAutomaton[V], state State, cu byte) Transition {
	for {
		for _, tr := range automaton.transitionsFor(state) {
			if tr.IsWildcard() {
				if state == Root {
					return tr
				}
				state = tr.Next()
				break
			}
			if tr.Byte() == cu {
				return tr
			}
		}
	}
}
