package acmatch

import (
	"math"

	"github.com/coregx/acmatch/internal/conv"
	"github.com/coregx/acmatch/internal/queue"
)

// noChild marks an absent child edge in a trie node under construction.
const noChild State = -1

// trieNode is a node of the mutable trie the Builder maintains during
// construction. children is a dense 256-entry array rather than an ordered
// map: indexing it by byte gives byte-ascending iteration for free, which
// is exactly the deterministic, reproducible packing order Build needs
// without a separate ordered-map abstraction.
type trieNode[V any] struct {
	children [256]State
	fail     State
	initial  []V // payloads terminating directly at this state
	values   []V // initial ++ values[fail(state)], set during propagation
}

func newTrieNode[V any]() trieNode[V] {
	n := trieNode[V]{}
	for i := range n.children {
		n.children[i] = noChild
	}
	return n
}

// Builder constructs a PackedAutomaton incrementally from a sequence of
// (needle, value) pairs. A Builder is not safe for concurrent use: callers
// must serialize AddPattern/Build calls against a single Builder.
type Builder[V any] struct {
	nodes []trieNode[V]
}

// NewBuilder creates a Builder with default initial capacity.
func NewBuilder[V any]() *Builder[V] {
	return NewBuilderWithCapacity[V](16)
}

// NewBuilderWithCapacity creates a Builder, pre-sizing its internal state
// table for the expected number of trie nodes. This is a hint only; the
// table grows as needed.
func NewBuilderWithCapacity[V any](capacity int) *Builder[V] {
	b := &Builder[V]{nodes: make([]trieNode[V], 0, capacity)}
	b.addNode() // state 0 / root
	return b
}

func (b *Builder[V]) addNode() State {
	id := conv.IntToUint32(len(b.nodes))
	b.nodes = append(b.nodes, newTrieNode[V]())
	return State(id)
}

// AddPattern adds one needle and its payload to the automaton under
// construction. Needles may be empty or duplicated; both are accepted.
// Each call walks from the root following existing labeled edges,
// allocating new states for any absent byte.
func (b *Builder[V]) AddPattern(needle []byte, value V) {
	cur := Root
	for _, c := range needle {
		next := b.nodes[cur].children[c]
		if next == noChild {
			next = b.addNode()
			b.nodes[cur].children[c] = next
		}
		cur = next
	}
	b.nodes[cur].initial = append(b.nodes[cur].initial, value)
}

// maxPackableStates is the largest state count representable by State
// (int32) and thus by the packed transition word's state field.
const maxPackableStates = math.MaxInt32

func checkStateCount(n int) error {
	if n < 0 || uint(n) > maxPackableStates {
		return &BuildError{State: -1, Err: ErrTooManyStates}
	}
	return nil
}

// Build finalizes the trie into an immutable PackedAutomaton. It computes
// failure links and propagates output sets by breadth-first traversal,
// then packs the result into dense arrays. The Builder must not be used
// after Build is called.
func (b *Builder[V]) Build() (*PackedAutomaton[V], error) {
	if err := checkStateCount(len(b.nodes)); err != nil {
		return nil, err
	}

	b.computeFailureLinks()
	b.propagateOutputs()
	automaton := b.pack()

	b.nodes = nil // release intermediate trie state
	return automaton, nil
}

// computeFailureLinks performs a breadth-first traversal of the trie,
// computing fail(T) for every discovered edge S --b--> T. The root is
// seeded into the queue with its (zero-value, i.e. itself) failure link
// already set; this lets the same transition-chasing code compute the
// root's children's failure links (always root, by the "equals T itself"
// rule) without a separate special case.
func (b *Builder[V]) computeFailureLinks() {
	q := queue.NewQueue(len(b.nodes))
	q.Push(int32(Root))

	for {
		sv, ok := q.Pop()
		if !ok {
			break
		}
		s := State(sv)

		for c := 0; c < 256; c++ {
			t := b.nodes[s].children[c]
			if t == noChild {
				continue
			}

			x := b.nodes[s].fail
			for x != Root && b.nodes[x].children[c] == noChild {
				x = b.nodes[x].fail
			}

			var f State
			if target := b.nodes[x].children[c]; target != noChild {
				if target == t {
					// Only possible when s is root: t's own edge was
					// found again by chasing from root's own failure
					// link (root). Fall back to root itself.
					f = Root
				} else {
					f = target
				}
			} else {
				f = Root
			}

			b.nodes[t].fail = f
			q.Push(int32(t))
		}
	}
}

// propagateOutputs performs a second breadth-first traversal, setting
// values[s] = initial[s] ++ values[fail(s)] for every non-root state.
// Because fail(s) always has strictly smaller depth than s, and BFS visits
// states in non-decreasing depth order, values[fail(t)] is already final
// by the time a child t is reached.
func (b *Builder[V]) propagateOutputs() {
	b.nodes[Root].values = b.nodes[Root].initial

	q := queue.NewQueue(len(b.nodes))
	q.Push(int32(Root))

	for {
		sv, ok := q.Pop()
		if !ok {
			break
		}
		s := State(sv)

		for c := 0; c < 256; c++ {
			t := b.nodes[s].children[c]
			if t == noChild {
				continue
			}

			inherited := b.nodes[b.nodes[t].fail].values
			own := b.nodes[t].initial
			switch {
			case len(own) == 0:
				b.nodes[t].values = inherited
			case len(inherited) == 0:
				b.nodes[t].values = own
			default:
				merged := make([]V, 0, len(own)+len(inherited))
				merged = append(merged, own...)
				merged = append(merged, inherited...)
				b.nodes[t].values = merged
			}

			q.Push(int32(t))
		}
	}
}

// pack builds the dense PackedAutomaton from the finished trie: each
// state's labeled transitions in byte-ascending order, terminated by one
// wildcard transition encoding its failure link, plus the root's direct
// ASCII jump table.
func (b *Builder[V]) pack() *PackedAutomaton[V] {
	n := len(b.nodes)

	a := &PackedAutomaton[V]{
		values:  make([][]V, n),
		offsets: make([]int32, n+1),
	}

	for s := 0; s < n; s++ {
		a.values[s] = b.nodes[s].values
		a.offsets[s] = int32(len(a.transitions))

		for c := 0; c < 256; c++ {
			if t := b.nodes[s].children[c]; t != noChild {
				a.transitions = append(a.transitions, newLabeledTransition(byte(c), t))
			}
		}
		a.transitions = append(a.transitions, newWildcardTransition(b.nodes[s].fail))
	}
	a.offsets[n] = int32(len(a.transitions))

	for c := 0; c < 128; c++ {
		if t := b.nodes[Root].children[c]; t != noChild {
			a.rootAscii[c] = newLabeledTransition(byte(c), t)
		} else {
			a.rootAscii[c] = newWildcardTransition(Root)
		}
	}

	return a
}
