package belief

import (
	"fmt"
	"strings"

	"golang.org/x/exp/slices"

	"github.com/beliefkit/beliefkit/pkg/logic"
)

// Belief pairs a sentence with its priority. Higher priority means more
// entrenched: contraction gives up low-priority beliefs first. Beliefs are
// immutable; base operations replace membership, they never rewrite a belief.
type Belief struct {
	Sentence logic.Sentence
	Priority int
}

func (b Belief) String() string {
	return fmt.Sprintf("%s (%d)", b.Sentence, b.Priority)
}

type entry struct {
	belief Belief
	seq    int
}

// Base is an insertion-ordered collection of beliefs, unique by sentence.
// Priority plays no role in membership or iteration; it only ranks beliefs
// when the revision engine decides what to give up.
type Base struct {
	entries []entry
	nextSeq int
}

// New returns an empty base.
func New() *Base {
	return &Base{}
}

// NewFromBeliefs returns a base holding the given beliefs in order,
// dropping duplicate sentences.
func NewFromBeliefs(beliefs ...Belief) *Base {
	b := New()
	for _, belief := range beliefs {
		b.Add(belief)
	}
	return b
}

// Add inserts the belief unless a belief with the same sentence is already
// present.
func (b *Base) Add(belief Belief) {
	if b.Contains(belief.Sentence) {
		return
	}
	b.entries = append(b.entries, entry{belief: belief, seq: b.nextSeq})
	b.nextSeq++
}

// Remove deletes the belief holding the given sentence, if present.
func (b *Base) Remove(belief Belief) {
	for i, e := range b.entries {
		if logic.Identical(e.belief.Sentence, belief.Sentence) {
			b.entries = append(b.entries[:i], b.entries[i+1:]...)
			return
		}
	}
}

// Contains reports whether a belief with the given sentence is present.
func (b *Base) Contains(s logic.Sentence) bool {
	for _, e := range b.entries {
		if logic.Identical(e.belief.Sentence, s) {
			return true
		}
	}
	return false
}

// Len returns the number of beliefs.
func (b *Base) Len() int {
	return len(b.entries)
}

// Beliefs returns the beliefs in insertion order. The slice is a copy; the
// caller may not alias the base through it.
func (b *Base) Beliefs() []Belief {
	beliefs := make([]Belief, 0, len(b.entries))
	for _, e := range b.entries {
		beliefs = append(beliefs, e.belief)
	}
	return beliefs
}

// Sentences returns the sentences of all beliefs in insertion order.
func (b *Base) Sentences() []logic.Sentence {
	sentences := make([]logic.Sentence, 0, len(b.entries))
	for _, e := range b.entries {
		sentences = append(sentences, e.belief.Sentence)
	}
	return sentences
}

// ByEntrenchment returns the beliefs sorted ascending by priority, ties
// broken by insertion order. The first element is the first candidate to
// give up during contraction.
func (b *Base) ByEntrenchment() []Belief {
	sorted := make([]entry, len(b.entries))
	copy(sorted, b.entries)
	slices.SortStableFunc(sorted, func(x, y entry) int {
		if x.belief.Priority != y.belief.Priority {
			return x.belief.Priority - y.belief.Priority
		}
		return x.seq - y.seq
	})
	beliefs := make([]Belief, 0, len(sorted))
	for _, e := range sorted {
		beliefs = append(beliefs, e.belief)
	}
	return beliefs
}

// Entails reports whether the beliefs held in the base entail the query.
func (b *Base) Entails(query logic.Sentence) bool {
	return logic.Entails(b.Sentences(), query)
}

// Consistent reports whether the base has a model.
func (b *Base) Consistent() bool {
	return logic.Satisfiable(b.Sentences())
}

// Clone returns an independent copy of the base. Insertion sequence numbers
// are preserved so entrenchment ties break identically in the copy.
func (b *Base) Clone() *Base {
	entries := make([]entry, len(b.entries))
	copy(entries, b.entries)
	return &Base{entries: entries, nextSeq: b.nextSeq}
}

// Equal reports whether two bases hold the same beliefs in the same order.
func (b *Base) Equal(other *Base) bool {
	if len(b.entries) != len(other.entries) {
		return false
	}
	for i, e := range b.entries {
		o := other.entries[i]
		if !logic.Identical(e.belief.Sentence, o.belief.Sentence) || e.belief.Priority != o.belief.Priority {
			return false
		}
	}
	return true
}

// Subset reports whether every belief in the base also appears in other.
func (b *Base) Subset(other *Base) bool {
	for _, e := range b.entries {
		if !other.Contains(e.belief.Sentence) {
			return false
		}
	}
	return true
}

func (b *Base) String() string {
	if len(b.entries) == 0 {
		return "<empty>"
	}
	lines := make([]string, 0, len(b.entries))
	for _, e := range b.entries {
		lines = append(lines, e.belief.String())
	}
	return strings.Join(lines, "\n")
}
