package postulates

import (
	"testing"

	. "github.com/onsi/gomega"

	"github.com/beliefkit/beliefkit/pkg/belief"
	"github.com/beliefkit/beliefkit/pkg/logic"
)

func b(sentence string, priority int) belief.Belief {
	return belief.Belief{Sentence: logic.MustParse(sentence), Priority: priority}
}

func TestSuccess(t *testing.T) {
	tests := []struct {
		name     string
		beliefs  []belief.Belief
		incoming belief.Belief
		passed   bool
	}{
		{name: "revising in the negation of a held belief",
			beliefs:  []belief.Belief{b("~p", 1)},
			incoming: b("p", 1),
			passed:   true,
		},
		{name: "revising an empty base",
			beliefs:  nil,
			incoming: b("p", 1),
			passed:   true,
		},
		{name: "contradictions are exempt",
			beliefs:  []belief.Belief{b("p", 1)},
			incoming: b("q & ~q", 1),
			passed:   true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGomegaWithT(t)
			result := Success(belief.NewFromBeliefs(tt.beliefs...), tt.incoming)
			g.Expect(result.Postulate).To(Equal("success"))
			g.Expect(result.Passed).To(Equal(tt.passed))
		})
	}
}

func TestInclusion(t *testing.T) {
	g := NewGomegaWithT(t)
	base := belief.NewFromBeliefs(b("p", 2), b("p -> q", 1))
	result := Inclusion(base, logic.MustParse("q"))
	g.Expect(result.Passed).To(BeTrue())
}

func TestVacuity(t *testing.T) {
	g := NewGomegaWithT(t)
	base := belief.NewFromBeliefs(b("p", 1), b("p -> q", 2))

	result := Vacuity(base, logic.MustParse("r"))
	g.Expect(result.Passed).To(BeTrue())

	// An entailed target fails the precondition and is reported, not raised.
	precondition := Vacuity(base, logic.MustParse("q"))
	g.Expect(precondition.Passed).To(BeFalse())
	g.Expect(precondition.Details).To(ContainSubstring("precondition"))
}

func TestConsistency(t *testing.T) {
	tests := []struct {
		name     string
		beliefs  []belief.Belief
		incoming belief.Belief
	}{
		{name: "conflicting newcomer",
			beliefs:  []belief.Belief{b("p", 1), b("q", 2)},
			incoming: b("~p", 1),
		},
		{name: "conflict through implication",
			beliefs:  []belief.Belief{b("p", 2), b("p -> q", 1)},
			incoming: b("~q", 3),
		},
		{name: "contradictions are exempt",
			beliefs:  []belief.Belief{b("p", 1)},
			incoming: b("false", 1),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGomegaWithT(t)
			result := Consistency(belief.NewFromBeliefs(tt.beliefs...), tt.incoming)
			g.Expect(result.Passed).To(BeTrue(), result.Details)
		})
	}
}

func TestExtensionality(t *testing.T) {
	g := NewGomegaWithT(t)
	base := belief.NewFromBeliefs(b("p", 1), b("p -> q", 2))

	result := Extensionality(base, logic.MustParse("p"), logic.MustParse("~~p"))
	g.Expect(result.Passed).To(BeTrue(), result.Details)

	// Non-equivalent targets fail the precondition.
	precondition := Extensionality(base, logic.MustParse("p"), logic.MustParse("q"))
	g.Expect(precondition.Passed).To(BeFalse())
	g.Expect(precondition.Details).To(ContainSubstring("not equivalent"))
}

func TestRunAll(t *testing.T) {
	g := NewGomegaWithT(t)
	results := RunAll()
	g.Expect(results).To(HaveLen(5))

	names := []string{}
	for _, result := range results {
		names = append(names, result.Postulate)
		g.Expect(result.Passed).To(BeTrue(), result.String())
	}
	g.Expect(names).To(Equal([]string{"success", "inclusion", "vacuity", "consistency", "extensionality"}))
}
