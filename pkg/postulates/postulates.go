// Package postulates checks the revision engine against the AGM rationality
// postulates. Each check runs the engine on concrete inputs and reports the
// outcome; a failing postulate is data, not an error, and never stops the
// remaining checks.
package postulates

import (
	"fmt"

	"github.com/beliefkit/beliefkit/pkg/belief"
	"github.com/beliefkit/beliefkit/pkg/logic"
	"github.com/beliefkit/beliefkit/pkg/revision"
)

// Result is the outcome of a single postulate check. On failure Details
// carries the inputs and the computed base contents.
type Result struct {
	Postulate string
	Passed    bool
	Details   string
}

func (r Result) String() string {
	status := "PASS"
	if !r.Passed {
		status = "FAIL"
	}
	return fmt.Sprintf("%s: %s (%s)", r.Postulate, status, r.Details)
}

// Success checks that revising with a non-contradictory belief yields a base
// entailing its sentence.
func Success(base *belief.Base, incoming belief.Belief) Result {
	if logic.Contradiction(incoming.Sentence) {
		return Result{
			Postulate: "success",
			Passed:    true,
			Details:   fmt.Sprintf("%s is a contradiction, postulate does not apply", incoming.Sentence),
		}
	}
	revised := revision.Revise(base, incoming)
	if revised.Entails(incoming.Sentence) {
		return Result{
			Postulate: "success",
			Passed:    true,
			Details:   fmt.Sprintf("revised base entails %s", incoming.Sentence),
		}
	}
	return Result{
		Postulate: "success",
		Passed:    false,
		Details:   fmt.Sprintf("revising with %s did not yield entailment; base:\n%s", incoming, revised),
	}
}

// Inclusion checks that contraction only ever removes beliefs.
func Inclusion(base *belief.Base, target logic.Sentence) Result {
	contracted := revision.Contract(base, target)
	if contracted.Subset(base) {
		return Result{
			Postulate: "inclusion",
			Passed:    true,
			Details:   fmt.Sprintf("contraction by %s kept a subset of the base", target),
		}
	}
	return Result{
		Postulate: "inclusion",
		Passed:    false,
		Details:   fmt.Sprintf("contraction by %s introduced beliefs; base:\n%s", target, contracted),
	}
}

// Vacuity checks that contracting a sentence the base does not entail leaves
// the base untouched.
func Vacuity(base *belief.Base, target logic.Sentence) Result {
	if base.Entails(target) {
		return Result{
			Postulate: "vacuity",
			Passed:    false,
			Details:   fmt.Sprintf("precondition failed: base already entails %s", target),
		}
	}
	contracted := revision.Contract(base, target)
	if contracted.Equal(base) {
		return Result{
			Postulate: "vacuity",
			Passed:    true,
			Details:   fmt.Sprintf("contraction by unentailed %s changed nothing", target),
		}
	}
	return Result{
		Postulate: "vacuity",
		Passed:    false,
		Details:   fmt.Sprintf("contraction by unentailed %s altered the base:\n%s", target, contracted),
	}
}

// Consistency checks that revising with a non-contradictory belief yields a
// consistent base.
func Consistency(base *belief.Base, incoming belief.Belief) Result {
	if logic.Contradiction(incoming.Sentence) {
		return Result{
			Postulate: "consistency",
			Passed:    true,
			Details:   fmt.Sprintf("%s is a contradiction, postulate does not apply", incoming.Sentence),
		}
	}
	revised := revision.Revise(base, incoming)
	if revised.Consistent() {
		return Result{
			Postulate: "consistency",
			Passed:    true,
			Details:   fmt.Sprintf("base is consistent after revising with %s", incoming),
		}
	}
	return Result{
		Postulate: "consistency",
		Passed:    false,
		Details:   fmt.Sprintf("revising with %s left an inconsistent base:\n%s", incoming, revised),
	}
}

// Extensionality checks that contracting by logically equivalent sentences
// produces bases which entail exactly the same beliefs.
func Extensionality(base *belief.Base, phi, psi logic.Sentence) Result {
	if !logic.Equivalent(phi, psi) {
		return Result{
			Postulate: "extensionality",
			Passed:    false,
			Details:   fmt.Sprintf("precondition failed: %s and %s are not equivalent", phi, psi),
		}
	}
	byPhi := revision.Contract(base, phi)
	byPsi := revision.Contract(base, psi)
	for _, b := range base.Beliefs() {
		if byPhi.Entails(b.Sentence) != byPsi.Entails(b.Sentence) {
			return Result{
				Postulate: "extensionality",
				Passed:    false,
				Details: fmt.Sprintf("contracting by %s and by %s disagree on %s; bases:\n%s\n--\n%s",
					phi, psi, b.Sentence, byPhi, byPsi),
			}
		}
	}
	return Result{
		Postulate: "extensionality",
		Passed:    true,
		Details:   fmt.Sprintf("contracting by %s and by %s agree on all beliefs", phi, psi),
	}
}

// RunAll exercises every postulate against the predefined cases and returns
// the results in a fixed order.
func RunAll() []Result {
	p := logic.Atom("p")
	q := logic.Atom("q")
	r := logic.Atom("r")

	return []Result{
		// Revising away a held belief must make the newcomer entailed.
		Success(
			belief.NewFromBeliefs(belief.Belief{Sentence: logic.Not(p), Priority: 1}),
			belief.Belief{Sentence: p, Priority: 1},
		),
		// Contracting an entailed sentence may only shrink the base.
		Inclusion(
			belief.NewFromBeliefs(
				belief.Belief{Sentence: p, Priority: 2},
				belief.Belief{Sentence: logic.Implies(p, q), Priority: 1},
			),
			q,
		),
		// Contracting something never entailed is a no-op.
		Vacuity(
			belief.NewFromBeliefs(
				belief.Belief{Sentence: p, Priority: 1},
				belief.Belief{Sentence: logic.Implies(p, q), Priority: 2},
			),
			r,
		),
		// Revising with the negation of a held belief stays consistent.
		Consistency(
			belief.NewFromBeliefs(
				belief.Belief{Sentence: p, Priority: 1},
				belief.Belief{Sentence: q, Priority: 2},
			),
			belief.Belief{Sentence: logic.Not(p), Priority: 1},
		),
		// p and ~~p must contract identically.
		Extensionality(
			belief.NewFromBeliefs(
				belief.Belief{Sentence: p, Priority: 1},
				belief.Belief{Sentence: logic.Implies(p, q), Priority: 2},
			),
			p,
			logic.Not(logic.Not(p)),
		),
	}
}
