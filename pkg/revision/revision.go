// Package revision implements belief contraction, expansion and revision
// over a belief base. All operations leave their inputs untouched and return
// a fresh base, so callers can compare the outcome against the original.
package revision

import (
	"github.com/sirupsen/logrus"

	"github.com/beliefkit/beliefkit/pkg/belief"
	"github.com/beliefkit/beliefkit/pkg/logic"
)

// Contract removes just enough low-priority beliefs from base so that the
// result no longer entails target.
//
// If base does not entail target there is nothing to do (vacuity). A
// tautological target cannot be given up at all; the base is returned
// unchanged. Otherwise beliefs are scanned ascending by priority, ties broken
// by insertion order, and the first belief whose removal breaks the
// entailment is given up. When the entailment is supported redundantly and no
// single removal breaks it, the least entrenched candidate is dropped
// outright and the scan restarts against what remains.
func Contract(base *belief.Base, target logic.Sentence) *belief.Base {
	result := base.Clone()
	if !result.Entails(target) {
		return result
	}
	if logic.Tautology(target) {
		logrus.Debugf("Cannot contract tautology %s, leaving base unchanged.", target)
		return result
	}

	for result.Entails(target) && result.Len() > 0 {
		candidates := result.ByEntrenchment()
		removed := false
		for _, candidate := range candidates {
			trial := result.Clone()
			trial.Remove(candidate)
			if !trial.Entails(target) {
				logrus.Debugf("Giving up %s to stop entailing %s.", candidate, target)
				result = trial
				removed = true
				break
			}
		}
		if !removed {
			// Entailment of the target survives every single removal, so the
			// support is redundant. Drop the least entrenched belief and scan
			// again with one support path fewer.
			logrus.Debugf("Entailment of %s is redundant, giving up %s.", target, candidates[0])
			result.Remove(candidates[0])
		}
	}
	return result
}

// Expand adds the belief to the base, deduplicated by sentence. No
// consistency check happens here; keeping the base consistent is Revise's
// job.
func Expand(base *belief.Base, b belief.Belief) *belief.Base {
	result := base.Clone()
	result.Add(b)
	return result
}

// Revise incorporates the belief while preserving consistency, via the Levi
// identity: first contract the negation of the incoming sentence, then
// expand with the belief.
func Revise(base *belief.Base, b belief.Belief) *belief.Base {
	contracted := Contract(base, logic.Not(b.Sentence))
	return Expand(contracted, b)
}
