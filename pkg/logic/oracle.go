package logic

import "github.com/crillab/gophersat/bf"

// Entails reports whether the premises logically entail the query, i.e.
// whether premises ∧ ¬query has no model.
func Entails(premises []Sentence, query Sentence) bool {
	f := bf.Not(query.bf())
	for _, p := range premises {
		f = bf.And(f, p.bf())
	}
	return bf.Solve(f) == nil
}

// Satisfiable reports whether all given sentences can hold at once. The
// empty set is trivially satisfiable.
func Satisfiable(sentences []Sentence) bool {
	if len(sentences) == 0 {
		return true
	}
	f := sentences[0].bf()
	for _, s := range sentences[1:] {
		f = bf.And(f, s.bf())
	}
	return bf.Solve(f) != nil
}

// Tautology reports whether s is entailed by the empty set.
func Tautology(s Sentence) bool {
	return bf.Solve(bf.Not(s.bf())) == nil
}

// Contradiction reports whether s has no model at all.
func Contradiction(s Sentence) bool {
	return bf.Solve(s.bf()) == nil
}

// Equivalent reports whether a and b entail each other.
func Equivalent(a, b Sentence) bool {
	return Entails([]Sentence{a}, b) && Entails([]Sentence{b}, a)
}
