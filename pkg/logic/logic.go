package logic

import (
	"fmt"

	"github.com/crillab/gophersat/bf"
)

// Sentence is an immutable propositional expression. Sentences render to a
// canonical string form which the belief base uses as identity, and translate
// to gophersat formulas for satisfiability queries.
type Sentence interface {
	fmt.Stringer
	bf() bf.Formula
}

type atom struct {
	name string
}

type negation struct {
	sub Sentence
}

type conjunction struct {
	left, right Sentence
}

type disjunction struct {
	left, right Sentence
}

type implication struct {
	left, right Sentence
}

type truth struct{}

type falsity struct{}

// Atom returns the atomic proposition with the given name.
func Atom(name string) Sentence {
	return atom{name: name}
}

// Not returns the negation of s.
func Not(s Sentence) Sentence {
	return negation{sub: s}
}

// And returns the conjunction of the given sentences, folded left.
// With no arguments it returns Truth.
func And(subs ...Sentence) Sentence {
	if len(subs) == 0 {
		return Truth
	}
	s := subs[0]
	for _, sub := range subs[1:] {
		s = conjunction{left: s, right: sub}
	}
	return s
}

// Or returns the disjunction of the given sentences, folded left.
// With no arguments it returns Falsity.
func Or(subs ...Sentence) Sentence {
	if len(subs) == 0 {
		return Falsity
	}
	s := subs[0]
	for _, sub := range subs[1:] {
		s = disjunction{left: s, right: sub}
	}
	return s
}

// Implies returns the implication from premise to conclusion.
func Implies(premise, conclusion Sentence) Sentence {
	return implication{left: premise, right: conclusion}
}

// Truth and Falsity are the constant sentences.
var (
	Truth   Sentence = truth{}
	Falsity Sentence = falsity{}
)

func (a atom) String() string        { return a.name }
func (n negation) String() string    { return "~" + n.sub.String() }
func (c conjunction) String() string { return "(" + c.left.String() + " & " + c.right.String() + ")" }
func (d disjunction) String() string { return "(" + d.left.String() + " | " + d.right.String() + ")" }
func (i implication) String() string {
	return "(" + i.left.String() + " -> " + i.right.String() + ")"
}
func (truth) String() string   { return "true" }
func (falsity) String() string { return "false" }

func (a atom) bf() bf.Formula        { return bf.Var(a.name) }
func (n negation) bf() bf.Formula    { return bf.Not(n.sub.bf()) }
func (c conjunction) bf() bf.Formula { return bf.And(c.left.bf(), c.right.bf()) }
func (d disjunction) bf() bf.Formula { return bf.Or(d.left.bf(), d.right.bf()) }
func (i implication) bf() bf.Formula { return bf.Implies(i.left.bf(), i.right.bf()) }
func (truth) bf() bf.Formula         { return bf.True }
func (falsity) bf() bf.Formula       { return bf.False }

// Identical reports whether two sentences are structurally the same.
// Logically equivalent but syntactically different sentences compare unequal;
// semantic comparison goes through Entails in both directions.
func Identical(a, b Sentence) bool {
	return a.String() == b.String()
}
