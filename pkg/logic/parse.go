package logic

import (
	"fmt"
	"unicode"
	"unicode/utf8"
)

// MalformedFormulaError reports a sentence which could not be parsed into a
// valid propositional structure.
type MalformedFormulaError struct {
	Input string
	Pos   int
	Msg   string
}

func (e *MalformedFormulaError) Error() string {
	return fmt.Sprintf("malformed formula %q at offset %d: %s", e.Input, e.Pos, e.Msg)
}

type tokenKind int

const (
	tokAtom tokenKind = iota
	tokTrue
	tokFalse
	tokNot
	tokAnd
	tokOr
	tokImplies
	tokLParen
	tokRParen
	tokEOF
)

type token struct {
	kind tokenKind
	text string
	pos  int
}

// Parse turns a sentence in the common surface syntax into a Sentence.
// Negation binds tightest, then conjunction, then disjunction; implication
// binds loosest and associates to the right. Accepted connective spellings:
// `~` `!` `¬` `not`, `&` `∧` `and`, `|` `∨` `or`, `->` `→` `>>` `implies`,
// plus the constants `true` and `false`.
func Parse(input string) (Sentence, error) {
	toks, err := scan(input)
	if err != nil {
		return nil, err
	}
	p := &parser{input: input, toks: toks}
	s, err := p.sentence()
	if err != nil {
		return nil, err
	}
	if tok := p.peek(); tok.kind != tokEOF {
		return nil, p.errorf(tok.pos, "unexpected %q after complete sentence", tok.text)
	}
	return s, nil
}

// MustParse is Parse for statically known sentences; it panics on error.
func MustParse(input string) Sentence {
	s, err := Parse(input)
	if err != nil {
		panic(err)
	}
	return s
}

func scan(input string) ([]token, error) {
	var toks []token
	for pos := 0; pos < len(input); {
		r, width := utf8.DecodeRuneInString(input[pos:])
		switch {
		case unicode.IsSpace(r):
			pos += width
			continue
		case r == '(':
			toks = append(toks, token{tokLParen, "(", pos})
		case r == ')':
			toks = append(toks, token{tokRParen, ")", pos})
		case r == '~' || r == '!' || r == '¬':
			toks = append(toks, token{tokNot, string(r), pos})
		case r == '&' || r == '∧':
			toks = append(toks, token{tokAnd, string(r), pos})
		case r == '|' || r == '∨':
			toks = append(toks, token{tokOr, string(r), pos})
		case r == '→':
			toks = append(toks, token{tokImplies, string(r), pos})
		case r == '-':
			if pos+1 >= len(input) || input[pos+1] != '>' {
				return nil, &MalformedFormulaError{Input: input, Pos: pos, Msg: "expected '>' after '-'"}
			}
			toks = append(toks, token{tokImplies, "->", pos})
			width = 2
		case r == '>':
			if pos+1 >= len(input) || input[pos+1] != '>' {
				return nil, &MalformedFormulaError{Input: input, Pos: pos, Msg: "expected '>' after '>'"}
			}
			toks = append(toks, token{tokImplies, ">>", pos})
			width = 2
		case unicode.IsLetter(r) || r == '_':
			end := pos + width
			for end < len(input) {
				r2, w2 := utf8.DecodeRuneInString(input[end:])
				if !unicode.IsLetter(r2) && !unicode.IsDigit(r2) && r2 != '_' {
					break
				}
				end += w2
			}
			word := input[pos:end]
			toks = append(toks, token{wordKind(word), word, pos})
			width = end - pos
		default:
			return nil, &MalformedFormulaError{Input: input, Pos: pos, Msg: fmt.Sprintf("unexpected character %q", r)}
		}
		pos += width
	}
	toks = append(toks, token{tokEOF, "", len(input)})
	return toks, nil
}

func wordKind(word string) tokenKind {
	switch word {
	case "true", "True":
		return tokTrue
	case "false", "False":
		return tokFalse
	case "not":
		return tokNot
	case "and":
		return tokAnd
	case "or":
		return tokOr
	case "implies":
		return tokImplies
	}
	return tokAtom
}

type parser struct {
	input string
	toks  []token
	pos   int
}

func (p *parser) peek() token {
	return p.toks[p.pos]
}

func (p *parser) next() token {
	tok := p.toks[p.pos]
	if tok.kind != tokEOF {
		p.pos++
	}
	return tok
}

func (p *parser) errorf(pos int, format string, args ...interface{}) error {
	return &MalformedFormulaError{Input: p.input, Pos: pos, Msg: fmt.Sprintf(format, args...)}
}

// sentence := disjunction ( IMPLIES sentence )?
func (p *parser) sentence() (Sentence, error) {
	left, err := p.disjunction()
	if err != nil {
		return nil, err
	}
	if p.peek().kind == tokImplies {
		p.next()
		right, err := p.sentence()
		if err != nil {
			return nil, err
		}
		return Implies(left, right), nil
	}
	return left, nil
}

// disjunction := conjunction ( OR conjunction )*
func (p *parser) disjunction() (Sentence, error) {
	left, err := p.conjunction()
	if err != nil {
		return nil, err
	}
	for p.peek().kind == tokOr {
		p.next()
		right, err := p.conjunction()
		if err != nil {
			return nil, err
		}
		left = Or(left, right)
	}
	return left, nil
}

// conjunction := unary ( AND unary )*
func (p *parser) conjunction() (Sentence, error) {
	left, err := p.unary()
	if err != nil {
		return nil, err
	}
	for p.peek().kind == tokAnd {
		p.next()
		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		left = And(left, right)
	}
	return left, nil
}

// unary := NOT unary | TRUE | FALSE | ATOM | '(' sentence ')'
func (p *parser) unary() (Sentence, error) {
	tok := p.next()
	switch tok.kind {
	case tokNot:
		sub, err := p.unary()
		if err != nil {
			return nil, err
		}
		return Not(sub), nil
	case tokTrue:
		return Truth, nil
	case tokFalse:
		return Falsity, nil
	case tokAtom:
		return Atom(tok.text), nil
	case tokLParen:
		s, err := p.sentence()
		if err != nil {
			return nil, err
		}
		if closing := p.next(); closing.kind != tokRParen {
			return nil, p.errorf(closing.pos, "expected ')', got %q", closing.text)
		}
		return s, nil
	case tokEOF:
		return nil, p.errorf(tok.pos, "unexpected end of sentence")
	default:
		return nil, p.errorf(tok.pos, "unexpected %q", tok.text)
	}
}
