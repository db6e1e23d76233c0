package query

import (
	"errors"
	"fmt"
)

// Parse turns one filter expression into a predicate tree.
//
// From tightest to loosest binding:
//
//	"..."   quoted text, taken verbatim
//	~p      p occurs anywhere in the value, ignoring case
//	*       exactly one character
//	?       one optional character
//	!e      not e
//	a&b     a and b
//	a|b     a or b
//
// A pattern without ~ has to match the whole value.
func Parse(attr Attribute, input string) (Node, error) {
	tokens, err := lex(input)
	if err != nil {
		return nil, withAttribute(err, attr, input)
	}

	p := &parser{tokens: tokens}
	node, err := p.parseOr()
	if err == nil && p.peek().kind != tokEOF {
		err = p.errorf("unexpected %s", p.peek().describe())
	}
	if err != nil {
		return nil, withAttribute(err, attr, input)
	}
	return node, nil
}

func withAttribute(err error, attr Attribute, input string) error {
	var se *SyntaxError
	if errors.As(err, &se) {
		se.Attribute = attr
		se.Input = input
	}
	return err
}

type parser struct {
	tokens []token
	pos    int
}

func (p *parser) peek() token {
	return p.tokens[p.pos]
}

func (p *parser) next() token {
	t := p.tokens[p.pos]
	if t.kind != tokEOF {
		p.pos++
	}
	return t
}

func (p *parser) errorf(format string, args ...any) error {
	return &SyntaxError{Pos: p.peek().pos, Msg: fmt.Sprintf(format, args...)}
}

func (p *parser) parseOr() (Node, error) {
	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	for p.peek().kind == tokOr {
		p.next()
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		left = orNode{left: left, right: right}
	}
	return left, nil
}

func (p *parser) parseAnd() (Node, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for p.peek().kind == tokAnd {
		p.next()
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = andNode{left: left, right: right}
	}
	return left, nil
}

func (p *parser) parseUnary() (Node, error) {
	if p.peek().kind == tokNot {
		p.next()
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return notNode{operand: operand}, nil
	}
	return p.parseTerm()
}

func (p *parser) parseTerm() (Node, error) {
	contains := false
	if p.peek().kind == tokContain {
		p.next()
		contains = true
	}

	var pieces []piece
	for {
		t := p.peek()
		switch t.kind {
		case tokText:
			pieces = append(pieces, piece{kind: pieceText, text: t.text})
		case tokAnyChar:
			pieces = append(pieces, piece{kind: pieceAny})
		case tokOptChar:
			pieces = append(pieces, piece{kind: pieceOpt})
		default:
			if len(pieces) == 0 {
				return nil, p.errorf("expected a literal, got %s", t.describe())
			}
			return newLeaf(pieces, contains), nil
		}
		p.next()
	}
}
