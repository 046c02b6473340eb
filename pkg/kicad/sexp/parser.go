package sexp

import (
	"fmt"
	"io"
)

type parser struct {
	lex *lexer
}

func newParser(r io.Reader) *parser {
	return &parser{lex: newLexer(r)}
}

func (p *parser) parseAll() ([]Node, error) {
	var nodes []Node
	for {
		tok, err := p.lex.next()
		if err != nil {
			return nil, err
		}
		if tok.typ == tokenEOF {
			return nodes, nil
		}
		node, err := p.parseNode(tok)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, node)
	}
}

func (p *parser) parseNode(tok token) (Node, error) {
	switch tok.typ {
	case tokenLeftParen:
		return p.parseList()
	case tokenSymbol:
		return Symbol(tok.val), nil
	case tokenString:
		return Str(tok.val), nil
	case tokenRightParen:
		return nil, fmt.Errorf("unexpected ')'")
	default:
		return nil, fmt.Errorf("unexpected end of input")
	}
}

// parseList parses the remainder of a list after its '(' was consumed.
func (p *parser) parseList() (Node, error) {
	list := &List{}
	for {
		tok, err := p.lex.next()
		if err != nil {
			return nil, err
		}
		switch tok.typ {
		case tokenRightParen:
			return list, nil
		case tokenEOF:
			return nil, fmt.Errorf("unexpected EOF in list")
		}
		node, err := p.parseNode(tok)
		if err != nil {
			return nil, err
		}
		list.items = append(list.items, node)
	}
}
