package sexp

import (
	"bufio"
	"fmt"
	"io"
	"unicode"
)

type tokenType int

const (
	tokenEOF tokenType = iota
	tokenLeftParen
	tokenRightParen
	tokenSymbol
	tokenString
)

type token struct {
	typ tokenType
	val string
}

// lexer tokenizes S-expressions from an io.Reader.
type lexer struct {
	r *bufio.Reader
}

func newLexer(r io.Reader) *lexer {
	return &lexer{r: bufio.NewReader(r)}
}

// next reads the next token, skipping whitespace and #-comments.
func (l *lexer) next() (token, error) {
	for {
		ch, _, err := l.r.ReadRune()
		if err != nil {
			if err == io.EOF {
				return token{typ: tokenEOF}, nil
			}
			return token{}, err
		}

		if unicode.IsSpace(ch) {
			continue
		}

		// Comments run from # to end of line
		if ch == '#' {
			if err := l.skipLine(); err != nil {
				return token{}, err
			}
			continue
		}

		switch ch {
		case '(':
			return token{typ: tokenLeftParen, val: "("}, nil
		case ')':
			return token{typ: tokenRightParen, val: ")"}, nil
		case '"':
			return l.lexString()
		default:
			return l.lexSymbol(ch)
		}
	}
}

func (l *lexer) skipLine() error {
	for {
		ch, _, err := l.r.ReadRune()
		if err == io.EOF || ch == '\n' {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

// lexString reads a quoted string. The opening quote has been consumed.
// Both backslash escapes and KiCad's doubled-quote escape are accepted.
func (l *lexer) lexString() (token, error) {
	var out []rune
	for {
		ch, _, err := l.r.ReadRune()
		if err != nil {
			if err == io.EOF {
				return token{}, fmt.Errorf("unterminated string")
			}
			return token{}, err
		}

		switch ch {
		case '"':
			next, _, err := l.r.ReadRune()
			if err == nil && next == '"' {
				out = append(out, '"')
				continue
			}
			if err == nil {
				l.r.UnreadRune()
			}
			return token{typ: tokenString, val: string(out)}, nil

		case '\\':
			esc, _, err := l.r.ReadRune()
			if err != nil {
				return token{}, fmt.Errorf("unterminated escape in string")
			}
			switch esc {
			case 'n':
				out = append(out, '\n')
			case 't':
				out = append(out, '\t')
			case 'r':
				out = append(out, '\r')
			default:
				out = append(out, esc)
			}

		default:
			out = append(out, ch)
		}
	}
}

// lexSymbol reads an unquoted atom. first is the already-consumed rune.
func (l *lexer) lexSymbol(first rune) (token, error) {
	out := []rune{first}
	for {
		ch, _, err := l.r.ReadRune()
		if err != nil {
			if err == io.EOF {
				break
			}
			return token{}, err
		}
		if unicode.IsSpace(ch) || ch == '(' || ch == ')' || ch == '"' {
			l.r.UnreadRune()
			break
		}
		out = append(out, ch)
	}
	return token{typ: tokenSymbol, val: string(out)}, nil
}
