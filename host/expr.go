// Copyright 2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package host

import (
	"errors"
	"strconv"
	"strings"
)

var errExprParse = errors.New("expression syntax error")

// An identifierResolver turns a name appearing in an expression into a
// value.
type identifierResolver interface {
	resolveIdentifier(s string) (int64, error)
}

// exprParser evaluates the small address expressions accepted by host
// commands. Operators are applied strictly left to right:
//
//	+ - & | ^     binary
//	- < >         unary (negate, low byte, high byte)
//	$ff %1010 12  hex, binary and decimal literals
//	( )           grouping
type exprParser struct {
	hexMode bool // bare numbers are hexadecimal
	s       string
	pos     int
	r       identifierResolver
}

func newExprParser() *exprParser {
	return &exprParser{}
}

// Parse evaluates the expression 's'.
func (p *exprParser) Parse(s string, r identifierResolver) (int64, error) {
	p.s, p.pos, p.r = s, 0, r

	v, err := p.expr()
	if err != nil {
		return 0, err
	}
	p.skipSpace()
	if p.pos != len(p.s) {
		return 0, errExprParse
	}
	return v, nil
}

func (p *exprParser) expr() (int64, error) {
	v, err := p.unary()
	if err != nil {
		return 0, err
	}

	for {
		p.skipSpace()
		if p.pos >= len(p.s) {
			return v, nil
		}

		op := p.s[p.pos]
		if !strings.ContainsRune("+-&|^", rune(op)) {
			return v, nil
		}
		p.pos++

		rhs, err := p.unary()
		if err != nil {
			return 0, err
		}

		switch op {
		case '+':
			v += rhs
		case '-':
			v -= rhs
		case '&':
			v &= rhs
		case '|':
			v |= rhs
		case '^':
			v ^= rhs
		}
	}
}

func (p *exprParser) unary() (int64, error) {
	p.skipSpace()
	if p.pos >= len(p.s) {
		return 0, errExprParse
	}

	switch p.s[p.pos] {
	case '-':
		p.pos++
		v, err := p.unary()
		return -v, err
	case '<':
		p.pos++
		v, err := p.unary()
		return v & 0xff, err
	case '>':
		p.pos++
		v, err := p.unary()
		return (v >> 8) & 0xff, err
	case '(':
		p.pos++
		v, err := p.expr()
		if err != nil {
			return 0, err
		}
		p.skipSpace()
		if p.pos >= len(p.s) || p.s[p.pos] != ')' {
			return 0, errExprParse
		}
		p.pos++
		return v, nil
	default:
		return p.term()
	}
}

func (p *exprParser) term() (int64, error) {
	start := p.pos
	for p.pos < len(p.s) && isTermChar(p.s[p.pos]) {
		p.pos++
	}
	tok := p.s[start:p.pos]

	switch {
	case tok == "":
		return 0, errExprParse
	case tok == ".":
		return p.resolve(tok)
	case tok[0] == '$':
		return parseNumber(tok[1:], 16)
	case tok[0] == '%':
		return parseNumber(tok[1:], 2)
	case strings.HasPrefix(tok, "0x"):
		return parseNumber(tok[2:], 16)
	case strings.HasPrefix(tok, "0b"):
		return parseNumber(tok[2:], 2)
	case p.hexMode:
		if v, err := parseNumber(tok, 16); err == nil {
			return v, nil
		}
		return p.resolve(tok)
	case tok[0] >= '0' && tok[0] <= '9':
		return parseNumber(tok, 10)
	default:
		return p.resolve(tok)
	}
}

func (p *exprParser) resolve(tok string) (int64, error) {
	if p.r == nil {
		return 0, errExprParse
	}
	return p.r.resolveIdentifier(tok)
}

func (p *exprParser) skipSpace() {
	for p.pos < len(p.s) && (p.s[p.pos] == ' ' || p.s[p.pos] == '\t') {
		p.pos++
	}
}

func isTermChar(c byte) bool {
	switch {
	case c >= '0' && c <= '9', c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
		return true
	case c == '$', c == '%', c == '_', c == '.':
		return true
	default:
		return false
	}
}

func parseNumber(s string, base int) (int64, error) {
	v, err := strconv.ParseInt(s, base, 64)
	if err != nil {
		return 0, errExprParse
	}
	return v, nil
}
