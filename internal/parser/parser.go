// Package parser implements a Pratt-style precedence-climbing parser
// that turns a token stream into a syntax tree.
package parser

import (
	"github.com/ibcompiler/ib/internal/diagnostics"
	"github.com/ibcompiler/ib/internal/span"
	"github.com/ibcompiler/ib/internal/syntax"
	"github.com/ibcompiler/ib/internal/token"
)

// Parser walks a flat token slice, never looking behind position.
type Parser struct {
	tokens []token.Token
	pos    int
	bag    *diagnostics.Bag
}

// New creates a Parser over tokens, appending diagnostics to bag.
func New(tokens []token.Token, bag *diagnostics.Bag) *Parser {
	return &Parser{tokens: tokens, bag: bag}
}

// Parse parses the whole token stream as a top-level module scope. It
// always returns a non-nil Scope: parsing stops at the first statement
// that fails to parse (which records a diagnostic), and the statements
// recognised before it are still returned for the binder. Statements
// after the failing one are not parsed.
func Parse(tokens []token.Token, bag *diagnostics.Bag) *syntax.Scope {
	p := New(tokens, bag)
	start := p.cur()
	stmts := p.parseStatements(token.EOF)
	end := p.cur()
	return &syntax.Scope{Sp: span.Merge(span.FromToken(start), span.FromToken(end)), Statements: stmts}
}

func (p *Parser) cur() token.Token {
	if p.pos >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[p.pos]
}

func (p *Parser) peek(n int) token.Token {
	idx := p.pos + n
	if idx >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[idx]
}

func (p *Parser) advance() token.Token {
	t := p.cur()
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}
	return t
}

func (p *Parser) at(typ token.TokenType) bool { return p.cur().Type == typ }

// expect consumes the current token if it matches typ, else records an
// ExpectedToken diagnostic and returns the offending token unconsumed.
func (p *Parser) expect(typ token.TokenType) (token.Token, bool) {
	if p.at(typ) {
		return p.advance(), true
	}
	p.errorAt(diagnostics.ExpectedToken, p.cur(), string(typ))
	return p.cur(), false
}

func (p *Parser) errorAt(code diagnostics.Code, t token.Token, args ...interface{}) {
	p.bag.Add(diagnostics.New(diagnostics.PhaseParser, code, span.FromToken(t), args...))
}

// parseStatements accumulates statements until terminator or EOF is
// peeked, or a statement fails to parse.
func (p *Parser) parseStatements(terminators ...token.TokenType) []syntax.Node {
	var stmts []syntax.Node
	for {
		if p.at(token.EOF) {
			return stmts
		}
		stop := false
		for _, t := range terminators {
			if p.at(t) {
				stop = true
				break
			}
		}
		if stop {
			return stmts
		}
		stmt := p.parseStatement()
		if stmt == nil {
			return stmts
		}
		stmts = append(stmts, stmt)
	}
}

// parseScopeUntil parses a nested scope's statements, bounded by one of
// terminators (not consumed).
func (p *Parser) parseScopeUntil(terminators ...token.TokenType) *syntax.Scope {
	start := p.cur()
	stmts := p.parseStatements(terminators...)
	end := p.cur()
	return &syntax.Scope{Sp: span.Merge(span.FromToken(start), span.FromToken(end)), Statements: stmts}
}
