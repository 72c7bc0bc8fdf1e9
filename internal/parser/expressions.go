package parser

import (
	"github.com/ibcompiler/ib/internal/diagnostics"
	"github.com/ibcompiler/ib/internal/span"
	"github.com/ibcompiler/ib/internal/syntax"
	"github.com/ibcompiler/ib/internal/token"
)

func canStartExpression(t token.TokenType) bool {
	switch t {
	case token.INT, token.STR, token.TRUE, token.FALSE, token.LPAREN, token.NEW, token.IDENT,
		token.PLUS, token.MINUS, token.BANG:
		return true
	default:
		return false
	}
}

// parseExpression implements precedence climbing: a unary operator at or
// above parentPrec is consumed eagerly; otherwise a primary is parsed,
// then binary operators strictly above parentPrec extend it to the
// right, left-associatively.
func (p *Parser) parseExpression(parentPrec int) syntax.Node {
	var left syntax.Node
	if uprec := p.cur().Type.UnaryPrecedence(); uprec > 0 && uprec >= parentPrec {
		opTok := p.advance()
		rhs := p.parseExpression(uprec)
		if rhs == nil {
			return nil
		}
		left = &syntax.UnaryExpression{Sp: span.Merge(span.FromToken(opTok), rhs.Span()), Operator: string(opTok.Type), Rhs: rhs}
	} else {
		left = p.parsePrimary()
		if left == nil {
			return nil
		}
	}

	for {
		bprec := p.cur().Type.BinaryPrecedence()
		if bprec <= parentPrec {
			break
		}
		opTok := p.advance()
		rhs := p.parseExpression(bprec)
		if rhs == nil {
			return nil
		}
		left = &syntax.BinaryExpression{Sp: span.Merge(left.Span(), rhs.Span()), Lhs: left, Operator: string(opTok.Type), Rhs: rhs}
	}
	return left
}

func (p *Parser) parsePrimary() syntax.Node {
	switch p.cur().Type {
	case token.INT:
		t := p.advance()
		v, _ := t.Literal.(int64)
		return &syntax.IntegerLiteralExpression{Sp: span.FromToken(t), Value: v}
	case token.TRUE:
		t := p.advance()
		return &syntax.BooleanLiteralExpression{Sp: span.FromToken(t), Value: true}
	case token.FALSE:
		t := p.advance()
		return &syntax.BooleanLiteralExpression{Sp: span.FromToken(t), Value: false}
	case token.STR:
		t := p.advance()
		return &syntax.StringLiteralExpression{Sp: span.FromToken(t), Value: t.Lexeme}
	case token.LPAREN:
		start := p.advance()
		inner := p.parseExpression(0)
		if inner == nil {
			return nil
		}
		if !p.at(token.RPAREN) {
			p.errorAt(diagnostics.UnclosedParenthesisExpression, p.cur())
			return nil
		}
		end := p.advance()
		return &syntax.ParenthesizedExpression{Sp: span.Merge(span.FromToken(start), span.FromToken(end)), Inner: inner}
	case token.NEW:
		return p.parseInstantiation()
	case token.IDENT:
		return p.parseReferenceBasedExpression()
	default:
		p.errorAt(diagnostics.ExpectedPrimaryExpression, p.cur())
		return nil
	}
}

// parseReferenceBasedExpression disambiguates on the token following an
// identifier: '(' is a call, '=' is an assignment, '.' is a member
// access (recursing for chains), anything else is a bare reference.
func (p *Parser) parseReferenceBasedExpression() syntax.Node {
	nameTok := p.advance()
	switch p.cur().Type {
	case token.LPAREN:
		return p.parseCallExpression(nameTok)
	case token.ASSIGN:
		p.advance()
		value := p.parseExpression(0)
		if value == nil {
			return nil
		}
		return &syntax.AssignmentExpression{Sp: span.Merge(span.FromToken(nameTok), value.Span()), Name: nameTok.Lexeme, Value: value}
	case token.DOT:
		p.advance()
		next := p.parseReferenceBasedExpression()
		if next == nil {
			return nil
		}
		base := &syntax.ReferenceExpression{Sp: span.FromToken(nameTok), Name: nameTok.Lexeme}
		return &syntax.ObjectMemberExpression{Sp: span.Merge(base.Sp, next.Span()), Base: base, Next: next}
	default:
		return &syntax.ReferenceExpression{Sp: span.FromToken(nameTok), Name: nameTok.Lexeme}
	}
}

func (p *Parser) parseCallExpression(nameTok token.Token) syntax.Node {
	p.advance() // '('
	args := p.parseArgList()
	end, ok := p.expect(token.RPAREN)
	if !ok {
		return nil
	}
	return &syntax.CallExpression{Sp: span.Merge(span.FromToken(nameTok), span.FromToken(end)), Name: nameTok.Lexeme, Args: args}
}

func (p *Parser) parseArgList() []syntax.Node {
	var args []syntax.Node
	if p.at(token.RPAREN) {
		return args
	}
	for {
		arg := p.parseExpression(0)
		if arg == nil {
			p.errorAt(diagnostics.ExpectedArgument, p.cur())
			return args
		}
		args = append(args, arg)
		if !p.at(token.COMMA) {
			break
		}
		p.advance()
		if p.at(token.RPAREN) {
			p.errorAt(diagnostics.ExpectedArgument, p.cur())
			break
		}
	}
	return args
}

func (p *Parser) parseInstantiation() syntax.Node {
	start := p.advance() // 'new'
	typeTok, ok := p.expect(token.IDENT)
	if !ok {
		return nil
	}
	typeParam := ""
	if p.at(token.LT) {
		p.advance()
		paramTok, ok := p.expect(token.IDENT)
		if !ok {
			return nil
		}
		typeParam = paramTok.Lexeme
		if _, ok := p.expect(token.GT); !ok {
			return nil
		}
	}
	if _, ok := p.expect(token.LPAREN); !ok {
		return nil
	}
	args := p.parseArgList()
	end, ok := p.expect(token.RPAREN)
	if !ok {
		return nil
	}
	return &syntax.InstantiationExpression{
		Sp:        span.Merge(span.FromToken(start), span.FromToken(end)),
		TypeName:  typeTok.Lexeme,
		TypeParam: typeParam,
		Args:      args,
	}
}
