package parser

import (
	"github.com/ibcompiler/ib/internal/diagnostics"
	"github.com/ibcompiler/ib/internal/span"
	"github.com/ibcompiler/ib/internal/syntax"
	"github.com/ibcompiler/ib/internal/token"
)

// parseStatement dispatches on the current token's keyword, or falls
// back to an expression-statement.
func (p *Parser) parseStatement() syntax.Node {
	switch p.cur().Type {
	case token.OUTPUT:
		return p.parseOutputStatement()
	case token.IF:
		return p.parseIfStatement()
	case token.RETURN:
		return p.parseReturnStatement()
	case token.FUNCTION:
		return p.parseFunctionDeclaration()
	case token.LOOP:
		return p.parseLoop()
	default:
		return p.parseExpression(0)
	}
}

func (p *Parser) parseOutputStatement() syntax.Node {
	start := p.advance() // 'output'
	expr := p.parseExpression(0)
	if expr == nil {
		return nil
	}
	return &syntax.OutputStatement{Sp: span.Merge(span.FromToken(start), expr.Span()), Expr: expr}
}

func (p *Parser) parseReturnStatement() syntax.Node {
	start := p.advance() // 'return'
	var expr syntax.Node
	sp := span.FromToken(start)
	if canStartExpression(p.cur().Type) {
		expr = p.parseExpression(0)
		if expr != nil {
			sp = span.Merge(sp, expr.Span())
		}
	}
	return &syntax.ReturnStatement{Sp: sp, Expr: expr}
}

func (p *Parser) parseIfStatement() syntax.Node {
	start := p.advance() // 'if'
	cond := p.parseExpression(0)
	if cond == nil {
		return nil
	}
	if _, ok := p.expect(token.THEN); !ok {
		return nil
	}
	body := p.parseScopeUntil(token.END, token.ELSE)
	var elseBody *syntax.Scope
	if p.at(token.ELSE) {
		p.advance()
		elseBody = p.parseScopeUntil(token.END)
	}
	end, ok := p.expect(token.END)
	if !ok {
		return nil
	}
	return &syntax.IfStatement{Sp: span.Merge(span.FromToken(start), span.FromToken(end)), Cond: cond, Body: body, Else: elseBody}
}

func (p *Parser) parseFunctionDeclaration() syntax.Node {
	start := p.advance() // 'function'
	nameTok, ok := p.expect(token.IDENT)
	if !ok {
		return nil
	}
	if _, ok := p.expect(token.LPAREN); !ok {
		return nil
	}
	params := p.parseParamList()
	if _, ok := p.expect(token.RPAREN); !ok {
		return nil
	}
	returnType := ""
	generic := ""
	if p.at(token.ARROW) {
		p.advance()
		retTok, ok := p.expect(token.IDENT)
		if !ok {
			return nil
		}
		returnType = retTok.Lexeme
		if p.at(token.LT) {
			p.advance()
			genTok, ok := p.expect(token.IDENT)
			if !ok {
				return nil
			}
			generic = genTok.Lexeme
			if _, ok := p.expect(token.GT); !ok {
				return nil
			}
		}
	}
	body := p.parseScopeUntil(token.END)
	end, ok := p.expect(token.END)
	if !ok {
		return nil
	}
	return &syntax.FunctionDeclaration{
		Sp:         span.Merge(span.FromToken(start), span.FromToken(end)),
		Name:       nameTok.Lexeme,
		Params:     params,
		ReturnType: returnType,
		Generic:    generic,
		Body:       body,
	}
}

func (p *Parser) parseParamList() []*syntax.Parameter {
	var params []*syntax.Parameter
	if p.at(token.RPAREN) {
		return params
	}
	for {
		nameTok, ok := p.expect(token.IDENT)
		if !ok {
			p.errorAt(diagnostics.ExpectedParameter, p.cur())
			return params
		}
		if _, ok := p.expect(token.COLON); !ok {
			return params
		}
		typeTok, ok := p.expect(token.IDENT)
		if !ok {
			return params
		}
		generic := ""
		end := span.FromToken(typeTok)
		if p.at(token.LT) {
			p.advance()
			genTok, ok := p.expect(token.IDENT)
			if !ok {
				return params
			}
			generic = genTok.Lexeme
			gtTok, ok := p.expect(token.GT)
			if !ok {
				return params
			}
			end = span.FromToken(gtTok)
		}
		params = append(params, &syntax.Parameter{
			Sp:       span.Merge(span.FromToken(nameTok), end),
			Name:     nameTok.Lexeme,
			TypeName: typeTok.Lexeme,
			Generic:  generic,
		})
		if !p.at(token.COMMA) {
			break
		}
		p.advance()
		if p.at(token.RPAREN) {
			p.errorAt(diagnostics.ExpectedParameter, p.cur())
			break
		}
	}
	return params
}

// parseLoop subdispatches on the token following 'loop': 'while' starts
// a WhileLoop, an identifier starts a ForLoop, anything else is an error.
func (p *Parser) parseLoop() syntax.Node {
	start := p.advance() // 'loop'
	switch p.cur().Type {
	case token.WHILE:
		p.advance()
		cond := p.parseExpression(0)
		if cond == nil {
			return nil
		}
		body := p.parseScopeUntil(token.END)
		end, ok := p.expect(token.END)
		if !ok {
			return nil
		}
		return &syntax.WhileLoop{Sp: span.Merge(span.FromToken(start), span.FromToken(end)), Cond: cond, Body: body}
	case token.IDENT:
		nameTok := p.advance()
		if _, ok := p.expect(token.FROM); !ok {
			return nil
		}
		lower := p.parseExpression(0)
		if lower == nil {
			p.errorAt(diagnostics.ExpectedLoopLowerBound, p.cur())
			return nil
		}
		if _, ok := p.expect(token.TO); !ok {
			return nil
		}
		upper := p.parseExpression(0)
		if upper == nil {
			p.errorAt(diagnostics.ExpectedLoopUpperBound, p.cur())
			return nil
		}
		body := p.parseScopeUntil(token.END)
		end, ok := p.expect(token.END)
		if !ok {
			return nil
		}
		return &syntax.ForLoop{Sp: span.Merge(span.FromToken(start), span.FromToken(end)), Name: nameTok.Lexeme, Lower: lower, Upper: upper, Body: body}
	default:
		p.errorAt(diagnostics.ExpectedLoop, p.cur())
		return nil
	}
}
