package lexer_test

import (
	"testing"

	"github.com/go-test/deep"
	"github.com/ibcompiler/ib/internal/config"
	"github.com/ibcompiler/ib/internal/diagnostics"
	"github.com/ibcompiler/ib/internal/lexer"
	"github.com/ibcompiler/ib/internal/token"
)

func typesOf(toks []token.Token) []token.TokenType {
	out := make([]token.TokenType, len(toks))
	for i, t := range toks {
		out[i] = t.Type
	}
	return out
}

func TestTokenizeOperatorsAndKeywords(t *testing.T) {
	bag := &diagnostics.Bag{}
	toks := lexer.Tokenize(`if x -> then == end 5 "hi"`, bag)

	want := []token.TokenType{
		token.IF, token.IDENT, token.ARROW, token.THEN, token.EQ,
		token.END, token.INT, token.STR, token.EOF,
	}
	if diff := deep.Equal(want, typesOf(toks)); diff != nil {
		for _, d := range diff {
			t.Error(d)
		}
	}
	if !bag.Empty() {
		t.Fatalf("unexpected diagnostics: %v", bag.Errors())
	}
}

func TestTokenizeKeywordsAreCaseInsensitive(t *testing.T) {
	bag := &diagnostics.Bag{}
	toks := lexer.Tokenize("IF Then WHILE", bag)
	want := []token.TokenType{token.IF, token.THEN, token.WHILE, token.EOF}
	if diff := deep.Equal(want, typesOf(toks)); diff != nil {
		for _, d := range diff {
			t.Error(d)
		}
	}
}

func TestTokenizeIntegerOverflowReportsDiagnostic(t *testing.T) {
	bag := &diagnostics.Bag{}
	toks := lexer.Tokenize("99999999999999999999", bag)
	if len(toks) != 2 || toks[0].Type != token.INT || toks[1].Type != token.EOF {
		t.Fatalf("unexpected tokens: %v", toks)
	}
	if bag.Empty() {
		t.Fatal("expected a NumberParsing diagnostic")
	}
	if bag.Errors()[0].Code != diagnostics.NumberParsing {
		t.Fatalf("got code %s, want NumberParsing", bag.Errors()[0].Code)
	}
}

func TestTokenizeUnterminatedStringYieldsWhateverWasScanned(t *testing.T) {
	bag := &diagnostics.Bag{}
	toks := lexer.Tokenize(`"unterminated`, bag)
	if len(toks) != 2 || toks[0].Type != token.STR || toks[0].Lexeme != "unterminated" {
		t.Fatalf("unexpected tokens: %v", toks)
	}
}

func TestTokenizeOversizedSourceIsRejected(t *testing.T) {
	bag := &diagnostics.Bag{}
	huge := make([]byte, config.MaxSourceSize+1)
	for i := range huge {
		huge[i] = ' '
	}
	toks := lexer.Tokenize(string(huge), bag)
	if len(toks) != 1 || toks[0].Type != token.EOF {
		t.Fatalf("expected a single EOF token, got %v", toks)
	}
	if bag.Empty() || bag.Errors()[0].Code != diagnostics.SourceTooLarge {
		t.Fatalf("expected a SourceTooLarge diagnostic, got %v", bag.Errors())
	}
}

func TestTokenizeIllegalCharacter(t *testing.T) {
	bag := &diagnostics.Bag{}
	toks := lexer.Tokenize("@", bag)
	if len(toks) != 2 || toks[0].Type != token.ILLEGAL {
		t.Fatalf("unexpected tokens: %v", toks)
	}
}
