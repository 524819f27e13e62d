package token

import (
	"testing"

	"github.com/cwbudde/go-basic-lexer/pkg/ident"
)

func TestTokenStringLiterals(t *testing.T) {
	cases := []struct {
		tok  Token
		want string
	}{
		{New(EOF), "<<EOF>>"},
		{New(EOL), "<<NEWLINE>>"},
		{NewBad("Unknown character: ~"), "<<Unknown character: ~>>"},
		{NewBoolean(true), "TRUE"},
		{NewBoolean(false), "FALSE"},
		{NewInteger(42), "42"},
		{NewInteger(-7), "-7"},
		{NewDouble(3.5), "3.5"},
		{NewDouble(2), "2"},
		{NewText("hi there"), "hi there"},
		{NewLabel("loop"), "@loop"},
		{NewSymbol(ident.New("x", ident.Integer)), "x%"},
		{New(MODULO), "MOD"},
		{New(NOTEQUAL), "<>"},
		{New(LESSEQUAL), "<="},
		{New(BOOLEANNAME), "BOOLEAN"},
		{New(TEXTNAME), "STRING"},
	}
	for _, c := range cases {
		if got := c.tok.String(); got != c.want {
			t.Errorf("%+v.String() = %q, want %q", c.tok, got, c.want)
		}
	}
}

func TestTokenTypeStringIsDebugName(t *testing.T) {
	if got := INTEGER.String(); got != "INTEGER" {
		t.Errorf("INTEGER.String() = %q", got)
	}
	if got := TokenType(-1).String(); got != "UNKNOWN" {
		t.Errorf("invalid TokenType.String() = %q, want UNKNOWN", got)
	}
}

func TestTokenSpanDelegatesString(t *testing.T) {
	ts := NewSpan(NewInteger(5), Position{Line: 1, Column: 1}, 1)
	if got := ts.String(); got != "5" {
		t.Errorf("TokenSpan.String() = %q, want %q", got, "5")
	}
}

func TestPositionString(t *testing.T) {
	p := Position{Line: 3, Column: 7}
	if got := p.String(); got != "3:7" {
		t.Errorf("Position.String() = %q, want %q", got, "3:7")
	}
}
