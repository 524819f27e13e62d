package lexer

import "github.com/cwbudde/go-basic-lexer/pkg/token"

// PeekableLexer wraps a Lexer and adds one token of look-ahead. Go lacks a
// built-in Peekable adapter for a fallible producer like Lexer.Read, so this
// mirrors the shape by hand: a single buffered TokenSpan, consumed by the
// next Read or ConsumePeeked.
type PeekableLexer struct {
	lexer  *Lexer
	peeked *token.TokenSpan
}

// Peek reports the upcoming token without consuming it. It is safe to call
// repeatedly before the token is actually consumed.
func (p *PeekableLexer) Peek() (token.TokenSpan, error) {
	if p.peeked == nil {
		ts, err := p.lexer.Read()
		if err != nil {
			return token.TokenSpan{}, err
		}
		p.peeked = &ts
	}
	return *p.peeked, nil
}

// ConsumePeeked returns the token previously reported by Peek and clears it.
// It panics if called without a prior successful Peek, since that would be a
// caller bug rather than a recoverable condition.
func (p *PeekableLexer) ConsumePeeked() token.TokenSpan {
	if p.peeked == nil {
		panic("lexer: ConsumePeeked called without a preceding Peek")
	}
	ts := *p.peeked
	p.peeked = nil
	return ts
}

// Read returns the next token, consuming a previously peeked one if present.
func (p *PeekableLexer) Read() (token.TokenSpan, error) {
	if p.peeked != nil {
		ts := *p.peeked
		p.peeked = nil
		return ts, nil
	}
	return p.lexer.Read()
}
