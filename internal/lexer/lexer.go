// Package lexer implements the tokenizer for a BASIC dialect.
//
// # Unicode and column positions
//
// Column positions are rune counts, not byte offsets: a multi-byte UTF-8
// character (Korean 가, Greek Δ, an emoji) advances the column by exactly
// one, the same as an ASCII character. The one exception is a tab, which
// advances the column to the next 8-column tab stop. This keeps position
// accounting simple and reproducible, at the cost of not matching a
// terminal's display width for wide characters.
//
// # Error model
//
// Read distinguishes two kinds of failure. A malformed token (an unknown
// character, a numeric literal with too many dots, an unterminated string)
// is reported in-band as a token.BAD token; the stream remains valid and
// the next Read call resumes at or after the next separator character. A
// fatal I/O error from the underlying reader is returned as a plain error
// and is never converted to a BAD token — see charreader.DecodeError and
// the package's tests for the distinction.
package lexer

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/cwbudde/go-basic-lexer/internal/charreader"
	"github.com/cwbudde/go-basic-lexer/pkg/ident"
	"github.com/cwbudde/go-basic-lexer/pkg/token"
)

// Lexer is a pull-based, single-look-ahead tokenizer. It owns its character
// reader exclusively for its whole lifetime; a Read call must not be
// re-entered on the same Lexer.
type Lexer struct {
	r *charreader.Reader
}

// New creates a Lexer that reads from r. The caller retains ownership of
// whatever closes r, if anything; Lexer never closes it itself.
func New(r *charreader.Reader) *Lexer {
	return &Lexer{r: r}
}

// FromString is a convenience constructor for callers (tests, the CLI's
// `-e` flag) that already have the whole program in memory.
func FromString(src string) *Lexer {
	return New(charreader.New(strings.NewReader(src)))
}

// Peekable returns a one-token look-ahead adapter wrapping l.
func (l *Lexer) Peekable() *PeekableLexer {
	return &PeekableLexer{lexer: l}
}

// Read produces the next token. It returns a non-nil error only for a
// fatal I/O condition; EOF and malformed tokens are both reported as
// ordinary TokenSpans (token.EOF and token.BAD respectively).
func (l *Lexer) Read() (token.TokenSpan, error) {
	cs, ok, err := l.skipSpaces()
	if err != nil {
		return token.TokenSpan{}, err
	}
	if !ok {
		return token.NewSpan(token.New(token.EOF), l.r.NextPosition(), 0), nil
	}

	switch {
	case cs.Ch == '\n' || cs.Ch == ':':
		return token.NewSpan(token.New(token.EOL), cs.Pos, 1), nil
	case cs.Ch == '\'':
		return l.consumeRestOfLine()
	case cs.Ch == '"':
		return l.consumeText(cs)
	case cs.Ch == ';':
		return token.NewSpan(token.New(token.SEMICOLON), cs.Pos, 1), nil
	case cs.Ch == ',':
		return token.NewSpan(token.New(token.COMMA), cs.Pos, 1), nil
	case cs.Ch == '(':
		return token.NewSpan(token.New(token.LPAREN), cs.Pos, 1), nil
	case cs.Ch == ')':
		return token.NewSpan(token.New(token.RPAREN), cs.Pos, 1), nil
	case cs.Ch == '+':
		return token.NewSpan(token.New(token.PLUS), cs.Pos, 1), nil
	case cs.Ch == '-':
		return token.NewSpan(token.New(token.MINUS), cs.Pos, 1), nil
	case cs.Ch == '*':
		return token.NewSpan(token.New(token.MULTIPLY), cs.Pos, 1), nil
	case cs.Ch == '/':
		return token.NewSpan(token.New(token.DIVIDE), cs.Pos, 1), nil
	case cs.Ch == '^':
		return token.NewSpan(token.New(token.EXPONENT), cs.Pos, 1), nil
	case cs.Ch == '=':
		return token.NewSpan(token.New(token.EQUAL), cs.Pos, 1), nil
	case cs.Ch == '<' || cs.Ch == '>':
		return l.consumeRelational(cs)
	case cs.Ch == '@':
		return l.consumeLabel(cs)
	case isASCIIDigit(cs.Ch):
		return l.consumeNumber(cs)
	case isWord(cs.Ch):
		return l.consumeSymbol(cs)
	default:
		return l.handleBadRead(fmt.Sprintf("Unknown character: %c", cs.Ch), cs.Pos)
	}
}

// skipSpaces consumes a run of isSpace characters and returns the first
// non-space character found, or ok=false at EOF.
func (l *Lexer) skipSpaces() (charreader.CharSpan, bool, error) {
	for {
		cs, ok, err := l.r.Peek()
		if err != nil {
			_, _, _ = l.r.Next() // drain the faulted slot, see charreader.Reader
			return charreader.CharSpan{}, false, err
		}
		if !ok {
			return charreader.CharSpan{}, false, nil
		}
		if !isSpace(cs.Ch) {
			_, _, _ = l.r.Next()
			return cs, true, nil
		}
		_, _, _ = l.r.Next()
	}
}

// handleBadRead builds a BAD token for the caller's diagnostic message,
// anchored at firstPos. The caller has already consumed one offending
// character by the time it calls this; handleBadRead then resynchronizes
// by consuming further characters up to (but not including) the next
// separator or EOF, so the parser can safely resume there.
func (l *Lexer) handleBadRead(message string, firstPos token.Position) (token.TokenSpan, error) {
	length := 1
	for {
		cs, ok, err := l.r.Peek()
		if err != nil {
			_, _, _ = l.r.Next()
			return token.TokenSpan{}, err
		}
		if !ok || isSeparator(cs.Ch) {
			break
		}
		_, _, _ = l.r.Next()
		length++
	}
	return token.NewSpan(token.NewBad(message), firstPos, length), nil
}

// consumeRestOfLine discards characters through end of line (used for both
// `'` comments and the REM pseudo-keyword) and returns whichever terminator
// the line actually has.
func (l *Lexer) consumeRestOfLine() (token.TokenSpan, error) {
	for {
		cs, ok, err := l.r.Next()
		if err != nil {
			return token.TokenSpan{}, err
		}
		if !ok {
			return token.NewSpan(token.New(token.EOF), l.r.NextPosition(), 0), nil
		}
		if cs.Ch == '\n' {
			return token.NewSpan(token.New(token.EOL), cs.Pos, 1), nil
		}
	}
}

// consumeRelational resolves `<` and `>` into their one- or two-character
// forms. first has already been consumed.
func (l *Lexer) consumeRelational(first charreader.CharSpan) (token.TokenSpan, error) {
	next, ok, err := l.r.Peek()
	if err != nil {
		_, _, _ = l.r.Next()
		return token.TokenSpan{}, err
	}

	if first.Ch == '<' {
		if ok && next.Ch == '>' {
			_, _, _ = l.r.Next()
			return token.NewSpan(token.New(token.NOTEQUAL), first.Pos, 2), nil
		}
		if ok && next.Ch == '=' {
			_, _, _ = l.r.Next()
			return token.NewSpan(token.New(token.LESSEQUAL), first.Pos, 2), nil
		}
		return token.NewSpan(token.New(token.LESS), first.Pos, 1), nil
	}

	// first.Ch == '>'
	if ok && next.Ch == '=' {
		_, _, _ = l.r.Next()
		return token.NewSpan(token.New(token.GREATEREQUAL), first.Pos, 2), nil
	}
	return token.NewSpan(token.New(token.GREATER), first.Pos, 1), nil
}

// numErrReason reduces a strconv parse error down to a short, Go-agnostic
// reason suitable for embedding in a Bad token's message, rather than
// leaking strconv's "strconv.ParseInt: parsing ...:" wrapper text.
func numErrReason(err error) string {
	var numErr *strconv.NumError
	if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
		return "number too large to fit in target type"
	}
	return err.Error()
}

// consumeNumber reads an integer or floating-point literal starting at
// first, whose character is known to be an ASCII digit.
func (l *Lexer) consumeNumber(first charreader.CharSpan) (token.TokenSpan, error) {
	var s strings.Builder
	s.WriteRune(first.Ch)
	foundDot := false

scan:
	for {
		cs, ok, err := l.r.Peek()
		if err != nil {
			_, _, _ = l.r.Next()
			return token.TokenSpan{}, err
		}
		if !ok {
			break
		}
		switch {
		case cs.Ch == '.':
			if foundDot {
				_, _, _ = l.r.Next()
				return l.handleBadRead("Too many dots in numeric literal", first.Pos)
			}
			_, _, _ = l.r.Next()
			s.WriteRune('.')
			foundDot = true
		case isASCIIDigit(cs.Ch):
			_, _, _ = l.r.Next()
			s.WriteRune(cs.Ch)
		case isSeparator(cs.Ch):
			break scan
		default:
			_, _, _ = l.r.Next()
			return l.handleBadRead(fmt.Sprintf("Unexpected character in numeric literal: %c", cs.Ch), first.Pos)
		}
	}

	text := s.String()
	if foundDot {
		if strings.HasSuffix(text, ".") {
			// Mirrors the diagnostic for a lone leading dot, which is the
			// same underlying ambiguity: a '.' with no digit on one side.
			return l.handleBadRead("Unknown character: .", first.Pos)
		}
		d, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return l.handleBadRead(fmt.Sprintf("Bad double %s: %s", text, numErrReason(err)), first.Pos)
		}
		return token.NewSpan(token.NewDouble(d), first.Pos, len(text)), nil
	}

	i, err := strconv.ParseInt(text, 10, 32)
	if err != nil {
		return l.handleBadRead(fmt.Sprintf("Bad integer %s: %s", text, numErrReason(err)), first.Pos)
	}
	return token.NewSpan(token.NewInteger(int32(i)), first.Pos, len(text)), nil
}

// consumeSymbol reads an identifier, keyword, or type-annotated symbol
// starting at first.
func (l *Lexer) consumeSymbol(first charreader.CharSpan) (token.TokenSpan, error) {
	var s strings.Builder
	s.WriteRune(first.Ch)
	vtype := ident.Auto
	hasSigil := false

scan:
	for {
		cs, ok, err := l.r.Peek()
		if err != nil {
			_, _, _ = l.r.Next()
			return token.TokenSpan{}, err
		}
		if !ok {
			break
		}
		switch {
		case isWord(cs.Ch):
			_, _, _ = l.r.Next()
			s.WriteRune(cs.Ch)
		case isSeparator(cs.Ch):
			break scan
		case cs.Ch == '?':
			_, _, _ = l.r.Next()
			vtype, hasSigil = ident.Boolean, true
			break scan
		case cs.Ch == '#':
			_, _, _ = l.r.Next()
			vtype, hasSigil = ident.Double, true
			break scan
		case cs.Ch == '%':
			_, _, _ = l.r.Next()
			vtype, hasSigil = ident.Integer, true
			break scan
		case cs.Ch == '$':
			_, _, _ = l.r.Next()
			vtype, hasSigil = ident.Text, true
			break scan
		default:
			_, _, _ = l.r.Next()
			return l.handleBadRead(fmt.Sprintf("Unexpected character in symbol: %c", cs.Ch), first.Pos)
		}
	}

	name := s.String()
	length := utf8.RuneCountInString(name)
	if hasSigil {
		length++
	}

	if !hasSigil {
		upper := upperCaser.String(name)
		if upper == remKeyword {
			return l.consumeRestOfLine()
		}
		if tok, ok := keywords[upper]; ok {
			return token.NewSpan(tok, first.Pos, length), nil
		}
	}

	return token.NewSpan(token.NewSymbol(ident.New(name, vtype)), first.Pos, length), nil
}

// consumeText reads a double-quoted string literal. delim is the opening
// quote, already consumed.
func (l *Lexer) consumeText(delim charreader.CharSpan) (token.TokenSpan, error) {
	var s strings.Builder
	escaping := false

	for {
		cs, ok, err := l.r.Peek()
		if err != nil {
			_, _, _ = l.r.Next()
			return token.TokenSpan{}, err
		}
		if !ok {
			return l.handleBadRead(fmt.Sprintf("Incomplete string due to EOF: %s", s.String()), delim.Pos)
		}
		_, _, _ = l.r.Next()
		switch {
		case escaping:
			s.WriteRune(cs.Ch)
			escaping = false
		case cs.Ch == '\\':
			escaping = true
		case cs.Ch == delim.Ch:
			text := s.String()
			length := utf8.RuneCountInString(text) + 2
			return token.NewSpan(token.NewText(text), delim.Pos, length), nil
		default:
			s.WriteRune(cs.Ch)
		}
	}
}

// consumeLabel reads a `@name` label. first is the '@', already consumed.
func (l *Lexer) consumeLabel(first charreader.CharSpan) (token.TokenSpan, error) {
	var s strings.Builder

	for {
		cs, ok, err := l.r.Peek()
		if err != nil {
			_, _, _ = l.r.Next()
			return token.TokenSpan{}, err
		}
		if !ok {
			break
		}
		if isWord(cs.Ch) {
			_, _, _ = l.r.Next()
			s.WriteRune(cs.Ch)
			continue
		}
		if isSeparator(cs.Ch) {
			break
		}
		_, _, _ = l.r.Next()
		return l.handleBadRead(fmt.Sprintf("Unexpected character in label: %c", cs.Ch), first.Pos)
	}

	name := s.String()
	if name == "" {
		return token.NewSpan(token.NewBad("Empty label name"), first.Pos, 1), nil
	}
	length := utf8.RuneCountInString(name) + 1
	return token.NewSpan(token.NewLabel(name), first.Pos, length), nil
}
