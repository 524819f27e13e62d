// Package charreader is the lexer's character-reader collaborator: it
// decodes an io.Reader byte stream into a sequence of runes tagged with
// their (line, column) position, with exactly one character of look-ahead.
//
// This is the external contract the lexer consumes (see the lexer package
// doc comment). It is deliberately the only place in this module that
// knows about bufio/utf8 decoding details.
package charreader

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/cwbudde/go-basic-lexer/pkg/token"
)

var errInvalidUTF8 = errors.New("invalid UTF-8 encoding")

// CharSpan is a single decoded character together with its position.
type CharSpan struct {
	Ch  rune
	Pos token.Position
}

// DecodeError reports an invalid UTF-8 byte sequence encountered while
// reading. It is a fatal error: the stream is not expected to be usable
// afterwards.
type DecodeError struct {
	Pos token.Position
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s: %s", e.Pos, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// bomBytes is the UTF-8 byte order mark. Reader strips a leading BOM so
// that scripts saved by Windows editors still start at line 1, column 1.
var bomBytes = [3]byte{0xEF, 0xBB, 0xBF}

// charResult is the tri-state outcome of a single decode step: a character,
// clean exhaustion, or a fatal error.
type charResult struct {
	cs  CharSpan
	ok  bool
	err error
}

// Reader decodes runes from an io.Reader, tracking line/column positions
// and buffering exactly one character for Peek.
type Reader struct {
	br     *bufio.Reader
	line   int
	column int
	offset int

	buffered *charResult
}

// New wraps r for character-at-a-time decoding.
func New(r io.Reader) *Reader {
	br := bufio.NewReader(r)
	if bom, err := br.Peek(3); err == nil && bom[0] == bomBytes[0] && bom[1] == bomBytes[1] && bom[2] == bomBytes[2] {
		_, _ = br.Discard(3)
	}
	return &Reader{br: br, line: 1, column: 1}
}

func (r *Reader) rawNext() charResult {
	ru, size, err := r.br.ReadRune()
	if err == io.EOF {
		return charResult{ok: false}
	}
	if err != nil {
		return charResult{ok: false, err: err}
	}
	pos := token.Position{Line: r.line, Column: r.column, Offset: r.offset}
	if ru == utf8.RuneError && size == 1 {
		return charResult{ok: false, err: &DecodeError{Pos: pos, Err: errInvalidUTF8}}
	}
	r.offset += size
	switch ru {
	case '\n':
		r.line++
		r.column = 1
	case '\t':
		// Advance to the next 8-column tab stop rather than treating a tab
		// as a single column; this matches the column numbers callers
		// expect to see reported for tab-indented source.
		r.column += 8 - ((r.column - 1) % 8)
	default:
		r.column++
	}
	return charResult{ok: true, cs: CharSpan{Ch: ru, Pos: pos}}
}

func (r *Reader) ensureBuffered() {
	if r.buffered == nil {
		res := r.rawNext()
		r.buffered = &res
	}
}

// Peek returns the next character without consuming it. ok is false when
// the stream is exhausted; err is non-nil only on a fatal I/O or decode
// failure, in which case ok is also false. Calling Peek repeatedly without
// an intervening Next returns the same result and consumes no input.
func (r *Reader) Peek() (cs CharSpan, ok bool, err error) {
	r.ensureBuffered()
	return r.buffered.cs, r.buffered.ok, r.buffered.err
}

// Next consumes and returns the next character, with the same tri-state
// result shape as Peek.
func (r *Reader) Next() (cs CharSpan, ok bool, err error) {
	r.ensureBuffered()
	res := *r.buffered
	r.buffered = nil
	return res.cs, res.ok, res.err
}

// NextPosition returns a live snapshot of the position the next character
// would occupy (or would have occupied, had input continued). The lexer
// uses this to stamp the zero-width EOF token.
func (r *Reader) NextPosition() token.Position {
	return token.Position{Line: r.line, Column: r.column, Offset: r.offset}
}
