package token

import (
	"strconv"

	"github.com/cwbudde/go-basic-lexer/pkg/ident"
)

// Token is a tagged value: Type selects which of the payload fields below
// is meaningful. Constructors and accessors keep callers from having to
// know the field names; the fields themselves stay unexported so that a
// Token can only be built through a constructor that sets a consistent
// (Type, payload) pair.
type Token struct {
	Type TokenType

	boolVal   bool
	intVal    int32
	doubleVal float64

	// strVal carries the TEXT literal's content, the BAD token's message,
	// or the LABEL token's name, depending on Type.
	strVal string

	symbol ident.VarRef
}

// New builds a Token for a variant that carries no payload (punctuation,
// operators, keywords, EOF, EOL).
func New(t TokenType) Token {
	return Token{Type: t}
}

func NewBoolean(b bool) Token {
	return Token{Type: BOOLEAN, boolVal: b}
}

func NewInteger(i int32) Token {
	return Token{Type: INTEGER, intVal: i}
}

func NewDouble(d float64) Token {
	return Token{Type: DOUBLE, doubleVal: d}
}

func NewText(s string) Token {
	return Token{Type: TEXT, strVal: s}
}

func NewBad(message string) Token {
	return Token{Type: BAD, strVal: message}
}

func NewLabel(name string) Token {
	return Token{Type: LABEL, strVal: name}
}

func NewSymbol(ref ident.VarRef) Token {
	return Token{Type: SYMBOL, symbol: ref}
}

// BoolValue returns the payload of a BOOLEAN token.
func (t Token) BoolValue() bool { return t.boolVal }

// IntValue returns the payload of an INTEGER token.
func (t Token) IntValue() int32 { return t.intVal }

// DoubleValue returns the payload of a DOUBLE token.
func (t Token) DoubleValue() float64 { return t.doubleVal }

// TextValue returns the payload of a TEXT token.
func (t Token) TextValue() string { return t.strVal }

// Message returns the diagnostic message of a BAD token.
func (t Token) Message() string { return t.strVal }

// LabelName returns the payload of a LABEL token.
func (t Token) LabelName() string { return t.strVal }

// VarRef returns the payload of a SYMBOL token.
func (t Token) VarRef() ident.VarRef { return t.symbol }

// String renders the token's canonical textual form, used for diagnostics
// and REPL echo. Most BASIC dialects make source canonical on output
// rather than preserving exactly what was typed, and this follows suit.
func (t Token) String() string {
	switch t.Type {
	case EOF:
		return "<<EOF>>"
	case EOL:
		return "<<NEWLINE>>"
	case BAD:
		return "<<" + t.strVal + ">>"
	case BOOLEAN:
		if t.boolVal {
			return "TRUE"
		}
		return "FALSE"
	case INTEGER:
		return strconv.FormatInt(int64(t.intVal), 10)
	case DOUBLE:
		return strconv.FormatFloat(t.doubleVal, 'f', -1, 64)
	case TEXT:
		return t.strVal
	case SYMBOL:
		return t.symbol.String()
	case LABEL:
		return "@" + t.strVal
	case COMMA:
		return ","
	case SEMICOLON:
		return ";"
	case LPAREN:
		return "("
	case RPAREN:
		return ")"
	case PLUS:
		return "+"
	case MINUS:
		return "-"
	case MULTIPLY:
		return "*"
	case DIVIDE:
		return "/"
	case MODULO:
		return "MOD"
	case EXPONENT:
		return "^"
	case EQUAL:
		return "="
	case NOTEQUAL:
		return "<>"
	case LESS:
		return "<"
	case LESSEQUAL:
		return "<="
	case GREATER:
		return ">"
	case GREATEREQUAL:
		return ">="
	case AND:
		return "AND"
	case NOT:
		return "NOT"
	case OR:
		return "OR"
	case XOR:
		return "XOR"
	case DATA:
		return "DATA"
	case ELSE:
		return "ELSE"
	case ELSEIF:
		return "ELSEIF"
	case END:
		return "END"
	case FOR:
		return "FOR"
	case GOTO:
		return "GOTO"
	case IF:
		return "IF"
	case NEXT:
		return "NEXT"
	case STEP:
		return "STEP"
	case THEN:
		return "THEN"
	case TO:
		return "TO"
	case WEND:
		return "WEND"
	case WHILE:
		return "WHILE"
	case DIM:
		return "DIM"
	case AS:
		return "AS"
	case BOOLEANNAME:
		return "BOOLEAN"
	case DOUBLENAME:
		return "DOUBLE"
	case INTEGERNAME:
		return "INTEGER"
	case TEXTNAME:
		return "STRING"
	default:
		return "<<unknown token>>"
	}
}
