package token

// TokenType identifies the variant of a Token. Go has no sum type with
// payloads, so Token pairs a TokenType tag with the handful of typed fields
// that are only meaningful for some variants (see token.go).
type TokenType int

const (
	// Terminals.
	EOF TokenType = iota
	EOL
	BAD

	// Literals.
	BOOLEAN
	INTEGER
	DOUBLE
	TEXT

	// Identifier.
	SYMBOL

	// Label.
	LABEL

	// Punctuation.
	COMMA
	SEMICOLON
	LPAREN
	RPAREN

	// Arithmetic.
	PLUS
	MINUS
	MULTIPLY
	DIVIDE
	MODULO
	EXPONENT

	// Relational.
	EQUAL
	NOTEQUAL
	LESS
	LESSEQUAL
	GREATER
	GREATEREQUAL

	// Logical.
	AND
	NOT
	OR
	XOR

	// Keywords.
	DATA
	ELSE
	ELSEIF
	END
	FOR
	GOTO
	IF
	NEXT
	STEP
	THEN
	TO
	WEND
	WHILE
	DIM
	AS

	// Type names.
	BOOLEANNAME
	DOUBLENAME
	INTEGERNAME
	TEXTNAME
)

var typeNames = map[TokenType]string{
	EOF:          "EOF",
	EOL:          "EOL",
	BAD:          "BAD",
	BOOLEAN:      "BOOLEAN",
	INTEGER:      "INTEGER",
	DOUBLE:       "DOUBLE",
	TEXT:         "TEXT",
	SYMBOL:       "SYMBOL",
	LABEL:        "LABEL",
	COMMA:        "COMMA",
	SEMICOLON:    "SEMICOLON",
	LPAREN:       "LPAREN",
	RPAREN:       "RPAREN",
	PLUS:         "PLUS",
	MINUS:        "MINUS",
	MULTIPLY:     "MULTIPLY",
	DIVIDE:       "DIVIDE",
	MODULO:       "MODULO",
	EXPONENT:     "EXPONENT",
	EQUAL:        "EQUAL",
	NOTEQUAL:     "NOTEQUAL",
	LESS:         "LESS",
	LESSEQUAL:    "LESSEQUAL",
	GREATER:      "GREATER",
	GREATEREQUAL: "GREATEREQUAL",
	AND:          "AND",
	NOT:          "NOT",
	OR:           "OR",
	XOR:          "XOR",
	DATA:         "DATA",
	ELSE:         "ELSE",
	ELSEIF:       "ELSEIF",
	END:          "END",
	FOR:          "FOR",
	GOTO:         "GOTO",
	IF:           "IF",
	NEXT:         "NEXT",
	STEP:         "STEP",
	THEN:         "THEN",
	TO:           "TO",
	WEND:         "WEND",
	WHILE:        "WHILE",
	DIM:          "DIM",
	AS:           "AS",
	BOOLEANNAME:  "BOOLEANNAME",
	DOUBLENAME:   "DOUBLENAME",
	INTEGERNAME:  "INTEGERNAME",
	TEXTNAME:     "TEXTNAME",
}

// String returns the debug name of the token type (e.g. "INTEGER"), as
// opposed to Token.String which renders the canonical source form.
func (tt TokenType) String() string {
	if name, ok := typeNames[tt]; ok {
		return name
	}
	return "UNKNOWN"
}
