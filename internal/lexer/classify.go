package lexer

import "unicode"

// isSpace reports whether ch is a space character. Newline is deliberately
// excluded: it is a token (EOL), not whitespace to be skipped.
func isSpace(ch rune) bool {
	return ch == ' ' || ch == '\t' || ch == '\r'
}

// isWord reports whether ch can be part of an identifier or label. Unicode
// letters and digits are admitted, so non-ASCII identifiers are legal.
func isWord(ch rune) bool {
	return ch == '_' || unicode.IsLetter(ch) || unicode.IsDigit(ch)
}

// isSeparator reports whether ch ends whatever token preceded it.
func isSeparator(ch rune) bool {
	switch ch {
	case '\n', ':', '(', ')', '\'', '=', '<', '>', ';', ',', '+', '-', '*', '/', '^':
		return true
	default:
		return isSpace(ch)
	}
}

func isASCIIDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}
