// Package ident holds the small, AST-adjacent data types that the lexer
// constructs but does not otherwise interpret: the type annotation carried
// by a BASIC variable reference, and the reference itself.
package ident

// VarType is the type annotation carried by a variable reference.
//
// Auto means no sigil was present on the identifier and the type is left
// for the parser/evaluator to infer.
type VarType int

const (
	Auto VarType = iota
	Boolean
	Double
	Integer
	Text
)

// String returns the canonical, uppercase name of the type.
func (t VarType) String() string {
	switch t {
	case Auto:
		return "AUTO"
	case Boolean:
		return "BOOLEAN"
	case Double:
		return "DOUBLE"
	case Integer:
		return "INTEGER"
	case Text:
		return "TEXT"
	default:
		return "UNKNOWN"
	}
}

// Sigil returns the trailing type-annotation character for t, or 0 if t is
// Auto (no sigil).
func (t VarType) Sigil() rune {
	switch t {
	case Boolean:
		return '?'
	case Double:
		return '#'
	case Integer:
		return '%'
	case Text:
		return '$'
	default:
		return 0
	}
}

// VarRef names a variable together with its (possibly auto-inferred) type.
// This is the only payload the lexer attaches to a Symbol token; the AST
// and evaluator own everything else about what a variable means.
type VarRef struct {
	Name string
	Type VarType
}

// New builds a VarRef, preserving the original case of name.
func New(name string, vtype VarType) VarRef {
	return VarRef{Name: name, Type: vtype}
}

// String renders the reference the way it would have appeared in source:
// the bare name, or the name followed by its sigil.
func (v VarRef) String() string {
	if sigil := v.Type.Sigil(); sigil != 0 {
		return v.Name + string(sigil)
	}
	return v.Name
}
