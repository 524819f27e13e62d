package ident

import "testing"

func TestVarTypeSigil(t *testing.T) {
	cases := []struct {
		vtype VarType
		want  rune
	}{
		{Auto, 0},
		{Boolean, '?'},
		{Double, '#'},
		{Integer, '%'},
		{Text, '$'},
	}
	for _, c := range cases {
		if got := c.vtype.Sigil(); got != c.want {
			t.Errorf("%v.Sigil() = %q, want %q", c.vtype, got, c.want)
		}
	}
}

func TestVarRefString(t *testing.T) {
	cases := []struct {
		ref  VarRef
		want string
	}{
		{New("x", Auto), "x"},
		{New("x", Integer), "x%"},
		{New("name", Text), "name$"},
		{New("pi", Double), "pi#"},
		{New("flag", Boolean), "flag?"},
	}
	for _, c := range cases {
		if got := c.ref.String(); got != c.want {
			t.Errorf("%+v.String() = %q, want %q", c.ref, got, c.want)
		}
	}
}

func TestVarTypeStringIsUppercaseName(t *testing.T) {
	if got := Integer.String(); got != "INTEGER" {
		t.Errorf("Integer.String() = %q", got)
	}
	if got := VarType(99).String(); got != "UNKNOWN" {
		t.Errorf("unknown VarType.String() = %q, want UNKNOWN", got)
	}
}
