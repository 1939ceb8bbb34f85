package token

import (
	"testing"
)

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{EOF, "EOF"},
		{Error, "Error"},
		{Ident, "Identifier"},
		{IntLiteral, "IntLiteral"},
		{StringLiteral, "StringLiteral"},
		{True, "true"},
		{Null, "null"},
		{Final, "final"},
		{Int, "int"},
		{LParen, "("},
		{Arrow, "->"},
		{ColonColon, "::"},
		{UShrAssign, ">>>="},
		{QuestionDot, "?."},
		{Power, "**"},
		{Kind(9999), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.kind.String(); got != tt.want {
				t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.want)
			}
		})
	}
}

func TestLookupKeyword(t *testing.T) {
	tests := []struct {
		ident string
		want  Kind
	}{
		{"class", Class},
		{"final", Final},
		{"int", Int},
		{"return", Return},
		{"true", True},
		{"null", Null},
		{"instanceof", Instanceof},
		{"var", Var},
		{"println", Ident},
		{"myVariable", Ident},
		{"Class", Ident},
	}

	for _, tt := range tests {
		t.Run(tt.ident, func(t *testing.T) {
			if got := LookupKeyword(tt.ident); got != tt.want {
				t.Errorf("LookupKeyword(%q) = %v, want %v", tt.ident, got, tt.want)
			}
		})
	}
}

func TestPositionString(t *testing.T) {
	p := Position{File: "Main.jpp", Line: 3, Column: 7}
	if got := p.String(); got != "Main.jpp:3:7" {
		t.Errorf("String() = %q", got)
	}
	p.File = ""
	if got := p.String(); got != "3:7" {
		t.Errorf("String() = %q", got)
	}
}

func TestKindClassification(t *testing.T) {
	if !Double.IsPrimitiveType() || Var.IsPrimitiveType() || Ident.IsPrimitiveType() {
		t.Error("IsPrimitiveType misclassifies")
	}
	if !TextBlock.IsLiteral() || !Null.IsLiteral() || Ident.IsLiteral() {
		t.Error("IsLiteral misclassifies")
	}
}
