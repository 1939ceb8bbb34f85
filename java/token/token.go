// Package token defines the lexical tokens of the Java dialect together with
// source positions.
package token

import "fmt"

type Position struct {
	File   string
	Offset int
	Line   int
	Column int
}

func (p Position) String() string {
	if p.File != "" {
		return fmt.Sprintf("%s:%d:%d", p.File, p.Line, p.Column)
	}
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

type Span struct {
	Start Position
	End   Position
}

func (s Span) String() string {
	return s.Start.String() + "-" + s.End.String()
}

type Kind int

const (
	EOF Kind = iota
	Error
	Whitespace
	Comment
	LineComment

	// Literals
	Ident
	IntLiteral
	FloatLiteral
	CharLiteral
	StringLiteral
	TextBlock
	True
	False
	Null

	// Keywords
	Abstract
	Assert
	Boolean
	Break
	Byte
	Case
	Catch
	Char
	Class
	Const
	Continue
	Default
	Do
	Double
	Else
	Enum
	Extends
	Final
	Finally
	Float
	For
	Goto
	If
	Implements
	Import
	Instanceof
	Int
	Interface
	Long
	Native
	New
	Package
	Private
	Protected
	Public
	Return
	Short
	Static
	Strictfp
	Super
	Switch
	Synchronized
	This
	Throw
	Throws
	Transient
	Try
	Void
	Volatile
	While

	// Contextual keywords
	Var
	Yield
	Record

	// Operators and punctuation
	LParen
	RParen
	LBrace
	RBrace
	LBracket
	RBracket
	Semicolon
	Comma
	Dot
	Ellipsis
	At
	ColonColon

	Assign
	EQ
	NE
	LT
	LE
	GT
	GE
	And
	Or
	Not
	BitAnd
	BitOr
	BitXor
	BitNot
	Shl
	Shr
	UShr
	Plus
	Minus
	Star
	Slash
	Percent
	Increment
	Decrement
	Question
	Colon
	Arrow
	PlusAssign
	MinusAssign
	StarAssign
	SlashAssign
	PercentAssign
	AndAssign
	OrAssign
	XorAssign
	ShlAssign
	ShrAssign
	UShrAssign

	// Extension operators, only produced when their feature is enabled
	QuestionDot
	Power
)

var kindNames = map[Kind]string{
	EOF:           "EOF",
	Error:         "Error",
	Whitespace:    "Whitespace",
	Comment:       "Comment",
	LineComment:   "LineComment",
	Ident:         "Identifier",
	IntLiteral:    "IntLiteral",
	FloatLiteral:  "FloatLiteral",
	CharLiteral:   "CharLiteral",
	StringLiteral: "StringLiteral",
	TextBlock:     "TextBlock",
	True:          "true",
	False:         "false",
	Null:          "null",
	Abstract:      "abstract",
	Assert:        "assert",
	Boolean:       "boolean",
	Break:         "break",
	Byte:          "byte",
	Case:          "case",
	Catch:         "catch",
	Char:          "char",
	Class:         "class",
	Const:         "const",
	Continue:      "continue",
	Default:       "default",
	Do:            "do",
	Double:        "double",
	Else:          "else",
	Enum:          "enum",
	Extends:       "extends",
	Final:         "final",
	Finally:       "finally",
	Float:         "float",
	For:           "for",
	Goto:          "goto",
	If:            "if",
	Implements:    "implements",
	Import:        "import",
	Instanceof:    "instanceof",
	Int:           "int",
	Interface:     "interface",
	Long:          "long",
	Native:        "native",
	New:           "new",
	Package:       "package",
	Private:       "private",
	Protected:     "protected",
	Public:        "public",
	Return:        "return",
	Short:         "short",
	Static:        "static",
	Strictfp:      "strictfp",
	Super:         "super",
	Switch:        "switch",
	Synchronized:  "synchronized",
	This:          "this",
	Throw:         "throw",
	Throws:        "throws",
	Transient:     "transient",
	Try:           "try",
	Void:          "void",
	Volatile:      "volatile",
	While:         "while",
	Var:           "var",
	Yield:         "yield",
	Record:        "record",
	LParen:        "(",
	RParen:        ")",
	LBrace:        "{",
	RBrace:        "}",
	LBracket:      "[",
	RBracket:      "]",
	Semicolon:     ";",
	Comma:         ",",
	Dot:           ".",
	Ellipsis:      "...",
	At:            "@",
	ColonColon:    "::",
	Assign:        "=",
	EQ:            "==",
	NE:            "!=",
	LT:            "<",
	LE:            "<=",
	GT:            ">",
	GE:            ">=",
	And:           "&&",
	Or:            "||",
	Not:           "!",
	BitAnd:        "&",
	BitOr:         "|",
	BitXor:        "^",
	BitNot:        "~",
	Shl:           "<<",
	Shr:           ">>",
	UShr:          ">>>",
	Plus:          "+",
	Minus:         "-",
	Star:          "*",
	Slash:         "/",
	Percent:       "%",
	Increment:     "++",
	Decrement:     "--",
	Question:      "?",
	Colon:         ":",
	Arrow:         "->",
	PlusAssign:    "+=",
	MinusAssign:   "-=",
	StarAssign:    "*=",
	SlashAssign:   "/=",
	PercentAssign: "%=",
	AndAssign:     "&=",
	OrAssign:      "|=",
	XorAssign:     "^=",
	ShlAssign:     "<<=",
	ShrAssign:     ">>=",
	UShrAssign:    ">>>=",
	QuestionDot:   "?.",
	Power:         "**",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// IsPrimitiveType reports whether k names a primitive type keyword.
func (k Kind) IsPrimitiveType() bool {
	switch k {
	case Boolean, Byte, Char, Short, Int, Long, Float, Double:
		return true
	}
	return false
}

// IsLiteral reports whether k is a literal token.
func (k Kind) IsLiteral() bool {
	switch k {
	case IntLiteral, FloatLiteral, CharLiteral, StringLiteral, TextBlock, True, False, Null:
		return true
	}
	return false
}

type Token struct {
	Kind    Kind
	Span    Span
	Literal string
}

func (t Token) String() string {
	if t.Kind == EOF {
		return "end of input"
	}
	return fmt.Sprintf("%q", t.Literal)
}

var keywords = map[string]Kind{
	"abstract":     Abstract,
	"assert":       Assert,
	"boolean":      Boolean,
	"break":        Break,
	"byte":         Byte,
	"case":         Case,
	"catch":        Catch,
	"char":         Char,
	"class":        Class,
	"const":        Const,
	"continue":     Continue,
	"default":      Default,
	"do":           Do,
	"double":       Double,
	"else":         Else,
	"enum":         Enum,
	"extends":      Extends,
	"final":        Final,
	"finally":      Finally,
	"float":        Float,
	"for":          For,
	"goto":         Goto,
	"if":           If,
	"implements":   Implements,
	"import":       Import,
	"instanceof":   Instanceof,
	"int":          Int,
	"interface":    Interface,
	"long":         Long,
	"native":       Native,
	"new":          New,
	"package":      Package,
	"private":      Private,
	"protected":    Protected,
	"public":       Public,
	"return":       Return,
	"short":        Short,
	"static":       Static,
	"strictfp":     Strictfp,
	"super":        Super,
	"switch":       Switch,
	"synchronized": Synchronized,
	"this":         This,
	"throw":        Throw,
	"throws":       Throws,
	"transient":    Transient,
	"try":          Try,
	"void":         Void,
	"volatile":     Volatile,
	"while":        While,
	"true":         True,
	"false":        False,
	"null":         Null,
	"var":          Var,
	"yield":        Yield,
	"record":       Record,
}

func LookupKeyword(ident string) Kind {
	if kind, ok := keywords[ident]; ok {
		return kind
	}
	return Ident
}
