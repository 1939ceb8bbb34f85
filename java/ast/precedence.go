package ast

// Precedence orders expression forms by binding strength, loosest first.
type Precedence int

const (
	PrecAssignment Precedence = iota
	PrecConditional
	PrecLogicalOr
	PrecLogicalAnd
	PrecBitOr
	PrecBitXor
	PrecBitAnd
	PrecEquality
	PrecRelational
	PrecShift
	PrecAdditive
	PrecMultiplicative
	PrecPower
	PrecUnary
	PrecPostfix
	PrecPrimary
)

var precedenceNames = [...]string{
	PrecAssignment:     "Assignment",
	PrecConditional:    "Conditional",
	PrecLogicalOr:      "LogicalOr",
	PrecLogicalAnd:     "LogicalAnd",
	PrecBitOr:          "BitOr",
	PrecBitXor:         "BitXor",
	PrecBitAnd:         "BitAnd",
	PrecEquality:       "Equality",
	PrecRelational:     "Relational",
	PrecShift:          "Shift",
	PrecAdditive:       "Additive",
	PrecMultiplicative: "Multiplicative",
	PrecPower:          "Power",
	PrecUnary:          "Unary",
	PrecPostfix:        "Postfix",
	PrecPrimary:        "Primary",
}

func (p Precedence) String() string {
	if p >= 0 && int(p) < len(precedenceNames) {
		return precedenceNames[p]
	}
	return "Unknown"
}

// Next returns the next tighter level, saturating at PrecPrimary.
func (p Precedence) Next() Precedence {
	if p >= PrecPrimary {
		return PrecPrimary
	}
	return p + 1
}

var binaryPrecedence = map[string]Precedence{
	"||":  PrecLogicalOr,
	"&&":  PrecLogicalAnd,
	"|":   PrecBitOr,
	"^":   PrecBitXor,
	"&":   PrecBitAnd,
	"==":  PrecEquality,
	"!=":  PrecEquality,
	"<":   PrecRelational,
	"<=":  PrecRelational,
	">":   PrecRelational,
	">=":  PrecRelational,
	"<<":  PrecShift,
	">>":  PrecShift,
	">>>": PrecShift,
	"+":   PrecAdditive,
	"-":   PrecAdditive,
	"*":   PrecMultiplicative,
	"/":   PrecMultiplicative,
	"%":   PrecMultiplicative,
	"**":  PrecPower,
}

// BinaryPrecedence returns the level of a binary operator and whether the
// operator is known.
func BinaryPrecedence(op string) (Precedence, bool) {
	p, ok := binaryPrecedence[op]
	return p, ok
}

// RightAssociative reports whether chains of op group to the right.
func RightAssociative(op string) bool {
	return op == "**"
}

var assignmentOps = map[string]bool{
	"=": true, "+=": true, "-=": true, "*=": true, "/=": true, "%=": true,
	"&=": true, "|=": true, "^=": true, "<<=": true, ">>=": true, ">>>=": true,
}

var unaryOps = map[string]bool{
	"+": true, "-": true, "!": true, "~": true, "++": true, "--": true,
}
