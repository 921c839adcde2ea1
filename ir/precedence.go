package ir

// Operator precedence levels.  Higher levels bind tighter.
const (
	SlotPrecedence = iota + 1
	ConditionalPrecedence
	OrPrecedence
	AndPrecedence
	BitOrPrecedence
	BitXorPrecedence
	BitAndPrecedence
	ComparePrecedence
	AddPrecedence
	MulPrecedence
	PrefixPrecedence
	AtomPrecedence
)

var infixPrecedence = map[string]int{
	"||": OrPrecedence,
	"&&": AndPrecedence,
	"|":  BitOrPrecedence,
	"^":  BitXorPrecedence,
	"&":  BitAndPrecedence,
	"==": ComparePrecedence,
	"!=": ComparePrecedence,
	"<":  ComparePrecedence,
	"<=": ComparePrecedence,
	">":  ComparePrecedence,
	">=": ComparePrecedence,
	"+":  AddPrecedence,
	"-":  AddPrecedence,
	"*":  MulPrecedence,
	"/":  MulPrecedence,
	"%":  MulPrecedence,
}

var prefixOperators = map[string]bool{
	"!": true,
	"~": true,
	"-": true,
	"+": true,
}

// InfixPrecedence returns the precedence of the infix operator op.  Unknown
// operators get SlotPrecedence so that they are wrapped wherever they nest.
func InfixPrecedence(op string) int {
	if p, ok := infixPrecedence[op]; ok {
		return p
	}
	return SlotPrecedence
}

func IsInfixOperator(op string) bool {
	_, ok := infixPrecedence[op]
	return ok
}

func IsPrefixOperator(op string) bool {
	return prefixOperators[op]
}

// Precedence returns the binding strength of the outermost construct of y.
// A nil node is absent and so atomic.
func (y *Node) Precedence() int {
	if y == nil {
		return AtomPrecedence
	}
	switch y.Type {
	case AttrType:
		return SlotPrecedence
	case ConditionalType:
		return ConditionalPrecedence
	case InfixType:
		return InfixPrecedence(y.String)
	case PrefixType:
		return PrefixPrecedence
	default:
		return AtomPrecedence
	}
}
