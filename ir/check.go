package ir

import (
	"errors"
	"fmt"
)

// Check reports malformed nodes and operator trees under y which would not
// read back as the same tree.
//
// Writers parenthesize an operand only when its precedence is strictly lower
// than the enclosing precedence, so an infix node whose right operand has the
// same precedence, as in a - (b - c), is written without parentheses and reads
// back left-nested.  Check reports each such node with ErrAmbiguous.
func Check(y *Node) error {
	var errs []error
	check(y, &errs)
	return errors.Join(errs...)
}

func check(y *Node, errs *[]error) {
	if y == nil {
		return
	}
	bad := func(format string, args ...any) {
		*errs = append(*errs, fmt.Errorf("%w: %s at %s", ErrMalformed, fmt.Sprintf(format, args...), y.Path()))
	}
	switch y.Type {
	case RecordType:
		if y.Fields != nil && len(y.Fields) != len(y.Values) {
			bad("%d fields for %d values", len(y.Fields), len(y.Values))
		}
		for _, a := range y.Attrs {
			if a == nil || a.Type != AttrType {
				bad("attribute list holds a non attribute")
				continue
			}
			check(a, errs)
		}
		for i, v := range y.Values {
			check(y.Field(i), errs)
			check(v, errs)
		}
		return
	case AttrType:
		if len(y.Values) > 1 {
			bad("attribute with %d arguments", len(y.Values))
		}
	case InfixType:
		if len(y.Values) != 2 {
			bad("infix %q with %d operands", y.String, len(y.Values))
			break
		}
		if !IsInfixOperator(y.String) {
			bad("unknown infix operator %q", y.String)
		}
		if rhs := y.Values[1]; rhs.Precedence() == y.Precedence() {
			*errs = append(*errs, fmt.Errorf("%w: right operand of %q binds equally at %s", ErrAmbiguous, y.String, y.Path()))
		}
	case PrefixType:
		if len(y.Values) != 1 {
			bad("prefix %q with %d operands", y.String, len(y.Values))
		} else if !IsPrefixOperator(y.String) {
			bad("unknown prefix operator %q", y.String)
		}
	case ConditionalType:
		if len(y.Values) != 3 {
			bad("conditional with %d operands", len(y.Values))
		}
	case AbsentType, ExtantType, BoolType, NumberType, TextType, DataType, RefType:
	default:
		bad("unknown type %d", y.Type)
	}
	if len(y.Attrs) != 0 && y.Type != RecordType {
		bad("attributes on %s", y.Type)
	}
	for _, v := range y.Values {
		check(v, errs)
	}
}
