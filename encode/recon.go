package encode

import (
	"github.com/signadot/go-recon/codec"
	"github.com/signadot/go-recon/ir"
)

// Recon is the Dispatch for ir nodes.  The zero value is ready to use.
type Recon struct{}

var _ Dispatch[*ir.Node] = Recon{}

func (Recon) Precedence(y *ir.Node) int {
	return y.Precedence()
}

func (r Recon) SizeOf(y *ir.Node) int {
	if y == nil {
		return 0
	}
	switch y.Type {
	case ir.BoolType:
		return len(boolLiteral(y.Bool))
	case ir.NumberType:
		return len(NumberLiteral(y))
	case ir.TextType:
		return len(TextLiteral(y.String))
	case ir.DataType:
		return sizeOfData(y.Data)
	case ir.RefType:
		return len(refLiteral(y.String))
	case ir.RecordType:
		return r.sizeOfRecord(y)
	case ir.AttrType:
		return r.sizeOfAttr(y)
	case ir.PrefixType:
		return SizeOfPrefix[*ir.Node](r, y.String, y.Operand(0), ir.PrefixPrecedence)
	case ir.InfixType:
		return SizeOfInfix[*ir.Node](r, y.Operand(0), y.String, y.Operand(1), y.Precedence())
	case ir.ConditionalType:
		return SizeOfConditional[*ir.Node](r, y.Operand(0), y.Operand(1), y.Operand(2), ir.ConditionalPrecedence)
	default:
		return 0
	}
}

func (r Recon) WriterFor(y *ir.Node) codec.Writer {
	if y == nil {
		return codec.Done()
	}
	switch y.Type {
	case ir.BoolType:
		return codec.WriteString(boolLiteral(y.Bool))
	case ir.NumberType:
		return codec.WriteString(NumberLiteral(y))
	case ir.TextType:
		return codec.WriteString(TextLiteral(y.String))
	case ir.DataType:
		return codec.WriteString(dataLiteral(y.Data))
	case ir.RefType:
		return codec.WriteString(refLiteral(y.String))
	case ir.RecordType:
		return r.writeRecord(y)
	case ir.AttrType:
		return r.writeAttr(y)
	case ir.PrefixType:
		return WritePrefix[*ir.Node](r, y.String, y.Operand(0), ir.PrefixPrecedence)
	case ir.InfixType:
		// an infix node nests under its own precedence
		return WriteInfix[*ir.Node](r, y.Operand(0), y.String, y.Operand(1), y.Precedence())
	case ir.ConditionalType:
		return WriteConditional[*ir.Node](r, y.Operand(0), y.Operand(1), y.Operand(2), ir.ConditionalPrecedence)
	default:
		return codec.Done()
	}
}

// WriteBlock returns a writer for y as a top level block: the items of a
// record without attributes are written without braces.
func (r Recon) WriteBlock(y *ir.Node) codec.Writer {
	if isBlock(y) {
		return r.writeItems(y)
	}
	return r.WriterFor(y)
}

// SizeOfBlock returns the number of bytes WriteBlock writes for y.
func (r Recon) SizeOfBlock(y *ir.Node) int {
	if isBlock(y) {
		return r.sizeOfItems(y)
	}
	return r.SizeOf(y)
}
