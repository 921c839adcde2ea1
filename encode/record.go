package encode

import (
	"github.com/signadot/go-recon/codec"
	"github.com/signadot/go-recon/ir"
)

// Records are written as their attributes followed by a braced body, as
// in @point{x:1,y:2}.  A record with attributes and no items has no body;
// a record with neither is {}.

func (r Recon) writeRecord(y *ir.Node) codec.Writer {
	nAttrs := len(y.Attrs)
	return codec.Sequence(nAttrs+1, func(i int) codec.Writer {
		if i < nAttrs {
			return r.writeAttr(y.Attrs[i])
		}
		return r.writeBody(y)
	})
}

func (r Recon) sizeOfRecord(y *ir.Node) int {
	size := 0
	for _, a := range y.Attrs {
		size += r.sizeOfAttr(a)
	}
	return size + r.sizeOfBody(y)
}

func (r Recon) writeBody(y *ir.Node) codec.Writer {
	if len(y.Values) == 0 {
		if len(y.Attrs) != 0 {
			return codec.Done()
		}
		return codec.WriteString("{}")
	}
	return codec.Concat(codec.WriteString("{"), r.writeItems(y), codec.WriteString("}"))
}

func (r Recon) sizeOfBody(y *ir.Node) int {
	if len(y.Values) == 0 {
		if len(y.Attrs) != 0 {
			return 0
		}
		return 2
	}
	return 1 + r.sizeOfItems(y) + 1
}

// writeItems writes the items of y separated by commas.
func (r Recon) writeItems(y *ir.Node) codec.Writer {
	n := len(y.Values)
	return codec.Sequence(2*n-1, func(i int) codec.Writer {
		if i%2 == 1 {
			return codec.WriteString(",")
		}
		return r.writeItem(y, i/2)
	})
}

func (r Recon) sizeOfItems(y *ir.Node) int {
	n := len(y.Values)
	if n == 0 {
		return 0
	}
	size := n - 1
	for i := range y.Values {
		size += r.sizeOfItem(y, i)
	}
	return size
}

func (r Recon) writeItem(y *ir.Node, i int) codec.Writer {
	key := y.Field(i)
	if key == nil {
		return r.WriterFor(y.Values[i])
	}
	return codec.Concat(r.WriterFor(key), codec.WriteString(":"), r.WriterFor(y.Values[i]))
}

func (r Recon) sizeOfItem(y *ir.Node, i int) int {
	key := y.Field(i)
	if key == nil {
		return r.SizeOf(y.Values[i])
	}
	return r.SizeOf(key) + 1 + r.SizeOf(y.Values[i])
}

// isBlock reports whether y may be written as a comma separated list of
// its items: it is a record without attributes, and its items would not
// read back as a single value.
func isBlock(y *ir.Node) bool {
	if y == nil || y.Type != ir.RecordType || len(y.Attrs) != 0 {
		return false
	}
	return len(y.Values) > 1 || (len(y.Values) == 1 && y.Field(0) != nil)
}

// Attributes are written @name, or @name(arg) when the argument is not
// absent or extant.  A block argument is written without braces.

func (r Recon) writeAttr(a *ir.Node) codec.Writer {
	name := codec.WriteString("@" + TextLiteral(a.String))
	arg := a.Arg()
	if !hasArg(arg) {
		return name
	}
	return codec.Concat(name, codec.WriteString("("), r.WriteBlock(arg), codec.WriteString(")"))
}

func (r Recon) sizeOfAttr(a *ir.Node) int {
	size := 1 + len(TextLiteral(a.String))
	arg := a.Arg()
	if !hasArg(arg) {
		return size
	}
	return size + 1 + r.SizeOfBlock(arg) + 1
}

func hasArg(arg *ir.Node) bool {
	return arg != nil && arg.Type != ir.AbsentType && arg.Type != ir.ExtantType
}
