package ir

import (
	"maps"
	"slices"
)

type Node struct {
	Type        Type
	Parent      *Node
	ParentIndex int

	Attrs  []*Node
	Fields []*Node
	Values []*Node

	String  string
	Bool    bool
	Number  string
	Float64 *float64
	Int64   *int64
	Data    []byte
}

// KeyVal is one record item.  A nil Key makes the item a positional value.
type KeyVal struct {
	Key *Node
	Val *Node
}

func Absent() *Node {
	return &Node{Type: AbsentType}
}

func Extant() *Node {
	return &Node{Type: ExtantType}
}

func FromBool(v bool) *Node {
	return &Node{
		Type: BoolType,
		Bool: v,
	}
}

func FromInt(v int64) *Node {
	return &Node{
		Type:  NumberType,
		Int64: &v,
	}
}

func FromFloat(f float64) *Node {
	return &Node{
		Type:    NumberType,
		Float64: &f,
	}
}

// FromNumber returns a number node holding a literal which fits neither an
// int64 nor a float64.  The literal is written verbatim.
func FromNumber(v string) *Node {
	return &Node{
		Type:   NumberType,
		Number: v,
	}
}

func FromText(v string) *Node {
	return &Node{
		Type:   TextType,
		String: v,
	}
}

func FromData(d []byte) *Node {
	return &Node{
		Type: DataType,
		Data: d,
	}
}

// Ref returns a reference to the dotted path p, written as $p.
func Ref(p string) *Node {
	return &Node{
		Type:   RefType,
		String: p,
	}
}

func FromValues(vs []*Node) *Node {
	res := &Node{Type: RecordType}
	for _, v := range vs {
		res.Append(nil, v)
	}
	return res
}

func FromKeyVals(kvs []KeyVal) *Node {
	res := &Node{Type: RecordType}
	for _, kv := range kvs {
		res.Append(kv.Key, kv.Val)
	}
	return res
}

func FromMap(m map[string]*Node) *Node {
	res := &Node{Type: RecordType}
	for _, key := range slices.Sorted(maps.Keys(m)) {
		res.Append(FromText(key), m[key])
	}
	return res
}

// Append adds an item to the record y.  A nil key appends a positional value.
func (y *Node) Append(key, val *Node) *Node {
	if val == nil {
		val = Extant()
	}
	i := len(y.Values)
	if key != nil {
		key.Parent = y
		key.ParentIndex = i
		if y.Fields == nil {
			y.Fields = make([]*Node, i, i+1)
		}
	}
	if y.Fields != nil {
		y.Fields = append(y.Fields, key)
	}
	val.Parent = y
	val.ParentIndex = i
	y.Values = append(y.Values, val)
	return y
}

// Field returns the key of item i of the record y or nil if the item is a
// positional value.
func (y *Node) Field(i int) *Node {
	if i < len(y.Fields) {
		return y.Fields[i]
	}
	return nil
}

// Get returns the value of the first slot of y whose key is the text k.
func (y *Node) Get(k string) *Node {
	for i, f := range y.Fields {
		if f != nil && f.Type == TextType && f.String == k {
			return y.Values[i]
		}
	}
	return nil
}

// NewAttr returns an attribute named name.  A nil arg leaves the
// attribute without an argument.
func NewAttr(name string, arg *Node) *Node {
	res := &Node{Type: AttrType, String: name}
	if arg != nil {
		arg.Parent = res
		res.Values = []*Node{arg}
	}
	return res
}

// WithAttr appends the attribute @name(arg) to the record y.
func (y *Node) WithAttr(name string, arg *Node) *Node {
	a := NewAttr(name, arg)
	a.Parent = y
	a.ParentIndex = len(y.Attrs)
	y.Attrs = append(y.Attrs, a)
	return y
}

// Arg returns the argument of the attribute y, or nil.
func (y *Node) Arg() *Node {
	if len(y.Values) == 0 {
		return nil
	}
	return y.Values[0]
}

func operator(t Type, op string, operands ...*Node) *Node {
	res := &Node{Type: t, String: op, Values: operands}
	for i, v := range operands {
		if v == nil {
			v = Absent()
			operands[i] = v
		}
		v.Parent = res
		v.ParentIndex = i
	}
	return res
}

func Infix(lhs *Node, op string, rhs *Node) *Node {
	return operator(InfixType, op, lhs, rhs)
}

func Prefix(op string, operand *Node) *Node {
	return operator(PrefixType, op, operand)
}

func Conditional(cond, then, els *Node) *Node {
	return operator(ConditionalType, "?:", cond, then, els)
}

// Operand returns operand i of an operator node, treating a missing operand
// as absent.
func (y *Node) Operand(i int) *Node {
	if i < len(y.Values) && y.Values[i] != nil {
		return y.Values[i]
	}
	return Absent()
}

func (y *Node) Clone() *Node {
	if y == nil {
		return nil
	}
	dst := &Node{
		Type:        y.Type,
		Parent:      y.Parent,
		ParentIndex: y.ParentIndex,
		String:      y.String,
		Bool:        y.Bool,
		Number:      y.Number,
		Data:        slices.Clone(y.Data),
	}
	if y.Float64 != nil {
		f := *y.Float64
		dst.Float64 = &f
	}
	if y.Int64 != nil {
		i := *y.Int64
		dst.Int64 = &i
	}
	dst.Attrs = cloneChildren(dst, y.Attrs)
	dst.Fields = cloneChildren(dst, y.Fields)
	dst.Values = cloneChildren(dst, y.Values)
	return dst
}

func cloneChildren(parent *Node, ns []*Node) []*Node {
	if ns == nil {
		return nil
	}
	res := make([]*Node, len(ns))
	for i, n := range ns {
		if n == nil {
			continue
		}
		c := n.Clone()
		c.Parent = parent
		res[i] = c
	}
	return res
}
