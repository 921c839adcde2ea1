// Package ir provides the item tree written as Recon text.
//
// # Overview
//
// A Recon document is a tree of [Node] values.  The tree works as a
// recursive tagged union: the Type field selects which other fields hold
// the value.
//
// # Node Types
//
//   - AbsentType, ExtantType: no value, and a present value without content
//   - BoolType: Bool
//   - NumberType: Int64, Float64, or the literal Number when neither fits
//   - TextType: String
//   - DataType: Data, written as base64
//   - RefType: String holds a dotted path, written $a.b
//   - RecordType: Attrs, then items held in Values with keys in Fields
//   - AttrType: String is the name and Values holds at most one argument
//   - PrefixType, InfixType: String is the operator, Values the operands
//   - ConditionalType: Values holds the condition and the two branches
//
// # Records
//
// For RecordType nodes, Fields is either nil, when every item is a
// positional value, or has the same length as Values.  A nil entry in Fields
// marks a positional value; a non-nil entry is the key of a slot.  Attrs
// holds AttrType nodes written before the record body:
//
//	@point{x:1,y:2}
//
// # Precedence
//
// Every node reports the binding strength of its outermost construct with
// [Node.Precedence].  Atoms and records bind tightest; operators bind
// according to the table in precedence.go.  Writers wrap an operand in
// parentheses when its precedence is strictly lower than the precedence of
// the enclosing operator.  [Check] finds trees for which this rule does not
// preserve the tree shape.
//
// # Creating Nodes
//
//	sum := ir.Infix(ir.Ref("a"), "+", ir.FromInt(1))
//	rec := ir.FromKeyVals([]ir.KeyVal{
//	    {Key: ir.FromText("x"), Val: ir.FromInt(1)},
//	    {Val: ir.FromText("y")},
//	}).WithAttr("point", nil)
//
// # Thread Safety
//
// Nodes are not synchronized.  Writers only read nodes, so one tree may be
// written from several goroutines at once as long as nobody modifies it.
//
// # Related Packages
//
//   - github.com/signadot/go-recon/encode - Writes nodes as Recon text
//   - github.com/signadot/go-recon/parse - Builds nodes from JSON, YAML and expressions
package ir
