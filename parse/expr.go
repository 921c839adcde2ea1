package parse

import (
	"fmt"
	"strconv"

	"github.com/signadot/go-recon/ir"

	"github.com/expr-lang/expr/ast"
	"github.com/expr-lang/expr/parser"
)

// exprInfix maps expr binary operators to Recon infix operators.  expr's
// '^' and '**' are exponentiation and have no Recon counterpart.
var exprInfix = map[string]string{
	"||": "||", "or": "||",
	"&&": "&&", "and": "&&",
	"==": "==", "!=": "!=",
	"<": "<", "<=": "<=", ">": ">", ">=": ">=",
	"+": "+", "-": "-",
	"*": "*", "/": "/", "%": "%",
}

var exprPrefix = map[string]string{
	"!": "!", "not": "!",
	"-": "-", "+": "+",
}

func parseExpr(d []byte) (*ir.Node, error) {
	tree, err := parser.Parse(string(d))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	return fromAST(tree.Node)
}

func fromAST(node ast.Node) (*ir.Node, error) {
	switch n := node.(type) {
	case *ast.NilNode:
		return ir.Extant(), nil
	case *ast.BoolNode:
		return ir.FromBool(n.Value), nil
	case *ast.IntegerNode:
		return ir.FromInt(int64(n.Value)), nil
	case *ast.FloatNode:
		return ir.FromFloat(n.Value), nil
	case *ast.StringNode:
		return ir.FromText(n.Value), nil
	case *ast.IdentifierNode:
		return ir.Ref(n.Value), nil
	case *ast.MemberNode:
		p, err := memberPath(n)
		if err != nil {
			return nil, err
		}
		return ir.Ref(p), nil
	case *ast.ChainNode:
		return fromAST(n.Node)
	case *ast.UnaryNode:
		op, ok := exprPrefix[n.Operator]
		if !ok {
			return nil, fmt.Errorf("%w: operator %q", ErrUnsupported, n.Operator)
		}
		operand, err := fromAST(n.Node)
		if err != nil {
			return nil, err
		}
		return ir.Prefix(op, operand), nil
	case *ast.BinaryNode:
		op, ok := exprInfix[n.Operator]
		if !ok {
			return nil, fmt.Errorf("%w: operator %q", ErrUnsupported, n.Operator)
		}
		lhs, err := fromAST(n.Left)
		if err != nil {
			return nil, err
		}
		rhs, err := fromAST(n.Right)
		if err != nil {
			return nil, err
		}
		return ir.Infix(lhs, op, rhs), nil
	case *ast.ConditionalNode:
		var operands [3]*ir.Node
		for i, x := range []ast.Node{n.Cond, n.Exp1, n.Exp2} {
			y, err := fromAST(x)
			if err != nil {
				return nil, err
			}
			operands[i] = y
		}
		return ir.Conditional(operands[0], operands[1], operands[2]), nil
	case *ast.ArrayNode:
		res := ir.FromValues(nil)
		for _, elt := range n.Nodes {
			y, err := fromAST(elt)
			if err != nil {
				return nil, err
			}
			res.Append(nil, y)
		}
		return res, nil
	case *ast.MapNode:
		res := ir.FromValues(nil)
		for _, p := range n.Pairs {
			pair, ok := p.(*ast.PairNode)
			if !ok {
				return nil, fmt.Errorf("%w: map entry %T", ErrUnsupported, p)
			}
			key, err := fromAST(pair.Key)
			if err != nil {
				return nil, err
			}
			if key.Type == ir.RefType {
				// {a: 1} names its key with a bare identifier
				key = ir.FromText(key.String)
			}
			val, err := fromAST(pair.Value)
			if err != nil {
				return nil, err
			}
			res.Append(key, val)
		}
		return res, nil
	default:
		return nil, fmt.Errorf("%w: expression %T", ErrUnsupported, node)
	}
}

func memberPath(n *ast.MemberNode) (string, error) {
	var base string
	switch x := n.Node.(type) {
	case *ast.IdentifierNode:
		base = x.Value
	case *ast.MemberNode:
		p, err := memberPath(x)
		if err != nil {
			return "", err
		}
		base = p
	default:
		return "", fmt.Errorf("%w: member of %T", ErrUnsupported, n.Node)
	}
	switch x := n.Property.(type) {
	case *ast.StringNode:
		return base + "." + x.Value, nil
	case *ast.IntegerNode:
		return base + "[" + strconv.Itoa(x.Value) + "]", nil
	default:
		return "", fmt.Errorf("%w: member property %T", ErrUnsupported, n.Property)
	}
}
