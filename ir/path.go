package ir

import (
	"strconv"
	"strings"
)

// Path returns a path from the root to y, e.g. "$.a[1].lhs".
func (y *Node) Path() string {
	p := y.Parent
	if p == nil {
		return "$"
	}
	prefix := p.Path()
	switch p.Type {
	case RecordType:
		if y.Type == AttrType && y.ParentIndex < len(p.Attrs) && p.Attrs[y.ParentIndex] == y {
			return prefix + "@" + y.String
		}
		switch f := p.Field(y.ParentIndex); {
		case f == y:
			return prefix + "{" + strconv.Itoa(y.ParentIndex) + "}"
		case f != nil:
			return prefix + "." + pathField(f)
		}
		return prefix + "[" + strconv.Itoa(y.ParentIndex) + "]"
	case AttrType:
		return prefix + "()"
	case InfixType:
		return prefix + []string{".lhs", ".rhs"}[min(y.ParentIndex, 1)]
	case PrefixType:
		return prefix + ".operand"
	case ConditionalType:
		return prefix + []string{".cond", ".then", ".else"}[min(y.ParentIndex, 2)]
	default:
		return prefix
	}
}

func pathField(f *Node) string {
	if f.Type == TextType && f.String != "" && strings.IndexAny(f.String, "'.*$[]{}()@") == -1 {
		return f.String
	}
	if f.Type == NumberType && f.Int64 != nil {
		return strconv.FormatInt(*f.Int64, 10)
	}
	return "'" + strings.ReplaceAll(f.String, "'", "\\'") + "'"
}
