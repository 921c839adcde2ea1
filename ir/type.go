package ir

import "fmt"

type Type int

const (
	AbsentType Type = iota
	ExtantType
	BoolType
	NumberType
	TextType
	DataType
	RefType
	RecordType
	AttrType
	PrefixType
	InfixType
	ConditionalType
)

var typeNames = map[Type]string{
	AbsentType:      "Absent",
	ExtantType:      "Extant",
	BoolType:        "Bool",
	NumberType:      "Number",
	TextType:        "Text",
	DataType:        "Data",
	RefType:         "Ref",
	RecordType:      "Record",
	AttrType:        "Attr",
	PrefixType:      "Prefix",
	InfixType:       "Infix",
	ConditionalType: "Conditional",
}

func (t Type) String() string {
	s, ok := typeNames[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	for tt, name := range typeNames {
		if name == string(d) {
			*t = tt
			return nil
		}
	}
	return fmt.Errorf("unrecognized type %q", d)
}

func Types() []Type {
	return []Type{
		AbsentType,
		ExtantType,
		BoolType,
		NumberType,
		TextType,
		DataType,
		RefType,
		RecordType,
		AttrType,
		PrefixType,
		InfixType,
		ConditionalType,
	}
}

func (t Type) IsLeaf() bool {
	switch t {
	case RecordType, AttrType, PrefixType, InfixType, ConditionalType:
		return false
	default:
		return true
	}
}

// IsOperator reports whether nodes of type t are operator expressions.
func (t Type) IsOperator() bool {
	switch t {
	case PrefixType, InfixType, ConditionalType:
		return true
	default:
		return false
	}
}
