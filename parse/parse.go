package parse

import (
	"bytes"
	"fmt"
	"maps"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/signadot/go-recon/debug"
	"github.com/signadot/go-recon/format"
	"github.com/signadot/go-recon/ir"

	"github.com/goccy/go-yaml"
)

func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	pOpts := &parseOpts{format: format.JSONFormat}
	for _, f := range opts {
		f(pOpts)
	}
	if pOpts.patch != nil {
		patched, err := Patch(d, pOpts.format, pOpts.patch)
		if err != nil {
			return nil, err
		}
		d = patched
		pOpts.format = format.JSONFormat
	}
	var (
		res *ir.Node
		err error
	)
	switch pOpts.format {
	case format.JSONFormat, format.YAMLFormat:
		res, err = parseDocument(d)
	case format.ExprFormat:
		res, err = parseExpr(d)
	default:
		return nil, fmt.Errorf("%w: format %s", ErrUnsupported, pOpts.format)
	}
	if err != nil {
		return nil, err
	}
	if debug.Parse() {
		debug.Logf("parsed %d bytes of %s into %s", len(d), pOpts.format, res.Type)
	}
	return res, nil
}

func parseDocument(d []byte) (*ir.Node, error) {
	if len(bytes.TrimSpace(d)) == 0 {
		return ir.Absent(), nil
	}
	var v any
	if err := yaml.UnmarshalWithOptions(d, &v, yaml.UseOrderedMap()); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	return FromAny(v)
}

// FromAny converts a decoded JSON or YAML value to a node.
//
// Objects become records of slots, arrays become records of values and null
// becomes extant.  Object keys starting with '@' that precede all other keys
// become attributes of the record; a null attribute value leaves the
// attribute without an argument.
func FromAny(v any) (*ir.Node, error) {
	switch x := v.(type) {
	case nil:
		return ir.Extant(), nil
	case bool:
		return ir.FromBool(x), nil
	case int:
		return ir.FromInt(int64(x)), nil
	case int8:
		return ir.FromInt(int64(x)), nil
	case int16:
		return ir.FromInt(int64(x)), nil
	case int32:
		return ir.FromInt(int64(x)), nil
	case int64:
		return ir.FromInt(x), nil
	case uint:
		return fromUint(uint64(x)), nil
	case uint8:
		return ir.FromInt(int64(x)), nil
	case uint16:
		return ir.FromInt(int64(x)), nil
	case uint32:
		return ir.FromInt(int64(x)), nil
	case uint64:
		return fromUint(x), nil
	case float32:
		return ir.FromFloat(float64(x)), nil
	case float64:
		return ir.FromFloat(x), nil
	case string:
		return ir.FromText(x), nil
	case []byte:
		return ir.FromData(x), nil
	case []any:
		res := ir.FromValues(nil)
		for i, e := range x {
			n, err := FromAny(e)
			if err != nil {
				return nil, fmt.Errorf("[%d]: %w", i, err)
			}
			res.Append(nil, n)
		}
		return res, nil
	case yaml.MapSlice:
		res := ir.FromValues(nil)
		for _, item := range x {
			if err := appendItem(res, item.Key, item.Value); err != nil {
				return nil, err
			}
		}
		return res, nil
	case map[string]any:
		res := ir.FromValues(nil)
		for _, k := range slices.Sorted(maps.Keys(x)) {
			if err := appendItem(res, k, x[k]); err != nil {
				return nil, err
			}
		}
		return res, nil
	default:
		return nil, fmt.Errorf("%w: value of type %T", ErrUnsupported, v)
	}
}

func fromUint(x uint64) *ir.Node {
	if x > math.MaxInt64 {
		return ir.FromNumber(strconv.FormatUint(x, 10))
	}
	return ir.FromInt(int64(x))
}

func appendItem(rec *ir.Node, k, v any) error {
	val, err := FromAny(v)
	if err != nil {
		return fmt.Errorf("%v: %w", k, err)
	}
	if name, ok := k.(string); ok && strings.HasPrefix(name, "@") && len(rec.Values) == 0 {
		var arg *ir.Node
		if val.Type != ir.ExtantType {
			arg = val
		}
		rec.WithAttr(name[1:], arg)
		return nil
	}
	key, err := FromAny(k)
	if err != nil {
		return fmt.Errorf("key %v: %w", k, err)
	}
	rec.Append(key, val)
	return nil
}
