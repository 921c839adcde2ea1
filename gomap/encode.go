package gomap

import (
	"encoding"
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/signadot/go-recon/ir"
)

var ErrUnsupportedType = errors.New("unsupported type")

// IRer is implemented by values which provide their own node.
type IRer interface {
	ToIR() (*ir.Node, error)
}

var (
	irerType          = reflect.TypeFor[IRer]()
	textMarshalerType = reflect.TypeFor[encoding.TextMarshaler]()
)

// ToIR returns the node for v. Nil pointers, interfaces, maps and slices
// become extant.
func ToIR(v any) (*ir.Node, error) {
	return toIR(reflect.ValueOf(v))
}

func toIR(v reflect.Value) (*ir.Node, error) {
	if !v.IsValid() {
		return ir.Extant(), nil
	}
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice:
		if v.IsNil() {
			return ir.Extant(), nil
		}
	}
	if v.Type().Implements(irerType) {
		return v.Interface().(IRer).ToIR()
	}
	if v.Type().Implements(textMarshalerType) {
		d, err := v.Interface().(encoding.TextMarshaler).MarshalText()
		if err != nil {
			return nil, err
		}
		return ir.FromText(string(d)), nil
	}
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface:
		return toIR(v.Elem())
	case reflect.Bool:
		return ir.FromBool(v.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return ir.FromInt(v.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := v.Uint()
		if u > 1<<63-1 {
			return ir.FromNumber(fmt.Sprint(u)), nil
		}
		return ir.FromInt(int64(u)), nil
	case reflect.Float32, reflect.Float64:
		return ir.FromFloat(v.Float()), nil
	case reflect.String:
		return ir.FromText(v.String()), nil
	case reflect.Slice, reflect.Array:
		if v.Type().Elem().Kind() == reflect.Uint8 {
			if v.Kind() == reflect.Slice {
				return ir.FromData(v.Bytes()), nil
			}
			d := make([]byte, v.Len())
			reflect.Copy(reflect.ValueOf(d), v)
			return ir.FromData(d), nil
		}
		res := ir.FromValues(nil)
		for i := range v.Len() {
			elt, err := toIR(v.Index(i))
			if err != nil {
				return nil, fmt.Errorf("[%d]: %w", i, err)
			}
			res.Append(nil, elt)
		}
		return res, nil
	case reflect.Map:
		return mapToIR(v)
	case reflect.Struct:
		return structToIR(v)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedType, v.Type())
	}
}

func mapToIR(v reflect.Value) (*ir.Node, error) {
	if v.Type().Key().Kind() != reflect.String {
		return nil, fmt.Errorf("%w: map key %s", ErrUnsupportedType, v.Type().Key())
	}
	keys := v.MapKeys()
	slices.SortFunc(keys, func(a, b reflect.Value) int {
		return strings.Compare(a.String(), b.String())
	})
	res := ir.FromValues(nil)
	for _, k := range keys {
		val, err := toIR(v.MapIndex(k))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", k.String(), err)
		}
		res.Append(ir.FromText(k.String()), val)
	}
	return res, nil
}

func structToIR(v reflect.Value) (*ir.Node, error) {
	ty := v.Type()
	res := ir.FromValues(nil)
	for i := range ty.NumField() {
		f := ty.Field(i)
		if !f.IsExported() {
			continue
		}
		tag := parseTag(f)
		if tag.skip {
			continue
		}
		fv := v.Field(i)
		if tag.attr {
			var arg *ir.Node
			if !fv.IsZero() {
				n, err := toIR(fv)
				if err != nil {
					return nil, fmt.Errorf("@%s: %w", tag.name, err)
				}
				arg = n
			}
			res.WithAttr(tag.name, arg)
			continue
		}
		if tag.omitEmpty && fv.IsZero() {
			continue
		}
		val, err := toIR(fv)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", tag.name, err)
		}
		res.Append(ir.FromText(tag.name), val)
	}
	return res, nil
}
