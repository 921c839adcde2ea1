package gomap

import (
	"errors"
	"testing"
	"time"

	"github.com/signadot/go-recon/encode"
	"github.com/signadot/go-recon/ir"

	"github.com/google/go-cmp/cmp"
)

type point struct {
	Kind  string  `recon:"point,attr"`
	X     int     `recon:"x"`
	Y     int     `recon:"y,omitempty"`
	Label *string `recon:"label"`
	Skip  bool    `recon:"-"`
	Plain float64
	spare int
}

type custom struct{}

func (custom) ToIR() (*ir.Node, error) {
	return ir.Infix(ir.Ref("a"), "+", ir.FromInt(1)), nil
}

func TestToIR(t *testing.T) {
	label := "p q"
	tests := []struct {
		name     string
		in       any
		expected string
	}{
		{"nil", nil, ""},
		{"bool", true, "true"},
		{"int", -7, "-7"},
		{"uint", uint64(1 << 63), "9223372036854775808"},
		{"float", 0.25, "0.25"},
		{"string", "hello", "hello"},
		{"bytes", []byte("hi!"), "%aGkh"},
		{"byte array", [3]byte{'h', 'i', '!'}, "%aGkh"},
		{"slice", []any{1, "two", nil}, "{1,two,}"},
		{"nil slice", []int(nil), ""},
		{"map", map[string]int{"b": 2, "a": 1}, "{a:1,b:2}"},
		{"struct", point{X: 1, Plain: 1.5, spare: 3}, "@point{x:1,label:,Plain:1.5}"},
		{"struct attr arg", &point{Kind: "2d", X: 1, Y: 2, Label: &label}, `@point("2d"){x:1,y:2,label:"p q",Plain:0}`},
		{"ir", custom{}, "$a + 1"},
		{"text marshaler", time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC), `"2024-01-02T03:04:05Z"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node, err := ToIR(tt.in)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tt.expected, encode.MustString(node)); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestToIRUnsupported(t *testing.T) {
	for _, v := range []any{map[int]string{1: "a"}, make(chan int), func() {}} {
		if _, err := ToIR(v); !errors.Is(err, ErrUnsupportedType) {
			t.Errorf("%T: expected unsupported, got %v", v, err)
		}
	}
}
