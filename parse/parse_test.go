package parse

import (
	"errors"
	"testing"

	"github.com/signadot/go-recon/encode"
	"github.com/signadot/go-recon/format"
	"github.com/signadot/go-recon/ir"

	"github.com/google/go-cmp/cmp"
)

func TestParseDocument(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		opts     []ParseOption
		expected string
	}{
		{"object", `{"a": 1, "b": [true, null, "x y"]}`, nil, `{a:1,b:{true,,"x y"}}`},
		{"numbers", `[-3, 2.5, 0]`, nil, "{-3,2.5,0}"},
		{"big uint", `[18446744073709551615]`, nil, "{18446744073709551615}"},
		{"empty object", `{"e": {}}`, nil, "{e:{}}"},
		{"null", `null`, nil, ""},
		{"empty input", "  \n", nil, ""},
		{"attr", `{"@point": null, "x": 1, "y": 2}`, nil, "@point{x:1,y:2}"},
		{"attr arg", `{"@a": 1}`, nil, "@a(1)"},
		{"attr block arg", `{"@a": {"k": "v", "n": 2}, "x": 1}`, nil, "@a(k:v,n:2){x:1}"},
		{"late attr key", `{"x": 1, "@a": 2}`, nil, `{x:1,"@a":2}`},
		{"yaml order", "b: 2\na: 1\n", []ParseOption{ParseYAML()}, "{b:2,a:1}"},
		{"yaml sequence", "- 1\n- two\n", []ParseOption{ParseYAML()}, "{1,two}"},
		{"yaml nested", "top:\n  - k: v\n", []ParseOption{ParseYAML()}, "{top:{{k:v}}}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node, err := Parse([]byte(tt.in), tt.opts...)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tt.expected, encode.MustString(node)); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseDocumentError(t *testing.T) {
	_, err := Parse([]byte(`{"a": `))
	if !errors.Is(err, ErrParse) {
		t.Errorf("expected parse error, got %v", err)
	}
}

func TestParseExpr(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{"a + b * 2", "$a + $b * 2"},
		{"(a + b) * 2", "($a + $b) * 2"},
		{"a - b - c", "$a - $b - $c"},
		{"a.b.c > 1 and not d", "$a.b.c > 1 && !$d"},
		{"a || b && c", "$a || $b && $c"},
		{"a ? 1 : 'x'", "$a ? 1 : x"},
		{"a[0] == 2.5", "$a[0] == 2.5"},
		{"-a", "-$a"},
		{"[1, 'two']", "{1,two}"},
		{"{k: 1}", "{k:1}"},
		{"nil", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			node, err := Parse([]byte(tt.in), ParseExpr())
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tt.expected, encode.MustString(node)); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseExprTree(t *testing.T) {
	node, err := Parse([]byte("x and y or z"), ParseExpr())
	if err != nil {
		t.Fatal(err)
	}
	if node.Type != ir.InfixType || node.String != "||" {
		t.Fatalf("got %s %q", node.Type, node.String)
	}
	lhs := node.Operand(0)
	if lhs.Type != ir.InfixType || lhs.String != "&&" || lhs.Parent != node {
		t.Errorf("unexpected lhs %s %q", lhs.Type, lhs.String)
	}
	if err := ir.Check(node); err != nil {
		t.Error(err)
	}
}

func TestParseExprAmbiguous(t *testing.T) {
	node, err := Parse([]byte("a - (b - c)"), ParseExpr())
	if err != nil {
		t.Fatal(err)
	}
	if err := ir.Check(node); !errors.Is(err, ir.ErrAmbiguous) {
		t.Errorf("expected ambiguity, got %v", err)
	}
}

func TestParseExprErrors(t *testing.T) {
	tests := []struct {
		in  string
		err error
	}{
		{"a +", ErrParse},
		{"2 ** 3", ErrUnsupported},
		{"f(x)", ErrUnsupported},
		{"a in b", ErrUnsupported},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			_, err := Parse([]byte(tt.in), ParseExpr())
			if !errors.Is(err, tt.err) {
				t.Errorf("expected %v, got %v", tt.err, err)
			}
		})
	}
}

func TestPatch(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		f        format.Format
		patch    string
		expected string
	}{
		{"json", `{"a": 1}`, format.JSONFormat, `[{"op": "add", "path": "/b", "value": 2}]`, "{a:1,b:2}"},
		{"yaml", "a: 1\n", format.YAMLFormat, "- op: replace\n  path: /a\n  value: x\n", "{a:x}"},
		{"remove", `{"a": 1, "b": [1, 2]}`, format.JSONFormat, `[{"op": "remove", "path": "/b/0"}]`, "{a:1,b:{2}}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node, err := Parse([]byte(tt.in), ParseFormat(tt.f), ParsePatch([]byte(tt.patch)))
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tt.expected, encode.MustString(node)); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestPatchErrors(t *testing.T) {
	if _, err := Patch([]byte("a + b"), format.ExprFormat, []byte("[]")); !errors.Is(err, ErrUnsupported) {
		t.Errorf("expected unsupported, got %v", err)
	}
	if _, err := Patch([]byte(`{"a": 1}`), format.JSONFormat, []byte(`[{"op": "remove", "path": "/zz"}]`)); err == nil {
		t.Errorf("expected failure removing a missing key")
	}
}
