package encode

import (
	"bytes"
	"context"
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/signadot/go-recon/codec"
	"github.com/signadot/go-recon/ir"
)

func TestRecon(t *testing.T) {
	tests := []struct {
		name     string
		node     *ir.Node
		expected string
	}{
		{"absent", ir.Absent(), ""},
		{"nil", nil, ""},
		{"extant", ir.Extant(), ""},
		{"true", ir.FromBool(true), "true"},
		{"false", ir.FromBool(false), "false"},
		{"int", ir.FromInt(-42), "-42"},
		{"float", ir.FromFloat(2.5), "2.5"},
		{"big float", ir.FromFloat(1e21), "1e+21"},
		{"number literal", ir.FromNumber("123456789012345678901234567890"), "123456789012345678901234567890"},
		{"ident", ir.FromText("hello_world-2"), "hello_world-2"},
		{"unicode ident", ir.FromText("héllo"), "héllo"},
		{"quoted", ir.FromText("hello world"), `"hello world"`},
		{"empty text", ir.FromText(""), `""`},
		{"keyword text", ir.FromText("true"), `"true"`},
		{"digit text", ir.FromText("1a"), `"1a"`},
		{"escapes", ir.FromText("a\"b\\c\nd\te\x01"), `"a\"b\\c\nd\te\u0001"`},
		{"data", ir.FromData([]byte("hi!")), "%aGkh"},
		{"empty data", ir.FromData(nil), "%"},
		{"ref", ir.Ref("a.b"), "$a.b"},
		{"empty record", ir.FromValues(nil), "{}"},
		{"values", ir.FromValues([]*ir.Node{ir.FromInt(1), ir.FromText("two"), ir.FromBool(true)}), "{1,two,true}"},
		{"slots", ir.FromKeyVals([]ir.KeyVal{
			{Key: ir.FromText("a"), Val: ir.FromInt(1)},
			{Val: ir.FromText("x")},
			{Key: ir.FromText("b c"), Val: ir.Extant()},
		}), `{a:1,x,"b c":}`},
		{"nested record", ir.FromMap(map[string]*ir.Node{
			"in": ir.FromValues([]*ir.Node{ir.FromValues(nil)}),
		}), "{in:{{}}}"},
		{"attr only", ir.FromValues(nil).WithAttr("tag", nil), "@tag"},
		{"attrs and body", ir.FromMap(map[string]*ir.Node{"x": ir.FromInt(1), "y": ir.FromInt(2)}).WithAttr("point", nil), "@point{x:1,y:2}"},
		{"attr with value", ir.FromValues(nil).WithAttr("a", ir.FromInt(1)).WithAttr("b c", ir.Extant()), `@a(1)@"b c"`},
		{"attr with block", ir.FromValues(nil).WithAttr("a", ir.FromMap(map[string]*ir.Node{"k": ir.FromText("v"), "n": ir.FromInt(2)})), "@a(k:v,n:2)"},
		{"attr with single value record", ir.FromValues([]*ir.Node{ir.FromInt(3)}).WithAttr("a", ir.FromValues([]*ir.Node{ir.FromInt(1)})), "@a({1}){3}"},
		{"attr with single slot", ir.FromValues(nil).WithAttr("a", ir.FromMap(map[string]*ir.Node{"k": ir.FromInt(1)})), "@a(k:1)"},
		{"sum", ir.Infix(ir.Ref("a"), "+", ir.FromInt(1)), "$a + 1"},
		{"precedence", ir.Infix(ir.Ref("a"), "+", ir.Infix(ir.Ref("b"), "*", ir.Ref("c"))), "$a + $b * $c"},
		{"wrapped", ir.Infix(ir.Infix(ir.Ref("a"), "+", ir.Ref("b")), "*", ir.Ref("c")), "($a + $b) * $c"},
		{"left nested", ir.Infix(ir.Infix(ir.Ref("a"), "-", ir.Ref("b")), "-", ir.Ref("c")), "$a - $b - $c"},
		{"logic", ir.Infix(ir.Infix(ir.Ref("a"), "||", ir.Ref("b")), "&&", ir.Infix(ir.Ref("c"), "<", ir.FromInt(2))), "($a || $b) && $c < 2"},
		{"record operand", ir.Infix(ir.FromValues([]*ir.Node{ir.FromInt(1)}), "+", ir.FromText("x")), "{1} + x"},
		{"attr operand", ir.Infix(ir.NewAttr("a", nil), "+", ir.FromInt(1)), "(@a) + 1"},
		{"prefix", ir.Prefix("!", ir.Ref("a")), "!$a"},
		{"prefix wrapped", ir.Prefix("-", ir.Infix(ir.Ref("a"), "+", ir.Ref("b"))), "-($a + $b)"},
		{"prefix nested", ir.Prefix("-", ir.Prefix("~", ir.Ref("a"))), "-~$a"},
		{"prefix operand", ir.Infix(ir.Prefix("-", ir.Ref("a")), "*", ir.Ref("b")), "-$a * $b"},
		{"conditional", ir.Conditional(ir.Ref("a"), ir.FromInt(1), ir.FromInt(2)), "$a ? 1 : 2"},
		{"conditional else chain", ir.Conditional(ir.Ref("a"), ir.FromInt(1), ir.Conditional(ir.Ref("b"), ir.FromInt(2), ir.FromInt(3))), "$a ? 1 : $b ? 2 : 3"},
		{"conditional cond wrapped", ir.Conditional(ir.Conditional(ir.Ref("a"), ir.Ref("b"), ir.Ref("c")), ir.FromInt(1), ir.FromInt(2)), "($a ? $b : $c) ? 1 : 2"},
		{"conditional then wrapped", ir.Conditional(ir.Ref("a"), ir.Conditional(ir.Ref("b"), ir.Ref("c"), ir.Ref("d")), ir.FromInt(2)), "$a ? ($b ? $c : $d) : 2"},
		{"conditional operands", ir.Conditional(ir.Infix(ir.Ref("a"), "||", ir.Ref("b")), ir.Infix(ir.Ref("x"), "+", ir.FromInt(1)), ir.NewAttr("z", nil)), "$a || $b ? $x + 1 : (@z)"},
		{"conditional in infix", ir.Infix(ir.Conditional(ir.Ref("a"), ir.Ref("b"), ir.Ref("c")), "+", ir.FromInt(1)), "($a ? $b : $c) + 1"},
		{"expression in record", ir.FromKeyVals([]ir.KeyVal{{Key: ir.FromText("sum"), Val: ir.Infix(ir.Ref("a"), "+", ir.Ref("b"))}}), "{sum:$a + $b}"},
		{"missing operand", &ir.Node{Type: ir.InfixType, String: "+"}, " + "},
	}
	r := Recon{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if size := r.SizeOf(tt.node); size != len(tt.expected) {
				t.Errorf("size %d, expected %d", size, len(tt.expected))
			}
			for chunk := 1; chunk <= len(tt.expected)+1; chunk++ {
				got, _, w := drive(t, r.WriterFor(tt.node), chunk)
				if w.IsError() {
					t.Fatalf("chunk %d: %v", chunk, w.Trap())
				}
				if got != tt.expected {
					t.Fatalf("chunk %d: got %q, expected %q", chunk, got, tt.expected)
				}
			}
		})
	}
}

func TestQuoteUnquotes(t *testing.T) {
	for _, s := range []string{"", "a b", "\x00\x1f\x7f", "tab\there", `back\slash`, `"quoted"`, "\b\f\r"} {
		back, err := strconv.Unquote(Quote(s))
		if err != nil {
			t.Errorf("%q: %v", s, err)
			continue
		}
		if back != s {
			t.Errorf("got %q, expected %q", back, s)
		}
	}
}

func TestEncodeBlock(t *testing.T) {
	rec := ir.FromKeyVals([]ir.KeyVal{
		{Key: ir.FromText("a"), Val: ir.FromInt(1)},
		{Key: ir.FromText("b"), Val: ir.Infix(ir.Ref("a"), "*", ir.FromInt(2))},
	})
	tests := []struct {
		name     string
		node     *ir.Node
		opts     []EncodeOption
		expected string
	}{
		{"record", rec, nil, "{a:1,b:$a * 2}"},
		{"block", rec, []EncodeOption{Block(true)}, "a:1,b:$a * 2"},
		{"block newline", rec, []EncodeOption{Block(true), Newline(true)}, "a:1,b:$a * 2\n"},
		{"single value block", ir.FromValues([]*ir.Node{ir.FromInt(1)}), []EncodeOption{Block(true)}, "{1}"},
		{"attr block", ir.FromValues([]*ir.Node{ir.FromInt(1), ir.FromInt(2)}).WithAttr("a", nil), []EncodeOption{Block(true)}, "@a{1,2}"},
		{"scalar block", ir.FromText("x"), []EncodeOption{Block(true), Chunk(1)}, "x"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			opts := append(tt.opts, VerifySize(true))
			if err := Encode(tt.node, &buf, opts...); err != nil {
				t.Fatal(err)
			}
			if buf.String() != tt.expected {
				t.Errorf("got %q, expected %q", buf.String(), tt.expected)
			}
			if n := Size(tt.node, tt.opts...); n != len(strings.TrimSuffix(tt.expected, "\n")) {
				t.Errorf("size %d for %q", n, tt.expected)
			}
		})
	}
}

func bigDocument() *ir.Node {
	rows := ir.FromValues(nil)
	for i := 0; i < 300; i++ {
		row := ir.FromMap(map[string]*ir.Node{
			"id":    ir.FromInt(int64(i)),
			"name":  ir.FromText("row " + strconv.Itoa(i)),
			"score": ir.Infix(ir.Ref("base"), "+", ir.Infix(ir.FromInt(int64(i)), "*", ir.FromFloat(0.5))),
			"ok":    ir.Conditional(ir.Infix(ir.Ref("x"), ">", ir.FromInt(int64(i))), ir.FromBool(true), ir.Prefix("!", ir.Ref("y"))),
		}).WithAttr("row", ir.FromInt(int64(i)))
		rows.Append(nil, row)
	}
	return ir.FromMap(map[string]*ir.Node{"rows": rows, "blob": ir.FromData(bytes.Repeat([]byte{0xfe}, 100))})
}

func TestEncodeChunksAgree(t *testing.T) {
	doc := bigDocument()
	expected := MustString(doc, Chunk(1<<20))
	if len(expected) != Size(doc) {
		t.Fatalf("size %d, wrote %d", Size(doc), len(expected))
	}
	for _, chunk := range []int{1, 2, 3, 5, 64, 1000} {
		var buf bytes.Buffer
		if err := Encode(doc, &buf, Chunk(chunk), VerifySize(true)); err != nil {
			t.Fatalf("chunk %d: %v", chunk, err)
		}
		if buf.String() != expected {
			t.Errorf("chunk %d: output differs", chunk)
		}
	}
}

func TestNewWriterTruncated(t *testing.T) {
	doc := bigDocument()
	buf := codec.NewBuffer(100).Close()
	w := NewWriter(doc).Pull(buf)
	if !w.IsError() || !errors.Is(w.Trap(), codec.ErrTruncated) {
		t.Errorf("expected truncation")
	}
	if buf.Len() != 100 {
		t.Errorf("wrote %d bytes", buf.Len())
	}
}

func TestEncodeCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := EncodeContext(ctx, bigDocument(), &bytes.Buffer{}, Chunk(16))
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected cancellation, got %v", err)
	}
}
