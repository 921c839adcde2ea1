package encode

import (
	"encoding/base64"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/signadot/go-recon/ir"
)

// TextLiteral returns the Recon form of the text s: s itself when it is an
// identifier, otherwise s quoted.
func TextLiteral(s string) string {
	if IsIdent(s) {
		return s
	}
	return Quote(s)
}

// IsIdent reports whether s can be written without quotes.
func IsIdent(s string) bool {
	if s == "" || s == "true" || s == "false" {
		return false
	}
	for i, r := range s {
		if r == utf8.RuneError {
			return false
		}
		if i == 0 {
			if !isIdentStart(r) {
				return false
			}
		} else if !isIdentChar(r) {
			return false
		}
	}
	return true
}

func isIdentStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func isIdentChar(r rune) bool {
	return isIdentStart(r) || unicode.IsDigit(r) || r == '-'
}

const hexDigits = "0123456789abcdef"

// Quote returns s in double quotes with quotes, backslashes and control
// characters escaped.  Other bytes are kept as they are.
func Quote(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case '"', '\\':
			b.WriteByte('\\')
			b.WriteByte(c)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		case '\b':
			b.WriteString(`\b`)
		case '\f':
			b.WriteString(`\f`)
		default:
			if c < 0x20 || c == 0x7f {
				b.WriteString(`\u00`)
				b.WriteByte(hexDigits[c>>4])
				b.WriteByte(hexDigits[c&0xf])
				continue
			}
			b.WriteByte(c)
		}
	}
	b.WriteByte('"')
	return b.String()
}

// NumberLiteral returns the Recon form of a number node.
func NumberLiteral(y *ir.Node) string {
	switch {
	case y.Int64 != nil:
		return strconv.FormatInt(*y.Int64, 10)
	case y.Float64 != nil:
		return strconv.FormatFloat(*y.Float64, 'g', -1, 64)
	case y.Number != "":
		return y.Number
	default:
		return "0"
	}
}

func boolLiteral(v bool) string {
	if v {
		return "true"
	}
	return "false"
}

func dataLiteral(d []byte) string {
	return "%" + base64.StdEncoding.EncodeToString(d)
}

func sizeOfData(d []byte) int {
	return 1 + base64.StdEncoding.EncodedLen(len(d))
}

func refLiteral(p string) string {
	return "$" + p
}
