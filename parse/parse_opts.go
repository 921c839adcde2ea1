package parse

import "github.com/signadot/go-recon/format"

type parseOpts struct {
	format format.Format
	patch  []byte
}

type ParseOption func(*parseOpts)

func ParseYAML() ParseOption {
	return ParseFormat(format.YAMLFormat)
}
func ParseJSON() ParseOption {
	return ParseFormat(format.JSONFormat)
}
func ParseExpr() ParseOption {
	return ParseFormat(format.ExprFormat)
}
func ParseFormat(f format.Format) ParseOption {
	return func(o *parseOpts) { o.format = f }
}

// ParsePatch applies the JSON patch p, in JSON or YAML, to the document
// before it is converted.
func ParsePatch(p []byte) ParseOption {
	return func(o *parseOpts) { o.patch = p }
}
