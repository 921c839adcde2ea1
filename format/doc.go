// Package format names the input formats which can be converted to Recon.
//
// # Usage
//
//	f, err := format.ParseFormat("yaml")
//	node, err := parse.Parse(input, parse.ParseFormat(f))
//
// # Related Packages
//
//   - github.com/signadot/go-recon/parse - Parse input to IR
//   - github.com/signadot/go-recon/encode - Encode IR to Recon
package format
