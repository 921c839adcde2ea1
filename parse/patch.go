package parse

import (
	"fmt"

	"github.com/signadot/go-recon/format"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/goccy/go-yaml"
)

// Patch applies the RFC 6902 patch p to the document d, read in format f,
// and returns the patched document as JSON.  The patch itself may be given
// as JSON or YAML.  Object keys of the result are sorted.
func Patch(d []byte, f format.Format, p []byte) ([]byte, error) {
	if f.IsExpr() {
		return nil, fmt.Errorf("%w: cannot patch %s input", ErrUnsupported, f)
	}
	doc, err := toJSON(d)
	if err != nil {
		return nil, err
	}
	ops, err := toJSON(p)
	if err != nil {
		return nil, fmt.Errorf("patch: %w", err)
	}
	patch, err := jsonpatch.DecodePatch(ops)
	if err != nil {
		return nil, fmt.Errorf("%w: patch: %w", ErrParse, err)
	}
	res, err := patch.Apply(doc)
	if err != nil {
		return nil, fmt.Errorf("apply patch: %w", err)
	}
	return res, nil
}

func toJSON(d []byte) ([]byte, error) {
	res, err := yaml.YAMLToJSON(d)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	return res, nil
}
