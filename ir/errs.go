package ir

import "errors"

var (
	ErrAmbiguous = errors.New("ambiguous expression")
	ErrMalformed = errors.New("malformed node")
)
