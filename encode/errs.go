package encode

import "errors"

var ErrSizeMismatch = errors.New("size mismatch")
