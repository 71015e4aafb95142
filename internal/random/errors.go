package random

import "errors"

var ErrEmptyRange = errors.New("cannot draw from an empty range")
