package jsonc

import "errors"

// ErrWriterState indicates a Writer call made out of order, such as a Value
// without a preceding Name or an EndObject with no open object.
var ErrWriterState = errors.New("writer call out of order")
