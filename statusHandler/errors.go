package statusHandler

import "errors"

// ErrNilRegisterer signals that a nil prometheus registerer has been provided
var ErrNilRegisterer = errors.New("nil prometheus registerer")

// ErrEmptyTextfilePath signals that an empty metrics file path has been provided
var ErrEmptyTextfilePath = errors.New("empty metrics textfile path")
