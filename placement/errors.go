package placement

import "errors"

// ErrExhausted is returned by Place once every pixel in the engine's grid
// has already been filled.
var ErrExhausted = errors.New("placement: grid exhausted, every pixel already filled")
