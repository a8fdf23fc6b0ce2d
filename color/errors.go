package color

import "errors"

// ErrUnknownSpace indicates ParseSpace was given a name that is not one of
// rgb, lab, or luv.
var ErrUnknownSpace = errors.New("color: unknown color space")
