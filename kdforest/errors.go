package kdforest

import "errors"

// ErrAllocation is returned by Insert when the forest could not complete
// the rebuild its amortization schedule called for. The forest is left
// exactly as it was before the call: the handle is not marked inserted and
// no slot is touched.
var ErrAllocation = errors.New("kdforest: allocation failed")
