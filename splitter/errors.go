package splitter

import "errors"

// ErrCannotRealizeIntersection is recorded per candidate face pair when
// one face of the pair has more than two distinct edge crossings. The
// splitter makes no retry and no flip or face-split attempt in that case.
var ErrCannotRealizeIntersection = errors.New("splitter: cannot realize an intersection edge on this face")
