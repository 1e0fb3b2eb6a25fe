package refine

import "errors"

// ErrInfeasibleSeed reports a climb started from an assignment that does
// not satisfy the ordering constraint. The climb can only preserve
// feasibility, never create it.
var ErrInfeasibleSeed = errors.New("seed assignment does not satisfy the desired ordering")
