package configmodel

// progressGuard implements the bounded-progress termination rule shared by
// local, global, and last-resort rewiring (spec.md §4.3.3): the attempt
// budget only resets when the recycle queue has strictly shrunk since the
// last reset, so a batch of genuinely unfixable collisions can't spin the
// loop forever.
type progressGuard struct {
	last    int
	counter int
}

func newProgressGuard(recycleLen int) *progressGuard {
	return &progressGuard{last: recycleLen, counter: recycleLen}
}

// Continue reports whether the loop may proceed given the current recycle
// length, observed before popping the next candidate. A false result
// means the remaining entries should be accepted as unresolved.
func (g *progressGuard) Continue(recycleLen int) bool {
	g.counter--
	if g.counter < 0 {
		if recycleLen < g.last {
			g.last = recycleLen
			g.counter = g.last
		} else {
			return false
		}
	}
	return true
}
