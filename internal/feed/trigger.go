package feed

// ContinuationTrigger turns a continuous "near the end of the list" signal
// into discrete load-more requests: it fires once when the boundary is
// approached and stays quiet while the user lingers there. In the TUI the
// proximity signal is derived from viewport scroll position, standing in for
// the original's end-of-list sentinel element.
type ContinuationTrigger struct {
	armed bool
}

// NewContinuationTrigger returns an armed trigger.
func NewContinuationTrigger() *ContinuationTrigger {
	return &ContinuationTrigger{armed: true}
}

// Observe feeds the current boundary proximity and reports whether a
// load-more signal should fire now. Moving away from the boundary re-arms
// the trigger.
func (t *ContinuationTrigger) Observe(nearEnd bool) bool {
	if !nearEnd {
		t.armed = true
		return false
	}
	if !t.armed {
		return false
	}
	t.armed = false
	return true
}

// Rearm re-enables the trigger. Called after a successful append so the next
// approach to the (new) boundary fires again even if the viewport never left
// the old one.
func (t *ContinuationTrigger) Rearm() {
	t.armed = true
}
