// Package feed maintains the paginated program result set driven by the
// survey profile: reset-and-refetch on filter changes, cursor continuation
// on scroll, and stale-response discarding when fetches overlap.
package feed

import (
	"github.com/sspots/fitfinder/internal/api"
	"github.com/sspots/fitfinder/internal/contract"
	"github.com/sspots/fitfinder/internal/domain"
)

// Phase is the controller's position in the fetch lifecycle.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseResetting
	PhaseReady
	PhaseFetchingMore
	PhaseEmpty
	PhaseErrored
)

// IncompleteMessage is shown when a search is attempted before the survey
// is finished. No network call is made in that case.
const IncompleteMessage = "설문을 먼저 완료해 주세요. 설문 결과를 바탕으로 딱 맞는 프로그램을 찾아드려요."

// EmptyMessage is shown when a completed search matched no programs.
const EmptyMessage = "조건에 맞는 프로그램이 없어요. 필터를 조정해 보세요."

// Fetch describes one outbound search the caller must execute and report
// back via Apply. Token makes late responses distinguishable from current
// ones: a reset issued while a continuation is in flight supersedes it, and
// the superseded response is silently discarded on arrival.
type Fetch struct {
	Token   int
	Request contract.SearchRequest
	Cursor  *api.PageCursor // nil requests the first page
}

// Controller owns the program list state. It performs no I/O itself: Begin*
// methods hand out at most one Fetch at a time, and Apply folds the outcome
// back in. This keeps the state machine synchronous and testable while the
// caller runs the actual request asynchronously.
type Controller struct {
	profile *domain.Profile

	phase     Phase
	items     []contract.ProgramSummary
	cursor    *api.PageCursor
	exhausted bool
	errMsg    string

	token     int // token of the in-flight fetch, 0 when none
	nextToken int
}

// NewController creates an idle controller over the given profile.
func NewController(profile *domain.Profile) *Controller {
	return &Controller{profile: profile}
}

// BeginReset starts over: clears loaded items and the cursor, then hands out
// a first-page fetch. Called on mount and after any weekday/startTime change.
//
// If the profile is incomplete the controller fails closed: no fetch is
// issued, and the errored state carries a fixed message directing the user
// back to the survey.
func (c *Controller) BeginReset() (Fetch, bool) {
	c.items = nil
	c.cursor = nil
	c.errMsg = ""
	c.token = 0 // cancels any outstanding fetch; its Apply will be stale

	if !c.profile.Complete() {
		c.phase = PhaseErrored
		c.exhausted = true
		c.errMsg = IncompleteMessage
		return Fetch{}, false
	}

	c.phase = PhaseResetting
	c.exhausted = false
	c.nextToken++
	c.token = c.nextToken
	return Fetch{Token: c.token, Request: contract.NewSearchRequest(c.profile)}, true
}

// BeginMore starts a continuation fetch from the current cursor. It is a
// no-op unless the controller is Ready with more pages possibly remaining
// and nothing already in flight.
func (c *Controller) BeginMore() (Fetch, bool) {
	if c.phase != PhaseReady || c.exhausted || c.token != 0 {
		return Fetch{}, false
	}
	c.phase = PhaseFetchingMore
	c.nextToken++
	c.token = c.nextToken
	return Fetch{
		Token:   c.token,
		Request: contract.NewSearchRequest(c.profile),
		Cursor:  c.cursor,
	}, true
}

// Apply folds a fetch outcome into the list state. It returns false when the
// fetch was superseded (its token no longer current); stale results are
// discarded without touching the state.
func (c *Controller) Apply(f Fetch, items []contract.ProgramSummary, err error) bool {
	if f.Token == 0 || f.Token != c.token {
		return false
	}
	c.token = 0

	switch c.phase {
	case PhaseResetting:
		switch {
		case err != nil:
			c.phase = PhaseErrored
			c.exhausted = true
			c.errMsg = api.UserMessage(err)
		case len(items) == 0:
			c.phase = PhaseEmpty
			c.exhausted = true
		default:
			c.items = items
			c.cursor = cursorAfter(items)
			c.phase = PhaseReady
		}

	case PhaseFetchingMore:
		// Loaded items always survive a failed or empty continuation; only
		// further pagination stops.
		c.phase = PhaseReady
		switch {
		case err != nil:
			c.exhausted = true
			c.errMsg = api.UserMessage(err)
		case len(items) == 0:
			c.exhausted = true
		default:
			c.items = append(c.items, items...)
			c.cursor = cursorAfter(items)
		}
	}
	return true
}

// cursorAfter derives the continuation cursor from the last item of a page.
func cursorAfter(items []contract.ProgramSummary) *api.PageCursor {
	last := items[len(items)-1]
	return &api.PageCursor{LastProgramID: last.ProgramID, LastDistance: last.Distance}
}

// Items returns the loaded program summaries in server order.
func (c *Controller) Items() []contract.ProgramSummary { return c.items }

// Phase returns the controller's current lifecycle phase.
func (c *Controller) Phase() Phase { return c.phase }

// Loading reports whether a reset fetch is in flight.
func (c *Controller) Loading() bool { return c.phase == PhaseResetting }

// LoadingMore reports whether a continuation fetch is in flight.
func (c *Controller) LoadingMore() bool { return c.phase == PhaseFetchingMore }

// Exhausted reports whether further continuation fetches are pointless.
func (c *Controller) Exhausted() bool { return c.exhausted }

// ErrorMessage returns the user-facing error for the current state, or "".
func (c *Controller) ErrorMessage() string { return c.errMsg }
