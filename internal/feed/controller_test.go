package feed

import (
	"fmt"
	"testing"

	"github.com/sspots/fitfinder/internal/api"
	"github.com/sspots/fitfinder/internal/contract"
	"github.com/sspots/fitfinder/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func completeProfile() *domain.Profile {
	p := domain.NewProfile()
	p.SetGender(domain.GenderMale)
	p.SetAgeGroup(domain.AgeAdult)
	p.SetLocation(37.5, 127.0)
	p.SetFavorites([]string{"수영"})
	return p
}

func page(startID, n int) []contract.ProgramSummary {
	items := make([]contract.ProgramSummary, n)
	for i := range items {
		items[i] = contract.ProgramSummary{
			ProgramID:   startID + i,
			ProgramName: fmt.Sprintf("프로그램 %d", startID+i),
			Distance:    float64(startID+i) / 10,
		}
	}
	return items
}

func TestController_IncompleteProfileFailsClosed(t *testing.T) {
	c := NewController(domain.NewProfile())

	_, ok := c.BeginReset()
	assert.False(t, ok, "no fetch may be issued for an incomplete profile")
	assert.Equal(t, PhaseErrored, c.Phase())
	assert.True(t, c.Exhausted())
	assert.Equal(t, IncompleteMessage, c.ErrorMessage())
}

func TestController_ResetHappyPath(t *testing.T) {
	c := NewController(completeProfile())

	f, ok := c.BeginReset()
	require.True(t, ok)
	assert.Nil(t, f.Cursor, "reset fetch requests the first page")
	assert.True(t, c.Loading())

	items := page(1, 20)
	items[19] = contract.ProgramSummary{ProgramID: 999, Distance: 1.2}
	require.True(t, c.Apply(f, items, nil))

	assert.Equal(t, PhaseReady, c.Phase())
	assert.False(t, c.Loading())
	assert.Len(t, c.Items(), 20)

	// Continuation must be parameterized with the last item's id+distance.
	more, ok := c.BeginMore()
	require.True(t, ok)
	require.NotNil(t, more.Cursor)
	assert.Equal(t, 999, more.Cursor.LastProgramID)
	assert.Equal(t, 1.2, more.Cursor.LastDistance)
}

func TestController_EmptyFirstPage(t *testing.T) {
	c := NewController(completeProfile())

	f, _ := c.BeginReset()
	require.True(t, c.Apply(f, nil, nil))

	assert.Equal(t, PhaseEmpty, c.Phase())
	assert.True(t, c.Exhausted())
	assert.Empty(t, c.Items())

	_, ok := c.BeginMore()
	assert.False(t, ok)
}

func TestController_ResetFailurePrefersServerMessage(t *testing.T) {
	c := NewController(completeProfile())

	f, _ := c.BeginReset()
	err := &api.StatusError{Code: 400, Message: "지원하지 않는 지역이에요."}
	require.True(t, c.Apply(f, nil, err))

	assert.Equal(t, PhaseErrored, c.Phase())
	assert.True(t, c.Exhausted())
	assert.Equal(t, "지원하지 않는 지역이에요.", c.ErrorMessage())
}

func TestController_ContinuationAppendsInOrder(t *testing.T) {
	c := NewController(completeProfile())

	f, _ := c.BeginReset()
	require.True(t, c.Apply(f, page(1, 20), nil))

	more, ok := c.BeginMore()
	require.True(t, ok)
	assert.True(t, c.LoadingMore())
	require.True(t, c.Apply(more, page(21, 20), nil))

	assert.Equal(t, PhaseReady, c.Phase())
	require.Len(t, c.Items(), 40)
	assert.Equal(t, 1, c.Items()[0].ProgramID)
	assert.Equal(t, 40, c.Items()[39].ProgramID)
}

func TestController_EmptyContinuationExhausts(t *testing.T) {
	c := NewController(completeProfile())

	f, _ := c.BeginReset()
	require.True(t, c.Apply(f, page(1, 20), nil))

	more, _ := c.BeginMore()
	require.True(t, c.Apply(more, nil, nil))

	assert.Equal(t, PhaseReady, c.Phase())
	assert.True(t, c.Exhausted())
	assert.Len(t, c.Items(), 20)

	// No further fetch is issued on subsequent scroll triggers.
	_, ok := c.BeginMore()
	assert.False(t, ok)
}

func TestController_ContinuationFailureKeepsItems(t *testing.T) {
	c := NewController(completeProfile())

	f, _ := c.BeginReset()
	require.True(t, c.Apply(f, page(1, 20), nil))

	more, _ := c.BeginMore()
	require.True(t, c.Apply(more, nil, api.ErrTimeout))

	assert.Equal(t, PhaseReady, c.Phase())
	assert.Len(t, c.Items(), 20, "already-loaded items remain visible")
	assert.True(t, c.Exhausted())
	assert.NotEmpty(t, c.ErrorMessage())
}

func TestController_NoConcurrentFetches(t *testing.T) {
	c := NewController(completeProfile())

	f, _ := c.BeginReset()
	require.True(t, c.Apply(f, page(1, 20), nil))

	_, ok := c.BeginMore()
	require.True(t, ok)

	// A second scroll signal before the first resolves is deduplicated.
	_, ok = c.BeginMore()
	assert.False(t, ok)
}

func TestController_FilterChangeClearsBeforeNewFetchResolves(t *testing.T) {
	p := completeProfile()
	c := NewController(p)

	f, _ := c.BeginReset()
	require.True(t, c.Apply(f, page(1, 20), nil))
	require.Len(t, c.Items(), 20)

	p.SetWeekday([]string{"월", "수"})
	f2, ok := c.BeginReset()
	require.True(t, ok)

	// Items are gone while the new fetch is still pending.
	assert.Empty(t, c.Items())
	assert.True(t, c.Loading())
	assert.Equal(t, []string{"월", "수"}, f2.Request.Weekday)
}

func TestController_StaleContinuationDiscardedAfterReset(t *testing.T) {
	c := NewController(completeProfile())

	f, _ := c.BeginReset()
	require.True(t, c.Apply(f, page(1, 20), nil))

	// Continuation goes out...
	more, _ := c.BeginMore()

	// ...but a filter change supersedes it before it lands.
	reset, ok := c.BeginReset()
	require.True(t, ok)

	// The late continuation response must not repopulate the cleared list.
	assert.False(t, c.Apply(more, page(21, 20), nil))
	assert.Empty(t, c.Items())
	assert.True(t, c.Loading())

	// The superseding reset still applies normally.
	require.True(t, c.Apply(reset, page(100, 5), nil))
	assert.Equal(t, PhaseReady, c.Phase())
	assert.Len(t, c.Items(), 5)
	assert.Equal(t, 100, c.Items()[0].ProgramID)
}

func TestController_StaleResetDiscardedAfterNewerReset(t *testing.T) {
	c := NewController(completeProfile())

	first, _ := c.BeginReset()
	second, _ := c.BeginReset()

	assert.False(t, c.Apply(first, page(1, 20), nil))
	assert.Empty(t, c.Items())

	require.True(t, c.Apply(second, page(50, 3), nil))
	assert.Equal(t, 50, c.Items()[0].ProgramID)
}

func TestController_IncompleteResetCancelsInFlightFetch(t *testing.T) {
	p := completeProfile()
	c := NewController(p)

	f, _ := c.BeginReset()

	p.Reset()
	_, ok := c.BeginReset()
	require.False(t, ok)

	// The old fetch's arrival must not overwrite the errored state.
	assert.False(t, c.Apply(f, page(1, 20), nil))
	assert.Equal(t, PhaseErrored, c.Phase())
	assert.Equal(t, IncompleteMessage, c.ErrorMessage())
}

func TestController_DoubleApplyIgnored(t *testing.T) {
	c := NewController(completeProfile())

	f, _ := c.BeginReset()
	require.True(t, c.Apply(f, page(1, 20), nil))
	assert.False(t, c.Apply(f, page(1, 20), nil), "a settled fetch cannot apply twice")
	assert.Len(t, c.Items(), 20)
}
