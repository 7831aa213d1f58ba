package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionalTracksPresence(t *testing.T) {
	var payload struct {
		Title    Optional[string]   `json:"title"`
		Notes    Optional[string]   `json:"notes"`
		Deadline Optional[DateTime] `json:"deadline"`
		Done     Optional[bool]     `json:"completed"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"notes":"","deadline":null,"completed":false}`), &payload))

	assert.False(t, payload.Title.Set)
	assert.True(t, payload.Notes.Present())
	assert.Equal(t, "", payload.Notes.Value)
	assert.True(t, payload.Deadline.Set)
	assert.True(t, payload.Deadline.Null)
	assert.True(t, payload.Done.Present())
	assert.False(t, payload.Done.Value)
}

func TestDateTimeAcceptsBrowserFormats(t *testing.T) {
	cases := map[string]time.Time{
		`"2025-09-01T10:00:00Z"`:      time.Date(2025, 9, 1, 10, 0, 0, 0, time.UTC),
		`"2025-09-01T12:00:00+02:00"`: time.Date(2025, 9, 1, 10, 0, 0, 0, time.UTC),
		`"2025-09-01T10:00"`:          time.Date(2025, 9, 1, 10, 0, 0, 0, time.UTC),
		`"2025-12-31"`:                time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC),
	}
	for raw, want := range cases {
		var d DateTime
		require.NoError(t, json.Unmarshal([]byte(raw), &d), raw)
		assert.True(t, want.Equal(d.Time()), raw)
	}

	var d DateTime
	require.Error(t, json.Unmarshal([]byte(`"next tuesday"`), &d))
	require.Error(t, json.Unmarshal([]byte(`12`), &d))
}

func TestEventNormalizeCollapsesRecurrence(t *testing.T) {
	end := time.Now().Add(30 * 24 * time.Hour)
	e := &Event{
		Title:             "  Lecture  ",
		IsRecurring:       false,
		RecurrencePattern: RecurrencePattern{Frequency: FrequencyWeekly, Interval: 2, EndDate: &end},
	}
	e.Normalize()

	assert.Equal(t, "Lecture", e.Title)
	assert.Equal(t, EventTypeOther, e.Type)
	assert.Equal(t, PriorityMedium, e.Priority)
	assert.Equal(t, NoRecurrence(), e.RecurrencePattern)
}

func TestEventInvariants(t *testing.T) {
	start := time.Date(2025, 8, 21, 15, 0, 0, 0, time.UTC)

	e := &Event{StartAt: start, EndAt: start.Add(-2 * time.Hour)}
	assert.ErrorIs(t, e.CheckInvariants(), ErrEventEndBeforeStart)

	e.EndAt = start
	assert.ErrorIs(t, e.CheckInvariants(), ErrEventEndBeforeStart)

	e.EndAt = start.Add(time.Hour)
	assert.NoError(t, e.CheckInvariants())

	e.IsRecurring = true
	e.RecurrencePattern = RecurrencePattern{Frequency: FrequencyWeekly, Interval: 1}
	assert.ErrorIs(t, e.CheckInvariants(), ErrRecurrenceEndRequired)

	before := start.Add(-time.Hour)
	e.RecurrencePattern.EndDate = &before
	assert.ErrorIs(t, e.CheckInvariants(), ErrRecurrenceEndBeforeStart)

	after := start.Add(7 * 24 * time.Hour)
	e.RecurrencePattern.EndDate = &after
	assert.NoError(t, e.CheckInvariants())

	e.RecurrencePattern.Frequency = FrequencyNone
	assert.ErrorIs(t, e.CheckInvariants(), ErrRecurrenceFrequency)
}

func TestCheckTransition(t *testing.T) {
	assert.NoError(t, CheckTransition(StatusTodo, StatusInProgress))
	assert.NoError(t, CheckTransition(StatusSubmitted, StatusGraded))
	assert.NoError(t, CheckTransition(StatusGraded, StatusGraded))
	assert.Error(t, CheckTransition(StatusTodo, StatusGraded))
	assert.Error(t, CheckTransition(StatusGraded, StatusTodo))

	var transitionErr *StatusTransitionError
	require.ErrorAs(t, CheckTransition(StatusInProgress, StatusGraded), &transitionErr)
	assert.Equal(t, StatusGraded, transitionErr.To)
}

func TestRecordJSONUsesFrontendNames(t *testing.T) {
	raw, err := json.Marshal(Task{Record: Record{ID: "t1", UserID: "u1", Version: 1}, Title: "Read"})
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"_id":"t1"`)
	assert.Contains(t, string(raw), `"userId":"u1"`)
}

func TestDateTimeReadsOffsetlessInInputLocation(t *testing.T) {
	SetInputLocation(time.FixedZone("WIB", 7*3600))
	t.Cleanup(func() { SetInputLocation(nil) })

	var local, zoned DateTime
	require.NoError(t, json.Unmarshal([]byte(`"2025-09-10T23:30"`), &local))
	require.NoError(t, json.Unmarshal([]byte(`"2025-09-10T23:30:00Z"`), &zoned))

	assert.True(t, local.Time().Equal(time.Date(2025, 9, 10, 16, 30, 0, 0, time.UTC)))
	assert.True(t, zoned.Time().Equal(time.Date(2025, 9, 10, 23, 30, 0, 0, time.UTC)))
}

func TestFlexIntAcceptsNumbersAndNumericStrings(t *testing.T) {
	var payload struct {
		A FlexInt `json:"a"`
		B FlexInt `json:"b"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"a":2,"b":" 14 "}`), &payload))
	assert.Equal(t, 2, payload.A.Int())
	assert.Equal(t, 14, payload.B.Int())

	var n FlexInt
	assert.EqualError(t, json.Unmarshal([]byte(`"abc"`), &n), `must be an integer, got "abc"`)
	assert.Error(t, json.Unmarshal([]byte(`true`), &n))
	assert.Error(t, json.Unmarshal([]byte(`1.5`), &n))
}

