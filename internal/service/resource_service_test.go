package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/study-planner-api/internal/dto"
	"github.com/noah-isme/study-planner-api/internal/filter"
	"github.com/noah-isme/study-planner-api/internal/models"
	"github.com/noah-isme/study-planner-api/internal/repository"
	appErrors "github.com/noah-isme/study-planner-api/pkg/errors"
)

const (
	userA = "6f1c2a9e-3b7d-4c1a-9e55-0a1b2c3d4e5f"
	userB = "a0b1c2d3-e4f5-4a6b-8c7d-9e0f1a2b3c4d"
)

type memoryStore[R models.Owned] struct {
	records   map[string]R
	order     []string
	setMeta   func(record *R, id string, version int)
	match     func(record R, cond filter.Condition) bool
	lastQuery filter.Query
	createErr error
	updateErr error
	updates   int
	deletes   int
	seq       int
}

func newMemoryStore[R models.Owned](setMeta func(*R, string, int)) *memoryStore[R] {
	return &memoryStore[R]{records: map[string]R{}, setMeta: setMeta}
}

func (m *memoryStore[R]) List(ctx context.Context, q filter.Query) ([]R, error) {
	m.lastQuery = q
	out := []R{}
	for _, id := range m.order {
		record, ok := m.records[id]
		if !ok || record.OwnerID() != q.Owner {
			continue
		}
		matched := true
		for _, cond := range q.Conditions {
			if m.match == nil || !m.match(record, cond) {
				matched = false
				break
			}
		}
		if matched {
			out = append(out, record)
		}
	}
	return out, nil
}

func (m *memoryStore[R]) FindByID(ctx context.Context, id string) (*R, error) {
	record, ok := m.records[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return &record, nil
}

func (m *memoryStore[R]) Create(ctx context.Context, record *R) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.seq++
	id := fmt.Sprintf("rec-%d", m.seq)
	m.setMeta(record, id, 1)
	m.records[id] = *record
	m.order = append(m.order, id)
	return nil
}

func (m *memoryStore[R]) Update(ctx context.Context, record *R) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	stored, ok := m.records[(*record).RecordID()]
	if !ok || stored.RecordVersion() != (*record).RecordVersion() {
		return repository.ErrVersionConflict
	}
	m.updates++
	m.setMeta(record, (*record).RecordID(), (*record).RecordVersion()+1)
	m.records[(*record).RecordID()] = *record
	return nil
}

func (m *memoryStore[R]) Delete(ctx context.Context, id string) error {
	if _, ok := m.records[id]; !ok {
		return sql.ErrNoRows
	}
	m.deletes++
	delete(m.records, id)
	return nil
}

type countingRecorder struct {
	counts map[string]int
}

func (c *countingRecorder) RecordMutation(resource, action string) {
	if c.counts == nil {
		c.counts = map[string]int{}
	}
	c.counts[resource+":"+action]++
}

func eventStore() *memoryStore[models.Event] {
	return newMemoryStore(func(e *models.Event, id string, version int) {
		e.ID = id
		e.Version = version
	})
}

func assignmentStore() *memoryStore[models.Assignment] {
	store := newMemoryStore(func(a *models.Assignment, id string, version int) {
		a.ID = id
		a.Version = version
	})
	store.match = func(a models.Assignment, cond filter.Condition) bool {
		switch cond.Field {
		case "status":
			return string(a.Status) == cond.Value
		case "due_at":
			if a.DueAt == nil {
				return false
			}
			bound := cond.Value.(time.Time)
			switch cond.Op {
			case filter.OpLT:
				return a.DueAt.Before(bound)
			case filter.OpGTE:
				return !a.DueAt.Before(bound)
			}
		}
		return false
	}
	return store
}

func decodeInto[T any](t *testing.T, body string) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal([]byte(body), &v))
	return v
}

func statusOf(err error) int {
	return appErrors.FromError(err).Status
}

func createEvent(t *testing.T, svc *EventService, caller string) *models.Event {
	t.Helper()
	event, err := svc.Create(context.Background(), caller, decodeInto[dto.CreateEventRequest](t, `{
		"title":"Algorithms","type":"lecture","courseId":"CS201",
		"startAt":"2025-09-01T09:00:00Z","endAt":"2025-09-01T10:30:00Z","notes":"bring laptop"
	}`))
	require.NoError(t, err)
	return event
}

func TestCreateStampsOwnerFromCaller(t *testing.T) {
	svc := NewEventService(eventStore(), time.UTC, nil, nil, nil)

	event, err := svc.Create(context.Background(), userA, decodeInto[dto.CreateEventRequest](t, `{
		"title":"Exam","userId":"`+userB+`","courseId":"CS1",
		"startAt":"2025-09-01T09:00:00Z","endAt":"2025-09-01T10:00:00Z"
	}`))
	require.NoError(t, err)
	assert.Equal(t, userA, event.UserID)
	assert.Equal(t, models.EventTypeOther, event.Type)
	assert.Equal(t, models.PriorityMedium, event.Priority)
	assert.Equal(t, models.NoRecurrence(), event.RecurrencePattern)
}

func TestCreateEventRejectsEndBeforeStart(t *testing.T) {
	store := eventStore()
	svc := NewEventService(store, time.UTC, nil, nil, nil)

	for _, end := range []string{"2025-09-01T09:00:00Z", "2025-09-01T08:00:00Z"} {
		_, err := svc.Create(context.Background(), userA, decodeInto[dto.CreateEventRequest](t, `{
			"title":"Exam","courseId":"CS1","startAt":"2025-09-01T09:00:00Z","endAt":"`+end+`"
		}`))
		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, statusOf(err))
		assert.Equal(t, models.ErrEventEndBeforeStart.Error(), appErrors.FromError(err).Message)
	}
	assert.Empty(t, store.records)
}

func TestCreateReportsFieldConstraint(t *testing.T) {
	svc := NewEventService(eventStore(), time.UTC, nil, nil, nil)

	_, err := svc.Create(context.Background(), userA, decodeInto[dto.CreateEventRequest](t, `{
		"title":"Exam","startAt":"2025-09-01T09:00:00Z","endAt":"2025-09-01T10:00:00Z"
	}`))
	require.Error(t, err)
	assert.Equal(t, "courseId is required", appErrors.FromError(err).Message)

	_, err = svc.Create(context.Background(), userA, decodeInto[dto.CreateEventRequest](t, `{
		"title":"Exam","type":"party","courseId":"CS1","startAt":"2025-09-01T09:00:00Z","endAt":"2025-09-01T10:00:00Z"
	}`))
	require.Error(t, err)
	assert.Contains(t, appErrors.FromError(err).Message, "type must be one of")
}

func TestCreateRecurringEventNeedsEndDate(t *testing.T) {
	svc := NewEventService(eventStore(), time.UTC, nil, nil, nil)

	_, err := svc.Create(context.Background(), userA, decodeInto[dto.CreateEventRequest](t, `{
		"title":"Lecture","courseId":"CS1","startAt":"2025-09-01T09:00:00Z","endAt":"2025-09-01T10:00:00Z",
		"isRecurring":true,"recurrencePattern":{"frequency":"weekly","interval":1}
	}`))
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrRecurrenceEndRequired)
}

func TestCreateThenGetRoundTrips(t *testing.T) {
	svc := NewEventService(eventStore(), time.UTC, nil, nil, nil)
	created := createEvent(t, svc, userA)

	fetched, err := svc.Get(context.Background(), userA, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, fetched)
}

func TestUpdateByNonOwnerIsForbidden(t *testing.T) {
	store := eventStore()
	svc := NewEventService(store, time.UTC, nil, nil, nil)
	created := createEvent(t, svc, userA)

	_, err := svc.Update(context.Background(), userB, created.ID, decodeInto[dto.UpdateEventRequest](t, `{"title":"Hijacked"}`))
	require.Error(t, err)
	assert.Equal(t, http.StatusForbidden, statusOf(err))
	assert.Equal(t, "Not authorized to update this event", appErrors.FromError(err).Message)
	assert.Equal(t, 0, store.updates)
	assert.Equal(t, "Algorithms", store.records[created.ID].Title)
}

func TestDeleteByNonOwnerIsForbidden(t *testing.T) {
	store := eventStore()
	svc := NewEventService(store, time.UTC, nil, nil, nil)
	created := createEvent(t, svc, userA)

	err := svc.Delete(context.Background(), userB, created.ID)
	require.Error(t, err)
	assert.Equal(t, http.StatusForbidden, statusOf(err))
	assert.Equal(t, 0, store.deletes)
	assert.Contains(t, store.records, created.ID)
}

func TestUpdatePartialMerge(t *testing.T) {
	svc := NewEventService(eventStore(), time.UTC, nil, nil, nil)
	created := createEvent(t, svc, userA)
	before := *created

	updated, err := svc.Update(context.Background(), userA, created.ID, decodeInto[dto.UpdateEventRequest](t, `{"location":"Hall B"}`))
	require.NoError(t, err)

	assert.Equal(t, "Hall B", updated.Location)
	assert.Equal(t, before.Title, updated.Title)
	assert.Equal(t, before.Notes, updated.Notes)
	assert.Equal(t, before.StartAt, updated.StartAt)
	assert.Equal(t, before.EndAt, updated.EndAt)
	assert.Equal(t, before.CourseID, updated.CourseID)
	assert.Equal(t, before.Version+1, updated.Version)
}

func TestUpdateCanClearWithFalsyValues(t *testing.T) {
	svc := NewEventService(eventStore(), time.UTC, nil, nil, nil)
	created := createEvent(t, svc, userA)

	updated, err := svc.Update(context.Background(), userA, created.ID, decodeInto[dto.UpdateEventRequest](t, `{"notes":""}`))
	require.NoError(t, err)
	assert.Equal(t, "", updated.Notes)
}

func TestUpdateRevalidatesInvariants(t *testing.T) {
	store := eventStore()
	svc := NewEventService(store, time.UTC, nil, nil, nil)
	created := createEvent(t, svc, userA)

	_, err := svc.Update(context.Background(), userA, created.ID, decodeInto[dto.UpdateEventRequest](t, `{"endAt":"2025-09-01T08:00:00Z"}`))
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, statusOf(err))
	assert.Equal(t, created.EndAt, store.records[created.ID].EndAt)
}

func TestUpdateStaleVersionConflicts(t *testing.T) {
	store := eventStore()
	svc := NewEventService(store, time.UTC, nil, nil, nil)
	created := createEvent(t, svc, userA)

	_, err := svc.Update(context.Background(), userA, created.ID, decodeInto[dto.UpdateEventRequest](t, `{"title":"Renamed","version":7}`))
	require.Error(t, err)
	assert.Equal(t, http.StatusConflict, statusOf(err))
	assert.Equal(t, "Algorithms", store.records[created.ID].Title)

	store.updateErr = repository.ErrVersionConflict
	_, err = svc.Update(context.Background(), userA, created.ID, decodeInto[dto.UpdateEventRequest](t, `{"title":"Renamed"}`))
	assert.Equal(t, http.StatusConflict, statusOf(err))
}

func TestMissingRecordIsNotFound(t *testing.T) {
	svc := NewEventService(eventStore(), time.UTC, nil, nil, nil)

	err := svc.Delete(context.Background(), userA, "does-not-exist")
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, statusOf(err))
	assert.Equal(t, "Event not found", appErrors.FromError(err).Message)

	_, err = svc.Update(context.Background(), userA, "does-not-exist", dto.UpdateEventRequest{})
	assert.Equal(t, http.StatusNotFound, statusOf(err))
}

func TestDeleteTwiceIsNotFound(t *testing.T) {
	svc := NewEventService(eventStore(), time.UTC, nil, nil, nil)
	created := createEvent(t, svc, userA)

	require.NoError(t, svc.Delete(context.Background(), userA, created.ID))
	err := svc.Delete(context.Background(), userA, created.ID)
	assert.Equal(t, http.StatusNotFound, statusOf(err))
}

func TestOwnerComparisonIsCanonical(t *testing.T) {
	svc := NewEventService(eventStore(), time.UTC, nil, nil, nil)
	created := createEvent(t, svc, userA)

	upper := "6F1C2A9E-3B7D-4C1A-9E55-0A1B2C3D4E5F"
	_, err := svc.Get(context.Background(), upper, created.ID)
	assert.NoError(t, err)
}

func TestListScopesToCaller(t *testing.T) {
	store := assignmentStore()
	svc := NewAssignmentService(store, time.UTC, nil, nil, nil)
	tomorrow := time.Now().UTC().Add(24 * time.Hour).Format(time.RFC3339)

	lab, err := svc.Create(context.Background(), userA, decodeInto[dto.CreateAssignmentRequest](t,
		`{"title":"Lab 1","courseId":"CS101","dueAt":"`+tomorrow+`","status":"todo"}`))
	require.NoError(t, err)

	mine, err := svc.List(context.Background(), userA, url.Values{})
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, lab.ID, mine[0].ID)

	theirs, err := svc.List(context.Background(), userB, url.Values{})
	require.NoError(t, err)
	assert.Empty(t, theirs)
	assert.Equal(t, userB, store.lastQuery.Owner)
}

func TestListOverdueAssignments(t *testing.T) {
	store := assignmentStore()
	svc := NewAssignmentService(store, time.UTC, nil, nil, nil)
	now := time.Date(2025, 9, 3, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	create := func(owner, title string, due *time.Time) *models.Assignment {
		req := dto.CreateAssignmentRequest{Title: title}
		if due != nil {
			d := models.NewDateTime(*due)
			req.DueAt = &d
		}
		a, err := svc.Create(context.Background(), owner, req)
		require.NoError(t, err)
		return a
	}
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)
	overdue := create(userA, "late essay", &past)
	create(userA, "upcoming quiz", &future)
	create(userA, "someday", nil)
	create(userB, "other's late essay", &past)

	items, err := svc.List(context.Background(), userA, url.Values{"due": {"overdue"}})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, overdue.ID, items[0].ID)
}

func TestListRejectsMalformedFilter(t *testing.T) {
	svc := NewEventService(eventStore(), time.UTC, nil, nil, nil)

	_, err := svc.List(context.Background(), userA, url.Values{"from": {"not-a-date"}})
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, statusOf(err))
}

func TestListRequiresCaller(t *testing.T) {
	svc := NewTaskService(newMemoryStore(func(task *models.Task, id string, version int) {
		task.ID = id
		task.Version = version
	}), nil, nil, nil)

	_, err := svc.List(context.Background(), "  ", url.Values{})
	assert.Equal(t, http.StatusUnauthorized, statusOf(err))
}

func TestAssignmentStatusWorkflow(t *testing.T) {
	svc := NewAssignmentService(assignmentStore(), time.UTC, nil, nil, nil)
	a, err := svc.Create(context.Background(), userA, dto.CreateAssignmentRequest{Title: "Lab 1"})
	require.NoError(t, err)
	assert.Equal(t, models.StatusTodo, a.Status)

	_, err = svc.Update(context.Background(), userA, a.ID, decodeInto[dto.UpdateAssignmentRequest](t, `{"status":"graded"}`))
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, statusOf(err))

	for _, status := range []string{"in-progress", "submitted", "graded"} {
		a, err = svc.Update(context.Background(), userA, a.ID, decodeInto[dto.UpdateAssignmentRequest](t, `{"status":"`+status+`"}`))
		require.NoError(t, err)
	}
	assert.Equal(t, models.StatusGraded, a.Status)
}

func TestTaskUpdateAndMetrics(t *testing.T) {
	recorder := &countingRecorder{}
	svc := NewTaskService(newMemoryStore(func(task *models.Task, id string, version int) {
		task.ID = id
		task.Version = version
	}), nil, nil, recorder)

	task, err := svc.Create(context.Background(), userA, dto.CreateTaskRequest{Title: "  Read chapter 3  "})
	require.NoError(t, err)
	assert.Equal(t, "Read chapter 3", task.Title)
	assert.False(t, task.Completed)

	task, err = svc.Update(context.Background(), userA, task.ID, decodeInto[dto.UpdateTaskRequest](t, `{"completed":true}`))
	require.NoError(t, err)
	assert.True(t, task.Completed)
	assert.Equal(t, "Read chapter 3", task.Title)

	require.NoError(t, svc.Delete(context.Background(), userA, task.ID))
	assert.Equal(t, map[string]int{"task:create": 1, "task:update": 1, "task:delete": 1}, recorder.counts)
}

func TestStoreFailureIsInternal(t *testing.T) {
	store := eventStore()
	store.createErr = errors.New("connection reset")
	svc := NewEventService(store, time.UTC, nil, nil, nil)

	_, err := svc.Create(context.Background(), userA, decodeInto[dto.CreateEventRequest](t, `{
		"title":"Exam","courseId":"CS1","startAt":"2025-09-01T09:00:00Z","endAt":"2025-09-01T10:00:00Z"
	}`))
	require.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, statusOf(err))
	assert.Equal(t, "failed to create event", appErrors.FromError(err).Message)
}

func TestMalformedIDIsNotFoundAgainstPostgres(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()
	svc := NewEventService(repository.NewEventRepository(sqlx.NewDb(db, "sqlmock")), time.UTC, nil, nil, nil)

	malformed := &pq.Error{Code: "22P02", Message: `invalid input syntax for type uuid: "nope"`}
	for i := 0; i < 3; i++ {
		mock.ExpectQuery("FROM events WHERE id").WithArgs("nope").WillReturnError(malformed)
	}

	_, err = svc.Get(context.Background(), userA, "nope")
	assert.Equal(t, http.StatusNotFound, statusOf(err))
	assert.Equal(t, "Event not found", appErrors.FromError(err).Message)

	_, err = svc.Update(context.Background(), userA, "nope", dto.UpdateEventRequest{})
	assert.Equal(t, http.StatusNotFound, statusOf(err))

	err = svc.Delete(context.Background(), userA, "nope")
	assert.Equal(t, http.StatusNotFound, statusOf(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCancelledStatementAfterDeadlineIsTimeout(t *testing.T) {
	store := eventStore()
	store.createErr = errors.New("pq: canceling statement due to user request")
	svc := NewEventService(store, time.UTC, nil, nil, nil)

	ctx, cancel := context.WithDeadline(context.Background(), time.Now().Add(-time.Second))
	defer cancel()

	_, err := svc.Create(ctx, userA, decodeInto[dto.CreateEventRequest](t, `{
		"title":"Exam","courseId":"CS1","startAt":"2025-09-01T09:00:00Z","endAt":"2025-09-01T10:00:00Z"
	}`))
	require.Error(t, err)
	assert.Equal(t, http.StatusServiceUnavailable, statusOf(err))
	assert.True(t, errors.Is(err, appErrors.ErrTimeout))
}
