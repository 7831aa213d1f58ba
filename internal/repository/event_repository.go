package repository

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/study-planner-api/internal/filter"
	"github.com/noah-isme/study-planner-api/internal/models"
)

var eventTable = table{
	name: "events",
	columns: `id, user_id, title, type, start_at, end_at, course_id, notes, location, priority, is_recurring,
recurrence_frequency AS "recurrence.frequency", recurrence_interval AS "recurrence.interval",
recurrence_end_date AS "recurrence.end_date", version, created_at, updated_at`,
	insert: `INSERT INTO events (id, user_id, title, type, start_at, end_at, course_id, notes, location, priority, is_recurring,
recurrence_frequency, recurrence_interval, recurrence_end_date, version, created_at, updated_at)
VALUES (:id, :user_id, :title, :type, :start_at, :end_at, :course_id, :notes, :location, :priority, :is_recurring,
:recurrence.frequency, :recurrence.interval, :recurrence.end_date, :version, :created_at, :updated_at)`,
	update: `UPDATE events SET title = :title, type = :type, start_at = :start_at, end_at = :end_at, course_id = :course_id,
notes = :notes, location = :location, priority = :priority, is_recurring = :is_recurring,
recurrence_frequency = :recurrence.frequency, recurrence_interval = :recurrence.interval,
recurrence_end_date = :recurrence.end_date, version = version + 1, updated_at = :updated_at
WHERE id = :id AND version = :version`,
}

// EventRepository persists calendar events.
type EventRepository struct {
	db *sqlx.DB
}

// NewEventRepository constructs an event repository.
func NewEventRepository(db *sqlx.DB) *EventRepository {
	return &EventRepository{db: db}
}

// List returns events matching q.
func (r *EventRepository) List(ctx context.Context, q filter.Query) ([]models.Event, error) {
	return selectRecords[models.Event](ctx, r.db, eventTable, q)
}

// FindByID fetches an event.
func (r *EventRepository) FindByID(ctx context.Context, id string) (*models.Event, error) {
	return getRecord[models.Event](ctx, r.db, eventTable, id)
}

// Create inserts an event.
func (r *EventRepository) Create(ctx context.Context, event *models.Event) error {
	stampNew(&event.Record)
	return insertRecord(ctx, r.db, eventTable, event)
}

// Update modifies an event, failing with ErrVersionConflict on a stale version.
func (r *EventRepository) Update(ctx context.Context, event *models.Event) error {
	event.UpdatedAt = time.Now().UTC()
	if err := updateRecord(ctx, r.db, eventTable, event); err != nil {
		return err
	}
	event.Version++
	return nil
}

// Delete removes an event.
func (r *EventRepository) Delete(ctx context.Context, id string) error {
	return deleteRecord(ctx, r.db, eventTable, id)
}
