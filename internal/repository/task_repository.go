package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/study-planner-api/internal/filter"
	"github.com/noah-isme/study-planner-api/internal/models"
)

var taskTable = table{
	name:    "tasks",
	columns: "id, user_id, title, description, completed, deadline, priority, version, created_at, updated_at",
	insert: `INSERT INTO tasks (id, user_id, title, description, completed, deadline, priority, version, created_at, updated_at)
VALUES (:id, :user_id, :title, :description, :completed, :deadline, :priority, :version, :created_at, :updated_at)`,
	update: `UPDATE tasks SET title = :title, description = :description, completed = :completed, deadline = :deadline,
priority = :priority, version = version + 1, updated_at = :updated_at
WHERE id = :id AND version = :version`,
}

// TaskRepository persists tasks.
type TaskRepository struct {
	db *sqlx.DB
}

// NewTaskRepository constructs a task repository.
func NewTaskRepository(db *sqlx.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// List returns the tasks matching q.
func (r *TaskRepository) List(ctx context.Context, q filter.Query) ([]models.Task, error) {
	return selectRecords[models.Task](ctx, r.db, taskTable, q)
}

// FindByID returns a task or sql.ErrNoRows.
func (r *TaskRepository) FindByID(ctx context.Context, id string) (*models.Task, error) {
	return getRecord[models.Task](ctx, r.db, taskTable, id)
}

// Create inserts a task, assigning its id, version and timestamps.
func (r *TaskRepository) Create(ctx context.Context, task *models.Task) error {
	stampNew(&task.Record)
	return insertRecord(ctx, r.db, taskTable, task)
}

// Update saves task if its version still matches the stored one.
func (r *TaskRepository) Update(ctx context.Context, task *models.Task) error {
	task.UpdatedAt = time.Now().UTC()
	if err := updateRecord(ctx, r.db, taskTable, task); err != nil {
		return err
	}
	task.Version++
	return nil
}

// Delete removes a task. A missing row yields sql.ErrNoRows.
func (r *TaskRepository) Delete(ctx context.Context, id string) error {
	return deleteRecord(ctx, r.db, taskTable, id)
}

func stampNew(rec *models.Record) {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	rec.Version = 1
	rec.CreatedAt = now
	rec.UpdatedAt = now
}
