package repository

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/study-planner-api/internal/filter"
	"github.com/noah-isme/study-planner-api/internal/models"
)

var assignmentTable = table{
	name:    "assignments",
	columns: "id, user_id, title, description, course_id, due_at, status, priority, version, created_at, updated_at",
	insert: `INSERT INTO assignments (id, user_id, title, description, course_id, due_at, status, priority, version, created_at, updated_at)
VALUES (:id, :user_id, :title, :description, :course_id, :due_at, :status, :priority, :version, :created_at, :updated_at)`,
	update: `UPDATE assignments SET title = :title, description = :description, course_id = :course_id, due_at = :due_at,
status = :status, priority = :priority, version = version + 1, updated_at = :updated_at
WHERE id = :id AND version = :version`,
}

// AssignmentRepository persists assignments.
type AssignmentRepository struct {
	db *sqlx.DB
}

// NewAssignmentRepository constructs an assignment repository.
func NewAssignmentRepository(db *sqlx.DB) *AssignmentRepository {
	return &AssignmentRepository{db: db}
}

// List returns assignments matching q.
func (r *AssignmentRepository) List(ctx context.Context, q filter.Query) ([]models.Assignment, error) {
	return selectRecords[models.Assignment](ctx, r.db, assignmentTable, q)
}

// FindByID fetches an assignment.
func (r *AssignmentRepository) FindByID(ctx context.Context, id string) (*models.Assignment, error) {
	return getRecord[models.Assignment](ctx, r.db, assignmentTable, id)
}

// Create inserts an assignment.
func (r *AssignmentRepository) Create(ctx context.Context, assignment *models.Assignment) error {
	stampNew(&assignment.Record)
	return insertRecord(ctx, r.db, assignmentTable, assignment)
}

// Update modifies an assignment, failing with ErrVersionConflict on a stale version.
func (r *AssignmentRepository) Update(ctx context.Context, assignment *models.Assignment) error {
	assignment.UpdatedAt = time.Now().UTC()
	if err := updateRecord(ctx, r.db, assignmentTable, assignment); err != nil {
		return err
	}
	assignment.Version++
	return nil
}

// Delete removes an assignment.
func (r *AssignmentRepository) Delete(ctx context.Context, id string) error {
	return deleteRecord(ctx, r.db, assignmentTable, id)
}
