package models

import (
	"fmt"
	"strings"
	"time"
)

// Assignment is a piece of coursework with a due date and a workflow status.
type Assignment struct {
	Record
	Title       string           `db:"title" json:"title" validate:"required,max=120"`
	Description string           `db:"description" json:"description" validate:"max=2000"`
	CourseID    string           `db:"course_id" json:"courseId" validate:"max=50"`
	DueAt       *time.Time       `db:"due_at" json:"dueAt"`
	Status      AssignmentStatus `db:"status" json:"status" validate:"required,oneof=todo in-progress submitted graded"`
	Priority    Priority         `db:"priority" json:"priority" validate:"required,oneof=low medium high"`
}

// Normalize trims text fields and fills defaults.
func (a *Assignment) Normalize() {
	a.Title = strings.TrimSpace(a.Title)
	a.Description = strings.TrimSpace(a.Description)
	a.CourseID = strings.TrimSpace(a.CourseID)
	if a.Status == "" {
		a.Status = StatusTodo
	}
	if a.Priority == "" {
		a.Priority = PriorityMedium
	}
}

var statusTransitions = map[AssignmentStatus][]AssignmentStatus{
	StatusTodo:       {StatusInProgress, StatusSubmitted},
	StatusInProgress: {StatusTodo, StatusSubmitted},
	StatusSubmitted:  {StatusInProgress, StatusGraded},
	StatusGraded:     {},
}

// StatusTransitionError reports a move the workflow does not allow.
type StatusTransitionError struct {
	From AssignmentStatus
	To   AssignmentStatus
}

func (e *StatusTransitionError) Error() string {
	return fmt.Sprintf("cannot change status from %s to %s", e.From, e.To)
}

// CheckTransition validates a status change. Keeping the current status is always allowed.
func CheckTransition(from, to AssignmentStatus) error {
	if from == to {
		return nil
	}
	for _, next := range statusTransitions[from] {
		if next == to {
			return nil
		}
	}
	return &StatusTransitionError{From: from, To: to}
}
