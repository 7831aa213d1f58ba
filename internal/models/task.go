package models

import (
	"strings"
	"time"
)

// Task is a personal to-do item.
type Task struct {
	Record
	Title       string     `db:"title" json:"title" validate:"required,max=120"`
	Description string     `db:"description" json:"description" validate:"max=2000"`
	Completed   bool       `db:"completed" json:"completed"`
	Deadline    *time.Time `db:"deadline" json:"deadline"`
	Priority    Priority   `db:"priority" json:"priority" validate:"required,oneof=low medium high"`
}

// Normalize trims text fields and fills defaults.
func (t *Task) Normalize() {
	t.Title = strings.TrimSpace(t.Title)
	t.Description = strings.TrimSpace(t.Description)
	if t.Priority == "" {
		t.Priority = PriorityMedium
	}
}
