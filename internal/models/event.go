package models

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrEventEndBeforeStart      = errors.New("End date must be after start date")
	ErrRecurrenceEndRequired    = errors.New("Recurrence end date is required for recurring events")
	ErrRecurrenceEndBeforeStart = errors.New("Recurrence end date must be after start date")
	ErrRecurrenceFrequency      = errors.New("Recurring events need a daily, weekly or monthly frequency")
)

// RecurrencePattern describes how an event repeats. Its columns are prefixed with recurrence_.
type RecurrencePattern struct {
	Frequency Frequency  `db:"frequency" json:"frequency" validate:"oneof=daily weekly monthly none"`
	Interval  int        `db:"interval" json:"interval" validate:"min=1"`
	EndDate   *time.Time `db:"end_date" json:"endDate"`
}

// NoRecurrence is the pattern every non-recurring event carries.
func NoRecurrence() RecurrencePattern {
	return RecurrencePattern{Frequency: FrequencyNone, Interval: 1}
}

// Event is a calendar entry such as a lecture or exam.
type Event struct {
	Record
	Title             string            `db:"title" json:"title" validate:"required,max=100"`
	Type              EventType         `db:"type" json:"type" validate:"required,oneof=lecture exam meeting assignment other"`
	StartAt           time.Time         `db:"start_at" json:"startAt" validate:"required"`
	EndAt             time.Time         `db:"end_at" json:"endAt" validate:"required"`
	CourseID          string            `db:"course_id" json:"courseId" validate:"required,max=50"`
	Notes             string            `db:"notes" json:"notes" validate:"max=500"`
	Location          string            `db:"location" json:"location" validate:"max=100"`
	Priority          Priority          `db:"priority" json:"priority" validate:"required,oneof=low medium high"`
	IsRecurring       bool              `db:"is_recurring" json:"isRecurring"`
	RecurrencePattern RecurrencePattern `db:"recurrence" json:"recurrencePattern"`
}

// Normalize trims text fields, fills defaults and collapses the pattern of non-recurring events.
func (e *Event) Normalize() {
	e.Title = strings.TrimSpace(e.Title)
	e.CourseID = strings.TrimSpace(e.CourseID)
	e.Notes = strings.TrimSpace(e.Notes)
	e.Location = strings.TrimSpace(e.Location)
	if e.Type == "" {
		e.Type = EventTypeOther
	}
	if e.Priority == "" {
		e.Priority = PriorityMedium
	}
	if !e.IsRecurring {
		e.RecurrencePattern = NoRecurrence()
		return
	}
	if e.RecurrencePattern.Interval == 0 {
		e.RecurrencePattern.Interval = 1
	}
}

// CheckInvariants enforces the cross-field rules field tags cannot express.
func (e *Event) CheckInvariants() error {
	if !e.EndAt.After(e.StartAt) {
		return ErrEventEndBeforeStart
	}
	if !e.IsRecurring {
		return nil
	}
	switch e.RecurrencePattern.Frequency {
	case FrequencyDaily, FrequencyWeekly, FrequencyMonthly:
	default:
		return ErrRecurrenceFrequency
	}
	if e.RecurrencePattern.EndDate == nil {
		return ErrRecurrenceEndRequired
	}
	if !e.RecurrencePattern.EndDate.After(e.StartAt) {
		return ErrRecurrenceEndBeforeStart
	}
	return nil
}
