package models

// Priority is shared by tasks, events and assignments.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Priorities lists the accepted priority values.
var Priorities = []string{string(PriorityLow), string(PriorityMedium), string(PriorityHigh)}

// EventType classifies calendar events.
type EventType string

const (
	EventTypeLecture    EventType = "lecture"
	EventTypeExam       EventType = "exam"
	EventTypeMeeting    EventType = "meeting"
	EventTypeAssignment EventType = "assignment"
	EventTypeOther      EventType = "other"
)

// EventTypes lists the accepted event types.
var EventTypes = []string{
	string(EventTypeLecture),
	string(EventTypeExam),
	string(EventTypeMeeting),
	string(EventTypeAssignment),
	string(EventTypeOther),
}

// Frequency is the repeat cadence of a recurring event.
type Frequency string

const (
	FrequencyDaily   Frequency = "daily"
	FrequencyWeekly  Frequency = "weekly"
	FrequencyMonthly Frequency = "monthly"
	FrequencyNone    Frequency = "none"
)

// AssignmentStatus tracks progress on an assignment.
type AssignmentStatus string

const (
	StatusTodo       AssignmentStatus = "todo"
	StatusInProgress AssignmentStatus = "in-progress"
	StatusSubmitted  AssignmentStatus = "submitted"
	StatusGraded     AssignmentStatus = "graded"
)

// AssignmentStatuses lists the accepted statuses in workflow order.
var AssignmentStatuses = []string{
	string(StatusTodo),
	string(StatusInProgress),
	string(StatusSubmitted),
	string(StatusGraded),
}

// Contains reports whether value is one of values.
func Contains(values []string, value string) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}
	return false
}
