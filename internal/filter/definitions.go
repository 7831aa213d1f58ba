package filter

import (
	"time"

	"github.com/noah-isme/study-planner-api/internal/models"
)

// Tasks accepts no filters beyond the owner and lists in creation order.
func Tasks() Definition {
	return Definition{
		Order: []Order{{Field: "created_at"}, {Field: "id"}},
	}
}

// Events filters by start window, type, course and priority, earliest first.
func Events(loc *time.Location) Definition {
	return Definition{
		Location: loc,
		Rules: []Rule{
			{Param: "from", Field: "start_at", Kind: From},
			{Param: "to", Field: "start_at", Kind: To},
			{Param: "type", Field: "type", Kind: Exact, Allowed: models.EventTypes},
			{Param: "courseId", Field: "course_id", Kind: Contains},
			{Param: "priority", Field: "priority", Kind: Exact, Allowed: models.Priorities},
		},
		Order: []Order{{Field: "start_at"}, {Field: "id"}},
	}
}

// Assignments filters by status, course and due window. Undated assignments sort last.
func Assignments(loc *time.Location) Definition {
	return Definition{
		Location: loc,
		Rules: []Rule{
			{Param: "status", Field: "status", Kind: Exact, Allowed: models.AssignmentStatuses},
			{Param: "courseId", Field: "course_id", Kind: Contains},
			{Param: "due", Field: "due_at", Kind: DueWindow},
		},
		Order: []Order{{Field: "due_at", NullsLast: true}, {Field: "id"}},
	}
}
