package handler

import (
	"strconv"
	"time"

	"github.com/noah-isme/study-planner-api/internal/dto"
	"github.com/noah-isme/study-planner-api/internal/models"
	"github.com/noah-isme/study-planner-api/internal/service"
)

type (
	// TaskHandler serves /tasks.
	TaskHandler = ResourceHandler[models.Task, dto.CreateTaskRequest, dto.UpdateTaskRequest]
	// EventHandler serves /events.
	EventHandler = ResourceHandler[models.Event, dto.CreateEventRequest, dto.UpdateEventRequest]
	// AssignmentHandler serves /assignments.
	AssignmentHandler = ResourceHandler[models.Assignment, dto.CreateAssignmentRequest, dto.UpdateAssignmentRequest]
)

const exportTimeLayout = "2006-01-02 15:04"

// NewTaskHandler constructs the task handler. Tasks have no export.
func NewTaskHandler(svc *service.TaskService) *TaskHandler {
	return NewResourceHandler[models.Task, dto.CreateTaskRequest, dto.UpdateTaskRequest](svc, nil)
}

// NewEventHandler constructs the event handler. Export times are rendered in loc.
func NewEventHandler(svc *service.EventService, loc *time.Location) *EventHandler {
	layout := &ExportLayout[models.Event]{
		Title:   "Events",
		Columns: []string{"Title", "Type", "Course", "Start", "End", "Location", "Priority", "Repeats", "Notes"},
		Row: func(e models.Event) []string {
			repeats := "-"
			if e.IsRecurring {
				repeats = string(e.RecurrencePattern.Frequency)
				if e.RecurrencePattern.Interval > 1 {
					repeats += " x" + strconv.Itoa(e.RecurrencePattern.Interval)
				}
				if e.RecurrencePattern.EndDate != nil {
					repeats += " until " + e.RecurrencePattern.EndDate.In(loc).Format("2006-01-02")
				}
			}
			return []string{
				e.Title,
				string(e.Type),
				e.CourseID,
				e.StartAt.In(loc).Format(exportTimeLayout),
				e.EndAt.In(loc).Format(exportTimeLayout),
				e.Location,
				string(e.Priority),
				repeats,
				e.Notes,
			}
		},
	}
	return NewResourceHandler[models.Event, dto.CreateEventRequest, dto.UpdateEventRequest](svc, layout)
}

// NewAssignmentHandler constructs the assignment handler.
func NewAssignmentHandler(svc *service.AssignmentService, loc *time.Location) *AssignmentHandler {
	layout := &ExportLayout[models.Assignment]{
		Title:   "Assignments",
		Columns: []string{"Title", "Course", "Due", "Status", "Priority", "Description"},
		Row: func(a models.Assignment) []string {
			due := "-"
			if a.DueAt != nil {
				due = a.DueAt.In(loc).Format(exportTimeLayout)
			}
			return []string{a.Title, a.CourseID, due, string(a.Status), string(a.Priority), a.Description}
		},
	}
	return NewResourceHandler[models.Assignment, dto.CreateAssignmentRequest, dto.UpdateAssignmentRequest](svc, layout)
}
