package service

import (
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/study-planner-api/internal/dto"
	"github.com/noah-isme/study-planner-api/internal/filter"
	"github.com/noah-isme/study-planner-api/internal/models"
)

type (
	// TaskService manages tasks.
	TaskService = ResourceService[models.Task, dto.CreateTaskRequest, dto.UpdateTaskRequest]
	// EventService manages calendar events.
	EventService = ResourceService[models.Event, dto.CreateEventRequest, dto.UpdateEventRequest]
	// AssignmentService manages assignments.
	AssignmentService = ResourceService[models.Assignment, dto.CreateAssignmentRequest, dto.UpdateAssignmentRequest]
)

// NewTaskService wires the task resource.
func NewTaskService(store recordStore[models.Task], validate *validator.Validate, logger *zap.Logger, metrics mutationRecorder) *TaskService {
	spec := ResourceSpec[models.Task]{
		Name:      "Task",
		Filter:    filter.Tasks(),
		Normalize: (*models.Task).Normalize,
	}
	return NewResourceService[models.Task, dto.CreateTaskRequest, dto.UpdateTaskRequest](spec, store, validate, logger, metrics)
}

// NewEventService wires the event resource. loc anchors date-only filter values.
func NewEventService(store recordStore[models.Event], loc *time.Location, validate *validator.Validate, logger *zap.Logger, metrics mutationRecorder) *EventService {
	spec := ResourceSpec[models.Event]{
		Name:      "Event",
		Filter:    filter.Events(loc),
		Normalize: (*models.Event).Normalize,
		Check:     (*models.Event).CheckInvariants,
	}
	return NewResourceService[models.Event, dto.CreateEventRequest, dto.UpdateEventRequest](spec, store, validate, logger, metrics)
}

// NewAssignmentService wires the assignment resource. loc defines day boundaries for due windows.
func NewAssignmentService(store recordStore[models.Assignment], loc *time.Location, validate *validator.Validate, logger *zap.Logger, metrics mutationRecorder) *AssignmentService {
	spec := ResourceSpec[models.Assignment]{
		Name:      "Assignment",
		Filter:    filter.Assignments(loc),
		Normalize: (*models.Assignment).Normalize,
	}
	return NewResourceService[models.Assignment, dto.CreateAssignmentRequest, dto.UpdateAssignmentRequest](spec, store, validate, logger, metrics)
}
