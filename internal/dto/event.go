package dto

import "github.com/noah-isme/study-planner-api/internal/models"

// RecurrenceRequest is the recurrence block of an event payload.
type RecurrenceRequest struct {
	Frequency models.Frequency `json:"frequency"`
	Interval  models.FlexInt   `json:"interval"`
	EndDate   *models.DateTime `json:"endDate"`
}

// CreateEventRequest is the body of POST /events.
type CreateEventRequest struct {
	Title             string             `json:"title"`
	Type              models.EventType   `json:"type"`
	StartAt           *models.DateTime   `json:"startAt"`
	EndAt             *models.DateTime   `json:"endAt"`
	CourseID          string             `json:"courseId"`
	Notes             string             `json:"notes"`
	Location          string             `json:"location"`
	Priority          models.Priority    `json:"priority"`
	IsRecurring       bool               `json:"isRecurring"`
	RecurrencePattern *RecurrenceRequest `json:"recurrencePattern"`
}

// Build returns the event owned by ownerID. Missing timestamps stay zero and fail validation.
func (r CreateEventRequest) Build(ownerID string) *models.Event {
	event := &models.Event{
		Record:      models.Record{UserID: ownerID},
		Title:       r.Title,
		Type:        r.Type,
		CourseID:    r.CourseID,
		Notes:       r.Notes,
		Location:    r.Location,
		Priority:    r.Priority,
		IsRecurring: r.IsRecurring,
	}
	if r.StartAt != nil {
		event.StartAt = r.StartAt.Time()
	}
	if r.EndAt != nil {
		event.EndAt = r.EndAt.Time()
	}
	if r.RecurrencePattern != nil {
		event.RecurrencePattern = models.RecurrencePattern{
			Frequency: r.RecurrencePattern.Frequency,
			Interval:  r.RecurrencePattern.Interval.Int(),
			EndDate:   timePtr(r.RecurrencePattern.EndDate),
		}
	}
	return event
}

// RecurrencePatch updates individual recurrence fields.
type RecurrencePatch struct {
	Frequency models.Optional[models.Frequency] `json:"frequency"`
	Interval  models.Optional[models.FlexInt]   `json:"interval"`
	EndDate   models.Optional[models.DateTime]  `json:"endDate"`
}

// UpdateEventRequest is a partial event update.
type UpdateEventRequest struct {
	Title             models.Optional[string]           `json:"title"`
	Type              models.Optional[models.EventType] `json:"type"`
	StartAt           models.Optional[models.DateTime]  `json:"startAt"`
	EndAt             models.Optional[models.DateTime]  `json:"endAt"`
	CourseID          models.Optional[string]           `json:"courseId"`
	Notes             models.Optional[string]           `json:"notes"`
	Location          models.Optional[string]           `json:"location"`
	Priority          models.Optional[models.Priority]  `json:"priority"`
	IsRecurring       models.Optional[bool]             `json:"isRecurring"`
	RecurrencePattern models.Optional[RecurrencePatch]  `json:"recurrencePattern"`
	Version           *int                              `json:"version"`
}

// Apply merges the present fields into e. A null recurrencePattern resets it to no recurrence.
func (r UpdateEventRequest) Apply(e *models.Event) error {
	if err := setRequired("title", &e.Title, r.Title); err != nil {
		return err
	}
	if err := setRequired("type", &e.Type, r.Type); err != nil {
		return err
	}
	if r.StartAt.Set {
		if r.StartAt.Null {
			return &FieldError{Field: "startAt", Message: "cannot be null"}
		}
		e.StartAt = r.StartAt.Value.Time()
	}
	if r.EndAt.Set {
		if r.EndAt.Null {
			return &FieldError{Field: "endAt", Message: "cannot be null"}
		}
		e.EndAt = r.EndAt.Value.Time()
	}
	if err := setRequired("courseId", &e.CourseID, r.CourseID); err != nil {
		return err
	}
	setClearable(&e.Notes, r.Notes)
	setClearable(&e.Location, r.Location)
	if err := setRequired("priority", &e.Priority, r.Priority); err != nil {
		return err
	}
	if err := setRequired("isRecurring", &e.IsRecurring, r.IsRecurring); err != nil {
		return err
	}

	switch {
	case !r.RecurrencePattern.Set:
	case r.RecurrencePattern.Null:
		e.RecurrencePattern = models.NoRecurrence()
	default:
		patch := r.RecurrencePattern.Value
		if err := setRequired("recurrencePattern.frequency", &e.RecurrencePattern.Frequency, patch.Frequency); err != nil {
			return err
		}
		if patch.Interval.Set {
			if patch.Interval.Null {
				return &FieldError{Field: "recurrencePattern.interval", Message: "cannot be null"}
			}
			e.RecurrencePattern.Interval = patch.Interval.Value.Int()
		}
		setTime(&e.RecurrencePattern.EndDate, patch.EndDate)
	}
	return nil
}

// ExpectedVersion returns the version the client last read, if it sent one.
func (r UpdateEventRequest) ExpectedVersion() *int { return r.Version }
