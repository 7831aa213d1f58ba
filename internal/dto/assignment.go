package dto

import "github.com/noah-isme/study-planner-api/internal/models"

// CreateAssignmentRequest is the body of POST /assignments.
type CreateAssignmentRequest struct {
	Title       string                  `json:"title"`
	Description string                  `json:"description"`
	CourseID    string                  `json:"courseId"`
	DueAt       *models.DateTime        `json:"dueAt"`
	Status      models.AssignmentStatus `json:"status"`
	Priority    models.Priority         `json:"priority"`
}

// Build returns the assignment owned by ownerID.
func (r CreateAssignmentRequest) Build(ownerID string) *models.Assignment {
	return &models.Assignment{
		Record:      models.Record{UserID: ownerID},
		Title:       r.Title,
		Description: r.Description,
		CourseID:    r.CourseID,
		DueAt:       timePtr(r.DueAt),
		Status:      r.Status,
		Priority:    r.Priority,
	}
}

// UpdateAssignmentRequest is a partial assignment update.
type UpdateAssignmentRequest struct {
	Title       models.Optional[string]                  `json:"title"`
	Description models.Optional[string]                  `json:"description"`
	CourseID    models.Optional[string]                  `json:"courseId"`
	DueAt       models.Optional[models.DateTime]         `json:"dueAt"`
	Status      models.Optional[models.AssignmentStatus] `json:"status"`
	Priority    models.Optional[models.Priority]         `json:"priority"`
	Version     *int                                     `json:"version"`
}

// Apply merges the present fields into a. Status changes must follow the workflow.
func (r UpdateAssignmentRequest) Apply(a *models.Assignment) error {
	if err := setRequired("title", &a.Title, r.Title); err != nil {
		return err
	}
	setClearable(&a.Description, r.Description)
	setClearable(&a.CourseID, r.CourseID)
	setTime(&a.DueAt, r.DueAt)
	if r.Status.Present() && models.Contains(models.AssignmentStatuses, string(r.Status.Value)) {
		if err := models.CheckTransition(a.Status, r.Status.Value); err != nil {
			return err
		}
	}
	if err := setRequired("status", &a.Status, r.Status); err != nil {
		return err
	}
	return setRequired("priority", &a.Priority, r.Priority)
}

// ExpectedVersion returns the version the client last read, if it sent one.
func (r UpdateAssignmentRequest) ExpectedVersion() *int { return r.Version }
