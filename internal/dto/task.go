package dto

import "github.com/noah-isme/study-planner-api/internal/models"

// CreateTaskRequest is the body of POST /tasks. Owner and identity fields are never read from it.
type CreateTaskRequest struct {
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Completed   bool             `json:"completed"`
	Deadline    *models.DateTime `json:"deadline"`
	Priority    models.Priority  `json:"priority"`
}

// Build returns the task owned by ownerID.
func (r CreateTaskRequest) Build(ownerID string) *models.Task {
	return &models.Task{
		Record:      models.Record{UserID: ownerID},
		Title:       r.Title,
		Description: r.Description,
		Completed:   r.Completed,
		Deadline:    timePtr(r.Deadline),
		Priority:    r.Priority,
	}
}

// UpdateTaskRequest is a partial task update. Absent fields keep their stored value.
type UpdateTaskRequest struct {
	Title       models.Optional[string]          `json:"title"`
	Description models.Optional[string]          `json:"description"`
	Completed   models.Optional[bool]            `json:"completed"`
	Deadline    models.Optional[models.DateTime] `json:"deadline"`
	Priority    models.Optional[models.Priority] `json:"priority"`
	Version     *int                             `json:"version"`
}

// Apply merges the present fields into t.
func (r UpdateTaskRequest) Apply(t *models.Task) error {
	if err := setRequired("title", &t.Title, r.Title); err != nil {
		return err
	}
	setClearable(&t.Description, r.Description)
	if err := setRequired("completed", &t.Completed, r.Completed); err != nil {
		return err
	}
	setTime(&t.Deadline, r.Deadline)
	return setRequired("priority", &t.Priority, r.Priority)
}

// ExpectedVersion returns the version the client last read, if it sent one.
func (r UpdateTaskRequest) ExpectedVersion() *int { return r.Version }
