package dto

import (
	"fmt"
	"time"

	"github.com/noah-isme/study-planner-api/internal/models"
)

// FieldError reports a patch field that cannot be applied.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Message)
}

// setRequired overwrites dst when o is present. Null is rejected because the field cannot be empty.
func setRequired[T any](field string, dst *T, o models.Optional[T]) error {
	if !o.Set {
		return nil
	}
	if o.Null {
		return &FieldError{Field: field, Message: "cannot be null"}
	}
	*dst = o.Value
	return nil
}

// setClearable overwrites dst when o is present. Null resets it to the zero value.
func setClearable[T any](dst *T, o models.Optional[T]) {
	if o.Set {
		*dst = o.Value
	}
}

// setTime overwrites a nullable timestamp. Null clears it.
func setTime(dst **time.Time, o models.Optional[models.DateTime]) {
	if !o.Set {
		return
	}
	if o.Null {
		*dst = nil
		return
	}
	*dst = o.Value.Ptr()
}

func timePtr(d *models.DateTime) *time.Time {
	if d == nil {
		return nil
	}
	return d.Ptr()
}
