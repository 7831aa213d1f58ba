package service

import (
	"strings"

	"github.com/google/uuid"

	"github.com/noah-isme/study-planner-api/internal/models"
	appErrors "github.com/noah-isme/study-planner-api/pkg/errors"
)

// NormalizeOwnerID returns the canonical string form of a user identity. UUIDs are
// rendered lower-case and hyphenated however they were written.
func NormalizeOwnerID(id string) string {
	id = strings.TrimSpace(id)
	if parsed, err := uuid.Parse(id); err == nil {
		return parsed.String()
	}
	return id
}

// SameOwner compares two identities in canonical form. Empty identities never match.
func SameOwner(a, b string) bool {
	a, b = NormalizeOwnerID(a), NormalizeOwnerID(b)
	return a != "" && a == b
}

// AuthorizeOwner allows access only when callerID owns record.
func AuthorizeOwner(record models.Owned, callerID string) error {
	if !SameOwner(record.OwnerID(), callerID) {
		return appErrors.ErrForbidden
	}
	return nil
}
