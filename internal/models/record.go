package models

import "time"

// Owned is implemented by every record that belongs to exactly one user.
type Owned interface {
	RecordID() string
	OwnerID() string
	RecordVersion() int
}

// Record holds the columns shared by tasks, events and assignments.
type Record struct {
	ID        string    `db:"id" json:"_id"`
	UserID    string    `db:"user_id" json:"userId"`
	Version   int       `db:"version" json:"version"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}

// RecordID returns the server-generated identifier.
func (r Record) RecordID() string { return r.ID }

// OwnerID returns the owning user's identifier.
func (r Record) OwnerID() string { return r.UserID }

// RecordVersion returns the optimistic concurrency counter.
func (r Record) RecordVersion() int { return r.Version }
