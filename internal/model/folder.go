package model

import "time"

// Folder is a named grouping owned by exactly one user. Name is unique per
// owner; the pair (UserID, Name) is backed by a unique index.
type Folder struct {
	ID        int64
	UserID    int64
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
