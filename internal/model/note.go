package model

import "time"

type Note struct {
	ID        int64
	UserID    int64
	FolderID  *int64
	Title     string
	Content   *string
	CreatedAt time.Time
	UpdatedAt time.Time
}
