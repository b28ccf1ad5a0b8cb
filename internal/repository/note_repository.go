package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"folio/internal/model"
	"folio/pkg/snowflake"
)

type NoteRepository interface {
	Create(ctx context.Context, note model.Note) (model.Note, error)
	List(ctx context.Context, userID int64, folderID *int64) ([]model.Note, error)
	GetByID(ctx context.Context, userID int64, id int64) (model.Note, error)
	Update(ctx context.Context, note model.Note) (model.Note, error)
	Delete(ctx context.Context, userID int64, id int64) error
}

type noteRepository struct {
	db dbtx
}

func NewNoteRepository(db dbtx) NoteRepository {
	return &noteRepository{db: db}
}

func (r *noteRepository) Create(ctx context.Context, note model.Note) (model.Note, error) {
	note.ID = snowflake.NextID()
	note.CreatedAt = time.Now().UTC()
	note.UpdatedAt = note.CreatedAt

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO notes (id, user_id, folder_id, title, content, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		note.ID, note.UserID, nullableInt64(note.FolderID), note.Title, nullableString(note.Content),
		formatTime(note.CreatedAt), formatTime(note.UpdatedAt),
	)
	if err != nil {
		return model.Note{}, fmt.Errorf("insert note: %w", err)
	}

	return note, nil
}

func (r *noteRepository) List(ctx context.Context, userID int64, folderID *int64) ([]model.Note, error) {
	query := `SELECT id, user_id, folder_id, title, content, created_at, updated_at FROM notes WHERE user_id = ?`
	args := []interface{}{userID}
	if folderID != nil {
		query += ` AND folder_id = ?`
		args = append(args, *folderID)
	}
	query += ` ORDER BY updated_at DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	defer rows.Close()

	notes := make([]model.Note, 0)
	for rows.Next() {
		note, err := scanNote(rows)
		if err != nil {
			return nil, err
		}
		notes = append(notes, note)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate notes: %w", err)
	}

	return notes, nil
}

func (r *noteRepository) GetByID(ctx context.Context, userID int64, id int64) (model.Note, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, user_id, folder_id, title, content, created_at, updated_at FROM notes WHERE id = ? AND user_id = ?`,
		id, userID,
	)
	return scanNote(row)
}

func (r *noteRepository) Update(ctx context.Context, note model.Note) (model.Note, error) {
	note.UpdatedAt = time.Now().UTC()

	result, err := r.db.ExecContext(ctx,
		`UPDATE notes SET title = ?, content = ?, folder_id = ?, updated_at = ? WHERE id = ? AND user_id = ?`,
		note.Title, nullableString(note.Content), nullableInt64(note.FolderID),
		formatTime(note.UpdatedAt), note.ID, note.UserID,
	)
	if err != nil {
		return model.Note{}, fmt.Errorf("update note: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return model.Note{}, fmt.Errorf("update note rows affected: %w", err)
	}
	if affected == 0 {
		return model.Note{}, sql.ErrNoRows
	}

	return r.GetByID(ctx, note.UserID, note.ID)
}

func (r *noteRepository) Delete(ctx context.Context, userID int64, id int64) error {
	// Missing rows are fine; note delete is idempotent like folder delete.
	if _, err := r.db.ExecContext(ctx,
		`DELETE FROM notes WHERE id = ? AND user_id = ?`, id, userID,
	); err != nil {
		return fmt.Errorf("delete note: %w", err)
	}
	return nil
}

func scanNote(scanner rowScanner) (model.Note, error) {
	var (
		note      model.Note
		folderID  sql.NullInt64
		content   sql.NullString
		createdAt string
		updatedAt string
	)
	if err := scanner.Scan(&note.ID, &note.UserID, &folderID, &note.Title, &content, &createdAt, &updatedAt); err != nil {
		return model.Note{}, err
	}

	if folderID.Valid {
		note.FolderID = &folderID.Int64
	}
	if content.Valid {
		note.Content = &content.String
	}

	var err error
	if note.CreatedAt, err = parseTime(createdAt); err != nil {
		return model.Note{}, fmt.Errorf("parse note created_at: %w", err)
	}
	if note.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return model.Note{}, fmt.Errorf("parse note updated_at: %w", err)
	}

	return note, nil
}
