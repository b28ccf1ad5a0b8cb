package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"folio/internal/model"
	"folio/pkg/snowflake"
)

// FolderRepository persists folders. Every query is scoped to an owner:
// a syntactically valid id belonging to another user is indistinguishable
// from a missing row (sql.ErrNoRows).
type FolderRepository interface {
	Create(ctx context.Context, userID int64, name string) (model.Folder, error)
	List(ctx context.Context, userID int64) ([]model.Folder, error)
	GetByID(ctx context.Context, userID int64, id int64) (model.Folder, error)
	FindByName(ctx context.Context, userID int64, name string) (*model.Folder, error)
	Update(ctx context.Context, userID int64, id int64, name string) (model.Folder, error)
	Delete(ctx context.Context, userID int64, id int64) error
}

type folderRepository struct {
	db dbtx
}

func NewFolderRepository(db dbtx) FolderRepository {
	return &folderRepository{db: db}
}

func (r *folderRepository) Create(ctx context.Context, userID int64, name string) (model.Folder, error) {
	folder := model.Folder{
		ID:        snowflake.NextID(),
		UserID:    userID,
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}
	folder.UpdatedAt = folder.CreatedAt

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO folders (id, user_id, name, created_at, updated_at) VALUES (?, ?, ?, ?, ?)`,
		folder.ID, folder.UserID, folder.Name, formatTime(folder.CreatedAt), formatTime(folder.UpdatedAt),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return model.Folder{}, ErrDuplicate
		}
		return model.Folder{}, fmt.Errorf("insert folder: %w", err)
	}

	return folder, nil
}

func (r *folderRepository) List(ctx context.Context, userID int64) ([]model.Folder, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, user_id, name, created_at, updated_at FROM folders WHERE user_id = ? ORDER BY name ASC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("list folders: %w", err)
	}
	defer rows.Close()

	folders := make([]model.Folder, 0)
	for rows.Next() {
		folder, err := scanFolder(rows)
		if err != nil {
			return nil, err
		}
		folders = append(folders, folder)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate folders: %w", err)
	}

	return folders, nil
}

func (r *folderRepository) GetByID(ctx context.Context, userID int64, id int64) (model.Folder, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, user_id, name, created_at, updated_at FROM folders WHERE id = ? AND user_id = ?`,
		id, userID,
	)
	return scanFolder(row)
}

func (r *folderRepository) FindByName(ctx context.Context, userID int64, name string) (*model.Folder, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, user_id, name, created_at, updated_at FROM folders WHERE user_id = ? AND name = ?`,
		userID, name,
	)
	folder, err := scanFolder(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &folder, nil
}

func (r *folderRepository) Update(ctx context.Context, userID int64, id int64, name string) (model.Folder, error) {
	result, err := r.db.ExecContext(ctx,
		`UPDATE folders SET name = ?, updated_at = ? WHERE id = ? AND user_id = ?`,
		name, formatTime(time.Now().UTC()), id, userID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return model.Folder{}, ErrDuplicate
		}
		return model.Folder{}, fmt.Errorf("update folder: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return model.Folder{}, fmt.Errorf("update folder rows affected: %w", err)
	}
	if affected == 0 {
		return model.Folder{}, sql.ErrNoRows
	}

	return r.GetByID(ctx, userID, id)
}

func (r *folderRepository) Delete(ctx context.Context, userID int64, id int64) error {
	// Deleting a missing row is not an error; delete is idempotent.
	if _, err := r.db.ExecContext(ctx,
		`DELETE FROM folders WHERE id = ? AND user_id = ?`, id, userID,
	); err != nil {
		return fmt.Errorf("delete folder: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanFolder(scanner rowScanner) (model.Folder, error) {
	var (
		folder    model.Folder
		createdAt string
		updatedAt string
	)
	if err := scanner.Scan(&folder.ID, &folder.UserID, &folder.Name, &createdAt, &updatedAt); err != nil {
		return model.Folder{}, err
	}

	var err error
	if folder.CreatedAt, err = parseTime(createdAt); err != nil {
		return model.Folder{}, fmt.Errorf("parse folder created_at: %w", err)
	}
	if folder.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return model.Folder{}, fmt.Errorf("parse folder updated_at: %w", err)
	}

	return folder, nil
}
