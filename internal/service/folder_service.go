package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"folio/internal/model"
	"folio/internal/repository"
)

// FolderService implements the folder mutation pipeline: required-field
// checks, owner scoping, and per-owner name uniqueness. The uniqueness
// pre-check gives callers an informative error; the repository's unique
// constraint closes the race the pre-check cannot, and both surface as
// ErrDuplicateName.
type FolderService interface {
	List(ctx context.Context, userID int64) ([]model.Folder, error)
	Get(ctx context.Context, userID int64, id int64) (model.Folder, error)
	Create(ctx context.Context, userID int64, name string) (model.Folder, error)
	Update(ctx context.Context, userID int64, id int64, name string) (model.Folder, error)
	Delete(ctx context.Context, userID int64, id int64) error
}

type folderService struct {
	folders repository.FolderRepository
}

func NewFolderService(folders repository.FolderRepository) FolderService {
	return &folderService{folders: folders}
}

func (s *folderService) List(ctx context.Context, userID int64) ([]model.Folder, error) {
	return s.folders.List(ctx, userID)
}

func (s *folderService) Get(ctx context.Context, userID int64, id int64) (model.Folder, error) {
	folder, err := s.folders.GetByID(ctx, userID, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Folder{}, ErrNotFound
		}
		return model.Folder{}, fmt.Errorf("get folder: %w", err)
	}
	return folder, nil
}

func (s *folderService) Create(ctx context.Context, userID int64, name string) (model.Folder, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return model.Folder{}, ErrNameRequired
	}

	if existing, err := s.folders.FindByName(ctx, userID, trimmed); err != nil {
		return model.Folder{}, fmt.Errorf("check folder name: %w", err)
	} else if existing != nil {
		return model.Folder{}, ErrDuplicateName
	}

	folder, err := s.folders.Create(ctx, userID, trimmed)
	if err != nil {
		// A concurrent create can slip past the pre-check; the unique
		// index reports it and the caller sees the same error either way.
		if errors.Is(err, repository.ErrDuplicate) {
			return model.Folder{}, ErrDuplicateName
		}
		return model.Folder{}, fmt.Errorf("create folder: %w", err)
	}

	return folder, nil
}

func (s *folderService) Update(ctx context.Context, userID int64, id int64, name string) (model.Folder, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return model.Folder{}, ErrNameRequired
	}

	if _, err := s.folders.GetByID(ctx, userID, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Folder{}, ErrNotFound
		}
		return model.Folder{}, fmt.Errorf("get folder: %w", err)
	}

	// Renaming a folder to its own current name is allowed.
	if existing, err := s.folders.FindByName(ctx, userID, trimmed); err != nil {
		return model.Folder{}, fmt.Errorf("check folder name: %w", err)
	} else if existing != nil && existing.ID != id {
		return model.Folder{}, ErrDuplicateName
	}

	folder, err := s.folders.Update(ctx, userID, id, trimmed)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return model.Folder{}, ErrDuplicateName
		}
		if errors.Is(err, sql.ErrNoRows) {
			return model.Folder{}, ErrNotFound
		}
		return model.Folder{}, fmt.Errorf("update folder: %w", err)
	}

	return folder, nil
}

// Delete removes the folder if the caller owns it. Deleting a well-formed id
// with no matching row succeeds: delete is idempotent and never reports
// not-found. Notes filed in the folder are removed by the cascading foreign key.
func (s *folderService) Delete(ctx context.Context, userID int64, id int64) error {
	return s.folders.Delete(ctx, userID, id)
}
