package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"folio/internal/model"
	"folio/internal/repository"
	"folio/pkg/sanitizer"
)

type NoteService interface {
	List(ctx context.Context, userID int64, folderID *int64) ([]model.Note, error)
	Get(ctx context.Context, userID int64, id int64) (model.Note, error)
	Create(ctx context.Context, userID int64, title string, content *string, folderID *int64) (model.Note, error)
	Update(ctx context.Context, userID int64, id int64, title string, content *string, folderID *int64) (model.Note, error)
	Delete(ctx context.Context, userID int64, id int64) error
}

type noteService struct {
	notes   repository.NoteRepository
	folders repository.FolderRepository
}

func NewNoteService(notes repository.NoteRepository, folders repository.FolderRepository) NoteService {
	return &noteService{notes: notes, folders: folders}
}

func (s *noteService) List(ctx context.Context, userID int64, folderID *int64) ([]model.Note, error) {
	return s.notes.List(ctx, userID, folderID)
}

func (s *noteService) Get(ctx context.Context, userID int64, id int64) (model.Note, error) {
	note, err := s.notes.GetByID(ctx, userID, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Note{}, ErrNotFound
		}
		return model.Note{}, fmt.Errorf("get note: %w", err)
	}
	return note, nil
}

func (s *noteService) Create(ctx context.Context, userID int64, title string, content *string, folderID *int64) (model.Note, error) {
	trimmedTitle := strings.TrimSpace(title)
	if trimmedTitle == "" {
		return model.Note{}, ErrTitleRequired
	}

	if err := s.checkFolder(ctx, userID, folderID); err != nil {
		return model.Note{}, err
	}

	return s.notes.Create(ctx, model.Note{
		UserID:   userID,
		FolderID: folderID,
		Title:    trimmedTitle,
		Content:  cleanContent(content),
	})
}

func (s *noteService) Update(ctx context.Context, userID int64, id int64, title string, content *string, folderID *int64) (model.Note, error) {
	trimmedTitle := strings.TrimSpace(title)
	if trimmedTitle == "" {
		return model.Note{}, ErrTitleRequired
	}

	if err := s.checkFolder(ctx, userID, folderID); err != nil {
		return model.Note{}, err
	}

	note, err := s.notes.Update(ctx, model.Note{
		ID:       id,
		UserID:   userID,
		FolderID: folderID,
		Title:    trimmedTitle,
		Content:  cleanContent(content),
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Note{}, ErrNotFound
		}
		return model.Note{}, fmt.Errorf("update note: %w", err)
	}

	return note, nil
}

func (s *noteService) Delete(ctx context.Context, userID int64, id int64) error {
	return s.notes.Delete(ctx, userID, id)
}

// checkFolder verifies that the target folder exists and is owned by the
// caller. Another owner's folder id fails the same way as a missing one.
func (s *noteService) checkFolder(ctx context.Context, userID int64, folderID *int64) error {
	if folderID == nil {
		return nil
	}
	if _, err := s.folders.GetByID(ctx, userID, *folderID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrFolderNotFound
		}
		return fmt.Errorf("check folder: %w", err)
	}
	return nil
}

func cleanContent(content *string) *string {
	if content == nil {
		return nil
	}
	cleaned := sanitizer.StripTags(*content)
	return &cleaned
}
