package service

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"folio/internal/model"
	"folio/internal/service/testutil"

	"go.uber.org/mock/gomock"
)

func TestNoteService_Create_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockNotes := testutil.NewMockNoteRepository(ctrl)
	mockFolders := testutil.NewMockFolderRepository(ctrl)
	service := NewNoteService(mockNotes, mockFolders)
	ctx := context.Background()

	userID := int64(7)

	mockNotes.EXPECT().
		Create(ctx, model.Note{UserID: userID, Title: "Groceries"}).
		Return(model.Note{ID: 1, UserID: userID, Title: "Groceries"}, nil)

	note, err := service.Create(ctx, userID, "Groceries", nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if note.Title != "Groceries" {
		t.Errorf("expected title 'Groceries', got %s", note.Title)
	}
}

func TestNoteService_Create_EmptyTitle(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockNotes := testutil.NewMockNoteRepository(ctrl)
	mockFolders := testutil.NewMockFolderRepository(ctrl)
	service := NewNoteService(mockNotes, mockFolders)
	ctx := context.Background()

	_, err := service.Create(ctx, 7, "   ", nil, nil)
	if !errors.Is(err, ErrTitleRequired) {
		t.Errorf("expected ErrTitleRequired, got %v", err)
	}
}

func TestNoteService_Create_SanitizesContent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockNotes := testutil.NewMockNoteRepository(ctrl)
	mockFolders := testutil.NewMockFolderRepository(ctrl)
	service := NewNoteService(mockNotes, mockFolders)
	ctx := context.Background()

	userID := int64(7)
	raw := "<script>alert(1)</script>hello"
	clean := "hello"

	mockNotes.EXPECT().
		Create(ctx, model.Note{UserID: userID, Title: "T", Content: &clean}).
		Return(model.Note{ID: 1, UserID: userID, Title: "T", Content: &clean}, nil)

	note, err := service.Create(ctx, userID, "T", &raw, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if note.Content == nil || *note.Content != clean {
		t.Errorf("expected sanitized content %q, got %v", clean, note.Content)
	}
}

func TestNoteService_Create_FolderNotOwned(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockNotes := testutil.NewMockNoteRepository(ctrl)
	mockFolders := testutil.NewMockFolderRepository(ctrl)
	service := NewNoteService(mockNotes, mockFolders)
	ctx := context.Background()

	userID := int64(7)
	folderID := int64(999)

	// Another owner's folder looks exactly like a missing one.
	mockFolders.EXPECT().
		GetByID(ctx, userID, folderID).
		Return(model.Folder{}, sql.ErrNoRows)

	_, err := service.Create(ctx, userID, "T", nil, &folderID)
	if !errors.Is(err, ErrFolderNotFound) {
		t.Errorf("expected ErrFolderNotFound, got %v", err)
	}
}

func TestNoteService_Create_WithFolder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockNotes := testutil.NewMockNoteRepository(ctrl)
	mockFolders := testutil.NewMockFolderRepository(ctrl)
	service := NewNoteService(mockNotes, mockFolders)
	ctx := context.Background()

	userID := int64(7)
	folderID := int64(42)

	mockFolders.EXPECT().
		GetByID(ctx, userID, folderID).
		Return(model.Folder{ID: folderID, UserID: userID, Name: "Work"}, nil)

	mockNotes.EXPECT().
		Create(ctx, model.Note{UserID: userID, FolderID: &folderID, Title: "T"}).
		Return(model.Note{ID: 1, UserID: userID, FolderID: &folderID, Title: "T"}, nil)

	note, err := service.Create(ctx, userID, "T", nil, &folderID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if note.FolderID == nil || *note.FolderID != folderID {
		t.Error("expected folder id to be set")
	}
}

func TestNoteService_Get_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockNotes := testutil.NewMockNoteRepository(ctrl)
	mockFolders := testutil.NewMockFolderRepository(ctrl)
	service := NewNoteService(mockNotes, mockFolders)
	ctx := context.Background()

	mockNotes.EXPECT().
		GetByID(ctx, int64(7), int64(999)).
		Return(model.Note{}, sql.ErrNoRows)

	_, err := service.Get(ctx, 7, 999)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestNoteService_Update_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockNotes := testutil.NewMockNoteRepository(ctrl)
	mockFolders := testutil.NewMockFolderRepository(ctrl)
	service := NewNoteService(mockNotes, mockFolders)
	ctx := context.Background()

	userID := int64(7)
	noteID := int64(1)

	mockNotes.EXPECT().
		Update(ctx, model.Note{ID: noteID, UserID: userID, Title: "Updated"}).
		Return(model.Note{ID: noteID, UserID: userID, Title: "Updated"}, nil)

	note, err := service.Update(ctx, userID, noteID, "Updated", nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if note.Title != "Updated" {
		t.Errorf("expected title 'Updated', got %s", note.Title)
	}
}

func TestNoteService_Update_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockNotes := testutil.NewMockNoteRepository(ctrl)
	mockFolders := testutil.NewMockFolderRepository(ctrl)
	service := NewNoteService(mockNotes, mockFolders)
	ctx := context.Background()

	mockNotes.EXPECT().
		Update(ctx, model.Note{ID: 999, UserID: 7, Title: "T"}).
		Return(model.Note{}, sql.ErrNoRows)

	_, err := service.Update(ctx, 7, 999, "T", nil, nil)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestNoteService_Delete_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockNotes := testutil.NewMockNoteRepository(ctrl)
	mockFolders := testutil.NewMockFolderRepository(ctrl)
	service := NewNoteService(mockNotes, mockFolders)
	ctx := context.Background()

	mockNotes.EXPECT().
		Delete(ctx, int64(7), int64(1)).
		Return(nil)

	if err := service.Delete(ctx, 7, 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestNoteService_List_PassesFolderFilter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockNotes := testutil.NewMockNoteRepository(ctrl)
	mockFolders := testutil.NewMockFolderRepository(ctrl)
	service := NewNoteService(mockNotes, mockFolders)
	ctx := context.Background()

	userID := int64(7)
	folderID := int64(42)

	mockNotes.EXPECT().
		List(ctx, userID, &folderID).
		Return([]model.Note{{ID: 1, UserID: userID, FolderID: &folderID, Title: "T"}}, nil)

	notes, err := service.List(ctx, userID, &folderID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(notes) != 1 {
		t.Errorf("expected 1 note, got %d", len(notes))
	}
}
