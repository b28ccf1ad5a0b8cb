package handler_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"folio/internal/handler"
	"folio/internal/model"
	"folio/internal/service"
	"folio/internal/service/mock"
)

func newNoteTestHandler(t *testing.T) (*handler.NoteHandler, *mock.MockNoteService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	svc := mock.NewMockNoteService(ctrl)
	return handler.NewNoteHandlerHelper(svc), svc
}

func TestNoteHandler_Create_Success(t *testing.T) {
	h, svc := newNoteTestHandler(t)
	e := newTestEcho()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	content := "shopping list"
	svc.EXPECT().
		Create(gomock.Any(), testUserID, "Groceries", &content, (*int64)(nil)).
		Return(model.Note{ID: 55, UserID: testUserID, Title: "Groceries", Content: &content, CreatedAt: now, UpdatedAt: now}, nil)

	req := newJSONRequest(http.MethodPost, "/api/notes", map[string]string{
		"title":   "Groceries",
		"content": "shopping list",
	})
	c, rec := newTestContext(e, req, testUserID)

	require.NoError(t, h.Create(c))

	var resp handler.NoteResponse
	assertJSONResponse(t, rec, http.StatusCreated, &resp)
	require.Equal(t, "55", resp.ID)
	require.Equal(t, "Groceries", resp.Title)
	require.NotNil(t, resp.Content)
	require.Equal(t, "shopping list", *resp.Content)
	require.Equal(t, "/api/notes/55", rec.Header().Get("Location"))
}

func TestNoteHandler_Create_WithFolder(t *testing.T) {
	h, svc := newNoteTestHandler(t)
	e := newTestEcho()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	folderID := int64(42)
	svc.EXPECT().
		Create(gomock.Any(), testUserID, "Filed", (*string)(nil), &folderID).
		Return(model.Note{ID: 56, UserID: testUserID, FolderID: &folderID, Title: "Filed", CreatedAt: now, UpdatedAt: now}, nil)

	req := newJSONRequest(http.MethodPost, "/api/notes", map[string]string{
		"title":    "Filed",
		"folderId": "42",
	})
	c, rec := newTestContext(e, req, testUserID)

	require.NoError(t, h.Create(c))

	var resp handler.NoteResponse
	assertJSONResponse(t, rec, http.StatusCreated, &resp)
	require.NotNil(t, resp.FolderID)
	require.Equal(t, "42", *resp.FolderID)
}

func TestNoteHandler_Create_MalformedFolderID(t *testing.T) {
	h, _ := newNoteTestHandler(t)
	e := newTestEcho()

	req := newJSONRequest(http.MethodPost, "/api/notes", map[string]string{
		"title":    "T",
		"folderId": "not-a-key",
	})
	c, rec := newTestContext(e, req, testUserID)

	require.NoError(t, h.Create(c))

	var resp handler.ErrorResponse
	assertJSONResponse(t, rec, http.StatusBadRequest, &resp)
	require.Equal(t, "The `folderId` is not valid", resp.Message)
}

func TestNoteHandler_Create_FolderNotOwned(t *testing.T) {
	h, svc := newNoteTestHandler(t)
	e := newTestEcho()

	folderID := int64(999)
	svc.EXPECT().
		Create(gomock.Any(), testUserID, "T", (*string)(nil), &folderID).
		Return(model.Note{}, service.ErrFolderNotFound)

	req := newJSONRequest(http.MethodPost, "/api/notes", map[string]string{
		"title":    "T",
		"folderId": "999",
	})
	c, rec := newTestContext(e, req, testUserID)

	require.NoError(t, h.Create(c))

	var resp handler.ErrorResponse
	assertJSONResponse(t, rec, http.StatusBadRequest, &resp)
	require.Equal(t, "The `folderId` is not valid", resp.Message)
}

func TestNoteHandler_Create_MissingTitle(t *testing.T) {
	h, svc := newNoteTestHandler(t)
	e := newTestEcho()

	svc.EXPECT().
		Create(gomock.Any(), testUserID, "", (*string)(nil), (*int64)(nil)).
		Return(model.Note{}, service.ErrTitleRequired)

	req := newJSONRequestRaw(http.MethodPost, "/api/notes", `{}`)
	c, rec := newTestContext(e, req, testUserID)

	require.NoError(t, h.Create(c))

	var resp handler.ErrorResponse
	assertJSONResponse(t, rec, http.StatusBadRequest, &resp)
	require.Equal(t, "Missing `title` in request body", resp.Message)
}

func TestNoteHandler_List_FolderFilter(t *testing.T) {
	h, svc := newNoteTestHandler(t)
	e := newTestEcho()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	folderID := int64(42)
	svc.EXPECT().
		List(gomock.Any(), testUserID, &folderID).
		Return([]model.Note{{ID: 1, UserID: testUserID, FolderID: &folderID, Title: "T", CreatedAt: now, UpdatedAt: now}}, nil)

	req := newJSONRequest(http.MethodGet, "/api/notes?folderId=42", nil)
	c, rec := newTestContext(e, req, testUserID)

	require.NoError(t, h.List(c))

	var resp []handler.NoteResponse
	assertJSONResponse(t, rec, http.StatusOK, &resp)
	require.Len(t, resp, 1)
}

func TestNoteHandler_List_BadFolderFilter(t *testing.T) {
	h, _ := newNoteTestHandler(t)
	e := newTestEcho()

	req := newJSONRequest(http.MethodGet, "/api/notes?folderId=bogus", nil)
	c, rec := newTestContext(e, req, testUserID)

	require.NoError(t, h.List(c))

	var resp handler.ErrorResponse
	assertJSONResponse(t, rec, http.StatusBadRequest, &resp)
	require.Equal(t, "The `folderId` is not valid", resp.Message)
}

func TestNoteHandler_Get_NotFound(t *testing.T) {
	h, svc := newNoteTestHandler(t)
	e := newTestEcho()

	svc.EXPECT().
		Get(gomock.Any(), testUserID, int64(999)).
		Return(model.Note{}, service.ErrNotFound)

	req := newJSONRequest(http.MethodGet, "/api/notes/999", nil)
	c, rec := newTestContext(e, req, testUserID)
	setPathParams(c, map[string]string{"id": "999"})

	require.NoError(t, h.Get(c))
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Empty(t, rec.Body.String())
}

func TestNoteHandler_Get_InvalidID(t *testing.T) {
	h, _ := newNoteTestHandler(t)
	e := newTestEcho()

	req := newJSONRequest(http.MethodGet, "/api/notes/abc", nil)
	c, rec := newTestContext(e, req, testUserID)
	setPathParams(c, map[string]string{"id": "abc"})

	require.NoError(t, h.Get(c))

	var resp handler.ErrorResponse
	assertJSONResponse(t, rec, http.StatusBadRequest, &resp)
	require.Equal(t, "The `id` is not valid", resp.Message)
}

func TestNoteHandler_Update_Success(t *testing.T) {
	h, svc := newNoteTestHandler(t)
	e := newTestEcho()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc.EXPECT().
		Update(gomock.Any(), testUserID, int64(55), "Updated", (*string)(nil), (*int64)(nil)).
		Return(model.Note{ID: 55, UserID: testUserID, Title: "Updated", CreatedAt: now, UpdatedAt: now}, nil)

	req := newJSONRequest(http.MethodPut, "/api/notes/55", map[string]string{"title": "Updated"})
	c, rec := newTestContext(e, req, testUserID)
	setPathParams(c, map[string]string{"id": "55"})

	require.NoError(t, h.Update(c))

	var resp handler.NoteResponse
	assertJSONResponse(t, rec, http.StatusOK, &resp)
	require.Equal(t, "Updated", resp.Title)
}

func TestNoteHandler_Delete(t *testing.T) {
	h, svc := newNoteTestHandler(t)
	e := newTestEcho()

	svc.EXPECT().
		Delete(gomock.Any(), testUserID, int64(55)).
		Return(nil)

	req := newJSONRequest(http.MethodDelete, "/api/notes/55", nil)
	c, rec := newTestContext(e, req, testUserID)
	setPathParams(c, map[string]string{"id": "55"})

	require.NoError(t, h.Delete(c))
	require.Equal(t, http.StatusNoContent, rec.Code)
}
