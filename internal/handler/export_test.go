package handler

// Export for testing
type ErrorResponse = errorResponse
type FolderResponse = folderResponse
type NoteResponse = noteResponse
type UserResponse = userResponse
type AuthResponseDTO = authResponse

var NewFolderHandlerHelper = NewFolderHandler
var NewNoteHandlerHelper = NewNoteHandler
var NewAuthHandlerHelper = NewAuthHandler

var WriteServiceError = writeServiceError
var IDPtrToString = idPtrToString
var Itoa = itoa
