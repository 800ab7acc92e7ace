package service

import "net/http"

// Error 携带 HTTP 状态的业务错误；仓储层的意外错误不包装，原样上抛
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string { return e.Message }

var (
	errAllFieldsRequired = &Error{http.StatusBadRequest, "All fields are required"}
	errNoUserFound       = &Error{http.StatusBadRequest, "No user found"}
	errDuplicateUsername = &Error{http.StatusConflict, "Duplicate Username"}
	errUserNotFound      = &Error{http.StatusBadRequest, "User not found"}
	errUserIDRequired    = &Error{http.StatusBadRequest, "User ID Required"}
	errUserHasNotes      = &Error{http.StatusBadRequest, "User has assigned notes"}
	errInvalidUserData   = &Error{http.StatusBadRequest, "Invalid user data received"}
)
