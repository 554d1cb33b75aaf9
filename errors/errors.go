package errors

import (
	"errors"
	"fmt"
)

// ErrorCode identifies a class of application error
type ErrorCode string

const (
	// Auth errors
	ErrCodeUnauthorized ErrorCode = "UNAUTHORIZED"
	ErrCodeInvalidToken ErrorCode = "INVALID_TOKEN"
	ErrCodeMissingToken ErrorCode = "MISSING_TOKEN"
	ErrCodeInvalidRole  ErrorCode = "INVALID_ROLE"
	ErrCodeInvalidEmail ErrorCode = "INVALID_EMAIL"
	ErrCodeInvalidPhone ErrorCode = "INVALID_PHONE"

	// Room errors
	ErrCodeInvalidRoomID    ErrorCode = "INVALID_ROOM_ID"
	ErrCodeRoomNotFound     ErrorCode = "ROOM_NOT_FOUND"
	ErrCodeComparisonSize   ErrorCode = "INVALID_COMPARISON_SIZE"
	ErrCodeInsufficientRoom ErrorCode = "INSUFFICIENT_ROOMS"

	// Database errors
	ErrCodeDBError     ErrorCode = "DB_ERROR"
	ErrCodeDBNotFound  ErrorCode = "DB_NOT_FOUND"
	ErrCodeDBDuplicate ErrorCode = "DB_DUPLICATE"

	// Validation errors
	ErrCodeValidation    ErrorCode = "VALIDATION_ERROR"
	ErrCodeRequiredField ErrorCode = "REQUIRED_FIELD"
	ErrCodeInvalidFormat ErrorCode = "INVALID_FORMAT"
	ErrCodeInvalidAmount ErrorCode = "INVALID_AMOUNT"
	ErrCodeInvalidStatus ErrorCode = "INVALID_STATUS"
)

// AppError carries a code and an operator-facing message
type AppError struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new AppError
func NewAppError(code ErrorCode, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// IsAppError checks whether err is an AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError extracts the AppError from err, or nil
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

var (
	// Room errors
	ErrRoomNotFound          = errors.New("room not found")
	ErrInvalidRoomID         = errors.New("invalid room id")
	ErrInvalidComparisonSize = errors.New("between 2 and 5 room ids are required for comparison")
	ErrInsufficientRooms     = errors.New("at least 2 valid rooms are required for comparison")

	// Store errors
	ErrStore = errors.New("store query failed")

	// Auth errors
	ErrUnauthorized       = errors.New("unauthorized")
	ErrInvalidCredentials = errors.New("invalid credentials")

	// Entity errors
	ErrUserNotFound    = errors.New("user not found")
	ErrAdminNotFound   = errors.New("admin not found")
	ErrBlogNotFound    = errors.New("blog post not found")
	ErrContactNotFound = errors.New("contact not found")
	ErrPaymentNotFound = errors.New("payment not found")

	// Validation errors
	ErrInvalidInput    = errors.New("invalid input")
	ErrMissingRequired = errors.New("missing required field")
)
