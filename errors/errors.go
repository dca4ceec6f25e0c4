package errors

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorCode định nghĩa mã lỗi
type ErrorCode string

const (
	// Validation errors
	ErrCodeValidation        ErrorCode = "VALIDATION_ERROR"
	ErrCodeRequiredField     ErrorCode = "REQUIRED_FIELD"
	ErrCodeInvalidEmail      ErrorCode = "INVALID_EMAIL"
	ErrCodeInvalidFormat     ErrorCode = "INVALID_FORMAT"
	ErrCodeInvalidTokenCount ErrorCode = "INVALID_TOKEN_COUNT"

	// Lookup errors
	ErrCodeRecordNotFound ErrorCode = "RECORD_NOT_FOUND"

	// Database errors
	ErrCodeDBError     ErrorCode = "DB_ERROR"
	ErrCodeDBDuplicate ErrorCode = "DB_DUPLICATE"
)

// AppError định nghĩa lỗi của ứng dụng
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

// NewAppError tạo một AppError mới
func NewAppError(code ErrorCode, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// GetAppError lấy AppError từ error
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

// IsValidation kiểm tra lỗi thuộc nhóm validation (map sang 400)
func IsValidation(err error) bool {
	appErr := GetAppError(err)
	if appErr == nil {
		return false
	}
	switch appErr.Code {
	case ErrCodeValidation, ErrCodeRequiredField, ErrCodeInvalidEmail,
		ErrCodeInvalidFormat, ErrCodeInvalidTokenCount:
		return true
	}
	return false
}

// IsNotFound kiểm tra lỗi not found (map sang 404)
func IsNotFound(err error) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Code == ErrCodeRecordNotFound
}

// IsDuplicate kiểm tra lỗi trùng key (map sang 409)
func IsDuplicate(err error) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Code == ErrCodeDBDuplicate
}

// FromDBError dịch lỗi từ tầng store. Driver postgres của gorm nói
// chuyện qua pgx nên unique violation hiện ra dưới dạng pgconn.PgError.
func FromDBError(message string, err error) *AppError {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return NewAppError(ErrCodeDBDuplicate, message, err)
	}
	return NewAppError(ErrCodeDBError, message, err)
}
