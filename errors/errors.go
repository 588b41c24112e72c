package errors

import (
	"errors"
	"fmt"
)

// ErrorCode identifies the kind of application error.
type ErrorCode string

const (
	// Lookup errors
	ErrCodeRoomNotFound     ErrorCode = "ROOM_NOT_FOUND"
	ErrCodeRoomTypeNotFound ErrorCode = "ROOM_TYPE_NOT_FOUND"

	// Uniqueness conflicts
	ErrCodeDuplicateRoomNumber   ErrorCode = "DUPLICATE_ROOM_NUMBER"
	ErrCodeDuplicateRoomTypeName ErrorCode = "DUPLICATE_ROOM_TYPE_NAME"

	// Business rules
	ErrCodeInvalidTransition ErrorCode = "INVALID_STATUS_TRANSITION"
	ErrCodeRoomOccupied      ErrorCode = "ROOM_OCCUPIED"
	ErrCodeRoomTypeHasRooms  ErrorCode = "ROOM_TYPE_HAS_ACTIVE_ROOMS"
	ErrCodeInactiveRoomType  ErrorCode = "INACTIVE_ROOM_TYPE"
	ErrCodeInvalidPriceRange ErrorCode = "INVALID_PRICE_RANGE"

	// Validation errors
	ErrCodeValidation    ErrorCode = "VALIDATION_ERROR"
	ErrCodeRequiredField ErrorCode = "REQUIRED_FIELD"
	ErrCodeInvalidFormat ErrorCode = "INVALID_FORMAT"

	// Database errors
	ErrCodeDBError ErrorCode = "DB_ERROR"
)

// AppError is the error type every service operation returns on failure.
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

// NewAppError creates a new AppError.
func NewAppError(code ErrorCode, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// NewNotFound reports a missing room or room type.
func NewNotFound(code ErrorCode, entity string, id uint) *AppError {
	return NewAppError(code, fmt.Sprintf("%s not found with ID: %d", entity, id), nil)
}

// NewDuplicate reports a uniqueness conflict on a room number or type name.
func NewDuplicate(code ErrorCode, message string) *AppError {
	return NewAppError(code, message, nil)
}

// NewBusinessRule reports a rejected domain rule with its specific message.
func NewBusinessRule(code ErrorCode, message string) *AppError {
	return NewAppError(code, message, nil)
}

// NewValidation reports a structural input error on a single field.
func NewValidation(field, message string) *AppError {
	return NewAppError(ErrCodeValidation, fmt.Sprintf("%s: %s", field, message), nil)
}

// GetAppError extracts an AppError from err, or nil.
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

// IsNotFound reports whether err is a missing-entity error.
func IsNotFound(err error) bool {
	appErr := GetAppError(err)
	return appErr != nil &&
		(appErr.Code == ErrCodeRoomNotFound || appErr.Code == ErrCodeRoomTypeNotFound)
}

// IsDuplicate reports whether err is a uniqueness conflict.
func IsDuplicate(err error) bool {
	appErr := GetAppError(err)
	return appErr != nil &&
		(appErr.Code == ErrCodeDuplicateRoomNumber || appErr.Code == ErrCodeDuplicateRoomTypeName)
}

// IsBusinessRule reports whether err is a rejected domain rule.
func IsBusinessRule(err error) bool {
	appErr := GetAppError(err)
	if appErr == nil {
		return false
	}
	switch appErr.Code {
	case ErrCodeInvalidTransition, ErrCodeRoomOccupied, ErrCodeRoomTypeHasRooms,
		ErrCodeInactiveRoomType, ErrCodeInvalidPriceRange:
		return true
	}
	return false
}

// IsValidation reports whether err is a structural input error.
func IsValidation(err error) bool {
	appErr := GetAppError(err)
	if appErr == nil {
		return false
	}
	switch appErr.Code {
	case ErrCodeValidation, ErrCodeRequiredField, ErrCodeInvalidFormat:
		return true
	}
	return false
}
