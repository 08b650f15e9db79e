package common

import (
	"context"
	"errors"

	"github.com/valyala/fasthttp"
	"go.mongodb.org/mongo-driver/mongo"
)

// HTTP status codes used by the API
const (
	StatusOK      = fasthttp.StatusOK
	StatusCreated = fasthttp.StatusCreated

	StatusBadRequest      = fasthttp.StatusBadRequest
	StatusUnauthorized    = fasthttp.StatusUnauthorized
	StatusForbidden       = fasthttp.StatusForbidden
	StatusNotFound        = fasthttp.StatusNotFound
	StatusConflict        = fasthttp.StatusConflict
	StatusTooManyRequests = fasthttp.StatusTooManyRequests

	StatusInternalServerError = fasthttp.StatusInternalServerError
	StatusNotImplemented      = fasthttp.StatusNotImplemented
	StatusBadGateway          = fasthttp.StatusBadGateway
	StatusServiceUnavailable  = fasthttp.StatusServiceUnavailable
)

// Response messages
const (
	MsgSuccess            = "Success"
	MsgInternalError      = "Something went wrong"
	MsgNotImplemented     = "Not implemented yet"
	MsgTooManyRequests    = "Too many requests"
	MsgServiceUnavailable = "Service temporarily unavailable"

	MsgTokenMissing = "Unauthorized request"
	MsgTokenInvalid = "Invalid access token"
	MsgTokenExpired = "Access token expired"

	MsgValidationError = "Invalid input"
	MsgDatabaseError   = "Database operation failed"
	MsgNotFound        = "Resource not found"
	MsgDuplicate       = "Resource already exists"
)

// ErrorCode is a hierarchical error code.
type ErrorCode struct {
	Code        string // e.g. AUTH_001
	Category    string // e.g. Authentication
	SubCategory string // e.g. Token
	Description string
}

var (
	// System (SYS_xxx)
	ErrCodeInternalServer = ErrorCode{Code: "SYS_001", Category: "System", SubCategory: "Internal", Description: "Internal system error"}
	ErrCodeNotImplemented = ErrorCode{Code: "SYS_002", Category: "System", SubCategory: "NotImplemented", Description: "Operation not supported yet"}
	ErrCodeRateLimit      = ErrorCode{Code: "SYS_003", Category: "System", SubCategory: "RateLimit", Description: "Request rate exceeded"}

	// Authentication (AUTH_xxx)
	ErrCodeAuthToken      = ErrorCode{Code: "AUTH_001", Category: "Authentication", SubCategory: "Token", Description: "Missing or invalid token"}
	ErrCodeAuthIdentity   = ErrorCode{Code: "AUTH_002", Category: "Authentication", SubCategory: "Identity", Description: "Actor identity unavailable"}
	ErrCodeAuthPermission = ErrorCode{Code: "AUTH_003", Category: "Authentication", SubCategory: "Permission", Description: "Actor is not the resource owner"}

	// Validation (VAL_xxx)
	ErrCodeValidationInput  = ErrorCode{Code: "VAL_001", Category: "Validation", SubCategory: "Input", Description: "Invalid input data"}
	ErrCodeValidationFormat = ErrorCode{Code: "VAL_002", Category: "Validation", SubCategory: "Format", Description: "Invalid data format"}

	// Database (DB_xxx)
	ErrCodeDatabase           = ErrorCode{Code: "DB", Category: "Database", SubCategory: "General", Description: "Generic database error"}
	ErrCodeDatabaseConnection = ErrorCode{Code: "DB_001", Category: "Database", SubCategory: "Connection", Description: "Database connection error"}
	ErrCodeDatabaseQuery      = ErrorCode{Code: "DB_002", Category: "Database", SubCategory: "Query", Description: "Query error"}
	ErrCodeDatabaseConflict   = ErrorCode{Code: "DB_003", Category: "Database", SubCategory: "Conflict", Description: "Conflicting data"}

	// External services (EXT_xxx)
	ErrCodeMediaUpload = ErrorCode{Code: "EXT_001", Category: "External", SubCategory: "Media", Description: "Media upload failed"}
)

// Error is the classified error rendered by the response envelope.
type Error struct {
	Code       ErrorCode
	Message    string
	StatusCode int
	Details    any   // sub-errors shown to the client
	Cause      error // logged, never rendered
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is matches on code and message so sentinel errors survive wrapping.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return e.Code.Code == t.Code.Code && e.Message == t.Message
}

// Retryable reports whether the client may retry the same request.
func (e *Error) Retryable() bool {
	return e.StatusCode == StatusServiceUnavailable
}

// NewError creates a classified error.
func NewError(code ErrorCode, message string, statusCode int, details any) error {
	return &Error{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
		Details:    details,
	}
}

func NewValidationError(message string, details any) error {
	return NewError(ErrCodeValidationInput, message, StatusBadRequest, details)
}

func NewNotFoundError(message string) error {
	return NewError(ErrCodeDatabaseQuery, message, StatusNotFound, nil)
}

func NewPermissionError(message string) error {
	return NewError(ErrCodeAuthPermission, message, StatusForbidden, nil)
}

func NewConflictError(message string) error {
	return NewError(ErrCodeDatabaseConflict, message, StatusConflict, nil)
}

// NewUpstreamError wraps a failed collaborator call. The cause is kept for logs only.
func NewUpstreamError(message string, cause error) error {
	return &Error{
		Code:       ErrCodeMediaUpload,
		Message:    message,
		StatusCode: StatusBadGateway,
		Cause:      cause,
	}
}

var (
	ErrTokenMissing   = NewError(ErrCodeAuthToken, MsgTokenMissing, StatusUnauthorized, nil)
	ErrTokenInvalid   = NewError(ErrCodeAuthToken, MsgTokenInvalid, StatusUnauthorized, nil)
	ErrTokenExpired   = NewError(ErrCodeAuthToken, MsgTokenExpired, StatusUnauthorized, nil)
	ErrActorMissing   = NewError(ErrCodeAuthIdentity, MsgTokenMissing, StatusUnauthorized, nil)
	ErrInvalidFormat  = NewError(ErrCodeValidationFormat, "Malformed request body", StatusBadRequest, nil)
	ErrNotImplemented = NewError(ErrCodeNotImplemented, MsgNotImplemented, StatusNotImplemented, nil)

	ErrNotFound  = NewError(ErrCodeDatabaseQuery, MsgNotFound, StatusNotFound, nil)
	ErrDuplicate = NewError(ErrCodeDatabaseConflict, MsgDuplicate, StatusConflict, nil)

	ErrMongoConnection = NewError(ErrCodeDatabaseConnection, "Database connection error", StatusServiceUnavailable, nil)
	ErrMongoNetwork    = NewError(ErrCodeDatabaseConnection, "Database network error", StatusServiceUnavailable, nil)
	ErrMongoTimeout    = NewError(ErrCodeDatabaseConnection, "Database request timed out, please retry", StatusServiceUnavailable, nil)
	ErrMongoQuery      = NewError(ErrCodeDatabaseQuery, MsgDatabaseError, StatusInternalServerError, nil)
	ErrMongoWrite      = NewError(ErrCodeDatabaseQuery, MsgDatabaseError, StatusInternalServerError, nil)
	ErrMongoSystem     = NewError(ErrCodeDatabase, MsgDatabaseError, StatusInternalServerError, nil)
)

// withCause copies a sentinel and attaches the driver error for logging.
func withCause(sentinel error, cause error) error {
	var s *Error
	if !errors.As(sentinel, &s) {
		return sentinel
	}
	cp := *s
	cp.Cause = cause
	return &cp
}

// ConvertMongoError maps driver errors onto classified errors.
func ConvertMongoError(err error) error {
	if err == nil {
		return nil
	}

	var classified *Error
	if errors.As(err, &classified) {
		return err
	}

	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	if errors.Is(err, context.DeadlineExceeded) || mongo.IsTimeout(err) {
		return withCause(ErrMongoTimeout, err)
	}
	if mongo.IsDuplicateKeyError(err) {
		return withCause(ErrDuplicate, err)
	}
	if mongo.IsNetworkError(err) {
		return withCause(ErrMongoNetwork, err)
	}

	var cmdErr mongo.CommandError
	if errors.As(err, &cmdErr) {
		switch {
		case cmdErr.Code >= 100 && cmdErr.Code < 200:
			return withCause(ErrMongoConnection, err)
		case cmdErr.Code >= 400 && cmdErr.Code < 500:
			return withCause(ErrMongoWrite, err)
		case cmdErr.Code >= 300 && cmdErr.Code < 400:
			return withCause(ErrMongoQuery, err)
		}
	}

	return &Error{
		Code:       ErrCodeDatabase,
		Message:    MsgDatabaseError,
		StatusCode: StatusInternalServerError,
		Cause:      err,
	}
}

// AsError classifies any error; unknown errors become a generic 500.
func AsError(err error) *Error {
	var classified *Error
	if errors.As(err, &classified) {
		return classified
	}
	return &Error{
		Code:       ErrCodeInternalServer,
		Message:    MsgInternalError,
		StatusCode: StatusInternalServerError,
		Cause:      err,
	}
}
