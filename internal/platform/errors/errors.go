package apperrors

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"
)

// Type classifies failures so callers and the Handler can treat them uniformly.
type Type string

const (
	TypeValidation Type = "validation"
	TypeNotFound   Type = "not_found"
	TypeConflict   Type = "conflict"
	TypeStorage    Type = "storage"
	TypeExternal   Type = "external"
	TypeInternal   Type = "internal"
)

const (
	CodeInvalidInput  = "INVALID_INPUT"
	CodeNotFound      = "NOT_FOUND"
	CodeConflict      = "CONFLICT"
	CodeGoalCompleted = "GOAL_COMPLETED"
	CodeStorage       = "STORAGE"
	CodeExternal      = "EXTERNAL"
)

type AppError struct {
	Type     Type
	Code     string
	Message  string
	Internal error
	Context  map[string]any
	Source   string
}

func (e *AppError) Error() string {
	if e.Internal != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Internal)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Internal
}

// Is matches another AppError by type and code, so sentinels work with errors.Is.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Type == t.Type && e.Code == t.Code
}

func (e *AppError) WithContext(key string, value any) *AppError {
	if e.Context == nil {
		e.Context = make(map[string]any)
	}
	e.Context[key] = value
	return e
}

func (e *AppError) LogFields() []any {
	fields := []any{
		"error_type", string(e.Type),
		"error_code", e.Code,
		"error_message", e.Message,
	}
	if e.Source != "" {
		fields = append(fields, "source", e.Source)
	}
	if e.Internal != nil {
		fields = append(fields, "internal_error", e.Internal.Error())
	}
	for k, v := range e.Context {
		fields = append(fields, k, v)
	}
	return fields
}

func New(errType Type, code, message string) *AppError {
	return &AppError{Type: errType, Code: code, Message: message, Source: caller()}
}

func Wrap(err error, errType Type, code, message string) *AppError {
	return &AppError{Type: errType, Code: code, Message: message, Internal: err, Source: caller()}
}

func Validation(format string, args ...any) *AppError {
	return &AppError{Type: TypeValidation, Code: CodeInvalidInput, Message: fmt.Sprintf(format, args...), Source: caller()}
}

func NotFound(kind, id string) *AppError {
	return &AppError{Type: TypeNotFound, Code: CodeNotFound, Message: fmt.Sprintf("%s %q not found", kind, id), Source: caller()}
}

func Conflict(format string, args ...any) *AppError {
	return &AppError{Type: TypeConflict, Code: CodeConflict, Message: fmt.Sprintf(format, args...), Source: caller()}
}

func Storage(err error, message string) *AppError {
	return &AppError{Type: TypeStorage, Code: CodeStorage, Message: message, Internal: err, Source: caller()}
}

func caller() string {
	_, file, line, ok := runtime.Caller(2)
	if !ok {
		return ""
	}
	return fmt.Sprintf("%s:%d", file, line)
}

var (
	ErrInvalidInput  = &AppError{Type: TypeValidation, Code: CodeInvalidInput, Message: "invalid input"}
	ErrNotFound      = &AppError{Type: TypeNotFound, Code: CodeNotFound, Message: "not found"}
	ErrConflict      = &AppError{Type: TypeConflict, Code: CodeConflict, Message: "conflict"}
	ErrGoalCompleted = &AppError{Type: TypeConflict, Code: CodeGoalCompleted, Message: "goal already completed"}
)

// TypeOf reports the Type of the first AppError in err's chain, or TypeInternal.
func TypeOf(err error) Type {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Type
	}
	return TypeInternal
}

// Handler logs errors at a level chosen by their type.
type Handler struct {
	logger *slog.Logger
}

func NewHandler(logger *slog.Logger) *Handler {
	return &Handler{logger: logger}
}

func (h *Handler) Handle(ctx context.Context, err error) {
	if err == nil {
		return
	}
	var appErr *AppError
	if !errors.As(err, &appErr) {
		h.logger.ErrorContext(ctx, "unhandled error", "error", err.Error())
		return
	}
	switch appErr.Type {
	case TypeValidation, TypeNotFound, TypeConflict:
		h.logger.WarnContext(ctx, "request rejected", appErr.LogFields()...)
	default:
		h.logger.ErrorContext(ctx, "operation failed", appErr.LogFields()...)
	}
}
