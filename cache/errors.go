package cache

import (
	"fmt"

	"github.com/9triver/lrucore/utils/errors"
)

// Error codes for cache operations
const (
	ErrCodeNotFound         = "NotFound"
	ErrCodeInvalidHandle    = "InvalidHandle"
	ErrCodeCapacityExceeded = "CapacityExceeded"
)

// Error is returned by cache and store operations. Two errors match under
// errors.Is when their codes are equal, so a wrapped ErrNotFound carrying a
// key still matches the ErrNotFound sentinel.
type Error struct {
	Code    string
	Message string
	Key     any // offending key, if any
	Cause   error
}

func (e *Error) Error() string {
	if e.Key != nil {
		return fmt.Sprintf("cache error [%s]: %s (key=%v)", e.Code, e.Message, e.Key)
	}
	return fmt.Sprintf("cache error [%s]: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Code == t.Code
	}
	return false
}

func NewError(code, message string) *Error {
	return &Error{Code: code, Message: message}
}

func NewErrorWithKey(code, message string, key any) *Error {
	return &Error{Code: code, Message: message, Key: key}
}

var (
	// ErrNotFound reports a key absent from the cache. Callers usually treat it
	// as a miss and fall back to computing the value.
	ErrNotFound = NewError(ErrCodeNotFound, "key not found")
	// ErrInvalidHandle reports a stale, freed or foreign handle. Reaching it
	// from Cache methods indicates a bug.
	ErrInvalidHandle = NewError(ErrCodeInvalidHandle, "invalid handle")
	// ErrCapacityExceeded is returned by fixed-capacity stores when full.
	ErrCapacityExceeded = NewError(ErrCodeCapacityExceeded, "store capacity exceeded")
)

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsCapacityExceeded(err error) bool {
	return errors.Is(err, ErrCapacityExceeded)
}

func IsInvalidHandle(err error) bool {
	return errors.Is(err, ErrInvalidHandle)
}

func notFound(key any) error {
	return NewErrorWithKey(ErrCodeNotFound, ErrNotFound.Message, key)
}

func invalidHandle(h Handle) error {
	return &Error{
		Code:    ErrCodeInvalidHandle,
		Message: "invalid handle " + h.String(),
	}
}

func capacityExceeded(key any, cause error) error {
	return &Error{
		Code:    ErrCodeCapacityExceeded,
		Message: ErrCapacityExceeded.Message,
		Key:     key,
		Cause:   cause,
	}
}
