package errors

import (
	goerrors "errors"
	"fmt"
)

func As(err error, target any) bool {
	return goerrors.As(err, target)
}

func Is(err error, target error) bool {
	return goerrors.Is(err, target)
}

func Format(format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)
	return New(msg)
}

// wrapped prefixes cause with context while keeping it reachable for Is/As.
type wrapped struct {
	context error
	cause   error
}

func (w *wrapped) Error() string {
	return w.context.Error() + ": " + w.cause.Error()
}

func (w *wrapped) Unwrap() []error {
	return []error{w.context, w.cause}
}

func WrapWith(err error, format string, args ...any) error {
	if err == nil {
		return Format(format, args...)
	}
	return &wrapped{context: Format(format, args...), cause: err}
}
