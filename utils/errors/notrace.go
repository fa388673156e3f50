//go:build !stacktrace

package errors

import (
	goerrors "errors"
)

// Stacktrace falls back to the error text when built without -tags stacktrace.
func Stacktrace(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}

func New(text string) error {
	return goerrors.New(text)
}
