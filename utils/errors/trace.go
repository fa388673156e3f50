//go:build stacktrace

package errors

import (
	goerrors "errors"
	"fmt"
	"runtime"
	"strings"
)

const maxFrames = 16

type unwrap interface {
	Unwrap() []error
}

type stacktrace interface {
	Stacktrace() string
}

// Error records the call stack at creation. Used for tracking down where an
// invariant violation in the cache was first reported.
type Error struct {
	curr      error
	callStack []string
}

func (e *Error) Stacktrace() string {
	sb := strings.Builder{}
	sb.WriteString("Error: ")
	sb.WriteString(e.curr.Error())
	sb.WriteString("\nStacktrace:\n")
	sb.WriteString(strings.Join(e.callStack, "\n"))
	return sb.String()
}

func (e *Error) Error() string {
	return e.curr.Error()
}

func (e *Error) Unwrap() error {
	return e.curr
}

func New(text string) error {
	pcs := make([]uintptr, maxFrames)
	length := runtime.Callers(2, pcs)
	frames := runtime.CallersFrames(pcs[:length])

	callStack := make([]string, 0, length)
	for {
		frame, more := frames.Next()
		callStack = append(callStack, fmt.Sprintf("%s:%d\n\t%s", frame.File, frame.Line, frame.Function))
		if !more {
			break
		}
	}

	return &Error{
		curr:      goerrors.New(text),
		callStack: callStack,
	}
}

func Stacktrace(err error) string {
	if err == nil {
		return ""
	}
	if err, ok := err.(stacktrace); ok {
		return err.Stacktrace()
	}
	if errs, ok := err.(unwrap); ok {
		var trace []string
		for _, e := range errs.Unwrap() {
			trace = append(trace, Stacktrace(e))
		}
		return strings.Join(trace, "\ncaused by\n")
	}
	return err.Error()
}
