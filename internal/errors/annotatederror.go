package errors

import (
	"errors"
	"fmt"
	"log/slog"
	"runtime"
)

// AnnotatedError includes more context than a plain error that is useful for troubleshooting.
type AnnotatedError struct {
	// msg is the error message.
	msg string
	// pc is the program counter for the location of the error provided by runtime.Callers.
	pc uintptr
	// attrs are slog attributes that are added to the log event to provide more context for the error.
	attrs []slog.Attr
	// err is the wrapped error, if any.
	err error
}

// New creates a new AnnotatedError with the given message and attributes.
func New(msg string, attrs ...slog.Attr) error {
	return newAnnotated(msg, nil, attrs)
}

// NewSentinel creates a plain error without other context that can be used as sentinel error
// that can be detected with errors.Is.
func NewSentinel(msg string) error {
	return errors.New(msg)
}

// Wrap annotates err with a message and attributes. The call site of Wrap is recorded as the source.
//
// Returns nil if err is nil so that it's safe to use in return statements.
func Wrap(err error, msg string, attrs ...slog.Attr) error {
	if err == nil {
		return nil
	}
	return newAnnotated(msg, err, attrs)
}

func newAnnotated(msg string, err error, attrs []slog.Attr) AnnotatedError {
	var pcs [1]uintptr
	// Skip runtime.Callers, this function and the exported constructor.
	runtime.Callers(3, pcs[:]) //nolint:mnd // see comment above
	return AnnotatedError{
		msg:   msg,
		pc:    pcs[0],
		attrs: attrs,
		err:   err,
	}
}

// Error implements error interface.
func (e AnnotatedError) Error() string {
	if e.err == nil {
		return e.msg
	}
	return fmt.Sprintf("%s: %s", e.msg, e.err.Error())
}

// Unwrap returns the wrapped error.
func (e AnnotatedError) Unwrap() error {
	return e.err
}

// LogValue formats the error for useful logging.
func (e AnnotatedError) LogValue() slog.Value {
	// Retrieve the source location of the error so that developers can locate it faster.
	frames := runtime.CallersFrames([]uintptr{e.pc})
	source, _ := frames.Next()
	attrs := make([]slog.Attr, 0, len(e.attrs)+2) //nolint:mnd // source and msg
	attrs = append(attrs,
		slog.String("msg", e.msg),
		slog.String("source", fmt.Sprintf("%s:%d", source.File, source.Line)),
	)
	attrs = append(attrs, e.attrs...)
	return slog.GroupValue(attrs...)
}

// SlogError returns a slog attribute that logs the full error message together with the annotations
// from every AnnotatedError in the chain.
func SlogError(err error) slog.Attr {
	if err == nil {
		return slog.String("error", "<nil>")
	}
	var (
		annotations []any
		annotated   AnnotatedError
		cause       = err
	)
	for cause != nil {
		if errors.As(cause, &annotated) {
			annotations = append(annotations, slog.Any(fmt.Sprintf("%d", len(annotations)), annotated))
			cause = annotated.err
			continue
		}
		break
	}
	if len(annotations) == 0 {
		return slog.String("error", err.Error())
	}
	return slog.Group("error", append([]any{slog.String("message", err.Error())}, annotations...)...)
}

// As exposes stdlib errors.As.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// Is exposes stdlib errors.Is.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// Unwrap exposes stdlib errors.Unwrap.
func Unwrap(err error) error {
	return errors.Unwrap(err)
}

// Join exposes stdlib errors.Join.
func Join(errs ...error) error {
	return errors.Join(errs...)
}
