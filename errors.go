package shaderc

import (
	"fmt"
	"strings"
)

// Kind categorizes an Error.
type Kind string

const (
	// KindInitialization: the library returned NULL for a compiler or
	// options object.
	KindInitialization Kind = "initialization"
	// KindReleased: an operation on a compiler that was already released.
	KindReleased Kind = "released"
	// KindInvalidInput: a precondition on the arguments was not met.
	KindInvalidInput Kind = "invalid_input"
	// KindCompilation: produced by CompilationResult.Err, never by Compile.
	KindCompilation Kind = "compilation"
	// KindConfig: an options document or argument string could not be read.
	KindConfig Kind = "config"
)

// Error is the structured error returned by this package.
type Error struct {
	Cause  error
	Op     string
	Kind   Kind
	Detail string
	// Status is set for KindCompilation.
	Status CompilationStatus
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	if e.Op != "" {
		b.WriteByte('[')
		b.WriteString(e.Op)
		b.WriteString("] ")
	}
	b.WriteString(string(e.Kind))

	if e.Kind == KindCompilation {
		b.WriteString(" (")
		b.WriteString(e.Status.String())
		b.WriteByte(')')
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is matches another *Error by Kind, or a CompilationStatus by Status.
func (e *Error) Is(target error) bool {
	switch t := target.(type) {
	case *Error:
		return e.Kind == t.Kind
	case CompilationStatus:
		return e.Kind == KindCompilation && e.Status == t
	}
	return false
}

// Sentinels for errors.Is.
var (
	ErrInitialization = &Error{Kind: KindInitialization}
	ErrReleased       = &Error{Kind: KindReleased}
	ErrInvalidInput   = &Error{Kind: KindInvalidInput}
	ErrConfig         = &Error{Kind: KindConfig}
)

func initError(op string) *Error {
	return &Error{
		Op:     op,
		Kind:   KindInitialization,
		Detail: "native library returned a null handle",
	}
}

func releasedError(op string) *Error {
	return &Error{
		Op:     op,
		Kind:   KindReleased,
		Detail: "compiler has been released",
	}
}

func invalidInput(op, format string, args ...any) *Error {
	return &Error{
		Op:     op,
		Kind:   KindInvalidInput,
		Detail: fmt.Sprintf(format, args...),
	}
}

func configError(what, value string) *Error {
	return &Error{
		Op:     "config",
		Kind:   KindConfig,
		Detail: fmt.Sprintf("unknown %s %q", what, value),
	}
}

func wrapConfig(detail string, cause error) *Error {
	return &Error{
		Op:     "config",
		Kind:   KindConfig,
		Detail: detail,
		Cause:  cause,
	}
}
