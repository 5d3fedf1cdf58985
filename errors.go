package routemap

import (
	"errors"
	"fmt"
)

// Error Types
type ErrorType string

const (
	ErrorTypeParse       ErrorType = "PARSE_ERROR"
	ErrorTypeUnsupported ErrorType = "UNSUPPORTED_SYNTAX"
	ErrorTypeGenerate    ErrorType = "GENERATE_ERROR"
)

// CompileError is the error type returned by the parser and the compiler.
// Source and Pos point at the offending text when known.
type CompileError struct {
	Type     ErrorType
	Message  string
	Source   string
	Pos      Pos
	Internal error
	Metadata map[string]any
}

func (e *CompileError) Error() string {
	msg := e.Message
	switch {
	case e.Source != "" && e.Pos.IsValid():
		msg = fmt.Sprintf("%s:%s: %s", e.Source, e.Pos, e.Message)
	case e.Pos.IsValid():
		msg = fmt.Sprintf("%s: %s", e.Pos, e.Message)
	}
	if e.Internal != nil {
		return fmt.Sprintf("%s: %s (internal: %v)", e.Type, msg, e.Internal)
	}
	return fmt.Sprintf("%s: %s", e.Type, msg)
}

func (e *CompileError) WithMetadata(meta map[string]any) *CompileError {
	if e.Metadata == nil {
		e.Metadata = map[string]any{}
	}
	for k, v := range meta {
		e.Metadata[k] = v
	}
	return e
}

func (e *CompileError) Unwrap() error {
	return e.Internal
}

// Error constructors
func NewParseError(source string, pos Pos, format string, args ...any) *CompileError {
	return &CompileError{
		Type:     ErrorTypeParse,
		Message:  fmt.Sprintf(format, args...),
		Source:   source,
		Pos:      pos,
		Metadata: map[string]any{},
	}
}

func NewUnsupportedError(source string, pos Pos, format string, args ...any) *CompileError {
	return &CompileError{
		Type:     ErrorTypeUnsupported,
		Message:  fmt.Sprintf(format, args...),
		Source:   source,
		Pos:      pos,
		Metadata: map[string]any{},
	}
}

func NewGenerateError(err error, message string) *CompileError {
	return &CompileError{
		Type:     ErrorTypeGenerate,
		Message:  message,
		Internal: err,
		Metadata: map[string]any{},
	}
}

// AsCompileError unwraps err into a *CompileError when one is present in
// its chain.
func AsCompileError(err error) (*CompileError, bool) {
	var ce *CompileError
	if errors.As(err, &ce) {
		return ce, true
	}
	return nil, false
}
