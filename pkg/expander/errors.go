package expander

import (
	"errors"
	"fmt"

	"github.com/menta2k/density-expander/pkg/density"
)

// Error kinds returned by Expand. Match them with errors.Is.
var (
	ErrFileNotFound    = errors.New("file not found")
	ErrInvalidDensity  = errors.New("invalid pixel density")
	ErrDecode          = errors.New("unable to decode image")
	ErrDirectoryCreate = errors.New("unable to create directory")
	ErrEncode          = errors.New("unable to encode image")
	ErrEmptyVariant    = errors.New("target size is empty")
)

// Error classes used when reporting failures
const (
	ClassValidation = "validation"
	ClassIO         = "io"
)

// Error describes a failed expansion step
type Error struct {
	Kind error
	Op   string
	Path string
	Err  error
}

func (e *Error) Error() string {
	msg := e.Kind.Error()
	if e.Op != "" {
		msg = e.Op + ": " + msg
	}
	if e.Path != "" {
		msg += " " + e.Path
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Is matches the error kind
func (e *Error) Is(target error) bool {
	return e.Kind == target
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Class returns the reporting class of err, or "" if err is not an expansion error
func Class(err error) string {
	switch {
	case errors.Is(err, ErrFileNotFound), errors.Is(err, ErrInvalidDensity), errors.Is(err, ErrEmptyVariant):
		return ClassValidation
	case errors.Is(err, ErrDecode), errors.Is(err, ErrDirectoryCreate), errors.Is(err, ErrEncode):
		return ClassIO
	default:
		return ""
	}
}

func invalidDensity(name string) error {
	return &Error{
		Kind: ErrInvalidDensity,
		Op:   "lookup",
		Err:  fmt.Errorf("%q is not a known density, accepted values: %s", name, density.NameList()),
	}
}
