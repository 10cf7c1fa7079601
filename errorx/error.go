package errorx

import (
	"fmt"

	"github.com/pkg/errors"
)

// CliniaError classifies a failure with one of the ErrorType codes. Domain
// errors expose it through a Cause method so that the Is… predicates below
// apply to them as well.
type CliniaError struct {
	Type    ErrorType `json:"type"`
	Message string    `json:"message"`
}

var _ error = (*CliniaError)(nil)

func (e CliniaError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Type.String(), e.Message)
}

// IsCliniaError unwraps e with errors.Cause and reports whether the root cause is a CliniaError.
func IsCliniaError(e error) (*CliniaError, bool) {
	e = errors.Cause(e)
	mE, ok := e.(CliniaError)
	if !ok {
		return nil, false
	}

	if mE.Type == ErrorTypeUnspecified {
		return nil, false
	}

	return &mE, true
}

func IsInvalidArgumentError(e error) bool {
	mE, ok := IsCliniaError(e)
	if !ok {
		return false
	}

	return mE.Type == ErrorTypeInvalidArgument
}

func IsOutOfRange(e error) bool {
	mE, ok := IsCliniaError(e)
	if !ok {
		return false
	}

	return mE.Type == ErrorTypeOutOfRange
}

// InvalidArgumentErrorf creates a CliniaError with type ErrorTypeInvalidArgument and a formatted message
func InvalidArgumentErrorf(format string, args ...any) CliniaError {
	return CliniaError{
		Type:    ErrorTypeInvalidArgument,
		Message: fmt.Sprintf(format, args...),
	}
}

// OutOfRangeErrorf creates a CliniaError with type ErrorTypeOutOfRange and a formatted message
func OutOfRangeErrorf(format string, args ...any) CliniaError {
	return CliniaError{
		Type:    ErrorTypeOutOfRange,
		Message: fmt.Sprintf(format, args...),
	}
}
