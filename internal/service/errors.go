package service

import (
	"errors"
	"fmt"
)

var (
	ErrSurveyNotFound     = errors.New("survey not found")
	ErrForbidden          = errors.New("access denied")
	ErrAlreadySubmitted   = errors.New("you have already submitted a response for this survey")
	ErrEmailTaken         = errors.New("user with this email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
)

// InvalidInputError reports a request that is malformed at the domain level:
// missing fields, empty answer lists, unknown question references, values
// whose shape does not match the question type.
type InvalidInputError struct {
	Reason string
}

func (e *InvalidInputError) Error() string {
	return e.Reason
}

func invalidInput(format string, args ...any) error {
	return &InvalidInputError{Reason: fmt.Sprintf(format, args...)}
}

// IsInvalidInput reports whether err is an InvalidInputError.
func IsInvalidInput(err error) bool {
	var ie *InvalidInputError
	return errors.As(err, &ie)
}
