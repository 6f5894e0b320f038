package services

import (
	"errors"
	"net/http"

	"github.com/revanth-raj24/AlmirahShop/lifecycle"
)

// ServiceError is a typed error with an HTTP status code.
type ServiceError struct {
	StatusCode int
	Message    string
}

func (e *ServiceError) Error() string { return e.Message }

func badRequest(msg string) *ServiceError {
	return &ServiceError{StatusCode: http.StatusBadRequest, Message: msg}
}

func forbidden(msg string) *ServiceError {
	return &ServiceError{StatusCode: http.StatusForbidden, Message: msg}
}

func notFound(msg string) *ServiceError {
	return &ServiceError{StatusCode: http.StatusNotFound, Message: msg}
}

func internal(msg string) *ServiceError {
	return &ServiceError{StatusCode: http.StatusInternalServerError, Message: msg}
}

// precondition maps an illegal-transition error to a 400 whose message
// names the actual current state.
func precondition(err *lifecycle.TransitionError) *ServiceError {
	return &ServiceError{StatusCode: http.StatusBadRequest, Message: err.Error()}
}

// asServiceError unwraps a *ServiceError smuggled through an error chain
// (transaction closures return plain errors).
func asServiceError(err error) *ServiceError {
	if err == nil {
		return nil
	}
	var se *ServiceError
	if errors.As(err, &se) {
		return se
	}
	return nil
}
