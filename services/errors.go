package services

import (
	"errors"
	"fmt"
)

// ErrorKind classifies service failures so the HTTP layer can pick a status code
type ErrorKind int

const (
	KindNotFound ErrorKind = iota
	KindDuplicate
	KindValidation
)

// ServiceError is a domain error with a distinguishable kind
type ServiceError struct {
	Kind    ErrorKind
	Message string
}

func (e *ServiceError) Error() string { return e.Message }

// NotFound builds a "<Entity> not found" error
func NotFound(entity string) *ServiceError {
	return &ServiceError{Kind: KindNotFound, Message: entity + " not found"}
}

// Duplicate builds an "already exists" error for a business key collision
func Duplicate(entity, id string) *ServiceError {
	return &ServiceError{Kind: KindDuplicate, Message: fmt.Sprintf("%s %q already exists", entity, id)}
}

// Invalid builds a validation error
func Invalid(message string) *ServiceError {
	return &ServiceError{Kind: KindValidation, Message: message}
}

func isKind(err error, kind ErrorKind) bool {
	var svcErr *ServiceError
	return errors.As(err, &svcErr) && svcErr.Kind == kind
}

func IsNotFound(err error) bool   { return isKind(err, KindNotFound) }
func IsDuplicate(err error) bool  { return isKind(err, KindDuplicate) }
func IsValidation(err error) bool { return isKind(err, KindValidation) }
