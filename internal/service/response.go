package service

import (
	"errors"

	"gorm.io/gorm"
)

// Message is a user-facing, already localized message, optionally bound to a
// named input field.
type Message struct {
	Property string `json:"property,omitempty"`
	Text     string `json:"text"`
}

// NewMessage builds a message without a field binding.
func NewMessage(text string) *Message {
	return &Message{Text: text}
}

// NewFieldMessage builds a message bound to a named input field.
func NewFieldMessage(property, text string) *Message {
	return &Message{Property: property, Text: text}
}

// FailureNote classifies the likely cause of a failed operation.
type FailureNote int

const (
	// FailureNoteNone marks a response without a failure classification.
	FailureNoteNone FailureNote = iota
	// FailureNoteConnectionFailed marks a failure reaching the database.
	FailureNoteConnectionFailed
	// FailureNoteConstraintViolation marks a violated database constraint,
	// e.g. a duplicate username or email.
	FailureNoteConstraintViolation
	// FailureNoteIllegalParameter marks invalid input caught before any
	// persistence call.
	FailureNoteIllegalParameter
)

// String returns the classification name.
func (n FailureNote) String() string {
	switch n {
	case FailureNoteConnectionFailed:
		return "DATABASE_CONNECTION_FAILED"
	case FailureNoteConstraintViolation:
		return "DATABASE_CONSTRAINT_VIOLATION"
	case FailureNoteIllegalParameter:
		return "ILLEGAL_PARAMETER_VALUES"
	default:
		return "NONE"
	}
}

// ParseFailure classifies a persistence error. Constraint violations are
// recognized through GORM's translated errors; anything else is treated as a
// connectivity problem, the conservative default.
func ParseFailure(err error) FailureNote {
	switch {
	case err == nil:
		return FailureNoteNone
	case errors.Is(err, gorm.ErrDuplicatedKey),
		errors.Is(err, gorm.ErrForeignKeyViolated),
		errors.Is(err, gorm.ErrCheckConstraintViolated):
		return FailureNoteConstraintViolation
	default:
		return FailureNoteConnectionFailed
	}
}

// Response is the envelope every entity operation returns: success flag,
// optional localized info and error messages, a failure classification, and
// zero or more business objects. Callers must check OperationSuccessful
// before trusting BusinessObjects; an empty object list with success true
// means the operation succeeded and found nothing.
type Response[T any] struct {
	infoMessage  *Message
	errorMessage *Message
	objects      []T
	successful   bool
	failureNote  FailureNote
}

// NewResponse returns an empty response: not successful, no messages, no
// business objects.
func NewResponse[T any]() *Response[T] {
	return &Response[T]{objects: make([]T, 0)}
}

// SetOperationSuccessful sets the success flag.
func (r *Response[T]) SetOperationSuccessful(successful bool) {
	r.successful = successful
}

// OperationSuccessful reports whether the operation succeeded.
func (r *Response[T]) OperationSuccessful() bool {
	return r.successful
}

// SetInfoMessage sets the informational message.
func (r *Response[T]) SetInfoMessage(m *Message) {
	r.infoMessage = m
}

// InfoMessage returns the informational message, nil when absent.
func (r *Response[T]) InfoMessage() *Message {
	return r.infoMessage
}

// HasInfoMessage reports whether an informational message is present.
func (r *Response[T]) HasInfoMessage() bool {
	return r.infoMessage != nil
}

// SetErrorMessage sets the error message.
func (r *Response[T]) SetErrorMessage(m *Message) {
	r.errorMessage = m
}

// ErrorMessage returns the error message, nil when absent. Callers must
// check HasErrorMessage first.
func (r *Response[T]) ErrorMessage() *Message {
	return r.errorMessage
}

// HasErrorMessage reports whether an error message is present.
func (r *Response[T]) HasErrorMessage() bool {
	return r.errorMessage != nil
}

// HasAnyMessages reports whether an info or error message is present.
func (r *Response[T]) HasAnyMessages() bool {
	return r.HasInfoMessage() || r.HasErrorMessage()
}

// AddBusinessObject appends a single business object.
func (r *Response[T]) AddBusinessObject(o T) {
	r.objects = append(r.objects, o)
}

// AddBusinessObjects appends a list of business objects.
func (r *Response[T]) AddBusinessObjects(objects []T) {
	r.objects = append(r.objects, objects...)
}

// SetBusinessObjects replaces the business objects.
func (r *Response[T]) SetBusinessObjects(objects []T) {
	if objects == nil {
		objects = make([]T, 0)
	}
	r.objects = objects
}

// BusinessObjects returns the business objects in insertion order.
func (r *Response[T]) BusinessObjects() []T {
	return r.objects
}

// HasBusinessObjects reports whether at least one business object is present.
func (r *Response[T]) HasBusinessObjects() bool {
	return len(r.objects) > 0
}

// FirstBusinessObject returns a pointer to the first business object, nil
// when the response carries none.
func (r *Response[T]) FirstBusinessObject() *T {
	if len(r.objects) == 0 {
		return nil
	}
	return &r.objects[0]
}

// SetFailureNote attaches a failure classification.
func (r *Response[T]) SetFailureNote(note FailureNote) {
	r.failureNote = note
}

// FailureNote returns the failure classification, FailureNoteNone when the
// operation did not fail or the failure was not classified.
func (r *Response[T]) FailureNote() FailureNote {
	return r.failureNote
}

// HasFailureNote reports whether a failure classification is present.
func (r *Response[T]) HasFailureNote() bool {
	return r.failureNote != FailureNoteNone
}
