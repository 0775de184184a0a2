package service

import "context"

// Crud is the contract every entity service implements: the four core
// operations, each reporting through a Response instead of raising errors.
// Persistence failures never cross this boundary; they are classified and
// converted exactly once.
type Crud[T any] interface {
	// Save persists the entity, inserting or updating as appropriate. A
	// successful response carries the persisted entity, with its generated
	// id when newly created, as the sole business object.
	Save(ctx context.Context, entity *T) *Response[T]

	// Delete removes the entity.
	Delete(ctx context.Context, entity *T) *Response[T]

	// GetByID looks the entity up. A missing record is not a failure: the
	// response is successful, carries no business object, and has an info
	// message. A zero id is rejected before any persistence call.
	GetByID(ctx context.Context, id uint) *Response[T]

	// GetAll returns every entity. An empty table follows the same
	// successful-but-empty shape as GetByID on a missing record.
	GetAll(ctx context.Context) *Response[T]
}
