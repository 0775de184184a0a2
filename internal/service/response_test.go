package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"skicheck/internal/model"
)

func TestNewResponseIsEmpty(t *testing.T) {
	resp := NewResponse[model.User]()

	assert.False(t, resp.OperationSuccessful())
	assert.False(t, resp.HasInfoMessage())
	assert.False(t, resp.HasErrorMessage())
	assert.False(t, resp.HasAnyMessages())
	assert.False(t, resp.HasBusinessObjects())
	assert.False(t, resp.HasFailureNote())
	assert.NotNil(t, resp.BusinessObjects())
	assert.Empty(t, resp.BusinessObjects())
	assert.Nil(t, resp.FirstBusinessObject())
}

func TestResponseBusinessObjectsKeepOrder(t *testing.T) {
	resp := NewResponse[model.User]()
	resp.AddBusinessObject(model.User{Username: "first"})
	resp.AddBusinessObjects([]model.User{{Username: "second"}, {Username: "third"}})

	objects := resp.BusinessObjects()
	assert.Len(t, objects, 3)
	assert.Equal(t, "first", objects[0].Username)
	assert.Equal(t, "third", objects[2].Username)
	assert.Equal(t, "first", resp.FirstBusinessObject().Username)
}

func TestResponseSetBusinessObjectsNilBecomesEmpty(t *testing.T) {
	resp := NewResponse[model.User]()
	resp.SetBusinessObjects(nil)

	assert.NotNil(t, resp.BusinessObjects())
	assert.Empty(t, resp.BusinessObjects())
}

func TestResponseMessages(t *testing.T) {
	resp := NewResponse[model.User]()

	resp.SetInfoMessage(NewMessage("saved"))
	assert.True(t, resp.HasInfoMessage())
	assert.True(t, resp.HasAnyMessages())
	assert.Equal(t, "saved", resp.InfoMessage().Text)

	resp.SetErrorMessage(NewFieldMessage("username", "taken"))
	assert.True(t, resp.HasErrorMessage())
	assert.Equal(t, "username", resp.ErrorMessage().Property)
	assert.Equal(t, "taken", resp.ErrorMessage().Text)
}

func TestFailureNoteString(t *testing.T) {
	assert.Equal(t, "NONE", FailureNoteNone.String())
	assert.Equal(t, "DATABASE_CONNECTION_FAILED", FailureNoteConnectionFailed.String())
	assert.Equal(t, "DATABASE_CONSTRAINT_VIOLATION", FailureNoteConstraintViolation.String())
	assert.Equal(t, "ILLEGAL_PARAMETER_VALUES", FailureNoteIllegalParameter.String())
}

func TestParseFailure(t *testing.T) {
	assert.Equal(t, FailureNoteNone, ParseFailure(nil))
	assert.Equal(t, FailureNoteConstraintViolation, ParseFailure(gorm.ErrDuplicatedKey))
	assert.Equal(t, FailureNoteConstraintViolation, ParseFailure(gorm.ErrForeignKeyViolated))
	assert.Equal(t, FailureNoteConstraintViolation, ParseFailure(gorm.ErrCheckConstraintViolated))
	assert.Equal(t, FailureNoteConnectionFailed, ParseFailure(errors.New("dial tcp: connection refused")))
}

func TestResponseFailureNote(t *testing.T) {
	resp := NewResponse[model.User]()
	resp.SetFailureNote(FailureNoteConstraintViolation)

	assert.True(t, resp.HasFailureNote())
	assert.Equal(t, FailureNoteConstraintViolation, resp.FailureNote())
}
