package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"skicheck/internal/i18n"
	"skicheck/internal/model"
	"skicheck/internal/repository"
)

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindAll(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context, page, pageSize int, filter repository.Filter, sort string) ([]model.User, error) {
	args := m.Called(ctx, page, pageSize, filter, sort)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

func (m *MockUserRepository) Save(ctx context.Context, user *model.User) (*model.User, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) Delete(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) ResetAllPaymentStatus(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func englishContext() context.Context {
	return i18n.WithLanguage(context.Background(), i18n.LanguageEN)
}

func TestUserServiceSaveAssignsID(t *testing.T) {
	repo := new(MockUserRepository)
	svc := NewUserService(repo, i18n.NewBundle())

	user := &model.User{Username: "anna"}
	saved := &model.User{ID: 7, Username: "anna"}
	repo.On("Save", mock.Anything, user).Return(saved, nil)

	resp := svc.Save(englishContext(), user)

	assert.True(t, resp.OperationSuccessful())
	assert.Equal(t, uint(7), resp.FirstBusinessObject().ID)
	assert.Equal(t, "Member saved.", resp.InfoMessage().Text)
	assert.False(t, resp.HasFailureNote())
	repo.AssertExpectations(t)
}

func TestUserServiceSaveNilEntity(t *testing.T) {
	repo := new(MockUserRepository)
	svc := NewUserService(repo, i18n.NewBundle())

	resp := svc.Save(englishContext(), nil)

	assert.False(t, resp.OperationSuccessful())
	assert.Equal(t, FailureNoteIllegalParameter, resp.FailureNote())
	assert.Equal(t, "The member could not be saved.", resp.ErrorMessage().Text)
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestUserServiceSaveDuplicateUsername(t *testing.T) {
	repo := new(MockUserRepository)
	svc := NewUserService(repo, i18n.NewBundle())

	user := &model.User{Username: "anna"}
	repo.On("Save", mock.Anything, user).Return(nil, gorm.ErrDuplicatedKey)

	resp := svc.Save(englishContext(), user)

	assert.False(t, resp.OperationSuccessful())
	assert.Equal(t, FailureNoteConstraintViolation, resp.FailureNote())
	assert.True(t, resp.HasErrorMessage())
	assert.False(t, resp.HasBusinessObjects())
}

func TestUserServiceSaveConnectionFailure(t *testing.T) {
	repo := new(MockUserRepository)
	svc := NewUserService(repo, i18n.NewBundle())

	user := &model.User{Username: "anna"}
	repo.On("Save", mock.Anything, user).Return(nil, errors.New("dial tcp: connection refused"))

	resp := svc.Save(englishContext(), user)

	assert.False(t, resp.OperationSuccessful())
	assert.Equal(t, FailureNoteConnectionFailed, resp.FailureNote())
	assert.True(t, resp.HasErrorMessage())
}

func TestUserServiceSaveLocalizedMessage(t *testing.T) {
	repo := new(MockUserRepository)
	svc := NewUserService(repo, i18n.NewBundle())

	user := &model.User{Username: "anna"}
	repo.On("Save", mock.Anything, user).Return(user, nil)

	ctx := i18n.WithLanguage(context.Background(), i18n.LanguageDE)
	resp := svc.Save(ctx, user)

	assert.Equal(t, "Mitglied gespeichert.", resp.InfoMessage().Text)
}

func TestUserServiceDeleteNilEntity(t *testing.T) {
	repo := new(MockUserRepository)
	svc := NewUserService(repo, i18n.NewBundle())

	resp := svc.Delete(englishContext(), nil)

	assert.False(t, resp.OperationSuccessful())
	assert.Equal(t, FailureNoteIllegalParameter, resp.FailureNote())
	repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestUserServiceDelete(t *testing.T) {
	repo := new(MockUserRepository)
	svc := NewUserService(repo, i18n.NewBundle())

	user := &model.User{ID: 3}
	repo.On("Delete", mock.Anything, user).Return(nil)

	resp := svc.Delete(englishContext(), user)

	assert.True(t, resp.OperationSuccessful())
	assert.Equal(t, "Member deleted.", resp.InfoMessage().Text)
	repo.AssertExpectations(t)
}

func TestUserServiceGetByIDZero(t *testing.T) {
	repo := new(MockUserRepository)
	svc := NewUserService(repo, i18n.NewBundle())

	resp := svc.GetByID(englishContext(), 0)

	assert.False(t, resp.OperationSuccessful())
	assert.Equal(t, FailureNoteIllegalParameter, resp.FailureNote())
	assert.Equal(t, "No member id given.", resp.ErrorMessage().Text)
	repo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestUserServiceGetByIDNotFound(t *testing.T) {
	repo := new(MockUserRepository)
	svc := NewUserService(repo, i18n.NewBundle())

	repo.On("FindByID", mock.Anything, uint(42)).Return(nil, gorm.ErrRecordNotFound)

	resp := svc.GetByID(englishContext(), 42)

	assert.True(t, resp.OperationSuccessful())
	assert.False(t, resp.HasBusinessObjects())
	assert.False(t, resp.HasFailureNote())
	assert.Equal(t, "No member found.", resp.InfoMessage().Text)
}

func TestUserServiceGetByIDFound(t *testing.T) {
	repo := new(MockUserRepository)
	svc := NewUserService(repo, i18n.NewBundle())

	user := &model.User{ID: 42, Username: "anna"}
	repo.On("FindByID", mock.Anything, uint(42)).Return(user, nil)

	resp := svc.GetByID(englishContext(), 42)

	assert.True(t, resp.OperationSuccessful())
	assert.Equal(t, "anna", resp.FirstBusinessObject().Username)
	assert.False(t, resp.HasAnyMessages())
}

func TestUserServiceGetByUsernameNotFound(t *testing.T) {
	repo := new(MockUserRepository)
	svc := NewUserService(repo, i18n.NewBundle())

	repo.On("FindByUsername", mock.Anything, "ghost").Return(nil, gorm.ErrRecordNotFound)

	resp := svc.GetByUsername(englishContext(), "ghost")

	assert.True(t, resp.OperationSuccessful())
	assert.False(t, resp.HasBusinessObjects())
	assert.True(t, resp.HasInfoMessage())
}

func TestUserServiceGetAllEmpty(t *testing.T) {
	repo := new(MockUserRepository)
	svc := NewUserService(repo, i18n.NewBundle())

	repo.On("FindAll", mock.Anything).Return([]model.User{}, nil)

	resp := svc.GetAll(englishContext())

	assert.True(t, resp.OperationSuccessful())
	assert.False(t, resp.HasBusinessObjects())
	assert.Equal(t, "No member found.", resp.InfoMessage().Text)
}

func TestUserServiceGetAll(t *testing.T) {
	repo := new(MockUserRepository)
	svc := NewUserService(repo, i18n.NewBundle())

	users := []model.User{{ID: 1}, {ID: 2}}
	repo.On("FindAll", mock.Anything).Return(users, nil)

	resp := svc.GetAll(englishContext())

	assert.True(t, resp.OperationSuccessful())
	assert.Len(t, resp.BusinessObjects(), 2)
}

func TestUserServiceResetAllPaymentStatus(t *testing.T) {
	repo := new(MockUserRepository)
	svc := NewUserService(repo, i18n.NewBundle())

	repo.On("ResetAllPaymentStatus", mock.Anything).Return(nil)

	resp := svc.ResetAllPaymentStatus(englishContext())

	assert.True(t, resp.OperationSuccessful())
	assert.Equal(t, "Payment status has been reset for all members.", resp.InfoMessage().Text)
	repo.AssertExpectations(t)
}

func TestUserServiceResetAllPaymentStatusFailure(t *testing.T) {
	repo := new(MockUserRepository)
	svc := NewUserService(repo, i18n.NewBundle())

	repo.On("ResetAllPaymentStatus", mock.Anything).Return(errors.New("down"))

	resp := svc.ResetAllPaymentStatus(englishContext())

	assert.False(t, resp.OperationSuccessful())
	assert.Equal(t, FailureNoteConnectionFailed, resp.FailureNote())
	assert.Equal(t, "The payment status could not be reset.", resp.ErrorMessage().Text)
}
