package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"skicheck/internal/i18n"
	"skicheck/internal/model"
)

// MockUserDetailRepository is a mock implementation of UserDetailRepository.
type MockUserDetailRepository struct {
	mock.Mock
}

func (m *MockUserDetailRepository) FindAll(ctx context.Context) ([]model.UserDetail, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.UserDetail), args.Error(1)
}

func (m *MockUserDetailRepository) FindByID(ctx context.Context, id uint) (*model.UserDetail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.UserDetail), args.Error(1)
}

func (m *MockUserDetailRepository) Save(ctx context.Context, detail *model.UserDetail) (*model.UserDetail, error) {
	args := m.Called(ctx, detail)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.UserDetail), args.Error(1)
}

func (m *MockUserDetailRepository) Delete(ctx context.Context, detail *model.UserDetail) error {
	args := m.Called(ctx, detail)
	return args.Error(0)
}

func (m *MockUserDetailRepository) ResetAllPayments(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func TestUserDetailServiceSave(t *testing.T) {
	repo := new(MockUserDetailRepository)
	svc := NewUserDetailService(repo, i18n.NewBundle())

	detail := &model.UserDetail{UserID: 1, HasPaid: true}
	saved := &model.UserDetail{ID: 5, UserID: 1, HasPaid: true}
	repo.On("Save", mock.Anything, detail).Return(saved, nil)

	resp := svc.Save(englishContext(), detail)

	assert.True(t, resp.OperationSuccessful())
	assert.Equal(t, uint(5), resp.FirstBusinessObject().ID)
	assert.Equal(t, "Member details saved.", resp.InfoMessage().Text)
	repo.AssertExpectations(t)
}

func TestUserDetailServiceSaveNilEntity(t *testing.T) {
	repo := new(MockUserDetailRepository)
	svc := NewUserDetailService(repo, i18n.NewBundle())

	resp := svc.Save(englishContext(), nil)

	assert.False(t, resp.OperationSuccessful())
	assert.Equal(t, FailureNoteIllegalParameter, resp.FailureNote())
	assert.Equal(t, "The member details could not be saved.", resp.ErrorMessage().Text)
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestUserDetailServiceSaveDuplicateOwner(t *testing.T) {
	repo := new(MockUserDetailRepository)
	svc := NewUserDetailService(repo, i18n.NewBundle())

	detail := &model.UserDetail{UserID: 1}
	repo.On("Save", mock.Anything, detail).Return(nil, gorm.ErrDuplicatedKey)

	resp := svc.Save(englishContext(), detail)

	assert.False(t, resp.OperationSuccessful())
	assert.Equal(t, FailureNoteConstraintViolation, resp.FailureNote())
}

func TestUserDetailServiceGetByIDZero(t *testing.T) {
	repo := new(MockUserDetailRepository)
	svc := NewUserDetailService(repo, i18n.NewBundle())

	resp := svc.GetByID(englishContext(), 0)

	assert.False(t, resp.OperationSuccessful())
	assert.Equal(t, FailureNoteIllegalParameter, resp.FailureNote())
	assert.Equal(t, "No member details id given.", resp.ErrorMessage().Text)
	repo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestUserDetailServiceGetByIDNotFound(t *testing.T) {
	repo := new(MockUserDetailRepository)
	svc := NewUserDetailService(repo, i18n.NewBundle())

	repo.On("FindByID", mock.Anything, uint(9)).Return(nil, gorm.ErrRecordNotFound)

	resp := svc.GetByID(englishContext(), 9)

	assert.True(t, resp.OperationSuccessful())
	assert.False(t, resp.HasBusinessObjects())
	assert.Equal(t, "No member details found.", resp.InfoMessage().Text)
}

func TestUserDetailServiceDelete(t *testing.T) {
	repo := new(MockUserDetailRepository)
	svc := NewUserDetailService(repo, i18n.NewBundle())

	detail := &model.UserDetail{ID: 5}
	repo.On("Delete", mock.Anything, detail).Return(nil)

	resp := svc.Delete(englishContext(), detail)

	assert.True(t, resp.OperationSuccessful())
	assert.Equal(t, "Member details deleted.", resp.InfoMessage().Text)
}

func TestUserDetailServiceGetAllEmpty(t *testing.T) {
	repo := new(MockUserDetailRepository)
	svc := NewUserDetailService(repo, i18n.NewBundle())

	repo.On("FindAll", mock.Anything).Return([]model.UserDetail{}, nil)

	resp := svc.GetAll(englishContext())

	assert.True(t, resp.OperationSuccessful())
	assert.False(t, resp.HasBusinessObjects())
	assert.True(t, resp.HasInfoMessage())
}

func TestUserDetailServiceResetAllPaymentStatus(t *testing.T) {
	repo := new(MockUserDetailRepository)
	svc := NewUserDetailService(repo, i18n.NewBundle())

	repo.On("ResetAllPayments", mock.Anything).Return(nil)

	resp := svc.ResetAllPaymentStatus(englishContext())

	assert.True(t, resp.OperationSuccessful())
	assert.Equal(t, "Payment status has been reset for all members.", resp.InfoMessage().Text)
	repo.AssertExpectations(t)
}
