package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"skicheck/internal/i18n"
	"skicheck/internal/model"
	"skicheck/internal/repository"
	"skicheck/pkg/logger"
)

// UserService exposes member operations on top of the user repository.
type UserService interface {
	Crud[model.User]

	// List returns one page of users, passed through from the repository
	// without envelope or messages. Ordering follows the caller-supplied
	// sort, filtering is an opaque predicate applied unmodified.
	List(ctx context.Context, page, pageSize int, filter repository.Filter, sort string) ([]model.User, error)

	// GetByUsername looks a member up by login name.
	GetByUsername(ctx context.Context, username string) *Response[model.User]

	// ResetAllPaymentStatus clears the paid flag for every member that has
	// one set. Calling it again is a no-op that still succeeds.
	ResetAllPaymentStatus(ctx context.Context) *Response[model.User]
}

type userService struct {
	repo   repository.UserRepository
	bundle *i18n.Bundle
	log    zerolog.Logger
}

// NewUserService builds a UserService with its repository and message bundle.
func NewUserService(repo repository.UserRepository, bundle *i18n.Bundle) UserService {
	return &userService{repo: repo, bundle: bundle, log: logger.Named("user_service")}
}

func (s *userService) message(ctx context.Context, key string, args ...any) *Message {
	return NewMessage(s.bundle.Message(i18n.FromContext(ctx), key, args...))
}

func (s *userService) Save(ctx context.Context, entity *model.User) *Response[model.User] {
	resp := NewResponse[model.User]()
	if entity == nil {
		s.log.Warn().Msg("received nil user for saving")
		resp.SetFailureNote(FailureNoteIllegalParameter)
		resp.SetErrorMessage(s.message(ctx, "userService.message.saveError"))
		return resp
	}
	s.log.Debug().Uint("id", entity.ID).Msg("received user for saving")

	saved, err := s.repo.Save(ctx, entity)
	if err != nil {
		s.log.Error().Err(err).Uint("id", entity.ID).Msg("user could not be saved")
		resp.SetFailureNote(ParseFailure(err))
		resp.SetErrorMessage(s.message(ctx, "userService.message.saveError"))
		return resp
	}

	resp.SetOperationSuccessful(true)
	resp.AddBusinessObject(*saved)
	resp.SetInfoMessage(s.message(ctx, "userService.message.saved"))
	s.log.Debug().Uint("id", saved.ID).Msg("user has been saved")
	return resp
}

func (s *userService) Delete(ctx context.Context, entity *model.User) *Response[model.User] {
	resp := NewResponse[model.User]()
	if entity == nil {
		s.log.Warn().Msg("received nil user for deleting")
		resp.SetFailureNote(FailureNoteIllegalParameter)
		resp.SetErrorMessage(s.message(ctx, "userService.message.deleteError"))
		return resp
	}
	s.log.Debug().Uint("id", entity.ID).Msg("received user for deleting")

	if err := s.repo.Delete(ctx, entity); err != nil {
		s.log.Error().Err(err).Uint("id", entity.ID).Msg("user could not be deleted")
		resp.SetFailureNote(ParseFailure(err))
		resp.SetErrorMessage(s.message(ctx, "userService.message.deleteError"))
		return resp
	}

	resp.SetOperationSuccessful(true)
	resp.SetInfoMessage(s.message(ctx, "userService.message.deleted"))
	return resp
}

func (s *userService) GetByID(ctx context.Context, id uint) *Response[model.User] {
	resp := NewResponse[model.User]()
	if id == 0 {
		s.log.Warn().Msg("given user id was zero")
		resp.SetFailureNote(FailureNoteIllegalParameter)
		resp.SetErrorMessage(s.message(ctx, "userService.message.givenIdWasNull"))
		return resp
	}
	s.log.Debug().Uint("id", id).Msg("looking for user by id")

	user, err := s.repo.FindByID(ctx, id)
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		s.log.Warn().Uint("id", id).Msg("user not found")
		resp.SetOperationSuccessful(true)
		resp.SetInfoMessage(s.message(ctx, "userService.message.notFound"))
	case err != nil:
		s.log.Error().Err(err).Uint("id", id).Msg("user lookup failed")
		resp.SetFailureNote(ParseFailure(err))
		resp.SetErrorMessage(s.message(ctx, "general.message.error"))
	default:
		resp.SetOperationSuccessful(true)
		resp.AddBusinessObject(*user)
	}
	return resp
}

func (s *userService) GetByUsername(ctx context.Context, username string) *Response[model.User] {
	resp := NewResponse[model.User]()
	if username == "" {
		s.log.Warn().Msg("given username was empty")
		resp.SetFailureNote(FailureNoteIllegalParameter)
		resp.SetErrorMessage(s.message(ctx, "userService.message.givenIdWasNull"))
		return resp
	}
	s.log.Debug().Str("username", username).Msg("looking for user by username")

	user, err := s.repo.FindByUsername(ctx, username)
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		resp.SetOperationSuccessful(true)
		resp.SetInfoMessage(s.message(ctx, "userService.message.notFound"))
	case err != nil:
		s.log.Error().Err(err).Str("username", username).Msg("user lookup failed")
		resp.SetFailureNote(ParseFailure(err))
		resp.SetErrorMessage(s.message(ctx, "general.message.error"))
	default:
		resp.SetOperationSuccessful(true)
		resp.AddBusinessObject(*user)
	}
	return resp
}

func (s *userService) GetAll(ctx context.Context) *Response[model.User] {
	resp := NewResponse[model.User]()
	s.log.Debug().Msg("all users requested")

	users, err := s.repo.FindAll(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("listing users failed")
		resp.SetFailureNote(ParseFailure(err))
		resp.SetErrorMessage(s.message(ctx, "general.message.error"))
		return resp
	}

	resp.SetOperationSuccessful(true)
	if len(users) == 0 {
		resp.SetInfoMessage(s.message(ctx, "userService.message.notFound"))
		return resp
	}
	resp.SetBusinessObjects(users)
	s.log.Debug().Int("count", len(users)).Msg("users found")
	return resp
}

func (s *userService) List(ctx context.Context, page, pageSize int, filter repository.Filter, sort string) ([]model.User, error) {
	s.log.Debug().Int("page", page).Int("page_size", pageSize).Msg("returning user page")
	return s.repo.List(ctx, page, pageSize, filter, sort)
}

func (s *userService) ResetAllPaymentStatus(ctx context.Context) *Response[model.User] {
	resp := NewResponse[model.User]()
	s.log.Debug().Msg("resetting all payment status")

	if err := s.repo.ResetAllPaymentStatus(ctx); err != nil {
		s.log.Error().Err(err).Msg("payment status reset failed")
		resp.SetFailureNote(ParseFailure(err))
		resp.SetErrorMessage(s.message(ctx, "userService.message.paymentStatusResetError"))
		return resp
	}

	resp.SetOperationSuccessful(true)
	resp.SetInfoMessage(s.message(ctx, "userService.message.paymentStatusReset"))
	return resp
}
