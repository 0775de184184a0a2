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

// UserDetailService exposes operations on the season state of members.
type UserDetailService interface {
	Crud[model.UserDetail]

	// ResetAllPaymentStatus clears the paid flag on every detail row that
	// has one set.
	ResetAllPaymentStatus(ctx context.Context) *Response[model.UserDetail]
}

type userDetailService struct {
	repo   repository.UserDetailRepository
	bundle *i18n.Bundle
	log    zerolog.Logger
}

// NewUserDetailService builds a UserDetailService with its repository and
// message bundle.
func NewUserDetailService(repo repository.UserDetailRepository, bundle *i18n.Bundle) UserDetailService {
	return &userDetailService{repo: repo, bundle: bundle, log: logger.Named("user_detail_service")}
}

func (s *userDetailService) message(ctx context.Context, key string, args ...any) *Message {
	return NewMessage(s.bundle.Message(i18n.FromContext(ctx), key, args...))
}

func (s *userDetailService) Save(ctx context.Context, entity *model.UserDetail) *Response[model.UserDetail] {
	resp := NewResponse[model.UserDetail]()
	if entity == nil {
		s.log.Warn().Msg("received nil detail for saving")
		resp.SetFailureNote(FailureNoteIllegalParameter)
		resp.SetErrorMessage(s.message(ctx, "userDetailService.message.saveError"))
		return resp
	}
	s.log.Debug().Uint("id", entity.ID).Msg("received detail for saving")

	saved, err := s.repo.Save(ctx, entity)
	if err != nil {
		s.log.Error().Err(err).Uint("id", entity.ID).Msg("detail could not be saved")
		resp.SetFailureNote(ParseFailure(err))
		resp.SetErrorMessage(s.message(ctx, "userDetailService.message.saveError"))
		return resp
	}

	resp.SetOperationSuccessful(true)
	resp.AddBusinessObject(*saved)
	resp.SetInfoMessage(s.message(ctx, "userDetailService.message.saved"))
	return resp
}

func (s *userDetailService) Delete(ctx context.Context, entity *model.UserDetail) *Response[model.UserDetail] {
	resp := NewResponse[model.UserDetail]()
	if entity == nil {
		s.log.Warn().Msg("received nil detail for deleting")
		resp.SetFailureNote(FailureNoteIllegalParameter)
		resp.SetErrorMessage(s.message(ctx, "userDetailService.message.deleteError"))
		return resp
	}
	s.log.Debug().Uint("id", entity.ID).Msg("received detail for deleting")

	if err := s.repo.Delete(ctx, entity); err != nil {
		s.log.Error().Err(err).Uint("id", entity.ID).Msg("detail could not be deleted")
		resp.SetFailureNote(ParseFailure(err))
		resp.SetErrorMessage(s.message(ctx, "userDetailService.message.deleteError"))
		return resp
	}

	resp.SetOperationSuccessful(true)
	resp.SetInfoMessage(s.message(ctx, "userDetailService.message.deleted"))
	return resp
}

func (s *userDetailService) GetByID(ctx context.Context, id uint) *Response[model.UserDetail] {
	resp := NewResponse[model.UserDetail]()
	if id == 0 {
		s.log.Warn().Msg("given detail id was zero")
		resp.SetFailureNote(FailureNoteIllegalParameter)
		resp.SetErrorMessage(s.message(ctx, "userDetailService.message.givenIdWasNull"))
		return resp
	}
	s.log.Debug().Uint("id", id).Msg("looking for detail by id")

	detail, err := s.repo.FindByID(ctx, id)
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		s.log.Warn().Uint("id", id).Msg("detail not found")
		resp.SetOperationSuccessful(true)
		resp.SetInfoMessage(s.message(ctx, "userDetailService.message.notFound"))
	case err != nil:
		s.log.Error().Err(err).Uint("id", id).Msg("detail lookup failed")
		resp.SetFailureNote(ParseFailure(err))
		resp.SetErrorMessage(s.message(ctx, "general.message.error"))
	default:
		resp.SetOperationSuccessful(true)
		resp.AddBusinessObject(*detail)
	}
	return resp
}

func (s *userDetailService) GetAll(ctx context.Context) *Response[model.UserDetail] {
	resp := NewResponse[model.UserDetail]()
	s.log.Debug().Msg("all details requested")

	details, err := s.repo.FindAll(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("listing details failed")
		resp.SetFailureNote(ParseFailure(err))
		resp.SetErrorMessage(s.message(ctx, "general.message.error"))
		return resp
	}

	resp.SetOperationSuccessful(true)
	if len(details) == 0 {
		resp.SetInfoMessage(s.message(ctx, "userDetailService.message.notFound"))
		return resp
	}
	resp.SetBusinessObjects(details)
	return resp
}

func (s *userDetailService) ResetAllPaymentStatus(ctx context.Context) *Response[model.UserDetail] {
	resp := NewResponse[model.UserDetail]()
	s.log.Debug().Msg("resetting payment status for all members")

	if err := s.repo.ResetAllPayments(ctx); err != nil {
		s.log.Error().Err(err).Msg("payment status reset failed")
		resp.SetFailureNote(ParseFailure(err))
		resp.SetErrorMessage(s.message(ctx, "userDetailService.message.paymentStatusResetError"))
		return resp
	}

	resp.SetOperationSuccessful(true)
	resp.SetInfoMessage(s.message(ctx, "userDetailService.message.paymentStatusReset"))
	return resp
}
