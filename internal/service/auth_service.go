package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"skicheck/internal/auth"
	"skicheck/internal/i18n"
	"skicheck/internal/model"
	"skicheck/internal/repository"
	"skicheck/pkg/logger"
)

var (
	// ErrUserAlreadyExists is returned when the username or email is taken.
	ErrUserAlreadyExists = errors.New("user already exists")
	// ErrInvalidCredentials is returned on a failed login.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidRefreshToken is returned when a refresh token is expired or revoked.
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
	// ErrUserNotFound is returned when the member does not exist.
	ErrUserNotFound = errors.New("user not found")
)

// RegisterInput is the data needed to sign a new member up.
type RegisterInput struct {
	Username  string
	Email     string
	Password  string
	FirstName string
	LastName  string
	Equipment []model.Equipment
}

// TokenPair is an access/refresh token pair issued on login or refresh.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// AuthService handles registration, login and the refresh token lifecycle.
type AuthService interface {
	// Register creates a member account with the USER role and an empty
	// season record carrying the chosen equipment.
	Register(ctx context.Context, input RegisterInput) (*model.User, error)

	// Login verifies credentials and issues a token pair.
	Login(ctx context.Context, username, password string) (*TokenPair, *model.User, error)

	// RefreshToken exchanges a whitelisted refresh token for a fresh pair.
	// The old token is revoked so each refresh token works exactly once.
	RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error)

	// Logout revokes a refresh token.
	Logout(ctx context.Context, refreshToken string) error

	// CurrentUser loads the member behind an authenticated request.
	CurrentUser(ctx context.Context, username string) (*model.User, error)

	// ChangePassword lets a member replace their own password after proving
	// the old one.
	ChangePassword(ctx context.Context, username, oldPassword, newPassword string) error

	// ResetPassword sets a member's password back to the club default.
	ResetPassword(ctx context.Context, userID uint) *Response[model.User]
}

type authService struct {
	repo            repository.UserRepository
	jwtService      *auth.JWTService
	tokenStore      auth.TokenStoreInterface
	bundle          *i18n.Bundle
	defaultPassword string
	log             zerolog.Logger
}

// NewAuthService builds an AuthService. defaultPassword is the password
// assigned by admin resets and admin-created accounts.
func NewAuthService(repo repository.UserRepository, jwtService *auth.JWTService, tokenStore auth.TokenStoreInterface, bundle *i18n.Bundle, defaultPassword string) AuthService {
	return &authService{
		repo:            repo,
		jwtService:      jwtService,
		tokenStore:      tokenStore,
		bundle:          bundle,
		defaultPassword: defaultPassword,
		log:             logger.Named("auth_service"),
	}
}

func (s *authService) Register(ctx context.Context, input RegisterInput) (*model.User, error) {
	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Username:       input.Username,
		Email:          input.Email,
		FirstName:      input.FirstName,
		LastName:       input.LastName,
		HashedPassword: hash,
	}
	user.SetRoleSet(model.RoleUser)
	user.Detail.SetEquipmentSet(input.Equipment...)

	saved, err := s.repo.Save(ctx, user)
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			s.log.Warn().Str("username", input.Username).Msg("registration rejected, username or email taken")
			return nil, ErrUserAlreadyExists
		}
		return nil, err
	}
	s.log.Info().Uint("id", saved.ID).Str("username", saved.Username).Msg("member registered")
	return saved, nil
}

func (s *authService) issueTokens(ctx context.Context, user *model.User) (*TokenPair, error) {
	accessToken, err := s.jwtService.GenerateAccessToken(user)
	if err != nil {
		return nil, err
	}
	tokenID, refreshToken, err := s.jwtService.GenerateRefreshToken(user)
	if err != nil {
		return nil, err
	}
	if err := s.tokenStore.Store(ctx, tokenID, user.ID, user.Username); err != nil {
		return nil, err
	}
	return &TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

func (s *authService) Login(ctx context.Context, username, password string) (*TokenPair, *model.User, error) {
	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrInvalidCredentials
		}
		return nil, nil, err
	}
	if !auth.CheckPassword(user.HashedPassword, password) {
		s.log.Warn().Str("username", username).Msg("login rejected, wrong password")
		return nil, nil, ErrInvalidCredentials
	}

	pair, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, nil, err
	}
	s.log.Info().Str("username", username).Msg("member logged in")
	return pair, user, nil
}

func (s *authService) RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error) {
	tokenID, err := s.jwtService.ExtractTokenID(refreshToken)
	if err != nil {
		return nil, ErrInvalidRefreshToken
	}
	userID, _, found := s.tokenStore.Lookup(ctx, tokenID)
	if !found {
		s.log.Warn().Str("token_id", tokenID).Msg("refresh rejected, token not whitelisted")
		return nil, ErrInvalidRefreshToken
	}

	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidRefreshToken
		}
		return nil, err
	}

	// rotate: the used token is dead either way
	if err := s.tokenStore.Revoke(ctx, tokenID); err != nil {
		return nil, err
	}
	return s.issueTokens(ctx, user)
}

func (s *authService) Logout(ctx context.Context, refreshToken string) error {
	tokenID, err := s.jwtService.ExtractTokenID(refreshToken)
	if err != nil {
		return ErrInvalidRefreshToken
	}
	return s.tokenStore.Revoke(ctx, tokenID)
}

func (s *authService) CurrentUser(ctx context.Context, username string) (*model.User, error) {
	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *authService) ChangePassword(ctx context.Context, username, oldPassword, newPassword string) error {
	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	if !auth.CheckPassword(user.HashedPassword, oldPassword) {
		return ErrInvalidCredentials
	}

	hash, err := auth.HashPassword(newPassword)
	if err != nil {
		return err
	}
	user.HashedPassword = hash
	_, err = s.repo.Save(ctx, user)
	return err
}

func (s *authService) ResetPassword(ctx context.Context, userID uint) *Response[model.User] {
	resp := NewResponse[model.User]()
	if userID == 0 {
		resp.SetFailureNote(FailureNoteIllegalParameter)
		resp.SetErrorMessage(NewMessage(s.bundle.Message(i18n.FromContext(ctx), "userService.message.givenIdWasNull")))
		return resp
	}

	user, err := s.repo.FindByID(ctx, userID)
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		resp.SetOperationSuccessful(true)
		resp.SetInfoMessage(NewMessage(s.bundle.Message(i18n.FromContext(ctx), "userService.message.notFound")))
		return resp
	case err != nil:
		resp.SetFailureNote(ParseFailure(err))
		resp.SetErrorMessage(NewMessage(s.bundle.Message(i18n.FromContext(ctx), "general.message.error")))
		return resp
	}

	hash, err := auth.HashPassword(s.defaultPassword)
	if err != nil {
		resp.SetFailureNote(FailureNoteConnectionFailed)
		resp.SetErrorMessage(NewMessage(s.bundle.Message(i18n.FromContext(ctx), "general.message.error")))
		return resp
	}
	user.HashedPassword = hash

	saved, err := s.repo.Save(ctx, user)
	if err != nil {
		resp.SetFailureNote(ParseFailure(err))
		resp.SetErrorMessage(NewMessage(s.bundle.Message(i18n.FromContext(ctx), "general.message.error")))
		return resp
	}

	s.log.Info().Uint("id", userID).Msg("password reset to club default")
	resp.SetOperationSuccessful(true)
	resp.AddBusinessObject(*saved)
	resp.SetInfoMessage(NewMessage(s.bundle.Message(i18n.FromContext(ctx), "authService.message.passwordReset", s.defaultPassword)))
	return resp
}
