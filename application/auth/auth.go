package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/muhammadheryan/contact-management/cmd/config"
	"github.com/muhammadheryan/contact-management/constant"
	"github.com/muhammadheryan/contact-management/model"
	redisrepo "github.com/muhammadheryan/contact-management/repository/redis"
	userrepo "github.com/muhammadheryan/contact-management/repository/user"
	"github.com/muhammadheryan/contact-management/utils/errors"
	"github.com/muhammadheryan/contact-management/utils/logger"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type AuthApp interface {
	Login(ctx context.Context, req *model.LoginRequest) (*model.TokenResponse, error)
	Authenticate(ctx context.Context, token string) (*model.UserEntity, error)
	Logout(ctx context.Context, user *model.UserEntity) error
}

type authAppImpl struct {
	config    *config.Config
	userRepo  userrepo.UserRepository
	redisRepo redisrepo.Repository
}

func NewAuthApp(config *config.Config, userRepo userrepo.UserRepository, redisRepo redisrepo.Repository) AuthApp {
	return &authAppImpl{
		config:    config,
		userRepo:  userRepo,
		redisRepo: redisRepo,
	}
}

// Login verifies the credentials and issues a fresh opaque bearer token.
// Unknown username and wrong password return the same error so callers
// cannot probe which usernames exist.
func (s *authAppImpl) Login(ctx context.Context, req *model.LoginRequest) (*model.TokenResponse, error) {
	user, err := s.userRepo.Get(ctx, &model.UserFilter{Username: req.Username})
	if err != nil {
		logger.Error("[Login] err userRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if user == nil {
		return nil, errors.SetCustomError(constant.ErrInvalidCredential)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, errors.SetCustomError(constant.ErrInvalidCredential)
	}

	token := uuid.NewString()
	expiredAt := time.Now().Add(s.config.Auth.TokenTTL).UnixMilli()

	user.Token = &token
	user.TokenExpiredAt = &expiredAt
	if err := s.userRepo.Update(ctx, user); err != nil {
		logger.Error("[Login] err userRepo.Update", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	// Best effort cache fill; the users row stays the source of truth.
	if err := s.redisRepo.SetToken(ctx, token, user.Username, s.config.Auth.TokenTTL); err != nil {
		logger.Warn("[Login] err redisRepo.SetToken", zap.String("error", err.Error()))
	}

	return &model.TokenResponse{
		Token:     token,
		ExpiredAt: expiredAt,
	}, nil
}

// Authenticate resolves a bearer token to its user. It fails when the token
// is blank, unknown, or past its expiry instant.
func (s *authAppImpl) Authenticate(ctx context.Context, token string) (*model.UserEntity, error) {
	if token == "" {
		return nil, errors.SetCustomError(constant.ErrUnauthorize)
	}

	user, err := s.lookupUser(ctx, token)
	if err != nil {
		logger.Error("[Authenticate] err lookupUser", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if user == nil || user.Token == nil || *user.Token != token {
		return nil, errors.SetCustomError(constant.ErrUnauthorize)
	}
	if user.TokenExpiredAt == nil || time.Now().UnixMilli() > *user.TokenExpiredAt {
		return nil, errors.SetCustomError(constant.ErrUnauthorize)
	}

	return user, nil
}

// lookupUser consults the token cache first and falls back to the users
// table, backfilling the cache with the remaining token lifetime.
func (s *authAppImpl) lookupUser(ctx context.Context, token string) (*model.UserEntity, error) {
	if username, err := s.redisRepo.GetToken(ctx, token); err == nil && username != "" {
		return s.userRepo.Get(ctx, &model.UserFilter{Username: username})
	}

	user, err := s.userRepo.Get(ctx, &model.UserFilter{Token: token})
	if err != nil {
		return nil, err
	}

	if user != nil && user.TokenExpiredAt != nil {
		remaining := time.Until(time.UnixMilli(*user.TokenExpiredAt))
		if remaining > 0 {
			if err := s.redisRepo.SetToken(ctx, token, user.Username, remaining); err != nil {
				logger.Warn("[Authenticate] err redisRepo.SetToken", zap.String("error", err.Error()))
			}
		}
	}
	return user, nil
}

// Logout clears the token pair unconditionally, so repeating it is
// harmless.
func (s *authAppImpl) Logout(ctx context.Context, user *model.UserEntity) error {
	if user.Token != nil {
		if err := s.redisRepo.DeleteToken(ctx, *user.Token); err != nil {
			logger.Warn("[Logout] err redisRepo.DeleteToken", zap.String("error", err.Error()))
		}
	}

	user.Token = nil
	user.TokenExpiredAt = nil
	if err := s.userRepo.Update(ctx, user); err != nil {
		logger.Error("[Logout] err userRepo.Update", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}
