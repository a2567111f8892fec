package user

import (
	"context"

	"github.com/muhammadheryan/contact-management/constant"
	"github.com/muhammadheryan/contact-management/model"
	userrepo "github.com/muhammadheryan/contact-management/repository/user"
	"github.com/muhammadheryan/contact-management/utils/errors"
	"github.com/muhammadheryan/contact-management/utils/logger"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type UserApp interface {
	Register(ctx context.Context, req *model.RegisterRequest) error
	Get(ctx context.Context, user *model.UserEntity) *model.UserResponse
	Update(ctx context.Context, user *model.UserEntity, req *model.UpdateUserRequest) (*model.UserResponse, error)
}

type userAppImpl struct {
	userRepo userrepo.UserRepository
}

func NewUserApp(userRepo userrepo.UserRepository) UserApp {
	return &userAppImpl{
		userRepo: userRepo,
	}
}

// Register creates a new user. The existence pre-check is not race free,
// but the primary key on username makes the losing insert fail anyway.
func (s *userAppImpl) Register(ctx context.Context, req *model.RegisterRequest) error {
	existingUser, err := s.userRepo.Get(ctx, &model.UserFilter{Username: req.Username})
	if err != nil {
		logger.Error("[Register] err userRepo.Get", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if existingUser != nil {
		return errors.SetCustomError(constant.ErrUsernameRegistered)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("[Register] err bcrypt.GenerateFromPassword", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	userEntity := &model.UserEntity{
		Username:     req.Username,
		Name:         req.Name,
		PasswordHash: string(hashedPassword),
	}

	if err := s.userRepo.Create(ctx, userEntity); err != nil {
		logger.Error("[Register] err userRepo.Create", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	return nil
}

// Get returns the profile of the already resolved identity without another
// database round trip.
func (s *userAppImpl) Get(ctx context.Context, user *model.UserEntity) *model.UserResponse {
	return &model.UserResponse{
		Username: user.Username,
		Name:     user.Name,
	}
}

// Update applies patch semantics: only fields present in the request
// change, the rest keep their prior values.
func (s *userAppImpl) Update(ctx context.Context, user *model.UserEntity, req *model.UpdateUserRequest) (*model.UserResponse, error) {
	if req.Name != nil {
		user.Name = *req.Name
	}

	if req.Password != nil {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			logger.Error("[Update] err bcrypt.GenerateFromPassword", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		user.PasswordHash = string(hashedPassword)
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		logger.Error("[Update] err userRepo.Update", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.UserResponse{
		Username: user.Username,
		Name:     user.Name,
	}, nil
}
