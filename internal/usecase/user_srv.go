package usecase

import (
	"context"
	"errors"
	"strings"

	"streamview/internal/data/entity"
	"streamview/internal/data/repository"
	"streamview/internal/dto/request"
	"streamview/internal/dto/response"
	"streamview/pkg/utils"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type UserService interface {
	CreateUser(ctx context.Context, req *request.UserRequest) (*response.UserResponse, error)
	GetUser(ctx context.Context, id int) (*response.UserResponse, error)
}

type userService struct {
	userRepo repository.UserRepository
	log      *zap.Logger
}

func NewUserService(userRepo repository.UserRepository, log *zap.Logger) UserService {
	return &userService{
		userRepo: userRepo,
		log:      log.With(zap.String("service", "user")),
	}
}

func (us *userService) CreateUser(ctx context.Context, req *request.UserRequest) (*response.UserResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		us.log.Warn("Create user validation failed", zap.Any("errors", errs))
		return nil, utils.ValidationError("Invalid user data", errs)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		us.log.Error("Failed to hash password", zap.Error(err))
		return nil, utils.InternalError("Failed to create user", err)
	}

	user := &entity.User{
		Username:     strings.TrimSpace(req.Username),
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: string(hash),
	}

	if err := us.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, utils.ConflictError("Username or email already registered", err)
		}
		return nil, utils.InternalError("Failed to create user", err)
	}

	us.log.Info("User created", zap.Int("user_id", user.ID), zap.String("username", user.Username))

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (us *userService) GetUser(ctx context.Context, id int) (*response.UserResponse, error) {
	user, err := us.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, utils.InternalError("Failed to get user", err)
	}
	if user == nil {
		return nil, utils.NotFoundError("User not found")
	}

	resp := response.UserToResponse(user)
	return &resp, nil
}
