package usecase

import (
	"context"
	"fmt"
	"testing"

	"streamview/internal/data/entity"
	"streamview/internal/data/repository"
	repomocks "streamview/internal/data/repository/mocks"
	"streamview/internal/dto/request"
	"streamview/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

func TestUserService_CreateUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := repomocks.NewMockUserRepository(ctrl)
	service := NewUserService(users, zap.NewNop())

	users.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, u *entity.User) error {
		assert.Equal(t, "neo@example.com", u.Email)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("redpill123")))
		u.ID = 1
		return nil
	})

	user, err := service.CreateUser(context.Background(), &request.UserRequest{
		Username: "neo",
		Email:    "Neo@Example.com",
		Password: "redpill123",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, user.ID)
	assert.Equal(t, "neo", user.Username)
}

func TestUserService_CreateUser_Duplicate(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := repomocks.NewMockUserRepository(ctrl)
	service := NewUserService(users, zap.NewNop())

	users.EXPECT().Create(gomock.Any(), gomock.Any()).
		Return(fmt.Errorf("create user: %w", repository.ErrDuplicate))

	_, err := service.CreateUser(context.Background(), &request.UserRequest{
		Username: "neo",
		Email:    "neo@example.com",
		Password: "redpill123",
	})
	assert.ErrorIs(t, err, utils.ErrConflict)
}

func TestUserService_CreateUser_Invalid(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := NewUserService(repomocks.NewMockUserRepository(ctrl), zap.NewNop())

	_, err := service.CreateUser(context.Background(), &request.UserRequest{Username: "n", Email: "bad", Password: "short"})

	var appErr *utils.AppError
	require.ErrorAs(t, err, &appErr)
	details, ok := appErr.Details.(map[string]string)
	require.True(t, ok)
	assert.Len(t, details, 3)
}

func TestUserService_GetUser_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := repomocks.NewMockUserRepository(ctrl)
	service := NewUserService(users, zap.NewNop())

	users.EXPECT().FindByID(gomock.Any(), 3).Return(nil, nil)

	_, err := service.GetUser(context.Background(), 3)
	assert.ErrorIs(t, err, utils.ErrNotFound)
}
