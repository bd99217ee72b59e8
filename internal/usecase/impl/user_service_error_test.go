package impl

import (
	"context"
	"testing"

	"tastebook/internal/domain/entity"
	domainerrors "tastebook/internal/domain/errors"
	"tastebook/internal/domain/repository"
	"tastebook/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUserService_Register_InvalidInput(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	tests := []struct {
		name  string
		input usecase.RegisterInput
	}{
		{name: "blank name", input: usecase.RegisterInput{Name: "  ", Gender: "female", Age: 30, Password: "pw"}},
		{name: "unknown gender", input: usecase.RegisterInput{Name: "alice", Gender: "other", Age: 30, Password: "pw"}},
		{name: "non-positive age", input: usecase.RegisterInput{Name: "alice", Gender: "female", Age: 0, Password: "pw"}},
		{name: "empty password", input: usecase.RegisterInput{Name: "alice", Gender: "female", Age: 30}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := fx.service.Register(ctx, tt.input)
			assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)
		})
	}
}

func TestUserService_Register_NameTaken(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	fx.hasher.EXPECT().
		Hash("hunter2hunter2").
		Return("$2a$10$hash", nil)

	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Return(domainerrors.ErrNameTaken)

	_, err := fx.service.Register(ctx, usecase.RegisterInput{
		Name:     "alice",
		Gender:   "female",
		Age:      30,
		Password: "hunter2hunter2",
	})
	require.ErrorIs(t, err, domainerrors.ErrNameTaken)
}

func TestUserService_Login_UnknownNameAndBadPasswordLookAlike(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	fx.userRepo.EXPECT().
		FindByName(ctx, "nobody").
		Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.Login(ctx, usecase.LoginInput{Name: "nobody", Password: "pw"})
	require.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)

	fx.userRepo.EXPECT().
		FindByName(ctx, "alice").
		Return(&entity.User{ID: 7, Name: "alice", PasswordHash: "$2a$10$hash"}, nil)

	fx.hasher.EXPECT().
		Check("wrong", "$2a$10$hash").
		Return(false)

	_, err = fx.service.Login(ctx, usecase.LoginInput{Name: "alice", Password: "wrong"})
	require.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_Login_DeletedAccount(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	fx.userRepo.EXPECT().
		FindByName(ctx, "alice").
		Return(&entity.User{ID: 7, Name: "alice", Deleted: true}, nil)

	_, err := fx.service.Login(ctx, usecase.LoginInput{Name: "alice", Password: "pw"})
	require.ErrorIs(t, err, domainerrors.ErrAccountDeleted)
}

func TestUserService_GetUser_DeletedAccount(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	fx.userRepo.EXPECT().
		FindByID(ctx, int64(7)).
		Return(&entity.User{ID: 7, Deleted: true}, nil)

	_, err := fx.service.GetUser(ctx, 7)
	require.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestUserService_UpdateProfile_InvalidInput(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	badGender := "unknown"

	_, err := fx.service.UpdateProfile(ctx, usecase.UpdateProfileInput{UserID: 7, Gender: &badGender})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)

	_, err = fx.service.UpdateProfile(ctx, usecase.UpdateProfileInput{UserID: 7, Age: intPtr(0)})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)
}

func TestUserService_Follow_SelfFollow(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	_, err := fx.service.Follow(ctx, 7, 7)
	require.ErrorIs(t, err, domainerrors.ErrSelfFollow)
}

func TestUserService_Follow_DeletedFollowee(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	fx.userRepo.EXPECT().
		FindByID(ctx, int64(7)).
		Return(activeUser(7), nil)

	fx.userRepo.EXPECT().
		FindByID(ctx, int64(2)).
		Return(&entity.User{ID: 2, Deleted: true}, nil)

	_, err := fx.service.Follow(ctx, 7, 2)
	require.ErrorIs(t, err, domainerrors.ErrFolloweeNotFollowable)
}

func TestUserService_Follow_UnknownFollowee(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	fx.userRepo.EXPECT().
		FindByID(ctx, int64(7)).
		Return(activeUser(7), nil)

	fx.userRepo.EXPECT().
		FindByID(ctx, int64(404)).
		Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.Follow(ctx, 7, 404)
	require.ErrorIs(t, err, domainerrors.ErrFolloweeNotFollowable)
}

func TestUserService_DeleteAccount_AlreadyDeleted(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	fx.userRepo.EXPECT().
		FindByID(ctx, int64(7)).
		Return(&entity.User{ID: 7, Deleted: true}, nil)

	err := fx.service.DeleteAccount(ctx, 7)
	require.ErrorIs(t, err, domainerrors.ErrAccountDeleted)
}
