package impl

import (
	"context"
	"testing"

	"tastebook/internal/domain/entity"
	mockRepo "tastebook/internal/mocks/repository"
	mockService "tastebook/internal/mocks/service"
	"tastebook/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type userServiceFixtures struct {
	service      usecase.UserUsecase
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockService.MockPasswordHasher
	tokenService *mockService.MockTokenService
}

func createTestUserService(t *testing.T) userServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockService.NewMockPasswordHasher(t)
	tokenService := mockService.NewMockTokenService(t)

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().UserRepo().Return(userRepo).Maybe()

	service := NewUserService(UserServiceParams{
		TxManager:    newPassthroughTx(t, factory),
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Config:       newTestConfig(100),
		Logger:       newDiscardLogger(),
	})

	return userServiceFixtures{
		service:      service,
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func TestUserService_Register(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	fx.hasher.EXPECT().
		Hash("hunter2hunter2").
		Return("$2a$10$hash", nil)

	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(_ context.Context, user *entity.User) {
			user.ID = 7
		}).
		Return(nil)

	out, err := fx.service.Register(ctx, usecase.RegisterInput{
		Name:     " alice ",
		Gender:   "female",
		Age:      30,
		Password: "hunter2hunter2",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(7), out.User.ID)
	assert.Equal(t, "alice", out.User.Name)
	assert.Equal(t, entity.GenderFemale, out.User.Gender)
	assert.Equal(t, "$2a$10$hash", out.User.PasswordHash)
}

func TestUserService_Login(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	fx.userRepo.EXPECT().
		FindByName(ctx, "alice").
		Return(&entity.User{ID: 7, Name: "alice", PasswordHash: "$2a$10$hash"}, nil)

	fx.hasher.EXPECT().
		Check("hunter2hunter2", "$2a$10$hash").
		Return(true)

	fx.tokenService.EXPECT().
		GenerateTokens(int64(7)).
		Return("access-token", "refresh-token", nil)

	out, err := fx.service.Login(ctx, usecase.LoginInput{Name: "alice", Password: "hunter2hunter2"})
	require.NoError(t, err)

	assert.Equal(t, "access-token", out.AccessToken)
	assert.Equal(t, "refresh-token", out.RefreshToken)
	assert.Equal(t, int64(7), out.User.ID)
}

func TestUserService_GetUser_DerivedFollowProjections(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	fx.userRepo.EXPECT().
		FindByID(ctx, int64(7)).
		Return(activeUser(7), nil)

	fx.userRepo.EXPECT().
		CountFollowers(ctx, int64(7)).
		Return(int64(2), nil)

	fx.userRepo.EXPECT().
		CountFollowing(ctx, int64(7)).
		Return(int64(1), nil)

	fx.userRepo.EXPECT().
		ListFollowerIDs(ctx, int64(7)).
		Return([]int64{2, 9}, nil)

	fx.userRepo.EXPECT().
		ListFollowingIDs(ctx, int64(7)).
		Return([]int64{2}, nil)

	user, err := fx.service.GetUser(ctx, 7)
	require.NoError(t, err)

	assert.Equal(t, int64(2), user.Followers)
	assert.Equal(t, int64(1), user.Following)
	assert.Equal(t, []int64{2, 9}, user.FollowerIDs)
	assert.Equal(t, []int64{2}, user.FollowingIDs)
}

func TestUserService_UpdateProfile(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	gender := entity.GenderMale

	fx.userRepo.EXPECT().
		FindByID(ctx, int64(7)).
		Return(activeUser(7), nil).
		Once()

	fx.userRepo.EXPECT().
		UpdateProfile(ctx, int64(7), &gender, intPtr(31)).
		Return(nil)

	fx.userRepo.EXPECT().
		FindByID(ctx, int64(7)).
		Return(&entity.User{ID: 7, Name: "user", Gender: entity.GenderMale, Age: 31}, nil).
		Once()

	fx.userRepo.EXPECT().
		CountFollowers(ctx, int64(7)).
		Return(int64(0), nil)

	fx.userRepo.EXPECT().
		CountFollowing(ctx, int64(7)).
		Return(int64(0), nil)

	fx.userRepo.EXPECT().
		ListFollowerIDs(ctx, int64(7)).
		Return([]int64{}, nil)

	fx.userRepo.EXPECT().
		ListFollowingIDs(ctx, int64(7)).
		Return([]int64{}, nil)

	genderRaw := string(gender)
	user, err := fx.service.UpdateProfile(ctx, usecase.UpdateProfileInput{
		UserID: 7,
		Gender: &genderRaw,
		Age:    intPtr(31),
	})
	require.NoError(t, err)

	assert.Equal(t, entity.GenderMale, user.Gender)
	assert.Equal(t, 31, user.Age)
}

func TestUserService_DeleteAccount_DropsEdgesBothDirections(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	fx.userRepo.EXPECT().
		FindByID(ctx, int64(7)).
		Return(activeUser(7), nil)

	fx.userRepo.EXPECT().
		SoftDelete(ctx, int64(7)).
		Return(nil)

	fx.userRepo.EXPECT().
		DeleteAllFollowEdges(ctx, int64(7)).
		Return(nil)

	err := fx.service.DeleteAccount(ctx, 7)
	require.NoError(t, err)
}

func TestUserService_Follow_CreatesEdge(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	fx.userRepo.EXPECT().
		FindByID(ctx, int64(7)).
		Return(activeUser(7), nil)

	fx.userRepo.EXPECT().
		FindByID(ctx, int64(2)).
		Return(activeUser(2), nil)

	fx.userRepo.EXPECT().
		HasFollowEdge(ctx, int64(7), int64(2)).
		Return(false, nil)

	fx.userRepo.EXPECT().
		CreateFollowEdge(ctx, int64(7), int64(2)).
		Return(nil)

	result, err := fx.service.Follow(ctx, 7, 2)
	require.NoError(t, err)
	assert.Equal(t, entity.FollowResultFollowed, result)
}

func TestUserService_Follow_TogglesExistingEdgeOff(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	fx.userRepo.EXPECT().
		FindByID(ctx, int64(7)).
		Return(activeUser(7), nil)

	fx.userRepo.EXPECT().
		FindByID(ctx, int64(2)).
		Return(activeUser(2), nil)

	fx.userRepo.EXPECT().
		HasFollowEdge(ctx, int64(7), int64(2)).
		Return(true, nil)

	fx.userRepo.EXPECT().
		DeleteFollowEdge(ctx, int64(7), int64(2)).
		Return(nil)

	result, err := fx.service.Follow(ctx, 7, 2)
	require.NoError(t, err)
	assert.Equal(t, entity.FollowResultUnfollowed, result)
}

func TestUserService_HighestFollowRatio(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	fx.userRepo.EXPECT().
		HighestFollowRatio(ctx).
		Return(&entity.FollowRatio{UserID: 2, Name: "bob", Ratio: 3.5}, nil)

	ratio, err := fx.service.HighestFollowRatio(ctx)
	require.NoError(t, err)
	require.NotNil(t, ratio)
	assert.InDelta(t, 3.5, ratio.Ratio, 0.0001)
}

func TestUserService_HighestFollowRatio_NoQualifyingUser(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	fx.userRepo.EXPECT().
		HighestFollowRatio(ctx).
		Return(nil, nil)

	ratio, err := fx.service.HighestFollowRatio(ctx)
	require.NoError(t, err)
	assert.Nil(t, ratio)
}
