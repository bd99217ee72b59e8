package impl

import (
	"context"
	"log/slog"
	"strings"

	"tastebook/config"
	deliverycontext "tastebook/internal/delivery/context"
	"tastebook/internal/domain/entity"
	domainerrors "tastebook/internal/domain/errors"
	"tastebook/internal/domain/repository"
	"tastebook/internal/domain/service"
	"tastebook/internal/errors"
	"tastebook/internal/usecase"

	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// UserServiceParams holds dependencies for userService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Config       *config.Config
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a new account with a hashed secret.
func (srv *userService) Register(ctx context.Context, input usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerrors.ErrInvalidInput.WrapMessage("name must not be empty")
	}

	gender := entity.Gender(input.Gender)
	if !gender.Valid() {
		return nil, domainerrors.ErrInvalidInput.WrapMessage("gender must be male or female")
	}
	if input.Age <= 0 {
		return nil, domainerrors.ErrInvalidInput.WrapMessage("age must be positive")
	}
	if input.Password == "" {
		return nil, domainerrors.ErrInvalidInput.WrapMessage("password must not be empty")
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}

	user := &entity.User{
		Name:         name,
		Gender:       gender,
		Age:          input.Age,
		PasswordHash: hash,
	}

	err = srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		return repos.UserRepo().Create(ctx, user)
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("user registered", slog.Int64("user_id", user.ID), slog.String("name", user.Name))

	return &usecase.RegisterOutput{User: user}, nil
}

// Login verifies the credential and issues a token pair. Lookup failure and
// password mismatch collapse into one error so names cannot be probed.
func (srv *userService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	user, err := srv.userRepo.FindByName(ctx, input.Name)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrInvalidCredentials
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to look up account")
	}
	if user.Deleted {
		return nil, domainerrors.ErrAccountDeleted
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	accessToken, refreshToken, err := srv.tokenService.GenerateTokens(user.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	srv.log(ctx).Info("user logged in", slog.Int64("user_id", user.ID))

	return &usecase.LoginOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         user,
	}, nil
}

// GetUser returns a live user's profile with its derived follow projections.
// The counts and id lists are computed from the edge table on every read.
func (srv *userService) GetUser(ctx context.Context, id int64) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrUserNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load user")
	}
	if user.Deleted {
		return nil, domainerrors.ErrUserNotFound.WrapMessage("account is deleted")
	}

	if user.Followers, err = srv.userRepo.CountFollowers(ctx, id); err != nil {
		return nil, errors.Wrap(err, "failed to count followers")
	}
	if user.Following, err = srv.userRepo.CountFollowing(ctx, id); err != nil {
		return nil, errors.Wrap(err, "failed to count following")
	}
	if user.FollowerIDs, err = srv.userRepo.ListFollowerIDs(ctx, id); err != nil {
		return nil, errors.Wrap(err, "failed to list followers")
	}
	if user.FollowingIDs, err = srv.userRepo.ListFollowingIDs(ctx, id); err != nil {
		return nil, errors.Wrap(err, "failed to list following")
	}

	return user, nil
}

// UpdateProfile updates the caller's gender and/or age.
func (srv *userService) UpdateProfile(ctx context.Context, input usecase.UpdateProfileInput) (*entity.User, error) {
	var gender *entity.Gender
	if input.Gender != nil {
		g := entity.Gender(*input.Gender)
		if !g.Valid() {
			return nil, domainerrors.ErrInvalidInput.WrapMessage("gender must be male or female")
		}
		gender = &g
	}
	if input.Age != nil && *input.Age <= 0 {
		return nil, domainerrors.ErrInvalidInput.WrapMessage("age must be positive")
	}

	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		if _, err := requireActiveUser(ctx, repos.UserRepo(), input.UserID); err != nil {
			return err
		}

		return repos.UserRepo().UpdateProfile(ctx, input.UserID, gender, input.Age)
	})
	if err != nil {
		return nil, err
	}

	return srv.GetUser(ctx, input.UserID)
}

// DeleteAccount soft-deletes the account and drops its follow edges in both
// directions in one transaction. Authored recipes and reviews stay visible.
func (srv *userService) DeleteAccount(ctx context.Context, userID int64) error {
	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		userRepo := repos.UserRepo()

		if _, err := requireActiveUser(ctx, userRepo, userID); err != nil {
			return err
		}

		if err := userRepo.SoftDelete(ctx, userID); err != nil {
			return errors.Wrap(err, "failed to soft-delete account")
		}

		return userRepo.DeleteAllFollowEdges(ctx, userID)
	})
	if err != nil {
		return err
	}

	srv.log(ctx).Info("account deleted", slog.Int64("user_id", userID))

	return nil
}

// Follow toggles the directed edge from follower to followee. The current
// edge state decides the direction, and both the check and the write run in
// the same transaction.
func (srv *userService) Follow(ctx context.Context, followerID, followeeID int64) (entity.FollowResult, error) {
	if followerID == followeeID {
		return "", domainerrors.ErrSelfFollow
	}

	var result entity.FollowResult
	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		userRepo := repos.UserRepo()

		if _, err := requireActiveUser(ctx, userRepo, followerID); err != nil {
			return err
		}

		followee, err := userRepo.FindByID(ctx, followeeID)
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrFolloweeNotFollowable
		}
		if err != nil {
			return errors.Wrap(err, "failed to load followee")
		}
		if followee.Deleted {
			return domainerrors.ErrFolloweeNotFollowable
		}

		exists, err := userRepo.HasFollowEdge(ctx, followerID, followeeID)
		if err != nil {
			return err
		}

		if exists {
			result = entity.FollowResultUnfollowed

			return userRepo.DeleteFollowEdge(ctx, followerID, followeeID)
		}

		result = entity.FollowResultFollowed

		return userRepo.CreateFollowEdge(ctx, followerID, followeeID)
	})
	if err != nil {
		return "", err
	}

	srv.log(ctx).Info("follow toggled",
		slog.Int64("follower_id", followerID),
		slog.Int64("followee_id", followeeID),
		slog.String("result", string(result)))

	return result, nil
}

// HighestFollowRatio returns the live user with the best followers/following
// ratio, or nil when no user has an outgoing edge.
func (srv *userService) HighestFollowRatio(ctx context.Context) (*entity.FollowRatio, error) {
	ratio, err := srv.userRepo.HighestFollowRatio(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to compute follow ratio")
	}

	return ratio, nil
}
