package impl

import (
	"context"
	"log/slog"

	"tastebook/config"
	deliverycontext "tastebook/internal/delivery/context"
	"tastebook/internal/domain/entity"
	domainerrors "tastebook/internal/domain/errors"
	"tastebook/internal/domain/repository"
	"tastebook/internal/usecase"

	"go.uber.org/fx"
)

// datasetService implements the DatasetUsecase interface: a bulk loader for
// seeding environments, switched on through config.
type datasetService struct {
	txManager repository.TransactionManager
	enabled   bool
	logger    *slog.Logger
}

// DatasetServiceParams holds dependencies for datasetService, injected by Fx.
type DatasetServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Config    *config.Config
	Logger    *slog.Logger
}

// NewDatasetService is the constructor for datasetService.
func NewDatasetService(params DatasetServiceParams) usecase.DatasetUsecase {
	enabled := false
	if params.Config != nil && params.Config.Dataset != nil {
		enabled = params.Config.Dataset.ImportEnabled
	}

	return &datasetService{
		txManager: params.TxManager,
		enabled:   enabled,
		logger:    params.Logger,
	}
}

// Enabled reports whether the import route is switched on in config.
func (srv *datasetService) Enabled() bool {
	return srv.enabled
}

// ImportDataset loads a full snapshot with explicit identifiers in one
// transaction: users, their follow edges, recipes with ingredient sets, and
// reviews with like sets. The identity sequences are advanced at the end so
// later generated-id inserts never collide with imported rows.
func (srv *datasetService) ImportDataset(ctx context.Context, input usecase.ImportDatasetInput) (*usecase.ImportDatasetOutput, error) {
	if !srv.enabled {
		return nil, domainerrors.ErrUnauthorized.WrapMessage("dataset import is disabled")
	}

	for _, user := range input.Users {
		if user.ID <= 0 {
			return nil, domainerrors.ErrInvalidInput.WrapMessage("imported users need explicit positive ids")
		}
	}
	for _, recipe := range input.Recipes {
		if recipe.ID <= 0 {
			return nil, domainerrors.ErrInvalidInput.WrapMessage("imported recipes need explicit positive ids")
		}
	}
	for _, review := range input.Reviews {
		if review.ID <= 0 {
			return nil, domainerrors.ErrInvalidInput.WrapMessage("imported reviews need explicit positive ids")
		}
		if !entity.ValidRating(review.Rating) {
			return nil, domainerrors.ErrInvalidRating
		}
	}

	edges := collectFollowEdges(input.Users)
	output := &usecase.ImportDatasetOutput{
		Users:       len(input.Users),
		FollowEdges: len(edges),
		Recipes:     len(input.Recipes),
		Reviews:     len(input.Reviews),
	}

	reviews := make([]*entity.Review, 0, len(input.Reviews))
	for _, review := range input.Reviews {
		cleaned := *review
		cleaned.LikedBy = dropSelfLikes(review.AuthorID, review.LikedBy)
		output.Likes += len(cleaned.LikedBy)
		reviews = append(reviews, &cleaned)
	}

	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		userRepo := repos.UserRepo()
		recipeRepo := repos.RecipeRepo()
		reviewRepo := repos.ReviewRepo()

		if err := userRepo.ImportUsers(ctx, input.Users); err != nil {
			return err
		}
		if err := userRepo.ImportFollowEdges(ctx, edges); err != nil {
			return err
		}
		if err := recipeRepo.ImportRecipes(ctx, input.Recipes); err != nil {
			return err
		}
		if err := reviewRepo.ImportReviews(ctx, reviews); err != nil {
			return err
		}

		if err := userRepo.AdvanceIDSequence(ctx); err != nil {
			return err
		}
		if err := recipeRepo.AdvanceIDSequence(ctx); err != nil {
			return err
		}

		return reviewRepo.AdvanceIDSequence(ctx)
	})
	if err != nil {
		return nil, err
	}

	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Info("dataset imported",
		slog.Int("users", output.Users),
		slog.Int("follow_edges", output.FollowEdges),
		slog.Int("recipes", output.Recipes),
		slog.Int("reviews", output.Reviews),
		slog.Int("likes", output.Likes))

	return output, nil
}

// collectFollowEdges flattens each user's following list into directed edges,
// dropping self-edges and duplicates.
func collectFollowEdges(users []*entity.User) [][2]int64 {
	seen := make(map[[2]int64]struct{})
	var edges [][2]int64
	for _, user := range users {
		for _, followeeID := range user.FollowingIDs {
			if followeeID == user.ID {
				continue
			}
			edge := [2]int64{user.ID, followeeID}
			if _, ok := seen[edge]; ok {
				continue
			}
			seen[edge] = struct{}{}
			edges = append(edges, edge)
		}
	}

	return edges
}

// dropSelfLikes filters the review author out of its own like set and
// removes duplicate user ids.
func dropSelfLikes(authorID int64, likedBy []int64) []int64 {
	seen := make(map[int64]struct{}, len(likedBy))
	out := make([]int64, 0, len(likedBy))
	for _, userID := range likedBy {
		if userID == authorID {
			continue
		}
		if _, ok := seen[userID]; ok {
			continue
		}
		seen[userID] = struct{}{}
		out = append(out, userID)
	}

	return out
}
