package impl

import (
	"context"
	"log/slog"
	"time"

	"tastebook/config"
	deliverycontext "tastebook/internal/delivery/context"
	"tastebook/internal/domain/entity"
	domainerrors "tastebook/internal/domain/errors"
	"tastebook/internal/domain/repository"
	"tastebook/internal/errors"
	"tastebook/internal/usecase"

	"go.uber.org/fx"
)

// reviewService implements the ReviewUsecase interface.
type reviewService struct {
	txManager  repository.TransactionManager
	reviewRepo repository.ReviewRepository
	recipeRepo repository.RecipeRepository
	userRepo   repository.UserRepository
	cfg        *config.Config
	logger     *slog.Logger
}

// ReviewServiceParams holds dependencies for reviewService, injected by Fx.
type ReviewServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	ReviewRepo repository.ReviewRepository
	RecipeRepo repository.RecipeRepository
	UserRepo   repository.UserRepository
	Config     *config.Config
	Logger     *slog.Logger
}

// NewReviewService is the constructor for reviewService.
func NewReviewService(params ReviewServiceParams) usecase.ReviewUsecase {
	return &reviewService{
		txManager:  params.TxManager,
		reviewRepo: params.ReviewRepo,
		recipeRepo: params.RecipeRepo,
		userRepo:   params.UserRepo,
		cfg:        params.Config,
		logger:     params.Logger,
	}
}

func (srv *reviewService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// AddReview attaches a review to a recipe and refreshes the recipe's derived
// aggregate in the same transaction, so the write and the recompute commit or
// roll back together.
func (srv *reviewService) AddReview(ctx context.Context, input usecase.AddReviewInput) (*usecase.ReviewMutationOutput, error) {
	if !entity.ValidRating(input.Rating) {
		return nil, domainerrors.ErrInvalidRating
	}

	now := time.Now()
	review := &entity.Review{
		RecipeID:      input.RecipeID,
		AuthorID:      input.AuthorID,
		Rating:        input.Rating,
		Body:          input.Body,
		DateSubmitted: now,
		DateModified:  now,
	}

	var recipe *entity.Recipe
	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		if _, err := requireActiveUser(ctx, repos.UserRepo(), input.AuthorID); err != nil {
			return err
		}

		if _, err := repos.RecipeRepo().AuthorOf(ctx, input.RecipeID); err != nil {
			if errors.Is(err, repository.ErrRecipeNotFound) {
				return domainerrors.ErrRecipeNotFound
			}

			return err
		}

		if err := repos.ReviewRepo().Create(ctx, review); err != nil {
			return err
		}

		refreshed, err := refreshRecipeAggregate(ctx, repos, input.RecipeID)
		if err != nil {
			return err
		}
		recipe = refreshed

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("review added",
		slog.Int64("review_id", review.ID),
		slog.Int64("recipe_id", review.RecipeID),
		slog.Int("rating", review.Rating))

	return &usecase.ReviewMutationOutput{Review: review, Recipe: recipe}, nil
}

// EditReview updates an authored review, bumps its modification time and
// refreshes the recipe aggregate in the same transaction.
func (srv *reviewService) EditReview(ctx context.Context, input usecase.EditReviewInput) (*usecase.ReviewMutationOutput, error) {
	if !entity.ValidRating(input.Rating) {
		return nil, domainerrors.ErrInvalidRating
	}

	var review *entity.Review
	var recipe *entity.Recipe
	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		if _, err := requireActiveUser(ctx, repos.UserRepo(), input.AuthorID); err != nil {
			return err
		}

		current, err := requireReviewAuthor(ctx, repos.ReviewRepo(), input.ReviewID, input.AuthorID)
		if err != nil {
			return err
		}

		current.Rating = input.Rating
		current.Body = input.Body
		current.DateModified = time.Now()

		if err := repos.ReviewRepo().Update(ctx, current); err != nil {
			return err
		}
		review = current

		refreshed, err := refreshRecipeAggregate(ctx, repos, current.RecipeID)
		if err != nil {
			return err
		}
		recipe = refreshed

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &usecase.ReviewMutationOutput{Review: review, Recipe: recipe}, nil
}

// DeleteReview removes an authored review, cascading its like set, and
// refreshes the recipe aggregate in the same transaction.
func (srv *reviewService) DeleteReview(ctx context.Context, reviewID, authorID int64) (*entity.Recipe, error) {
	var recipe *entity.Recipe
	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		if _, err := requireActiveUser(ctx, repos.UserRepo(), authorID); err != nil {
			return err
		}

		review, err := requireReviewAuthor(ctx, repos.ReviewRepo(), reviewID, authorID)
		if err != nil {
			return err
		}

		if err := repos.ReviewRepo().Delete(ctx, reviewID); err != nil {
			return err
		}

		refreshed, err := refreshRecipeAggregate(ctx, repos, review.RecipeID)
		if err != nil {
			return err
		}
		recipe = refreshed

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("review deleted", slog.Int64("review_id", reviewID), slog.Int64("author_id", authorID))

	return recipe, nil
}

// ListReviews returns one page of a recipe's reviews with live like data.
func (srv *reviewService) ListReviews(ctx context.Context, input usecase.ListReviewsInput) (*entity.Page[*entity.Review], error) {
	if err := validatePageRequest(input.Page, input.Size, srv.cfg); err != nil {
		return nil, err
	}

	if _, err := srv.recipeRepo.AuthorOf(ctx, input.RecipeID); err != nil {
		if errors.Is(err, repository.ErrRecipeNotFound) {
			return nil, domainerrors.ErrRecipeNotFound
		}

		return nil, err
	}

	reviews, total, err := srv.reviewRepo.ListByRecipe(ctx, input.RecipeID, input.Page, input.Size, entity.ParseReviewSort(input.Sort))
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reviews")
	}

	return entity.NewPage(reviews, input.Page, input.Size, total), nil
}

// Like records the caller's like on a review. The like row's unique
// constraint makes the operation idempotent under concurrency; authors can
// never like their own reviews.
func (srv *reviewService) Like(ctx context.Context, reviewID, userID int64) (int64, error) {
	var count int64
	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		if _, err := requireActiveUser(ctx, repos.UserRepo(), userID); err != nil {
			return err
		}

		review, err := repos.ReviewRepo().FindByID(ctx, reviewID)
		if errors.Is(err, repository.ErrReviewNotFound) {
			return domainerrors.ErrReviewNotFound
		}
		if err != nil {
			return err
		}
		if review.AuthorID == userID {
			return domainerrors.ErrSelfLike
		}

		if err := repos.ReviewRepo().AddLike(ctx, reviewID, userID); err != nil {
			return err
		}

		count, err = repos.ReviewRepo().CountLikes(ctx, reviewID)

		return err
	})
	if err != nil {
		return 0, err
	}

	return count, nil
}

// Unlike removes the caller's like; removing an absent like just reports the
// current count.
func (srv *reviewService) Unlike(ctx context.Context, reviewID, userID int64) (int64, error) {
	var count int64
	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		if _, err := requireActiveUser(ctx, repos.UserRepo(), userID); err != nil {
			return err
		}

		if _, err := repos.ReviewRepo().FindByID(ctx, reviewID); err != nil {
			if errors.Is(err, repository.ErrReviewNotFound) {
				return domainerrors.ErrReviewNotFound
			}

			return err
		}

		if err := repos.ReviewRepo().RemoveLike(ctx, reviewID, userID); err != nil {
			return err
		}

		var err error
		count, err = repos.ReviewRepo().CountLikes(ctx, reviewID)

		return err
	})
	if err != nil {
		return 0, err
	}

	return count, nil
}
