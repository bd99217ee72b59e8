package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"tastebook/config"
	deliverycontext "tastebook/internal/delivery/context"
	"tastebook/internal/domain/entity"
	domainerrors "tastebook/internal/domain/errors"
	"tastebook/internal/domain/repository"
	"tastebook/internal/errors"
	"tastebook/internal/usecase"
	"tastebook/internal/util"

	"go.uber.org/fx"
)

// mostComplexLimit bounds the complexity ranking to the podium.
const mostComplexLimit = 3

// recipeService implements the RecipeUsecase interface.
type recipeService struct {
	txManager  repository.TransactionManager
	recipeRepo repository.RecipeRepository
	userRepo   repository.UserRepository
	cfg        *config.Config
	logger     *slog.Logger
}

// RecipeServiceParams holds dependencies for recipeService, injected by Fx.
type RecipeServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	RecipeRepo repository.RecipeRepository
	UserRepo   repository.UserRepository
	Config     *config.Config
	Logger     *slog.Logger
}

// NewRecipeService is the constructor for recipeService.
func NewRecipeService(params RecipeServiceParams) usecase.RecipeUsecase {
	return &recipeService{
		txManager:  params.TxManager,
		recipeRepo: params.RecipeRepo,
		userRepo:   params.UserRepo,
		cfg:        params.Config,
		logger:     params.Logger,
	}
}

func (srv *recipeService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateRecipe publishes a new recipe. The derived aggregate starts empty and
// the total time is computed from the cook and prep components.
func (srv *recipeService) CreateRecipe(ctx context.Context, input usecase.CreateRecipeInput) (*entity.Recipe, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerrors.ErrInvalidInput.WrapMessage("recipe name must not be empty")
	}

	totalTime, err := deriveTotalTime(input.CookTime, input.PrepTime)
	if err != nil {
		return nil, err
	}

	published := input.DatePublished
	if published.IsZero() {
		published = time.Now()
	}

	recipe := &entity.Recipe{
		AuthorID:      input.AuthorID,
		Name:          name,
		Description:   input.Description,
		Category:      input.Category,
		CookTime:      input.CookTime,
		PrepTime:      input.PrepTime,
		TotalTime:     totalTime,
		DatePublished: published,
		Nutrition:     input.Nutrition,
		Servings:      input.Servings,
		Yield:         input.Yield,
		Ingredients:   dedupeIngredients(input.Ingredients),
	}

	err = srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		if _, err := requireActiveUser(ctx, repos.UserRepo(), input.AuthorID); err != nil {
			return err
		}

		return repos.RecipeRepo().Create(ctx, recipe)
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("recipe created", slog.Int64("recipe_id", recipe.ID), slog.Int64("author_id", recipe.AuthorID))

	return srv.GetRecipe(ctx, recipe.ID)
}

// GetRecipe returns the full recipe projection.
func (srv *recipeService) GetRecipe(ctx context.Context, id int64) (*entity.Recipe, error) {
	recipe, err := srv.recipeRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrRecipeNotFound) {
		return nil, domainerrors.ErrRecipeNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load recipe")
	}

	return recipe, nil
}

// SearchRecipes runs the composed search predicate over one pagination window.
func (srv *recipeService) SearchRecipes(ctx context.Context, input usecase.SearchRecipesInput) (*entity.Page[*entity.Recipe], error) {
	if err := validatePageRequest(input.Page, input.Size, srv.cfg); err != nil {
		return nil, err
	}

	filter := repository.RecipeSearchFilter{
		Keyword:   strings.TrimSpace(input.Keyword),
		Category:  strings.TrimSpace(input.Category),
		MinRating: input.MinRating,
		Page:      input.Page,
		Size:      input.Size,
		Sort:      entity.ParseRecipeSort(input.Sort),
	}

	recipes, total, err := srv.recipeRepo.Search(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to search recipes")
	}

	return entity.NewPage(recipes, input.Page, input.Size, total), nil
}

// Feed lists recipes from followed authors, newest first.
func (srv *recipeService) Feed(ctx context.Context, input usecase.FeedInput) (*entity.Page[*entity.FeedItem], error) {
	if err := validatePageRequest(input.Page, input.Size, srv.cfg); err != nil {
		return nil, err
	}

	if _, err := requireActiveUser(ctx, srv.userRepo, input.UserID); err != nil {
		return nil, err
	}

	items, total, err := srv.recipeRepo.Feed(ctx, input.UserID, strings.TrimSpace(input.Category), input.Page, input.Size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load feed")
	}

	return entity.NewPage(items, input.Page, input.Size, total), nil
}

// UpdateTimes updates the cook/prep times of an owned recipe and recomputes
// the total.
func (srv *recipeService) UpdateTimes(ctx context.Context, input usecase.UpdateRecipeTimesInput) (*entity.Recipe, error) {
	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		if _, err := requireActiveUser(ctx, repos.UserRepo(), input.UserID); err != nil {
			return err
		}
		if err := requireRecipeOwner(ctx, repos.RecipeRepo(), input.RecipeID, input.UserID); err != nil {
			return err
		}

		current, err := repos.RecipeRepo().FindByID(ctx, input.RecipeID)
		if err != nil {
			return errors.Wrap(err, "failed to load recipe before time update")
		}

		cookTime := current.CookTime
		if input.CookTime != nil {
			cookTime = *input.CookTime
		}
		prepTime := current.PrepTime
		if input.PrepTime != nil {
			prepTime = *input.PrepTime
		}

		totalTime, err := deriveTotalTime(cookTime, prepTime)
		if err != nil {
			return err
		}

		return repos.RecipeRepo().UpdateTimes(ctx, input.RecipeID, cookTime, prepTime, totalTime)
	})
	if err != nil {
		return nil, err
	}

	return srv.GetRecipe(ctx, input.RecipeID)
}

// DeleteRecipe removes an owned recipe and everything hanging off it.
func (srv *recipeService) DeleteRecipe(ctx context.Context, recipeID, userID int64) error {
	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		if _, err := requireActiveUser(ctx, repos.UserRepo(), userID); err != nil {
			return err
		}
		if err := requireRecipeOwner(ctx, repos.RecipeRepo(), recipeID, userID); err != nil {
			return err
		}

		return repos.RecipeRepo().Delete(ctx, recipeID)
	})
	if err != nil {
		return err
	}

	srv.log(ctx).Info("recipe deleted", slog.Int64("recipe_id", recipeID), slog.Int64("user_id", userID))

	return nil
}

// ClosestCaloriePair finds the two distinct recipes with the nearest calorie
// values. With the points sorted by (calories, id), the closest pair is
// always adjacent, so one linear scan suffices.
func (srv *recipeService) ClosestCaloriePair(ctx context.Context) (*entity.CaloriePair, error) {
	points, err := srv.recipeRepo.ListCaloriePoints(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load calorie points")
	}
	if len(points) < 2 {
		return nil, nil
	}

	var best *entity.CaloriePair
	for i := 1; i < len(points); i++ {
		candidate := newCaloriePair(points[i-1], points[i])
		if best == nil || candidate.Difference < best.Difference ||
			(candidate.Difference == best.Difference && lessPair(candidate, best)) {
			best = candidate
		}
	}

	return best, nil
}

// newCaloriePair orders the two points so RecipeA carries the lower id.
func newCaloriePair(p, q entity.CaloriePoint) *entity.CaloriePair {
	if p.RecipeID > q.RecipeID {
		p, q = q, p
	}

	diff := q.Calories - p.Calories
	if diff < 0 {
		diff = -diff
	}

	return &entity.CaloriePair{
		RecipeA:    p.RecipeID,
		RecipeB:    q.RecipeID,
		CaloriesA:  p.Calories,
		CaloriesB:  q.Calories,
		Difference: diff,
	}
}

// lessPair orders equally-distant pairs by (lowID, highID) so ties resolve
// deterministically.
func lessPair(a, b *entity.CaloriePair) bool {
	if a.RecipeA != b.RecipeA {
		return a.RecipeA < b.RecipeA
	}

	return a.RecipeB < b.RecipeB
}

// MostComplexRecipes returns the top recipes by ingredient-set size.
func (srv *recipeService) MostComplexRecipes(ctx context.Context) ([]entity.RecipeComplexity, error) {
	ranks, err := srv.recipeRepo.MostComplex(ctx, mostComplexLimit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to rank recipes")
	}

	return ranks, nil
}

// deriveTotalTime recomputes the total from the cook and prep components.
// When only one component is present the total equals it; when both are
// present it is their sum. Malformed or negative durations are rejected.
func deriveTotalTime(cookTime, prepTime string) (string, error) {
	var total time.Duration
	var known bool

	for _, raw := range []string{cookTime, prepTime} {
		if raw == "" {
			continue
		}

		d, err := util.ParseISODuration(raw)
		if err != nil {
			return "", domainerrors.ErrInvalidInput.WrapMessage("time must be an ISO-8601 duration")
		}
		if d < 0 {
			return "", domainerrors.ErrInvalidInput.WrapMessage("time must not be negative")
		}

		total += d
		known = true
	}

	if !known {
		return "", nil
	}

	return util.FormatISODuration(total), nil
}

// dedupeIngredients drops blank and duplicate entries while keeping the
// caller's order. The persistence layer returns the set sorted anyway.
func dedupeIngredients(raw []string) []string {
	seen := make(map[string]struct{}, len(raw))
	out := make([]string, 0, len(raw))
	for _, ingredient := range raw {
		ingredient = strings.TrimSpace(ingredient)
		if ingredient == "" {
			continue
		}
		if _, ok := seen[ingredient]; ok {
			continue
		}
		seen[ingredient] = struct{}{}
		out = append(out, ingredient)
	}

	return out
}
