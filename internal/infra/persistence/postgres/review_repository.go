package postgres

import (
	"context"
	"sort"
	"time"

	"tastebook/internal/domain/entity"
	domainerrors "tastebook/internal/domain/errors"
	"tastebook/internal/domain/repository"
	"tastebook/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// reviewOrderClauses maps each review sort mode to a deterministic ORDER BY.
// like_count is the alias of the like-count subquery joined in ListByRecipe.
var reviewOrderClauses = map[entity.ReviewSort]string{
	entity.ReviewSortDateDesc:  "reviews.date_modified DESC, reviews.id ASC",
	entity.ReviewSortLikesDesc: "like_count DESC, reviews.date_modified DESC, reviews.id ASC",
}

// reviewRepository implements the repository.ReviewRepository interface using GORM.
type reviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository is the constructor for reviewRepository.
func NewReviewRepository(db *gorm.DB) repository.ReviewRepository {
	return &reviewRepository{db: db}
}

// reviewRow is the listing projection: the review row plus its live like
// count.
type reviewRow struct {
	model.ReviewModel
	LikeCount int64
}

// Create persists a new review and writes the generated id back.
func (repo *reviewRepository) Create(ctx context.Context, review *entity.Review) error {
	reviewM := fromReviewDomain(review)
	reviewM.ID = 0

	if err := repo.db.WithContext(ctx).Create(reviewM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrRecipeNotFound
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrInvalidRating
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create review")
	}

	review.ID = reviewM.ID

	return nil
}

// FindByID retrieves the base review row without its like set.
func (repo *reviewRepository) FindByID(ctx context.Context, id int64) (*entity.Review, error) {
	var reviewM model.ReviewModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&reviewM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrReviewNotFound
		}

		return nil, errors.Wrap(err, "failed to find review by id")
	}

	return toReviewDomain(&reviewM), nil
}

// Update persists a new rating, body and modification time.
func (repo *reviewRepository) Update(ctx context.Context, review *entity.Review) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ReviewModel{}).
		Where("id = ?", review.ID).
		Updates(map[string]any{
			"rating":        review.Rating,
			"body":          review.Body,
			"date_modified": review.DateModified,
		})
	if result.Error != nil {
		if isCheckConstraintViolation(result.Error) {
			return domainerrors.ErrInvalidRating
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update review")
	}
	if result.RowsAffected == 0 {
		return repository.ErrReviewNotFound
	}

	return nil
}

// Delete removes the review and its like set.
func (repo *reviewRepository) Delete(ctx context.Context, id int64) error {
	db := repo.db.WithContext(ctx)

	if err := db.Where("review_id = ?", id).Delete(&model.ReviewLikeModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete review likes")
	}

	result := db.Where("id = ?", id).Delete(&model.ReviewModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete review")
	}
	if result.RowsAffected == 0 {
		return repository.ErrReviewNotFound
	}

	return nil
}

// ListRatings returns the ratings of all live reviews of a recipe.
func (repo *reviewRepository) ListRatings(ctx context.Context, recipeID int64) ([]int, error) {
	var ratings []int

	if err := repo.db.WithContext(ctx).
		Model(&model.ReviewModel{}).
		Where("recipe_id = ?", recipeID).
		Pluck("rating", &ratings).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list review ratings")
	}

	return ratings, nil
}

// ListByRecipe returns one page of a recipe's reviews plus the total count.
// The like count is joined in so the likes_desc ordering sees live values,
// and the like sets of the whole page are loaded with one batched query.
func (repo *reviewRepository) ListByRecipe(ctx context.Context, recipeID int64, page, size int, sortKey entity.ReviewSort) ([]*entity.Review, int64, error) {
	db := repo.db.WithContext(ctx)

	var total int64
	if err := db.
		Model(&model.ReviewModel{}).
		Where("recipe_id = ?", recipeID).
		Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count reviews")
	}

	order, ok := reviewOrderClauses[sortKey]
	if !ok {
		order = reviewOrderClauses[entity.ReviewSortDateDesc]
	}

	likeCounts := db.Session(&gorm.Session{NewDB: true}).
		Model(&model.ReviewLikeModel{}).
		Select("review_id, COUNT(*) AS cnt").
		Group("review_id")

	var rows []reviewRow
	if err := db.
		Model(&model.ReviewModel{}).
		Select("reviews.*, COALESCE(lc.cnt, 0) AS like_count").
		Joins("LEFT JOIN (?) lc ON lc.review_id = reviews.id", likeCounts).
		Where("reviews.recipe_id = ?", recipeID).
		Order(order).
		Offset((page - 1) * size).
		Limit(size).
		Scan(&rows).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list reviews")
	}

	reviews := make([]*entity.Review, 0, len(rows))
	ids := make([]int64, 0, len(rows))
	for i := range rows {
		review := toReviewDomain(&rows[i].ReviewModel)
		review.LikeCount = rows[i].LikeCount
		reviews = append(reviews, review)
		ids = append(ids, review.ID)
	}

	if err := repo.attachLikeSets(ctx, reviews, ids); err != nil {
		return nil, 0, err
	}

	return reviews, total, nil
}

// attachLikeSets loads the like sets of a review page in one query and
// distributes them, sorted by user id, onto the matching reviews.
func (repo *reviewRepository) attachLikeSets(ctx context.Context, reviews []*entity.Review, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}

	var likeRows []model.ReviewLikeModel
	if err := repo.db.WithContext(ctx).
		Where("review_id IN ?", ids).
		Find(&likeRows).Error; err != nil {
		return errors.Wrap(err, "failed to batch-load like sets")
	}

	byReview := make(map[int64][]int64, len(ids))
	for _, row := range likeRows {
		byReview[row.ReviewID] = append(byReview[row.ReviewID], row.UserID)
	}

	for _, review := range reviews {
		likedBy := byReview[review.ID]
		sort.Slice(likedBy, func(i, j int) bool { return likedBy[i] < likedBy[j] })
		review.LikedBy = likedBy
	}

	return nil
}

// AddLike inserts a like row. The composite primary key makes concurrent
// likes from the same user converge to exactly one row.
func (repo *reviewRepository) AddLike(ctx context.Context, reviewID, userID int64) error {
	like := model.ReviewLikeModel{
		ReviewID:  reviewID,
		UserID:    userID,
		CreatedAt: time.Now(),
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&like).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrReviewNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to add like")
	}

	return nil
}

// RemoveLike deletes a like row; removing an absent like is a no-op.
func (repo *reviewRepository) RemoveLike(ctx context.Context, reviewID, userID int64) error {
	if err := repo.db.WithContext(ctx).
		Where("review_id = ? AND user_id = ?", reviewID, userID).
		Delete(&model.ReviewLikeModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to remove like")
	}

	return nil
}

// CountLikes returns the live like count of a review.
func (repo *reviewRepository) CountLikes(ctx context.Context, reviewID int64) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.ReviewLikeModel{}).
		Where("review_id = ?", reviewID).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count likes")
	}

	return count, nil
}

// ImportReviews upserts review rows with explicit identifiers together with
// their like sets.
func (repo *reviewRepository) ImportReviews(ctx context.Context, reviews []*entity.Review) error {
	if len(reviews) == 0 {
		return nil
	}

	now := time.Now()
	rows := make([]*model.ReviewModel, 0, len(reviews))
	var likeRows []model.ReviewLikeModel
	for _, review := range reviews {
		rows = append(rows, fromReviewDomain(review))
		for _, userID := range review.LikedBy {
			likeRows = append(likeRows, model.ReviewLikeModel{
				ReviewID:  review.ID,
				UserID:    userID,
				CreatedAt: now,
			})
		}
	}

	db := repo.db.WithContext(ctx)

	if err := db.
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "id"}}, UpdateAll: true}).
		CreateInBatches(rows, 500).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to import reviews")
	}

	if len(likeRows) > 0 {
		if err := db.
			Clauses(clause.OnConflict{DoNothing: true}).
			CreateInBatches(likeRows, 500).Error; err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "failed to import review likes")
		}
	}

	return nil
}

// AdvanceIDSequence moves the reviews identity sequence past max(id).
func (repo *reviewRepository) AdvanceIDSequence(ctx context.Context) error {
	return advanceIdentitySequence(ctx, repo.db, "reviews")
}

// --- Mapper Functions ---

// toReviewDomain converts a GORM ReviewModel to a domain Review entity. The
// like set and count are attached by the caller.
func toReviewDomain(data *model.ReviewModel) *entity.Review {
	if data == nil {
		return nil
	}

	return &entity.Review{
		ID:            data.ID,
		RecipeID:      data.RecipeID,
		AuthorID:      data.AuthorID,
		Rating:        data.Rating,
		Body:          data.Body,
		DateSubmitted: data.DateSubmitted,
		DateModified:  data.DateModified,
	}
}

// fromReviewDomain converts a domain Review entity to a GORM ReviewModel.
func fromReviewDomain(data *entity.Review) *model.ReviewModel {
	if data == nil {
		return nil
	}

	return &model.ReviewModel{
		ID:            data.ID,
		RecipeID:      data.RecipeID,
		AuthorID:      data.AuthorID,
		Rating:        data.Rating,
		Body:          data.Body,
		DateSubmitted: data.DateSubmitted,
		DateModified:  data.DateModified,
	}
}
