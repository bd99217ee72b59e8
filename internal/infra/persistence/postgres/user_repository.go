package postgres

import (
	"context"
	"time"

	"tastebook/internal/domain/entity"
	domainerrors "tastebook/internal/domain/errors"
	"tastebook/internal/domain/repository"
	"tastebook/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// userRepository implements the repository.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// Create persists a new user row and writes the generated id back into the entity.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)
	userM.ID = 0 // Let the identity sequence assign the id.

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrNameTaken.WrapMessage("display name already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// FindByID retrieves the base user row, soft-deleted users included.
func (repo *userRepository) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return toUserDomain(&userM), nil
}

// FindByName retrieves the base user row by display name.
func (repo *userRepository) FindByName(ctx context.Context, name string) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Where("name = ?", name).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by name")
	}

	return toUserDomain(&userM), nil
}

// UpdateProfile updates gender and/or age; nil fields are untouched.
func (repo *userRepository) UpdateProfile(ctx context.Context, id int64, gender *entity.Gender, age *int) error {
	updates := map[string]any{}
	if gender != nil {
		updates["gender"] = string(*gender)
	}
	if age != nil {
		updates["age"] = *age
	}
	if len(updates) == 0 {
		return nil
	}

	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", id).
		Updates(updates)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update profile")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// SoftDelete flags the user as deleted; the row is never removed.
func (repo *userRepository) SoftDelete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ? AND deleted = false", id).
		Update("deleted", true)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to soft-delete user")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// HasFollowEdge reports whether the directed edge exists.
func (repo *userRepository) HasFollowEdge(ctx context.Context, followerID, followeeID int64) (bool, error) {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.UserFollowModel{}).
		Where("follower_id = ? AND followee_id = ?", followerID, followeeID).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check follow edge")
	}

	return count > 0, nil
}

// CreateFollowEdge inserts a directed edge, tolerating a concurrent duplicate.
func (repo *userRepository) CreateFollowEdge(ctx context.Context, followerID, followeeID int64) error {
	edge := model.UserFollowModel{
		FollowerID: followerID,
		FolloweeID: followeeID,
		CreatedAt:  time.Now(),
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&edge).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create follow edge")
	}

	return nil
}

// DeleteFollowEdge removes a directed edge; removing an absent edge is a no-op.
func (repo *userRepository) DeleteFollowEdge(ctx context.Context, followerID, followeeID int64) error {
	if err := repo.db.WithContext(ctx).
		Where("follower_id = ? AND followee_id = ?", followerID, followeeID).
		Delete(&model.UserFollowModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete follow edge")
	}

	return nil
}

// DeleteAllFollowEdges removes every edge touching the user, both directions.
func (repo *userRepository) DeleteAllFollowEdges(ctx context.Context, userID int64) error {
	if err := repo.db.WithContext(ctx).
		Where("follower_id = ? OR followee_id = ?", userID, userID).
		Delete(&model.UserFollowModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete follow edges")
	}

	return nil
}

// CountFollowers counts edges pointing at the user.
func (repo *userRepository) CountFollowers(ctx context.Context, userID int64) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.UserFollowModel{}).
		Where("followee_id = ?", userID).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count followers")
	}

	return count, nil
}

// CountFollowing counts edges leaving the user.
func (repo *userRepository) CountFollowing(ctx context.Context, userID int64) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.UserFollowModel{}).
		Where("follower_id = ?", userID).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count following")
	}

	return count, nil
}

// ListFollowerIDs lists the ids of users following the given user.
func (repo *userRepository) ListFollowerIDs(ctx context.Context, userID int64) ([]int64, error) {
	var ids []int64
	if err := repo.db.WithContext(ctx).
		Model(&model.UserFollowModel{}).
		Where("followee_id = ?", userID).
		Order("follower_id ASC").
		Pluck("follower_id", &ids).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list follower ids")
	}

	return ids, nil
}

// ListFollowingIDs lists the ids of users the given user follows.
func (repo *userRepository) ListFollowingIDs(ctx context.Context, userID int64) ([]int64, error) {
	var ids []int64
	if err := repo.db.WithContext(ctx).
		Model(&model.UserFollowModel{}).
		Where("follower_id = ?", userID).
		Order("followee_id ASC").
		Pluck("followee_id", &ids).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list following ids")
	}

	return ids, nil
}

// highestFollowRatioSQL derives both counts from the edge table in one scan,
// so the ratio always corresponds to a committed edge-set snapshot.
const highestFollowRatioSQL = `
WITH follower_counts AS (
	SELECT followee_id AS user_id, COUNT(*) AS cnt FROM user_follows GROUP BY followee_id
), following_counts AS (
	SELECT follower_id AS user_id, COUNT(*) AS cnt FROM user_follows GROUP BY follower_id
)
SELECT u.id AS user_id, u.name, COALESCE(fc.cnt, 0)::float / fgc.cnt AS ratio
FROM users u
JOIN following_counts fgc ON fgc.user_id = u.id
LEFT JOIN follower_counts fc ON fc.user_id = u.id
WHERE u.deleted = false
ORDER BY ratio DESC, u.id ASC
LIMIT 1`

// HighestFollowRatio returns the user with the maximum followers/following
// ratio, or (nil, nil) when nobody has an outgoing edge.
func (repo *userRepository) HighestFollowRatio(ctx context.Context) (*entity.FollowRatio, error) {
	var row entity.FollowRatio

	result := repo.db.WithContext(ctx).Raw(highestFollowRatioSQL).Scan(&row)
	if result.Error != nil {
		return nil, errors.Wrap(result.Error, "failed to query highest follow ratio")
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}

	return &row, nil
}

// ImportUsers upserts user rows with their explicit identifiers.
func (repo *userRepository) ImportUsers(ctx context.Context, users []*entity.User) error {
	if len(users) == 0 {
		return nil
	}

	rows := make([]*model.UserModel, 0, len(users))
	for _, user := range users {
		rows = append(rows, fromUserDomain(user))
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "id"}}, UpdateAll: true}).
		CreateInBatches(rows, 500).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to import users")
	}

	return nil
}

// ImportFollowEdges inserts edges from the bulk load, skipping duplicates.
func (repo *userRepository) ImportFollowEdges(ctx context.Context, edges [][2]int64) error {
	if len(edges) == 0 {
		return nil
	}

	now := time.Now()
	rows := make([]model.UserFollowModel, 0, len(edges))
	for _, edge := range edges {
		rows = append(rows, model.UserFollowModel{
			FollowerID: edge[0],
			FolloweeID: edge[1],
			CreatedAt:  now,
		})
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		CreateInBatches(rows, 500).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to import follow edges")
	}

	return nil
}

// AdvanceIDSequence moves the users identity sequence past max(id).
func (repo *userRepository) AdvanceIDSequence(ctx context.Context) error {
	return advanceIdentitySequence(ctx, repo.db, "users")
}

// --- Mapper Functions ---

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:           data.ID,
		Name:         data.Name,
		Gender:       entity.Gender(data.Gender),
		Age:          data.Age,
		PasswordHash: data.PasswordHash,
		Deleted:      data.Deleted,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

// fromUserDomain converts a domain User entity to a GORM UserModel.
func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	return &model.UserModel{
		ID:           data.ID,
		Name:         data.Name,
		Gender:       string(data.Gender),
		Age:          data.Age,
		PasswordHash: data.PasswordHash,
		Deleted:      data.Deleted,
	}
}
