package usecase

import (
	"context"

	"tastebook/internal/domain/entity"
)

// ImportDatasetInput carries a full dataset snapshot with explicit
// identifiers. Follow edges ride on each user's FollowingIDs and like sets on
// each review's LikedBy.
type ImportDatasetInput struct {
	Users   []*entity.User
	Recipes []*entity.Recipe
	Reviews []*entity.Review
}

// ImportDatasetOutput summarizes what one import wrote.
type ImportDatasetOutput struct {
	Users       int `json:"users"`
	FollowEdges int `json:"follow_edges"`
	Recipes     int `json:"recipes"`
	Reviews     int `json:"reviews"`
	Likes       int `json:"likes"`
}

// DatasetUsecase is the bulk loader behind the config-gated admin route. The
// whole import runs in one transaction and finishes by advancing the identity
// sequences past the imported ids.
type DatasetUsecase interface {
	ImportDataset(ctx context.Context, input ImportDatasetInput) (*ImportDatasetOutput, error)

	// Enabled reports whether the import route is switched on in config.
	Enabled() bool
}
