package impl

import (
	"tastebook/config"
	"tastebook/internal/domain/entity"
	domainerrors "tastebook/internal/domain/errors"
)

// validatePageRequest applies the shared pagination rule: 1-based page,
// positive size, size capped by config. Every list operation goes through
// here so malformed windows fail identically everywhere.
func validatePageRequest(page, size int, cfg *config.Config) error {
	if !entity.ValidPageRequest(page, size) {
		return domainerrors.ErrInvalidPagination
	}

	if cfg != nil && cfg.Pagination != nil && size > cfg.Pagination.MaxPageSize {
		return domainerrors.ErrInvalidPagination.WrapMessage("page size exceeds the configured maximum")
	}

	return nil
}
