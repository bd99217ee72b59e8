package postgres

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// advanceIdentitySequence fast-forwards a table's identity sequence past the
// current max(id), so rows inserted after a bulk load with explicit ids do
// not collide. The third setval argument is false so the next nextval call
// returns exactly max(id)+1, which also keeps an empty table valid.
func advanceIdentitySequence(ctx context.Context, db *gorm.DB, table string) error {
	query := fmt.Sprintf(
		`SELECT setval(pg_get_serial_sequence('%s', 'id'), COALESCE((SELECT MAX(id) FROM %s), 0) + 1, false)`,
		table, table,
	)

	if err := db.WithContext(ctx).Exec(query).Error; err != nil {
		return errors.Wrapf(err, "failed to advance id sequence for %s", table)
	}

	return nil
}
