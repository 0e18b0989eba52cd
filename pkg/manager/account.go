package manager

import (
	"context"
	"errors"
	"fmt"

	"github.com/AntonioSertic23/nextup/pkg/storage"
	"github.com/AntonioSertic23/nextup/pkg/storage/sqlite/schema/gen/model"
)

const defaultListName = "Watchlist"

// EnsureDefaultList creates the user's default list if it does not exist.
// Every collection mutation requires exactly one default list, so this runs
// at account setup rather than on the hot path.
func (m Manager) EnsureDefaultList(ctx context.Context, userID string) (*model.Lists, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: user id is required", ErrValidation)
	}

	list, err := m.storage.GetDefaultList(ctx, userID)
	if err == nil {
		return list, nil
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return nil, err
	}

	id, err := m.storage.CreateList(ctx, model.Lists{
		UserID:    userID,
		Name:      defaultListName,
		IsDefault: true,
	})
	if err != nil {
		// a concurrent call may have won the unique index on
		// (user_id) WHERE is_default; theirs is the default list
		if list, getErr := m.storage.GetDefaultList(ctx, userID); getErr == nil {
			return list, nil
		}
		return nil, fmt.Errorf("failed to create default list: %w", err)
	}

	return &model.Lists{
		ID:        id,
		UserID:    userID,
		Name:      defaultListName,
		IsDefault: true,
	}, nil
}
