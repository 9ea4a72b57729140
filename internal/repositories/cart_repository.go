package repository

import (
	"context"
	"errors"
	"log/slog"

	"github.com/anuraag-firstaid/storefront/internal/kv"
	"github.com/anuraag-firstaid/storefront/internal/models"
)

// CartRepository persists one cart snapshot per identity under the
// "cart_<id>" key. It owns no cart semantics: whatever state it is handed is
// written wholesale, and whatever it reads is returned as-is. A stored record
// that no longer parses is reported as absent, matching the treat-corrupt-
// data-as-cache-miss policy.
type CartRepository interface {
	Load(ctx context.Context, userID string) (*models.CartState, error)
	Save(ctx context.Context, userID string, state models.CartState) error
	Delete(ctx context.Context, userID string) error
}

type cartRepository struct {
	store kv.Store
}

func NewCartRepo(store kv.Store) CartRepository {
	return &cartRepository{store: store}
}

// Load returns the saved snapshot for userID, or nil when none exists.
func (r *cartRepository) Load(ctx context.Context, userID string) (*models.CartState, error) {
	var state models.CartState

	found, err := r.store.Get(ctx, kv.CartKey(userID), &state)
	if err != nil {
		if errors.Is(err, kv.ErrBadValue) {
			slog.Warn("Discarding malformed cart record",
				slog.String("userId", userID),
				slog.String("error", err.Error()),
			)

			return nil, nil
		}

		return nil, err
	}

	if !found {
		return nil, nil
	}

	return &state, nil
}

func (r *cartRepository) Save(ctx context.Context, userID string, state models.CartState) error {
	return r.store.Set(ctx, kv.CartKey(userID), state)
}

func (r *cartRepository) Delete(ctx context.Context, userID string) error {
	return r.store.Delete(ctx, kv.CartKey(userID))
}
