package repository

import (
	"context"
	"errors"
	"log/slog"

	"github.com/anuraag-firstaid/storefront/internal/kv"
	"github.com/anuraag-firstaid/storefront/internal/models"
)

// CatalogRepository holds the single global product list. The whole list is
// rewritten on every mutation; there is no per-entry update. The interface is
// shaped so a later version could add an optimistic-concurrency stamp without
// touching callers.
type CatalogRepository interface {
	Load(ctx context.Context) ([]models.Product, bool, error)
	Save(ctx context.Context, products []models.Product) error
}

type catalogRepository struct {
	store kv.Store
}

func NewCatalogRepo(store kv.Store) CatalogRepository {
	return &catalogRepository{store: store}
}

// Load returns the stored catalog and whether one exists. A record that no
// longer parses is reported as absent so the caller reseeds from defaults.
func (r *catalogRepository) Load(ctx context.Context) ([]models.Product, bool, error) {
	var products []models.Product

	found, err := r.store.Get(ctx, kv.ProductsKey, &products)
	if err != nil {
		if errors.Is(err, kv.ErrBadValue) {
			slog.Warn("Discarding malformed catalog record", slog.String("error", err.Error()))

			return nil, false, nil
		}

		return nil, false, err
	}

	return products, found, nil
}

func (r *catalogRepository) Save(ctx context.Context, products []models.Product) error {
	return r.store.Set(ctx, kv.ProductsKey, products)
}
