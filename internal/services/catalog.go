package service

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"github.com/anuraag-firstaid/storefront/internal/errors"
	"github.com/anuraag-firstaid/storefront/internal/models"
	repository "github.com/anuraag-firstaid/storefront/internal/repositories"
	"github.com/microcosm-cc/bluemonday"
)

// CatalogService holds the authoritative product list. The list is seeded
// from the built-in defaults on first load and persisted immediately so
// subsequent loads are stable; after that it changes only through ToggleStock,
// AddProduct and RemoveProduct, each of which rewrites the whole record.
//
// There is deliberately no edit operation for price or details; the admin
// surface is add/remove/toggle only.
type CatalogService struct {
	repo      repository.CatalogRepository
	sanitizer *bluemonday.Policy
	now       func() time.Time
}

func NewCatalogService(repo repository.CatalogRepository) *CatalogService {
	return &CatalogService{
		repo:      repo,
		sanitizer: bluemonday.StrictPolicy(),
		now:       time.Now,
	}
}

// load returns the current catalog, seeding from defaults when no durable
// record exists yet. A corrupt record also falls back to the defaults.
func (s *CatalogService) load(ctx context.Context) ([]models.Product, error) {
	products, found, err := s.repo.Load(ctx)
	if err != nil {
		return nil, errors.DatabaseError("Failed to load catalog").WithError(err)
	}

	if found {
		return products, nil
	}

	products = DefaultCatalog()

	if err := s.repo.Save(ctx, products); err != nil {
		return nil, errors.DatabaseError("Failed to seed catalog").WithError(err)
	}

	slog.Info("Catalog seeded from defaults", slog.Int("products", len(products)))

	return products, nil
}

// ListProducts returns the catalog, optionally filtered by category. The
// category "all" (or empty) means no filter.
func (s *CatalogService) ListProducts(ctx context.Context, category string) ([]models.Product, error) {
	products, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	if category == "" || category == "all" {
		return products, nil
	}

	filtered := make([]models.Product, 0, len(products))

	for _, p := range products {
		if p.Category == category {
			filtered = append(filtered, p)
		}
	}

	return filtered, nil
}

// GetProductByID returns the catalog entry with the given id.
func (s *CatalogService) GetProductByID(ctx context.Context, id string) (*models.Product, error) {
	products, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	for i := range products {
		if products[i].ID == id {
			return &products[i], nil
		}
	}

	return nil, errors.NotFoundError("Product not found")
}

// ToggleStock flips the inStock flag of the matching entry and returns it.
// An unknown id is a silent no-op returning nil.
func (s *CatalogService) ToggleStock(ctx context.Context, id string) (*models.Product, error) {
	products, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	for i := range products {
		if products[i].ID != id {
			continue
		}

		products[i].InStock = !products[i].InStock

		if err := s.repo.Save(ctx, products); err != nil {
			return nil, errors.DatabaseError("Failed to save catalog").WithError(err)
		}

		return &products[i], nil
	}

	return nil, nil
}

// AddProduct appends a new entry with a timestamp-based id.
func (s *CatalogService) AddProduct(ctx context.Context, req *models.CreateProductRequest) (*models.Product, error) {
	products, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	product := models.Product{
		ID:          "product_" + strconv.FormatInt(s.now().UnixMilli(), 10),
		Name:        s.sanitizer.Sanitize(req.Name),
		Description: s.sanitizer.Sanitize(req.Description),
		Price:       req.Price,
		Image:       req.Image,
		Category:    req.Category,
		Sizes:       req.Sizes,
		InStock:     req.InStock,
	}

	products = append(products, product)

	if err := s.repo.Save(ctx, products); err != nil {
		return nil, errors.DatabaseError("Failed to save catalog").WithError(err)
	}

	return &product, nil
}

// RemoveProduct filters the entry out; an unknown id is a silent no-op.
func (s *CatalogService) RemoveProduct(ctx context.Context, id string) error {
	products, err := s.load(ctx)
	if err != nil {
		return err
	}

	remaining := make([]models.Product, 0, len(products))

	for _, p := range products {
		if p.ID != id {
			remaining = append(remaining, p)
		}
	}

	if len(remaining) == len(products) {
		return nil
	}

	if err := s.repo.Save(ctx, remaining); err != nil {
		return errors.DatabaseError("Failed to save catalog").WithError(err)
	}

	return nil
}
