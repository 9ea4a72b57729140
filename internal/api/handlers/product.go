package handlers

import (
	"log/slog"
	"net/http"

	"github.com/anuraag-firstaid/storefront/internal/api/middleware"
	"github.com/anuraag-firstaid/storefront/internal/errors"
	"github.com/anuraag-firstaid/storefront/internal/models"
	service "github.com/anuraag-firstaid/storefront/internal/services"
	"github.com/anuraag-firstaid/storefront/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

type ProductHandler struct {
	catalogService *service.CatalogService
	validator      *validator.Validate
}

func NewProductHandler(catalogService *service.CatalogService) *ProductHandler {
	return &ProductHandler{
		catalogService: catalogService,
		validator:      validator.New(),
	}
}

// ListProducts returns the catalog, optionally filtered with ?category=.
func (h *ProductHandler) ListProducts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		products, err := h.catalogService.ListProducts(r.Context(), r.URL.Query().Get("category"))
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, products)
	}
}

func (h *ProductHandler) GetProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		if id == "" {
			response.Error(w, errors.BadRequestError("Product id is required"))
			return
		}

		product, err := h.catalogService.GetProductByID(r.Context(), id)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, product)
	}
}

func (h *ProductHandler) CreateProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		var req models.CreateProductRequest
		if err := decodeJSONBody(w, r, &req); err != nil {
			return
		}

		if !validateStruct(w, h.validator, req) {
			return
		}

		product, err := h.catalogService.AddProduct(r.Context(), &req)
		if err != nil {
			logger.Error("Error during product creation", slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		logger.Info("Product created", slog.String("productId", product.ID))
		response.Success(w, http.StatusCreated, product)
	}
}

// ToggleStock flips the in-stock flag. An unknown id is a no-op and still
// answers 200, so stale admin views don't surface errors.
func (h *ProductHandler) ToggleStock() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		if id == "" {
			response.Error(w, errors.BadRequestError("Product id is required"))
			return
		}

		product, err := h.catalogService.ToggleStock(r.Context(), id)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, product)
	}
}

func (h *ProductHandler) RemoveProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		id := r.PathValue("id")
		if id == "" {
			response.Error(w, errors.BadRequestError("Product id is required"))
			return
		}

		if err := h.catalogService.RemoveProduct(r.Context(), id); err != nil {
			response.Error(w, err)
			return
		}

		logger.Info("Product removed", slog.String("productId", id))
		response.Success(w, http.StatusOK, nil)
	}
}
