package handlers

import (
	"net/http"

	"github.com/anuraag-firstaid/storefront/internal/api/middleware"
	"github.com/anuraag-firstaid/storefront/internal/errors"
	"github.com/anuraag-firstaid/storefront/internal/models"
	service "github.com/anuraag-firstaid/storefront/internal/services"
	"github.com/anuraag-firstaid/storefront/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

type CartHandler struct {
	cartService    *service.CartService
	catalogService *service.CatalogService
	validator      *validator.Validate
}

func NewCartHandler(cartService *service.CartService, catalogService *service.CatalogService) *CartHandler {
	return &CartHandler{
		cartService:    cartService,
		catalogService: catalogService,
		validator:      validator.New(),
	}
}

func (h *CartHandler) GetCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state := h.cartService.GetCart(r.Context(), sessionID(w, r))

		response.Success(w, http.StatusOK, state)
	}
}

// AddItem resolves the catalog entry, gates on its stock flag and size list,
// and adds one unit to the session's cart. The stock gate lives here on
// purpose: the cart itself accepts anything it is handed.
func (h *CartHandler) AddItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		var req models.AddCartItemRequest
		if err := decodeJSONBody(w, r, &req); err != nil {
			return
		}

		if !validateStruct(w, h.validator, req) {
			return
		}

		product, err := h.catalogService.GetProductByID(r.Context(), req.ProductID)
		if err != nil {
			response.Error(w, err)
			return
		}

		if !product.InStock {
			response.Error(w, errors.BadRequestError("Product is out of stock"))
			return
		}

		if !product.HasSize(req.Size) {
			response.Error(w, errors.BadRequestError("Unknown size for this product"))
			return
		}

		candidate := models.CartLineItem{
			Name:        product.Name,
			Description: product.Description,
			Price:       product.Price,
			Category:    product.Category,
			Size:        req.Size,
			Image:       product.Image,
		}

		state := h.cartService.AddItem(r.Context(), sessionID(w, r), candidate)

		logger.Info("Item added to cart")
		response.Success(w, http.StatusOK, state)
	}
}

func (h *CartHandler) UpdateQuantity() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.UpdateCartItemRequest
		if err := decodeJSONBody(w, r, &req); err != nil {
			return
		}

		if !validateStruct(w, h.validator, req) {
			return
		}

		state := h.cartService.UpdateQuantity(r.Context(), sessionID(w, r), req.ItemID, req.Quantity)

		response.Success(w, http.StatusOK, state)
	}
}

func (h *CartHandler) RemoveItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		itemID := r.PathValue("id")
		if itemID == "" {
			response.Error(w, errors.BadRequestError("Item id is required"))
			return
		}

		state := h.cartService.RemoveItem(r.Context(), sessionID(w, r), itemID)

		response.Success(w, http.StatusOK, state)
	}
}

// ClearCart empties the session cart. With ?purge=true the identity's durable
// record is erased as well; otherwise it survives for the next sign-in.
func (h *CartHandler) ClearCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var state models.CartState

		if r.URL.Query().Get("purge") == "true" {
			state = h.cartService.ClearCartCompletely(r.Context(), sessionID(w, r))
		} else {
			state = h.cartService.ClearCart(r.Context(), sessionID(w, r))
		}

		response.Success(w, http.StatusOK, state)
	}
}

// Attach reacts to a sign-in: the identity from the verified token is bound
// to the session and the saved cart, if any, replaces the session cart.
func (h *CartHandler) Attach() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			response.Error(w, errors.UnauthorizedError("Authentication required"))
			return
		}

		state := h.cartService.Attach(r.Context(), sessionID(w, r), claims.UserID.String())

		logger.Info("Cart session attached to identity")
		response.Success(w, http.StatusOK, state)
	}
}

// Detach reacts to a sign-out: the session cart is emptied while the durable
// record is left in place.
func (h *CartHandler) Detach() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state := h.cartService.Detach(r.Context(), sessionID(w, r))

		response.Success(w, http.StatusOK, state)
	}
}
