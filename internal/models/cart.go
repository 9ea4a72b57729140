package models

// CartLineItem is one (product, size) pair inside a cart. All display fields
// are snapshotted from the catalog at the moment the item is added; a later
// catalog price change never alters items already in the cart.
type CartLineItem struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
	Category    string  `json:"category"`
	Size        string  `json:"size"`
	Image       string  `json:"image"`
}

// LineItemID builds the composite key identifying a (product, size) pair.
func LineItemID(category, name, size string) string {
	return category + "-" + name + "-" + size
}

// CartState holds the cart line items plus the derived aggregates. Total and
// ItemCount are pure functions of Items; every transition recomputes both, so
// no reachable state carries stale aggregates.
type CartState struct {
	Items     []CartLineItem `json:"items"`
	Total     float64        `json:"total"`
	ItemCount int            `json:"itemCount"`
}

// EmptyCart returns the initial cart state.
func EmptyCart() CartState {
	return CartState{Items: []CartLineItem{}}
}

func newCartState(items []CartLineItem) CartState {
	state := CartState{Items: items}

	for _, item := range items {
		state.Total += item.Price * float64(item.Quantity)
		state.ItemCount += item.Quantity
	}

	return state
}

// AddItem returns a new state with the candidate added. If a line item with
// the same (category, name, size) already exists its quantity is incremented
// by one and the existing entry's fields stay authoritative; otherwise the
// candidate is appended with quantity 1. AddItem always succeeds.
func (s CartState) AddItem(candidate CartLineItem) CartState {
	id := LineItemID(candidate.Category, candidate.Name, candidate.Size)

	items := make([]CartLineItem, 0, len(s.Items)+1)

	found := false

	for _, item := range s.Items {
		if item.ID == id {
			item.Quantity++
			found = true
		}

		items = append(items, item)
	}

	if !found {
		candidate.ID = id
		candidate.Quantity = 1
		items = append(items, candidate)
	}

	return newCartState(items)
}

// RemoveItem returns a new state without the line item matching id. A missing
// id is a no-op, not an error.
func (s CartState) RemoveItem(id string) CartState {
	items := make([]CartLineItem, 0, len(s.Items))

	for _, item := range s.Items {
		if item.ID != id {
			items = append(items, item)
		}
	}

	return newCartState(items)
}

// UpdateQuantity returns a new state with the matching line item's quantity
// set to max(0, quantity); a resulting quantity of 0 removes the item
// entirely. A missing id is a no-op.
func (s CartState) UpdateQuantity(id string, quantity int) CartState {
	items := make([]CartLineItem, 0, len(s.Items))

	for _, item := range s.Items {
		if item.ID == id {
			item.Quantity = max(0, quantity)
		}

		if item.Quantity > 0 {
			items = append(items, item)
		}
	}

	return newCartState(items)
}

// AddCartItemRequest adds one unit of a catalog product in a chosen size.
type AddCartItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Size      string `json:"size"       validate:"required"`
}

// UpdateCartItemRequest sets the quantity of an existing cart line item.
type UpdateCartItemRequest struct {
	ItemID   string `json:"item_id"  validate:"required"`
	Quantity int    `json:"quantity"`
}
