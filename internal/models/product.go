package models

// Product is one purchasable catalog entry. Seeded entries get ids of the
// form "product_<index>", admin-added entries "product_<unix-millis>".
type Product struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Image       string   `json:"image"`
	Category    string   `json:"category"`
	Sizes       []string `json:"sizes"`
	InStock     bool     `json:"inStock"`
}

// HasSize reports whether label is one of the product's selectable sizes.
func (p *Product) HasSize(label string) bool {
	for _, size := range p.Sizes {
		if size == label {
			return true
		}
	}

	return false
}

type CreateProductRequest struct {
	Name        string   `json:"name" validate:"required,min=3,max=200"`
	Description string   `json:"description,omitempty"`
	Price       float64  `json:"price" validate:"required,gt=0"`
	Image       string   `json:"image,omitempty"`
	Category    string   `json:"category" validate:"required,oneof=kits consumables specialty"`
	Sizes       []string `json:"sizes" validate:"required,min=1,dive,required"`
	InStock     bool     `json:"in_stock"`
}
