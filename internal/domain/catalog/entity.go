// internal/domain/catalog/entity.go
package catalog

// Product is the catalog product descriptor as served by the remote
// catalog service. The gateway never stores products; cart line items
// copy the display fields at add-time.
type Product struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
}

// ProductInput is the payload for admin create/update operations,
// forwarded to the catalog service as-is.
type ProductInput struct {
	Title       string  `json:"title" binding:"required"`
	Price       float64 `json:"price" binding:"required,gte=0"`
	Image       string  `json:"image"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
}
