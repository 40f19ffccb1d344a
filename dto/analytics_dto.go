package dto

type RecordEventDTO struct {
	Type      string `json:"type" binding:"required,oneof=page_view product_view add_to_cart order_placed"`
	Path      string `json:"path"`
	ProductID string `json:"productId"`
}

type WishlistItemDTO struct {
	ProductID string `json:"productId" binding:"required"`
}
