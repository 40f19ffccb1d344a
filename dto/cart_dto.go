package dto

type AddCartItemDTO struct {
	ProductID string `json:"productId" binding:"required"`
	Size      string `json:"size"`
	Color     string `json:"color"`
	Quantity  int    `json:"quantity" binding:"required,gte=1"`
}

type UpdateCartItemDTO struct {
	Quantity int `json:"quantity" binding:"required,gte=1"`
}
