package dto

type OrderItemDTO struct {
	ProductID string `json:"productId" binding:"required"`
	Size      string `json:"size"`
	Color     string `json:"color"`
	Quantity  int    `json:"quantity" binding:"required,gte=1"`
}

type ShippingAddressDTO struct {
	Line1      string `json:"line1" binding:"required"`
	Line2      string `json:"line2"`
	City       string `json:"city" binding:"required"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country" binding:"required"`
}

type CreateOrderDTO struct {
	FullName   string             `json:"fullName" binding:"required"`
	Email      string             `json:"email" binding:"required,email"`
	Phone      string             `json:"phone"`
	Address    ShippingAddressDTO `json:"address" binding:"required"`
	Items      []OrderItemDTO     `json:"items" binding:"required,min=1,dive"`
	CouponCode string             `json:"couponCode"`
}

type UpdateOrderStatusDTO struct {
	Status string `json:"status" binding:"required,oneof=NEW PAID SHIPPED DELIVERED CANCELLED"`
}
