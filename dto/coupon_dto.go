package dto

import "time"

type CreateCouponDTO struct {
	Code        string     `json:"code" binding:"required,min=3"`
	Type        string     `json:"type" binding:"required,oneof=PERCENT FIXED"`
	Value       float64    `json:"value" binding:"required,gt=0"`
	MinSubtotal float64    `json:"minSubtotal" binding:"gte=0"`
	ExpiresAt   *time.Time `json:"expiresAt"`
	IsActive    bool       `json:"isActive"`
}

type UpdateCouponDTO struct {
	Type        *string    `json:"type" binding:"omitempty,oneof=PERCENT FIXED"`
	Value       *float64   `json:"value" binding:"omitempty,gt=0"`
	MinSubtotal *float64   `json:"minSubtotal" binding:"omitempty,gte=0"`
	ExpiresAt   *time.Time `json:"expiresAt"`
	IsActive    *bool      `json:"isActive"`
}

type ValidateCouponDTO struct {
	Code     string  `json:"code" binding:"required"`
	Subtotal float64 `json:"subtotal" binding:"gte=0"`
}
