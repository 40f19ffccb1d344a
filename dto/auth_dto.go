package dto

type LoginDTO struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RegisterUserDTO struct {
	Email    string `json:"email" binding:"required,email"`
	FullName string `json:"fullName"`
	Password string `json:"password" binding:"required,min=8"`
}
