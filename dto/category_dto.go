package dto

type CreateCategoryDTO struct {
	Name        string  `json:"name" binding:"required"`
	Slug        string  `json:"slug"` // auto-generated from Name if empty
	Description string  `json:"description"`
	ParentId    *string `json:"parentId"` // hex id of the parent category, null for root
	IsActive    bool    `json:"isActive"`
	ImageUrl    string  `json:"imageUrl"`
}

// UpdateCategoryDTO fields are all optional pointers.
type UpdateCategoryDTO struct {
	Name        *string `json:"name"`
	Slug        *string `json:"slug"`
	Description *string `json:"description"`
	ParentId    *string `json:"parentId"` // empty string clears the parent
	IsActive    *bool   `json:"isActive"`
	ImageUrl    *string `json:"imageUrl"`
}
