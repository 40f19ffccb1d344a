package dto

type CreateReviewDTO struct {
	AuthorName  string `json:"authorName" binding:"required"`
	AuthorEmail string `json:"authorEmail" binding:"omitempty,email"`
	Rating      int    `json:"rating" binding:"required,gte=1,lte=5"`
	Title       string `json:"title"`
	Body        string `json:"body"`
}

type ModerateReviewDTO struct {
	Status string `json:"status" binding:"required,oneof=PENDING APPROVED REJECTED"`
}
