package review

import "github.com/linskybing/litreview-go/internal/domain/ticket"

type CreateReviewInput struct {
	Headline string `json:"headline" form:"headline" binding:"required,max=128" example:"A classic"`
	Rating   *int   `json:"rating" form:"rating" binding:"required,min=0,max=5" example:"4"`
	Body     string `json:"body" form:"body" binding:"max=8192" example:"Slow start, great ending."`
}

type UpdateReviewInput struct {
	Headline *string `json:"headline,omitempty" form:"headline" binding:"omitempty,min=1,max=128"`
	Rating   *int    `json:"rating,omitempty" form:"rating" binding:"omitempty,min=0,max=5"`
	Body     *string `json:"body,omitempty" form:"body" binding:"omitempty,max=8192"`
}

// CreateTicketWithReviewInput carries a ticket and its first review,
// submitted together from a single form.
type CreateTicketWithReviewInput struct {
	ticket.CreateTicketInput
	CreateReviewInput
}
