package application

import (
	"github.com/linskybing/litreview-go/internal/repository"
)

type Services struct {
	Audit  *AuditService
	Feed   *FeedService
	Image  *ImageService
	Review *ReviewService
	Social *SocialService
	Ticket *TicketService
	User   *UserService
}

func New(repos *repository.Repos) *Services {
	images := NewImageService()
	return &Services{
		Audit:  NewAuditService(repos),
		Feed:   NewFeedService(repos),
		Image:  images,
		Review: NewReviewService(repos),
		Social: NewSocialService(repos),
		Ticket: NewTicketService(repos, images),
		User:   NewUserService(repos),
	}
}
