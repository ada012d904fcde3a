package handlers

import (
	"github.com/linskybing/litreview-go/internal/application"
	"github.com/linskybing/litreview-go/internal/repository"
)

type Handlers struct {
	Audit  *AuditHandler
	Feed   *FeedHandler
	Image  *ImageHandler
	Review *ReviewHandler
	Social *SocialHandler
	Ticket *TicketHandler
	User   *UserHandler
}

func New(svc *application.Services, repos *repository.Repos) *Handlers {
	return &Handlers{
		Audit:  NewAuditHandler(svc.Audit),
		Feed:   NewFeedHandler(svc.Feed),
		Image:  NewImageHandler(svc.Image),
		Review: NewReviewHandler(svc.Review, repos.Audit),
		Social: NewSocialHandler(svc.Social, repos.Audit),
		Ticket: NewTicketHandler(svc.Ticket, repos.Audit),
		User:   NewUserHandler(svc.User),
	}
}
