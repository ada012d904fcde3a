package application

import (
	"fmt"

	"github.com/linskybing/litreview-go/internal/domain/feed"
	"github.com/linskybing/litreview-go/internal/repository"
)

type FeedService struct {
	Repos *repository.Repos
}

func NewFeedService(repos *repository.Repos) *FeedService {
	return &FeedService{
		Repos: repos,
	}
}

// BuildMainFeed collects the viewer's own posts, posts of followed users and
// every review answering one of the viewer's tickets, newest first.
func (s *FeedService) BuildMainFeed(viewerID uint) (feed.Feed, error) {
	followedIDs, err := s.Repos.Follow.ListFollowedIDs(viewerID)
	if err != nil {
		return feed.Feed{}, fmt.Errorf("list followed users: %w", err)
	}
	ownerIDs := append([]uint{viewerID}, followedIDs...)

	tickets, err := s.Repos.Ticket.ListTicketsByOwners(ownerIDs)
	if err != nil {
		return feed.Feed{}, fmt.Errorf("list feed tickets: %w", err)
	}
	reviews, err := s.Repos.Review.ListFeedReviews(ownerIDs, viewerID)
	if err != nil {
		return feed.Feed{}, fmt.Errorf("list feed reviews: %w", err)
	}

	return s.assemble(viewerID, feed.Merge(tickets, reviews))
}

// BuildOwnPostsFeed lists only what the viewer wrote.
func (s *FeedService) BuildOwnPostsFeed(viewerID uint) (feed.Feed, error) {
	owner := []uint{viewerID}

	tickets, err := s.Repos.Ticket.ListTicketsByOwners(owner)
	if err != nil {
		return feed.Feed{}, fmt.Errorf("list own tickets: %w", err)
	}
	reviews, err := s.Repos.Review.ListReviewsByOwners(owner)
	if err != nil {
		return feed.Feed{}, fmt.Errorf("list own reviews: %w", err)
	}

	return s.assemble(viewerID, feed.Merge(tickets, reviews))
}

func (s *FeedService) assemble(viewerID uint, posts []feed.Post) (feed.Feed, error) {
	reviewed, err := s.Repos.Review.ListReviewedTicketIDs(viewerID)
	if err != nil {
		return feed.Feed{}, fmt.Errorf("list reviewed tickets: %w", err)
	}
	return feed.Feed{
		Posts:             posts,
		ReviewedTicketIDs: reviewed,
	}, nil
}
