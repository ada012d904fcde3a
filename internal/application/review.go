package application

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/linskybing/litreview-go/internal/domain/review"
	"github.com/linskybing/litreview-go/internal/repository"
	"gorm.io/gorm"
)

type ReviewService struct {
	Repos *repository.Repos
}

func NewReviewService(repos *repository.Repos) *ReviewService {
	return &ReviewService{
		Repos: repos,
	}
}

func validateReview(headline string, rating int, body string) error {
	if strings.TrimSpace(headline) == "" {
		return invalid("headline", "headline is required")
	}
	if utf8.RuneCountInString(headline) > review.MaxHeadlineLength {
		return invalid("headline", "headline must be at most %d characters", review.MaxHeadlineLength)
	}
	if rating < review.MinRating || rating > review.MaxRating {
		return invalid("rating", "rating must be between %d and %d", review.MinRating, review.MaxRating)
	}
	if utf8.RuneCountInString(body) > review.MaxBodyLength {
		return invalid("body", "body must be at most %d characters", review.MaxBodyLength)
	}
	return nil
}

// insertReview validates input and stores a review of ticketID through repos,
// which may be bound to a transaction.
func insertReview(repos *repository.Repos, actorID, ticketID uint, input review.CreateReviewInput) (review.Review, error) {
	if input.Rating == nil {
		return review.Review{}, invalid("rating", "rating is required")
	}
	if err := validateReview(input.Headline, *input.Rating, input.Body); err != nil {
		return review.Review{}, err
	}

	rv := review.Review{
		TicketID: ticketID,
		Headline: input.Headline,
		Rating:   *input.Rating,
		Body:     input.Body,
		UserID:   actorID,
	}
	if err := repos.Review.CreateReview(&rv); err != nil {
		return review.Review{}, fmt.Errorf("create review: %w", err)
	}
	return rv, nil
}

func (s *ReviewService) GetReview(id uint) (review.Review, error) {
	rv, err := s.Repos.Review.GetReviewByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return review.Review{}, ErrReviewNotFound
	}
	return rv, err
}

func (s *ReviewService) getOwnedReview(actorID, id uint) (review.Review, error) {
	rv, err := s.GetReview(id)
	if err != nil {
		return review.Review{}, err
	}
	if !rv.IsOwnedBy(actorID) {
		return review.Review{}, ErrPermissionDenied
	}
	return rv, nil
}

// CreateReview answers an existing ticket. Ticket owners may review their own tickets.
func (s *ReviewService) CreateReview(actorID, ticketID uint, input review.CreateReviewInput) (review.Review, error) {
	if _, err := s.Repos.Ticket.GetTicketByID(ticketID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return review.Review{}, ErrTicketNotFound
		}
		return review.Review{}, err
	}

	rv, err := insertReview(s.Repos, actorID, ticketID, input)
	if err != nil {
		return review.Review{}, err
	}
	return s.Repos.Review.GetReviewByID(rv.ID)
}

// UpdateReview edits headline, rating and body. The ticket link never changes.
func (s *ReviewService) UpdateReview(actorID, id uint, input review.UpdateReviewInput) (review.Review, error) {
	rv, err := s.getOwnedReview(actorID, id)
	if err != nil {
		return review.Review{}, err
	}

	if input.Headline != nil {
		rv.Headline = *input.Headline
	}
	if input.Rating != nil {
		rv.Rating = *input.Rating
	}
	if input.Body != nil {
		rv.Body = *input.Body
	}
	if err := validateReview(rv.Headline, rv.Rating, rv.Body); err != nil {
		return review.Review{}, err
	}

	if err := s.Repos.Review.UpdateReview(&rv); err != nil {
		return review.Review{}, fmt.Errorf("update review: %w", err)
	}
	return rv, nil
}

func (s *ReviewService) DeleteReview(actorID, id uint) (review.Review, error) {
	rv, err := s.getOwnedReview(actorID, id)
	if err != nil {
		return review.Review{}, err
	}
	if err := s.Repos.Review.DeleteReview(rv.ID); err != nil {
		return review.Review{}, fmt.Errorf("delete review: %w", err)
	}
	return rv, nil
}
