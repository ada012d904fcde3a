package application

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/linskybing/litreview-go/internal/domain/review"
	"github.com/linskybing/litreview-go/internal/domain/ticket"
	"github.com/linskybing/litreview-go/internal/repository"
	"gorm.io/gorm"
)

type TicketService struct {
	Repos  *repository.Repos
	Images *ImageService
}

func NewTicketService(repos *repository.Repos, images *ImageService) *TicketService {
	return &TicketService{
		Repos:  repos,
		Images: images,
	}
}

func validateTicket(title, description string) error {
	if strings.TrimSpace(title) == "" {
		return invalid("title", "title is required")
	}
	if utf8.RuneCountInString(title) > ticket.MaxTitleLength {
		return invalid("title", "title must be at most %d characters", ticket.MaxTitleLength)
	}
	if utf8.RuneCountInString(description) > ticket.MaxDescriptionLength {
		return invalid("description", "description must be at most %d characters", ticket.MaxDescriptionLength)
	}
	return nil
}

func (s *TicketService) storeImage(ctx context.Context, image *ImageUpload) (*string, error) {
	if image == nil {
		return nil, nil
	}
	key, err := s.Images.Save(ctx, *image)
	if err != nil {
		return nil, err
	}
	return &key, nil
}

func (s *TicketService) dropImage(ctx context.Context, key *string) {
	if key != nil {
		s.Images.Remove(ctx, *key)
	}
}

func (s *TicketService) GetTicket(id uint) (ticket.Ticket, error) {
	t, err := s.Repos.Ticket.GetTicketByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ticket.Ticket{}, ErrTicketNotFound
	}
	return t, err
}

// getOwnedTicket loads a ticket the actor is allowed to modify.
func (s *TicketService) getOwnedTicket(actorID, id uint) (ticket.Ticket, error) {
	t, err := s.GetTicket(id)
	if err != nil {
		return ticket.Ticket{}, err
	}
	if !t.IsOwnedBy(actorID) {
		return ticket.Ticket{}, ErrPermissionDenied
	}
	return t, nil
}

func (s *TicketService) CreateTicket(ctx context.Context, actorID uint, input ticket.CreateTicketInput, image *ImageUpload) (ticket.Ticket, error) {
	if err := validateTicket(input.Title, input.Description); err != nil {
		return ticket.Ticket{}, err
	}

	imageKey, err := s.storeImage(ctx, image)
	if err != nil {
		return ticket.Ticket{}, err
	}

	t := ticket.Ticket{
		Title:       input.Title,
		Description: input.Description,
		Image:       imageKey,
		UserID:      actorID,
	}
	if err := s.Repos.Ticket.CreateTicket(&t); err != nil {
		s.dropImage(ctx, imageKey)
		return ticket.Ticket{}, fmt.Errorf("create ticket: %w", err)
	}
	return s.Repos.Ticket.GetTicketByID(t.ID)
}

// CreateTicketWithReview stores a ticket and the actor's review of it in one
// transaction: if the review is rejected the ticket is rolled back too.
func (s *TicketService) CreateTicketWithReview(ctx context.Context, actorID uint, input review.CreateTicketWithReviewInput, image *ImageUpload) (ticket.Ticket, review.Review, error) {
	if err := validateTicket(input.Title, input.Description); err != nil {
		return ticket.Ticket{}, review.Review{}, err
	}

	imageKey, err := s.storeImage(ctx, image)
	if err != nil {
		return ticket.Ticket{}, review.Review{}, err
	}

	var created review.Review
	err = s.Repos.ExecTx(func(tx *repository.Repos) error {
		t := ticket.Ticket{
			Title:       input.Title,
			Description: input.Description,
			Image:       imageKey,
			UserID:      actorID,
		}
		if err := tx.Ticket.CreateTicket(&t); err != nil {
			return fmt.Errorf("create ticket: %w", err)
		}

		rv, err := insertReview(tx, actorID, t.ID, input.CreateReviewInput)
		if err != nil {
			return err
		}
		created = rv
		return nil
	})
	if err != nil {
		s.dropImage(ctx, imageKey)
		return ticket.Ticket{}, review.Review{}, err
	}

	rv, err := s.Repos.Review.GetReviewByID(created.ID)
	if err != nil {
		return ticket.Ticket{}, review.Review{}, err
	}
	return rv.Ticket, rv, nil
}

func (s *TicketService) UpdateTicket(ctx context.Context, actorID, id uint, input ticket.UpdateTicketInput, image *ImageUpload) (ticket.Ticket, error) {
	t, err := s.getOwnedTicket(actorID, id)
	if err != nil {
		return ticket.Ticket{}, err
	}

	if input.Title != nil {
		t.Title = *input.Title
	}
	if input.Description != nil {
		t.Description = *input.Description
	}
	if err := validateTicket(t.Title, t.Description); err != nil {
		return ticket.Ticket{}, err
	}

	oldImage := t.Image
	switch {
	case image != nil:
		key, err := s.storeImage(ctx, image)
		if err != nil {
			return ticket.Ticket{}, err
		}
		t.Image = key
	case input.RemoveImage:
		t.Image = nil
	}

	if err := s.Repos.Ticket.UpdateTicket(&t); err != nil {
		if t.Image != oldImage {
			s.dropImage(ctx, t.Image)
		}
		return ticket.Ticket{}, fmt.Errorf("update ticket: %w", err)
	}
	if t.Image != oldImage {
		s.dropImage(ctx, oldImage)
	}
	return t, nil
}

// DeleteTicket removes the ticket together with every review answering it.
func (s *TicketService) DeleteTicket(ctx context.Context, actorID, id uint) (ticket.Ticket, error) {
	t, err := s.getOwnedTicket(actorID, id)
	if err != nil {
		return ticket.Ticket{}, err
	}

	err = s.Repos.ExecTx(func(tx *repository.Repos) error {
		if err := tx.Review.DeleteReviewsByTicketID(t.ID); err != nil {
			return err
		}
		return tx.Ticket.DeleteTicket(t.ID)
	})
	if err != nil {
		return ticket.Ticket{}, fmt.Errorf("delete ticket: %w", err)
	}

	s.dropImage(ctx, t.Image)
	return t, nil
}
