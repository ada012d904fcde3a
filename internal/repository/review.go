package repository

import (
	"github.com/linskybing/litreview-go/internal/domain/review"
	"github.com/linskybing/litreview-go/internal/domain/ticket"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ReviewRepo interface {
	GetReviewByID(id uint) (review.Review, error)
	CreateReview(rv *review.Review) error
	UpdateReview(rv *review.Review) error
	DeleteReview(id uint) error
	DeleteReviewsByTicketID(ticketID uint) error
	ListReviewsByOwners(ownerIDs []uint) ([]review.Review, error)
	ListFeedReviews(ownerIDs []uint, ticketOwnerID uint) ([]review.Review, error)
	ListReviewedTicketIDs(userID uint) ([]uint, error)
	WithTx(tx *gorm.DB) ReviewRepo
}

type DBReviewRepo struct {
	db *gorm.DB
}

func NewReviewRepo(db *gorm.DB) *DBReviewRepo {
	return &DBReviewRepo{
		db: db,
	}
}

func (r *DBReviewRepo) withRelations() *gorm.DB {
	return r.db.Preload("User").Preload("Ticket").Preload("Ticket.User")
}

func (r *DBReviewRepo) GetReviewByID(id uint) (review.Review, error) {
	var rv review.Review
	err := r.withRelations().First(&rv, id).Error
	return rv, err
}

func (r *DBReviewRepo) CreateReview(rv *review.Review) error {
	return r.db.Omit(clause.Associations).Create(rv).Error
}

func (r *DBReviewRepo) UpdateReview(rv *review.Review) error {
	return r.db.Omit(clause.Associations).Save(rv).Error
}

func (r *DBReviewRepo) DeleteReview(id uint) error {
	return r.db.Delete(&review.Review{}, id).Error
}

func (r *DBReviewRepo) DeleteReviewsByTicketID(ticketID uint) error {
	return r.db.Where("ticket_id = ?", ticketID).Delete(&review.Review{}).Error
}

func (r *DBReviewRepo) ListReviewsByOwners(ownerIDs []uint) ([]review.Review, error) {
	reviews := []review.Review{}
	if len(ownerIDs) == 0 {
		return reviews, nil
	}
	err := r.withRelations().
		Where("user_id IN ?", ownerIDs).
		Order("created_at DESC").
		Find(&reviews).Error
	return reviews, err
}

// ListFeedReviews returns reviews written by any of ownerIDs or answering a
// ticket owned by ticketOwnerID. Each review appears once.
func (r *DBReviewRepo) ListFeedReviews(ownerIDs []uint, ticketOwnerID uint) ([]review.Review, error) {
	reviews := []review.Review{}
	ownTickets := r.db.Model(&ticket.Ticket{}).Select("id").Where("user_id = ?", ticketOwnerID)

	query := r.withRelations()
	if len(ownerIDs) > 0 {
		query = query.Where("user_id IN ? OR ticket_id IN (?)", ownerIDs, ownTickets)
	} else {
		query = query.Where("ticket_id IN (?)", ownTickets)
	}

	err := query.Order("created_at DESC").Find(&reviews).Error
	return reviews, err
}

func (r *DBReviewRepo) ListReviewedTicketIDs(userID uint) ([]uint, error) {
	ids := []uint{}
	err := r.db.Model(&review.Review{}).
		Where("user_id = ?", userID).
		Distinct().
		Order("ticket_id ASC").
		Pluck("ticket_id", &ids).Error
	return ids, err
}

func (r *DBReviewRepo) WithTx(tx *gorm.DB) ReviewRepo {
	if tx == nil {
		return r
	}
	return &DBReviewRepo{
		db: tx,
	}
}
