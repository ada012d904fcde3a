package repository

import (
	"github.com/linskybing/litreview-go/internal/domain/ticket"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TicketRepo interface {
	GetTicketByID(id uint) (ticket.Ticket, error)
	CreateTicket(t *ticket.Ticket) error
	UpdateTicket(t *ticket.Ticket) error
	DeleteTicket(id uint) error
	ListTicketsByOwners(ownerIDs []uint) ([]ticket.Ticket, error)
	WithTx(tx *gorm.DB) TicketRepo
}

type DBTicketRepo struct {
	db *gorm.DB
}

func NewTicketRepo(db *gorm.DB) *DBTicketRepo {
	return &DBTicketRepo{
		db: db,
	}
}

func (r *DBTicketRepo) GetTicketByID(id uint) (ticket.Ticket, error) {
	var t ticket.Ticket
	err := r.db.Preload("User").First(&t, id).Error
	return t, err
}

func (r *DBTicketRepo) CreateTicket(t *ticket.Ticket) error {
	return r.db.Omit(clause.Associations).Create(t).Error
}

func (r *DBTicketRepo) UpdateTicket(t *ticket.Ticket) error {
	return r.db.Omit(clause.Associations).Save(t).Error
}

func (r *DBTicketRepo) DeleteTicket(id uint) error {
	return r.db.Delete(&ticket.Ticket{}, id).Error
}

func (r *DBTicketRepo) ListTicketsByOwners(ownerIDs []uint) ([]ticket.Ticket, error) {
	tickets := []ticket.Ticket{}
	if len(ownerIDs) == 0 {
		return tickets, nil
	}
	err := r.db.Preload("User").
		Where("user_id IN ?", ownerIDs).
		Order("created_at DESC").
		Find(&tickets).Error
	return tickets, err
}

func (r *DBTicketRepo) WithTx(tx *gorm.DB) TicketRepo {
	if tx == nil {
		return r
	}
	return &DBTicketRepo{
		db: tx,
	}
}
