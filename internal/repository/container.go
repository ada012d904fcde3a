package repository

import (
	"gorm.io/gorm"
)

type Repos struct {
	User   UserRepo
	Ticket TicketRepo
	Review ReviewRepo
	Follow FollowRepo
	Block  BlockRepo
	Audit  AuditRepo

	db *gorm.DB
}

func NewRepositories(db *gorm.DB) *Repos {
	return &Repos{
		User:   NewUserRepo(db),
		Ticket: NewTicketRepo(db),
		Review: NewReviewRepo(db),
		Follow: NewFollowRepo(db),
		Block:  NewBlockRepo(db),
		Audit:  NewAuditRepo(db),
		db:     db,
	}
}

func (r *Repos) Begin() *gorm.DB {
	return r.db.Begin()
}

func (r *Repos) WithTx(tx *gorm.DB) *Repos {
	return &Repos{
		User:   r.User.WithTx(tx),
		Ticket: r.Ticket.WithTx(tx),
		Review: r.Review.WithTx(tx),
		Follow: r.Follow.WithTx(tx),
		Block:  r.Block.WithTx(tx),
		Audit:  r.Audit.WithTx(tx),
		db:     tx,
	}
}

// ExecTx runs fn against repositories bound to one transaction. The
// transaction commits when fn returns nil and rolls back otherwise.
func (r *Repos) ExecTx(fn func(*Repos) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		txRepos := r.WithTx(tx)
		return fn(txRepos)
	})
}
