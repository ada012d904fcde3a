// Package repository is the storage boundary. Every repo wraps a *gorm.DB and
// can be rebound to a transaction with WithTx; Repos.ExecTx groups writes.
package repository

//go:generate mockgen -source=user.go -destination=mock/user.go -package=mock
//go:generate mockgen -source=ticket.go -destination=mock/ticket.go -package=mock
//go:generate mockgen -source=review.go -destination=mock/review.go -package=mock
//go:generate mockgen -source=follow.go -destination=mock/follow.go -package=mock
//go:generate mockgen -source=block.go -destination=mock/block.go -package=mock
//go:generate mockgen -source=audit.go -destination=mock/audit.go -package=mock
