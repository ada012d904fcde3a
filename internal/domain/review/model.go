package review

import (
	"time"

	"github.com/linskybing/litreview-go/internal/domain/ticket"
	"github.com/linskybing/litreview-go/internal/domain/user"
)

const (
	MinRating         = 0
	MaxRating         = 5
	MaxHeadlineLength = 128
	MaxBodyLength     = 8192
)

// Review answers a ticket. TicketID is fixed once the review exists.
type Review struct {
	ID        uint          `gorm:"primaryKey;autoIncrement" json:"id"`
	TicketID  uint          `gorm:"not null;index" json:"ticket_id"`
	Ticket    ticket.Ticket `gorm:"foreignKey:TicketID" json:"ticket"`
	Headline  string        `gorm:"size:128;not null" json:"headline"`
	Rating    int           `gorm:"not null" json:"rating"`
	Body      string        `gorm:"size:8192" json:"body"`
	UserID    uint          `gorm:"not null;index" json:"user_id"`
	User      user.User     `gorm:"foreignKey:UserID;references:UID" json:"user"`
	CreatedAt time.Time     `gorm:"index" json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

func (Review) TableName() string {
	return "reviews"
}

func (r *Review) IsOwnedBy(uid uint) bool {
	return r.UserID == uid
}
