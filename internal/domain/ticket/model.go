package ticket

import (
	"time"

	"github.com/linskybing/litreview-go/internal/domain/user"
)

const (
	MaxTitleLength       = 128
	MaxDescriptionLength = 2048
)

// Ticket is a request for reviews of a book or article.
type Ticket struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Title       string    `gorm:"size:128;not null" json:"title"`
	Description string    `gorm:"size:2048" json:"description"`
	Image       *string   `gorm:"size:255" json:"image,omitempty"` // object key in the image bucket
	UserID      uint      `gorm:"not null;index" json:"user_id"`
	User        user.User `gorm:"foreignKey:UserID;references:UID" json:"user"`
	CreatedAt   time.Time `gorm:"index" json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Ticket) TableName() string {
	return "tickets"
}

// IsOwnedBy reports whether uid created the ticket.
func (t *Ticket) IsOwnedBy(uid uint) bool {
	return t.UserID == uid
}
