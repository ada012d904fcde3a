package user

import "time"

// User is the identity every ticket, review and social edge points at.
type User struct {
	UID       uint      `gorm:"primaryKey;column:u_id" json:"u_id"`
	Username  string    `gorm:"size:150;not null;uniqueIndex" json:"username"`
	Password  string    `gorm:"size:255;not null" json:"-"`
	CreatedAt time.Time `gorm:"column:create_at;autoCreateTime" json:"create_at"`
	UpdatedAt time.Time `gorm:"column:update_at;autoUpdateTime" json:"update_at"`
}

func (User) TableName() string {
	return "users"
}
