package social

import (
	"time"

	"github.com/linskybing/litreview-go/internal/domain/user"
)

// Follow is a directed edge: Follower sees Followed's posts in the main feed.
type Follow struct {
	ID         uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	FollowerID uint      `gorm:"not null;uniqueIndex:idx_follow_pair" json:"follower_id"`
	FollowedID uint      `gorm:"not null;uniqueIndex:idx_follow_pair;index" json:"followed_id"`
	Follower   user.User `gorm:"foreignKey:FollowerID;references:UID" json:"-"`
	Followed   user.User `gorm:"foreignKey:FollowedID;references:UID" json:"-"`
	CreatedAt  time.Time `json:"created_at"`
}

func (Follow) TableName() string {
	return "user_follows"
}

// Block is a directed edge. While it exists no follow is possible between the pair.
type Block struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	BlockerID uint      `gorm:"not null;uniqueIndex:idx_block_pair" json:"blocker_id"`
	BlockedID uint      `gorm:"not null;uniqueIndex:idx_block_pair;index" json:"blocked_id"`
	Blocker   user.User `gorm:"foreignKey:BlockerID;references:UID" json:"-"`
	Blocked   user.User `gorm:"foreignKey:BlockedID;references:UID" json:"-"`
	CreatedAt time.Time `json:"created_at"`
}

func (Block) TableName() string {
	return "user_blocks"
}
