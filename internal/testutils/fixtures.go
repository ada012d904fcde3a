package testutils

import (
	"testing"
	"time"

	"github.com/linskybing/litreview-go/internal/domain/review"
	"github.com/linskybing/litreview-go/internal/domain/social"
	"github.com/linskybing/litreview-go/internal/domain/ticket"
	"github.com/linskybing/litreview-go/internal/domain/user"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BaseTime anchors fixture timestamps so ordering assertions are exact.
var BaseTime = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

func At(minutes int) time.Time {
	return BaseTime.Add(time.Duration(minutes) * time.Minute)
}

func MustCreateUser(t testing.TB, gormDB *gorm.DB, username string) user.User {
	t.Helper()
	u := user.User{Username: username, Password: "x"}
	if err := gormDB.Create(&u).Error; err != nil {
		t.Fatalf("create user %s: %v", username, err)
	}
	return u
}

func MustCreateTicket(t testing.TB, gormDB *gorm.DB, owner user.User, title string, at time.Time) ticket.Ticket {
	t.Helper()
	tk := ticket.Ticket{Title: title, UserID: owner.UID, CreatedAt: at, UpdatedAt: at}
	if err := gormDB.Omit(clause.Associations).Create(&tk).Error; err != nil {
		t.Fatalf("create ticket %s: %v", title, err)
	}
	return tk
}

func MustCreateReview(t testing.TB, gormDB *gorm.DB, owner user.User, tk ticket.Ticket, rating int, at time.Time) review.Review {
	t.Helper()
	rv := review.Review{
		TicketID:  tk.ID,
		Headline:  "review of " + tk.Title,
		Rating:    rating,
		UserID:    owner.UID,
		CreatedAt: at,
		UpdatedAt: at,
	}
	if err := gormDB.Omit(clause.Associations).Create(&rv).Error; err != nil {
		t.Fatalf("create review: %v", err)
	}
	return rv
}

func MustFollow(t testing.TB, gormDB *gorm.DB, follower, followed user.User) {
	t.Helper()
	f := social.Follow{FollowerID: follower.UID, FollowedID: followed.UID}
	if err := gormDB.Omit(clause.Associations).Create(&f).Error; err != nil {
		t.Fatalf("follow %s -> %s: %v", follower.Username, followed.Username, err)
	}
}

func MustBlock(t testing.TB, gormDB *gorm.DB, blocker, blocked user.User) {
	t.Helper()
	b := social.Block{BlockerID: blocker.UID, BlockedID: blocked.UID}
	if err := gormDB.Omit(clause.Associations).Create(&b).Error; err != nil {
		t.Fatalf("block %s -> %s: %v", blocker.Username, blocked.Username, err)
	}
}
