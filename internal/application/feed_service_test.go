package application_test

import (
	"fmt"
	"testing"

	"github.com/linskybing/litreview-go/internal/application"
	"github.com/linskybing/litreview-go/internal/domain/feed"
	"github.com/linskybing/litreview-go/internal/repository"
	"github.com/linskybing/litreview-go/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupFeedService(t *testing.T) (*application.FeedService, *gorm.DB) {
	gormDB := testutils.NewSQLiteDB(t)
	return application.NewFeedService(repository.NewRepositories(gormDB)), gormDB
}

func postLabels(posts []feed.Post) []string {
	labels := make([]string, 0, len(posts))
	for _, p := range posts {
		if p.Kind == feed.KindTicket {
			labels = append(labels, p.Ticket.Title)
		} else {
			labels = append(labels, p.Review.Headline)
		}
	}
	return labels
}

func TestBuildMainFeed_FollowedTicketsInTimeOrder(t *testing.T) {
	svc, gormDB := setupFeedService(t)

	alice := testutils.MustCreateUser(t, gormDB, "alice")
	bob := testutils.MustCreateUser(t, gormDB, "bob")
	testutils.MustFollow(t, gormDB, alice, bob)

	testutils.MustCreateTicket(t, gormDB, bob, "T1", testutils.At(1))
	testutils.MustCreateTicket(t, gormDB, alice, "T2", testutils.At(2))

	got, err := svc.BuildMainFeed(alice.UID)
	require.NoError(t, err)
	assert.Equal(t, []string{"T2", "T1"}, postLabels(got.Posts))
}

func TestBuildMainFeed_RepliesToOwnTickets(t *testing.T) {
	svc, gormDB := setupFeedService(t)

	alice := testutils.MustCreateUser(t, gormDB, "alice")
	bob := testutils.MustCreateUser(t, gormDB, "bob")
	carol := testutils.MustCreateUser(t, gormDB, "carol")

	carolTicket := testutils.MustCreateTicket(t, gormDB, carol, "T1", testutils.At(1))
	reply := testutils.MustCreateReview(t, gormDB, alice, carolTicket, 4, testutils.At(2))

	t.Run("ticket owner sees the reply", func(t *testing.T) {
		got, err := svc.BuildMainFeed(carol.UID)
		require.NoError(t, err)
		require.Len(t, got.Posts, 2)
		assert.Equal(t, feed.KindReview, got.Posts[0].Kind)
		assert.Equal(t, reply.ID, got.Posts[0].ID())
	})

	t.Run("unrelated user sees nothing", func(t *testing.T) {
		got, err := svc.BuildMainFeed(bob.UID)
		require.NoError(t, err)
		assert.Empty(t, got.Posts)
	})
}

func TestBuildMainFeed_NoDuplicateReviews(t *testing.T) {
	svc, gormDB := setupFeedService(t)

	viewer := testutils.MustCreateUser(t, gormDB, "viewer")
	owner := testutils.MustCreateUser(t, gormDB, "owner")
	reviewer := testutils.MustCreateUser(t, gormDB, "reviewer")
	testutils.MustFollow(t, gormDB, viewer, owner)
	testutils.MustFollow(t, gormDB, viewer, reviewer)

	ownerTicket := testutils.MustCreateTicket(t, gormDB, owner, "owned", testutils.At(1))
	viewerTicket := testutils.MustCreateTicket(t, gormDB, viewer, "mine", testutils.At(2))
	testutils.MustCreateReview(t, gormDB, reviewer, ownerTicket, 3, testutils.At(3))
	// matches both the followed-owner and the reply-to-viewer rules
	testutils.MustCreateReview(t, gormDB, reviewer, viewerTicket, 5, testutils.At(4))

	got, err := svc.BuildMainFeed(viewer.UID)
	require.NoError(t, err)

	seen := map[string]bool{}
	for _, p := range got.Posts {
		key := postKey(p)
		assert.False(t, seen[key], "duplicate post %s", key)
		seen[key] = true
	}
	assert.Len(t, got.Posts, 4)
}

func TestBuildMainFeed_InclusionAndOrdering(t *testing.T) {
	svc, gormDB := setupFeedService(t)

	viewer := testutils.MustCreateUser(t, gormDB, "viewer")
	friend := testutils.MustCreateUser(t, gormDB, "friend")
	stranger := testutils.MustCreateUser(t, gormDB, "stranger")
	testutils.MustFollow(t, gormDB, viewer, friend)
	// one-way: the viewer does not follow the stranger back
	testutils.MustFollow(t, gormDB, stranger, viewer)

	viewerTicket := testutils.MustCreateTicket(t, gormDB, viewer, "v1", testutils.At(5))
	friendTicket := testutils.MustCreateTicket(t, gormDB, friend, "f1", testutils.At(3))
	strangerTicket := testutils.MustCreateTicket(t, gormDB, stranger, "s1", testutils.At(4))
	testutils.MustCreateReview(t, gormDB, stranger, viewerTicket, 1, testutils.At(6))
	testutils.MustCreateReview(t, gormDB, stranger, strangerTicket, 2, testutils.At(7))
	testutils.MustCreateReview(t, gormDB, friend, strangerTicket, 3, testutils.At(8))
	testutils.MustCreateReview(t, gormDB, viewer, friendTicket, 4, testutils.At(9))

	got, err := svc.BuildMainFeed(viewer.UID)
	require.NoError(t, err)
	require.Len(t, got.Posts, 5)

	for i, p := range got.Posts {
		owner := p.OwnerID()
		visible := owner == viewer.UID || owner == friend.UID
		if p.Kind == feed.KindReview && p.Review.Ticket.UserID == viewer.UID {
			visible = true
		}
		assert.True(t, visible, "post %s should not be in the feed", postKey(p))

		if i > 0 {
			assert.False(t, p.CreatedAt.After(got.Posts[i-1].CreatedAt), "feed not sorted at %d", i)
		}
	}

	assert.Equal(t, []uint{friendTicket.ID}, got.ReviewedTicketIDs)
	assert.True(t, got.HasReviewed(friendTicket.ID))
}

func TestBuildOwnPostsFeed(t *testing.T) {
	svc, gormDB := setupFeedService(t)

	alice := testutils.MustCreateUser(t, gormDB, "alice")
	bob := testutils.MustCreateUser(t, gormDB, "bob")
	testutils.MustFollow(t, gormDB, alice, bob)

	aliceTicket := testutils.MustCreateTicket(t, gormDB, alice, "mine", testutils.At(1))
	bobTicket := testutils.MustCreateTicket(t, gormDB, bob, "theirs", testutils.At(2))
	testutils.MustCreateReview(t, gormDB, bob, aliceTicket, 2, testutils.At(3))
	testutils.MustCreateReview(t, gormDB, alice, bobTicket, 5, testutils.At(4))

	got, err := svc.BuildOwnPostsFeed(alice.UID)
	require.NoError(t, err)
	assert.Equal(t, []string{"review of theirs", "mine"}, postLabels(got.Posts))
	assert.Equal(t, []uint{bobTicket.ID}, got.ReviewedTicketIDs)
}

func postKey(p feed.Post) string {
	return fmt.Sprintf("%s:%d", p.Kind, p.ID())
}
