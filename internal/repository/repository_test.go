package repository_test

import (
	"errors"
	"testing"
	"time"

	"github.com/linskybing/litreview-go/internal/domain/audit"
	"github.com/linskybing/litreview-go/internal/domain/review"
	"github.com/linskybing/litreview-go/internal/domain/social"
	"github.com/linskybing/litreview-go/internal/domain/ticket"
	"github.com/linskybing/litreview-go/internal/repository"
	"github.com/linskybing/litreview-go/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestUserRepo(t *testing.T) {
	gormDB := testutils.NewSQLiteDB(t)
	repos := repository.NewRepositories(gormDB)

	alice := testutils.MustCreateUser(t, gormDB, "alice")
	bob := testutils.MustCreateUser(t, gormDB, "bob")

	t.Run("GetUserByUsername", func(t *testing.T) {
		u, err := repos.User.GetUserByUsername("bob")
		require.NoError(t, err)
		assert.Equal(t, bob.UID, u.UID)

		_, err = repos.User.GetUserByUsername("nobody")
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})

	t.Run("ListUsersByIDs sorted by username", func(t *testing.T) {
		users, err := repos.User.ListUsersByIDs([]uint{bob.UID, alice.UID})
		require.NoError(t, err)
		require.Len(t, users, 2)
		assert.Equal(t, "alice", users[0].Username)

		users, err = repos.User.ListUsersByIDs(nil)
		require.NoError(t, err)
		assert.Empty(t, users)
	})
}

func TestTicketRepo(t *testing.T) {
	gormDB := testutils.NewSQLiteDB(t)
	repos := repository.NewRepositories(gormDB)

	alice := testutils.MustCreateUser(t, gormDB, "alice")
	bob := testutils.MustCreateUser(t, gormDB, "bob")
	carol := testutils.MustCreateUser(t, gormDB, "carol")

	t1 := testutils.MustCreateTicket(t, gormDB, alice, "T1", testutils.At(1))
	t2 := testutils.MustCreateTicket(t, gormDB, bob, "T2", testutils.At(2))
	testutils.MustCreateTicket(t, gormDB, carol, "T3", testutils.At(3))

	t.Run("GetTicketByID preloads owner", func(t *testing.T) {
		got, err := repos.Ticket.GetTicketByID(t1.ID)
		require.NoError(t, err)
		assert.Equal(t, "alice", got.User.Username)
	})

	t.Run("ListTicketsByOwners newest first", func(t *testing.T) {
		got, err := repos.Ticket.ListTicketsByOwners([]uint{alice.UID, bob.UID})
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, t2.ID, got[0].ID)
		assert.Equal(t, t1.ID, got[1].ID)
	})

	t.Run("Update and delete", func(t *testing.T) {
		got, err := repos.Ticket.GetTicketByID(t2.ID)
		require.NoError(t, err)
		got.Title = "T2 edited"
		require.NoError(t, repos.Ticket.UpdateTicket(&got))

		reloaded, err := repos.Ticket.GetTicketByID(t2.ID)
		require.NoError(t, err)
		assert.Equal(t, "T2 edited", reloaded.Title)

		require.NoError(t, repos.Ticket.DeleteTicket(t2.ID))
		_, err = repos.Ticket.GetTicketByID(t2.ID)
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})
}

func TestReviewRepo_ListFeedReviews(t *testing.T) {
	gormDB := testutils.NewSQLiteDB(t)
	repos := repository.NewRepositories(gormDB)

	alice := testutils.MustCreateUser(t, gormDB, "alice")
	bob := testutils.MustCreateUser(t, gormDB, "bob")
	carol := testutils.MustCreateUser(t, gormDB, "carol")

	aliceTicket := testutils.MustCreateTicket(t, gormDB, alice, "alice ticket", testutils.At(1))
	carolTicket := testutils.MustCreateTicket(t, gormDB, carol, "carol ticket", testutils.At(2))

	// bob answers alice: matches both "followed owner" and "reply to viewer"
	bobOnAlice := testutils.MustCreateReview(t, gormDB, bob, aliceTicket, 4, testutils.At(3))
	carolOnCarol := testutils.MustCreateReview(t, gormDB, carol, carolTicket, 2, testutils.At(4))
	aliceOnCarol := testutils.MustCreateReview(t, gormDB, alice, carolTicket, 5, testutils.At(5))

	got, err := repos.Review.ListFeedReviews([]uint{alice.UID, bob.UID}, alice.UID)
	require.NoError(t, err)

	ids := make([]uint, 0, len(got))
	for _, rv := range got {
		ids = append(ids, rv.ID)
	}
	assert.Equal(t, []uint{aliceOnCarol.ID, bobOnAlice.ID}, ids)
	assert.NotContains(t, ids, carolOnCarol.ID)
	assert.Equal(t, "carol", got[0].Ticket.User.Username)

	onlyReplies, err := repos.Review.ListFeedReviews(nil, carol.UID)
	require.NoError(t, err)
	assert.Len(t, onlyReplies, 2)
}

func TestReviewRepo_CRUD(t *testing.T) {
	gormDB := testutils.NewSQLiteDB(t)
	repos := repository.NewRepositories(gormDB)

	alice := testutils.MustCreateUser(t, gormDB, "alice")
	bob := testutils.MustCreateUser(t, gormDB, "bob")
	tk := testutils.MustCreateTicket(t, gormDB, alice, "T", testutils.At(1))
	other := testutils.MustCreateTicket(t, gormDB, alice, "U", testutils.At(2))

	rv := review.Review{TicketID: tk.ID, UserID: bob.UID, Headline: "ok", Rating: 3}
	require.NoError(t, repos.Review.CreateReview(&rv))
	require.NotZero(t, rv.ID)
	require.NoError(t, repos.Review.CreateReview(&review.Review{TicketID: other.ID, UserID: bob.UID, Headline: "again", Rating: 1}))
	require.NoError(t, repos.Review.CreateReview(&review.Review{TicketID: tk.ID, UserID: bob.UID, Headline: "twice", Rating: 2}))

	ticketIDs, err := repos.Review.ListReviewedTicketIDs(bob.UID)
	require.NoError(t, err)
	assert.Equal(t, []uint{tk.ID, other.ID}, ticketIDs)

	own, err := repos.Review.ListReviewsByOwners([]uint{bob.UID})
	require.NoError(t, err)
	assert.Len(t, own, 3)

	rv.Rating = 5
	require.NoError(t, repos.Review.UpdateReview(&rv))
	got, err := repos.Review.GetReviewByID(rv.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, got.Rating)
	assert.Equal(t, "alice", got.Ticket.User.Username)

	require.NoError(t, repos.Review.DeleteReviewsByTicketID(tk.ID))
	_, err = repos.Review.GetReviewByID(rv.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	remaining, err := repos.Review.ListReviewsByOwners([]uint{bob.UID})
	require.NoError(t, err)
	assert.Len(t, remaining, 1)
}

func TestFollowRepo(t *testing.T) {
	gormDB := testutils.NewSQLiteDB(t)
	repos := repository.NewRepositories(gormDB)

	alice := testutils.MustCreateUser(t, gormDB, "alice")
	bob := testutils.MustCreateUser(t, gormDB, "bob")

	created, err := repos.Follow.CreateFollow(&social.Follow{FollowerID: alice.UID, FollowedID: bob.UID})
	require.NoError(t, err)
	assert.True(t, created)

	created, err = repos.Follow.CreateFollow(&social.Follow{FollowerID: alice.UID, FollowedID: bob.UID})
	require.NoError(t, err)
	assert.False(t, created, "duplicate edge must not be inserted")

	exists, err := repos.Follow.FollowExists(alice.UID, bob.UID)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repos.Follow.FollowExists(bob.UID, alice.UID)
	require.NoError(t, err)
	assert.False(t, exists)

	followed, err := repos.Follow.ListFollowedIDs(alice.UID)
	require.NoError(t, err)
	assert.Equal(t, []uint{bob.UID}, followed)

	followers, err := repos.Follow.ListFollowerIDs(bob.UID)
	require.NoError(t, err)
	assert.Equal(t, []uint{alice.UID}, followers)

	require.NoError(t, repos.Follow.DeleteFollow(alice.UID, bob.UID))
	require.NoError(t, repos.Follow.DeleteFollow(alice.UID, bob.UID))
	followed, err = repos.Follow.ListFollowedIDs(alice.UID)
	require.NoError(t, err)
	assert.Empty(t, followed)
}

func TestBlockRepo(t *testing.T) {
	gormDB := testutils.NewSQLiteDB(t)
	repos := repository.NewRepositories(gormDB)

	alice := testutils.MustCreateUser(t, gormDB, "alice")
	bob := testutils.MustCreateUser(t, gormDB, "bob")

	first := social.Block{BlockerID: alice.UID, BlockedID: bob.UID}
	require.NoError(t, repos.Block.GetOrCreateBlock(&first))
	require.NotZero(t, first.ID)

	second := social.Block{BlockerID: alice.UID, BlockedID: bob.UID}
	require.NoError(t, repos.Block.GetOrCreateBlock(&second))
	assert.Equal(t, first.ID, second.ID)

	blocked, err := repos.Block.ListBlockedIDs(alice.UID)
	require.NoError(t, err)
	assert.Equal(t, []uint{bob.UID}, blocked)

	exists, err := repos.Block.BlockExists(bob.UID, alice.UID)
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, repos.Block.DeleteBlock(alice.UID, bob.UID))
	exists, err = repos.Block.BlockExists(alice.UID, bob.UID)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestRepos_ExecTxRollsBack(t *testing.T) {
	gormDB := testutils.NewSQLiteDB(t)
	repos := repository.NewRepositories(gormDB)
	alice := testutils.MustCreateUser(t, gormDB, "alice")

	boom := errors.New("boom")
	err := repos.ExecTx(func(tx *repository.Repos) error {
		tk := ticket.Ticket{Title: "orphan", UserID: alice.UID}
		if err := tx.Ticket.CreateTicket(&tk); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	tickets, err := repos.Ticket.ListTicketsByOwners([]uint{alice.UID})
	require.NoError(t, err)
	assert.Empty(t, tickets)
}

func TestAuditRepo(t *testing.T) {
	gormDB := testutils.NewSQLiteDB(t)
	repos := repository.NewRepositories(gormDB)

	old := audit.AuditLog{UserID: 1, Action: "create", ResourceType: "ticket", ResourceID: "1", CreatedAt: time.Now().AddDate(0, 0, -40)}
	recent := audit.AuditLog{UserID: 1, Action: "delete", ResourceType: "review", ResourceID: "2"}
	other := audit.AuditLog{UserID: 2, Action: "create", ResourceType: "ticket", ResourceID: "3"}
	for _, entry := range []*audit.AuditLog{&old, &recent, &other} {
		require.NoError(t, repos.Audit.CreateAuditLog(entry))
	}

	logs, err := repos.Audit.ListAuditLogsByUser(1, repository.AuditFilter{})
	require.NoError(t, err)
	require.Len(t, logs, 2)
	assert.Equal(t, recent.ID, logs[0].ID)

	logs, err = repos.Audit.ListAuditLogsByUser(1, repository.AuditFilter{ResourceType: "ticket"})
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, old.ID, logs[0].ID)

	purged, err := repos.Audit.PurgeAuditLogsBefore(time.Now().AddDate(0, 0, -30))
	require.NoError(t, err)
	assert.Equal(t, int64(1), purged)
}
