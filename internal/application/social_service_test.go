package application_test

import (
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/linskybing/litreview-go/internal/application"
	"github.com/linskybing/litreview-go/internal/domain/social"
	"github.com/linskybing/litreview-go/internal/domain/user"
	"github.com/linskybing/litreview-go/internal/repository"
	"github.com/linskybing/litreview-go/internal/repository/mock"
	"github.com/linskybing/litreview-go/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type socialMocks struct {
	user   *mock.MockUserRepo
	follow *mock.MockFollowRepo
	block  *mock.MockBlockRepo
}

func setupSocialMocks(t *testing.T) (*application.SocialService, socialMocks) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	m := socialMocks{
		user:   mock.NewMockUserRepo(ctrl),
		follow: mock.NewMockFollowRepo(ctrl),
		block:  mock.NewMockBlockRepo(ctrl),
	}
	repos := &repository.Repos{
		User:   m.user,
		Follow: m.follow,
		Block:  m.block,
	}
	return application.NewSocialService(repos), m
}

func assertFollowCode(t *testing.T, err error, code social.FollowErrorCode) {
	t.Helper()
	var fe *social.FollowError
	require.True(t, errors.As(err, &fe), "expected FollowError, got %v", err)
	assert.Equal(t, code, fe.Code)
	assert.NotEmpty(t, fe.Message)
}

func TestRequestFollow_Rules(t *testing.T) {
	target := user.User{UID: 2, Username: "bob"}

	t.Run("unknown username", func(t *testing.T) {
		svc, m := setupSocialMocks(t)
		m.user.EXPECT().GetUserByUsername("ghost").Return(user.User{}, gorm.ErrRecordNotFound)

		_, err := svc.RequestFollow(1, "ghost")
		assertFollowCode(t, err, social.CodeUserNotFound)
	})

	t.Run("self follow is checked before blocks", func(t *testing.T) {
		svc, m := setupSocialMocks(t)
		m.user.EXPECT().GetUserByUsername("bob").Return(target, nil)

		_, err := svc.RequestFollow(2, "bob")
		assert.ErrorIs(t, err, social.ErrSelfFollowDenied)
	})

	t.Run("actor blocked target", func(t *testing.T) {
		svc, m := setupSocialMocks(t)
		m.user.EXPECT().GetUserByUsername("bob").Return(target, nil)
		m.block.EXPECT().BlockExists(uint(1), uint(2)).Return(true, nil)

		_, err := svc.RequestFollow(1, "bob")
		assertFollowCode(t, err, social.CodeTargetBlockedByActor)
	})

	t.Run("target blocked actor", func(t *testing.T) {
		svc, m := setupSocialMocks(t)
		m.user.EXPECT().GetUserByUsername("bob").Return(target, nil)
		m.block.EXPECT().BlockExists(uint(1), uint(2)).Return(false, nil)
		m.block.EXPECT().BlockExists(uint(2), uint(1)).Return(true, nil)

		_, err := svc.RequestFollow(1, "bob")
		assertFollowCode(t, err, social.CodeActorBlockedByTarget)
	})

	t.Run("already following", func(t *testing.T) {
		svc, m := setupSocialMocks(t)
		m.user.EXPECT().GetUserByUsername("bob").Return(target, nil)
		m.block.EXPECT().BlockExists(gomock.Any(), gomock.Any()).Return(false, nil).Times(2)
		m.follow.EXPECT().FollowExists(uint(1), uint(2)).Return(true, nil)

		_, err := svc.RequestFollow(1, "bob")
		assert.ErrorIs(t, err, social.ErrAlreadyFollowing)
	})

	t.Run("insert conflict reported as already following", func(t *testing.T) {
		svc, m := setupSocialMocks(t)
		m.user.EXPECT().GetUserByUsername("bob").Return(target, nil)
		m.block.EXPECT().BlockExists(gomock.Any(), gomock.Any()).Return(false, nil).Times(2)
		m.follow.EXPECT().FollowExists(uint(1), uint(2)).Return(false, nil)
		m.follow.EXPECT().CreateFollow(gomock.Any()).Return(false, nil)

		_, err := svc.RequestFollow(1, "bob")
		assert.ErrorIs(t, err, social.ErrAlreadyFollowing)
	})

	t.Run("success", func(t *testing.T) {
		svc, m := setupSocialMocks(t)
		m.user.EXPECT().GetUserByUsername("bob").Return(target, nil)
		m.block.EXPECT().BlockExists(gomock.Any(), gomock.Any()).Return(false, nil).Times(2)
		m.follow.EXPECT().FollowExists(uint(1), uint(2)).Return(false, nil)
		m.follow.EXPECT().CreateFollow(gomock.Any()).DoAndReturn(func(f *social.Follow) (bool, error) {
			f.ID = 10
			return true, nil
		})

		f, err := svc.RequestFollow(1, "bob")
		require.NoError(t, err)
		assert.Equal(t, uint(10), f.ID)
		assert.Equal(t, uint(1), f.FollowerID)
		assert.Equal(t, uint(2), f.FollowedID)
	})

	t.Run("store failure is not a follow error", func(t *testing.T) {
		svc, m := setupSocialMocks(t)
		m.user.EXPECT().GetUserByUsername("bob").Return(user.User{}, errors.New("db down"))

		_, err := svc.RequestFollow(1, "bob")
		var fe *social.FollowError
		assert.False(t, errors.As(err, &fe))
	})
}

func TestRequestFollow_SelfDeniedRegardlessOfGraph(t *testing.T) {
	gormDB := testutils.NewSQLiteDB(t)
	svc := application.NewSocialService(repository.NewRepositories(gormDB))

	alice := testutils.MustCreateUser(t, gormDB, "alice")
	testutils.MustBlock(t, gormDB, alice, alice)
	testutils.MustFollow(t, gormDB, alice, alice)

	_, err := svc.RequestFollow(alice.UID, "alice")
	assert.ErrorIs(t, err, social.ErrSelfFollowDenied)
}

func TestBlockAndUnblock(t *testing.T) {
	gormDB := testutils.NewSQLiteDB(t)
	repos := repository.NewRepositories(gormDB)
	svc := application.NewSocialService(repos)

	alice := testutils.MustCreateUser(t, gormDB, "alice")
	bob := testutils.MustCreateUser(t, gormDB, "bob")
	testutils.MustFollow(t, gormDB, alice, bob)
	testutils.MustFollow(t, gormDB, bob, alice)

	require.NoError(t, svc.Block(alice.UID, bob.UID))
	require.NoError(t, svc.Block(alice.UID, bob.UID), "blocking twice is idempotent")

	for _, pair := range [][2]uint{{alice.UID, bob.UID}, {bob.UID, alice.UID}} {
		exists, err := repos.Follow.FollowExists(pair[0], pair[1])
		require.NoError(t, err)
		assert.False(t, exists)
	}

	_, err := svc.RequestFollow(alice.UID, "bob")
	assert.ErrorIs(t, err, social.ErrTargetBlockedByActor)
	_, err = svc.RequestFollow(bob.UID, "alice")
	assert.ErrorIs(t, err, social.ErrActorBlockedByTarget)

	blocked, err := svc.ListBlocked(alice.UID)
	require.NoError(t, err)
	require.Len(t, blocked, 1)
	assert.Equal(t, "bob", blocked[0].Username)

	require.NoError(t, svc.Unblock(alice.UID, bob.UID))
	require.NoError(t, svc.Unblock(alice.UID, bob.UID))

	following, err := svc.ListFollowing(bob.UID)
	require.NoError(t, err)
	assert.Empty(t, following, "unblock does not restore follows")

	_, err = svc.RequestFollow(alice.UID, "bob")
	assert.NoError(t, err)
}

func TestBlock_EdgeCases(t *testing.T) {
	gormDB := testutils.NewSQLiteDB(t)
	repos := repository.NewRepositories(gormDB)
	svc := application.NewSocialService(repos)

	alice := testutils.MustCreateUser(t, gormDB, "alice")

	require.NoError(t, svc.Block(alice.UID, alice.UID))
	blocked, err := repos.Block.ListBlockedIDs(alice.UID)
	require.NoError(t, err)
	assert.Empty(t, blocked)

	assert.ErrorIs(t, svc.Block(alice.UID, 999), social.ErrUserNotFound)
}

func TestUnfollowAndListings(t *testing.T) {
	gormDB := testutils.NewSQLiteDB(t)
	svc := application.NewSocialService(repository.NewRepositories(gormDB))

	alice := testutils.MustCreateUser(t, gormDB, "alice")
	bob := testutils.MustCreateUser(t, gormDB, "bob")
	carol := testutils.MustCreateUser(t, gormDB, "carol")

	_, err := svc.RequestFollow(alice.UID, "carol")
	require.NoError(t, err)
	_, err = svc.RequestFollow(alice.UID, "bob")
	require.NoError(t, err)
	_, err = svc.RequestFollow(carol.UID, "alice")
	require.NoError(t, err)

	following, err := svc.ListFollowing(alice.UID)
	require.NoError(t, err)
	require.Len(t, following, 2)
	assert.Equal(t, "bob", following[0].Username)

	followers, err := svc.ListFollowers(alice.UID)
	require.NoError(t, err)
	require.Len(t, followers, 1)
	assert.Equal(t, carol.UID, followers[0].UID)

	require.NoError(t, svc.Unfollow(alice.UID, bob.UID))
	require.NoError(t, svc.Unfollow(alice.UID, bob.UID), "missing edge is not an error")

	following, err = svc.ListFollowing(alice.UID)
	require.NoError(t, err)
	require.Len(t, following, 1)
	assert.Equal(t, "carol", following[0].Username)
}
