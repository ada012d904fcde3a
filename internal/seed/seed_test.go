package seed

import (
	"context"
	"strings"
	"testing"

	"github.com/linskybing/litreview-go/internal/application"
	"github.com/linskybing/litreview-go/internal/domain/social"
	"github.com/linskybing/litreview-go/internal/repository"
	"github.com/linskybing/litreview-go/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixtureYAML = `
users:
  - username: alice
    password: secret1
  - username: bob
    password: secret2
  - username: carol
    password: secret3
follows:
  - follower: alice
    followed: bob
blocks:
  - blocker: carol
    blocked: alice
tickets:
  - owner: bob
    title: Dune
    description: Worth the hype?
    reviews:
      - author: alice
        headline: Absolutely
        rating: 5
        body: Read it twice.
  - owner: carol
    title: Solaris
`

func TestLoadAndApply(t *testing.T) {
	f, err := Load(strings.NewReader(fixtureYAML))
	require.NoError(t, err)
	require.Len(t, f.Users, 3)
	require.Len(t, f.Tickets, 2)
	assert.Equal(t, 5, f.Tickets[0].Reviews[0].Rating)

	gormDB := testutils.NewSQLiteDB(t)
	svc := application.New(repository.NewRepositories(gormDB))

	sum, err := Apply(context.Background(), svc, f)
	require.NoError(t, err)
	assert.Equal(t, Summary{Users: 3, Follows: 1, Blocks: 1, Tickets: 2, Reviews: 1}, sum)

	alice, err := svc.User.Repos.User.GetUserByUsername("alice")
	require.NoError(t, err)
	feed, err := svc.Feed.BuildMainFeed(alice.UID)
	require.NoError(t, err)
	assert.Len(t, feed.Posts, 2)

	_, err = svc.Social.RequestFollow(alice.UID, "carol")
	assert.ErrorIs(t, err, social.ErrActorBlockedByTarget)

	again, err := Apply(context.Background(), svc, Fixture{Users: f.Users})
	require.NoError(t, err)
	assert.Zero(t, again.Users)
}

func TestLoad_RejectsUnknownKeys(t *testing.T) {
	_, err := Load(strings.NewReader("users:\n  - username: a\n    pasword: typo\n"))
	assert.Error(t, err)
}

func TestApply_UnknownUser(t *testing.T) {
	gormDB := testutils.NewSQLiteDB(t)
	svc := application.New(repository.NewRepositories(gormDB))

	_, err := Apply(context.Background(), svc, Fixture{Tickets: []TicketFixture{{Owner: "nobody", Title: "x"}}})
	assert.ErrorContains(t, err, "unknown user")
}
