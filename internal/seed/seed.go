// Package seed loads demo users, follows, tickets and reviews from a YAML
// fixture through the regular services, so every content rule applies.
package seed

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/linskybing/litreview-go/internal/application"
	"github.com/linskybing/litreview-go/internal/domain/review"
	"github.com/linskybing/litreview-go/internal/domain/ticket"
	"github.com/linskybing/litreview-go/internal/domain/user"
	"gopkg.in/yaml.v2"
)

type Fixture struct {
	Users   []UserFixture   `yaml:"users"`
	Follows []FollowFixture `yaml:"follows"`
	Blocks  []BlockFixture  `yaml:"blocks"`
	Tickets []TicketFixture `yaml:"tickets"`
}

type UserFixture struct {
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

type FollowFixture struct {
	Follower string `yaml:"follower"`
	Followed string `yaml:"followed"`
}

type BlockFixture struct {
	Blocker string `yaml:"blocker"`
	Blocked string `yaml:"blocked"`
}

type TicketFixture struct {
	Owner       string          `yaml:"owner"`
	Title       string          `yaml:"title"`
	Description string          `yaml:"description"`
	Reviews     []ReviewFixture `yaml:"reviews"`
}

type ReviewFixture struct {
	Author   string `yaml:"author"`
	Headline string `yaml:"headline"`
	Rating   int    `yaml:"rating"`
	Body     string `yaml:"body"`
}

// Summary counts what Apply created.
type Summary struct {
	Users   int
	Follows int
	Blocks  int
	Tickets int
	Reviews int
}

func Load(r io.Reader) (Fixture, error) {
	var f Fixture
	raw, err := io.ReadAll(r)
	if err != nil {
		return f, err
	}
	if err := yaml.UnmarshalStrict(raw, &f); err != nil {
		return f, fmt.Errorf("parse fixture: %w", err)
	}
	return f, nil
}

// Apply writes the fixture. Users that already exist are reused, so running
// it twice only repeats the content.
func Apply(ctx context.Context, svc *application.Services, f Fixture) (Summary, error) {
	var sum Summary
	ids := make(map[string]uint, len(f.Users))

	for _, u := range f.Users {
		created, err := svc.User.RegisterUser(user.CreateUserInput{Username: u.Username, Password: u.Password})
		switch {
		case errors.Is(err, application.ErrUsernameTaken):
			existing, lookupErr := svc.User.Repos.User.GetUserByUsername(u.Username)
			if lookupErr != nil {
				return sum, lookupErr
			}
			ids[u.Username] = existing.UID
		case err != nil:
			return sum, fmt.Errorf("user %s: %w", u.Username, err)
		default:
			ids[u.Username] = created.UID
			sum.Users++
		}
	}

	lookup := func(username string) (uint, error) {
		id, ok := ids[username]
		if !ok {
			return 0, fmt.Errorf("fixture references unknown user %q", username)
		}
		return id, nil
	}

	for _, fl := range f.Follows {
		followerID, err := lookup(fl.Follower)
		if err != nil {
			return sum, err
		}
		if _, err := svc.Social.RequestFollow(followerID, fl.Followed); err != nil {
			return sum, fmt.Errorf("follow %s -> %s: %w", fl.Follower, fl.Followed, err)
		}
		sum.Follows++
	}

	for _, b := range f.Blocks {
		blockerID, err := lookup(b.Blocker)
		if err != nil {
			return sum, err
		}
		blockedID, err := lookup(b.Blocked)
		if err != nil {
			return sum, err
		}
		if err := svc.Social.Block(blockerID, blockedID); err != nil {
			return sum, fmt.Errorf("block %s -> %s: %w", b.Blocker, b.Blocked, err)
		}
		sum.Blocks++
	}

	for _, tf := range f.Tickets {
		ownerID, err := lookup(tf.Owner)
		if err != nil {
			return sum, err
		}
		t, err := svc.Ticket.CreateTicket(ctx, ownerID, ticket.CreateTicketInput{Title: tf.Title, Description: tf.Description}, nil)
		if err != nil {
			return sum, fmt.Errorf("ticket %q: %w", tf.Title, err)
		}
		sum.Tickets++

		for _, rf := range tf.Reviews {
			authorID, err := lookup(rf.Author)
			if err != nil {
				return sum, err
			}
			rating := rf.Rating
			input := review.CreateReviewInput{Headline: rf.Headline, Rating: &rating, Body: rf.Body}
			if _, err := svc.Review.CreateReview(authorID, t.ID, input); err != nil {
				return sum, fmt.Errorf("review of %q by %s: %w", tf.Title, rf.Author, err)
			}
			sum.Reviews++
		}
	}

	return sum, nil
}
