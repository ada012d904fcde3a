// Package feed holds the derived, never-stored Post union and the merge/sort
// rules shared by every feed.
package feed

import (
	"slices"
	"sort"
	"time"

	"github.com/linskybing/litreview-go/internal/domain/review"
	"github.com/linskybing/litreview-go/internal/domain/ticket"
)

type Kind string

const (
	KindTicket Kind = "TICKET"
	KindReview Kind = "REVIEW"
)

// Post wraps exactly one of Ticket or Review, selected by Kind.
type Post struct {
	Kind      Kind           `json:"content_type"`
	CreatedAt time.Time      `json:"created_at"`
	Ticket    *ticket.Ticket `json:"ticket,omitempty"`
	Review    *review.Review `json:"review,omitempty"`
}

func FromTicket(t ticket.Ticket) Post {
	return Post{Kind: KindTicket, CreatedAt: t.CreatedAt, Ticket: &t}
}

func FromReview(r review.Review) Post {
	return Post{Kind: KindReview, CreatedAt: r.CreatedAt, Review: &r}
}

// ID returns the id of the wrapped record.
func (p Post) ID() uint {
	if p.Kind == KindReview {
		return p.Review.ID
	}
	return p.Ticket.ID
}

// OwnerID returns the user id of the wrapped record's author.
func (p Post) OwnerID() uint {
	if p.Kind == KindReview {
		return p.Review.UserID
	}
	return p.Ticket.UserID
}

// Feed is what a viewer gets back: the posts, newest first, and the tickets the
// viewer already reviewed so the client can hide a second "review" action.
type Feed struct {
	Posts             []Post `json:"posts"`
	ReviewedTicketIDs []uint `json:"reviewed_ticket_ids"`
}

func (f Feed) HasReviewed(ticketID uint) bool {
	return slices.Contains(f.ReviewedTicketIDs, ticketID)
}

// Merge tags tickets and reviews into one slice, drops repeated reviews and
// sorts the result with Sort.
func Merge(tickets []ticket.Ticket, reviews []review.Review) []Post {
	posts := make([]Post, 0, len(tickets)+len(reviews))
	for _, t := range tickets {
		posts = append(posts, FromTicket(t))
	}

	seen := make(map[uint]struct{}, len(reviews))
	for _, r := range reviews {
		if _, dup := seen[r.ID]; dup {
			continue
		}
		seen[r.ID] = struct{}{}
		posts = append(posts, FromReview(r))
	}

	Sort(posts)
	return posts
}

// Sort orders posts newest first. Equal timestamps put reviews before tickets,
// then the higher id first.
func Sort(posts []Post) {
	sort.SliceStable(posts, func(i, j int) bool {
		a, b := posts[i], posts[j]
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}
		if a.Kind != b.Kind {
			return a.Kind == KindReview
		}
		return a.ID() > b.ID()
	})
}
