package application_test

import (
	"strings"
	"testing"

	"github.com/linskybing/litreview-go/internal/application"
	"github.com/linskybing/litreview-go/internal/domain/review"
	"github.com/linskybing/litreview-go/internal/repository"
	"github.com/linskybing/litreview-go/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReviewService(t *testing.T) {
	gormDB := testutils.NewSQLiteDB(t)
	svc := application.NewReviewService(repository.NewRepositories(gormDB))

	alice := testutils.MustCreateUser(t, gormDB, "alice")
	bob := testutils.MustCreateUser(t, gormDB, "bob")
	tk := testutils.MustCreateTicket(t, gormDB, alice, "T", testutils.At(1))

	var created review.Review

	t.Run("create", func(t *testing.T) {
		rv, err := svc.CreateReview(bob.UID, tk.ID, review.CreateReviewInput{Headline: "fine", Rating: intPtr(0), Body: "meh"})
		require.NoError(t, err)
		assert.Equal(t, 0, rv.Rating)
		assert.Equal(t, "alice", rv.Ticket.User.Username)
		created = rv
	})

	t.Run("owner may review own ticket", func(t *testing.T) {
		_, err := svc.CreateReview(alice.UID, tk.ID, review.CreateReviewInput{Headline: "mine", Rating: intPtr(5)})
		assert.NoError(t, err)
	})

	t.Run("unknown ticket", func(t *testing.T) {
		_, err := svc.CreateReview(bob.UID, 999, review.CreateReviewInput{Headline: "x", Rating: intPtr(1)})
		assert.ErrorIs(t, err, application.ErrTicketNotFound)
	})

	t.Run("validation", func(t *testing.T) {
		cases := map[string]review.CreateReviewInput{
			"rating":   {Headline: "x", Rating: intPtr(-1)},
			"headline": {Headline: strings.Repeat("a", review.MaxHeadlineLength+1), Rating: intPtr(1)},
			"body":     {Headline: "x", Rating: intPtr(1), Body: strings.Repeat("b", review.MaxBodyLength+1)},
		}
		for field, input := range cases {
			_, err := svc.CreateReview(bob.UID, tk.ID, input)
			var ve *application.ValidationError
			if assert.ErrorAs(t, err, &ve, field) {
				assert.Equal(t, field, ve.Field)
			}
		}

		_, err := svc.CreateReview(bob.UID, tk.ID, review.CreateReviewInput{Headline: "x"})
		assert.Error(t, err, "rating is required")
	})

	t.Run("update", func(t *testing.T) {
		_, err := svc.UpdateReview(alice.UID, created.ID, review.UpdateReviewInput{Rating: intPtr(5)})
		assert.ErrorIs(t, err, application.ErrPermissionDenied)

		rv, err := svc.UpdateReview(bob.UID, created.ID, review.UpdateReviewInput{Rating: intPtr(4), Headline: strPtr("better")})
		require.NoError(t, err)
		assert.Equal(t, 4, rv.Rating)
		assert.Equal(t, "meh", rv.Body)
		assert.Equal(t, tk.ID, rv.TicketID)

		_, err = svc.UpdateReview(bob.UID, created.ID, review.UpdateReviewInput{Rating: intPtr(9)})
		var ve *application.ValidationError
		assert.ErrorAs(t, err, &ve)
	})

	t.Run("delete", func(t *testing.T) {
		_, err := svc.DeleteReview(alice.UID, created.ID)
		assert.ErrorIs(t, err, application.ErrPermissionDenied)

		_, err = svc.DeleteReview(bob.UID, created.ID)
		require.NoError(t, err)

		_, err = svc.GetReview(created.ID)
		assert.ErrorIs(t, err, application.ErrReviewNotFound)
	})
}
