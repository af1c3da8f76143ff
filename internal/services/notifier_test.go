package services

import (
	"context"
	"testing"

	"github.com/arifhn/socialbase/backend/internal/errs"
	"github.com/arifhn/socialbase/backend/internal/models"
	"github.com/stretchr/testify/require"
)

func TestNotifier_SelfNotificationGuard(t *testing.T) {
	ctx := context.Background()
	req := require.New(t)
	repo := newFakeNotificationRepo()
	notifier := NewNotifier(repo)

	// recipient == actor is a no-op, not an error
	req.NoError(notifier.Notify(ctx, 7, 7, models.VerbLikedPost, &Target{Type: models.TargetTypePost, ID: "abc"}))
	req.Empty(repo.notifications)

	req.NoError(notifier.Notify(ctx, 7, 8, models.VerbLikedPost, &Target{Type: models.TargetTypePost, ID: "abc"}))
	req.Len(repo.notifications, 1)
}

func TestNotifier_NotifyStoresTarget(t *testing.T) {
	ctx := context.Background()
	req := require.New(t)
	repo := newFakeNotificationRepo()
	notifier := NewNotifier(repo)

	req.NoError(notifier.Notify(ctx, 1, 2, models.VerbCommentedPost, &Target{Type: models.TargetTypeComment, ID: "42"}))

	n := repo.notifications[0]
	req.EqualValues(1, n.RecipientID)
	req.EqualValues(2, n.ActorID)
	req.Equal(models.VerbCommentedPost, n.Verb)
	req.Equal(models.TargetTypeComment, n.TargetType)
	req.Equal("42", n.TargetID)
	req.False(n.IsRead)
}

func TestNotifier_MarkRead(t *testing.T) {
	ctx := context.Background()
	repo := newFakeNotificationRepo()
	notifier := NewNotifier(repo)

	require.NoError(t, notifier.Notify(ctx, 1, 2, models.VerbFollowedYou, nil))
	id := repo.notifications[0].ID

	t.Run("unknown notification", func(t *testing.T) {
		require.ErrorIs(t, notifier.MarkRead(ctx, 999, 1), errs.ErrNotFound)
	})

	t.Run("someone else's notification", func(t *testing.T) {
		require.ErrorIs(t, notifier.MarkRead(ctx, id, 2), errs.ErrNotFound)
	})

	t.Run("marks read and stays read", func(t *testing.T) {
		req := require.New(t)
		req.NoError(notifier.MarkRead(ctx, id, 1))
		req.True(repo.notifications[0].IsRead)

		// idempotent: re-marking succeeds
		req.NoError(notifier.MarkRead(ctx, id, 1))
		req.True(repo.notifications[0].IsRead)
	})
}

func TestNotifier_MarkAllRead(t *testing.T) {
	ctx := context.Background()
	req := require.New(t)
	repo := newFakeNotificationRepo()
	notifier := NewNotifier(repo)

	for i := 0; i < 3; i++ {
		req.NoError(notifier.Notify(ctx, 1, 2, models.VerbLikedPost, nil))
	}
	req.NoError(notifier.Notify(ctx, 9, 2, models.VerbLikedPost, nil)) // other recipient

	count, err := notifier.MarkAllRead(ctx, 1)
	req.NoError(err)
	req.EqualValues(3, count)

	unread, err := notifier.UnreadCount(ctx, 1)
	req.NoError(err)
	req.Zero(unread)

	// other recipient untouched
	unread, err = notifier.UnreadCount(ctx, 9)
	req.NoError(err)
	req.EqualValues(1, unread)

	// nothing left to flip
	count, err = notifier.MarkAllRead(ctx, 1)
	req.NoError(err)
	req.Zero(count)
}

func TestNotifier_ListForNewestFirst(t *testing.T) {
	ctx := context.Background()
	req := require.New(t)
	repo := newFakeNotificationRepo()
	notifier := NewNotifier(repo)

	req.NoError(notifier.Notify(ctx, 1, 2, models.VerbFollowedYou, nil))
	req.NoError(notifier.Notify(ctx, 1, 3, models.VerbLikedPost, nil))
	req.NoError(notifier.Notify(ctx, 1, 4, models.VerbCommentedPost, nil))

	list, err := notifier.ListFor(ctx, 1)
	req.NoError(err)
	req.Len(list, 3)
	req.Equal(models.VerbCommentedPost, list[0].Verb)
	req.Equal(models.VerbLikedPost, list[1].Verb)
	req.Equal(models.VerbFollowedYou, list[2].Verb)
}
