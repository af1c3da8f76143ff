package services

import (
	"context"
	"testing"

	"github.com/arifhn/socialbase/backend/internal/errs"
	"github.com/arifhn/socialbase/backend/internal/models"
	"github.com/stretchr/testify/require"
)

type graphEnv struct {
	users         *fakeUserRepo
	follows       *fakeFollowRepo
	notifications *fakeNotificationRepo
	svc           *SocialGraphService
}

func newGraphEnv() *graphEnv {
	users := newFakeUserRepo()
	follows := newFakeFollowRepo()
	notifications := newFakeNotificationRepo()
	notifier := NewNotifier(notifications)
	return &graphEnv{
		users:         users,
		follows:       follows,
		notifications: notifications,
		svc:           NewSocialGraphService(follows, users, notifier),
	}
}

func TestSocialGraph_FollowUnfollow(t *testing.T) {
	ctx := context.Background()

	t.Run("follow then unfollow round trip", func(t *testing.T) {
		req := require.New(t)
		env := newGraphEnv()
		alice := env.users.addUser("alice")
		bob := env.users.addUser("bob")

		req.NoError(env.svc.Follow(ctx, alice, bob))

		following, err := env.svc.IsFollowing(ctx, alice, bob)
		req.NoError(err)
		req.True(following)

		req.NoError(env.svc.Unfollow(ctx, alice, bob))

		following, err = env.svc.IsFollowing(ctx, alice, bob)
		req.NoError(err)
		req.False(following)
	})

	t.Run("follow is directional", func(t *testing.T) {
		req := require.New(t)
		env := newGraphEnv()
		alice := env.users.addUser("alice")
		bob := env.users.addUser("bob")

		req.NoError(env.svc.Follow(ctx, alice, bob))

		reverse, err := env.svc.IsFollowing(ctx, bob, alice)
		req.NoError(err)
		req.False(reverse)
	})
}

func TestSocialGraph_SelfReference(t *testing.T) {
	ctx := context.Background()
	req := require.New(t)
	env := newGraphEnv()
	alice := env.users.addUser("alice")

	req.ErrorIs(env.svc.Follow(ctx, alice, alice), errs.ErrSelfReference)
	req.ErrorIs(env.svc.Unfollow(ctx, alice, alice), errs.ErrSelfReference)
	req.Empty(env.notifications.notifications)
}

func TestSocialGraph_DuplicateFollow(t *testing.T) {
	ctx := context.Background()
	req := require.New(t)
	env := newGraphEnv()
	alice := env.users.addUser("alice")
	bob := env.users.addUser("bob")

	req.NoError(env.svc.Follow(ctx, alice, bob))
	req.ErrorIs(env.svc.Follow(ctx, alice, bob), errs.ErrAlreadyFollowing)

	// follower set unchanged
	count, err := env.follows.GetFollowersCount(ctx, bob)
	req.NoError(err)
	req.EqualValues(1, count)

	// only the first follow notified
	req.Len(env.notifications.notifications, 1)
}

func TestSocialGraph_UnfollowWithoutFollow(t *testing.T) {
	req := require.New(t)
	env := newGraphEnv()
	alice := env.users.addUser("alice")
	bob := env.users.addUser("bob")

	req.ErrorIs(env.svc.Unfollow(context.Background(), alice, bob), errs.ErrNotFollowing)
}

func TestSocialGraph_FollowUnknownTarget(t *testing.T) {
	req := require.New(t)
	env := newGraphEnv()
	alice := env.users.addUser("alice")

	req.ErrorIs(env.svc.Follow(context.Background(), alice, 999), errs.ErrNotFound)
}

func TestSocialGraph_FollowNotification(t *testing.T) {
	ctx := context.Background()
	req := require.New(t)
	env := newGraphEnv()
	alice := env.users.addUser("alice")
	bob := env.users.addUser("bob")

	req.NoError(env.svc.Follow(ctx, alice, bob))

	req.Len(env.notifications.notifications, 1)
	n := env.notifications.notifications[0]
	req.Equal(bob, n.RecipientID)
	req.Equal(alice, n.ActorID)
	req.Equal(models.VerbFollowedYou, n.Verb)
	req.Empty(n.TargetType)
	req.False(n.IsRead)

	// unfollow is silent
	req.NoError(env.svc.Unfollow(ctx, alice, bob))
	req.Len(env.notifications.notifications, 1)
}

func TestSocialGraph_FollowersAndFollowing(t *testing.T) {
	ctx := context.Background()
	req := require.New(t)
	env := newGraphEnv()
	alice := env.users.addUser("alice")
	bob := env.users.addUser("bob")
	carol := env.users.addUser("carol")

	req.NoError(env.svc.Follow(ctx, alice, bob))
	req.NoError(env.svc.Follow(ctx, carol, bob))
	req.NoError(env.svc.Follow(ctx, alice, carol))

	followers, err := env.svc.Followers(ctx, bob)
	req.NoError(err)
	req.Len(followers, 2)

	following, err := env.svc.Following(ctx, alice)
	req.NoError(err)
	req.Len(following, 2)

	following, err = env.svc.Following(ctx, bob)
	req.NoError(err)
	req.Empty(following)
}
