package services

import (
	"context"
	"errors"

	"github.com/arifhn/socialbase/backend/internal/errs"
	"github.com/arifhn/socialbase/backend/internal/models"
	"github.com/arifhn/socialbase/backend/internal/repositories"
	"gorm.io/gorm"
)

// SocialGraphService mutates and queries the follow relation. Duplicate
// follows are resolved by the composite unique index on the follows table,
// so two racing requests cannot both succeed.
type SocialGraphService struct {
	follows  repositories.FollowRepository
	users    repositories.UserRepository
	notifier *Notifier
}

// NewSocialGraphService creates a new SocialGraphService
func NewSocialGraphService(followRepo repositories.FollowRepository, userRepo repositories.UserRepository, notifier *Notifier) *SocialGraphService {
	return &SocialGraphService{
		follows:  followRepo,
		users:    userRepo,
		notifier: notifier,
	}
}

// Follow makes follower a follower of target and notifies the target.
// Fails with ErrSelfReference when follower == target, ErrNotFound when the
// target does not exist, and ErrAlreadyFollowing when the edge is already
// present.
func (s *SocialGraphService) Follow(ctx context.Context, followerID, targetID uint) error {
	if followerID == targetID {
		return errs.ErrSelfReference
	}

	if _, err := s.users.GetUserByID(ctx, targetID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errs.ErrNotFound
		}
		return err
	}

	follow := &models.Follow{
		FollowerID:  followerID,
		FollowingID: targetID,
	}
	if err := s.follows.CreateFollow(ctx, follow); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.ErrAlreadyFollowing
		}
		return err
	}

	return s.notifier.Notify(ctx, targetID, followerID, models.VerbFollowedYou, nil)
}

// Unfollow removes the follow edge. Fails with ErrSelfReference when
// follower == target and ErrNotFollowing when the edge does not exist.
// No notification is emitted.
func (s *SocialGraphService) Unfollow(ctx context.Context, followerID, targetID uint) error {
	if followerID == targetID {
		return errs.ErrSelfReference
	}

	affected, err := s.follows.DeleteFollow(ctx, followerID, targetID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return errs.ErrNotFollowing
	}
	return nil
}

// IsFollowing reports whether a follows b. Pure query, no side effects.
func (s *SocialGraphService) IsFollowing(ctx context.Context, a, b uint) (bool, error) {
	return s.follows.IsFollowing(ctx, a, b)
}

// Followers returns the users who follow userID.
func (s *SocialGraphService) Followers(ctx context.Context, userID uint) ([]models.User, error) {
	ids, err := s.follows.GetFollowerIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.users.GetUsersByIDs(ctx, ids)
}

// Following returns the users userID follows.
func (s *SocialGraphService) Following(ctx context.Context, userID uint) ([]models.User, error) {
	ids, err := s.follows.GetFollowingIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.users.GetUsersByIDs(ctx, ids)
}
