package services

import (
	"context"

	"github.com/arifhn/socialbase/backend/internal/repositories"
)

// FeedService composes a viewer's feed: posts written by the users the
// viewer follows, newest first.
type FeedService struct {
	follows repositories.FollowRepository
	posts   repositories.PostRepository
}

// NewFeedService creates a new FeedService
func NewFeedService(followRepo repositories.FollowRepository, postRepo repositories.PostRepository) *FeedService {
	return &FeedService{
		follows: followRepo,
		posts:   postRepo,
	}
}

// GetFeed returns one page of the viewer's feed. A viewer who follows no
// one, or a page past the end, gets an empty page rather than an error.
func (s *FeedService) GetFeed(ctx context.Context, viewerID uint, page, pageSize int) (*PostPage, error) {
	page, pageSize = normalizePage(page, pageSize)

	authorIDs, err := s.follows.GetFollowingIDs(ctx, viewerID)
	if err != nil {
		return nil, err
	}

	total, err := s.posts.CountPostsByAuthorIDs(ctx, authorIDs)
	if err != nil {
		return nil, err
	}

	skip := int64(page-1) * int64(pageSize)
	posts, err := s.posts.GetPostsByAuthorIDs(ctx, authorIDs, skip, int64(pageSize))
	if err != nil {
		return nil, err
	}
	return newPostPage(posts, page, pageSize, total), nil
}
