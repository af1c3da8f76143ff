package services

import (
	"context"
	"errors"
	"strconv"

	"github.com/arifhn/socialbase/backend/internal/errs"
	"github.com/arifhn/socialbase/backend/internal/models"
	"github.com/arifhn/socialbase/backend/internal/repositories"
	"gorm.io/gorm"
)

// ContentService owns posts, comments and likes. Mutations are author-only;
// comment and like creation fan out a notification to the post author
// through the Notifier, which drops self-notifications.
type ContentService struct {
	posts    repositories.PostRepository
	comments repositories.CommentRepository
	likes    repositories.LikeRepository
	notifier *Notifier
}

// NewContentService creates a new ContentService
func NewContentService(postRepo repositories.PostRepository, commentRepo repositories.CommentRepository, likeRepo repositories.LikeRepository, notifier *Notifier) *ContentService {
	return &ContentService{
		posts:    postRepo,
		comments: commentRepo,
		likes:    likeRepo,
		notifier: notifier,
	}
}

// CreatePost stores a new post owned by the author.
func (s *ContentService) CreatePost(ctx context.Context, authorID uint, title, content string) (*models.Post, error) {
	post := &models.Post{
		AuthorID: authorID,
		Title:    title,
		Content:  content,
	}
	if err := s.posts.CreatePost(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// GetPost retrieves a single post by its hex id.
func (s *ContentService) GetPost(ctx context.Context, postID string) (*models.Post, error) {
	post, err := s.posts.GetPostByID(ctx, postID)
	if err != nil {
		if errors.Is(err, repositories.ErrPostNotFound) {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}
	return post, nil
}

// ListPosts returns all posts newest-first, paginated.
func (s *ContentService) ListPosts(ctx context.Context, page, pageSize int) (*PostPage, error) {
	page, pageSize = normalizePage(page, pageSize)

	total, err := s.posts.CountAllPosts(ctx)
	if err != nil {
		return nil, err
	}

	skip := int64(page-1) * int64(pageSize)
	posts, err := s.posts.GetAllPosts(ctx, skip, int64(pageSize))
	if err != nil {
		return nil, err
	}
	return newPostPage(posts, page, pageSize, total), nil
}

// UpdatePost patches title and/or content. Only the author may edit; empty
// fields keep their current value.
func (s *ContentService) UpdatePost(ctx context.Context, postID string, editorID uint, title, content string) (*models.Post, error) {
	post, err := s.GetPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post.AuthorID != editorID {
		return nil, errs.ErrPermission
	}

	if title != "" {
		post.Title = title
	}
	if content != "" {
		post.Content = content
	}
	if err := s.posts.UpdatePost(ctx, postID, post); err != nil {
		return nil, err
	}
	return post, nil
}

// DeletePost removes a post and cascades to its comments and likes. Only the
// author may delete.
func (s *ContentService) DeletePost(ctx context.Context, postID string, editorID uint) error {
	post, err := s.GetPost(ctx, postID)
	if err != nil {
		return err
	}
	if post.AuthorID != editorID {
		return errs.ErrPermission
	}

	if err := s.posts.DeletePost(ctx, postID); err != nil {
		return err
	}
	if err := s.comments.DeleteCommentsByPostID(ctx, postID); err != nil {
		return err
	}
	return s.likes.DeleteLikesByPostID(ctx, postID)
}

// AddComment creates a comment under an existing post and notifies the post
// author.
func (s *ContentService) AddComment(ctx context.Context, postID string, authorID uint, content string) (*models.Comment, error) {
	post, err := s.GetPost(ctx, postID)
	if err != nil {
		return nil, err
	}

	comment := &models.Comment{
		PostID:   postID,
		AuthorID: authorID,
		Content:  content,
	}
	if err := s.comments.CreateComment(ctx, comment); err != nil {
		return nil, err
	}

	// Counter on the post document is denormalized; the comment row is the
	// source of truth.
	if err := s.posts.IncrementCommentsCount(ctx, postID, 1); err != nil {
		return nil, err
	}

	target := &Target{Type: models.TargetTypeComment, ID: strconv.FormatUint(uint64(comment.ID), 10)}
	if err := s.notifier.Notify(ctx, post.AuthorID, authorID, models.VerbCommentedPost, target); err != nil {
		return nil, err
	}
	return comment, nil
}

// ListComments returns the comments of a post, oldest first.
func (s *ContentService) ListComments(ctx context.Context, postID string) ([]models.Comment, error) {
	if _, err := s.GetPost(ctx, postID); err != nil {
		return nil, err
	}
	return s.comments.GetCommentsByPostID(ctx, postID)
}

// UpdateComment replaces a comment's content. Author only.
func (s *ContentService) UpdateComment(ctx context.Context, commentID, editorID uint, content string) (*models.Comment, error) {
	comment, err := s.getComment(ctx, commentID)
	if err != nil {
		return nil, err
	}
	if comment.AuthorID != editorID {
		return nil, errs.ErrPermission
	}

	comment.Content = content
	if err := s.comments.UpdateComment(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// DeleteComment removes a comment. Author only.
func (s *ContentService) DeleteComment(ctx context.Context, commentID, editorID uint) error {
	comment, err := s.getComment(ctx, commentID)
	if err != nil {
		return err
	}
	if comment.AuthorID != editorID {
		return errs.ErrPermission
	}

	if err := s.comments.DeleteComment(ctx, commentID); err != nil {
		return err
	}
	return s.posts.IncrementCommentsCount(ctx, comment.PostID, -1)
}

// Like records a like for (post, user) and notifies the post author. A
// second like of the same post fails with ErrAlreadyLiked; the unique index
// decides races.
func (s *ContentService) Like(ctx context.Context, postID string, userID uint) error {
	post, err := s.GetPost(ctx, postID)
	if err != nil {
		return err
	}

	like := &models.Like{
		PostID: postID,
		UserID: userID,
	}
	if err := s.likes.CreateLike(ctx, like); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.ErrAlreadyLiked
		}
		return err
	}

	if err := s.posts.IncrementLikesCount(ctx, postID, 1); err != nil {
		return err
	}

	target := &Target{Type: models.TargetTypePost, ID: postID}
	return s.notifier.Notify(ctx, post.AuthorID, userID, models.VerbLikedPost, target)
}

// Unlike removes the like for (post, user). Fails with ErrNotLiked when no
// like exists; no notification.
func (s *ContentService) Unlike(ctx context.Context, postID string, userID uint) error {
	if _, err := s.GetPost(ctx, postID); err != nil {
		return err
	}

	affected, err := s.likes.DeleteLike(ctx, postID, userID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return errs.ErrNotLiked
	}
	return s.posts.IncrementLikesCount(ctx, postID, -1)
}

func (s *ContentService) getComment(ctx context.Context, commentID uint) (*models.Comment, error) {
	comment, err := s.comments.GetCommentByID(ctx, commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}
	return comment, nil
}
