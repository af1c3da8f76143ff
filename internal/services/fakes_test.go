package services

import (
	"context"
	"time"

	"github.com/arifhn/socialbase/backend/internal/models"
	"github.com/arifhn/socialbase/backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"gorm.io/gorm"
)

// In-memory repository fakes. They mimic the storage-layer contracts the
// services depend on, in particular gorm.ErrDuplicatedKey on unique-index
// violations and gorm.ErrRecordNotFound on missing rows.

type fakeUserRepo struct {
	users  map[uint]models.User
	nextID uint
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uint]models.User), nextID: 1}
}

func (r *fakeUserRepo) addUser(username string) uint {
	id := r.nextID
	r.nextID++
	r.users[id] = models.User{ID: id, Username: username}
	return id
}

func (r *fakeUserRepo) CreateUser(_ context.Context, user *models.User) error {
	user.ID = r.nextID
	r.nextID++
	r.users[user.ID] = *user
	return nil
}

func (r *fakeUserRepo) GetUserByID(_ context.Context, id uint) (*models.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &user, nil
}

func (r *fakeUserRepo) GetUserByUsername(_ context.Context, username string) (*models.User, error) {
	for _, user := range r.users {
		if user.Username == username {
			u := user
			return &u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) GetUserByFirebaseUID(_ context.Context, uid string) (*models.User, error) {
	for _, user := range r.users {
		if user.FirebaseUID == uid {
			u := user
			return &u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) GetUsersByIDs(_ context.Context, ids []uint) ([]models.User, error) {
	var users []models.User
	for _, id := range ids {
		if user, ok := r.users[id]; ok {
			users = append(users, user)
		}
	}
	return users, nil
}

func (r *fakeUserRepo) UpdateUser(_ context.Context, user *models.User) error {
	r.users[user.ID] = *user
	return nil
}

type followKey struct {
	follower  uint
	following uint
}

type fakeFollowRepo struct {
	edges map[followKey]struct{}
}

func newFakeFollowRepo() *fakeFollowRepo {
	return &fakeFollowRepo{edges: make(map[followKey]struct{})}
}

func (r *fakeFollowRepo) CreateFollow(_ context.Context, follow *models.Follow) error {
	key := followKey{follow.FollowerID, follow.FollowingID}
	if _, exists := r.edges[key]; exists {
		return gorm.ErrDuplicatedKey
	}
	r.edges[key] = struct{}{}
	return nil
}

func (r *fakeFollowRepo) DeleteFollow(_ context.Context, followerID, followingID uint) (int64, error) {
	key := followKey{followerID, followingID}
	if _, exists := r.edges[key]; !exists {
		return 0, nil
	}
	delete(r.edges, key)
	return 1, nil
}

func (r *fakeFollowRepo) IsFollowing(_ context.Context, followerID, followingID uint) (bool, error) {
	_, exists := r.edges[followKey{followerID, followingID}]
	return exists, nil
}

func (r *fakeFollowRepo) GetFollowerIDs(_ context.Context, userID uint) ([]uint, error) {
	var ids []uint
	for key := range r.edges {
		if key.following == userID {
			ids = append(ids, key.follower)
		}
	}
	return ids, nil
}

func (r *fakeFollowRepo) GetFollowingIDs(_ context.Context, userID uint) ([]uint, error) {
	var ids []uint
	for key := range r.edges {
		if key.follower == userID {
			ids = append(ids, key.following)
		}
	}
	return ids, nil
}

func (r *fakeFollowRepo) GetFollowersCount(_ context.Context, userID uint) (int64, error) {
	ids, _ := r.GetFollowerIDs(context.Background(), userID)
	return int64(len(ids)), nil
}

type fakePostRepo struct {
	posts []models.Post // insertion order; listings serve newest first
	clock time.Time
}

func newFakePostRepo() *fakePostRepo {
	return &fakePostRepo{clock: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (r *fakePostRepo) CreatePost(_ context.Context, post *models.Post) error {
	post.ID = primitive.NewObjectID()
	r.clock = r.clock.Add(time.Second)
	post.CreatedAt = r.clock
	post.UpdatedAt = r.clock
	r.posts = append(r.posts, *post)
	return nil
}

func (r *fakePostRepo) GetPostByID(_ context.Context, id string) (*models.Post, error) {
	for i := range r.posts {
		if r.posts[i].ID.Hex() == id {
			post := r.posts[i]
			return &post, nil
		}
	}
	return nil, repositories.ErrPostNotFound
}

func (r *fakePostRepo) matching(authorIDs []uint) []models.Post {
	allowed := make(map[uint]struct{}, len(authorIDs))
	for _, id := range authorIDs {
		allowed[id] = struct{}{}
	}
	// newest first
	var out []models.Post
	for i := len(r.posts) - 1; i >= 0; i-- {
		if _, ok := allowed[r.posts[i].AuthorID]; ok {
			out = append(out, r.posts[i])
		}
	}
	return out
}

func paginate(posts []models.Post, skip, limit int64) []models.Post {
	if skip >= int64(len(posts)) {
		return []models.Post{}
	}
	posts = posts[skip:]
	if limit < int64(len(posts)) {
		posts = posts[:limit]
	}
	return posts
}

func (r *fakePostRepo) GetPostsByAuthorIDs(_ context.Context, authorIDs []uint, skip, limit int64) ([]models.Post, error) {
	return paginate(r.matching(authorIDs), skip, limit), nil
}

func (r *fakePostRepo) CountPostsByAuthorIDs(_ context.Context, authorIDs []uint) (int64, error) {
	return int64(len(r.matching(authorIDs))), nil
}

func (r *fakePostRepo) GetAllPosts(_ context.Context, skip, limit int64) ([]models.Post, error) {
	var all []models.Post
	for i := len(r.posts) - 1; i >= 0; i-- {
		all = append(all, r.posts[i])
	}
	return paginate(all, skip, limit), nil
}

func (r *fakePostRepo) CountAllPosts(_ context.Context) (int64, error) {
	return int64(len(r.posts)), nil
}

func (r *fakePostRepo) UpdatePost(_ context.Context, id string, post *models.Post) error {
	for i := range r.posts {
		if r.posts[i].ID.Hex() == id {
			r.posts[i].Title = post.Title
			r.posts[i].Content = post.Content
			r.posts[i].UpdatedAt = time.Now()
			return nil
		}
	}
	return repositories.ErrPostNotFound
}

func (r *fakePostRepo) DeletePost(_ context.Context, id string) error {
	for i := range r.posts {
		if r.posts[i].ID.Hex() == id {
			r.posts = append(r.posts[:i], r.posts[i+1:]...)
			return nil
		}
	}
	return repositories.ErrPostNotFound
}

func (r *fakePostRepo) IncrementLikesCount(_ context.Context, postID string, delta int) error {
	for i := range r.posts {
		if r.posts[i].ID.Hex() == postID {
			r.posts[i].LikesCount += delta
		}
	}
	return nil
}

func (r *fakePostRepo) IncrementCommentsCount(_ context.Context, postID string, delta int) error {
	for i := range r.posts {
		if r.posts[i].ID.Hex() == postID {
			r.posts[i].CommentsCount += delta
		}
	}
	return nil
}

type fakeCommentRepo struct {
	comments map[uint]models.Comment
	nextID   uint
}

func newFakeCommentRepo() *fakeCommentRepo {
	return &fakeCommentRepo{comments: make(map[uint]models.Comment), nextID: 1}
}

func (r *fakeCommentRepo) CreateComment(_ context.Context, comment *models.Comment) error {
	comment.ID = r.nextID
	r.nextID++
	comment.CreatedAt = time.Now()
	r.comments[comment.ID] = *comment
	return nil
}

func (r *fakeCommentRepo) GetCommentByID(_ context.Context, id uint) (*models.Comment, error) {
	comment, ok := r.comments[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &comment, nil
}

func (r *fakeCommentRepo) GetCommentsByPostID(_ context.Context, postID string) ([]models.Comment, error) {
	var out []models.Comment
	for id := uint(1); id < r.nextID; id++ {
		if comment, ok := r.comments[id]; ok && comment.PostID == postID {
			out = append(out, comment)
		}
	}
	return out, nil
}

func (r *fakeCommentRepo) UpdateComment(_ context.Context, comment *models.Comment) error {
	r.comments[comment.ID] = *comment
	return nil
}

func (r *fakeCommentRepo) DeleteComment(_ context.Context, id uint) error {
	delete(r.comments, id)
	return nil
}

func (r *fakeCommentRepo) DeleteCommentsByPostID(_ context.Context, postID string) error {
	for id, comment := range r.comments {
		if comment.PostID == postID {
			delete(r.comments, id)
		}
	}
	return nil
}

type likeKey struct {
	postID string
	userID uint
}

type fakeLikeRepo struct {
	likes map[likeKey]struct{}
}

func newFakeLikeRepo() *fakeLikeRepo {
	return &fakeLikeRepo{likes: make(map[likeKey]struct{})}
}

func (r *fakeLikeRepo) CreateLike(_ context.Context, like *models.Like) error {
	key := likeKey{like.PostID, like.UserID}
	if _, exists := r.likes[key]; exists {
		return gorm.ErrDuplicatedKey
	}
	r.likes[key] = struct{}{}
	return nil
}

func (r *fakeLikeRepo) DeleteLike(_ context.Context, postID string, userID uint) (int64, error) {
	key := likeKey{postID, userID}
	if _, exists := r.likes[key]; !exists {
		return 0, nil
	}
	delete(r.likes, key)
	return 1, nil
}

func (r *fakeLikeRepo) DeleteLikesByPostID(_ context.Context, postID string) error {
	for key := range r.likes {
		if key.postID == postID {
			delete(r.likes, key)
		}
	}
	return nil
}

func (r *fakeLikeRepo) GetLikesCountByPostID(_ context.Context, postID string) (int64, error) {
	var count int64
	for key := range r.likes {
		if key.postID == postID {
			count++
		}
	}
	return count, nil
}

func (r *fakeLikeRepo) HasUserLikedPost(_ context.Context, postID string, userID uint) (bool, error) {
	_, exists := r.likes[likeKey{postID, userID}]
	return exists, nil
}

type fakeNotificationRepo struct {
	notifications []models.Notification
	nextID        uint
}

func newFakeNotificationRepo() *fakeNotificationRepo {
	return &fakeNotificationRepo{nextID: 1}
}

func (r *fakeNotificationRepo) CreateNotification(_ context.Context, notification *models.Notification) error {
	notification.ID = r.nextID
	r.nextID++
	notification.CreatedAt = time.Now()
	r.notifications = append(r.notifications, *notification)
	return nil
}

// GetByRecipientID serves newest first, mirroring the created_at DESC query.
func (r *fakeNotificationRepo) GetByRecipientID(_ context.Context, recipientID uint) ([]models.Notification, error) {
	var out []models.Notification
	for i := len(r.notifications) - 1; i >= 0; i-- {
		if r.notifications[i].RecipientID == recipientID {
			out = append(out, r.notifications[i])
		}
	}
	return out, nil
}

func (r *fakeNotificationRepo) GetByIDAndRecipient(_ context.Context, id, recipientID uint) (*models.Notification, error) {
	for i := range r.notifications {
		if r.notifications[i].ID == id && r.notifications[i].RecipientID == recipientID {
			n := r.notifications[i]
			return &n, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeNotificationRepo) GetUnreadCount(_ context.Context, recipientID uint) (int64, error) {
	var count int64
	for i := range r.notifications {
		if r.notifications[i].RecipientID == recipientID && !r.notifications[i].IsRead {
			count++
		}
	}
	return count, nil
}

func (r *fakeNotificationRepo) MarkAsRead(_ context.Context, id uint) error {
	for i := range r.notifications {
		if r.notifications[i].ID == id {
			r.notifications[i].IsRead = true
		}
	}
	return nil
}

func (r *fakeNotificationRepo) MarkAllAsRead(_ context.Context, recipientID uint) (int64, error) {
	var affected int64
	for i := range r.notifications {
		if r.notifications[i].RecipientID == recipientID && !r.notifications[i].IsRead {
			r.notifications[i].IsRead = true
			affected++
		}
	}
	return affected, nil
}
