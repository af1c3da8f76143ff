package models

import "time"

// Notification verbs. These are the exact strings stored and served.
const (
	VerbFollowedYou   = "followed you"
	VerbLikedPost     = "liked your post"
	VerbCommentedPost = "commented on your post"
)

// Notification target types
const (
	TargetTypePost    = "post"
	TargetTypeComment = "comment"
)

// Notification represents a user notification. Rows are created only by the
// notifier service, whose guard guarantees ActorID never equals RecipientID.
// After insertion only IsRead ever changes; rows are retained indefinitely.
type Notification struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	RecipientID uint      `json:"recipient_id" gorm:"index;not null"`
	ActorID     uint      `json:"actor_id" gorm:"index;not null"`
	Verb        string    `json:"verb" gorm:"size:50;not null"`
	TargetType  string    `json:"target_type,omitempty" gorm:"size:20"` // post or comment, empty for follows
	TargetID    string    `json:"target_id,omitempty"`
	IsRead      bool      `json:"is_read" gorm:"default:false;index"`
	CreatedAt   time.Time `json:"created_at" gorm:"index"`
}
