package models

import "time"

// Like represents a like on a post. The composite unique index is the only
// synchronization for concurrent likes: the loser of a race gets a
// duplicate-key error instead of a second row.
type Like struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	PostID    string    `json:"post_id" gorm:"index;uniqueIndex:idx_post_user_like;not null"`
	UserID    uint      `json:"user_id" gorm:"index;uniqueIndex:idx_post_user_like;not null"`
	CreatedAt time.Time `json:"created_at"`
}
